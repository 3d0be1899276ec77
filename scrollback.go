package termscreen

import "sync"

// ScrollbackKind selects the off-screen history retention policy
// (spec.md §3 "Scrollback").
type ScrollbackKind int

const (
	ScrollbackDisabled ScrollbackKind = iota
	ScrollbackFixed
	ScrollbackUnlimited
	ScrollbackDistributed
)

// ScrollbackPolicy configures a Screen's scrollback at creation time.
type ScrollbackPolicy struct {
	Kind  ScrollbackKind
	Limit int // line cap for ScrollbackFixed; ignored otherwise
}

// DisabledScrollback keeps no off-screen history.
func DisabledScrollback() ScrollbackPolicy { return ScrollbackPolicy{Kind: ScrollbackDisabled} }

// FixedScrollback retains exactly n lines, FIFO-evicting the oldest.
func FixedScrollback(n int) ScrollbackPolicy { return ScrollbackPolicy{Kind: ScrollbackFixed, Limit: n} }

// UnlimitedScrollback grows without bound (save for process memory).
func UnlimitedScrollback() ScrollbackPolicy { return ScrollbackPolicy{Kind: ScrollbackUnlimited} }

// DistributedScrollback draws from the shared cross-screen budget
// (spec.md §3, §5, §9 Open Question: least-recently-scrolled eviction).
func DistributedScrollback() ScrollbackPolicy { return ScrollbackPolicy{Kind: ScrollbackDistributed} }

// Scrollback is the off-screen history deque for one Screen. Index 0 is
// the newest line, increasing upward toward the oldest (spec.md §3).
type Scrollback struct {
	mu       sync.Mutex
	policy   ScrollbackPolicy
	lines    []Line
	tick     uint64 // monotonic "last scrolled into" counter, for Distributed LRU eviction
	budget   *distributedBudget
}

func newScrollback(policy ScrollbackPolicy) *Scrollback {
	sb := &Scrollback{policy: policy}
	if policy.Kind == ScrollbackDistributed {
		sb.budget = globalDistributedBudget
		sb.budget.register(sb)
	}
	return sb
}

// Close releases this scrollback's membership in the distributed budget,
// if any. Called from Screen.Dispose (spec.md §3 "Lifecycle").
func (sb *Scrollback) Close() {
	if sb.budget != nil {
		sb.budget.unregister(sb)
	}
}

// Len returns the number of retained lines.
func (sb *Scrollback) Len() int {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return len(sb.lines)
}

// Line returns the line at index (0 = newest), or nil if out of range.
func (sb *Scrollback) Line(index int) *Line {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	if index < 0 || index >= len(sb.lines) {
		return nil
	}
	return &sb.lines[index]
}

// ByID resolves a line by its LineID, used by LineIterator.
func (sb *Scrollback) ByID(id LineID) (int, *Line) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	for i := range sb.lines {
		if sb.lines[i].id == id {
			return i, &sb.lines[i]
		}
	}
	return -1, nil
}

// Push adds a newly-scrolled-off line at position 0 (newest), applying the
// configured retention policy. Returns NotEnoughMemory if the policy had to
// drop the incoming line rather than store it (spec.md §4.2, §7).
func (sb *Scrollback) Push(line Line) Result {
	sb.mu.Lock()
	defer sb.mu.Unlock()

	switch sb.policy.Kind {
	case ScrollbackDisabled:
		return Ok
	case ScrollbackFixed:
		sb.lines = append([]Line{line}, sb.lines...)
		if sb.policy.Limit > 0 && len(sb.lines) > sb.policy.Limit {
			sb.lines = sb.lines[:sb.policy.Limit]
		}
		return Ok
	case ScrollbackUnlimited:
		sb.lines = append([]Line{line}, sb.lines...)
		return Ok
	case ScrollbackDistributed:
		sb.tick = sb.budget.nextTick()
		if !sb.budget.reserve(sb) {
			return NotEnoughMemory
		}
		sb.lines = append([]Line{line}, sb.lines...)
		return Ok
	default:
		return Ok
	}
}

// Clear removes all retained lines.
func (sb *Scrollback) Clear() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	if sb.budget != nil {
		sb.budget.release(sb, int64(len(sb.lines)))
	}
	sb.lines = nil
}

// SetLimit changes the Fixed-policy cap, trimming immediately if needed.
func (sb *Scrollback) SetLimit(n int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.policy.Limit = n
	if sb.policy.Kind == ScrollbackFixed && n > 0 && len(sb.lines) > n {
		sb.lines = sb.lines[:n]
	}
}

// Limit returns the configured Fixed-policy cap (0 if not applicable).
func (sb *Scrollback) Limit() int {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.policy.Limit
}

// dropOldest removes the single oldest retained line, used by the
// distributed budget to reclaim space from this screen.
func (sb *Scrollback) dropOldest() bool {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	if len(sb.lines) == 0 {
		return false
	}
	sb.lines = sb.lines[:len(sb.lines)-1]
	return true
}

func (sb *Scrollback) lastTick() uint64 {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	return sb.tick
}

// distributedBudget is the process-wide shared allocation pool for
// ScrollbackDistributed screens (spec.md §3, §5). Eviction reclaims from
// the least-recently-scrolled member screen, resolving spec.md §9's Open
// Question on eviction heuristic.
type distributedBudget struct {
	mu       sync.Mutex
	maxLines int64
	used     int64
	members  map[*Scrollback]struct{}
	ticker   uint64
}

// DefaultDistributedBudgetLines is the default shared capacity across every
// ScrollbackDistributed screen in the process.
const DefaultDistributedBudgetLines = 100_000

var globalDistributedBudget = &distributedBudget{
	maxLines: DefaultDistributedBudgetLines,
	members:  make(map[*Scrollback]struct{}),
}

// SetDistributedBudget reconfigures the shared distributed-scrollback
// capacity for the process. Intended for embedders who know their memory
// envelope; defaults to DefaultDistributedBudgetLines otherwise.
func SetDistributedBudget(maxLines int64) {
	globalDistributedBudget.mu.Lock()
	defer globalDistributedBudget.mu.Unlock()
	globalDistributedBudget.maxLines = maxLines
}

func (b *distributedBudget) register(sb *Scrollback) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.members[sb] = struct{}{}
}

func (b *distributedBudget) unregister(sb *Scrollback) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.members, sb)
}

func (b *distributedBudget) nextTick() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.ticker++
	return b.ticker
}

// reserve accounts for one more line against the shared budget, reclaiming
// from the least-recently-scrolled other member if the budget is full.
// Returns false if no space could be reclaimed (caller drops the line).
func (b *distributedBudget) reserve(requester *Scrollback) bool {
	b.mu.Lock()
	if b.used < b.maxLines {
		b.used++
		b.mu.Unlock()
		return true
	}
	b.mu.Unlock()

	victim := b.leastRecentlyScrolled(requester)
	if victim == nil {
		return false
	}
	if !victim.dropOldest() {
		return false
	}

	// net zero: one line dropped from the victim, one added by the requester
	return true
}

func (b *distributedBudget) release(sb *Scrollback, n int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.used -= n
	if b.used < 0 {
		b.used = 0
	}
}

func (b *distributedBudget) leastRecentlyScrolled(exclude *Scrollback) *Scrollback {
	b.mu.Lock()
	members := make([]*Scrollback, 0, len(b.members))
	for m := range b.members {
		if m != exclude {
			members = append(members, m)
		}
	}
	b.mu.Unlock()

	var victim *Scrollback
	var oldest uint64
	first := true
	for _, m := range members {
		t := m.lastTick()
		if first || t < oldest {
			oldest = t
			victim = m
			first = false
		}
	}
	return victim
}
