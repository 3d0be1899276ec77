package termscreen

import "io"

// ResponseProvider writes terminal responses (cursor position reports,
// device attributes) back to the PTY. Typically an io.Writer connected to
// the PTY input.
type ResponseProvider = io.Writer

// NoopResponse discards all response data.
type NoopResponse struct{}

func (NoopResponse) Write(p []byte) (int, error) { return len(p), nil }

// BellProvider handles bell/beep events triggered by BEL (0x07).
type BellProvider interface {
	Ring()
}

// NoopBell ignores all bell events.
type NoopBell struct{}

func (NoopBell) Ring() {}

// APCProvider handles Application Program Command sequences.
type APCProvider interface {
	Receive(data []byte)
}

// NoopAPC ignores all APC sequences.
type NoopAPC struct{}

func (NoopAPC) Receive(data []byte) {}

// PMProvider handles Privacy Message sequences.
type PMProvider interface {
	Receive(data []byte)
}

// NoopPM ignores all PM sequences.
type NoopPM struct{}

func (NoopPM) Receive(data []byte) {}

// SOSProvider handles Start of String sequences.
type SOSProvider interface {
	Receive(data []byte)
}

// NoopSOS ignores all SOS sequences.
type NoopSOS struct{}

func (NoopSOS) Receive(data []byte) {}

// ClipboardProvider handles OSC 52 clipboard read/write operations.
type ClipboardProvider interface {
	// Read returns content from the specified clipboard ('c' or 'p').
	// Default-deny (spec.md §9 Open Question): implementations should
	// return "" unless the embedder explicitly opts a clipboard in.
	Read(clipboard byte) string
	Write(clipboard byte, data []byte)
}

// NoopClipboard denies every clipboard operation.
type NoopClipboard struct{}

func (NoopClipboard) Read(clipboard byte) string        { return "" }
func (NoopClipboard) Write(clipboard byte, data []byte) {}

// RecordingProvider captures raw input bytes before VT parsing, for replay
// or debugging.
type RecordingProvider interface {
	Record(data []byte)
	Data() []byte
	Clear()
}

// NoopRecording discards all input.
type NoopRecording struct{}

func (NoopRecording) Record([]byte) {}
func (NoopRecording) Data() []byte  { return nil }
func (NoopRecording) Clear()        {}

// MemoryRecording stores raw input bytes in memory for replay or debugging.
type MemoryRecording struct {
	data []byte
}

// NewMemoryRecording returns an empty in-memory recorder.
func NewMemoryRecording() *MemoryRecording {
	return &MemoryRecording{data: make([]byte, 0)}
}

func (r *MemoryRecording) Record(data []byte) { r.data = append(r.data, data...) }

func (r *MemoryRecording) Data() []byte {
	out := make([]byte, len(r.data))
	copy(out, r.data)
	return out
}

func (r *MemoryRecording) Clear() { r.data = r.data[:0] }

var (
	_ ResponseProvider  = NoopResponse{}
	_ BellProvider      = NoopBell{}
	_ APCProvider       = NoopAPC{}
	_ PMProvider        = NoopPM{}
	_ SOSProvider       = NoopSOS{}
	_ ClipboardProvider = NoopClipboard{}
	_ RecordingProvider = NoopRecording{}
	_ RecordingProvider = (*MemoryRecording)(nil)
)
