package termscreen

// titleState tracks the window title, the icon title, and their OSC 22/23
// push/pop stacks (spec.md §3 "Title & LED").
type titleState struct {
	title     string
	iconTitle string
	stack     []titleFrame
}

type titleFrame struct {
	title     string
	iconTitle string
}

func newTitleState() *titleState { return &titleState{} }

func (t *titleState) SetTitle(title string)     { t.title = title }
func (t *titleState) SetIconTitle(title string) { t.iconTitle = title }
func (t *titleState) Title() string             { return t.title }
func (t *titleState) IconTitle() string         { return t.iconTitle }

func (t *titleState) Push() {
	t.stack = append(t.stack, titleFrame{title: t.title, iconTitle: t.iconTitle})
}

func (t *titleState) Pop() {
	if len(t.stack) == 0 {
		return
	}
	frame := t.stack[len(t.stack)-1]
	t.stack = t.stack[:len(t.stack)-1]
	t.title = frame.title
	t.iconTitle = frame.iconTitle
}
