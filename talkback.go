package termscreen

// Talkback is the single outbound sink a screen answers queries through:
// cursor position reports, device attributes, OSC query replies
// (spec.md §3 "Talkback Adapter"). Exactly one may be attached per
// screen; the screen never multiplexes responses across many listeners
// the way the Listener Bus does for observation.
type Talkback interface {
	Respond(data []byte) Result
}

// NoListeningTalkback is installed when no talkback sink is configured.
// Respond reports NoListeningSession rather than silently discarding data,
// so a caller probing capability discovery learns that nothing is
// listening instead of misreading silence as an empty but valid answer.
type NoListeningTalkback struct{}

func (NoListeningTalkback) Respond(data []byte) Result { return NoListeningSession }

// WriterTalkback adapts any ResponseProvider (io.Writer) into a Talkback.
type WriterTalkback struct {
	Writer ResponseProvider
}

func (w WriterTalkback) Respond(data []byte) Result {
	if w.Writer == nil {
		return NoListeningSession
	}
	w.Writer.Write(data)
	return Ok
}

// respond routes a talkback reply through the configured sink.
func (s *Screen) respond(data []byte) Result {
	if s.talkback == nil {
		return NoListeningSession
	}
	return s.talkback.Respond(data)
}
