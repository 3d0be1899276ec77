// Package termscreen implements a headless terminal screen model: a VT500-
// style escape sequence parser driving a cell grid, scrollback, and cursor,
// with no display attached.
//
// It's useful for testing terminal applications without a real TTY,
// building multiplexers and recorders, and screen-scraping CLI output.
//
// # Quick start
//
//	_, screen := termscreen.NewScreen(termscreen.WithSize(24, 80))
//	screen.WriteString("\x1b[31mHello \x1b[32mWorld\x1b[0m!")
//	fmt.Println(screen.Snapshot(termscreen.SnapshotDetailText).Text())
//
// # Architecture
//
//   - [Screen]: the emulator; implements [io.Writer] and go-ansicode's
//     Handler interface
//   - [MainScreen]: the active grid of [Line]s, primary or alternate
//   - [Scrollback]: off-screen history, with Disabled/Fixed/Unlimited/
//     Distributed retention policies
//   - [Cell]: one grid position, a rune plus an [AttributeWord]
//   - [LineIterator]: a stable cursor over scrollback+main-screen lines,
//     addressed by [LineID] rather than row number
//
// # Dual screens
//
// A Screen holds a primary grid (with scrollback) and an alternate grid
// (without). Full-screen applications (vim, less, htop) switch to the
// alternate screen via CSI ?1049h and restore the primary on CSI ?1049l.
//
//	if screen.OnAlternateScreen() {
//	    // a full-screen app is in control
//	}
//
// # Providers and Talkback
//
// Outbound terminal replies (DSR, DA1, OSC queries) go through a single
// [Talkback] sink; side-channel events go through small provider
// interfaces, all optional with no-op defaults:
//
//   - [BellProvider]: bell/beep
//   - [ClipboardProvider]: OSC 52 clipboard read/write
//   - [RecordingProvider]: raw input capture for replay
//   - [APCProvider], [PMProvider], [SOSProvider]: APC/PM/SOS string sinks
//
//	_, screen := termscreen.NewScreen(
//	    termscreen.WithTalkback(termscreen.WriterTalkback{Writer: os.Stdout}),
//	    termscreen.WithBellProvider(myBell{}),
//	)
//
// # Listener Bus
//
// Subscribe to [Change] notifications (text edits, mode changes, screen
// swaps, title updates, palette entries, LEDs, bell, resize) through
// [Screen.Listeners]. Every listener receives every Change and filters on
// its Kind:
//
//	screen.Listeners().Subscribe(termscreen.ListenerFunc(func(c termscreen.Change) {
//	    if c.Kind == termscreen.ChangeBell {
//	        log.Println("bell")
//	    }
//	}))
//
// # Search and Copy
//
// [Screen.Search] scans main-screen-then-scrollback (or the reverse),
// reassembling soft-wrapped lines into logical paragraphs before matching.
// [Screen.CopyRange] extracts text between two [LineIterator] positions,
// linear or rectangular, with tab expansion and trailing-whitespace
// trimming.
//
// # Emulator personality
//
// [Emulator] selects which family of device-attributes reply, cursor-style
// support, and palette-mutation support a screen advertises:
//
//	_, screen := termscreen.NewScreen(termscreen.WithEmulator(termscreen.VT420()))
//
// # Thread safety
//
// Accessors and handler methods lock an internal RWMutex for their own
// state change. Write does not hold it across the parse, so a Screen must
// not be written from several goroutines at once; Search and CopyRange read
// line contents without holding it. Multi-step sequences need caller-side
// coordination if they must appear atomic to a concurrent reader.
package termscreen
