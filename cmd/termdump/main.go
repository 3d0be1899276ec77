// Command termdump feeds raw terminal byte streams (captured PTY output,
// asciinema casts stripped to bytes, recorded session logs) through a
// termscreen.Screen and prints the resulting screen state.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/vtcore/termscreen"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	var input io.Reader = os.Stdin
	if opts.inputPath != "" {
		f, err := os.Open(opts.inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "termdump: %v\n", err)
			return 1
		}
		defer f.Close()
		input = f
	}

	data, err := io.ReadAll(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "termdump: reading input: %v\n", err)
		return 1
	}

	_, screen := termscreen.NewScreen(
		termscreen.WithSize(opts.rows, opts.cols),
		termscreen.WithEmulator(termscreen.XTerm256Color()),
	)
	if _, err := screen.Write(data); err != nil {
		fmt.Fprintf(os.Stderr, "termdump: %v\n", err)
		return 1
	}

	snap := screen.Snapshot(opts.detail)
	if opts.json {
		out, err := snap.JSON()
		if err != nil {
			fmt.Fprintf(os.Stderr, "termdump: %v\n", err)
			return 1
		}
		fmt.Println(string(out))
		return 0
	}

	fmt.Print(snap.Text())
	return 0
}

type options struct {
	inputPath string
	rows      int
	cols      int
	json      bool
	detail    termscreen.SnapshotDetail
}

func parseFlags() options {
	var opts options
	var detail string

	flag.StringVar(&opts.inputPath, "in", "", "input file to read (defaults to stdin)")
	flag.IntVar(&opts.rows, "rows", termscreen.DefaultRows, "screen height")
	flag.IntVar(&opts.cols, "cols", termscreen.DefaultColumns, "screen width")
	flag.BoolVar(&opts.json, "json", false, "emit a structured JSON snapshot instead of the text dump")
	flag.StringVar(&detail, "detail", "text", "snapshot detail: text, styled, or full (only affects -json)")
	flag.Parse()

	switch detail {
	case "styled":
		opts.detail = termscreen.SnapshotDetailStyled
	case "full":
		opts.detail = termscreen.SnapshotDetailFull
	default:
		opts.detail = termscreen.SnapshotDetailText
	}
	return opts
}
