// docblock extracts documentation from /** ... */ comment blocks
// in source files and prints it as JSON or YAML.
//
// See 'docblock -help' for usage.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	"go.abhg.dev/docblock/docblock"
	"go.abhg.dev/docblock/internal/errdefer"
	"gopkg.in/yaml.v3"
)

func main() {
	cmd := mainCmd{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	os.Exit(cmd.Run(os.Args[1:]))
}

// mainCmd is the actual entry point to the program.
type mainCmd struct {
	Stdin  io.Reader // == os.Stdin
	Stdout io.Writer // == os.Stdout
	Stderr io.Writer // == os.Stderr

	log *log.Logger
}

func (cmd *mainCmd) Run(args []string) (exitCode int) {
	cmd.log = log.New(cmd.Stderr, "", 0)

	opts, err := (&cliParser{
		Stdout: cmd.Stdout,
		Stderr: cmd.Stderr,
	}).Parse(args)
	if err != nil {
		// '$cmd -h' should exit with zero.
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		// No need to print anything.
		// Parse prints messages.
		return 1
	}

	if err := cmd.run(opts); err != nil {
		cmd.log.Printf("docblock: %v", err)
		return 1
	}
	return 0
}

func (cmd *mainCmd) run(opts *params) (err error) {
	debugw, closeDebug, err := opts.Debug.Create(cmd.Stderr)
	if err != nil {
		return errtrace.Wrap(err)
	}
	defer errdefer.Run(&err, closeDebug)

	var debugLog *log.Logger
	if opts.Debug.Bool() {
		debugLog = log.New(debugw, "", 0)
	}

	out := cmd.Stdout
	if opts.Out != "" && opts.Out != "-" {
		f, ferr := os.Create(opts.Out)
		if ferr != nil {
			return errtrace.Wrap(ferr)
		}
		defer errdefer.Close(&err, f)
		out = f
	}

	enc, closeEnc := newEncoder(opts.Format, out)
	defer errdefer.Run(&err, closeEnc)

	runner := Runner{
		Log:      cmd.log,
		DebugLog: debugLog,
		Stdin:    cmd.Stdin,
		Lang:     opts.Lang,
		Parser: &docblock.Parser{
			Categories: opts.categories(),
			Markdown:   opts.Markdown,
			DebugLog:   debugLog,
		},
		Encoder: enc,
	}

	return errtrace.Wrap(runner.Run(opts.Files))
}

// newEncoder builds an Encoder for the given format writing to w,
// and a function to flush it when done.
func newEncoder(format outputFormat, w io.Writer) (_ Encoder, done func() error) {
	switch format {
	case yamlFormat:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(4)
		return enc, enc.Close
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "    ")
		enc.SetEscapeHTML(false) // keep -markdown output readable
		return enc, func() error { return nil }
	}
}
