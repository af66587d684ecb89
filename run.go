package main

import (
	"io"
	"log"
	"os"

	"braces.dev/errtrace"
	"go.abhg.dev/docblock/docblock"
	"gopkg.in/yaml.v3"
)

// Parser extracts documentation records from source text.
type Parser interface {
	Parse(src, lang string) ([]*docblock.Record, error)
}

var _ Parser = (*docblock.Parser)(nil)

// Encoder writes a single output document.
type Encoder interface {
	Encode(v any) error
}

var _ Encoder = (*yaml.Encoder)(nil)

// errNoLanguage is returned when the language of a file
// can't be determined.
var errNoLanguage = errtrace.New("unable to determine language: use -lang")

// Runner extracts documentation from source files
// and writes one document per file.
//
// In terms of code organization,
// Runner's purpose is to add a separation between main
// and the program's core logic to aid in testability.
type Runner struct {
	Log      *log.Logger
	DebugLog *log.Logger // optional
	Stdin    io.Reader
	Parser   Parser
	Encoder  Encoder

	// Language of all inputs.
	// If empty, the language is guessed from each file name.
	Lang string
}

// Run parses the given files in order.
// The file name "-" reads from Stdin.
func (r *Runner) Run(files []string) error {
	for _, file := range files {
		if err := r.runFile(file); err != nil {
			return errtrace.Errorf("%v: %w", file, err)
		}
	}
	return nil
}

func (r *Runner) runFile(file string) error {
	lang := r.Lang
	if lang == "" && file != "-" {
		lang = docblock.DetectLanguage(file)
	}
	if lang == "" {
		return errNoLanguage
	}

	src, err := r.readFile(file)
	if err != nil {
		return errtrace.Wrap(err)
	}

	r.Log.Printf("Parsing %v", file)
	records, err := r.Parser.Parse(string(src), lang)
	if err != nil {
		return errtrace.Wrap(err)
	}
	r.debugf("%v: %d record(s) as %v", file, len(records), lang)

	return errtrace.Wrap(r.Encoder.Encode(records))
}

func (r *Runner) readFile(file string) ([]byte, error) {
	if file == "-" {
		return errtrace.Wrap2(io.ReadAll(r.Stdin))
	}
	return errtrace.Wrap2(os.ReadFile(file))
}

func (r *Runner) debugf(format string, args ...any) {
	if r.DebugLog != nil {
		r.DebugLog.Printf(format, args...)
	}
}
