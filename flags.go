package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"braces.dev/errtrace"
	"github.com/peterbourgon/ff/v3"
	"go.abhg.dev/docblock/docblock"
	"go.abhg.dev/docblock/internal/flagvalue"
)

var (
	errHelp             = flag.ErrHelp
	errInvalidArguments = errors.New("invalid arguments")
)

// params holds all arguments for docblock.
type params struct {
	version bool
	help    Help

	Lang     string
	Format   outputFormat
	Out      string
	Markdown bool
	Tags     []tagCategory
	Debug    flagvalue.FileSwitch

	Files []string
}

// cliParser parses the command line arguments for docblock.
type cliParser struct {
	Stdout io.Writer
	Stderr io.Writer
}

func (cmd *cliParser) newFlagSet() (*params, *flag.FlagSet) {
	flag := flag.NewFlagSet("docblock", flag.ContinueOnError)
	flag.SetOutput(cmd.Stderr)
	flag.Usage = func() {
		DefaultHelp.Write(cmd.Stderr)
	}

	p := params{Format: jsonFormat}

	// Input:
	flag.StringVar(&p.Lang, "lang", "", "")
	flag.Var(flagvalue.ListOf(&p.Tags), "tag", "")

	// Output:
	flag.Var(&p.Format, "format", "")
	flag.StringVar(&p.Out, "out", "", "")
	flag.BoolVar(&p.Markdown, "markdown", false, "")

	// Program-level:
	flag.String("config", "", "")
	flag.Var(&p.Debug, "debug", "")
	flag.BoolVar(&p.version, "version", false, "")
	flag.Var(&p.help, "help", "")
	flag.Var(&p.help, "h", "")

	return &p, flag
}

func (cmd *cliParser) Parse(args []string) (*params, error) {
	p, flag := cmd.newFlagSet()
	err := ff.Parse(flag, args,
		ff.WithEnvVarPrefix("DOCBLOCK"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	args = flag.Args()

	if p.version {
		fmt.Fprintln(cmd.Stdout, "docblock", _version)
		return nil, errHelp
	}

	if p.help == DefaultHelp && len(args) > 0 {
		// The user might have done "-h foo"
		// instead of "-h=foo".
		// If the argument is a known help topic,
		// take it.
		var h Help
		if err := h.Set(args[0]); err == nil && h.Write(io.Discard) == nil {
			p.help = h
		}
	}

	switch p.help {
	case NoHelp:
		// proceed as usual
	default:
		if err := p.help.Write(cmd.Stderr); err != nil {
			fmt.Fprintln(cmd.Stderr, err)
		}
		return nil, errHelp
	}

	p.Files = args
	if len(p.Files) == 0 {
		fmt.Fprintln(cmd.Stderr, "Please provide at least one file.")
		UsageHelp.Write(cmd.Stderr)
		return nil, errInvalidArguments
	}

	return p, nil
}

// categories returns the tag category overrides
// requested on the command line, if any.
func (p *params) categories() map[string]docblock.Category {
	if len(p.Tags) == 0 {
		return nil
	}
	cats := make(map[string]docblock.Category, len(p.Tags))
	for _, tc := range p.Tags {
		cats[tc.Tag] = tc.Category
	}
	return cats
}

// tagCategory is a '-tag name=category' flag value.
type tagCategory struct {
	Tag      string
	Category docblock.Category
}

var _ flag.Getter = (*tagCategory)(nil)

func (tc *tagCategory) Get() any { return tc }

func (tc *tagCategory) String() string {
	return fmt.Sprintf("%s=%v", tc.Tag, tc.Category)
}

func (tc *tagCategory) Set(s string) error {
	tag, cat, ok := strings.Cut(s, "=")
	if !ok {
		return errtrace.New("expected form 'tag=category'")
	}

	tag = strings.TrimPrefix(strings.TrimSpace(tag), "@")
	if tag == "" {
		return errtrace.New("tag name must not be empty")
	}

	c, err := docblock.ParseCategory(strings.TrimSpace(cat))
	if err != nil {
		return errtrace.Wrap(err)
	}

	tc.Tag = tag
	tc.Category = c
	return nil
}

// outputFormat is the encoding used for the output.
type outputFormat string

const (
	jsonFormat outputFormat = "json"
	yamlFormat outputFormat = "yaml"
)

var _ flag.Getter = (*outputFormat)(nil)

func (f *outputFormat) Get() any { return *f }

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(strings.ToLower(strings.TrimSpace(s))); v {
	case jsonFormat, yamlFormat:
		*f = v
		return nil
	case "yml":
		*f = yamlFormat
		return nil
	default:
		return errtrace.Errorf("unknown format %q: expected json or yaml", s)
	}
}
