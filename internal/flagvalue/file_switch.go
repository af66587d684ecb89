package flagvalue

import (
	"flag"
	"io"
	"os"

	"braces.dev/errtrace"
)

// FileSwitch is a flag that may be passed bare ("-debug")
// or with a file name ("-debug=trace.log").
//
// Passed bare, output goes to a fallback writer.
// Passed with a name, output goes to that file.
type FileSwitch string

var _ flag.Getter = (*FileSwitch)(nil)

// Get returns the file name, "-" for the fallback,
// or "" if the flag wasn't passed.
func (fs *FileSwitch) Get() any { return string(*fs) }

func (fs *FileSwitch) String() string { return string(*fs) }

// IsBoolFlag lets the flag package accept "-debug" without a value.
func (*FileSwitch) IsBoolFlag() bool { return true }

// Set receives the value for this flag.
// "true" is what the flag package passes for a bare flag.
func (fs *FileSwitch) Set(v string) error {
	switch v {
	case "true":
		v = "-"
	case "false":
		v = ""
	}
	*fs = FileSwitch(v)
	return nil
}

// Bool reports whether the flag was enabled.
func (fs *FileSwitch) Bool() bool { return len(*fs) > 0 }

// Create returns the destination for this flag's output
// and a function to release it:
//
//   - flag not passed: [io.Discard]
//   - flag passed bare: fallback
//   - flag passed with a name: the newly created file
func (fs *FileSwitch) Create(fallback io.Writer) (w io.Writer, done func() error, err error) {
	switch *fs {
	case "":
		return io.Discard, nop, nil
	case "-":
		return fallback, nop, nil
	}

	f, err := os.Create(string(*fs))
	if err != nil {
		return nil, nil, errtrace.Wrap(err)
	}
	return f, f.Close, nil
}

func nop() error { return nil }
