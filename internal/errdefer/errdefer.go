// Package errdefer joins errors from deferred cleanup
// into a function's named error return.
package errdefer

import (
	"errors"
	"io"
)

// Close closes c and joins its error into *err.
//
//	defer errdefer.Close(&err, f)
func Close(err *error, c io.Closer) {
	Run(err, c.Close)
}

// Run calls fn and joins its error into *err.
// Use it for cleanup functions that aren't io.Closers,
// such as flushing an encoder.
//
//	defer errdefer.Run(&err, enc.Close)
func Run(err *error, fn func() error) {
	*err = errors.Join(*err, fn())
}
