package errdefer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClose(t *testing.T) {
	t.Parallel()

	closeErr := errors.New("close failed")
	prevErr := errors.New("parse failed")

	tests := []struct {
		desc string
		prev error
		give error

		wantNil bool
		wantIs  []error
	}{
		{desc: "no errors", wantNil: true},
		{desc: "close error", give: closeErr, wantIs: []error{closeErr}},
		{desc: "previous error", prev: prevErr, wantIs: []error{prevErr}},
		{
			desc:   "both",
			prev:   prevErr,
			give:   closeErr,
			wantIs: []error{prevErr, closeErr},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			err := tt.prev
			Close(&err, stubCloser{err: tt.give})
			if tt.wantNil {
				assert.NoError(t, err)
				return
			}
			for _, want := range tt.wantIs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestRun(t *testing.T) {
	t.Parallel()

	var called bool
	var err error
	Run(&err, func() error {
		called = true
		return errors.New("flush failed")
	})
	assert.True(t, called)
	assert.ErrorContains(t, err, "flush failed")
}

type stubCloser struct{ err error }

func (s stubCloser) Close() error { return s.err }
