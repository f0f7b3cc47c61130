// Package closer closes groups of io.Closer resources.
package closer

import (
	"errors"
	"fmt"
	"io"
	"runtime/debug"

	commonErrors "github.com/amp-labs/things/errors"
	"github.com/amp-labs/things/verify"
)

// ErrPanicked wraps a panic recovered from a Close call.
var ErrPanicked = errors.New("panic during close")

// All closes every closer in order, skipping nil ones (including typed nil
// pointers). A failing closer does not stop the rest; all failures are
// joined into the returned error.
//
//	defer func() { err = closer.All(rows, stmt, conn) }()
func All(closers ...io.Closer) error {
	var errs commonErrors.Collection

	for _, c := range closers {
		if verify.IsNil(c) {
			continue
		}

		errs.Add(c.Close())
	}

	return errs.GetError()
}

// CustomCloser adapts a cleanup function to io.Closer. A nil function yields
// a nil closer, which All skips.
func CustomCloser(closeFn func() error) io.Closer {
	if closeFn == nil {
		return nil
	}

	return customCloser(closeFn)
}

type customCloser func() error

func (c customCloser) Close() error {
	return c()
}

// HandlePanic wraps closer so that a panic inside Close is returned as an
// ErrPanicked error carrying the panic value and stack. Wrapping twice is a
// no-op.
func HandlePanic(closer io.Closer) io.Closer {
	if closer == nil {
		return nil
	}

	if _, ok := closer.(*panicHandler); ok {
		return closer
	}

	return &panicHandler{closer: closer}
}

type panicHandler struct {
	closer io.Closer
}

func (p *panicHandler) Close() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v\n%s", ErrPanicked, r, debug.Stack())
		}
	}()

	return p.closer.Close()
}
