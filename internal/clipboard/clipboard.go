package clipboard

import (
	"context"
	"errors"
	"fmt"

	atotto "github.com/atotto/clipboard"

	"github.com/saulo-duarte/kiku/internal/config"
)

var ErrClipboard = errors.New("clipboard write failed")

type Writer interface {
	WriteAll(text string) error
}

type System struct{}

func (System) WriteAll(text string) error {
	if atotto.Unsupported {
		return errors.New("no clipboard utility available")
	}
	return atotto.WriteAll(text)
}

// Copy writes text to w. A failure is logged and otherwise ignored; the
// caller still holds the text and may try again. It reports whether the copy
// succeeded.
func Copy(ctx context.Context, w Writer, text string) bool {
	if err := w.WriteAll(text); err != nil {
		config.WithContext(ctx).WithError(fmt.Errorf("%w: %v", ErrClipboard, err)).Warn("could not copy draft")
		return false
	}
	return true
}
