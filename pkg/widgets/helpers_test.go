package widgets_test

import (
	"fmt"
	"testing"
	"unicode/utf8"

	"github.com/go-drift/visualkit/pkg/errors"
	"github.com/go-drift/visualkit/pkg/graphics"
)

// fixedMeasurer gives every rune 6px and every line 10px so layouts do not
// depend on the installed font.
type fixedMeasurer struct{}

func (fixedMeasurer) MeasureText(text string, _ graphics.TextStyle) graphics.Size {
	return graphics.Size{Width: 6 * float64(utf8.RuneCountInString(text)), Height: 10}
}

// expectProgrammingError fails t unless fn panics with *errors.ProgrammingError.
func expectProgrammingError(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		if _, ok := r.(*errors.ProgrammingError); !ok {
			t.Fatalf("panic = %#v, want *errors.ProgrammingError", r)
		}
	}()
	fn()
}

// colorParam formats c the way CaptureCanvas records colors.
func colorParam(c graphics.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}
