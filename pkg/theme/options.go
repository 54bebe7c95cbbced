package theme

import (
	"fmt"
	"math"

	"github.com/go-drift/visualkit/pkg/errors"
)

// Allowed ranges for shape options.
const (
	MinBorderRounding  = 1
	MaxBorderRounding  = 30
	MinBorderThickness = 1
	MaxBorderThickness = 24
	MaxProgressSize    = 100.0
)

// BorderShape selects the outline geometry of a control.
type BorderShape int

const (
	// BorderShapeRounded draws a rounded rectangle using the rounding radius.
	BorderShapeRounded BorderShape = iota
	// BorderShapeRectangle draws square corners.
	BorderShapeRectangle
)

// String returns a human-readable representation of the shape.
func (s BorderShape) String() string {
	switch s {
	case BorderShapeRounded:
		return "rounded"
	case BorderShapeRectangle:
		return "rectangle"
	default:
		return fmt.Sprintf("BorderShape(%d)", int(s))
	}
}

// Options are the process-wide widget defaults held by a Manager.
type Options struct {
	Animation          bool
	BorderVisible      bool
	BorderHoverVisible bool
	TextVisible        bool
	HatchVisible       bool
	BorderRounding     int
	BorderThickness    int
	BorderShape        BorderShape
	ProgressSize       float64
	HatchSize          float64
	WatermarkText      string
	WatermarkVisible   bool
}

// DefaultOptions returns the defaults a new Manager starts with.
func DefaultOptions() Options {
	return Options{
		Animation:          true,
		BorderVisible:      true,
		BorderHoverVisible: true,
		TextVisible:        true,
		HatchVisible:       true,
		BorderRounding:     6,
		BorderThickness:    1,
		BorderShape:        BorderShapeRounded,
		ProgressSize:       5,
		HatchSize:          2,
		WatermarkText:      "Watermark",
	}
}

// Validate checks every ranged field.
func (o Options) Validate() error {
	if err := ValidateBorderRounding("theme.Options.Validate", o.BorderRounding); err != nil {
		return err
	}
	if err := ValidateBorderThickness("theme.Options.Validate", o.BorderThickness); err != nil {
		return err
	}
	if err := ValidateBorderShape("theme.Options.Validate", o.BorderShape); err != nil {
		return err
	}
	if math.IsNaN(o.ProgressSize) || o.ProgressSize <= 0 || o.ProgressSize > MaxProgressSize {
		return errors.Invalid("theme.Options.Validate",
			fmt.Errorf("%w: progress size %v not in (0, %v]", errors.ErrOutOfRange, o.ProgressSize, MaxProgressSize))
	}
	if math.IsNaN(o.HatchSize) || math.IsInf(o.HatchSize, 0) || o.HatchSize <= 0 {
		return errors.Invalid("theme.Options.Validate",
			fmt.Errorf("%w: hatch size %v must be positive and finite", errors.ErrOutOfRange, o.HatchSize))
	}
	return nil
}

// ValidateBorderRounding reports whether v is a usable corner radius.
func ValidateBorderRounding(op string, v int) error {
	if v < MinBorderRounding || v > MaxBorderRounding {
		return errors.OutOfRange(op, v, MinBorderRounding, MaxBorderRounding)
	}
	return nil
}

// ValidateBorderThickness reports whether v is a usable border width.
func ValidateBorderThickness(op string, v int) error {
	if v < MinBorderThickness || v > MaxBorderThickness {
		return errors.OutOfRange(op, v, MinBorderThickness, MaxBorderThickness)
	}
	return nil
}

// ValidateBorderShape reports whether s is a known shape.
func ValidateBorderShape(op string, s BorderShape) error {
	switch s {
	case BorderShapeRounded, BorderShapeRectangle:
		return nil
	default:
		return errors.Invalid(op, fmt.Errorf("%w: %v", errors.ErrInvalidArgument, s))
	}
}
