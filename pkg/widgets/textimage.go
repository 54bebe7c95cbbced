package widgets

import (
	"fmt"

	"github.com/go-drift/visualkit/pkg/errors"
	"github.com/go-drift/visualkit/pkg/graphics"
)

// TextImageRelation positions an icon relative to a label.
type TextImageRelation int

const (
	// RelationOverlay centers both, with the text over the image center.
	RelationOverlay TextImageRelation = iota
	RelationImageBeforeText
	RelationTextBeforeImage
	RelationImageAboveText
	RelationTextAboveImage
)

// textImageSpacing separates image and text in the directional relations.
const textImageSpacing = 4

// String returns a human-readable representation of the relation.
func (r TextImageRelation) String() string {
	switch r {
	case RelationOverlay:
		return "overlay"
	case RelationImageBeforeText:
		return "image_before_text"
	case RelationTextBeforeImage:
		return "text_before_image"
	case RelationImageAboveText:
		return "image_above_text"
	case RelationTextAboveImage:
		return "text_above_image"
	default:
		return fmt.Sprintf("TextImageRelation(%d)", int(r))
	}
}

// LayoutTextImage returns the top-left corners of the image and the text
// inside bounds. The pair is centered as a group; an empty image or text
// takes no room and adds no spacing.
func LayoutTextImage(rel TextImageRelation, bounds graphics.Rect, imageSize, textSize graphics.Size) (imageAt, textAt graphics.Offset) {
	center := bounds.Center()
	centered := func(s graphics.Size) graphics.Offset {
		return graphics.Offset{X: center.X - s.Width/2, Y: center.Y - s.Height/2}
	}
	gap := 0.0
	if !imageSize.IsEmpty() && !textSize.IsEmpty() {
		gap = textImageSpacing
	}

	switch rel {
	case RelationOverlay:
		return centered(imageSize), centered(textSize)

	case RelationImageBeforeText, RelationTextBeforeImage:
		total := imageSize.Width + gap + textSize.Width
		left := center.X - total/2
		imageAt = graphics.Offset{X: left, Y: center.Y - imageSize.Height/2}
		textAt = graphics.Offset{X: left + imageSize.Width + gap, Y: center.Y - textSize.Height/2}
		if rel == RelationTextBeforeImage {
			textAt.X = left
			imageAt.X = left + textSize.Width + gap
		}
		return imageAt, textAt

	case RelationImageAboveText, RelationTextAboveImage:
		total := imageSize.Height + gap + textSize.Height
		top := center.Y - total/2
		imageAt = graphics.Offset{X: center.X - imageSize.Width/2, Y: top}
		textAt = graphics.Offset{X: center.X - textSize.Width/2, Y: top + imageSize.Height + gap}
		if rel == RelationTextAboveImage {
			textAt.Y = top
			imageAt.Y = top + textSize.Height + gap
		}
		return imageAt, textAt

	default:
		errors.Unreachable("widgets.LayoutTextImage", rel)
		return graphics.Offset{}, graphics.Offset{}
	}
}
