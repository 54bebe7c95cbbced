package animation_test

import (
	"fmt"
	"time"

	"github.com/go-drift/visualkit/pkg/animation"
	"github.com/go-drift/visualkit/pkg/graphics"
)

// This example shows a one-shot ripple engine running to completion.
func ExampleEngine() {
	ripple := animation.NewEngine(animation.PolicyOneShot, 0.25, animation.LinearCurve)
	ripple.Start(animation.DirectionIn, graphics.Offset{X: 10, Y: 10})

	for ripple.IsAnimating() {
		ripple.Tick()
		if ripple.Count() > 0 {
			fmt.Printf("progress %.2f\n", ripple.Progress(0))
		}
	}
	fmt.Println("entries left:", ripple.Count())
	// Output:
	// progress 0.25
	// progress 0.50
	// progress 0.75
	// entries left: 0
}

// This example shows a hover fade reversing halfway through.
func ExampleEngine_singular() {
	hover := animation.NewEngine(animation.PolicySingular, 0.25, nil)
	hover.Start(animation.DirectionIn, graphics.Offset{})
	hover.Tick()
	hover.Tick()

	// Pointer leaves: the same entry turns around from 0.5.
	hover.Start(animation.DirectionOut, graphics.Offset{})
	hover.Tick()
	fmt.Printf("%s %.2f\n", hover.Direction(0), hover.Progress(0))
	// Output:
	// out 0.25
}

// This example shows the stepped toggle slide.
func ExampleSlide() {
	slide := animation.NewSlide()
	slide.SetTarget(true)
	slide.Advance(45 * time.Millisecond)
	fmt.Println(slide.Position(), slide.IsAnimating())
	// Output:
	// 30 true
}

// This example shows a host loop driving several animations.
func ExampleLoop() {
	var loop animation.Loop
	ripple := animation.NewEngine(animation.PolicyOneShot, 0.5, animation.LinearCurve)
	slide := animation.NewSlide()
	loop.Add(ripple)
	loop.Add(slide)

	ripple.Start(animation.DirectionIn, graphics.Offset{})
	slide.SetTarget(true)
	for loop.HasActive() {
		loop.Step(animation.DefaultInterval)
	}
	fmt.Println(ripple.Count(), slide.Position())
	// Output:
	// 0 100
}

// This example shows how to use tweens with an engine entry.
func ExampleTween() {
	fade := animation.NewEngine(animation.PolicySingular, 0.5, animation.LinearCurve)
	border := animation.TweenColor(graphics.RGB(0, 0, 0), graphics.RGB(200, 100, 0))

	fade.Start(animation.DirectionIn, graphics.Offset{})
	fade.Tick()
	fmt.Println(border.Transform(fade, 0))
	// Output:
	// #643200
}
