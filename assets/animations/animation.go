// Package animations provides the sprite-sheet frame timer. Animation timing
// is tick-driven like everything else in the game; the timer advances one
// step per Update call.
package animations

type Animation struct {
	First  int
	Last   int
	Step   int     // how many frame indices to move per advance
	Delay  float32 // ticks to wait before the next advance
	Looped bool    // set once the animation has wrapped at least once

	counter float32
	frame   int
}

func NewAnimation(first, last, step int, delay float32) *Animation {
	return &Animation{
		First:   first,
		Last:    last,
		Step:    step,
		Delay:   delay,
		counter: delay,
		frame:   first,
	}
}

func (a *Animation) Update() {
	a.counter -= 1.0
	if a.counter >= 0.0 {
		return
	}
	a.counter = a.Delay
	a.frame += a.Step
	if a.frame > a.Last {
		a.Looped = true
		a.frame = a.First
	}
}

// Frame returns the current sheet frame index.
func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.counter = a.Delay
	a.Looped = false
}
