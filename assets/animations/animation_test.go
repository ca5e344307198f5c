package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnimationAdvancesAfterDelay(t *testing.T) {
	a := NewAnimation(0, 3, 1, 2)
	assert.Equal(t, 0, a.Frame())

	a.Update() // counter 2 -> 1
	a.Update() // counter 1 -> 0
	assert.Equal(t, 0, a.Frame())
	a.Update() // counter 0 -> -1: advance
	assert.Equal(t, 1, a.Frame())
}

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(0, 2, 1, 0)
	a.Update()
	a.Update()
	assert.Equal(t, 2, a.Frame())
	assert.False(t, a.Looped)
	a.Update()
	assert.Equal(t, 0, a.Frame())
	assert.True(t, a.Looped)
}

func TestAnimationRestart(t *testing.T) {
	a := NewAnimation(4, 7, 1, 0)
	a.Update()
	a.Update()
	assert.Equal(t, 6, a.Frame())

	a.Restart()
	assert.Equal(t, 4, a.Frame())
	assert.False(t, a.Looped)
}
