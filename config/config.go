package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"

	"github.com/sablegate/grotto/gamemath"
)

// Default is the render layer all renderers register on.
const Default ecs.LayerID = 0

// WindowConfig holds the window and world-viewport dimensions. Levels are
// authored to fill the viewport exactly; world bounds for clamping are taken
// from the loaded level, not from here.
type WindowConfig struct {
	Width    int
	Height   int
	TileSize float64
	Title    string
}

var C = WindowConfig{
	Width:    800,
	Height:   480,
	TileSize: 32,
	Title:    "grotto",
}

// PlayerConfig contains all player-related configuration values.
type PlayerConfig struct {
	// Movement. SpeedFactor is the fixed horizontal velocity while a
	// direction is held; JumpFactor is the instantaneous upward velocity on
	// jump. Both are per-frame displacements.
	SpeedFactor float64
	JumpFactor  float64

	// Lives
	StartingLives int

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
	FrameWidth      int
	FrameHeight     int
}

var Player = PlayerConfig{
	SpeedFactor:     5,
	JumpFactor:      14,
	StartingLives:   3,
	CollisionWidth:  24,
	CollisionHeight: 30,
	FrameWidth:      32,
	FrameHeight:     32,
}

// PhysicsConfig holds the global simulation constants. Gravity is a constant
// per-frame velocity increment; physics is frame-indexed, not scaled by
// elapsed time.
type PhysicsConfig struct {
	Gravity gamemath.Vec
}

var Physics = PhysicsConfig{
	Gravity: gamemath.Vec{X: 0, Y: 0.75},
}

// CameraConfig tunes the follow camera.
type CameraConfig struct {
	FollowSmoothing         float64
	LookAheadDistanceX      float64
	LookAheadSmoothing      float64
	LookAheadSpeedThreshold float64
}

var Camera = CameraConfig{
	FollowSmoothing:         0.08,
	LookAheadDistanceX:      48,
	LookAheadSmoothing:      0.05,
	LookAheadSpeedThreshold: 0.5,
}

// TransitionConfig tunes the door fade transition.
type TransitionConfig struct {
	FadeOutSeconds float32
	FadeInSeconds  float32
}

var Transition = TransitionConfig{
	FadeOutSeconds: 0.4,
	FadeInSeconds:  0.4,
}

// MenuConfig holds title screen colors.
type MenuConfig struct {
	BackgroundColor color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	TextColor       color.RGBA
}

var Menu = MenuConfig{
	BackgroundColor: color.RGBA{18, 16, 24, 255},
	ButtonIdle:      color.RGBA{60, 56, 80, 255},
	ButtonHover:     color.RGBA{86, 80, 112, 255},
	ButtonPressed:   color.RGBA{44, 40, 60, 255},
	TextColor:       color.RGBA{230, 228, 240, 255},
}

// DebugConfig holds developer toggles.
type DebugConfig struct {
	SkipMenu bool
}

var Debug = DebugConfig{
	SkipMenu: false,
}
