package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	HUD
)

// MotionConfig contains the steering filter constants
type MotionConfig struct {
	StreetFactor float64 // World units per pixel of pointer travel
	TiltScale    float64 // Pixels of pointer travel equivalent to one degree of tilt
	Damping      float64 // Per-frame divisor: larger = slower, smoother approach
	RotationGain float64 // Yaw per world unit of lag between target and position
}

// CameraConfig contains the perspective camera placement
type CameraConfig struct {
	FieldOfView float64 // degrees, vertical
	Near        float64
	Far         float64
	Position    [3]float64
	Target      [3]float64
}

// GridConfig contains the street grid configuration
type GridConfig struct {
	Size        float64 // World units along each side
	Divisions   int
	ScrollSpeed float64 // World units per frame toward the camera
	Color       color.NRGBA
	CenterColor color.NRGBA
}

// InputConfig contains input source selection values
type InputConfig struct {
	TouchMaxWidth int // Viewports at most this wide use device orientation on touch devices
}

// SceneConfig contains scene-wide rendering values
type SceneConfig struct {
	ClearColor   color.RGBA
	CarColor     color.NRGBA
	Model        string
	FadeDuration float32 // seconds
	FrameDelta   float32 // seconds advanced per frame for tweens
	LineWidth    float32
	Scanlines    float32 // post-process scanline strength, 0 disables
	Vignette     float32 // post-process vignette strength, 0 disables
}

// OverlayConfig contains loading/failure overlay values
type OverlayConfig struct {
	LoadingText    string
	FailureText    string
	TextColor      color.NRGBA
	FailureColor   color.NRGBA
	PulseDuration  float32 // seconds per pulse
	StatsTextColor color.NRGBA
}

// DebugConfig contains debug/development options
type DebugConfig struct {
	ShowStats      bool // Draw the FPS/state overlay
	TraceEvery     int  // Headless mode: log the transform every N frames
	DevelopmentLog bool // Human-readable console logging
}

// Config holds general window configuration
type Config struct {
	Title  string
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Motion MotionConfig
var Camera CameraConfig
var Grid GridConfig
var Input InputConfig
var Scene SceneConfig
var Overlay OverlayConfig
var Debug DebugConfig

func init() {
	C = &Config{
		Title:  "Testarossa",
		Width:  1280,
		Height: 720,
	}

	Motion = MotionConfig{
		StreetFactor: 0.003,
		TiltScale:    30,
		Damping:      30,
		RotationGain: 0.1,
	}

	Camera = CameraConfig{
		FieldOfView: 60,
		Near:        0.1,
		Far:         5000,
		Position:    [3]float64{0, 7, 30},
		Target:      [3]float64{0, 0, 0},
	}

	Grid = GridConfig{
		Size:        200,
		Divisions:   40,
		ScrollSpeed: 0.25,
		Color:       color.NRGBA{R: 255, G: 0, B: 170, A: 140},
		CenterColor: color.NRGBA{R: 0, G: 220, B: 255, A: 200},
	}

	Input = InputConfig{
		TouchMaxWidth: 1024,
	}

	Scene = SceneConfig{
		ClearColor:   color.RGBA{R: 0x11, G: 0x23, B: 0x42, A: 0xff},
		CarColor:     color.NRGBA{R: 255, G: 42, B: 61, A: 255},
		Model:        "testarossa",
		FadeDuration: 1.2,
		FrameDelta:   1.0 / 60.0,
		LineWidth:    1.5,
		Scanlines:    0.12,
		Vignette:     0.9,
	}

	Overlay = OverlayConfig{
		LoadingText:    "LOADING",
		FailureText:    "Could not load the car model.",
		TextColor:      White,
		FailureColor:   LightRed,
		PulseDuration:  0.8,
		StatsTextColor: LightGreen,
	}

	Debug = DebugConfig{
		ShowStats:      false,
		TraceEvery:     10,
		DevelopmentLog: false,
	}
}

// Shared RGBA color constants
var (
	White      = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	LightRed   = color.NRGBA{R: 255, G: 60, B: 60, A: 255}
	LightGreen = color.NRGBA{R: 100, G: 255, B: 100, A: 255}
)
