package config

import (
	"image/color"
	"time"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions
	Width  int
	Height int

	// Movement
	Step       int // pixels per tick while walking
	RidingStep int // pixels per tick while on the ferris wheel

	// Spawn
	StartX      int
	StartY      int
	StartFacing string

	// Walk cycle
	MaxFrame int
}

// CanvasConfig describes the park world in world pixels
type CanvasConfig struct {
	Width  float64
	Height float64
}

// LoopConfig contains game loop timing
type LoopConfig struct {
	Interval time.Duration // fixed logic step
}

// ViewportConfig contains camera/viewport sizing rules
type ViewportConfig struct {
	MaxWidth  float64
	MaxHeight float64
	Margin    float64 // window inset on each resize
	AspectW   float64
	AspectH   float64
}

// NetworkConfig contains client networking values
type NetworkConfig struct {
	ServerURL      string
	InboxSize      int           // decoded messages buffered between reader and tick
	InputQueueSize int           // input events buffered between frames
	DialTimeout    time.Duration // per connection attempt
	WriteTimeout   time.Duration
}

// FireworksConfig contains the fireworks burst animation values
type FireworksConfig struct {
	Frames        int     // frames per burst
	TicksPerFrame int     // ticks each frame is held
	MinWait       int     // ticks between bursts, lower bound
	MaxWait       int     // ticks between bursts, upper bound
	MinSize       float32 // size multiplier at burst start
	MaxSize       float32 // size multiplier at burst end
	GrowSeconds   float32 // tween duration
}

// WavesConfig contains lake wave animation values
type WavesConfig struct {
	Frames        int
	TicksPerFrame int
}

// FerrisConfig contains ferris wheel values shared by client and relay
type FerrisConfig struct {
	MaxRiders       int
	TicksPerFrame   int // relay: ticks before the wheel frame advances
	IdleMaxFrame    int // relay: last frame while fewer than MaxRiders ride
	RidingMaxFrame  int // relay: last frame while MaxRiders ride
	FireworksDelay  time.Duration
	BroadcastPeriod time.Duration
}

// UIConfig contains colors and sizes used by the front end
type UIConfig struct {
	BackgroundColor color.RGBA
	GrassColor      color.RGBA
	PathColor       color.RGBA
	LakeColor       color.RGBA
	WaveColor       color.RGBA
	TableColor      color.RGBA
	BenchColor      color.RGBA
	WheelColor      color.RGBA
	SeatColor       color.RGBA
	PinkColor       color.RGBA
	BlueColor       color.RGBA
	TextColor       color.RGBA
	OverlayColor    color.RGBA
	FireworkColors  []color.RGBA

	HUDFontSize   float64
	TitleFontSize float64
}

// Config holds general client window configuration
type Config struct {
	Title  string
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Canvas CanvasConfig
var Loop LoopConfig
var Viewport ViewportConfig
var Network NetworkConfig
var Fireworks FireworksConfig
var Waves WavesConfig
var Ferris FerrisConfig
var UI UIConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Title:  "Cozy Park",
		Width:  1280,
		Height: 720,
	}

	Player = PlayerConfig{
		Width:       64,
		Height:      64,
		Step:        15,
		RidingStep:  0,
		StartX:      2200,
		StartY:      1300,
		StartFacing: "left",
		MaxFrame:    2,
	}

	Canvas = CanvasConfig{
		Width:  2496,
		Height: 2496 * 3.0 / 5.0,
	}

	Loop = LoopConfig{
		Interval: 50 * time.Millisecond,
	}

	Viewport = ViewportConfig{
		MaxWidth:  1920,
		MaxHeight: 1080,
		Margin:    20,
		AspectW:   16,
		AspectH:   9,
	}

	Network = NetworkConfig{
		ServerURL:      "ws://localhost:8080/ws",
		InboxSize:      256,
		InputQueueSize: 64,
		DialTimeout:    10 * time.Second,
		WriteTimeout:   5 * time.Second,
	}

	Fireworks = FireworksConfig{
		Frames:        6,
		TicksPerFrame: 2,
		MinWait:       5,
		MaxWait:       30,
		MinSize:       0.6,
		MaxSize:       1.4,
		GrowSeconds:   0.6,
	}

	Waves = WavesConfig{
		Frames:        4,
		TicksPerFrame: 10,
	}

	Ferris = FerrisConfig{
		MaxRiders:       2,
		TicksPerFrame:   10,
		IdleMaxFrame:    2,
		RidingMaxFrame:  5,
		FireworksDelay:  5 * time.Second,
		BroadcastPeriod: 50 * time.Millisecond,
	}

	UI = UIConfig{
		BackgroundColor: color.RGBA{R: 24, G: 32, B: 28, A: 255},
		GrassColor:      color.RGBA{R: 110, G: 168, B: 92, A: 255},
		PathColor:       color.RGBA{R: 196, G: 170, B: 126, A: 255},
		LakeColor:       color.RGBA{R: 72, G: 136, B: 200, A: 255},
		WaveColor:       color.RGBA{R: 190, G: 224, B: 250, A: 255},
		TableColor:      color.RGBA{R: 140, G: 92, B: 56, A: 255},
		BenchColor:      color.RGBA{R: 120, G: 80, B: 48, A: 255},
		WheelColor:      color.RGBA{R: 220, G: 220, B: 232, A: 255},
		SeatColor:       color.RGBA{R: 230, G: 96, B: 96, A: 255},
		PinkColor:       color.RGBA{R: 244, G: 143, B: 177, A: 255},
		BlueColor:       color.RGBA{R: 100, G: 160, B: 240, A: 255},
		TextColor:       White,
		OverlayColor:    BlackOverlay,
		FireworkColors:  []color.RGBA{Yellow, Orange, Red, Magenta, LightBlue},

		HUDFontSize:   16,
		TitleFontSize: 48,
	}
}
