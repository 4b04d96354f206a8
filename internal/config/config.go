// Package config handles viewer and dump configuration loading.
package config

// Config holds all settings.
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Animation AnimationConfig `yaml:"animation"`
	Export    ExportConfig    `yaml:"export"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	ShowBounds bool       `yaml:"show_bounds"`
	Background [3]float32 `yaml:"background"`
}

// AnimationConfig holds playback settings.
type AnimationConfig struct {
	Plugins         []string `yaml:"plugins"`
	StartFrame      int      `yaml:"start_frame"`
	FramesPerSecond float64  `yaml:"frames_per_second"`
	Paused          bool     `yaml:"paused"`
}

// ExportConfig holds settings for the headless frame dump.
type ExportConfig struct {
	Output string `yaml:"output"` // empty or "-" means stdout
	From   int    `yaml:"from"`
	To     int    `yaml:"to"`
	Step   int    `yaml:"step"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			ShowBounds: false,
			Background: [3]float32{0.1, 0.1, 0.15},
		},
		Animation: AnimationConfig{
			Plugins:         []string{"hypercube"},
			StartFrame:      0,
			FramesPerSecond: 60,
			Paused:          false,
		},
		Export: ExportConfig{
			Output: "",
			From:   0,
			To:     359,
			Step:   1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
