// Package viewer implements the interactive window loop: input, playback,
// plugin ticks and rendering.
package viewer

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/tesseract/internal/config"
	"github.com/Faultbox/tesseract/internal/engine/camera"
	"github.com/Faultbox/tesseract/internal/engine/debug"
	"github.com/Faultbox/tesseract/internal/engine/input"
	"github.com/Faultbox/tesseract/internal/engine/renderer"
	"github.com/Faultbox/tesseract/internal/engine/window"
	"github.com/Faultbox/tesseract/internal/host"
	"github.com/Faultbox/tesseract/internal/logger"
)

const title = "Tesseract"

// Viewer is the main viewer instance.
type Viewer struct {
	config     *config.Config
	running    bool
	showBounds bool

	window     *window.Window
	renderer   *renderer.Renderer
	input      *input.Input
	camera     *camera.OrbitCamera
	host       *host.Host
	playback   *Playback
	screenshot *debug.ScreenshotCapture
}

// New creates the window, renderer and host, and loads the configured plugins.
func New(cfg *config.Config) (*Viewer, error) {
	logger.Info("initializing viewer",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Strings("plugins", cfg.Animation.Plugins),
	)

	v := &Viewer{
		config:     cfg,
		showBounds: cfg.Graphics.ShowBounds,
		input:      input.New(),
		camera:     camera.NewOrbitCamera(),
		host:       host.New(),
		playback:   NewPlayback(cfg.Animation.FramesPerSecond, cfg.Animation.Paused),
		screenshot: debug.NewScreenshotCapture("screenshots", "tesseract"),
	}

	// Create window (this also creates OpenGL context)
	var err error
	v.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context, and the drawable may be larger than
	// the requested size on HiDPI displays.
	width, height := v.window.GetSize()
	v.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		Background: cfg.Graphics.Background,
	})
	if err != nil {
		v.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	if err := v.host.Load(cfg.Animation.Plugins...); err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to load plugins: %w", err)
	}
	if err := v.host.SetFrame(cfg.Animation.StartFrame); err != nil {
		v.Close()
		return nil, fmt.Errorf("failed to set start frame: %w", err)
	}

	v.camera.FitToBounds(v.host.World().Bounds())

	logger.Info("viewer initialized")
	return v, nil
}

// Run starts the main loop. It returns when the window closes or a plugin fails.
func (v *Viewer) Run() error {
	v.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting viewer loop")

	for v.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		// 1. Process input
		if v.input.Update() {
			v.running = false
			break
		}
		v.handleEvents()

		// 2. Advance animation
		if err := v.update(dt); err != nil {
			return fmt.Errorf("update error: %w", err)
		}

		// 3. Render
		v.renderer.Render(v.host.World(), v.camera, v.showBounds)
		if v.input.IsKeyPressed(sdl.SCANCODE_F12) {
			v.capture()
		}

		// 4. Present
		v.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			logger.Debug("fps",
				zap.Int("count", frameCount),
				zap.Int("frame", v.host.Clock().Frame()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close cleans up viewer resources.
func (v *Viewer) Close() {
	logger.Info("closing viewer")

	if v.renderer != nil {
		v.renderer.Close()
	}
	if v.window != nil {
		v.window.Close()
	}
}

func (v *Viewer) handleEvents() {
	for _, event := range v.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			width, height := v.window.GetSize()
			v.renderer.Resize(width, height)
		case input.EventKeyDown:
			v.handleKey(event.Key)
		case input.EventMouseMove:
			if v.input.IsButtonDown(sdl.BUTTON_LEFT) {
				v.camera.HandleDrag(float32(event.DeltaX), float32(event.DeltaY))
			}
		case input.EventMouseWheel:
			v.camera.HandleZoom(float32(event.DeltaY))
		}
	}
}

func (v *Viewer) handleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_ESCAPE:
		v.running = false
	case sdl.SCANCODE_SPACE:
		v.playback.TogglePause()
		logger.Debug("playback toggled", zap.Bool("paused", v.playback.Paused()))
	case sdl.SCANCODE_RIGHT:
		v.playback.Step(1)
	case sdl.SCANCODE_LEFT:
		v.playback.Step(-1)
	case sdl.SCANCODE_B:
		v.showBounds = !v.showBounds
	case sdl.SCANCODE_HOME:
		v.camera.FitToBounds(v.host.World().Bounds())
	}
}

func (v *Viewer) update(dt float64) error {
	steps := v.playback.Update(dt)
	if steps == 0 {
		return nil
	}
	if err := v.host.Tick(steps); err != nil {
		return err
	}

	clock := v.host.Clock()
	v.window.SetTitle(fmt.Sprintf("%s - %d %s", title, clock.Frame(), clock.Unit()))
	return nil
}

func (v *Viewer) capture() {
	pixels, width, height := v.renderer.ReadPixels()
	path, err := v.screenshot.CaptureFromPixels(pixels, width, height, v.host.Clock().Frame())
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}
