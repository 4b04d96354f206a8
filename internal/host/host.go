// Package host runs plugins against an in-memory scene and animation clock.
// It serializes every call: Init once per plugin, then PreRender on each tick.
package host

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/tesseract/internal/engine/animation"
	"github.com/Faultbox/tesseract/internal/engine/scene"
	"github.com/Faultbox/tesseract/internal/logger"
	"github.com/Faultbox/tesseract/internal/pluginapi"
)

type loaded struct {
	name   string
	plugin pluginapi.Plugin
}

// Host owns the scene and clock and drives the loaded plugins.
type Host struct {
	scene   *scene.Scene
	clock   *animation.Parameters
	plugins []loaded
}

// New creates a host with an empty scene and a clock at frame 0.
func New() *Host {
	return &Host{
		scene: scene.New(),
		clock: animation.NewParameters(),
	}
}

// Scene implements pluginapi.API.
func (h *Host) Scene() pluginapi.Scene {
	return h.scene
}

// AnimationParameters implements pluginapi.API.
func (h *Host) AnimationParameters() pluginapi.AnimationParameters {
	return h.clock
}

// World returns the concrete scene for drawing and export.
func (h *Host) World() *scene.Scene {
	return h.scene
}

// Clock returns the concrete animation clock.
func (h *Host) Clock() *animation.Parameters {
	return h.clock
}

// Load constructs and initializes the named plugins in order. It stops at the
// first failure; plugins initialized before it stay loaded.
func (h *Host) Load(names ...string) error {
	for _, name := range names {
		f, err := lookup(name)
		if err != nil {
			return err
		}
		if err := h.Add(name, f(h)); err != nil {
			return err
		}
	}
	return nil
}

// Add initializes an already constructed plugin and keeps it for ticking.
func (h *Host) Add(name string, p pluginapi.Plugin) error {
	logger.Info("initializing plugin", zap.String("plugin", name))
	if err := p.Init(); err != nil {
		return fmt.Errorf("plugin %s: %w", name, err)
	}
	h.plugins = append(h.plugins, loaded{name: name, plugin: p})
	return nil
}

// PreRender runs every plugin's PreRender at the current frame.
func (h *Host) PreRender() error {
	for _, l := range h.plugins {
		if err := l.plugin.PreRender(); err != nil {
			return fmt.Errorf("plugin %s: %w", l.name, err)
		}
	}
	return nil
}

// Tick advances the clock by steps and runs PreRender.
func (h *Host) Tick(steps int) error {
	h.clock.Advance(steps)
	return h.PreRender()
}

// SetFrame moves the clock to frame and runs PreRender.
func (h *Host) SetFrame(frame int) error {
	h.clock.SetFrame(frame)
	return h.PreRender()
}
