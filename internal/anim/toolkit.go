// Package anim declares entrance, scroll and hover effects and schedules
// them on a tweening Engine.
//
// A Toolkit is created once by the application shell, which calls Init
// during startup. Scroll-gated effects are registered through a Scope so a
// view can tear down exactly the triggers it created.
package anim

import (
	"log/slog"
	"sync"
	"sync/atomic"
)

type Toolkit struct {
	engine   Engine
	viewport Viewport
	logger   *slog.Logger
	registry *Registry

	initOnce    sync.Once
	initialized atomic.Bool
}

// New returns a toolkit scheduling on engine. A nil logger uses slog.Default.
func New(engine Engine, viewport Viewport, logger *slog.Logger) *Toolkit {
	if logger == nil {
		logger = slog.Default()
	}
	return &Toolkit{
		engine:   engine,
		viewport: viewport,
		logger:   logger,
		registry: NewRegistry(engine),
	}
}

// Init registers the scroll-trigger plugin with the engine. Only the first
// call has any effect.
func (tk *Toolkit) Init() {
	tk.initOnce.Do(func() {
		tk.engine.RegisterPlugin(ScrollTriggerPlugin)
		tk.initialized.Store(true)
		tk.logger.Debug("animation toolkit initialized", "plugin", ScrollTriggerPlugin)
	})
}

func (tk *Toolkit) Registry() *Registry { return tk.registry }

func (tk *Toolkit) NewScope() *Scope { return &Scope{tk: tk} }

// Refresh recomputes every registered trigger. Call it after layout changes.
func (tk *Toolkit) Refresh() {
	tk.engine.Refresh()
}

// TeardownAll kills every trigger in every scope.
func (tk *Toolkit) TeardownAll() {
	n := tk.registry.KillAll()
	tk.logger.Debug("scroll triggers torn down", "count", n)
}
