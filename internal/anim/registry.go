package anim

import (
	"sort"
	"sync"
)

// Registry owns every live scroll trigger. Triggers enter through a Scope
// and leave through their Handle, their Scope's Teardown, or KillAll.
type Registry struct {
	engine Engine

	mu    sync.Mutex
	next  uint64
	live  map[uint64]*Trigger
	owner map[uint64]*Scope
}

func NewRegistry(engine Engine) *Registry {
	return &Registry{
		engine: engine,
		live:   make(map[uint64]*Trigger),
		owner:  make(map[uint64]*Scope),
	}
}

// Len reports the number of live triggers.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

func (r *Registry) add(s *Scope, t *Trigger) *Handle {
	r.mu.Lock()
	r.next++
	t.id = r.next
	r.live[t.id] = t
	r.owner[t.id] = s
	r.mu.Unlock()

	return &Handle{registry: r, trigger: t}
}

// kill removes the trigger and tells the engine. It reports whether the
// trigger was still live.
func (r *Registry) kill(t *Trigger) bool {
	r.mu.Lock()
	_, ok := r.live[t.id]
	delete(r.live, t.id)
	delete(r.owner, t.id)
	r.mu.Unlock()

	if ok {
		r.engine.Kill(t)
	}
	return ok
}

// killWhere kills the matching triggers in registration order.
func (r *Registry) killWhere(match func(*Scope) bool) int {
	r.mu.Lock()
	var doomed []*Trigger
	for id, t := range r.live {
		if match(r.owner[id]) {
			doomed = append(doomed, t)
		}
	}
	r.mu.Unlock()

	sort.Slice(doomed, func(i, j int) bool { return doomed[i].id < doomed[j].id })

	n := 0
	for _, t := range doomed {
		if r.kill(t) {
			n++
		}
	}
	return n
}

// KillAll detaches every registered trigger.
func (r *Registry) KillAll() int {
	return r.killWhere(func(*Scope) bool { return true })
}

// Handle releases a single scroll trigger. A nil Handle is valid and
// releasing it does nothing.
type Handle struct {
	registry *Registry
	trigger  *Trigger
}

// Trigger returns the registered trigger, or nil for a nil handle.
func (h *Handle) Trigger() *Trigger {
	if h == nil {
		return nil
	}
	return h.trigger
}

// Release kills the trigger. Safe to call more than once.
func (h *Handle) Release() {
	if h == nil {
		return
	}
	h.registry.kill(h.trigger)
}

// Scope groups the triggers registered by one view so they can be torn
// down together without touching other views.
type Scope struct {
	tk *Toolkit
}

// Teardown kills every trigger this scope registered and returns how many
// were still live.
func (s *Scope) Teardown() int {
	return s.tk.registry.killWhere(func(owner *Scope) bool { return owner == s })
}

func (s *Scope) register(t *Trigger) *Handle {
	if !s.tk.initialized.Load() {
		s.tk.logger.Warn("scroll trigger registered before toolkit init",
			"trigger", t.Target.Key(),
		)
	}
	return s.tk.registry.add(s, t)
}
