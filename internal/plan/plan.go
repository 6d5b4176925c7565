// Package plan records animation effects into a JSON plan that the browser
// replays on its own tweening engine.
package plan

import (
	"sync"

	"github.com/gafarajao/portfolio/internal/anim"
)

// Plan is the serialised form of everything scheduled on a Recorder.
type Plan struct {
	Plugins []string `json:"plugins"`
	Steps   []Step   `json:"steps"`
}

// Step is one engine call. Targets are element selectors.
type Step struct {
	Op            string         `json:"op"`
	Targets       []string       `json:"targets"`
	From          map[string]any `json:"from,omitempty"`
	To            map[string]any `json:"to"`
	Duration      float64        `json:"duration,omitempty"`
	Delay         float64        `json:"delay,omitempty"`
	Stagger       float64        `json:"stagger,omitempty"`
	Ease          string         `json:"ease,omitempty"`
	ScrollTrigger *ScrollTrigger `json:"scrollTrigger,omitempty"`
}

// ScrollTrigger mirrors anim.Trigger. End is a position string, or an
// Offset when the end depends on layout.
type ScrollTrigger struct {
	Trigger             string      `json:"trigger"`
	Start               string      `json:"start,omitempty"`
	End                 any         `json:"end,omitempty"`
	Pin                 bool        `json:"pin,omitempty"`
	Scrub               *anim.Scrub `json:"scrub,omitempty"`
	InvalidateOnRefresh bool        `json:"invalidateOnRefresh,omitempty"`
}

// Offset is an end position of "+=" the measured value.
type Offset struct {
	Measure anim.Measure `json:"$offset"`
}

const (
	OpSet    = "set"
	OpTo     = "to"
	OpFromTo = "fromTo"
)

type entry struct {
	op      string
	targets []string
	from    anim.Props
	vars    anim.Vars
	step    Step
}

// Recorder is an anim.Engine that keeps every call as a plan step.
// Dynamic values carrying a Measure are recorded as measurement
// descriptors for the browser to evaluate; the rest are evaluated when
// recorded and again on Refresh.
type Recorder struct {
	mu        sync.Mutex
	plugins   []string
	entries   []*entry
	refreshes int
}

var _ anim.Engine = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RegisterPlugin(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.plugins {
		if p == name {
			return
		}
	}
	r.plugins = append(r.plugins, name)
}

func (r *Recorder) Set(targets []anim.Element, props anim.Props) {
	r.add(OpSet, targets, nil, anim.Vars{Props: props})
}

func (r *Recorder) To(targets []anim.Element, vars anim.Vars) {
	r.add(OpTo, targets, nil, vars)
}

func (r *Recorder) FromTo(targets []anim.Element, from anim.Props, to anim.Vars) {
	r.add(OpFromTo, targets, from, to)
}

// Refresh re-evaluates every recorded step.
func (r *Recorder) Refresh() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refreshes++
	for _, e := range r.entries {
		e.step = e.resolve()
	}
}

// Kill drops the steps driven by t.
func (r *Recorder) Kill(t *anim.Trigger) {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.entries[:0]
	for _, e := range r.entries {
		if e.vars.Trigger != t {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(r.entries); i++ {
		r.entries[i] = nil
	}
	r.entries = kept
}

// Refreshes reports how many times Refresh ran.
func (r *Recorder) Refreshes() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.refreshes
}

// Plan returns the steps recorded so far.
func (r *Recorder) Plan() Plan {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := Plan{
		Plugins: append([]string{}, r.plugins...),
		Steps:   make([]Step, 0, len(r.entries)),
	}
	for _, e := range r.entries {
		p.Steps = append(p.Steps, e.step)
	}
	return p
}

func (r *Recorder) add(op string, targets []anim.Element, from anim.Props, vars anim.Vars) {
	keys := make([]string, len(targets))
	for i, t := range targets {
		keys[i] = t.Key()
	}
	e := &entry{op: op, targets: keys, from: from, vars: vars}
	e.step = e.resolve()

	r.mu.Lock()
	r.entries = append(r.entries, e)
	r.mu.Unlock()
}

func (e *entry) resolve() Step {
	s := Step{
		Op:       e.op,
		Targets:  e.targets,
		From:     describe(e.from),
		To:       describe(e.vars.Props),
		Duration: e.vars.Duration,
		Delay:    e.vars.Delay,
		Stagger:  e.vars.Stagger,
		Ease:     e.vars.Ease,
	}
	if s.To == nil {
		s.To = map[string]any{}
	}
	if t := e.vars.Trigger; t != nil {
		st := &ScrollTrigger{
			Trigger:             t.Target.Key(),
			Start:               t.Start,
			Pin:                 t.Pin,
			InvalidateOnRefresh: t.InvalidateOnRefresh,
		}
		switch {
		case t.EndMeasure.Kind != anim.MeasureNone:
			st.End = Offset{Measure: t.EndMeasure}
		case t.ResolvedEnd() != "":
			st.End = t.ResolvedEnd()
		}
		if t.Scrub.On {
			scrub := t.Scrub
			st.Scrub = &scrub
		}
		s.ScrollTrigger = st
	}
	return s
}

func describe(p anim.Props) map[string]any {
	if p == nil {
		return nil
	}
	out := make(map[string]any, len(p))
	for k, v := range p {
		if d, ok := v.(anim.Dynamic); ok {
			if d.Measure.Kind != anim.MeasureNone {
				v = d.Measure
			} else {
				v = d.Eval()
			}
		}
		out[k] = v
	}
	return out
}
