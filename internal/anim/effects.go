package anim

// Option structs treat zero fields as "use the default".

type RevealOptions struct {
	Delay    float64 // default 0
	Stagger  float64 // default 0.1
	Duration float64 // default 1
}

// RevealOnLoad brings elements in from below, rotated and transparent,
// staggered by index. An empty slice schedules nothing.
func (tk *Toolkit) RevealOnLoad(elements []Element, opts RevealOptions) {
	if len(elements) == 0 {
		tk.logger.Debug("reveal skipped: no elements")
		return
	}
	tk.engine.FromTo(elements,
		Props{"y": 100.0, "opacity": 0.0, "rotateX": -90.0},
		Vars{
			Props:    Props{"y": 0.0, "opacity": 1.0, "rotateX": 0.0},
			Duration: or(opts.Duration, 1),
			Stagger:  or(opts.Stagger, 0.1),
			Delay:    opts.Delay,
			Ease:     "power4.out",
		},
	)
}

type FadeUpOptions struct {
	Trigger  Element // default: the animated element
	Start    string  // default "top 80%"
	Duration float64 // default 1
	Y        float64 // default 60
}

// FadeUpOnScroll fades el up from a vertical offset once the trigger
// crosses Start.
func (s *Scope) FadeUpOnScroll(el Element, opts FadeUpOptions) *Handle {
	trigger := opts.Trigger
	if trigger == nil {
		trigger = el
	}
	t := &Trigger{Target: trigger, Start: orString(opts.Start, "top 80%")}
	h := s.register(t)
	s.tk.engine.FromTo([]Element{el},
		Props{"y": or(opts.Y, 60), "opacity": 0.0},
		Vars{
			Props:    Props{"y": 0.0, "opacity": 1.0},
			Duration: or(opts.Duration, 1),
			Ease:     "power3.out",
			Trigger:  t,
		},
	)
	return h
}

type StaggerOptions struct {
	Start    string  // default "top 80%"
	Stagger  float64 // default 0.1
	Duration float64 // default 0.8
	Y        float64 // default 40
}

// StaggerChildrenOnScroll animates the descendants of parent matching
// selector as one staggered batch gated on parent. The match is taken once,
// at call time. No matches returns a nil handle.
func (s *Scope) StaggerChildrenOnScroll(parent Element, selector string, opts StaggerOptions) *Handle {
	children := parent.QueryAll(selector)
	if len(children) == 0 {
		s.tk.logger.Debug("stagger skipped: no children", "parent", parent.Key(), "selector", selector)
		return nil
	}
	t := &Trigger{Target: parent, Start: orString(opts.Start, "top 80%")}
	h := s.register(t)
	s.tk.engine.FromTo(children,
		Props{"y": or(opts.Y, 40), "opacity": 0.0},
		Vars{
			Props:    Props{"y": 0.0, "opacity": 1.0},
			Duration: or(opts.Duration, 0.8),
			Stagger:  or(opts.Stagger, 0.1),
			Ease:     "power3.out",
			Trigger:  t,
		},
	)
	return h
}

type HorizontalOptions struct {
	Ease  string // default "none"
	Scrub *Scrub // default ScrubSmooth(1); &ScrubOff disables scrubbing
}

// HorizontalScroll pins container and pans wrapper left by the width it
// overflows container, driven by scroll. The overflow is measured again on
// every refresh. A wrapper narrower than its container does not move.
func (s *Scope) HorizontalScroll(container, wrapper Element, opts HorizontalOptions) *Handle {
	overflow := func() float64 {
		w := wrapper.ScrollWidth() - container.ClientWidth()
		if !finite(w) || w < 0 {
			return 0
		}
		return w
	}
	scrub := ScrubSmooth(1)
	if opts.Scrub != nil {
		scrub = *opts.Scrub
	}
	t := &Trigger{
		Target:              container,
		Start:               "top top",
		EndFunc:             func() string { return formatOffset(overflow()) },
		EndMeasure:          Overflow(wrapper, container, 1),
		Pin:                 true,
		Scrub:               scrub,
		InvalidateOnRefresh: true,
	}
	h := s.register(t)
	s.tk.engine.To([]Element{wrapper}, Vars{
		Props: Props{"x": Dynamic{
			Eval:    func() float64 { return -overflow() },
			Measure: Overflow(wrapper, container, -1),
		}},
		Ease:    orString(opts.Ease, "none"),
		Trigger: t,
	})
	return h
}

type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

type ParallaxOptions struct {
	Speed     float64   // default 0.5
	Direction Direction // default Up
}

// Parallax shifts el vertically across its whole transit through the
// viewport. Up moves against the scroll.
func (s *Scope) Parallax(el Element, opts ParallaxOptions) *Handle {
	speed := or(opts.Speed, 0.5)
	sign := 1.0
	if opts.Direction == "" || opts.Direction == Up {
		sign = -1
	}
	t := &Trigger{
		Target: el,
		Start:  "top bottom",
		End:    "bottom top",
		Scrub:  ScrubLinked,
	}
	h := s.register(t)
	s.tk.engine.To([]Element{el}, Vars{
		Props: Props{"y": Dynamic{
			Eval:    func() float64 { return s.tk.viewport.InnerHeight() * speed * sign },
			Measure: InnerHeight(speed * sign),
		}},
		Ease:    "none",
		Trigger: t,
	})
	return h
}

type ScaleOptions struct {
	Start     string  // default "top bottom"
	End       string  // default "top center"
	FromScale float64 // default 0.8
	ToScale   float64 // default 1
}

// ScaleOnScroll scales and fades el in between Start and End.
func (s *Scope) ScaleOnScroll(el Element, opts ScaleOptions) *Handle {
	t := &Trigger{
		Target: el,
		Start:  orString(opts.Start, "top bottom"),
		End:    orString(opts.End, "top center"),
		Scrub:  ScrubSmooth(1),
	}
	h := s.register(t)
	s.tk.engine.FromTo([]Element{el},
		Props{"scale": or(opts.FromScale, 0.8), "opacity": 0.0},
		Vars{
			Props:   Props{"scale": or(opts.ToScale, 1), "opacity": 1.0},
			Ease:    "power2.out",
			Trigger: t,
		},
	)
	return h
}

type LineDrawOptions struct {
	Duration float64 // default 1.5
	Delay    float64 // default 0
}

// LineDraw strokes a path in from nothing. Generic surfaces are left alone.
func (tk *Toolkit) LineDraw(s Surface, opts LineDrawOptions) {
	switch s.Kind() {
	case KindPath:
		length := s.path.TotalLength()
		if !finite(length) {
			tk.logger.Debug("line draw skipped: unmeasurable path", "element", s.path.Key())
			return
		}
		targets := []Element{s.path}
		measured := Dynamic{Eval: s.path.TotalLength, Measure: PathLength(s.path)}
		tk.engine.Set(targets, Props{"strokeDasharray": measured, "strokeDashoffset": measured})
		tk.engine.To(targets, Vars{
			Props:    Props{"strokeDashoffset": 0.0},
			Duration: or(opts.Duration, 1.5),
			Delay:    opts.Delay,
			Ease:     "power2.inOut",
		})
	default:
		tk.logger.Debug("line draw skipped: not a path", "element", s.Element().Key())
	}
}

func or(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func orString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
