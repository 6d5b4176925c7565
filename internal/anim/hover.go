package anim

import "sync"

// DefaultMagneticStrength is used when MagneticHover gets a zero strength.
const DefaultMagneticStrength = 0.3

// MagneticHover pulls el toward the pointer while hovered and springs it
// back on leave. The returned function removes both listeners; it is safe
// to call more than once.
func (tk *Toolkit) MagneticHover(el Element, strength float64) (detach func()) {
	strength = or(strength, DefaultMagneticStrength)
	targets := []Element{el}

	move := el.AddListener(PointerMove, func(ev PointerEvent) {
		cx, cy := el.BoundingRect().Center()
		tk.engine.To(targets, Vars{
			Props:    Props{"x": (ev.ClientX - cx) * strength, "y": (ev.ClientY - cy) * strength},
			Duration: 0.3,
			Ease:     "power2.out",
		})
	})
	leave := el.AddListener(PointerLeave, func(PointerEvent) {
		tk.engine.To(targets, Vars{
			Props:    Props{"x": 0.0, "y": 0.0},
			Duration: 0.5,
			Ease:     "elastic.out(1, 0.3)",
		})
	})

	var once sync.Once
	return func() {
		once.Do(func() {
			el.RemoveListener(move)
			el.RemoveListener(leave)
		})
	}
}
