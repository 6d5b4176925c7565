package anim

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ScrollTriggerPlugin is the engine plugin backing every scroll-gated effect.
const ScrollTriggerPlugin = "ScrollTrigger"

// Props maps animatable properties (x, y, opacity, scale, ...) to values.
// A value is a float64 or a Dynamic.
type Props map[string]any

// Dynamic is a property value the engine evaluates when the tween is
// created and again on every refresh. Measure says what Eval measures so
// an engine running elsewhere can take the measurement itself.
type Dynamic struct {
	Eval    func() float64
	Measure Measure
}

// Resolve returns a copy of p with every Dynamic evaluated.
func (p Props) Resolve() Props {
	if p == nil {
		return nil
	}
	out := make(Props, len(p))
	for k, v := range p {
		if d, ok := v.(Dynamic); ok {
			v = d.Eval()
		}
		out[k] = v
	}
	return out
}

type MeasureKind int

const (
	MeasureNone MeasureKind = iota
	// MeasureOverflow is Target's scroll width minus Container's client width,
	// never negative.
	MeasureOverflow
	// MeasureInnerHeight is the viewport height.
	MeasureInnerHeight
	// MeasurePathLength is the total length of the path Target.
	MeasurePathLength
)

// Measure is a layout measurement multiplied by Scale. Target and
// Container are element keys.
type Measure struct {
	Kind      MeasureKind
	Target    string
	Container string
	Scale     float64
}

// Overflow measures how far wrapper overflows container.
func Overflow(wrapper, container Element, scale float64) Measure {
	return Measure{Kind: MeasureOverflow, Target: wrapper.Key(), Container: container.Key(), Scale: scale}
}

func InnerHeight(scale float64) Measure {
	return Measure{Kind: MeasureInnerHeight, Scale: scale}
}

func PathLength(path Element) Measure {
	return Measure{Kind: MeasurePathLength, Target: path.Key(), Scale: 1}
}

type overflowRef struct {
	Wrapper   string  `json:"wrapper"`
	Container string  `json:"container"`
	Scale     float64 `json:"scale"`
}

// MarshalJSON encodes the measurement as a one-key descriptor object:
// {"$overflow":{...}}, {"$innerHeight":scale} or {"$pathLength":key}.
func (m Measure) MarshalJSON() ([]byte, error) {
	switch m.Kind {
	case MeasureOverflow:
		return json.Marshal(struct {
			Overflow overflowRef `json:"$overflow"`
		}{overflowRef{Wrapper: m.Target, Container: m.Container, Scale: m.Scale}})
	case MeasureInnerHeight:
		return json.Marshal(struct {
			InnerHeight float64 `json:"$innerHeight"`
		}{m.Scale})
	case MeasurePathLength:
		return json.Marshal(struct {
			PathLength string `json:"$pathLength"`
		}{m.Target})
	default:
		return nil, fmt.Errorf("measure kind %d has no encoding", m.Kind)
	}
}

// Vars describes the destination of a tween.
type Vars struct {
	Props    Props
	Duration float64
	Delay    float64
	Stagger  float64
	Ease     string
	Trigger  *Trigger
}

// Scrub ties tween progress to scroll progress. With Smoothing zero the
// tween follows the scrollbar directly; otherwise it catches up over
// Smoothing seconds.
type Scrub struct {
	On        bool
	Smoothing float64
}

var (
	// ScrubOff plays the tween once when the trigger is crossed.
	ScrubOff    = Scrub{}
	ScrubLinked = Scrub{On: true}
)

func ScrubSmooth(seconds float64) Scrub { return Scrub{On: true, Smoothing: seconds} }

// MarshalJSON encodes the scrub the way the browser engine takes it:
// false, true, or a smoothing duration.
func (s Scrub) MarshalJSON() ([]byte, error) {
	switch {
	case !s.On:
		return []byte("false"), nil
	case s.Smoothing == 0:
		return []byte("true"), nil
	default:
		return json.Marshal(s.Smoothing)
	}
}

func (s *Scrub) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v := v.(type) {
	case bool:
		*s = Scrub{On: v}
	case float64:
		*s = ScrubSmooth(v)
	default:
		return fmt.Errorf("scrub must be a bool or a number, got %s", data)
	}
	return nil
}

// Trigger binds a scroll range on Target to a tween's play state.
type Trigger struct {
	Target Element
	Start  string
	End    string
	// EndFunc, when set, supersedes End and is re-evaluated on refresh.
	// EndMeasure describes the offset EndFunc computes.
	EndFunc             func() string
	EndMeasure          Measure
	Pin                 bool
	Scrub               Scrub
	InvalidateOnRefresh bool

	id uint64
}

// ID is assigned when the trigger is registered; zero before that.
func (t *Trigger) ID() uint64 { return t.id }

// ResolvedEnd returns the current end position.
func (t *Trigger) ResolvedEnd() string {
	if t.EndFunc != nil {
		return t.EndFunc()
	}
	return t.End
}

// Engine is the tweening engine effects are scheduled on.
type Engine interface {
	RegisterPlugin(name string)
	// Set applies props immediately.
	Set(targets []Element, props Props)
	To(targets []Element, vars Vars)
	FromTo(targets []Element, from Props, to Vars)
	// Refresh recomputes trigger positions and Dynamic values.
	Refresh()
	// Kill detaches the trigger and the tween it drives.
	Kill(t *Trigger)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func formatOffset(v float64) string {
	return "+=" + strconv.FormatFloat(v, 'f', -1, 64)
}
