package anim

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newToolkit(t *testing.T) (*Toolkit, *fakeEngine) {
	t.Helper()
	eng := &fakeEngine{}
	tk := New(eng, fakeViewport(900), nil)
	tk.Init()
	return tk, eng
}

func TestInit_RegistersPluginOnce(t *testing.T) {
	eng := &fakeEngine{}
	tk := New(eng, fakeViewport(900), nil)

	tk.Init()
	tk.Init()

	assert.Equal(t, []string{ScrollTriggerPlugin}, eng.plugins)
}

func TestRevealOnLoad_Empty(t *testing.T) {
	tk, eng := newToolkit(t)

	tk.RevealOnLoad(nil, RevealOptions{})
	tk.RevealOnLoad([]Element{}, RevealOptions{Delay: 1})

	assert.Zero(t, eng.count())
}

func TestRevealOnLoad_Defaults(t *testing.T) {
	tk, eng := newToolkit(t)
	a, b := newFake("#a"), newFake("#b")

	tk.RevealOnLoad([]Element{a, b}, RevealOptions{Delay: 0.2})

	require.Equal(t, 1, eng.count())
	c := eng.last()
	assert.Equal(t, "fromTo", c.op)
	assert.Len(t, c.targets, 2)
	assert.Equal(t, Props{"y": 100.0, "opacity": 0.0, "rotateX": -90.0}, c.from)
	assert.Equal(t, Props{"y": 0.0, "opacity": 1.0, "rotateX": 0.0}, c.vars.Props)
	assert.Equal(t, 1.0, c.vars.Duration)
	assert.Equal(t, 0.1, c.vars.Stagger)
	assert.Equal(t, 0.2, c.vars.Delay)
	assert.Equal(t, "power4.out", c.vars.Ease)
	assert.Nil(t, c.vars.Trigger)
}

func TestFadeUpOnScroll_DefaultsToSelfTrigger(t *testing.T) {
	tk, eng := newToolkit(t)
	el := newFake("#about")

	h := tk.NewScope().FadeUpOnScroll(el, FadeUpOptions{})

	require.NotNil(t, h)
	c := eng.last()
	assert.Equal(t, Props{"y": 60.0, "opacity": 0.0}, c.from)
	assert.Equal(t, "power3.out", c.vars.Ease)
	require.NotNil(t, c.vars.Trigger)
	assert.Same(t, el, c.vars.Trigger.Target)
	assert.Equal(t, "top 80%", c.vars.Trigger.Start)
	assert.Same(t, c.vars.Trigger, h.Trigger())
}

func TestFadeUpOnScroll_ExplicitTrigger(t *testing.T) {
	tk, eng := newToolkit(t)
	el, section := newFake("#title"), newFake("#section")

	tk.NewScope().FadeUpOnScroll(el, FadeUpOptions{Trigger: section, Start: "top 60%", Y: 20, Duration: 2})

	c := eng.last()
	assert.Same(t, section, c.vars.Trigger.Target)
	assert.Equal(t, "top 60%", c.vars.Trigger.Start)
	assert.Equal(t, 20.0, c.from["y"])
	assert.Equal(t, 2.0, c.vars.Duration)
}

func TestStaggerChildrenOnScroll(t *testing.T) {
	tk, eng := newToolkit(t)
	parent := newFake("#stats")
	for i := 0; i < 3; i++ {
		child := newFake("#stat")
		child.class = "stat"
		parent.children = append(parent.children, child)
	}

	h := tk.NewScope().StaggerChildrenOnScroll(parent, ".stat", StaggerOptions{})

	require.NotNil(t, h)
	c := eng.last()
	assert.Len(t, c.targets, 3)
	assert.Equal(t, Props{"y": 40.0, "opacity": 0.0}, c.from)
	assert.Equal(t, 0.8, c.vars.Duration)
	assert.Equal(t, 0.1, c.vars.Stagger)
	assert.Same(t, parent, c.vars.Trigger.Target)
}

func TestStaggerChildrenOnScroll_SnapshotAtCallTime(t *testing.T) {
	tk, eng := newToolkit(t)
	parent := newFake("#list")
	first := newFake("#one")
	first.class = "item"
	parent.children = []*fakeElement{first}

	tk.NewScope().StaggerChildrenOnScroll(parent, ".item", StaggerOptions{})
	late := newFake("#two")
	late.class = "item"
	parent.children = append(parent.children, late)

	assert.Len(t, eng.last().targets, 1)
}

func TestStaggerChildrenOnScroll_NoMatches(t *testing.T) {
	tk, eng := newToolkit(t)

	h := tk.NewScope().StaggerChildrenOnScroll(newFake("#empty"), ".missing", StaggerOptions{})

	assert.Nil(t, h)
	assert.Zero(t, eng.count())
	assert.Zero(t, tk.Registry().Len())
	h.Release()
}

func TestHorizontalScroll_OverflowEndpoint(t *testing.T) {
	tk, eng := newToolkit(t)
	container, wrapper := newFake("#projects"), newFake("#track")
	container.clientWidth = 1000
	wrapper.scrollWidth = 3000

	h := tk.NewScope().HorizontalScroll(container, wrapper, HorizontalOptions{})

	c := eng.last()
	assert.Equal(t, "to", c.op)
	assert.Same(t, wrapper, c.targets[0])
	assert.Equal(t, -2000.0, c.vars.Props.Resolve()["x"])
	assert.Equal(t, "none", c.vars.Ease)

	trig := h.Trigger()
	assert.Same(t, container, trig.Target)
	assert.Equal(t, "top top", trig.Start)
	assert.Equal(t, "+=2000", trig.ResolvedEnd())
	assert.True(t, trig.Pin)
	assert.True(t, trig.InvalidateOnRefresh)
	assert.Equal(t, ScrubSmooth(1), trig.Scrub)
}

func TestHorizontalScroll_RemeasuresAfterLayoutChange(t *testing.T) {
	tk, eng := newToolkit(t)
	container, wrapper := newFake("#projects"), newFake("#track")
	container.clientWidth = 1000
	wrapper.scrollWidth = 3000

	h := tk.NewScope().HorizontalScroll(container, wrapper, HorizontalOptions{Scrub: &ScrubLinked, Ease: "power1.inOut"})
	container.clientWidth = 1500
	tk.Refresh()

	assert.Equal(t, 1, eng.refresh)
	assert.Equal(t, -1500.0, eng.last().vars.Props.Resolve()["x"])
	assert.Equal(t, "+=1500", h.Trigger().ResolvedEnd())
	assert.Equal(t, ScrubLinked, h.Trigger().Scrub)
}

func TestHorizontalScroll_DescribesMeasurements(t *testing.T) {
	tk, eng := newToolkit(t)
	container, wrapper := newFake("#projects"), newFake("#track")

	h := tk.NewScope().HorizontalScroll(container, wrapper, HorizontalOptions{})

	x, ok := eng.last().vars.Props["x"].(Dynamic)
	require.True(t, ok)
	assert.Equal(t, Measure{Kind: MeasureOverflow, Target: "#track", Container: "#projects", Scale: -1}, x.Measure)
	assert.Equal(t, Measure{Kind: MeasureOverflow, Target: "#track", Container: "#projects", Scale: 1}, h.Trigger().EndMeasure)
}

func TestHorizontalScroll_ScrubOff(t *testing.T) {
	tk, _ := newToolkit(t)

	h := tk.NewScope().HorizontalScroll(newFake("#c"), newFake("#w"), HorizontalOptions{Scrub: &ScrubOff})

	assert.False(t, h.Trigger().Scrub.On)
}

func TestHorizontalScroll_NonFiniteMeasurement(t *testing.T) {
	tk, eng := newToolkit(t)
	container, wrapper := newFake("#c"), newFake("#w")
	wrapper.scrollWidth = math.Inf(1)

	tk.NewScope().HorizontalScroll(container, wrapper, HorizontalOptions{})

	assert.Equal(t, 0.0, math.Abs(eng.last().vars.Props.Resolve()["x"].(float64)))
}

func TestHorizontalScroll_NoOverflow(t *testing.T) {
	tk, _ := newToolkit(t)
	container, wrapper := newFake("#c"), newFake("#w")
	container.clientWidth = 1200
	wrapper.scrollWidth = 800

	h := tk.NewScope().HorizontalScroll(container, wrapper, HorizontalOptions{})

	assert.Equal(t, "+=0", h.Trigger().ResolvedEnd())
}

func TestParallax_Direction(t *testing.T) {
	tk, eng := newToolkit(t)
	scope := tk.NewScope()

	scope.Parallax(newFake("#up"), ParallaxOptions{})
	up := eng.last()
	scope.Parallax(newFake("#down"), ParallaxOptions{Speed: 0.2, Direction: Down})
	down := eng.last()

	assert.Equal(t, -450.0, up.vars.Props.Resolve()["y"])
	assert.Equal(t, 180.0, down.vars.Props.Resolve()["y"])
	assert.Equal(t, "none", up.vars.Ease)
	assert.Equal(t, "top bottom", up.vars.Trigger.Start)
	assert.Equal(t, "bottom top", up.vars.Trigger.End)
	assert.Equal(t, ScrubLinked, up.vars.Trigger.Scrub)
	assert.Equal(t, InnerHeight(-0.5), up.vars.Props["y"].(Dynamic).Measure)
	assert.Equal(t, InnerHeight(0.2), down.vars.Props["y"].(Dynamic).Measure)
}

func TestScaleOnScroll(t *testing.T) {
	tk, eng := newToolkit(t)

	tk.NewScope().ScaleOnScroll(newFake("#skills"), ScaleOptions{ToScale: 1.1})

	c := eng.last()
	assert.Equal(t, Props{"scale": 0.8, "opacity": 0.0}, c.from)
	assert.Equal(t, Props{"scale": 1.1, "opacity": 1.0}, c.vars.Props)
	assert.Equal(t, "top bottom", c.vars.Trigger.Start)
	assert.Equal(t, "top center", c.vars.Trigger.End)
	assert.Equal(t, ScrubSmooth(1), c.vars.Trigger.Scrub)
	assert.Equal(t, "power2.out", c.vars.Ease)
}

func TestLineDraw_GenericIsNoop(t *testing.T) {
	tk, eng := newToolkit(t)

	tk.LineDraw(Generic(newFake("#div")), LineDrawOptions{})

	assert.Zero(t, eng.count())
}

func TestLineDraw_Path(t *testing.T) {
	tk, eng := newToolkit(t)
	p := fakePath{newFake("#underline")}
	p.length = 420

	tk.LineDraw(Path(p), LineDrawOptions{Delay: 0.5})

	require.Equal(t, 2, eng.count())
	set := eng.calls[0]
	assert.Equal(t, "set", set.op)
	assert.Equal(t, Props{"strokeDasharray": 420.0, "strokeDashoffset": 420.0}, set.vars.Props.Resolve())
	assert.Equal(t, PathLength(p), set.vars.Props["strokeDasharray"].(Dynamic).Measure)

	to := eng.calls[1]
	assert.Equal(t, "to", to.op)
	assert.Equal(t, Props{"strokeDashoffset": 0.0}, to.vars.Props)
	assert.Equal(t, 1.5, to.vars.Duration)
	assert.Equal(t, 0.5, to.vars.Delay)
	assert.Equal(t, "power2.inOut", to.vars.Ease)
}

func TestMagneticHover(t *testing.T) {
	tk, eng := newToolkit(t)
	btn := newFake("#cta")
	btn.rect = Rect{Left: 100, Top: 100, Width: 100, Height: 50}

	detach := tk.MagneticHover(btn, 0)
	btn.dispatch(PointerMove, PointerEvent{ClientX: 160, ClientY: 135})

	require.Equal(t, 1, eng.count())
	move := eng.last()
	assert.InDelta(t, 3.0, move.vars.Props["x"], 1e-9)
	assert.InDelta(t, 3.0, move.vars.Props["y"], 1e-9)
	assert.Equal(t, 0.3, move.vars.Duration)
	assert.Equal(t, "power2.out", move.vars.Ease)

	btn.dispatch(PointerLeave, PointerEvent{})
	require.Equal(t, 2, eng.count())
	leave := eng.last()
	assert.Equal(t, Props{"x": 0.0, "y": 0.0}, leave.vars.Props)
	assert.Equal(t, "elastic.out(1, 0.3)", leave.vars.Ease)

	detach()
	detach()
	btn.dispatch(PointerMove, PointerEvent{ClientX: 300, ClientY: 300})
	btn.dispatch(PointerLeave, PointerEvent{})

	assert.Equal(t, 2, eng.count())
	assert.Empty(t, btn.listeners)
}

func TestSplitTextToSpans(t *testing.T) {
	doc := &fakeDocument{}
	el := newFake("#headline")
	el.text = "Hello world"

	spans := SplitTextToSpans(doc, el)

	require.Len(t, spans, 2)
	assert.Equal(t, "Hello", spans[0].TextContent())
	assert.Equal(t, "world", spans[1].TextContent())
	assert.Empty(t, el.text)
	assert.Equal(t, []string{" "}, el.textChildren)
	require.Len(t, el.children, 2)
	assert.Equal(t, []string{"display:inline-block", "overflow:hidden"}, el.children[0].style)
	assert.Same(t, spans[0], Container(el.children[0].children[0]))
}

func TestSplitTextToSpans_EmptyText(t *testing.T) {
	el := newFake("#blank")

	assert.Nil(t, SplitTextToSpans(&fakeDocument{}, el))
	assert.Empty(t, el.children)
}

func TestScope_TeardownOnlyOwnTriggers(t *testing.T) {
	tk, eng := newToolkit(t)
	a, b := tk.NewScope(), tk.NewScope()

	a.FadeUpOnScroll(newFake("#a1"), FadeUpOptions{})
	a.ScaleOnScroll(newFake("#a2"), ScaleOptions{})
	kept := b.Parallax(newFake("#b1"), ParallaxOptions{})

	assert.Equal(t, 2, a.Teardown())
	assert.Equal(t, 1, tk.Registry().Len())
	require.Len(t, eng.killed, 2)
	assert.Less(t, eng.killed[0].ID(), eng.killed[1].ID())
	assert.Zero(t, a.Teardown())

	kept.Release()
	kept.Release()
	assert.Zero(t, tk.Registry().Len())
	assert.Len(t, eng.killed, 3)
}

func TestTeardownAll(t *testing.T) {
	tk, eng := newToolkit(t)
	s1, s2 := tk.NewScope(), tk.NewScope()
	h := s1.FadeUpOnScroll(newFake("#x"), FadeUpOptions{})
	s2.FadeUpOnScroll(newFake("#y"), FadeUpOptions{})

	tk.TeardownAll()

	assert.Zero(t, tk.Registry().Len())
	assert.Len(t, eng.killed, 2)
	h.Release()
	assert.Len(t, eng.killed, 2)
}

func TestScrub_MarshalJSON(t *testing.T) {
	for _, tc := range []struct {
		scrub Scrub
		want  string
	}{
		{Scrub{}, "false"},
		{ScrubLinked, "true"},
		{ScrubSmooth(1), "1"},
		{ScrubSmooth(0.5), "0.5"},
	} {
		got, err := json.Marshal(tc.scrub)
		require.NoError(t, err)
		assert.Equal(t, tc.want, string(got))
	}
}

func TestScrub_UnmarshalJSON(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Scrub
	}{
		{"false", ScrubOff},
		{"true", ScrubLinked},
		{"1.5", ScrubSmooth(1.5)},
	} {
		var got Scrub
		require.NoError(t, json.Unmarshal([]byte(tc.in), &got))
		assert.Equal(t, tc.want, got, tc.in)
	}

	var bad Scrub
	assert.Error(t, json.Unmarshal([]byte(`"smooth"`), &bad))
}

func TestMeasure_MarshalJSON(t *testing.T) {
	for _, tc := range []struct {
		m    Measure
		want string
	}{
		{Measure{Kind: MeasureOverflow, Target: "#track", Container: "#projects", Scale: -1},
			`{"$overflow":{"wrapper":"#track","container":"#projects","scale":-1}}`},
		{InnerHeight(-0.3), `{"$innerHeight":-0.3}`},
		{Measure{Kind: MeasurePathLength, Target: "#underline", Scale: 1}, `{"$pathLength":"#underline"}`},
	} {
		got, err := json.Marshal(tc.m)
		require.NoError(t, err)
		assert.JSONEq(t, tc.want, string(got))
	}

	_, err := json.Marshal(Measure{})
	assert.Error(t, err)
}
