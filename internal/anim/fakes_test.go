package anim

import (
	"fmt"
	"strings"
	"sync"
)

type call struct {
	op      string
	targets []Element
	from    Props
	vars    Vars
}

type fakeEngine struct {
	mu      sync.Mutex
	plugins []string
	calls   []call
	refresh int
	killed  []*Trigger
}

func (e *fakeEngine) RegisterPlugin(name string) { e.plugins = append(e.plugins, name) }

func (e *fakeEngine) Set(targets []Element, props Props) {
	e.record(call{op: "set", targets: targets, vars: Vars{Props: props}})
}

func (e *fakeEngine) To(targets []Element, vars Vars) {
	e.record(call{op: "to", targets: targets, vars: vars})
}

func (e *fakeEngine) FromTo(targets []Element, from Props, to Vars) {
	e.record(call{op: "fromTo", targets: targets, from: from, vars: to})
}

func (e *fakeEngine) Refresh() { e.refresh++ }

func (e *fakeEngine) Kill(t *Trigger) { e.killed = append(e.killed, t) }

func (e *fakeEngine) record(c call) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calls = append(e.calls, c)
}

func (e *fakeEngine) count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.calls)
}

func (e *fakeEngine) last() call {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls[len(e.calls)-1]
}

type listener struct {
	kind EventKind
	fn   func(PointerEvent)
}

// fakeElement is a minimal element tree node for exercising effects.
type fakeElement struct {
	key          string
	class        string
	rect         Rect
	scrollWidth  float64
	clientWidth  float64
	length       float64
	text         string
	style        []string
	children     []*fakeElement
	textChildren []string
	listeners    map[ListenerID]listener
	nextID       ListenerID
}

func newFake(key string) *fakeElement {
	return &fakeElement{key: key, listeners: map[ListenerID]listener{}}
}

func (f *fakeElement) Key() string          { return f.key }
func (f *fakeElement) BoundingRect() Rect   { return f.rect }
func (f *fakeElement) ScrollWidth() float64 { return f.scrollWidth }
func (f *fakeElement) ClientWidth() float64 { return f.clientWidth }

func (f *fakeElement) QueryAll(selector string) []Element {
	var out []Element
	for _, c := range f.children {
		if "."+c.class == selector {
			out = append(out, c)
		}
		out = append(out, c.QueryAll(selector)...)
	}
	return out
}

func (f *fakeElement) AddListener(kind EventKind, fn func(PointerEvent)) ListenerID {
	f.nextID++
	f.listeners[f.nextID] = listener{kind: kind, fn: fn}
	return f.nextID
}

func (f *fakeElement) RemoveListener(id ListenerID) { delete(f.listeners, id) }

func (f *fakeElement) dispatch(kind EventKind, ev PointerEvent) {
	for _, l := range f.listeners {
		if l.kind == kind {
			l.fn(ev)
		}
	}
}

func (f *fakeElement) TextContent() string {
	if len(f.children) == 0 && len(f.textChildren) == 0 {
		return f.text
	}
	var b strings.Builder
	b.WriteString(f.text)
	for _, c := range f.children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

func (f *fakeElement) SetTextContent(text string) {
	f.RemoveChildren()
	f.text = text
}

func (f *fakeElement) SetStyle(property, value string) {
	f.style = append(f.style, property+":"+value)
}

func (f *fakeElement) RemoveChildren() {
	f.text = ""
	f.children = nil
	f.textChildren = nil
}

func (f *fakeElement) AppendChild(child Container) {
	f.children = append(f.children, child.(*fakeElement))
}

func (f *fakeElement) AppendText(text string) {
	f.textChildren = append(f.textChildren, text)
}

type fakePath struct {
	*fakeElement
}

func (p fakePath) TotalLength() float64 { return p.length }

type fakeDocument struct{ n int }

func (d *fakeDocument) CreateElement(tag string) Container {
	d.n++
	return newFake(fmt.Sprintf("%s-%d", tag, d.n))
}

type fakeViewport float64

func (v fakeViewport) InnerHeight() float64 { return float64(v) }
