// Package dom is a small in-memory element tree used to lay out pages on
// the server, run animation effects against them and render the resulting
// markup.
package dom

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/gafarajao/portfolio/internal/anim"
)

var (
	_ anim.Container = (*Element)(nil)
	_ anim.Drawable  = (*Path)(nil)
	_ anim.Document  = (*Document)(nil)
	_ anim.Viewport  = Viewport{}
)

// Box is the layout an element reports to effects.
type Box struct {
	Rect        anim.Rect
	ScrollWidth float64
	ClientWidth float64
}

type listener struct {
	kind anim.EventKind
	fn   func(anim.PointerEvent)
}

// Document creates elements and hands out generated ids.
type Document struct {
	prefix string
	next   int
	nodes  map[*html.Node]*Element
}

// NewDocument returns a document whose generated ids start with prefix.
func NewDocument(prefix string) *Document {
	return &Document{prefix: prefix, nodes: make(map[*html.Node]*Element)}
}

// CreateElement makes a detached element with a generated id.
func (d *Document) CreateElement(tag string) anim.Container {
	d.next++
	return d.Element(tag, fmt.Sprintf("%s-%d", d.prefix, d.next))
}

// Element makes a detached element with the given id.
func (d *Document) Element(tag, id string) *Element {
	n := &html.Node{Type: html.ElementNode, Data: tag, DataAtom: atom.Lookup([]byte(tag))}
	e := &Element{doc: d, node: n, listeners: make(map[anim.ListenerID]listener)}
	e.SetAttr("id", id)
	d.nodes[n] = e
	return e
}

// Path makes an SVG path of the given length.
func (d *Document) Path(id string, length float64) *Path {
	e := d.Element("path", id)
	e.node.Namespace = "svg"
	return &Path{Element: e, length: length}
}

type Element struct {
	doc       *Document
	node      *html.Node
	box       Box
	style     []string
	listeners map[anim.ListenerID]listener
	nextID    anim.ListenerID
}

func (e *Element) ID() string { return e.attr("id") }

// Key is the element's id selector.
func (e *Element) Key() string { return "#" + e.ID() }

func (e *Element) SetBox(b Box) *Element {
	e.box = b
	return e
}

func (e *Element) BoundingRect() anim.Rect { return e.box.Rect }

func (e *Element) ScrollWidth() float64 { return e.box.ScrollWidth }

func (e *Element) ClientWidth() float64 { return e.box.ClientWidth }

func (e *Element) SetAttr(key, val string) *Element {
	for i, a := range e.node.Attr {
		if a.Key == key {
			e.node.Attr[i].Val = val
			return e
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: val})
	return e
}

func (e *Element) attr(key string) string {
	for _, a := range e.node.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// AddClass appends class names to the class attribute.
func (e *Element) AddClass(names ...string) *Element {
	classes := strings.Fields(e.attr("class"))
	return e.SetAttr("class", strings.Join(append(classes, names...), " "))
}

func (e *Element) HasClass(name string) bool {
	for _, c := range strings.Fields(e.attr("class")) {
		if c == name {
			return true
		}
	}
	return false
}

// Append attaches children built by the same document.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		e.node.AppendChild(c.node)
	}
	return e
}

// QueryAll returns the descendants matching a CSS selector, in document
// order. Ancestors above e take part in matching, as with querySelectorAll.
// An invalid selector matches nothing.
func (e *Element) QueryAll(selector string) []anim.Element {
	if strings.TrimSpace(selector) == "" {
		return nil
	}
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	var out []anim.Element
	for _, n := range cascadia.QueryAll(e.node, sel) {
		if el, ok := e.doc.nodes[n]; ok {
			out = append(out, el)
		}
	}
	return out
}

func (e *Element) AddListener(kind anim.EventKind, fn func(anim.PointerEvent)) anim.ListenerID {
	e.nextID++
	e.listeners[e.nextID] = listener{kind: kind, fn: fn}
	return e.nextID
}

func (e *Element) RemoveListener(id anim.ListenerID) {
	delete(e.listeners, id)
}

// Dispatch delivers ev to the listeners of kind in registration order.
func (e *Element) Dispatch(kind anim.EventKind, ev anim.PointerEvent) {
	for id := anim.ListenerID(1); id <= e.nextID; id++ {
		if l, ok := e.listeners[id]; ok && l.kind == kind {
			l.fn(ev)
		}
	}
}

// Listeners counts the listeners registered for kind.
func (e *Element) Listeners(kind anim.EventKind) int {
	n := 0
	for _, l := range e.listeners {
		if l.kind == kind {
			n++
		}
	}
	return n
}

func (e *Element) TextContent() string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return b.String()
}

func (e *Element) SetTextContent(text string) {
	e.RemoveChildren()
	e.AppendText(text)
}

// SetStyle sets an inline style property, replacing an earlier value.
func (e *Element) SetStyle(property, value string) {
	decl := property + ":" + value
	replaced := false
	for i, s := range e.style {
		if strings.HasPrefix(s, property+":") {
			e.style[i] = decl
			replaced = true
		}
	}
	if !replaced {
		e.style = append(e.style, decl)
	}
	e.SetAttr("style", strings.Join(e.style, ";"))
}

func (e *Element) RemoveChildren() {
	for c := e.node.FirstChild; c != nil; {
		next := c.NextSibling
		e.node.RemoveChild(c)
		c = next
	}
}

// AppendChild attaches a container created by this package. Foreign
// containers are ignored.
func (e *Element) AppendChild(child anim.Container) {
	if c, ok := child.(*Element); ok {
		e.node.AppendChild(c.node)
	}
}

func (e *Element) AppendText(text string) {
	e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

// ChildCount counts direct child nodes of the given type.
func (e *Element) ChildCount(t html.NodeType) int {
	n := 0
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == t {
			n++
		}
	}
	return n
}

// OuterHTML renders the element and its subtree.
func (e *Element) OuterHTML() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, e.node); err != nil {
		return "", fmt.Errorf("render %s: %w", e.Key(), err)
	}
	return buf.String(), nil
}

// InnerHTML renders the children of the element.
func (e *Element) InnerHTML() (string, error) {
	var buf bytes.Buffer
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", fmt.Errorf("render %s: %w", e.Key(), err)
		}
	}
	return buf.String(), nil
}

// Path is an SVG path element with a known length.
type Path struct {
	*Element
	length float64
}

func (p *Path) TotalLength() float64 { return p.length }

// Viewport is the reference window the page is laid out for.
type Viewport struct {
	Width  float64
	Height float64
}

func (v Viewport) InnerHeight() float64 { return v.Height }
