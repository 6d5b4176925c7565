package anim

// Rect is an element's bounding box in viewport coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Center returns the midpoint of the box.
func (r Rect) Center() (x, y float64) {
	return r.Left + r.Width/2, r.Top + r.Height/2
}

// EventKind names a pointer event an element can deliver.
type EventKind int

const (
	PointerMove EventKind = iota
	PointerLeave
)

func (k EventKind) String() string {
	switch k {
	case PointerMove:
		return "mousemove"
	case PointerLeave:
		return "mouseleave"
	default:
		return "unknown"
	}
}

type PointerEvent struct {
	ClientX float64
	ClientY float64
}

// ListenerID identifies a registered listener so it can be removed later.
type ListenerID uint64

// Element is the element handle the toolkit animates. Key must be stable and
// usable by the engine to address the element.
type Element interface {
	Key() string
	BoundingRect() Rect
	ScrollWidth() float64
	ClientWidth() float64
	// QueryAll returns the matching descendants at call time.
	QueryAll(selector string) []Element
	AddListener(kind EventKind, fn func(PointerEvent)) ListenerID
	RemoveListener(id ListenerID)
}

// Drawable is a vector path that can report its length.
type Drawable interface {
	Element
	TotalLength() float64
}

// Container is an element whose text and children can be rewritten.
type Container interface {
	Element
	TextContent() string
	SetTextContent(text string)
	SetStyle(property, value string)
	RemoveChildren()
	AppendChild(child Container)
	AppendText(text string)
}

// Document creates detached elements.
type Document interface {
	CreateElement(tag string) Container
}

type Viewport interface {
	InnerHeight() float64
}

// SurfaceKind tags the variant held by a Surface.
type SurfaceKind int

const (
	KindGeneric SurfaceKind = iota
	KindPath
)

// Surface is either a generic element or a drawable path. Effects that only
// make sense on paths dispatch on Kind.
type Surface struct {
	kind SurfaceKind
	el   Element
	path Drawable
}

func Generic(el Element) Surface {
	return Surface{kind: KindGeneric, el: el}
}

func Path(d Drawable) Surface {
	return Surface{kind: KindPath, el: d, path: d}
}

func (s Surface) Kind() SurfaceKind { return s.kind }

func (s Surface) Element() Element { return s.el }
