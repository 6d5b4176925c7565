package anim

import "strings"

// SplitTextToSpans replaces el's content with one clipped span per word and
// returns the inner word spans in order. Words are separated by single
// spaces, which are kept as text between the spans. The original children
// are discarded. An element with no text is left untouched.
func SplitTextToSpans(doc Document, el Container) []Container {
	text := el.TextContent()
	if text == "" {
		return nil
	}
	words := strings.Split(text, " ")

	el.RemoveChildren()

	spans := make([]Container, 0, len(words))
	for i, word := range words {
		wrap := doc.CreateElement("span")
		wrap.SetStyle("display", "inline-block")
		wrap.SetStyle("overflow", "hidden")

		inner := doc.CreateElement("span")
		inner.SetTextContent(word)
		inner.SetStyle("display", "inline-block")

		wrap.AppendChild(inner)
		el.AppendChild(wrap)
		if i < len(words)-1 {
			el.AppendText(" ")
		}
		spans = append(spans, inner)
	}
	return spans
}

// Elements widens a slice of containers for effects that take elements.
func Elements[T Element](in []T) []Element {
	out := make([]Element, len(in))
	for i, e := range in {
		out[i] = e
	}
	return out
}
