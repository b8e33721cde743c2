package model

import (
	"strings"

	"github.com/msto63/mUML/foundation/utils/stringx"
)

const minBoxWidth = 10

// Box draws the class as a box-drawing frame with a centered name, the
// fields in "name: type" form and the methods in extended form. The box has
// no trailing newline.
func (c Class) Box() string {
	fields := make([]string, len(c.fields))
	for i, f := range c.fields {
		fields[i] = f.Extended()
	}
	methods := make([]string, len(c.methods))
	for i, m := range c.methods {
		methods[i] = m.Extended()
	}

	width := minBoxWidth
	if w := stringx.Width(c.name); w > width {
		width = w
	}
	for _, lines := range [][]string{fields, methods} {
		for _, l := range lines {
			if w := stringx.Width(l); w > width {
				width = w
			}
		}
	}

	rule := func(left, right string) string {
		return left + "─" + stringx.Repeat('─', width) + "─" + right + "\n"
	}
	row := func(text string) string {
		return "│ " + text + " │\n"
	}

	var b strings.Builder
	b.WriteString(rule("┌", "┐"))
	b.WriteString(row(stringx.Center(c.name, width, ' ')))
	b.WriteString(rule("├", "┤"))
	for _, f := range fields {
		b.WriteString(row(stringx.PadRight(f, width, ' ')))
	}
	b.WriteString(rule("├", "┤"))
	for _, m := range methods {
		b.WriteString(row(stringx.PadRight(m, width, ' ')))
	}
	bottom := rule("└", "┘")
	b.WriteString(strings.TrimSuffix(bottom, "\n"))
	return b.String()
}

// RenderClasses draws every class box, one per line.
func (d *Diagram) RenderClasses() string {
	var b strings.Builder
	for _, c := range d.classes {
		b.WriteString(c.Box())
		b.WriteString("\n")
	}
	return b.String()
}

// RenderRelationships lists every relationship, one per line.
func (d *Diagram) RenderRelationships() string {
	var b strings.Builder
	for _, r := range d.relationships {
		b.WriteString(r.String())
		b.WriteString("\n")
	}
	return b.String()
}

// Render draws all classes followed by all relationships.
func (d *Diagram) Render() string {
	return d.RenderClasses() + d.RenderRelationships()
}
