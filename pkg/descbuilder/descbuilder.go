// Package descbuilder composes an activity description out of the
// contributions of successive enricher steps. Each step contributes a body
// of text and an optional section header; a header declares that the step
// owns a named block that later steps (or earlier re-runs of the same step)
// may replace wholesale, instead of the description growing an unbounded
// string of appended fragments.
package descbuilder

import "strings"

// section is one named (or anonymous) block of the rendered description.
type section struct {
	header string // "" for an anonymous, append-only block
	body   string
}

// Builder accumulates sections in the order they're contributed and renders
// them back to a single string, blank-line separated.
type Builder struct {
	sections []section
}

// New seeds a Builder from an existing rendered description, so resumed or
// second-pass runs can keep composing on top of whatever already exists.
// The whole prior string is treated as a single anonymous section; any
// Apply call with a header becomes addressable going forward.
func New(existing string) *Builder {
	b := &Builder{}
	if existing = strings.TrimSpace(existing); existing != "" {
		b.sections = append(b.sections, section{body: existing})
	}
	return b
}

// Apply merges one step's contribution. If header is non-empty and a
// section with that header already exists, its body is replaced; otherwise
// the section is appended. A header-less contribution is always appended as
// its own anonymous block.
func (b *Builder) Apply(header, body string) {
	body = strings.TrimSpace(body)
	if body == "" {
		return
	}

	if header != "" {
		for i, s := range b.sections {
			if s.header == header {
				b.sections[i].body = body
				return
			}
		}
	}

	b.sections = append(b.sections, section{header: header, body: body})
}

// String renders the composed description, one section per paragraph,
// separated by a single blank line.
func (b *Builder) String() string {
	parts := make([]string, 0, len(b.sections))
	for _, s := range b.sections {
		if s.body != "" {
			parts = append(parts, s.body)
		}
	}
	return strings.Join(parts, "\n\n")
}
