package disambiguation

import (
	"fmt"
	"strings"
)

type segment interface {
	render(r *Resource, sb *strings.Builder)
	buffer() *strings.Builder
}

type textSegment struct {
	text strings.Builder
}

func (s *textSegment) render(_ *Resource, sb *strings.Builder) {
	sb.WriteString(s.text.String())
}

func (s *textSegment) buffer() *strings.Builder {
	return &s.text
}

type resourceSegment struct {
	prefix string
	suffix string
	fields []field
	// broken is set when the field path names an unknown field.
	broken bool

	current      strings.Builder
	currentField field
}

func newResourceSegment() *resourceSegment {
	return &resourceSegment{currentField: resourceAny}
}

func (s *resourceSegment) buffer() *strings.Builder {
	return &s.current
}

func (s *resourceSegment) render(r *Resource, sb *strings.Builder) {
	if s.broken || len(s.fields) == 0 {
		return
	}
	var object interface{} = r
	for _, f := range s.fields {
		if object == nil {
			break
		}
		object = f.value(object)
	}
	if object == nil {
		return
	}
	sb.WriteString(s.prefix)
	sb.WriteString(fmt.Sprint(object))
	sb.WriteString(s.suffix)
}

type parserState int

const (
	stateStart parserState = iota
	stateInText
	stateInResourceStart
	stateInResourcePrefix
	stateInResourceDef
	stateInResourceSuffix
	stateEscaping
)

type parser struct {
	state     parserState
	lastState parserState
	current   segment
	segments  []segment
}

// parseTemplate splits a segment template into the segments that render it.
func parseTemplate(template string) []segment {
	p := &parser{state: stateStart}
	for _, c := range template {
		p.process(c)
	}
	if p.state == stateInResourceDef {
		p.processField()
	}
	return p.segments
}

func (p *parser) push(s segment) {
	p.current = s
	p.segments = append(p.segments, s)
}

func (p *parser) escape() {
	p.lastState = p.state
	p.state = stateEscaping
}

func (p *parser) process(c rune) {
	switch p.state {
	case stateStart:
		switch c {
		case '%':
			p.push(newResourceSegment())
			p.state = stateInResourceStart
		case '\\':
			p.push(&textSegment{})
			p.lastState = stateInText
			p.state = stateEscaping
		default:
			t := &textSegment{}
			t.text.WriteRune(c)
			p.push(t)
			p.state = stateInText
		}

	case stateInText:
		switch c {
		case '%':
			p.push(newResourceSegment())
			p.state = stateInResourceStart
		case '\\':
			p.escape()
		default:
			p.current.buffer().WriteRune(c)
		}

	case stateInResourceStart:
		if c == '[' {
			p.state = stateInResourcePrefix
			return
		}
		p.current.buffer().WriteRune(c)
		p.state = stateInResourceDef

	case stateInResourcePrefix:
		switch c {
		case '\\':
			p.escape()
		case ']':
			s := p.current.(*resourceSegment)
			s.prefix = s.current.String()
			s.current.Reset()
			p.state = stateInResourceDef
		default:
			p.current.buffer().WriteRune(c)
		}

	case stateInResourceDef:
		switch {
		case c == '\\':
			p.escape()
		case c == '.':
			p.processField()
		case c == '%':
			p.processField()
			p.push(newResourceSegment())
			p.state = stateInResourceStart
		case c == '[':
			p.processField()
			p.state = stateInResourceSuffix
		case c == ' ' || c == '\n' || c == '\t':
			p.processField()
			t := &textSegment{}
			t.text.WriteRune(c)
			p.push(t)
			p.state = stateInText
		default:
			p.current.buffer().WriteRune(c)
		}

	case stateInResourceSuffix:
		switch c {
		case '\\':
			p.escape()
		case ']':
			s := p.current.(*resourceSegment)
			s.suffix = s.current.String()
			s.current.Reset()
			p.state = stateStart
		default:
			p.current.buffer().WriteRune(c)
		}

	case stateEscaping:
		p.current.buffer().WriteRune(c)
		p.state = p.lastState
	}
}

// processField resolves the name collected so far against the current
// field set. An unknown name breaks the segment and restarts parsing.
func (p *parser) processField() {
	s := p.current.(*resourceSegment)
	name := s.current.String()

	var f field
	if !s.broken && s.currentField != nil {
		f = s.currentField.sibling(name)
	}
	if f == nil {
		s.broken = true
		s.fields = nil
		p.state = stateStart
		return
	}
	s.fields = append(s.fields, f)
	s.currentField = f.representation()
	s.current.Reset()
}
