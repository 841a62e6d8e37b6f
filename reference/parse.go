package reference

import (
	"fmt"
	"strconv"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ErrSyntax is the base of every reference parsing failure
var ErrSyntax = errors.Base("malformed reference syntax")

// SyntaxError reports an unparsable reference text with the failing offset
type SyntaxError struct {
	Text    string
	Offset  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%v: %s at offset %d in %q", ErrSyntax, e.Message, e.Offset, e.Text)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

type parser struct {
	text string
	pos  int
}

func (p *parser) fail(message string) error {
	return &SyntaxError{Text: p.text, Offset: p.pos, Message: message}
}

func (p *parser) done() bool {
	return p.pos >= len(p.text)
}

func (p *parser) peek() byte {
	return p.text[p.pos]
}

// Parse parses reference text: [package!]path[:meaning][(overloadIndex)].
// Text without an unquoted '!' is a relative reference.
func Parse(text string) (*Reference, error) {
	p := &parser{text: text}
	ret := &Reference{}
	if idx := packageSeparator(text); idx != -1 {
		if idx == 0 {
			return nil, p.fail("empty package name")
		}
		ret.Package = text[:idx]
		p.pos = idx + 1
	} else if text == "" {
		return nil, p.fail("empty reference")
	}
	for !p.done() {
		c := p.peek()
		if c == ':' || c == '(' {
			break
		}
		navigation := Exports
		if nav, ok := navigationOf(c); ok {
			navigation = nav
			p.pos++
		} else if len(ret.Steps) > 0 {
			return nil, p.fail(fmt.Sprintf("expected navigation, got %q", c))
		}
		name, err := p.parseName()
		if err != nil {
			return nil, err
		}
		ret.Steps = append(ret.Steps, Step{Navigation: navigation, Name: name})
	}
	if !p.done() && p.peek() == ':' {
		p.pos++
		start := p.pos
		for !p.done() && p.peek() != '(' {
			p.pos++
		}
		meaning := Meaning(text[start:p.pos])
		if !meaning.IsValid() {
			p.pos = start
			return nil, p.fail(fmt.Sprintf("unknown meaning %q", meaning))
		}
		ret.Meaning = meaning
	}
	if !p.done() && p.peek() == '(' {
		p.pos++
		end := strings.IndexByte(text[p.pos:], ')')
		if end == -1 {
			return nil, p.fail("unterminated overload index")
		}
		index, err := strconv.Atoi(text[p.pos : p.pos+end])
		if err != nil || index < 1 {
			return nil, p.fail(fmt.Sprintf("invalid overload index %q", text[p.pos:p.pos+end]))
		}
		ret.OverloadIndex = index
		p.pos += end + 1
	}
	if !p.done() {
		return nil, p.fail(fmt.Sprintf("unexpected %q", p.peek()))
	}
	if len(ret.Steps) == 0 && (ret.Meaning != "" || ret.OverloadIndex > 0) && !ret.Meaning.IsSignature() {
		return nil, p.fail("meaning without a path")
	}
	return ret, nil
}

func (p *parser) parseName() (string, error) {
	if p.done() {
		return "", p.fail("expected name")
	}
	if p.peek() != '"' {
		start := p.pos
		for !p.done() && isNameChar(p.peek()) {
			p.pos++
		}
		if start == p.pos {
			return "", p.fail(fmt.Sprintf("expected name, got %q", p.peek()))
		}
		return p.text[start:p.pos], nil
	}
	p.pos++
	builder := strings.Builder{}
	for !p.done() {
		c := p.peek()
		p.pos++
		switch c {
		case '\\':
			if p.done() {
				return "", p.fail("unterminated escape")
			}
			builder.WriteByte(p.peek())
			p.pos++
		case '"':
			return builder.String(), nil
		default:
			builder.WriteByte(c)
		}
	}
	return "", p.fail("unterminated quoted name")
}

// packageSeparator returns index of the first '!' outside a quoted name
func packageSeparator(text string) int {
	quoted := false
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\\':
			if quoted {
				i++
			}
		case '"':
			quoted = !quoted
		case '!':
			if !quoted {
				return i
			}
		}
	}
	return -1
}
