/*
Copyright © 2023 the InMAP authors.
This file is part of InMAP.

InMAP is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

InMAP is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with InMAP.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package wkt implements a generic parser for the bracketed
// KEYWORD[attribute, ...] grammar used by OGC Well-Known Text.
//
// The parser knows nothing about coordinate reference systems. Every
// time an object is closed it hands the keyword and the attribute list
// to a Processor and substitutes the returned value into the enclosing
// list, so the shape of the final result is entirely up to the
// Processor.
//
// The grammar is:
//
//	object         := KEYWORD open attribute_list close
//	attribute_list := [ attribute { ',' attribute } ]
//	attribute      := object | quoted_string | number | label
//	quoted_string  := '"' { char | '""' } '"'
//	KEYWORD, label := ( letter | '_' ) { letter | digit | '_' }
//
// where open/close is either '[' ']' or '(' ')'. Keywords are case
// sensitive and whitespace between tokens is ignored.
package wkt

import (
	"fmt"
	"strings"

	errors "gopkg.in/src-d/go-errors.v1"
)

// ErrSyntax is returned for text that does not follow the grammar.
var ErrSyntax = errors.NewKind("wkt: syntax error at offset %d: %s")

// Parse parses src, which must contain exactly one object, and returns
// the value p produced for it. Any error, whether from the grammar or
// from p, aborts the whole parse.
func Parse[T any](src string, p Processor[T]) (T, error) {
	var zero T
	ps := &parser[T]{src: src, proc: p}
	ps.skipSpace()
	key, v, err := ps.object(0)
	if err != nil {
		return zero, err
	}
	ps.skipSpace()
	if ps.pos != len(ps.src) {
		return zero, ps.errorf("unexpected input after %s object", key)
	}
	return v, nil
}

type parser[T any] struct {
	src  string
	pos  int
	proc Processor[T]
}

func (p *parser[T]) errorf(msg string, args ...interface{}) error {
	return ErrSyntax.New(p.pos, fmt.Sprintf(msg, args...))
}

func (p *parser[T]) skipSpace() {
	for p.pos < len(p.src) {
		switch p.src[p.pos] {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			p.pos++
		default:
			return
		}
	}
}

func (p *parser[T]) peek() byte {
	if p.pos < len(p.src) {
		return p.src[p.pos]
	}
	return 0
}

func (p *parser[T]) consume(c byte) bool {
	if p.peek() == c {
		p.pos++
		return true
	}
	return false
}

func (p *parser[T]) atClose() bool {
	c := p.peek()
	return c == ']' || c == ')'
}

// object parses KEYWORD[...] starting at the current position, which
// must be the first letter of the keyword.
func (p *parser[T]) object(depth int) (string, T, error) {
	var zero T
	key := p.identifier()
	if key == "" {
		return "", zero, p.errorf("expecting keyword")
	}
	p.skipSpace()
	var closing byte
	switch p.peek() {
	case '[':
		closing = ']'
	case '(':
		closing = ')'
	default:
		return "", zero, p.errorf("expecting '[' after %s", key)
	}
	p.pos++

	attrs := &Attributes[T]{p: p, depth: depth}
	v, err := p.proc.Process(key, depth, attrs)
	if attrs.err != nil {
		return "", zero, attrs.err
	}
	if err != nil {
		return "", zero, err
	}
	if err := attrs.drain(); err != nil {
		return "", zero, err
	}
	p.skipSpace()
	if !p.consume(closing) {
		return "", zero, p.errorf("missing closing %q for %s", closing, key)
	}
	return key, v, nil
}

// attribute parses one attribute starting at the current position.
func (p *parser[T]) attribute(depth int) (Attribute[T], error) {
	p.skipSpace()
	c := p.peek()
	switch {
	case isIdentStart(c):
		start := p.pos
		key := p.identifier()
		p.skipSpace()
		if c := p.peek(); c == '[' || c == '(' {
			p.pos = start
			_, v, err := p.object(depth + 1)
			if err != nil {
				return Attribute[T]{}, err
			}
			return Attribute[T]{Kind: Keyword, Text: key, Value: v}, nil
		}
		return Attribute[T]{Kind: Label, Text: key}, nil
	case c == '"':
		s, err := p.quoted()
		if err != nil {
			return Attribute[T]{}, err
		}
		return Attribute[T]{Kind: Quoted, Text: s}, nil
	case isDigit(c) || c == '-' || c == '+' || c == '.':
		n := p.number()
		if n == "" {
			return Attribute[T]{}, p.errorf("malformed number")
		}
		return Attribute[T]{Kind: Number, Text: n}, nil
	case c == 0:
		return Attribute[T]{}, p.errorf("unexpected end of input")
	}
	return Attribute[T]{}, p.errorf("unexpected character %q", c)
}

func (p *parser[T]) identifier() string {
	start := p.pos
	if !isIdentStart(p.peek()) {
		return ""
	}
	p.pos++
	for p.pos < len(p.src) && (isIdentStart(p.src[p.pos]) || isDigit(p.src[p.pos])) {
		p.pos++
	}
	return p.src[start:p.pos]
}

// quoted parses a double-quoted string. A doubled quote stands for a
// literal quote; strings without one are returned as a slice of the
// input.
func (p *parser[T]) quoted() (string, error) {
	start := p.pos
	p.pos++ // opening quote
	escaped := false
	for {
		i := strings.IndexByte(p.src[p.pos:], '"')
		if i < 0 {
			p.pos = start
			return "", p.errorf("unterminated quoted string")
		}
		p.pos += i + 1
		if p.peek() == '"' {
			escaped = true
			p.pos++
			continue
		}
		break
	}
	s := p.src[start+1 : p.pos-1]
	if escaped {
		s = strings.Replace(s, `""`, `"`, -1)
	}
	return s, nil
}

// number scans a signed integer or floating point literal and returns
// its text, or "" if there is no digit in the mantissa.
func (p *parser[T]) number() string {
	start := p.pos
	if c := p.peek(); c == '-' || c == '+' {
		p.pos++
	}
	digits := p.digits()
	if p.consume('.') {
		digits += p.digits()
	}
	if digits == 0 {
		p.pos = start
		return ""
	}
	if c := p.peek(); c == 'e' || c == 'E' {
		mark := p.pos
		p.pos++
		if c := p.peek(); c == '-' || c == '+' {
			p.pos++
		}
		if p.digits() == 0 {
			p.pos = mark
		}
	}
	return p.src[start:p.pos]
}

func (p *parser[T]) digits() int {
	n := 0
	for p.pos < len(p.src) && isDigit(p.src[p.pos]) {
		p.pos++
		n++
	}
	return n
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
