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

package wkt

import (
	"fmt"
	"iter"
)

// Kind is the kind of value found at one position of an
// attribute list.
type Kind int

// The attribute kinds.
const (
	Quoted Kind = iota
	Number
	Label
	Keyword
)

func (k Kind) String() string {
	switch k {
	case Quoted:
		return "quoted string"
	case Number:
		return "number"
	case Label:
		return "label"
	case Keyword:
		return "keyword"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Attribute is a single entry of a bracketed attribute list.
// Text holds the unescaped content of a quoted string, the literal
// text of a number, the label, or the keyword of a nested object.
// Numbers are not converted; that is left to the consumer.
// Value holds the result of processing a nested object and is only
// set for Keyword attributes.
type Attribute[T any] struct {
	Kind  Kind
	Text  string
	Value T
}

func (a Attribute[T]) String() string {
	switch a.Kind {
	case Quoted:
		return fmt.Sprintf("%q", a.Text)
	case Keyword:
		return a.Text + "[...]"
	}
	return a.Text
}

// A Processor turns a bracketed object into a value. It is called once
// per object, as soon as the opening bracket has been read; nested
// objects are processed while the attribute list is iterated.
type Processor[T any] interface {
	Process(key string, depth int, attrs *Attributes[T]) (T, error)
}

// ProcessorFunc adapts a function to the Processor interface.
type ProcessorFunc[T any] func(key string, depth int, attrs *Attributes[T]) (T, error)

// Process calls f(key, depth, attrs).
func (f ProcessorFunc[T]) Process(key string, depth int, attrs *Attributes[T]) (T, error) {
	return f(key, depth, attrs)
}

// Attributes is the attribute list of the object being processed.
// Attributes are parsed as they are requested, so the list can only be
// walked once. Whatever the processor leaves unread is drained by the
// parser afterwards.
type Attributes[T any] struct {
	p     *parser[T]
	depth int
	pos   int
	done  bool
	err   error
}

// All returns an iterator over the remaining attributes and their
// zero-based positions in the list. Iteration stops early if the
// input is malformed; the error is reported by Parse.
func (a *Attributes[T]) All() iter.Seq2[int, Attribute[T]] {
	return func(yield func(int, Attribute[T]) bool) {
		for {
			attr, ok := a.next()
			if !ok {
				return
			}
			if !yield(a.pos-1, attr) {
				return
			}
		}
	}
}

// Collect reads all remaining attributes into a slice.
func (a *Attributes[T]) Collect() []Attribute[T] {
	var out []Attribute[T]
	for _, attr := range a.All() {
		out = append(out, attr)
	}
	return out
}

func (a *Attributes[T]) next() (Attribute[T], bool) {
	var zero Attribute[T]
	if a.done || a.err != nil {
		return zero, false
	}
	p := a.p
	p.skipSpace()
	if a.pos == 0 {
		if p.atClose() {
			a.done = true
			return zero, false
		}
	} else {
		if !p.consume(',') {
			a.done = true
			return zero, false
		}
	}
	attr, err := p.attribute(a.depth)
	if err != nil {
		a.err = err
		return zero, false
	}
	a.pos++
	return attr, true
}

// drain consumes whatever the processor did not read.
func (a *Attributes[T]) drain() error {
	for {
		if _, ok := a.next(); !ok {
			return a.err
		}
	}
}
