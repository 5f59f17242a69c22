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
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

// node is a generic tree used to inspect what the parser hands to a
// processor.
type node struct {
	Key   string
	Depth int
	Attrs []Attribute[*node]
}

var treeBuilder = ProcessorFunc[*node](func(key string, depth int, attrs *Attributes[*node]) (*node, error) {
	return &node{Key: key, Depth: depth, Attrs: attrs.Collect()}, nil
})

func TestParseTree(t *testing.T) {
	got, err := Parse(`FOO["foo", BAR["bar"], baz, -12.5e3]`, treeBuilder)
	if err != nil {
		t.Fatal(err)
	}
	want := &node{
		Key: "FOO",
		Attrs: []Attribute[*node]{
			{Kind: Quoted, Text: "foo"},
			{Kind: Keyword, Text: "BAR", Value: &node{
				Key:   "BAR",
				Depth: 1,
				Attrs: []Attribute[*node]{{Kind: Quoted, Text: "bar"}},
			}},
			{Kind: Label, Text: "baz"},
			{Kind: Number, Text: "-12.5e3"},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("%#v != %#v", got, want)
	}
}

func TestQuotedString(t *testing.T) {
	for _, test := range []struct {
		in, want string
	}{
		{in: `A[""]`, want: ""},
		{in: `A["foo""bar"]`, want: `foo"bar`},
		{in: `A["foobar" ]`, want: "foobar"},
		{in: `A["a, b [c]"]`, want: "a, b [c]"},
		{in: `A["""quoted"""]`, want: `"quoted"`},
	} {
		t.Run(test.in, func(t *testing.T) {
			n, err := Parse(test.in, treeBuilder)
			require.NoError(t, err)
			require.Len(t, n.Attrs, 1)
			require.Equal(t, Quoted, n.Attrs[0].Kind)
			require.Equal(t, test.want, n.Attrs[0].Text)
		})
	}
}

func TestNumber(t *testing.T) {
	for _, test := range []struct {
		in, want string
	}{
		{in: "1234.56", want: "1234.56"},
		{in: "1234", want: "1234"},
		{in: "-41", want: "-41"},
		{in: "+3", want: "+3"},
		{in: ".5", want: ".5"},
		{in: "1.", want: "1."},
		{in: "6.02E+23", want: "6.02E+23"},
		{in: "0.01745329251994328", want: "0.01745329251994328"},
	} {
		t.Run(test.in, func(t *testing.T) {
			n, err := Parse("A["+test.in+"]", treeBuilder)
			require.NoError(t, err)
			require.Len(t, n.Attrs, 1)
			require.Equal(t, Number, n.Attrs[0].Kind)
			require.Equal(t, test.want, n.Attrs[0].Text)
		})
	}
}

func TestKeywordAndLabel(t *testing.T) {
	n, err := Parse(`KEY12_[_KEY1, _1KEY, EAST, Y(1)]`, treeBuilder)
	require.NoError(t, err)
	require.Equal(t, "KEY12_", n.Key)
	require.Len(t, n.Attrs, 4)
	require.Equal(t, Attribute[*node]{Kind: Label, Text: "_KEY1"}, n.Attrs[0])
	require.Equal(t, Attribute[*node]{Kind: Label, Text: "_1KEY"}, n.Attrs[1])
	require.Equal(t, Attribute[*node]{Kind: Label, Text: "EAST"}, n.Attrs[2])
	require.Equal(t, Keyword, n.Attrs[3].Kind)
	require.Equal(t, "Y", n.Attrs[3].Value.Key)
}

func TestWhitespace(t *testing.T) {
	n, err := Parse("\n  FOO [ \"a\" ,\n\tBAR [ 1 ] ]\n", treeBuilder)
	require.NoError(t, err)
	require.Equal(t, "FOO", n.Key)
	require.Len(t, n.Attrs, 2)
}

func TestEmptyList(t *testing.T) {
	n, err := Parse(`TOWGS84[]`, treeBuilder)
	require.NoError(t, err)
	require.Empty(t, n.Attrs)
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		`FOO["foo", BAR["bar"]`,
		`FOO["foo"`,
		`FOO["foo]`,
		`FOO[1 2]`,
		`FOO["a",]`,
		`FOO["a"] BAR["b"]`,
		`FOO["a")`,
		`1KEY["a"]`,
		`FOO[-]`,
		`FOO[@]`,
		``,
	} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in, treeBuilder)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !ErrSyntax.Is(err) {
				t.Errorf("expected a syntax error, got %v", err)
			}
		})
	}
}

func TestProcessorError(t *testing.T) {
	errBar := fmt.Errorf("no BAR allowed")
	p := ProcessorFunc[*node](func(key string, depth int, attrs *Attributes[*node]) (*node, error) {
		if key == "BAR" {
			return nil, errBar
		}
		return &node{Key: key, Attrs: attrs.Collect()}, nil
	})
	_, err := Parse(`FOO["foo", BAZ[BAR["bar"]]]`, p)
	if err != errBar {
		t.Errorf("got %v, want %v", err, errBar)
	}
}

// A processor that stops reading early must still leave the parser
// positioned after the object.
func TestDrainUnreadAttributes(t *testing.T) {
	var seen []string
	p := ProcessorFunc[*node](func(key string, depth int, attrs *Attributes[*node]) (*node, error) {
		seen = append(seen, key)
		if key == "FOO" {
			for i, a := range attrs.All() {
				if i == 0 {
					return &node{Key: key, Attrs: []Attribute[*node]{a}}, nil
				}
			}
		}
		return &node{Key: key}, nil
	})
	n, err := Parse(`FOO["first", BAR[1], "last"]`, p)
	require.NoError(t, err)
	require.Equal(t, "FOO", n.Key)
	require.Len(t, n.Attrs, 1)
	require.Equal(t, "first", n.Attrs[0].Text)
	// BAR is still processed while draining.
	require.Equal(t, []string{"FOO", "BAR"}, seen)
}

func TestDrainReportsSyntaxErrors(t *testing.T) {
	p := ProcessorFunc[*node](func(key string, depth int, attrs *Attributes[*node]) (*node, error) {
		return &node{Key: key}, nil
	})
	_, err := Parse(`FOO["first", "unterminated]`, p)
	require.Error(t, err)
	require.True(t, ErrSyntax.Is(err))
}

func TestDepth(t *testing.T) {
	depths := map[string]int{}
	p := ProcessorFunc[*node](func(key string, depth int, attrs *Attributes[*node]) (*node, error) {
		depths[key] = depth
		return &node{Key: key}, nil
	})
	_, err := Parse(`A[B[C[1]], D[2]]`, p)
	require.NoError(t, err)
	require.Equal(t, map[string]int{"A": 0, "B": 1, "C": 2, "D": 1}, depths)
}
