// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package translatable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePath(t *testing.T) {
	p, err := ParsePath("greetings::informal")
	require.True(t, err.IsNil())
	require.Equal(t, []string{"greetings", "informal"}, p.Segments())
	require.False(t, p.Absolute())
	require.Equal(t, "greetings::informal", p.StaticDisplay())
}

func TestParsePathAbsolute(t *testing.T) {
	p, err := ParsePath("::greetings::informal")
	require.True(t, err.IsNil())
	require.Equal(t, []string{"greetings", "informal"}, p.Segments())
	require.True(t, p.Absolute())
	require.Equal(t, "::greetings::informal", p.StaticDisplay())
}

func TestParsePathMalformed(t *testing.T) {
	for _, raw := range []string{
		"",
		"   ",
		"::",
		"a::",
		"::b::",
		"a::::b",
		"a::b c",
		"1st::b",
	} {
		_, err := ParsePath(raw)
		require.True(t, err.IsNotNil(), raw)
	}
}

func TestPathMerge(t *testing.T) {
	base, err := ParsePath("::greetings")
	require.True(t, err.IsNil())
	tail, err := ParsePath("informal")
	require.True(t, err.IsNil())

	merged := base.Merge(tail)
	require.Equal(t, []string{"greetings", "informal"}, merged.Segments())

	// The absolute flag of the left operand always wins.
	require.True(t, merged.Absolute())
	require.False(t, tail.Merge(base).Absolute())
}

func TestPathEqualAndHash(t *testing.T) {
	a := NewPath([]string{"x", "y"}, Span{File: "a.go", Line: 1}, false)
	b := NewPath([]string{"x", "y"}, Span{File: "b.go", Line: 99}, false)

	// Spans never participate in equality.
	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())

	c := NewPath([]string{"x", "y"}, Span{}, true)
	require.False(t, a.Equal(c))

	d := NewPath([]string{"x"}, Span{}, false)
	require.False(t, a.Equal(d))
}

func TestRootPath(t *testing.T) {
	root := RootPath()
	require.True(t, root.IsRoot())
	require.Equal(t, "", root.StaticDisplay())

	p, err := ParsePath("greetings")
	require.True(t, err.IsNil())
	require.True(t, root.Merge(p).Equal(p))
}

func TestSpanJoin(t *testing.T) {
	def := Span{}
	a1 := Span{File: "a.toml", Line: 1}
	a9 := Span{File: "a.toml", Line: 9}
	b5 := Span{File: "b.toml", Line: 5}

	require.Equal(t, a1, def.Join(a1))
	require.Equal(t, a1, a1.Join(def))
	require.Equal(t, a1, a9.Join(a1))
	require.Equal(t, a1, a1.Join(a9))

	// Unrelated locations collapse to the default span.
	require.True(t, a1.Join(b5).IsDefault())
}
