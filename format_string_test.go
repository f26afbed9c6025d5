// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package translatable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFormatString(t *testing.T) {
	f, err := ParseFormatString("Hello {user}, welcome to {place}!")
	require.True(t, err.IsNil())
	require.Equal(t, "Hello {user}, welcome to {place}!", f.Raw())
	require.Equal(t, []string{"user", "place"}, f.Placeholders())
}

func TestParseFormatStringEscapes(t *testing.T) {
	f, err := ParseFormatString("a {{literal}} brace and a {real} one")
	require.True(t, err.IsNil())
	require.Equal(t, []string{"real"}, f.Placeholders())

	rendered, err := f.ReplaceWith(Replacements{"real": "X"})
	require.True(t, err.IsNil())
	require.Equal(t, "a {literal} brace and a X one", rendered)
}

func TestParseFormatStringNoPlaceholders(t *testing.T) {
	f, err := ParseFormatString("just a text")
	require.True(t, err.IsNil())
	require.Empty(t, f.Placeholders())

	rendered, err := f.ReplaceWith(nil)
	require.True(t, err.IsNil())
	require.Equal(t, "just a text", rendered)
}

func TestParseFormatStringMalformed(t *testing.T) {
	for _, raw := range []string{
		"unterminated {user",
		"bare } brace",
		"empty {} placeholder",
		"bad {user name} placeholder",
		"digit first {1st} placeholder",
	} {
		_, err := ParseFormatString(raw)
		require.True(t, err.IsNotNil(), raw)
	}
}

func TestFormatStringPlaceholdersDeduplicated(t *testing.T) {
	f, err := ParseFormatString("{a} and {b} and {a} again")
	require.True(t, err.IsNil())
	require.Equal(t, []string{"a", "b"}, f.Placeholders())
}

func TestFormatStringReplaceWith(t *testing.T) {
	f, err := ParseFormatString("{count} items for {user}")
	require.True(t, err.IsNil())

	rendered, err := f.ReplaceWith(Replacements{"count": 42, "user": "John"})
	require.True(t, err.IsNil())
	require.Equal(t, "42 items for John", rendered)
}

func TestFormatStringReplaceWithMissingPlaceholder(t *testing.T) {
	f, err := ParseFormatString("Hello {user}!")
	require.True(t, err.IsNil())

	_, err = f.ReplaceWith(Replacements{"somebody": "else"})
	require.True(t, err.IsNotNil())
	require.Equal(t, ErrMissingPlaceholder, err.Class())
}

func TestFormatStringReplaceWithExtraKeysAreFine(t *testing.T) {
	f, err := ParseFormatString("Hello {user}!")
	require.True(t, err.IsNil())

	rendered, err := f.ReplaceWith(Replacements{"user": "John", "unused": true})
	require.True(t, err.IsNil())
	require.Equal(t, "Hello John!", rendered)
}
