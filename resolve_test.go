// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package translatable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func greetingsCollection(t *testing.T) *TranslationNodeCollection {
	t.Helper()
	source := tomlSource(t, "greetings.toml", `
[greetings.informal]
aa = "What's good {user}?"
es = "Que onda {user}?"

[greetings.formal]
aa = "Nice to meet you."
es = "Bueno conocerte."

[greetings.partial]
aa = "Only here."
`)
	collection, err := NewTranslationNodeCollection([]RawSource{source}, TRANSLATION_OVERLAP_IGNORE)
	require.True(t, err.IsNil())
	return collection
}

func mustPath(t *testing.T, raw string) Path {
	t.Helper()
	path, err := ParsePath(raw)
	require.True(t, err.IsNil())
	return path
}

func TestResolve(t *testing.T) {
	collection := greetingsCollection(t)

	resolved, err := collection.Resolve(
		mustPath(t, "greetings::informal"), LANG_AA, nil, Replacements{"user": "John"})
	require.True(t, err.IsNil())
	require.Equal(t, "What's good John?", resolved)

	resolved, err = collection.Resolve(
		mustPath(t, "greetings::formal"), LANG_ES, nil, nil)
	require.True(t, err.IsNil())
	require.Equal(t, "Bueno conocerte.", resolved)
}

func TestResolvePathNotFound(t *testing.T) {
	collection := greetingsCollection(t)

	_, err := collection.Resolve(
		mustPath(t, "greetings::unknown"), LANG_AA, nil, nil)
	require.True(t, err.IsNotNil())
	require.Equal(t, ErrPathNotFound, err.Class())
}

func TestResolveLanguageNotAvailable(t *testing.T) {
	collection := greetingsCollection(t)

	_, err := collection.Resolve(
		mustPath(t, "greetings::partial"), LANG_ES, nil, nil)
	require.True(t, err.IsNotNil())
	require.Equal(t, ErrLanguageNotAvailable, err.Class())
}

func TestResolveFallbackHit(t *testing.T) {
	collection := greetingsCollection(t)
	fallback := LANG_AA

	// LANG_EN is absent everywhere, the fallback covers it.
	resolved, err := collection.Resolve(
		mustPath(t, "greetings::formal"), LANG_EN, &fallback, nil)
	require.True(t, err.IsNil())
	require.Equal(t, "Nice to meet you.", resolved)
}

func TestResolveFallbackCheckedEagerly(t *testing.T) {
	collection := greetingsCollection(t)
	fallback := LANG_EN

	// The requested language IS available, but the configured fallback
	// is not. The resolution must still fail: a lucky direct hit
	// never masks a broken fallback contract.
	_, err := collection.Resolve(
		mustPath(t, "greetings::partial"), LANG_AA, &fallback, nil)
	require.True(t, err.IsNotNil())
	require.Equal(t, ErrFallbackNotAvailable, err.Class())
}

func TestResolveMissingPlaceholder(t *testing.T) {
	collection := greetingsCollection(t)

	_, err := collection.Resolve(
		mustPath(t, "greetings::informal"), LANG_AA, nil, Replacements{"somebody": "else"})
	require.True(t, err.IsNotNil())
	require.Equal(t, ErrMissingPlaceholder, err.Class())
}

func TestResolveContext(t *testing.T) {
	collection := greetingsCollection(t)

	resolved, err := collection.ResolveContext(
		mustPath(t, "greetings"),
		[]ContextField{
			{Name: "informal"},
			{Name: "formal"},
		},
		LANG_ES, nil, Replacements{"user": "John"})

	require.True(t, err.IsNil())
	require.Equal(t, map[string]string{
		"informal": "Que onda John?",
		"formal":   "Bueno conocerte.",
	}, resolved)
}

func TestResolveContextExplicitFieldPath(t *testing.T) {
	collection := greetingsCollection(t)

	resolved, err := collection.ResolveContext(
		mustPath(t, "greetings"),
		[]ContextField{
			{Name: "greeting", Path: mustPath(t, "formal")},
		},
		LANG_AA, nil, nil)

	require.True(t, err.IsNil())
	require.Equal(t, map[string]string{"greeting": "Nice to meet you."}, resolved)
}

func TestResolveContextFailsAsAWhole(t *testing.T) {
	collection := greetingsCollection(t)

	_, err := collection.ResolveContext(
		mustPath(t, "greetings"),
		[]ContextField{
			{Name: "formal"},
			{Name: "unknown"},
		},
		LANG_AA, nil, nil)

	require.True(t, err.IsNotNil())
	require.Equal(t, ErrPathNotFound, err.Class())
}

func TestResolveContextInvalidFieldName(t *testing.T) {
	collection := greetingsCollection(t)

	_, err := collection.ResolveContext(
		mustPath(t, "greetings"),
		[]ContextField{{Name: "not a name"}},
		LANG_AA, nil, nil)

	require.True(t, err.IsNotNil())
}
