// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package translatable

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

/*
TestClient covers the whole stack at once:
configuration from the environment, source discovery,
parsing, merge and resolution, both through an isolated Client
and through the package-level shortcuts.

It's a single test on purpose. The configuration and the default
Client are memoized for the process lifetime, so everything
that depends on them must run under the same environment.
*/
func TestClient(t *testing.T) {
	dir, legacyErr := ioutil.TempDir("", "translatable-client-test")
	require.NoError(t, legacyErr)
	defer os.RemoveAll(dir)

	content := `
[greetings.informal]
aa = "What's good {user}?"
es = "Que onda {user}?"

[greetings.formal]
aa = "Nice to meet you."
es = "Bueno conocerte."
`
	require.NoError(t, ioutil.WriteFile(
		filepath.Join(dir, "greetings.toml"), []byte(content), 0644))

	require.NoError(t, os.Setenv("TRANSLATABLE_LOCALES_PATH", dir))
	require.NoError(t, os.Setenv("TRANSLATABLE_FALLBACK_LANGUAGE", "aa"))
	defer os.Unsetenv("TRANSLATABLE_LOCALES_PATH")
	defer os.Unsetenv("TRANSLATABLE_FALLBACK_LANGUAGE")

	var client Client

	config, err := client.Config()
	require.True(t, err.IsNil())
	require.Equal(t, dir, config.Path)
	require.NotNil(t, config.FallbackLanguage)
	require.Equal(t, LANG_AA, *config.FallbackLanguage)

	collection, err := client.Translations()
	require.True(t, err.IsNil())
	require.Equal(t, 2, collection.ObjectsTotal())

	resolved, err := client.Resolve("greetings::informal", LANG_ES, Replacements{"user": "John"})
	require.True(t, err.IsNil())
	require.Equal(t, "Que onda John?", resolved)

	// LANG_EN is absent, the configured fallback covers it.
	resolved, err = client.Resolve("greetings::formal", LANG_EN, nil)
	require.True(t, err.IsNil())
	require.Equal(t, "Nice to meet you.", resolved)

	object, err := client.FindPath("greetings::formal")
	require.True(t, err.IsNil())
	require.NotNil(t, object)

	// A miss is not an error for FindPath.
	object, err = client.FindPath("greetings::unknown")
	require.True(t, err.IsNil())
	require.Nil(t, object)

	resolvedContext, err := client.ResolveContext(
		"greetings",
		[]ContextField{{Name: "informal"}, {Name: "formal"}},
		LANG_AA, Replacements{"user": "John"})
	require.True(t, err.IsNil())
	require.Equal(t, map[string]string{
		"informal": "What's good John?",
		"formal":   "Nice to meet you.",
	}, resolvedContext)

	// The package-level shortcuts go through the default Client
	// and must see the same environment.

	resolved, err = Resolve("greetings::informal", LANG_AA, Replacements{"user": "John"})
	require.True(t, err.IsNil())
	require.Equal(t, "What's good John?", resolved)

	resolved, err = ResolvePath(mustPath(t, "greetings::formal"), LANG_ES, nil)
	require.True(t, err.IsNil())
	require.Equal(t, "Bueno conocerte.", resolved)

	object, err = FindPath("greetings::informal")
	require.True(t, err.IsNil())
	require.NotNil(t, object)

	globalCollection, err := Translations()
	require.True(t, err.IsNil())
	require.Equal(t, 2, globalCollection.ObjectsTotal())

	resolvedContext, err = ResolveContext(
		"greetings",
		[]ContextField{{Name: "formal"}},
		LANG_ES, nil)
	require.True(t, err.IsNil())
	require.Equal(t, map[string]string{"formal": "Bueno conocerte."}, resolvedContext)
}
