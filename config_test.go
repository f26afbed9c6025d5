// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package translatable

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func noEnv(_ string) string { return "" }

func envOf(pairs map[string]string) func(string) string {
	return func(key string) string { return pairs[key] }
}

func TestParseConfigDefaults(t *testing.T) {
	config, err := parseConfig(nil, noEnv)
	require.True(t, err.IsNil())
	require.Equal(t, "./translations", config.Path)
	require.Equal(t, SEEK_MODE_ALPHABETICAL, config.SeekMode)
	require.Equal(t, TRANSLATION_OVERLAP_IGNORE, config.Overlap)
	require.Nil(t, config.FallbackLanguage)
}

func TestParseConfigFromFile(t *testing.T) {
	const content = `
locales_path = "./i18n"
seek_mode = "unalphabetical"
overlap = "overwrite"
fallback_language = "en"
`
	config, err := parseConfig([]byte(content), noEnv)
	require.True(t, err.IsNil())
	require.Equal(t, "./i18n", config.Path)
	require.Equal(t, SEEK_MODE_UNALPHABETICAL, config.SeekMode)
	require.Equal(t, TRANSLATION_OVERLAP_OVERWRITE, config.Overlap)
	require.NotNil(t, config.FallbackLanguage)
	require.Equal(t, LANG_EN, *config.FallbackLanguage)
}

func TestParseConfigEnvOverridesFile(t *testing.T) {
	const content = `
locales_path = "./from_file"
overlap = "ignore"
`
	config, err := parseConfig([]byte(content), envOf(map[string]string{
		"TRANSLATABLE_LOCALES_PATH": "./from_env",
		"TRANSLATABLE_OVERLAP":      "overwrite",
	}))
	require.True(t, err.IsNil())
	require.Equal(t, "./from_env", config.Path)
	require.Equal(t, TRANSLATION_OVERLAP_OVERWRITE, config.Overlap)
}

func TestParseConfigEnvOnly(t *testing.T) {
	config, err := parseConfig(nil, envOf(map[string]string{
		"TRANSLATABLE_FALLBACK_LANGUAGE": "ES",
	}))
	require.True(t, err.IsNil())
	require.NotNil(t, config.FallbackLanguage)

	// Codes are canonicalized regardless of the layer they came from.
	require.Equal(t, LANG_ES, *config.FallbackLanguage)
}

func TestParseConfigInvalidValues(t *testing.T) {
	for key, value := range map[string]string{
		"TRANSLATABLE_SEEK_MODE":         "random",
		"TRANSLATABLE_OVERLAP":           "merge",
		"TRANSLATABLE_FALLBACK_LANGUAGE": "english",
	} {
		_, err := parseConfig(nil, envOf(map[string]string{key: value}))
		require.True(t, err.IsNotNil(), key)
		require.Equal(t, ErrConfig, err.Class(), key)
	}
}

func TestParseConfigMalformedToml(t *testing.T) {
	_, err := parseConfig([]byte("locales_path = [unclosed"), noEnv)
	require.True(t, err.IsNotNil())
	require.Equal(t, ErrConfig, err.Class())
}

func TestSeekModeFromString(t *testing.T) {
	seekMode, err := SeekModeFromString("Alphabetical")
	require.True(t, err.IsNil())
	require.Equal(t, SEEK_MODE_ALPHABETICAL, seekMode)

	_, err = SeekModeFromString("whatever")
	require.True(t, err.IsNotNil())
}

func TestTranslationOverlapFromString(t *testing.T) {
	overlap, err := TranslationOverlapFromString("OVERWRITE")
	require.True(t, err.IsNil())
	require.Equal(t, TRANSLATION_OVERLAP_OVERWRITE, overlap)

	_, err = TranslationOverlapFromString("whatever")
	require.True(t, err.IsNotNil())
}
