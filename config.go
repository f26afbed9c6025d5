// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package translatable

import (
	"github.com/qioalice/ekago/v2/ekaerr"
)

type (
	/*
	SeekMode defines the order translation source files are loaded
	(and thus merged) in. Merging is sequential and overlap-sensitive,
	so the order matters and must be deterministic.
	*/
	SeekMode uint8

	/*
	TranslationOverlap defines what happens when two translation sources
	provide a translation of the same message into the same language.
	*/
	TranslationOverlap uint8

	/*
	Config is a fully resolved configuration of the translation system.

	It's assembled from three layers, from the highest priority
	to the lowest one:

	  1. Environment variables: TRANSLATABLE_LOCALES_PATH,
	     TRANSLATABLE_SEEK_MODE, TRANSLATABLE_OVERLAP,
	     TRANSLATABLE_FALLBACK_LANGUAGE.
	  2. A "translatable.toml" file in the working directory
	     (keys: locales_path, seek_mode, overlap, fallback_language).
	  3. Defaults: "./translations", SEEK_MODE_ALPHABETICAL,
	     TRANSLATION_OVERLAP_IGNORE, no fallback language.
	*/
	Config struct {

		// Path is the root directory translation sources are discovered under.
		Path string

		// SeekMode is the load order of discovered sources.
		SeekMode SeekMode

		// Overlap is the conflict policy of the merge.
		Overlap TranslationOverlap

		// FallbackLanguage, if not nil, is the language a resolution
		// falls back to when the requested one is unavailable.
		FallbackLanguage *Language
	}
)

//goland:noinspection GoSnakeCaseUsage
const (
	// SEEK_MODE_ALPHABETICAL loads sources in the ascending
	// lexicographical order of their relative paths. It's the default.
	SEEK_MODE_ALPHABETICAL SeekMode = 1

	// SEEK_MODE_UNALPHABETICAL loads sources in the descending
	// lexicographical order of their relative paths.
	SEEK_MODE_UNALPHABETICAL SeekMode = 2

	// TRANSLATION_OVERLAP_IGNORE keeps the already merged translation
	// on a conflict. First source wins. It's the default.
	TRANSLATION_OVERLAP_IGNORE TranslationOverlap = 1

	// TRANSLATION_OVERLAP_OVERWRITE replaces the already merged
	// translation on a conflict. Last source wins.
	TRANSLATION_OVERLAP_OVERWRITE TranslationOverlap = 2
)

/*
SeekModeFromString parses passed value ("alphabetical", "unalphabetical",
case insensitive) as a SeekMode.
*/
func SeekModeFromString(value string) (SeekMode, *ekaerr.Error) {
	const s = "Failed to parse a seek mode. "

	if seekMode, ok := seekModeFromString(value); ok {
		return seekMode, nil
	}

	return 0, ErrConfig.
		New(s + "Must be either \"alphabetical\" or \"unalphabetical\".").
		AddFields("translatable_config_value", value).
		Throw()
}

/*
TranslationOverlapFromString parses passed value ("ignore", "overwrite",
case insensitive) as a TranslationOverlap.
*/
func TranslationOverlapFromString(value string) (TranslationOverlap, *ekaerr.Error) {
	const s = "Failed to parse an overlap policy. "

	if overlap, ok := translationOverlapFromString(value); ok {
		return overlap, nil
	}

	return 0, ErrConfig.
		New(s + "Must be either \"ignore\" or \"overwrite\".").
		AddFields("translatable_config_value", value).
		Throw()
}

func (m SeekMode) String() string {
	switch m {
	case SEEK_MODE_ALPHABETICAL:
		return "alphabetical"
	case SEEK_MODE_UNALPHABETICAL:
		return "unalphabetical"
	default:
		return "<invalid seek mode>"
	}
}

func (o TranslationOverlap) String() string {
	switch o {
	case TRANSLATION_OVERLAP_IGNORE:
		return "ignore"
	case TRANSLATION_OVERLAP_OVERWRITE:
		return "overwrite"
	default:
		return "<invalid overlap>"
	}
}

/*
LoadConfig reads, assembles and returns the configuration
of the translation system, respecting the layer priority
described in the Config doc.

A missing "translatable.toml" isn't an error: the file layer
is simply skipped. A present but malformed one is.

The result is memoized. The first call does the real work,
all the following calls return the same *Config (or the same error).
*/
func LoadConfig() (*Config, *ekaerr.Error) {
	loadedConfigOnce.Do(func() {
		loadedConfig, loadedConfigErr = loadConfig()
	})
	if loadedConfigErr.IsNotNil() {
		return nil, loadedConfigErr.Throw()
	}
	return loadedConfig, nil
}
