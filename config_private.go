// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package translatable

import (
	"io/ioutil"
	"os"
	"strings"
	"sync"

	"github.com/qioalice/ekago/v2/ekaerr"

	"github.com/pelletier/go-toml"
)

//goland:noinspection GoSnakeCaseUsage
const (
	CONFIG_FILE_NAME  = "translatable.toml"
	CONFIG_ENV_PREFIX = "TRANSLATABLE_"

	CONFIG_KEY_LOCALES_PATH      = "locales_path"
	CONFIG_KEY_SEEK_MODE         = "seek_mode"
	CONFIG_KEY_OVERLAP           = "overlap"
	CONFIG_KEY_FALLBACK_LANGUAGE = "fallback_language"

	CONFIG_DEFAULT_LOCALES_PATH = "./translations"
)

type (
	/*
	configFile is the raw shape of "translatable.toml".
	All fields are strings on purpose: validation and enum parsing
	happen after the layering, once, in parseConfig.
	*/
	configFile struct {
		LocalesPath      string `toml:"locales_path"`
		SeekMode         string `toml:"seek_mode"`
		Overlap          string `toml:"overlap"`
		FallbackLanguage string `toml:"fallback_language"`
	}
)

var (
	loadedConfigOnce sync.Once
	loadedConfig     *Config
	loadedConfigErr  *ekaerr.Error
)

/*
loadConfig is the real worker behind LoadConfig:
reads "translatable.toml" from the working directory (if it exists)
and delegates to parseConfig with the process environment.
*/
func loadConfig() (*Config, *ekaerr.Error) {
	const s = "Failed to load the translatable configuration. "

	tomlContent, legacyErr := ioutil.ReadFile(CONFIG_FILE_NAME)
	if legacyErr != nil {
		if !os.IsNotExist(legacyErr) {
			return nil, ErrConfig.
				Wrap(legacyErr, s+"Unable to read the configuration file.").
				AddFields("translatable_config_file", CONFIG_FILE_NAME).
				Throw()
		}
		tomlContent = nil
	}

	config, err := parseConfig(tomlContent, os.Getenv)
	if err.IsNotNil() {
		return nil, err.Throw()
	}
	return config, nil
}

/*
parseConfig assembles a Config from the raw content of the
configuration file (nil if there is none) and an environment reader.

Being explicit about both inputs keeps the assembling pure
and testable without touching the real process environment.
*/
func parseConfig(tomlContent []byte, getenv func(string) string) (*Config, *ekaerr.Error) {
	const s = "Failed to load the translatable configuration. "

	var fileLayer configFile
	if len(tomlContent) > 0 {
		if legacyErr := toml.Unmarshal(tomlContent, &fileLayer); legacyErr != nil {
			return nil, ErrConfig.
				Wrap(legacyErr, s+"The configuration file is not a valid TOML.").
				AddFields("translatable_config_file", CONFIG_FILE_NAME).
				Throw()
		}
	}

	layered := func(key, fileValue string) string {
		if envValue := getenv(CONFIG_ENV_PREFIX + strings.ToUpper(key)); envValue != "" {
			return envValue
		}
		return fileValue
	}

	config := Config{
		Path:     CONFIG_DEFAULT_LOCALES_PATH,
		SeekMode: SEEK_MODE_ALPHABETICAL,
		Overlap:  TRANSLATION_OVERLAP_IGNORE,
	}

	if value := layered(CONFIG_KEY_LOCALES_PATH, fileLayer.LocalesPath); value != "" {
		config.Path = value
	}

	if value := layered(CONFIG_KEY_SEEK_MODE, fileLayer.SeekMode); value != "" {
		seekMode, ok := seekModeFromString(value)
		if !ok {
			return nil, ErrConfig.
				New(s + "Invalid seek mode.").
				AddFields(
					"translatable_config_key", CONFIG_KEY_SEEK_MODE,
					"translatable_config_value", value).
				Throw()
		}
		config.SeekMode = seekMode
	}

	if value := layered(CONFIG_KEY_OVERLAP, fileLayer.Overlap); value != "" {
		overlap, ok := translationOverlapFromString(value)
		if !ok {
			return nil, ErrConfig.
				New(s + "Invalid overlap policy.").
				AddFields(
					"translatable_config_key", CONFIG_KEY_OVERLAP,
					"translatable_config_value", value).
				Throw()
		}
		config.Overlap = overlap
	}

	if value := layered(CONFIG_KEY_FALLBACK_LANGUAGE, fileLayer.FallbackLanguage); value != "" {
		language, ok := languageFromCode(value)
		if !ok {
			return nil, ErrConfig.
				New(s + "Invalid fallback language. Must be an ISO 639-1 code.").
				AddFields(
					"translatable_config_key", CONFIG_KEY_FALLBACK_LANGUAGE,
					"translatable_config_value", value).
				Throw()
		}
		config.FallbackLanguage = &language
	}

	return &config, nil
}

func seekModeFromString(value string) (SeekMode, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "alphabetical":
		return SEEK_MODE_ALPHABETICAL, true
	case "unalphabetical":
		return SEEK_MODE_UNALPHABETICAL, true
	default:
		return 0, false
	}
}

func translationOverlapFromString(value string) (TranslationOverlap, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "ignore":
		return TRANSLATION_OVERLAP_IGNORE, true
	case "overwrite":
		return TRANSLATION_OVERLAP_OVERWRITE, true
	default:
		return 0, false
	}
}
