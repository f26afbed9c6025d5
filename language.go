// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package translatable

import (
	"strings"

	"github.com/qioalice/ekago/v2/ekaerr"
)

type (
	/*
	Language is one supported locale of the translation system.

	It's a value type over the canonical ISO 639-1 two letter code
	(lower case). The set of languages is closed:
	only the LANG_* constants declared below are valid Language values,
	and LanguageFromCode() is the only way to obtain a Language
	from an untrusted string.

	Language is comparable. Two Language values are the same language
	if and only if they are equal.
	*/
	Language string
)

//goland:noinspection GoSnakeCaseUsage
const (
	LANG_AA Language = "aa" // Afar
	LANG_AB Language = "ab" // Abkhazian
	LANG_AE Language = "ae" // Avestan
	LANG_AF Language = "af" // Afrikaans
	LANG_AK Language = "ak" // Akan
	LANG_AM Language = "am" // Amharic
	LANG_AN Language = "an" // Aragonese
	LANG_AR Language = "ar" // Arabic
	LANG_AS Language = "as" // Assamese
	LANG_AV Language = "av" // Avaric
	LANG_AY Language = "ay" // Aymara
	LANG_AZ Language = "az" // Azerbaijani
	LANG_BA Language = "ba" // Bashkir
	LANG_BE Language = "be" // Belarusian
	LANG_BG Language = "bg" // Bulgarian
	LANG_BI Language = "bi" // Bislama
	LANG_BM Language = "bm" // Bambara
	LANG_BN Language = "bn" // Bengali
	LANG_BO Language = "bo" // Tibetan
	LANG_BR Language = "br" // Breton
	LANG_BS Language = "bs" // Bosnian
	LANG_CA Language = "ca" // Catalan
	LANG_CE Language = "ce" // Chechen
	LANG_CH Language = "ch" // Chamorro
	LANG_CO Language = "co" // Corsican
	LANG_CR Language = "cr" // Cree
	LANG_CS Language = "cs" // Czech
	LANG_CU Language = "cu" // Church Slavonic
	LANG_CV Language = "cv" // Chuvash
	LANG_CY Language = "cy" // Welsh
	LANG_DA Language = "da" // Danish
	LANG_DE Language = "de" // German
	LANG_DV Language = "dv" // Divehi
	LANG_DZ Language = "dz" // Dzongkha
	LANG_EE Language = "ee" // Ewe
	LANG_EL Language = "el" // Greek
	LANG_EN Language = "en" // English
	LANG_EO Language = "eo" // Esperanto
	LANG_ES Language = "es" // Spanish
	LANG_ET Language = "et" // Estonian
	LANG_EU Language = "eu" // Basque
	LANG_FA Language = "fa" // Persian
	LANG_FF Language = "ff" // Fulah
	LANG_FI Language = "fi" // Finnish
	LANG_FJ Language = "fj" // Fijian
	LANG_FO Language = "fo" // Faroese
	LANG_FR Language = "fr" // French
	LANG_FY Language = "fy" // Western Frisian
	LANG_GA Language = "ga" // Irish
	LANG_GD Language = "gd" // Scottish Gaelic
	LANG_GL Language = "gl" // Galician
	LANG_GN Language = "gn" // Guarani
	LANG_GU Language = "gu" // Gujarati
	LANG_GV Language = "gv" // Manx
	LANG_HA Language = "ha" // Hausa
	LANG_HE Language = "he" // Hebrew
	LANG_HI Language = "hi" // Hindi
	LANG_HO Language = "ho" // Hiri Motu
	LANG_HR Language = "hr" // Croatian
	LANG_HT Language = "ht" // Haitian
	LANG_HU Language = "hu" // Hungarian
	LANG_HY Language = "hy" // Armenian
	LANG_HZ Language = "hz" // Herero
	LANG_IA Language = "ia" // Interlingua
	LANG_ID Language = "id" // Indonesian
	LANG_IE Language = "ie" // Interlingue
	LANG_IG Language = "ig" // Igbo
	LANG_II Language = "ii" // Sichuan Yi
	LANG_IK Language = "ik" // Inupiaq
	LANG_IO Language = "io" // Ido
	LANG_IS Language = "is" // Icelandic
	LANG_IT Language = "it" // Italian
	LANG_IU Language = "iu" // Inuktitut
	LANG_JA Language = "ja" // Japanese
	LANG_JV Language = "jv" // Javanese
	LANG_KA Language = "ka" // Georgian
	LANG_KG Language = "kg" // Kongo
	LANG_KI Language = "ki" // Kikuyu
	LANG_KJ Language = "kj" // Kuanyama
	LANG_KK Language = "kk" // Kazakh
	LANG_KL Language = "kl" // Kalaallisut
	LANG_KM Language = "km" // Central Khmer
	LANG_KN Language = "kn" // Kannada
	LANG_KO Language = "ko" // Korean
	LANG_KR Language = "kr" // Kanuri
	LANG_KS Language = "ks" // Kashmiri
	LANG_KU Language = "ku" // Kurdish
	LANG_KV Language = "kv" // Komi
	LANG_KW Language = "kw" // Cornish
	LANG_KY Language = "ky" // Kirghiz
	LANG_LA Language = "la" // Latin
	LANG_LB Language = "lb" // Luxembourgish
	LANG_LG Language = "lg" // Ganda
	LANG_LI Language = "li" // Limburgan
	LANG_LN Language = "ln" // Lingala
	LANG_LO Language = "lo" // Lao
	LANG_LT Language = "lt" // Lithuanian
	LANG_LU Language = "lu" // Luba-Katanga
	LANG_LV Language = "lv" // Latvian
	LANG_MG Language = "mg" // Malagasy
	LANG_MH Language = "mh" // Marshallese
	LANG_MI Language = "mi" // Maori
	LANG_MK Language = "mk" // Macedonian
	LANG_ML Language = "ml" // Malayalam
	LANG_MN Language = "mn" // Mongolian
	LANG_MR Language = "mr" // Marathi
	LANG_MS Language = "ms" // Malay
	LANG_MT Language = "mt" // Maltese
	LANG_MY Language = "my" // Burmese
	LANG_NA Language = "na" // Nauru
	LANG_NB Language = "nb" // Norwegian Bokmal
	LANG_ND Language = "nd" // North Ndebele
	LANG_NE Language = "ne" // Nepali
	LANG_NG Language = "ng" // Ndonga
	LANG_NL Language = "nl" // Dutch
	LANG_NN Language = "nn" // Norwegian Nynorsk
	LANG_NO Language = "no" // Norwegian
	LANG_NR Language = "nr" // South Ndebele
	LANG_NV Language = "nv" // Navajo
	LANG_NY Language = "ny" // Chichewa
	LANG_OC Language = "oc" // Occitan
	LANG_OJ Language = "oj" // Ojibwa
	LANG_OM Language = "om" // Oromo
	LANG_OR Language = "or" // Oriya
	LANG_OS Language = "os" // Ossetian
	LANG_PA Language = "pa" // Panjabi
	LANG_PI Language = "pi" // Pali
	LANG_PL Language = "pl" // Polish
	LANG_PS Language = "ps" // Pashto
	LANG_PT Language = "pt" // Portuguese
	LANG_QU Language = "qu" // Quechua
	LANG_RM Language = "rm" // Romansh
	LANG_RN Language = "rn" // Rundi
	LANG_RO Language = "ro" // Romanian
	LANG_RU Language = "ru" // Russian
	LANG_RW Language = "rw" // Kinyarwanda
	LANG_SA Language = "sa" // Sanskrit
	LANG_SC Language = "sc" // Sardinian
	LANG_SD Language = "sd" // Sindhi
	LANG_SE Language = "se" // Northern Sami
	LANG_SG Language = "sg" // Sango
	LANG_SI Language = "si" // Sinhala
	LANG_SK Language = "sk" // Slovak
	LANG_SL Language = "sl" // Slovenian
	LANG_SM Language = "sm" // Samoan
	LANG_SN Language = "sn" // Shona
	LANG_SO Language = "so" // Somali
	LANG_SQ Language = "sq" // Albanian
	LANG_SR Language = "sr" // Serbian
	LANG_SS Language = "ss" // Swati
	LANG_ST Language = "st" // Southern Sotho
	LANG_SU Language = "su" // Sundanese
	LANG_SV Language = "sv" // Swedish
	LANG_SW Language = "sw" // Swahili
	LANG_TA Language = "ta" // Tamil
	LANG_TE Language = "te" // Telugu
	LANG_TG Language = "tg" // Tajik
	LANG_TH Language = "th" // Thai
	LANG_TI Language = "ti" // Tigrinya
	LANG_TK Language = "tk" // Turkmen
	LANG_TL Language = "tl" // Tagalog
	LANG_TN Language = "tn" // Tswana
	LANG_TO Language = "to" // Tonga
	LANG_TR Language = "tr" // Turkish
	LANG_TS Language = "ts" // Tsonga
	LANG_TT Language = "tt" // Tatar
	LANG_TW Language = "tw" // Twi
	LANG_TY Language = "ty" // Tahitian
	LANG_UG Language = "ug" // Uighur
	LANG_UK Language = "uk" // Ukrainian
	LANG_UR Language = "ur" // Urdu
	LANG_UZ Language = "uz" // Uzbek
	LANG_VE Language = "ve" // Venda
	LANG_VI Language = "vi" // Vietnamese
	LANG_VO Language = "vo" // Volapuk
	LANG_WA Language = "wa" // Walloon
	LANG_WO Language = "wo" // Wolof
	LANG_XH Language = "xh" // Xhosa
	LANG_YI Language = "yi" // Yiddish
	LANG_YO Language = "yo" // Yoruba
	LANG_ZA Language = "za" // Zhuang
	LANG_ZH Language = "zh" // Chinese
	LANG_ZU Language = "zu" // Zulu
)

/*
LanguageFromCode parses passed code as an ISO 639-1 language code
and returns the corresponding Language.

The parsing is case insensitive ("ES", "es", "Es" are the same language),
but the returned Language always holds the canonical (lower case) code.

Returns an error if code doesn't belong to the closed set
of supported languages.
*/
func LanguageFromCode(code string) (Language, *ekaerr.Error) {
	const s = "Failed to parse a language code. "

	if language, ok := languageFromCode(code); ok {
		return language, nil
	}

	return "", ekaerr.IllegalArgument.
		New(s + "Unknown or unsupported ISO 639-1 code.").
		AddFields("translatable_language_code", code).
		Throw()
}

/*
Code returns the canonical (lower case two letter) code
of the current Language.
*/
func (l Language) Code() string {
	return string(l)
}

/*
Name returns the English display name of the current Language,
or an empty string if the Language doesn't belong to the closed set
of supported languages.
*/
func (l Language) Name() string {
	return languageNames[l]
}

/*
IsValid reports whether the current Language belongs to the closed set
of supported languages.
*/
func (l Language) IsValid() bool {
	_, ok := languageNames[l]
	return ok
}

func (l Language) String() string {
	return l.Code()
}

/*
languageFromCode is an error-free version of LanguageFromCode.
It's used by the source scanner, for which "not a language code"
isn't an error but a way to distinguish namespaces from messages.
*/
func languageFromCode(code string) (Language, bool) {
	if len(code) != 2 {
		return "", false
	}
	language := Language(strings.ToLower(code))
	if _, ok := languageNames[language]; !ok {
		return "", false
	}
	return language, true
}
