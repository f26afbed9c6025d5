// Copyright © 2021. All rights reserved.
// Author: Ilya Stroy.
// Contacts: qioalice@gmail.com, https://github.com/qioalice
// License: https://opensource.org/licenses/MIT

package translatable

var (
	/*
	languageNames is the closed registry of all supported languages:
	canonical ISO 639-1 code -> English display name.

	Both LanguageFromCode() and Language.IsValid() are bound to this map.
	Adding a language here is the only way to extend the supported set.
	*/
	languageNames = map[Language]string{
		LANG_AA: "Afar",
		LANG_AB: "Abkhazian",
		LANG_AE: "Avestan",
		LANG_AF: "Afrikaans",
		LANG_AK: "Akan",
		LANG_AM: "Amharic",
		LANG_AN: "Aragonese",
		LANG_AR: "Arabic",
		LANG_AS: "Assamese",
		LANG_AV: "Avaric",
		LANG_AY: "Aymara",
		LANG_AZ: "Azerbaijani",
		LANG_BA: "Bashkir",
		LANG_BE: "Belarusian",
		LANG_BG: "Bulgarian",
		LANG_BI: "Bislama",
		LANG_BM: "Bambara",
		LANG_BN: "Bengali",
		LANG_BO: "Tibetan",
		LANG_BR: "Breton",
		LANG_BS: "Bosnian",
		LANG_CA: "Catalan",
		LANG_CE: "Chechen",
		LANG_CH: "Chamorro",
		LANG_CO: "Corsican",
		LANG_CR: "Cree",
		LANG_CS: "Czech",
		LANG_CU: "Church Slavonic",
		LANG_CV: "Chuvash",
		LANG_CY: "Welsh",
		LANG_DA: "Danish",
		LANG_DE: "German",
		LANG_DV: "Divehi",
		LANG_DZ: "Dzongkha",
		LANG_EE: "Ewe",
		LANG_EL: "Greek",
		LANG_EN: "English",
		LANG_EO: "Esperanto",
		LANG_ES: "Spanish",
		LANG_ET: "Estonian",
		LANG_EU: "Basque",
		LANG_FA: "Persian",
		LANG_FF: "Fulah",
		LANG_FI: "Finnish",
		LANG_FJ: "Fijian",
		LANG_FO: "Faroese",
		LANG_FR: "French",
		LANG_FY: "Western Frisian",
		LANG_GA: "Irish",
		LANG_GD: "Scottish Gaelic",
		LANG_GL: "Galician",
		LANG_GN: "Guarani",
		LANG_GU: "Gujarati",
		LANG_GV: "Manx",
		LANG_HA: "Hausa",
		LANG_HE: "Hebrew",
		LANG_HI: "Hindi",
		LANG_HO: "Hiri Motu",
		LANG_HR: "Croatian",
		LANG_HT: "Haitian",
		LANG_HU: "Hungarian",
		LANG_HY: "Armenian",
		LANG_HZ: "Herero",
		LANG_IA: "Interlingua",
		LANG_ID: "Indonesian",
		LANG_IE: "Interlingue",
		LANG_IG: "Igbo",
		LANG_II: "Sichuan Yi",
		LANG_IK: "Inupiaq",
		LANG_IO: "Ido",
		LANG_IS: "Icelandic",
		LANG_IT: "Italian",
		LANG_IU: "Inuktitut",
		LANG_JA: "Japanese",
		LANG_JV: "Javanese",
		LANG_KA: "Georgian",
		LANG_KG: "Kongo",
		LANG_KI: "Kikuyu",
		LANG_KJ: "Kuanyama",
		LANG_KK: "Kazakh",
		LANG_KL: "Kalaallisut",
		LANG_KM: "Central Khmer",
		LANG_KN: "Kannada",
		LANG_KO: "Korean",
		LANG_KR: "Kanuri",
		LANG_KS: "Kashmiri",
		LANG_KU: "Kurdish",
		LANG_KV: "Komi",
		LANG_KW: "Cornish",
		LANG_KY: "Kirghiz",
		LANG_LA: "Latin",
		LANG_LB: "Luxembourgish",
		LANG_LG: "Ganda",
		LANG_LI: "Limburgan",
		LANG_LN: "Lingala",
		LANG_LO: "Lao",
		LANG_LT: "Lithuanian",
		LANG_LU: "Luba-Katanga",
		LANG_LV: "Latvian",
		LANG_MG: "Malagasy",
		LANG_MH: "Marshallese",
		LANG_MI: "Maori",
		LANG_MK: "Macedonian",
		LANG_ML: "Malayalam",
		LANG_MN: "Mongolian",
		LANG_MR: "Marathi",
		LANG_MS: "Malay",
		LANG_MT: "Maltese",
		LANG_MY: "Burmese",
		LANG_NA: "Nauru",
		LANG_NB: "Norwegian Bokmal",
		LANG_ND: "North Ndebele",
		LANG_NE: "Nepali",
		LANG_NG: "Ndonga",
		LANG_NL: "Dutch",
		LANG_NN: "Norwegian Nynorsk",
		LANG_NO: "Norwegian",
		LANG_NR: "South Ndebele",
		LANG_NV: "Navajo",
		LANG_NY: "Chichewa",
		LANG_OC: "Occitan",
		LANG_OJ: "Ojibwa",
		LANG_OM: "Oromo",
		LANG_OR: "Oriya",
		LANG_OS: "Ossetian",
		LANG_PA: "Panjabi",
		LANG_PI: "Pali",
		LANG_PL: "Polish",
		LANG_PS: "Pashto",
		LANG_PT: "Portuguese",
		LANG_QU: "Quechua",
		LANG_RM: "Romansh",
		LANG_RN: "Rundi",
		LANG_RO: "Romanian",
		LANG_RU: "Russian",
		LANG_RW: "Kinyarwanda",
		LANG_SA: "Sanskrit",
		LANG_SC: "Sardinian",
		LANG_SD: "Sindhi",
		LANG_SE: "Northern Sami",
		LANG_SG: "Sango",
		LANG_SI: "Sinhala",
		LANG_SK: "Slovak",
		LANG_SL: "Slovenian",
		LANG_SM: "Samoan",
		LANG_SN: "Shona",
		LANG_SO: "Somali",
		LANG_SQ: "Albanian",
		LANG_SR: "Serbian",
		LANG_SS: "Swati",
		LANG_ST: "Southern Sotho",
		LANG_SU: "Sundanese",
		LANG_SV: "Swedish",
		LANG_SW: "Swahili",
		LANG_TA: "Tamil",
		LANG_TE: "Telugu",
		LANG_TG: "Tajik",
		LANG_TH: "Thai",
		LANG_TI: "Tigrinya",
		LANG_TK: "Turkmen",
		LANG_TL: "Tagalog",
		LANG_TN: "Tswana",
		LANG_TO: "Tonga",
		LANG_TR: "Turkish",
		LANG_TS: "Tsonga",
		LANG_TT: "Tatar",
		LANG_TW: "Twi",
		LANG_TY: "Tahitian",
		LANG_UG: "Uighur",
		LANG_UK: "Ukrainian",
		LANG_UR: "Urdu",
		LANG_UZ: "Uzbek",
		LANG_VE: "Venda",
		LANG_VI: "Vietnamese",
		LANG_VO: "Volapuk",
		LANG_WA: "Walloon",
		LANG_WO: "Wolof",
		LANG_XH: "Xhosa",
		LANG_YI: "Yiddish",
		LANG_YO: "Yoruba",
		LANG_ZA: "Zhuang",
		LANG_ZH: "Chinese",
		LANG_ZU: "Zulu",
	}
)
