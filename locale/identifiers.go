package locale

// Identifier is a BCP 47 language tag such as "en-US".
type Identifier string

// known lists the identifiers editors and callers can pick from. Formatting
// functions accept tags outside this list too.
var known = []Identifier{
	"af-ZA", "am-ET", "ar-AE", "ar-BH", "ar-DZ", "ar-EG", "ar-IQ", "ar-JO",
	"ar-KW", "ar-LB", "ar-LY", "ar-MA", "ar-OM", "ar-QA", "ar-SA", "ar-SY",
	"ar-TN", "ar-YE", "as-IN", "az-AZ", "be-BY", "bg-BG", "bn-BD", "bn-IN",
	"bs-BA", "ca-ES", "cs-CZ", "cy-GB", "da-DK", "de-AT", "de-CH", "de-DE",
	"de-LI", "de-LU", "el-GR", "en-AU", "en-BZ", "en-CA", "en-GB", "en-IE",
	"en-IN", "en-JM", "en-MY", "en-NZ", "en-PH", "en-SG", "en-TT", "en-US",
	"en-ZA", "en-ZW", "es-AR", "es-BO", "es-CL", "es-CO", "es-CR", "es-DO",
	"es-EC", "es-ES", "es-GT", "es-HN", "es-MX", "es-NI", "es-PA", "es-PE",
	"es-PR", "es-PY", "es-SV", "es-US", "es-UY", "es-VE", "et-EE", "eu-ES",
	"fa-IR", "fi-FI", "fil-PH", "fo-FO", "fr-BE", "fr-CA", "fr-CH", "fr-FR",
	"fr-LU", "fr-MC", "ga-IE", "gd-GB", "gl-ES", "gu-IN", "ha-NG", "he-IL",
	"hi-IN", "hr-BA", "hr-HR", "hu-HU", "hy-AM", "id-ID", "ig-NG", "is-IS",
	"it-CH", "it-IT", "ja-JP", "jv-ID", "ka-GE", "kk-KZ", "km-KH", "kn-IN",
	"ko-KR", "ky-KG", "lb-LU", "lo-LA", "lt-LT", "lv-LV", "mi-NZ", "mk-MK",
	"ml-IN", "mn-MN", "mr-IN", "ms-BN", "ms-MY", "mt-MT", "my-MM", "nb-NO",
	"ne-NP", "nl-BE", "nl-NL", "nn-NO", "or-IN", "pa-IN", "pl-PL", "ps-AF",
	"pt-BR", "pt-PT", "qu-PE", "rm-CH", "ro-MD", "ro-RO", "ru-RU", "ru-UA",
	"rw-RW", "sd-PK", "si-LK", "sk-SK", "sl-SI", "so-SO", "sq-AL", "sr-BA",
	"sr-ME", "sr-RS", "sv-FI", "sv-SE", "sw-KE", "ta-IN", "ta-LK", "te-IN",
	"tg-TJ", "th-TH", "tk-TM", "tr-TR", "tt-RU", "ug-CN", "uk-UA", "ur-PK",
	"uz-UZ", "vi-VN", "wo-SN", "xh-ZA", "yo-NG", "zh-CN", "zh-HK", "zh-MO",
	"zh-SG", "zh-TW", "zu-ZA",
	"ar", "de", "en", "es", "fr", "it", "ja", "pt",
	"ru", "zh",
}
