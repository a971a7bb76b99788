package sogou

import (
	"fmt"
	"sort"
)

// Language is a language code understood by the Sogou translate API.
type Language string

// Supported languages.
const (
	Arabic             Language = "ar"
	Estonian           Language = "et"
	Bulgarian          Language = "bg"
	Polish             Language = "pl"
	Korean             Language = "ko"
	BosnianLatin       Language = "bs-Latn"
	Persian            Language = "fa"
	HmongDaw           Language = "mww"
	Danish             Language = "da"
	German             Language = "de"
	Russian            Language = "ru"
	French             Language = "fr"
	Finnish            Language = "fi"
	KlingonPIqaD       Language = "tlh-Qaak"
	Klingon            Language = "tlh"
	Croatian           Language = "hr"
	QueretaroOtomi     Language = "otq"
	Catalan            Language = "ca"
	Czech              Language = "cs"
	Romanian           Language = "ro"
	Latvian            Language = "lv"
	HaitianCreole      Language = "ht"
	Lithuanian         Language = "lt"
	Dutch              Language = "nl"
	Malay              Language = "ms"
	Maltese            Language = "mt"
	Portuguese         Language = "pt"
	Japanese           Language = "ja"
	Slovenian          Language = "sl"
	Thai               Language = "th"
	Turkish            Language = "tr"
	SerbianLatin       Language = "sr-Latn"
	SerbianCyrillic    Language = "sr-Cyrl"
	Slovak             Language = "sk"
	Kiswahili          Language = "sw"
	Afrikaans          Language = "af"
	Norwegian          Language = "no"
	English            Language = "en"
	Spanish            Language = "es"
	Ukrainian          Language = "uk"
	Urdu               Language = "ur"
	Greek              Language = "el"
	Hungarian          Language = "hu"
	Welsh              Language = "cy"
	YucatecMaya        Language = "yua"
	Hebrew             Language = "he"
	ChineseSimplified  Language = "zh-CHS"
	Italian            Language = "it"
	Hindi              Language = "hi"
	Indonesian         Language = "id"
	ChineseTraditional Language = "zh-CHT"
	Vietnamese         Language = "vi"
	Swedish            Language = "sv"
	Cantonese          Language = "yue"
	Fijian             Language = "fj"
	Filipino           Language = "fil"
	Samoan             Language = "sm"
	Tongan             Language = "to"
	Tahitian           Language = "ty"
	Malagasy           Language = "mg"
	Bengali            Language = "bn"
)

// languageNames maps every supported code to its English name.
var languageNames = map[Language]string{
	Arabic:             "Arabic",
	Estonian:           "Estonian",
	Bulgarian:          "Bulgarian",
	Polish:             "Polish",
	Korean:             "Korean",
	BosnianLatin:       "Bosnian (Latin)",
	Persian:            "Persian",
	HmongDaw:           "Hmong Daw",
	Danish:             "Danish",
	German:             "German",
	Russian:            "Russian",
	French:             "French",
	Finnish:            "Finnish",
	KlingonPIqaD:       "Klingon (pIqaD)",
	Klingon:            "Klingon",
	Croatian:           "Croatian",
	QueretaroOtomi:     "Querétaro Otomi",
	Catalan:            "Catalan",
	Czech:              "Czech",
	Romanian:           "Romanian",
	Latvian:            "Latvian",
	HaitianCreole:      "Haitian Creole",
	Lithuanian:         "Lithuanian",
	Dutch:              "Dutch",
	Malay:              "Malay",
	Maltese:            "Maltese",
	Portuguese:         "Portuguese",
	Japanese:           "Japanese",
	Slovenian:          "Slovenian",
	Thai:               "Thai",
	Turkish:            "Turkish",
	SerbianLatin:       "Serbian (Latin)",
	SerbianCyrillic:    "Serbian (Cyrillic)",
	Slovak:             "Slovak",
	Kiswahili:          "Kiswahili",
	Afrikaans:          "Afrikaans",
	Norwegian:          "Norwegian",
	English:            "English",
	Spanish:            "Spanish",
	Ukrainian:          "Ukrainian",
	Urdu:               "Urdu",
	Greek:              "Greek",
	Hungarian:          "Hungarian",
	Welsh:              "Welsh",
	YucatecMaya:        "Yucatec Maya",
	Hebrew:             "Hebrew",
	ChineseSimplified:  "Chinese Simplified",
	Italian:            "Italian",
	Hindi:              "Hindi",
	Indonesian:         "Indonesian",
	ChineseTraditional: "Chinese Traditional",
	Vietnamese:         "Vietnamese",
	Swedish:            "Swedish",
	Cantonese:          "Cantonese",
	Fijian:             "Fijian",
	Filipino:           "Filipino",
	Samoan:             "Samoan",
	Tongan:             "Tongan",
	Tahitian:           "Tahitian",
	Malagasy:           "Malagasy",
	Bengali:            "Bengali",
}

// String returns the wire code.
func (l Language) String() string {
	return string(l)
}

// Valid reports whether l is one of the supported codes.
func (l Language) Valid() bool {
	_, ok := languageNames[l]
	return ok
}

// Name returns the English name of the language, or "" if unsupported.
func (l Language) Name() string {
	return languageNames[l]
}

// ParseLanguage returns the Language for a wire code. Codes are matched
// exactly, so "zh-chs" is rejected.
func ParseLanguage(code string) (Language, error) {
	l := Language(code)
	if !l.Valid() {
		return "", fmt.Errorf("sogou: unsupported language %q", code)
	}
	return l, nil
}

// Languages returns all supported languages sorted by code.
func Languages() []Language {
	langs := make([]Language, 0, len(languageNames))
	for l := range languageNames {
		langs = append(langs, l)
	}
	sort.Slice(langs, func(i, j int) bool { return langs[i] < langs[j] })
	return langs
}
