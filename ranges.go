package lingoswap

// ScriptRanges maps a language identifier to the Unicode code-point intervals
// that characterize its script. Keys are matched exactly (case-sensitive);
// an identifier that is not a key scores 0% for any text.
//
// The Han ideograph blocks are deliberately claimed by all three CJK entries:
// the traditional/simplified Chinese and Japanese identifiers cannot be told
// apart by script alone, and Resolve breaks the tie in favor of the
// configured default language.
var ScriptRanges = map[string][]ScriptRange{
	"English": {
		{Lo: 'A', Hi: 'Z'},
		{Lo: 'a', Hi: 'z'},
	},
	"繁體中文": {
		{Lo: 0x4E00, Hi: 0x9FFF}, // CJK Unified Ideographs
		{Lo: 0x3400, Hi: 0x4DBF}, // CJK Unified Ideographs Extension A
	},
	"简体中文": {
		{Lo: 0x4E00, Hi: 0x9FFF}, // CJK Unified Ideographs
		{Lo: 0x3400, Hi: 0x4DBF}, // CJK Unified Ideographs Extension A
	},
	"日本語": {
		{Lo: 0x3040, Hi: 0x309F}, // Hiragana
		{Lo: 0x30A0, Hi: 0x30FF}, // Katakana
		{Lo: 0x4E00, Hi: 0x9FFF}, // CJK Unified Ideographs
	},
}

// Languages returns the language identifiers known to the script-range table.
func Languages() []string {
	langs := make([]string, 0, len(ScriptRanges))
	for lang := range ScriptRanges {
		langs = append(langs, lang)
	}
	return langs
}

// Supported reports whether lang is a key in the script-range table.
func Supported(lang string) bool {
	_, ok := ScriptRanges[lang]
	return ok
}

// RangesFor returns the script ranges for lang, or nil for an unknown
// identifier.
func RangesFor(lang string) []ScriptRange {
	return ScriptRanges[lang]
}
