package lingoswap

// ScriptPercent returns the percentage (0–100) of code points in text that
// fall inside any script range of lang. Text is measured in Unicode code
// points, not UTF-16 units or bytes, so ideographs and characters outside
// the basic multilingual plane each count as one character. Empty text and
// unknown language identifiers both score 0.
func ScriptPercent(text, lang string) float64 {
	ranges := ScriptRanges[lang]

	total := 0
	matched := 0
	for _, r := range text {
		total++
		for _, sr := range ranges {
			if sr.Contains(r) {
				matched++
				break
			}
		}
	}

	if total == 0 {
		return 0
	}
	return 100 * float64(matched) / float64(total)
}

// Resolve decides the translation direction for text given the configured
// default and target languages. If more than half of the text matches the
// default language's script, the text is judged to be in the default language
// and is translated toward the target. If instead more than half matches the
// target language's script, the direction is swapped. Otherwise — empty text,
// mixed content, or identifiers unknown to the table — the configured
// orientation is kept.
//
// The default language is checked first: on overlapping scripts (the shared
// Han blocks) both percentages can exceed 50 simultaneously, and the order of
// the checks resolves the tie in favor of the default language.
func Resolve(text, defaultLang, targetLang string) LanguagePair {
	defaultPercent := ScriptPercent(text, defaultLang)
	targetPercent := ScriptPercent(text, targetLang)

	if defaultPercent > 50 {
		return LanguagePair{Source: defaultLang, Destination: targetLang}
	}
	if targetPercent > 50 {
		return LanguagePair{Source: targetLang, Destination: defaultLang}
	}
	return LanguagePair{Source: defaultLang, Destination: targetLang}
}
