// Package lingoswap provides a direction-aware AI translation assistant.
package lingoswap

// Mode selects what the assistant asks the AI provider to do with a selection.
type Mode string

const (
	// ModeTranslate translates the selection between the resolved language pair.
	ModeTranslate Mode = "translate"
	// ModeCorrect fixes grammar and spelling without changing the language.
	ModeCorrect Mode = "correct"
)

// ScriptRange is an inclusive interval of Unicode code points belonging to a
// writing system.
type ScriptRange struct {
	Lo rune // First code point in the range (inclusive)
	Hi rune // Last code point in the range (inclusive)
}

// Contains reports whether r falls inside the range.
func (s ScriptRange) Contains(r rune) bool {
	return r >= s.Lo && r <= s.Hi
}

// LanguagePair is a resolved translation direction. Source is the language
// the selection was detected to be in, Destination the language it should be
// translated into.
type LanguagePair struct {
	Source      string
	Destination string
}

// Swapped returns the pair with source and destination exchanged.
func (p LanguagePair) Swapped() LanguagePair {
	return LanguagePair{Source: p.Destination, Destination: p.Source}
}

// Result is the outcome of a single assist operation.
type Result struct {
	Output      string // Completion returned by the provider (or cache)
	Source      string // Detected language of the selection
	Destination string // Language the output is in
	Mode        Mode   // Operation that produced the output
	Cached      bool   // Whether the output came from the cache
}
