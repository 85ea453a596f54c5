package lingoswap

import "fmt"

// TranslateInstruction builds the system instruction for translating a
// selection along the resolved direction.
func TranslateInstruction(pair LanguagePair) string {
	return fmt.Sprintf(
		"You are a professional translator. Translate the text provided by the user from %s to %s. "+
			"Preserve the original formatting, line breaks, and any code identifiers or URLs exactly as they appear. "+
			"Reply with the translated text only, without explanations or quotation marks.",
		pair.Source, pair.Destination)
}

// CorrectInstruction builds the system instruction for fixing grammar and
// spelling. The detected source language names the language being corrected
// so the model does not translate the selection.
func CorrectInstruction(pair LanguagePair) string {
	return fmt.Sprintf(
		"You are a professional proofreader. Correct the grammar, spelling, and punctuation of the text "+
			"provided by the user, keeping it in %s. Preserve the original meaning, tone, and formatting. "+
			"Reply with the corrected text only, without explanations or quotation marks.",
		pair.Source)
}

// InstructionFor returns the system instruction for the given mode and pair.
func InstructionFor(mode Mode, pair LanguagePair) string {
	if mode == ModeCorrect {
		return CorrectInstruction(pair)
	}
	return TranslateInstruction(pair)
}
