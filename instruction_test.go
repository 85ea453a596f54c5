package lingoswap

import (
	"strings"
	"testing"
)

func TestTranslateInstruction(t *testing.T) {
	pair := LanguagePair{Source: "English", Destination: "繁體中文"}
	instruction := TranslateInstruction(pair)

	if !strings.Contains(instruction, "from English to 繁體中文") {
		t.Errorf("instruction should name the direction, got: %s", instruction)
	}
	if !strings.Contains(instruction, "translated text only") {
		t.Errorf("instruction should ask for text-only replies, got: %s", instruction)
	}
}

func TestTranslateInstruction_SwappedDirection(t *testing.T) {
	pair := LanguagePair{Source: "繁體中文", Destination: "English"}
	instruction := TranslateInstruction(pair)

	if !strings.Contains(instruction, "from 繁體中文 to English") {
		t.Errorf("instruction should follow the swapped direction, got: %s", instruction)
	}
}

func TestCorrectInstruction(t *testing.T) {
	pair := LanguagePair{Source: "English", Destination: "繁體中文"}
	instruction := CorrectInstruction(pair)

	if !strings.Contains(instruction, "keeping it in English") {
		t.Errorf("instruction should name the language being corrected, got: %s", instruction)
	}
	if strings.Contains(instruction, "繁體中文") {
		t.Errorf("correction instruction should not mention the destination, got: %s", instruction)
	}
}

func TestInstructionFor(t *testing.T) {
	pair := LanguagePair{Source: "English", Destination: "日本語"}

	if got := InstructionFor(ModeTranslate, pair); got != TranslateInstruction(pair) {
		t.Error("InstructionFor(ModeTranslate) should build the translate instruction")
	}
	if got := InstructionFor(ModeCorrect, pair); got != CorrectInstruction(pair) {
		t.Error("InstructionFor(ModeCorrect) should build the correct instruction")
	}
}
