package suggest

import "unicode"

// CapitalPositions marks which runes of s are upper case.
func CapitalPositions(s string) []bool {
	runes := []rune(s)
	positions := make([]bool, len(runes))
	found := false
	for i, r := range runes {
		if unicode.IsUpper(r) {
			positions[i] = true
			found = true
		}
	}
	if !found {
		return nil
	}
	return positions
}

// ApplyCapitalization upper-cases the runes of word at the marked positions,
// so "Pro" completes to "Program" rather than "program".
func ApplyCapitalization(word string, capitalPositions []bool) string {
	if len(capitalPositions) == 0 {
		return word
	}

	wordRunes := []rune(word)
	for i := 0; i < len(wordRunes) && i < len(capitalPositions); i++ {
		if capitalPositions[i] {
			wordRunes[i] = unicode.ToUpper(wordRunes[i])
		}
	}
	return string(wordRunes)
}
