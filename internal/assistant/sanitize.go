package assistant

import "strings"

// Citation tokens the hosted model sometimes leaks into its output despite
// the instructions. Stripped before the answer reaches the UI.
var citationTokens = []string{"filecite", "turn0file", "turn1file", "turn2file"}

// Sanitize removes internal citation artifacts from a model answer: known
// marker tokens and the private-use glyphs the file_search tool emits.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	for _, tok := range citationTokens {
		text = strings.ReplaceAll(text, tok, "")
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if r >= 0xE000 && r <= 0xF8FF { // Unicode private use area
			continue
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
