// Package readability estimates the school grade level of a line of text
// using the Coleman-Liau index.
package readability

// Stats holds the letter, word, and sentence counts of a text.
type Stats struct {
	Letters   int
	Words     int
	Sentences int
}

// Count scans text once and returns its letter, word, and sentence counts.
//
// Letters are ASCII A-Z and a-z. A word is a maximal run of bytes other than
// ' ', so repeated, leading, and trailing spaces never add words. Every '.',
// '?', and '!' counts as one sentence.
func Count(text string) Stats {
	var s Stats
	inWord := false
	for i := 0; i < len(text); i++ {
		ch := text[i]
		if isLetter(ch) {
			s.Letters++
		}
		if ch == ' ' {
			inWord = false
		} else if !inWord {
			inWord = true
			s.Words++
		}
		if isTerminator(ch) {
			s.Sentences++
		}
	}
	return s
}

func isLetter(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isTerminator(ch byte) bool {
	return ch == '.' || ch == '?' || ch == '!'
}
