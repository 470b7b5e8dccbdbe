package analysis

// Scanner steps through the word tokens of a text blob, left to right.
// A token is a maximal run of ASCII word characters (letters, digits,
// underscore); everything else is skipped. Multi-byte runes are never
// word characters, so scanning byte-wise is safe: no UTF-8 continuation
// byte falls in the word class.
//
// A Scanner holds no shared state; independent Scanners over independent
// inputs may run concurrently.
type Scanner struct {
	text string
	pos  int
}

// NewScanner creates a Scanner positioned at the start of text.
func NewScanner(text string) *Scanner {
	return &Scanner{text: text}
}

// Next returns the next token and true, or "" and false when the input
// is exhausted. Tokens are never empty.
func (s *Scanner) Next() (string, bool) {
	// Skip non-word bytes.
	for s.pos < len(s.text) && !isWordChar(s.text[s.pos]) {
		s.pos++
	}
	if s.pos >= len(s.text) {
		return "", false
	}

	start := s.pos
	for s.pos < len(s.text) && isWordChar(s.text[s.pos]) {
		s.pos++
	}
	return s.text[start:s.pos], true
}

// Reset rewinds the Scanner to the start of its input.
func (s *Scanner) Reset() {
	s.pos = 0
}

// Tokens returns all tokens of text at once.
func Tokens(text string) []string {
	var tokens []string
	sc := NewScanner(text)
	for {
		tok, ok := sc.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func isWordChar(c byte) bool {
	return 'a' <= c && c <= 'z' ||
		'A' <= c && c <= 'Z' ||
		'0' <= c && c <= '9' ||
		c == '_'
}
