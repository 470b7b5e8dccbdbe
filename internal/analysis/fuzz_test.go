package analysis

import (
	"strings"
	"testing"
)

func FuzzScanner(f *testing.F) {
	f.Add("Hello World")
	f.Add("")
	f.Add("  spaces  everywhere  ")
	f.Add("café résumé naïve")
	f.Add("hello-world foo_bar")
	f.Add("123 456 789")
	f.Add("\x00\xff\xfe")

	f.Fuzz(func(t *testing.T, input string) {
		// Should not panic.
		tokens := Tokens(input)

		for _, tok := range tokens {
			if tok == "" {
				t.Error("empty token produced")
			}
			for i := 0; i < len(tok); i++ {
				if !isWordChar(tok[i]) {
					t.Errorf("token %q contains non-word byte %#x", tok, tok[i])
				}
			}
			if !strings.Contains(input, tok) {
				t.Errorf("token %q not a substring of input", tok)
			}
		}

		// Restartable: a fresh scan yields the same tokens.
		again := Tokens(input)
		if !stringSliceEqual(tokens, again) {
			t.Errorf("second scan differs: %v vs %v", tokens, again)
		}
	})
}
