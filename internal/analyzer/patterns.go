package analyzer

import (
	"strings"

	"github.com/msto63/argspect/internal/argument"
)

// Patterns holds letter-case classification and file extension tallies.
type Patterns struct {
	Uppercase  int
	Lowercase  int
	MixedCase  int
	Extensions map[string]int
}

// findPatterns classifies the case of every token containing at least one
// ASCII letter (tokens without letters fall into no bucket) and tallies file
// extensions from the last dot onward. Tokens starting with the short prefix
// never contribute an extension.
func findPatterns(args []string) Patterns {
	p := Patterns{Extensions: make(map[string]int)}

	for _, arg := range args {
		switch {
		case hasLetter(arg) && arg == strings.ToUpper(arg):
			p.Uppercase++
		case hasLetter(arg) && arg == strings.ToLower(arg):
			p.Lowercase++
		case hasLetter(arg):
			p.MixedCase++
		}

		if strings.Contains(arg, ".") && !strings.HasPrefix(arg, argument.ShortPrefix) {
			ext := arg[strings.LastIndex(arg, "."):]
			p.Extensions[ext]++
		}
	}

	return p
}

// hasLetter checks if s contains an ASCII letter
func hasLetter(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' {
			return true
		}
	}
	return false
}
