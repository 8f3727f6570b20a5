package argument

import (
	"strings"
)

// Lexical conventions for token classification. These are process-wide
// constants, not runtime configuration.
const (
	ShortPrefix     = "-"
	LongPrefix      = "--"
	OptionSeparator = "="
)

// Kind represents the classification of a single token
type Kind int

const (
	KindLongOption Kind = iota // --name=value
	KindLongFlag               // --name
	KindShortFlag              // -n
	KindPositional             // anything else
)

// String returns the display label of the kind
func (k Kind) String() string {
	switch k {
	case KindLongOption:
		return "Long Option"
	case KindLongFlag:
		return "Long Flag"
	case KindShortFlag:
		return "Short Flag"
	case KindPositional:
		return "Positional"
	default:
		return "Unknown"
	}
}

// ParseResult holds the parsed view of one argument list. Flags and Options
// use last-write-wins semantics on duplicate names; Positional keeps the
// supplied order and may contain duplicates.
type ParseResult struct {
	Flags      map[string]bool
	Options    map[string]string
	Positional []string
}

// Parse partitions args into flags, options, and positional arguments.
// Every token classifies successfully. A token that is exactly a prefix
// marker ("-" or "--") yields an empty-string name rather than an error.
// Each call builds fresh storage; nothing survives between invocations.
func Parse(args []string) *ParseResult {
	result := &ParseResult{
		Flags:      make(map[string]bool),
		Options:    make(map[string]string),
		Positional: []string{},
	}

	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, LongPrefix):
			if strings.Contains(arg, OptionSeparator) {
				// Long option with value (--name=value); only the first
				// separator splits, the value keeps any further ones.
				name, value, _ := strings.Cut(arg[len(LongPrefix):], OptionSeparator)
				result.Options[name] = value
			} else {
				result.Flags[arg[len(LongPrefix):]] = true
			}
		case strings.HasPrefix(arg, ShortPrefix):
			result.Flags[arg[len(ShortPrefix):]] = true
		default:
			result.Positional = append(result.Positional, arg)
		}
	}

	return result
}

// Classify reports the kind of a single token using the same prefix rules
// as Parse. It is usable on its own, without running a full analysis.
func Classify(token string) Kind {
	if strings.HasPrefix(token, LongPrefix) {
		if strings.Contains(token, OptionSeparator) {
			return KindLongOption
		}
		return KindLongFlag
	}
	if strings.HasPrefix(token, ShortPrefix) {
		return KindShortFlag
	}
	return KindPositional
}
