package analyzer

import (
	"strings"

	"github.com/msto63/argspect/internal/argument"
)

// Statistics aggregates counts and length measures over the full argument
// list, flags and options included.
type Statistics struct {
	Total           int
	FlagCount       int
	OptionCount     int
	PositionalCount int
	AverageLength   float64
	Longest         string
	LongestLength   int
	Shortest        string
	ShortestLength  int
}

// computeStatistics recounts the categories from the raw prefix rules rather
// than the parsed maps, so repeated flag or option names count individually.
// Longest and shortest consider the full list; the first occurrence wins on
// equal lengths.
func computeStatistics(args []string) Statistics {
	stats := Statistics{Total: len(args)}
	if len(args) == 0 {
		return stats
	}

	totalLength := 0
	longest := ""
	shortest := args[0]

	for _, arg := range args {
		totalLength += len(arg)

		if len(arg) > len(longest) {
			longest = arg
		}
		if len(arg) < len(shortest) {
			shortest = arg
		}

		switch {
		case strings.HasPrefix(arg, argument.LongPrefix) && strings.Contains(arg, argument.OptionSeparator):
			stats.OptionCount++
		case strings.HasPrefix(arg, argument.ShortPrefix):
			stats.FlagCount++
		default:
			stats.PositionalCount++
		}
	}

	stats.AverageLength = float64(totalLength) / float64(len(args))
	stats.Longest = longest
	stats.LongestLength = len(longest)
	stats.Shortest = shortest
	stats.ShortestLength = len(shortest)

	return stats
}
