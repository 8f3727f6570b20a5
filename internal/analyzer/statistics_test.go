package analyzer

import (
	"testing"
)

func TestComputeStatistics_Counts(t *testing.T) {
	args := []string{"--verbose", "-n", "--output=file.txt", "data.csv", "hello"}
	stats := computeStatistics(args)

	if stats.Total != 5 {
		t.Errorf("Total = %d, want 5", stats.Total)
	}
	if stats.FlagCount != 2 {
		t.Errorf("FlagCount = %d, want 2", stats.FlagCount)
	}
	if stats.OptionCount != 1 {
		t.Errorf("OptionCount = %d, want 1", stats.OptionCount)
	}
	if stats.PositionalCount != 2 {
		t.Errorf("PositionalCount = %d, want 2", stats.PositionalCount)
	}
}

func TestComputeStatistics_CategorySum(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"mixed", []string{"--a=1", "-b", "c", "--d", "", "-", "--"}},
		{"flags only", []string{"-x", "-y", "--z"}},
		{"empty strings", []string{"", "", ""}},
		{"empty list", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := computeStatistics(tt.args)
			sum := stats.FlagCount + stats.OptionCount + stats.PositionalCount
			if sum != stats.Total {
				t.Errorf("flag+option+positional = %d, want total %d", sum, stats.Total)
			}
		})
	}
}

func TestComputeStatistics_AverageLength(t *testing.T) {
	stats := computeStatistics([]string{"ab", "abcd"})

	if stats.AverageLength != 3.0 {
		t.Errorf("AverageLength = %v, want 3.0", stats.AverageLength)
	}
	if stats.Longest != "abcd" || stats.LongestLength != 4 {
		t.Errorf("Longest = %q (%d), want \"abcd\" (4)", stats.Longest, stats.LongestLength)
	}
	if stats.Shortest != "ab" || stats.ShortestLength != 2 {
		t.Errorf("Shortest = %q (%d), want \"ab\" (2)", stats.Shortest, stats.ShortestLength)
	}
}

func TestComputeStatistics_Empty(t *testing.T) {
	stats := computeStatistics(nil)

	if stats.Total != 0 {
		t.Errorf("Total = %d, want 0", stats.Total)
	}
	if stats.AverageLength != 0.0 {
		t.Errorf("AverageLength = %v, want 0.0", stats.AverageLength)
	}
	if stats.Longest != "" || stats.Shortest != "" {
		t.Errorf("Longest/Shortest = %q/%q, want empty", stats.Longest, stats.Shortest)
	}
}

func TestComputeStatistics_SingleElement(t *testing.T) {
	stats := computeStatistics([]string{"only"})

	if stats.Longest != "only" || stats.Shortest != "only" {
		t.Errorf("Longest/Shortest = %q/%q, want both \"only\"", stats.Longest, stats.Shortest)
	}
}

func TestComputeStatistics_TieFirstWins(t *testing.T) {
	stats := computeStatistics([]string{"aa", "bb", "c", "d"})

	if stats.Longest != "aa" {
		t.Errorf("Longest = %q, want first of equal length \"aa\"", stats.Longest)
	}
	if stats.Shortest != "c" {
		t.Errorf("Shortest = %q, want first of equal length \"c\"", stats.Shortest)
	}
}

func TestComputeStatistics_DuplicateOptionsCountIndividually(t *testing.T) {
	stats := computeStatistics([]string{"--a=1", "--a=2"})

	if stats.OptionCount != 2 {
		t.Errorf("OptionCount = %d, want 2 (raw recount, not parsed map size)", stats.OptionCount)
	}
}

func TestComputeStatistics_LongestConsidersFlags(t *testing.T) {
	// Length measures span the full list, flags and options included.
	stats := computeStatistics([]string{"x", "--very-long-flag-name"})

	if stats.Longest != "--very-long-flag-name" {
		t.Errorf("Longest = %q, want the flag token", stats.Longest)
	}
}
