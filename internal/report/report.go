package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/msto63/argspect/internal/analyzer"
	"github.com/msto63/argspect/internal/argument"
)

// Render returns the complete styled report for an analysis result. Sections
// without any findings are suppressed; the counts themselves stay available
// on the result for callers that need them.
func Render(result *analyzer.Result) string {
	var b strings.Builder

	b.WriteString(RenderTokens(result.Arguments))
	b.WriteString("\n")

	b.WriteString(renderParsed(result.Parsed))
	b.WriteString(renderStatistics(result.Statistics))
	b.WriteString(renderValidation(result.Validation))
	b.WriteString(renderPatterns(result.Patterns))
	b.WriteString(renderDataTypes(result.DataTypes))

	return b.String()
}

// RenderTokens lists every token with its classification, in supplied order
func RenderTokens(tokens []string) string {
	var b strings.Builder

	b.WriteString(SectionStyle.Render("Kommandozeilen-Argumente:"))
	b.WriteString("\n")

	if len(tokens) == 0 {
		b.WriteString(MutedStyle.Render("  (keine Argumente)"))
		b.WriteString("\n")
		return b.String()
	}

	for i, token := range tokens {
		kind := argument.Classify(token)
		fmt.Fprintf(&b, "  [%d] %s %s\n", i+1, RenderKindBadge(kind), ValueStyle.Render(token))
	}

	return b.String()
}

func renderParsed(parsed *argument.ParseResult) string {
	var b strings.Builder

	if len(parsed.Flags) > 0 {
		b.WriteString(SectionStyle.Render("Geparste Flags:"))
		b.WriteString("\n")
		for _, name := range sortedKeys(parsed.Flags) {
			fmt.Fprintf(&b, "  %s : %s\n", LabelStyle.Render(padRight(name, 15)), ValueStyle.Render("aktiviert"))
		}
		b.WriteString("\n")
	}

	if len(parsed.Options) > 0 {
		b.WriteString(SectionStyle.Render("Geparste Optionen:"))
		b.WriteString("\n")
		for _, name := range sortedKeys(parsed.Options) {
			fmt.Fprintf(&b, "  %s : %s\n", LabelStyle.Render(padRight(name, 15)), ValueStyle.Render(parsed.Options[name]))
		}
		b.WriteString("\n")
	}

	if len(parsed.Positional) > 0 {
		b.WriteString(SectionStyle.Render("Positionale Argumente:"))
		b.WriteString("\n")
		for i, arg := range parsed.Positional {
			fmt.Fprintf(&b, "  [%d] %s\n", i+1, ValueStyle.Render(arg))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func renderStatistics(stats analyzer.Statistics) string {
	var b strings.Builder

	b.WriteString(SectionStyle.Render("Statistiken:"))
	b.WriteString("\n")
	b.WriteString(statLine("Argumente gesamt", fmt.Sprintf("%d", stats.Total)))
	b.WriteString(statLine("Flags", fmt.Sprintf("%d", stats.FlagCount)))
	b.WriteString(statLine("Optionen", fmt.Sprintf("%d", stats.OptionCount)))
	b.WriteString(statLine("Positionale Argumente", fmt.Sprintf("%d", stats.PositionalCount)))
	b.WriteString(statLine("Durchschnittslänge", fmt.Sprintf("%.1f Zeichen", stats.AverageLength)))

	if stats.Total > 0 {
		b.WriteString(statLine("Längstes Argument", fmt.Sprintf("%q (%d Zeichen)", stats.Longest, stats.LongestLength)))
		b.WriteString(statLine("Kürzestes Argument", fmt.Sprintf("%q (%d Zeichen)", stats.Shortest, stats.ShortestLength)))
	}

	b.WriteString("\n")
	return b.String()
}

func renderValidation(v analyzer.Validation) string {
	if v.Emails == 0 && v.URLs == 0 && v.Numbers == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(SectionStyle.Render("Validierung:"))
	b.WriteString("\n")
	if v.Emails > 0 {
		b.WriteString(statLine("Gültige E-Mails", fmt.Sprintf("%d", v.Emails)))
	}
	if v.URLs > 0 {
		b.WriteString(statLine("Gültige URLs", fmt.Sprintf("%d", v.URLs)))
	}
	if v.Numbers > 0 {
		b.WriteString(statLine("Gültige Zahlen", fmt.Sprintf("%d", v.Numbers)))
	}
	b.WriteString("\n")
	return b.String()
}

func renderPatterns(p analyzer.Patterns) string {
	var b strings.Builder

	if p.Uppercase > 0 || p.Lowercase > 0 || p.MixedCase > 0 {
		b.WriteString(SectionStyle.Render("Schreibweisen:"))
		b.WriteString("\n")
		if p.Uppercase > 0 {
			b.WriteString(statLine("GROSSBUCHSTABEN", fmt.Sprintf("%d", p.Uppercase)))
		}
		if p.Lowercase > 0 {
			b.WriteString(statLine("kleinbuchstaben", fmt.Sprintf("%d", p.Lowercase)))
		}
		if p.MixedCase > 0 {
			b.WriteString(statLine("GemischteSchreibung", fmt.Sprintf("%d", p.MixedCase)))
		}
		b.WriteString("\n")
	}

	if len(p.Extensions) > 0 {
		b.WriteString(SectionStyle.Render("Dateiendungen:"))
		b.WriteString("\n")
		for _, ext := range sortedKeys(p.Extensions) {
			b.WriteString(statLine(ext, fmt.Sprintf("%d", p.Extensions[ext])))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func renderDataTypes(dt analyzer.DataTypes) string {
	if dt.Integers == 0 && dt.Decimals == 0 && dt.Booleans == 0 && dt.Strings == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(SectionStyle.Render("Datentypen:"))
	b.WriteString("\n")
	if dt.Integers > 0 {
		b.WriteString(statLine("Ganzzahlen", fmt.Sprintf("%d", dt.Integers)))
	}
	if dt.Decimals > 0 {
		b.WriteString(statLine("Dezimalzahlen", fmt.Sprintf("%d", dt.Decimals)))
	}
	if dt.Booleans > 0 {
		b.WriteString(statLine("Booleans", fmt.Sprintf("%d", dt.Booleans)))
	}
	if dt.Strings > 0 {
		b.WriteString(statLine("Zeichenketten", fmt.Sprintf("%d", dt.Strings)))
	}
	b.WriteString("\n")
	return b.String()
}

func statLine(label, value string) string {
	return fmt.Sprintf("  %s : %s\n", LabelStyle.Render(padRight(label, 21)), ValueStyle.Render(value))
}

// sortedKeys returns the map keys in sorted order for stable output
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
