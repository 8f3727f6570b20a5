package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/argspect/internal/analyzer"
	"github.com/msto63/argspect/internal/report"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [token...]",
	Short: "Vollständige Analyse einer Argumentliste",
	Long: `Klassifiziert alle Tokens und erstellt den Analysebericht.

Die zu untersuchenden Tokens werden unverändert übernommen; nur am
Anfang stehende argspect-Flags (-v, --verbose) werden konsumiert.
Nach einem »--« werden alle folgenden Tokens wörtlich analysiert,
auch --help und --version. Tokens können auch über stdin übergeben
werden (durch Leerraum getrennt).

Beispiele:
  argspect analyze hello world
  argspect analyze -- --verbose -n --output=file.txt data.csv
  echo "user@example.com https://github.com 42 3.14" | argspect analyze`,
	DisableFlagParsing: true,
	RunE:               runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	tokens, escaped := splitControl(args)

	if !escaped {
		if containsHelp(tokens) {
			return cmd.Help()
		}
		if containsVersion(tokens) {
			printVersionBanner(cmd.OutOrStdout())
			return nil
		}
	}

	tokens, err := getInputTokens(tokens)
	if err != nil {
		return err
	}

	if len(tokens) == 0 {
		printNoArguments(cmd.OutOrStdout())
		return nil
	}

	svc, err := analyzer.NewService(analyzer.Config{Logger: newLogger()})
	if err != nil {
		return err
	}

	result, err := svc.Analyze(context.Background(), tokens)
	if err != nil {
		return fmt.Errorf("Analyse fehlgeschlagen: %v", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, report.TitleStyle.Render("argspect - Argument-Analyse"))
	fmt.Fprintln(out, strings.Repeat("=", 50))
	fmt.Fprint(out, report.Render(result))
	return nil
}

// splitControl consumes argspect's own leading control flags and reports
// whether a "--" separator ended control handling explicitly. Everything
// after the first real token belongs to the list under inspection.
func splitControl(args []string) ([]string, bool) {
	for len(args) > 0 {
		switch args[0] {
		case "-v", "--verbose":
			verbose = true
			args = args[1:]
			continue
		case "--":
			return args[1:], true
		}
		break
	}
	return args, false
}

// containsHelp checks if a help control token appears anywhere in the list
func containsHelp(args []string) bool {
	return slices.Contains(args, "--help") || slices.Contains(args, "-h")
}

// containsVersion checks if the version control token appears anywhere
func containsVersion(args []string) bool {
	return slices.Contains(args, "--version")
}

// getInputTokens returns the given tokens, falling back to whitespace-split
// input from stdin when none were passed and stdin is piped.
func getInputTokens(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	stat, _ := os.Stdin.Stat()
	if (stat.Mode() & os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return strings.Fields(string(data)), nil
	}

	return nil, nil
}

func printNoArguments(w io.Writer) {
	fmt.Fprintln(w, "Keine Kommandozeilen-Argumente übergeben.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Beispiele:")
	fmt.Fprintln(w, "  argspect analyze hello world")
	fmt.Fprintln(w, "  argspect analyze -- --verbose -n --output=file.txt data.csv")
	fmt.Fprintln(w, "  echo \"user@example.com 42\" | argspect analyze")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "argspect analyze --help zeigt die vollständige Hilfe.")
}
