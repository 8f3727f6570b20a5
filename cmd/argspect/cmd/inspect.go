package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/argspect/internal/tui"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [token...]",
	Short: "Interaktiver Token-Inspektor",
	Long: `Öffnet einen interaktiven Inspektor für die übergebenen Tokens.

Jedes Token lässt sich einzeln ansehen: Klassifikation, Länge,
Format-Prüfungen, Datentyp und Dateiendung.

Beispiele:
  argspect inspect -- --output=file.txt user@example.com 42`,
	DisableFlagParsing: true,
	RunE:               runInspect,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
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
		return fmt.Errorf("keine Tokens zum Inspizieren")
	}

	return tui.Run(tui.Config{Tokens: tokens, Version: Version})
}
