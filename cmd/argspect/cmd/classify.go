package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/argspect/internal/report"
)

var classifyCmd = &cobra.Command{
	Use:   "classify [token...]",
	Short: "Klassifiziert Tokens ohne vollständige Analyse",
	Long: `Zeigt für jedes Token nur die Klassifikation an:
Long Option, Long Flag, Short Flag oder Positional.

Beispiele:
  argspect classify -- --output=results.txt --verbose -n data.csv
  echo "data.csv -v" | argspect classify`,
	DisableFlagParsing: true,
	RunE:               runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
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
		return fmt.Errorf("keine Tokens zum Klassifizieren")
	}

	fmt.Fprint(cmd.OutOrStdout(), report.RenderTokens(tokens))
	return nil
}
