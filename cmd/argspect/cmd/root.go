package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/argspect/pkg/core/logging"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "argspect",
	Short: "argspect - Analyse von Kommandozeilen-Argumenten",
	Long: `argspect zeigt, wie eine Argumentliste geparst würde.

Jedes Token wird als Flag, Option oder positionales Argument
klassifiziert und anschließend ausgewertet: Längenstatistiken,
Format-Validierung (E-Mail, URL, Zahl), Schreibweisen,
Dateiendungen und Datentypen.

Kommandos:
  analyze   - Vollständige Analyse einer Argumentliste
  classify  - Nur Klassifikation, Token für Token
  inspect   - Interaktiver Token-Inspektor`,
	Version: Version,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Ausführliche Log-Ausgabe")
}

// newLogger builds the CLI logger. Warnings only by default so that reports
// on stdout stay undisturbed; --verbose enables the pipeline logs.
func newLogger() *logging.Logger {
	level := logging.LevelWarn
	if verbose {
		level = logging.LevelDebug
	}
	return logging.NewWithConfig(logging.Config{Name: "argspect", Level: level})
}
