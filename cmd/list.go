package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/RyanBlaney/signal-plotter/pkg/signal"
	"github.com/RyanBlaney/signal-plotter/pkg/transform"
)

var titleCaser = cases.Title(language.English)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List supported signals, operations and output formats",
	Long: `List the signal kinds, operations and sample data formats accepted by
the plot command. Names are case sensitive.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		writeCatalog(cmd.OutOrStdout())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

// writeCatalog prints every accepted name grouped by category
func writeCatalog(w io.Writer) {
	printSection(w, titleCaser.String("signal kinds"))
	for i, kind := range signal.Kinds() {
		printKeyValue(w, fmt.Sprintf("  %d", i+1), kind.String())
	}

	printSection(w, titleCaser.String("operations"))
	for i, op := range transform.Operations() {
		printKeyValue(w, fmt.Sprintf("  %d", i+1), op.String())
	}

	printSection(w, titleCaser.String("data formats"))
	for i, format := range []string{"json", "yaml", "csv", "table"} {
		printKeyValue(w, fmt.Sprintf("  %d", i+1), format)
	}

	fmt.Fprintln(w)
}
