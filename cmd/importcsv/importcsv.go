// Package importcsv implements the import command.
package importcsv

import (
	"github.com/moktak128bit/gagyebu/cmd/root"
	"github.com/moktak128bit/gagyebu/internal/impexp"
	"github.com/moktak128bit/gagyebu/internal/logging"
	"github.com/moktak128bit/gagyebu/internal/store"
	"github.com/spf13/cobra"
)

var inputFile string

// Cmd is the import command.
var Cmd = &cobra.Command{
	Use:   "import",
	Short: "Import ledger entries from a CSV file",
	Long: `Import reads entries from a CSV file, repairs corrupted category and
sub-category names, validates each row, and prepends the result to the
ledger snapshot.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger := store.NewFileStore(root.Cfg.LedgerPath(), root.Log)

		importer := impexp.NewImporter(root.Log)
		imported, skipped, err := importer.ImportFile(inputFile)
		if err != nil {
			return err
		}

		history, err := ledger.Load()
		if err != nil {
			return err
		}
		// Newest entries first, matching how the web client stores backups.
		snapshot := append(imported, history...)
		if err := ledger.Replace(snapshot); err != nil {
			return err
		}

		root.Log.Info("Import complete",
			logging.Field{Key: logging.FieldCount, Value: len(imported)},
			logging.Field{Key: "skipped", Value: skipped},
		)
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "input CSV file")
	_ = Cmd.MarkFlagRequired("input")
}
