// Package export implements the export command.
package export

import (
	"github.com/moktak128bit/gagyebu/cmd/root"
	"github.com/moktak128bit/gagyebu/internal/impexp"
	"github.com/moktak128bit/gagyebu/internal/store"
	"github.com/spf13/cobra"
)

var outputFile string

// Cmd is the export command.
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger snapshot to a CSV file",
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger := store.NewFileStore(root.Cfg.LedgerPath(), root.Log)

		history, err := ledger.Load()
		if err != nil {
			return err
		}
		return impexp.ExportFile(history, outputFile, root.Log)
	},
}

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "output CSV file")
	_ = Cmd.MarkFlagRequired("output")
}
