// Package normalize implements the normalize command.
package normalize

import (
	"github.com/moktak128bit/gagyebu/cmd/root"
	"github.com/moktak128bit/gagyebu/internal/logging"
	"github.com/moktak128bit/gagyebu/internal/normalizer"
	"github.com/moktak128bit/gagyebu/internal/store"
	"github.com/spf13/cobra"
)

var dryRun bool

// Cmd is the normalize command. It repairs corrupted category and
// sub-category strings across the whole snapshot, the same pass the web
// client runs when restoring an old backup.
var Cmd = &cobra.Command{
	Use:   "normalize",
	Short: "Repair corrupted category names across the ledger snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger := store.NewFileStore(root.Cfg.LedgerPath(), root.Log)

		history, err := ledger.Load()
		if err != nil {
			return err
		}

		changed := 0
		entries := history
		for i := range entries {
			category := normalizer.Category(entries[i].Category)
			subCategory := normalizer.SubCategory(entries[i].SubCategory)
			if category != entries[i].Category || subCategory != entries[i].SubCategory {
				changed++
				root.Log.Debug("Repaired category strings",
					logging.Field{Key: logging.FieldEntryID, Value: entries[i].ID},
					logging.Field{Key: logging.FieldCategory, Value: category},
				)
			}
			entries[i].Category = category
			entries[i].SubCategory = subCategory
		}

		unknown := 0
		for i := range entries {
			if !normalizer.IsCanonicalCategory(entries[i].Category) {
				unknown++
			}
		}

		root.Log.Info("Normalization pass complete",
			logging.Field{Key: logging.FieldCount, Value: changed},
			logging.Field{Key: "unrecognized", Value: unknown},
		)

		if dryRun || changed == 0 {
			return nil
		}
		return ledger.Replace(entries)
	},
}

func init() {
	Cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report repairs without writing the snapshot")
}
