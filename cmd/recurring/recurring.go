// Package recurring implements the recurring command.
package recurring

import (
	"fmt"

	"github.com/moktak128bit/gagyebu/cmd/root"
	"github.com/moktak128bit/gagyebu/internal/dateutils"
	"github.com/moktak128bit/gagyebu/internal/logging"
	generator "github.com/moktak128bit/gagyebu/internal/recurring"
	"github.com/moktak128bit/gagyebu/internal/store"
	"github.com/spf13/cobra"
)

var dryRun bool

// Cmd is the recurring command. The web client runs the equivalent once per
// load; here it runs once per invocation, and the one-shot-per-month gate
// makes repeated runs converge to a no-op.
var Cmd = &cobra.Command{
	Use:   "recurring",
	Short: "Carry last month's fixed expenses into the current month",
	RunE: func(cmd *cobra.Command, args []string) error {
		ledger := store.NewFileStore(root.Cfg.LedgerPath(), root.Log)

		history, err := ledger.Load()
		if err != nil {
			return err
		}

		generated := generator.New(root.Log).Generate(history, dateutils.NowKST())
		if len(generated) == 0 {
			root.Log.Info("No recurring expenses to generate")
			return nil
		}

		for _, entry := range generated {
			fmt.Printf("%s  %-12s %-10s %s\n",
				entry.Date, entry.Category, entry.SubCategory, entry.FormatAmount())
		}
		if dryRun {
			return nil
		}

		// Single atomic snapshot replace; see the generator's dedup contract.
		if err := ledger.Replace(append(generated, history...)); err != nil {
			return err
		}
		root.Log.Info("Recurring expenses saved",
			logging.Field{Key: logging.FieldCount, Value: len(generated)})
		return nil
	},
}

func init() {
	Cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print generated entries without saving")
}
