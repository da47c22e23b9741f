// Package report implements the report command.
package report

import (
	"fmt"

	"github.com/moktak128bit/gagyebu/cmd/root"
	"github.com/moktak128bit/gagyebu/internal/dateutils"
	"github.com/moktak128bit/gagyebu/internal/report"
	"github.com/moktak128bit/gagyebu/internal/store"
	"github.com/spf13/cobra"
)

var monthKey string

// Cmd is the report command.
var Cmd = &cobra.Command{
	Use:   "report",
	Short: "Summarize a month of ledger activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		if monthKey == "" {
			monthKey = dateutils.MonthKey(dateutils.NowKST())
		}

		ledger := store.NewFileStore(root.Cfg.LedgerPath(), root.Log)
		history, err := ledger.Load()
		if err != nil {
			return err
		}

		catalog := store.NewCatalog(root.Cfg.CatalogPath(), root.Log)
		categories, err := catalog.LoadCategories()
		if err != nil {
			return err
		}
		known := make([]string, 0, len(categories))
		for _, c := range categories {
			known = append(known, c.Name)
		}

		generator := report.NewGenerator(root.Log)
		summary := generator.Summarize(history, monthKey, known)
		data, err := generator.RenderJSON(summary)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&monthKey, "month", "m", "", "month to summarize (YYYY-MM, default current KST month)")
}
