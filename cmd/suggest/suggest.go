// Package suggest implements the suggest command.
package suggest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/moktak128bit/gagyebu/cmd/root"
	"github.com/moktak128bit/gagyebu/internal/models"
	"github.com/moktak128bit/gagyebu/internal/recommender"
	"github.com/moktak128bit/gagyebu/internal/store"
	"github.com/spf13/cobra"
)

var (
	amountStr string
	kindStr   string
)

// Cmd is the suggest command. It runs the same ranking the web client uses
// while the user types a description.
var Cmd = &cobra.Command{
	Use:   "suggest [description]",
	Short: "Suggest categories and accounts for a draft entry",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		description := strings.Join(args, " ")
		amount := models.ParseAmount(amountStr)
		kind := models.Kind(kindStr)
		switch kind {
		case models.KindIncome, models.KindExpense, models.KindTransfer:
		default:
			return fmt.Errorf("unknown kind %q (income, expense, transfer)", kindStr)
		}

		ledger := store.NewFileStore(root.Cfg.LedgerPath(), root.Log)
		history, err := ledger.Load()
		if err != nil {
			return err
		}

		suggestions := recommender.New(root.Log).Recommend(description, amount, kind, history)
		if len(suggestions) == 0 {
			fmt.Println("No suggestions.")
			return nil
		}

		catalog := store.NewCatalog(root.Cfg.CatalogPath(), root.Log)
		type row struct {
			recommender.Suggestion
			FromAccount string `json:"fromAccount,omitempty"`
			ToAccount   string `json:"toAccount,omitempty"`
		}
		rows := make([]row, 0, len(suggestions))
		for _, s := range suggestions {
			rows = append(rows, row{
				Suggestion:  s,
				FromAccount: catalog.AccountName(s.FromAccountID),
				ToAccount:   catalog.AccountName(s.ToAccountID),
			})
		}

		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to render suggestions: %w", err)
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	Cmd.Flags().StringVarP(&amountStr, "amount", "a", "0", "draft entry amount")
	Cmd.Flags().StringVarP(&kindStr, "kind", "k", "expense", "entry kind (income, expense, transfer)")
}
