// Package report summarizes a month of ledger activity.
package report

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/moktak128bit/gagyebu/internal/dateutils"
	"github.com/moktak128bit/gagyebu/internal/logging"
	"github.com/moktak128bit/gagyebu/internal/models"
	"github.com/shopspring/decimal"
)

// CategoryTotal is the spend or income total of one category in the month.
type CategoryTotal struct {
	Category string `json:"category"`
	Kind     string `json:"kind"`
	Count    int    `json:"count"`
	Total    string `json:"total"`
}

// MonthlySummary aggregates one calendar month of entries.
type MonthlySummary struct {
	Month        string          `json:"month"`
	TotalIncome  string          `json:"totalIncome"`
	TotalExpense string          `json:"totalExpense"`
	Net          string          `json:"net"`
	FixedExpense string          `json:"fixedExpense"`
	Categories   []CategoryTotal `json:"categories"`
	Unknown      []string        `json:"unknownCategories,omitempty"`
}

// Generator builds monthly summaries.
type Generator struct {
	logger logging.Logger
}

// NewGenerator creates a report Generator.
func NewGenerator(logger logging.Logger) *Generator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Generator{logger: logger}
}

// Summarize aggregates the entries of the given YYYY-MM month. known lists
// the catalog's category names; categories used by entries but missing from
// the catalog are reported, not rejected. Transfers move money between the
// user's own accounts and are excluded from income/expense totals.
func (g *Generator) Summarize(history []models.Entry, monthKey string, known []string) *MonthlySummary {
	knownSet := make(map[string]struct{}, len(known))
	for _, name := range known {
		knownSet[name] = struct{}{}
	}

	type bucket struct {
		kind  models.Kind
		count int
		total decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	var order []string
	income, expense, fixed := decimal.Zero, decimal.Zero, decimal.Zero
	unknownSet := make(map[string]struct{})

	for _, entry := range history {
		if !dateutils.InMonth(entry.Date, monthKey) {
			continue
		}
		switch entry.Kind {
		case models.KindIncome:
			income = income.Add(entry.Amount)
		case models.KindExpense:
			expense = expense.Add(entry.Amount)
			if entry.IsFixedExpense {
				fixed = fixed.Add(entry.Amount)
			}
		}
		if entry.Kind == models.KindTransfer {
			continue
		}

		b, ok := buckets[entry.Category]
		if !ok {
			b = &bucket{kind: entry.Kind}
			buckets[entry.Category] = b
			order = append(order, entry.Category)
		}
		b.count++
		b.total = b.total.Add(entry.Amount)

		if _, ok := knownSet[entry.Category]; !ok && len(knownSet) > 0 {
			unknownSet[entry.Category] = struct{}{}
		}
	}

	summary := &MonthlySummary{
		Month:        monthKey,
		TotalIncome:  income.StringFixed(0),
		TotalExpense: expense.StringFixed(0),
		Net:          income.Sub(expense).StringFixed(0),
		FixedExpense: fixed.StringFixed(0),
	}
	for _, category := range order {
		b := buckets[category]
		summary.Categories = append(summary.Categories, CategoryTotal{
			Category: category,
			Kind:     string(b.kind),
			Count:    b.count,
			Total:    b.total.StringFixed(0),
		})
	}
	// Largest totals first; discovery order breaks ties.
	sort.SliceStable(summary.Categories, func(i, j int) bool {
		return mustDecimal(summary.Categories[i].Total).GreaterThan(mustDecimal(summary.Categories[j].Total))
	})
	for name := range unknownSet {
		summary.Unknown = append(summary.Unknown, name)
	}
	sort.Strings(summary.Unknown)

	g.logger.Debug("Built monthly summary",
		logging.Field{Key: logging.FieldMonth, Value: monthKey},
		logging.Field{Key: logging.FieldCount, Value: len(summary.Categories)},
	)
	return summary
}

// RenderJSON renders the summary as indented JSON.
func (g *Generator) RenderJSON(summary *MonthlySummary) ([]byte, error) {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}

func mustDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
