// Package recurring carries fixed monthly expenses forward from the previous
// calendar month into the current one.
//
// Generation is one-shot per month: as soon as any fixed-expense entry exists
// for the current month, whether generated or entered by hand, the generator
// refuses to run again until the month rolls over. Candidates that would
// duplicate an existing entry's semantic identity are dropped, so re-running
// the generator always converges to a no-op.
package recurring

import (
	"time"

	"github.com/google/uuid"
	"github.com/moktak128bit/gagyebu/internal/dateutils"
	"github.com/moktak128bit/gagyebu/internal/logging"
	"github.com/moktak128bit/gagyebu/internal/models"
)

// Generator proposes current-month clones of the previous month's fixed
// expenses. It never mutates history; the caller merges the returned entries
// into the store in one atomic snapshot replace.
type Generator struct {
	logger logging.Logger
	newID  func() string
}

// New creates a Generator that assigns UUID ids to generated entries.
func New(logger logging.Logger) *Generator {
	return NewWithIDs(logger, uuid.NewString)
}

// NewWithIDs creates a Generator with an injected id source for tests.
func NewWithIDs(logger logging.Logger, newID func() string) *Generator {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Generator{logger: logger, newID: newID}
}

// Generate returns the fixed-expense entries missing from the current month,
// cloned from the previous month. The result is empty when the trigger
// condition does not hold. todayKST decides which months are "current" and
// "previous"; callers normally pass dateutils.NowKST().
func (g *Generator) Generate(history []models.Entry, todayKST time.Time) []models.Entry {
	today := todayKST.In(dateutils.KST)
	currentMonth := dateutils.MonthKey(today)
	previousMonth := dateutils.PrevMonthKey(today)

	var previousFixed []models.Entry
	currentFixedCount := 0
	for _, entry := range history {
		if !entry.IsFixedExpense {
			continue
		}
		switch {
		case dateutils.InMonth(entry.Date, currentMonth):
			currentFixedCount++
		case dateutils.InMonth(entry.Date, previousMonth):
			previousFixed = append(previousFixed, entry)
		}
	}

	// One-shot gate: only an entirely empty current month triggers carry-over.
	if len(previousFixed) == 0 || currentFixedCount > 0 {
		return nil
	}

	existing := make(map[models.IdentityKey]struct{}, len(history))
	for i := range history {
		existing[history[i].Identity()] = struct{}{}
	}

	var generated []models.Entry
	for _, source := range previousFixed {
		sourceDate, err := dateutils.ParseISO(source.Date)
		if err != nil {
			// Local recovery: one bad date must not abort the batch.
			g.logger.Warn("Skipping fixed expense with unparseable date",
				logging.Field{Key: logging.FieldEntryID, Value: source.ID},
				logging.Field{Key: logging.FieldReason, Value: err.Error()},
			)
			continue
		}

		clone := source
		clone.ID = g.newID()
		// Same day of month, clamped to the length of the target month.
		clone.Date = dateutils.ToISODate(dateutils.ClampDay(today.Year(), today.Month(), sourceDate.Day()))
		clone.IsFixedExpense = true

		if _, dup := existing[clone.Identity()]; dup {
			g.logger.Debug("Fixed expense already covered this month",
				logging.Field{Key: logging.FieldCategory, Value: clone.Category},
				logging.Field{Key: "date", Value: clone.Date},
			)
			continue
		}
		existing[clone.Identity()] = struct{}{}
		generated = append(generated, clone)
	}

	if len(generated) > 0 {
		g.logger.Info("Generated recurring fixed expenses",
			logging.Field{Key: logging.FieldMonth, Value: currentMonth},
			logging.Field{Key: logging.FieldCount, Value: len(generated)},
		)
	}
	return generated
}
