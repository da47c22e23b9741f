// Package recommender ranks historical ledger entries by similarity to a
// draft entry and suggests the category and accounts most likely to apply.
//
// Recommend is pure: the same draft and history always produce the same
// ranked list. The wall clock feeding the recency weight is injected so that
// ranking stays reproducible under test.
package recommender

import (
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/moktak128bit/gagyebu/internal/dateutils"
	"github.com/moktak128bit/gagyebu/internal/logging"
	"github.com/moktak128bit/gagyebu/internal/models"
	"github.com/shopspring/decimal"
)

// Scoring constants. Base similarity is word overlap plus a full-containment
// bonus plus amount proximity; a candidate group is only admitted above the
// threshold, then frequency and recency of the group across the whole
// matching-kind history are added on top.
const (
	overlapWeight      = 0.5
	substringBonus     = 0.3
	amountCloseBonus   = 0.2
	amountNearBonus    = 0.1
	admissionThreshold = 0.3
	maxSuggestions     = 5
	maxFrequencyWeight = 0.2
)

var (
	amountCloseRatio = decimal.RequireFromString("0.1")
	amountNearRatio  = decimal.RequireFromString("0.5")
)

// Suggestion is one ranked recommendation. Absent fields are empty strings.
type Suggestion struct {
	Category      string  `json:"category,omitempty"`
	SubCategory   string  `json:"subCategory,omitempty"`
	FromAccountID string  `json:"fromAccountId,omitempty"`
	ToAccountID   string  `json:"toAccountId,omitempty"`
	Score         float64 `json:"score"`
}

// groupKey aggregates candidates that would fill the draft identically.
type groupKey struct {
	category      string
	subCategory   string
	fromAccountID string
	toAccountID   string
}

// Recommender scores ledger history against draft entries.
type Recommender struct {
	logger logging.Logger
	now    func() time.Time
}

// New creates a Recommender using the real KST clock.
func New(logger logging.Logger) *Recommender {
	return NewWithClock(logger, dateutils.NowKST)
}

// NewWithClock creates a Recommender with an injected clock. Tests pin the
// clock to make recency weights deterministic.
func NewWithClock(logger logging.Logger, now func() time.Time) *Recommender {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Recommender{logger: logger, now: now}
}

// Recommend returns up to five suggestions for a draft entry, ranked by
// descending score. Ties keep the order in which the group was first seen in
// history. A description shorter than two characters carries no signal and
// yields nil.
func (r *Recommender) Recommend(description string, amount decimal.Decimal, kind models.Kind, history []models.Entry) []Suggestion {
	if utf8.RuneCountInString(strings.TrimSpace(description)) < 2 {
		return nil
	}

	// Pass 1: score individual candidates and fold them into groups,
	// keeping the best base score and the first-seen order per group.
	type group struct {
		key  groupKey
		base float64
	}
	var order []groupKey
	groups := make(map[groupKey]*group)

	for _, entry := range history {
		if entry.Kind != kind || utf8.RuneCountInString(entry.Description) < 2 {
			continue
		}
		base := baseScore(description, amount, &entry)
		if base <= admissionThreshold {
			continue
		}
		key := keyOf(&entry)
		if g, ok := groups[key]; ok {
			if base > g.base {
				g.base = base
			}
			continue
		}
		groups[key] = &group{key: key, base: base}
		order = append(order, key)
	}
	if len(order) == 0 {
		return nil
	}

	// Pass 2: frequency and recency weights, computed over the entire
	// matching-kind history rather than only the admitted candidates.
	today := r.now().In(dateutils.KST)
	suggestions := make([]Suggestion, 0, len(order))
	for _, key := range order {
		g := groups[key]
		occurrences := 0
		var mostRecent time.Time
		for _, entry := range history {
			if entry.Kind != kind || keyOf(&entry) != key {
				continue
			}
			occurrences++
			if d, err := dateutils.ParseISO(entry.Date); err == nil && d.After(mostRecent) {
				mostRecent = d
			}
		}
		score := g.base + frequencyWeight(occurrences) + recencyWeight(mostRecent, today)
		suggestions = append(suggestions, Suggestion{
			Category:      key.category,
			SubCategory:   key.subCategory,
			FromAccountID: key.fromAccountID,
			ToAccountID:   key.toAccountID,
			Score:         score,
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Score > suggestions[j].Score
	})
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}

	r.logger.Debug("Ranked category suggestions",
		logging.Field{Key: logging.FieldKind, Value: string(kind)},
		logging.Field{Key: logging.FieldCount, Value: len(suggestions)},
	)
	return suggestions
}

func keyOf(entry *models.Entry) groupKey {
	return groupKey{
		category:      entry.Category,
		subCategory:   entry.SubCategory,
		fromAccountID: entry.FromAccountID,
		toAccountID:   entry.ToAccountID,
	}
}

// baseScore is the similarity of one historical entry to the draft.
func baseScore(description string, amount decimal.Decimal, entry *models.Entry) float64 {
	score := wordOverlap(description, entry.Description) * overlapWeight

	a := strings.ToLower(description)
	b := strings.ToLower(entry.Description)
	if strings.Contains(a, b) || strings.Contains(b, a) {
		score += substringBonus
	}

	score += amountProximity(amount, entry.Amount)
	return score
}

// wordOverlap is |distinct common words| / max(|words a|, |words b|).
// Comparison is case-insensitive; a repeated word cannot push the ratio
// past 1.0 because the intersection is counted over distinct words.
func wordOverlap(a, b string) float64 {
	wordsA := strings.Fields(strings.ToLower(a))
	wordsB := strings.Fields(strings.ToLower(b))
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	setA := make(map[string]struct{}, len(wordsA))
	for _, w := range wordsA {
		setA[w] = struct{}{}
	}
	common := make(map[string]struct{})
	for _, w := range wordsB {
		if _, ok := setA[w]; ok {
			common[w] = struct{}{}
		}
	}

	denom := len(wordsA)
	if len(wordsB) > denom {
		denom = len(wordsB)
	}
	return float64(len(common)) / float64(denom)
}

// amountProximity grants a bonus when the historical amount lands within 10%
// (or 50%) of the draft amount. A non-positive draft amount is defective
// caller data and simply earns no bonus.
func amountProximity(draft, historical decimal.Decimal) float64 {
	if !draft.IsPositive() {
		return 0
	}
	diff := historical.Sub(draft).Abs()
	switch {
	case diff.LessThan(draft.Mul(amountCloseRatio)):
		return amountCloseBonus
	case diff.LessThan(draft.Mul(amountNearRatio)):
		return amountNearBonus
	default:
		return 0
	}
}

func frequencyWeight(occurrences int) float64 {
	w := float64(occurrences) / 10
	if w > maxFrequencyWeight {
		return maxFrequencyWeight
	}
	return w
}

// recencyWeight rewards groups used in the last 30 or 90 days (KST).
func recencyWeight(mostRecent, today time.Time) float64 {
	if mostRecent.IsZero() {
		return 0
	}
	daysSince := dateutils.DaysBetween(mostRecent, today)
	switch {
	case daysSince < 30:
		return 0.1
	case daysSince < 90:
		return 0.05
	default:
		return 0
	}
}
