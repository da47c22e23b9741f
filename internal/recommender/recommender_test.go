package recommender

import (
	"fmt"
	"testing"
	"time"

	"github.com/moktak128bit/gagyebu/internal/dateutils"
	"github.com/moktak128bit/gagyebu/internal/logging"
	"github.com/moktak128bit/gagyebu/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testNow pins the clock so recency weights are stable.
var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, dateutils.KST)

func newTestRecommender() *Recommender {
	return NewWithClock(&logging.MockLogger{}, func() time.Time { return testNow })
}

func expenseEntry(id, date, description, category, subCategory string, amount int64) models.Entry {
	return models.Entry{
		ID:            id,
		Date:          date,
		Kind:          models.KindExpense,
		Category:      category,
		SubCategory:   subCategory,
		Description:   description,
		Amount:        decimal.NewFromInt(amount),
		FromAccountID: "A1",
	}
}

func TestRecommend_ShortDescription(t *testing.T) {
	r := newTestRecommender()
	history := []models.Entry{
		expenseEntry("1", "2024-06-01", "스타벅스", "카페", "음료", 4300),
	}

	assert.Empty(t, r.Recommend("", decimal.NewFromInt(100), models.KindExpense, history))
	assert.Empty(t, r.Recommend("x", decimal.NewFromInt(100), models.KindExpense, history))
	assert.Empty(t, r.Recommend("  a  ", decimal.NewFromInt(100), models.KindExpense, history))
}

func TestRecommend_SubstringAndAmountScenario(t *testing.T) {
	r := newTestRecommender()
	history := []models.Entry{
		expenseEntry("1", "2024-06-01", "스타벅스", "카페", "음료", 4300),
	}

	got := r.Recommend("스타벅스 아메리카노", decimal.NewFromInt(4500), models.KindExpense, history)
	require.Len(t, got, 1)
	assert.Equal(t, "카페", got[0].Category)
	assert.Equal(t, "음료", got[0].SubCategory)
	assert.Equal(t, "A1", got[0].FromAccountID)
	assert.Greater(t, got[0].Score, 0.3)

	// overlap 1/2 * 0.5 + substring 0.3 + amount 0.2 = base 0.75,
	// plus frequency 0.1 and recency 0.1 for the nine-day-old entry.
	assert.InDelta(t, 0.95, got[0].Score, 1e-9)
}

func TestRecommend_ThresholdBoundary(t *testing.T) {
	r := newTestRecommender()

	// Substring containment alone is exactly 0.3: no shared whitespace-split
	// words, amount far outside the 50% bracket. Exactly at the admission
	// threshold means excluded.
	atBoundary := []models.Entry{
		expenseEntry("1", "2023-01-01", "스타벅스", "카페", "", 100000),
	}
	assert.Empty(t, r.Recommend("스타벅스아메리카노", decimal.NewFromInt(4500), models.KindExpense, atBoundary))

	// The same candidate with an amount inside the 50% bracket clears the
	// threshold (base 0.4) and is admitted.
	aboveBoundary := []models.Entry{
		expenseEntry("1", "2023-01-01", "스타벅스", "카페", "", 6000),
	}
	got := r.Recommend("스타벅스아메리카노", decimal.NewFromInt(4500), models.KindExpense, aboveBoundary)
	require.Len(t, got, 1)
	assert.Equal(t, "카페", got[0].Category)

	// Word overlap alone can also clear the threshold just barely: five of
	// the draft's eight words shared, no containment either way, amount far
	// outside the 50% bracket. Base 5/8 * 0.5 = 0.3125.
	overlapOnly := []models.Entry{
		expenseEntry("1", "2023-01-01", "순대 김밥 만두 라면 떡볶이", "식비", "", 100000),
	}
	got = r.Recommend("김밥 라면 만두 떡볶이 순대 어묵 튀김 음료", decimal.NewFromInt(10000), models.KindExpense, overlapOnly)
	require.Len(t, got, 1)
	assert.Equal(t, "식비", got[0].Category)
	// Base 0.3125 + frequency 0.1; the entry is older than 90 days.
	assert.InDelta(t, 0.4125, got[0].Score, 1e-9)
}

func TestRecommend_KindFilter(t *testing.T) {
	r := newTestRecommender()
	history := []models.Entry{
		{
			ID: "1", Date: "2024-06-01", Kind: models.KindIncome,
			Category: "수입", Description: "스타벅스 월급",
			Amount: decimal.NewFromInt(4500), ToAccountID: "A1",
		},
	}

	assert.Empty(t, r.Recommend("스타벅스 커피", decimal.NewFromInt(4500), models.KindExpense, history))
}

func TestRecommend_RankingStability(t *testing.T) {
	r := newTestRecommender()
	// Identical descriptions, amounts, and dates; only the grouping tuple
	// differs, so both groups earn identical final scores.
	history := []models.Entry{
		expenseEntry("1", "2024-06-01", "김밥천국 점심", "식비", "점심", 8000),
		expenseEntry("2", "2024-06-01", "김밥천국 점심", "외식비", "점심", 8000),
	}

	got := r.Recommend("김밥천국 점심", decimal.NewFromInt(8000), models.KindExpense, history)
	require.Len(t, got, 2)
	assert.Equal(t, got[0].Score, got[1].Score)
	assert.Equal(t, "식비", got[0].Category)
	assert.Equal(t, "외식비", got[1].Category)
}

func TestRecommend_TopFiveCap(t *testing.T) {
	r := newTestRecommender()
	var history []models.Entry
	for i := 0; i < 10; i++ {
		history = append(history, expenseEntry(
			fmt.Sprintf("%d", i), "2024-06-01", "넷플릭스 구독",
			fmt.Sprintf("카테고리%d", i), "", 17000))
	}

	got := r.Recommend("넷플릭스 구독", decimal.NewFromInt(17000), models.KindExpense, history)
	require.Len(t, got, 5)
	// Equal scores throughout, so the first five discovered groups survive.
	for i := 0; i < 5; i++ {
		assert.Equal(t, fmt.Sprintf("카테고리%d", i), got[i].Category)
	}
}

func TestRecommend_GroupKeepsBestBase(t *testing.T) {
	r := newTestRecommender()
	// Two candidates in the same group; the weaker one must not drag the
	// group's base score down, and frequency counts both.
	history := []models.Entry{
		expenseEntry("1", "2024-06-01", "스타벅스 아메리카노", "카페", "음료", 4500),
		expenseEntry("2", "2024-06-05", "스타벅스", "카페", "음료", 4500),
	}

	got := r.Recommend("스타벅스 아메리카노", decimal.NewFromInt(4500), models.KindExpense, history)
	require.Len(t, got, 1)
	// Best base: overlap 1.0*0.5 + substring 0.3 + amount 0.2 = 1.0,
	// frequency 2/10, recency 0.1.
	assert.InDelta(t, 1.3, got[0].Score, 1e-9)
}

func TestRecommend_FrequencyWeightCapped(t *testing.T) {
	r := newTestRecommender()
	var history []models.Entry
	for i := 0; i < 30; i++ {
		history = append(history, expenseEntry(
			fmt.Sprintf("%d", i), "2024-06-01", "스타벅스", "카페", "음료", 4500))
	}

	got := r.Recommend("스타벅스", decimal.NewFromInt(4500), models.KindExpense, history)
	require.Len(t, got, 1)
	// Base 1.0 + capped frequency 0.2 + recency 0.1.
	assert.InDelta(t, 1.3, got[0].Score, 1e-9)
}

func TestRecommend_RecencyBrackets(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		expected float64
	}{
		{"within 30 days", "2024-06-01", 0.1},
		{"within 90 days", "2024-04-01", 0.05},
		{"older than 90 days", "2023-06-01", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRecommender()
			history := []models.Entry{
				expenseEntry("1", tt.date, "스타벅스", "카페", "음료", 4500),
			}
			got := r.Recommend("스타벅스", decimal.NewFromInt(4500), models.KindExpense, history)
			require.Len(t, got, 1)
			// Base 1.0 + frequency 0.1 + the bracket's recency weight.
			assert.InDelta(t, 1.1+tt.expected, got[0].Score, 1e-9)
		})
	}
}

func TestRecommend_MalformedHistoryTolerated(t *testing.T) {
	r := newTestRecommender()
	history := []models.Entry{
		// Unparseable date: scores, but earns no recency weight.
		expenseEntry("1", "not-a-date", "스타벅스", "카페", "음료", 4500),
		// Empty description: never a candidate.
		expenseEntry("2", "2024-06-01", "", "식비", "", 8000),
	}

	got := r.Recommend("스타벅스", decimal.NewFromInt(4500), models.KindExpense, history)
	require.Len(t, got, 1)
	assert.InDelta(t, 1.1, got[0].Score, 1e-9)
}

func TestRecommend_NonPositiveDraftAmount(t *testing.T) {
	r := newTestRecommender()
	history := []models.Entry{
		expenseEntry("1", "2024-06-01", "스타벅스", "카페", "음료", 4500),
	}

	// A defective draft amount earns no proximity bonus but does not fault.
	got := r.Recommend("스타벅스", decimal.Zero, models.KindExpense, history)
	require.Len(t, got, 1)
	// Base 0.5+0.3, frequency 0.1, recency 0.1.
	assert.InDelta(t, 1.0, got[0].Score, 1e-9)
}

func TestRecommend_Deterministic(t *testing.T) {
	r := newTestRecommender()
	history := []models.Entry{
		expenseEntry("1", "2024-06-01", "스타벅스 아메리카노", "카페", "음료", 4500),
		expenseEntry("2", "2024-06-02", "김밥천국 점심", "식비", "점심", 8000),
		expenseEntry("3", "2024-06-03", "스타벅스 라떼", "카페", "음료", 5500),
	}

	first := r.Recommend("스타벅스 커피", decimal.NewFromInt(5000), models.KindExpense, history)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, r.Recommend("스타벅스 커피", decimal.NewFromInt(5000), models.KindExpense, history))
	}
}
