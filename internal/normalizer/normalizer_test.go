package normalizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategory_RepairsKnownCorruptions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"fuel transport with dropped glyphs", "유류통", "유류교통비"},
		{"fuel transport with noise", "유류!통*", "유류교통비"},
		{"dating expense with dropped glyph", "데이비", "데이트비"},
		{"truncated dating expense", "데이트", "데이트비"},
		{"generic transport", "대중교통비", "유류교통비"},
		{"lone food glyph", "식", "식비"},
		{"lone income glyph", "수", "수입"},
		{"truncated housing", "주거", "주거비"},
		{"salary keyword", "월급날", "수입"},
		{"canonical passes through", "식비", "식비"},
		{"unknown passes through", "없는항목", "없는항목"},
		{"latin passes through", "groceries", "groceries"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Category(tt.input))
		})
	}
}

func TestSubCategory_RepairsKnownCorruptions(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"two-glyph dating corruption", "이비", "데이트비"},
		{"dating with dropped glyph", "데이비", "데이트비"},
		{"rent with suffix", "월세비", "월세"},
		{"lone pharmacy glyph", "약", "약국"},
		{"hospital keyword", "종합병원", "병원"},
		{"canonical passes through", "월세", "월세"},
		{"unknown passes through", "기타", "기타"},
		{"empty string", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SubCategory(tt.input))
		})
	}
}

func TestNormalize_CleanedVariantMatches(t *testing.T) {
	// The raw string has punctuation around the glyphs; only the cleaned
	// variant is a dictionary key.
	assert.Equal(t, "유류교통비", Category(" 유류교통 ?"))
	assert.Equal(t, "데이트비", SubCategory("[이비]"))
}

// Normalizing twice must equal normalizing once, for every input. The
// dictionaries carry identity entries for all canonical values, so any
// output of the pipeline short-circuits on its second pass.
func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"유류통", "데이비", "이비", "식", "수", "교통", "월급", "커피값",
		"없는항목", "groceries", "", " ", "123", "카페/디저트", "식비비",
	}
	inputs = append(inputs, Canonicals(false)...)
	inputs = append(inputs, Canonicals(true)...)

	for _, s := range inputs {
		assert.Equal(t, Category(s), Category(Category(s)), "category input %q", s)
		assert.Equal(t, SubCategory(s), SubCategory(SubCategory(s)), "sub-category input %q", s)
	}
}

func TestNormalize_Total(t *testing.T) {
	// No input may panic; unmatched input comes back unchanged.
	inputs := []string{"", "   ", "\x00\x01", "no hangul at all", "🙂🙂", "a/b/c"}
	for _, s := range inputs {
		assert.NotPanics(t, func() {
			_ = Category(s)
			_ = SubCategory(s)
		})
	}
	assert.Equal(t, "no hangul at all", Category("no hangul at all"))
	assert.Equal(t, "", Category(""))
}

func TestGlyphFallback_ExactLengthOnly(t *testing.T) {
	// The lone-glyph heuristic must not fire inside longer strings.
	assert.Equal(t, "한식당", Category("한식당"))
	assert.Equal(t, "수수료", Category("수수료"))
}

func TestCanonicals_NonEmpty(t *testing.T) {
	assert.NotEmpty(t, Canonicals(false))
	assert.NotEmpty(t, Canonicals(true))
	assert.Contains(t, Canonicals(false), "유류교통비")
	assert.Contains(t, Canonicals(true), "데이트비")
}
