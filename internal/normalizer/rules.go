package normalizer

import "regexp"

// The canonicalization tables below are the deployed configuration of the
// normalizer. They are baked in by contract: the canonical vocabulary changes
// with a release, not at runtime.
//
// Every canonical value appears as an identity entry in its exact map. Do not
// remove those entries: the idempotence test relies on canonical strings
// short-circuiting before any pattern rule can see them.

var categoryTable = &table{
	exact: map[string]string{
		// Identity entries for the canonical vocabulary.
		"식비":    "식비",
		"카페":    "카페",
		"유류교통비": "유류교통비",
		"데이트비":  "데이트비",
		"주거비":   "주거비",
		"통신비":   "통신비",
		"문화생활비": "문화생활비",
		"의료비":   "의료비",
		"경조사비":  "경조사비",
		"쇼핑":    "쇼핑",
		"구독비":   "구독비",
		"저축":    "저축",
		"이체":    "이체",
		"수입":    "수입",

		// Known truncations seen in restored backups.
		"식대":   "식비",
		"유류교통": "유류교통비",
		"교통비":  "유류교통비",
		"데이트":  "데이트비",
		"주거":   "주거비",
		"통신":   "통신비",
		"문화생활": "문화생활비",
		"의료":   "의료비",
		"경조사":  "경조사비",
		"구독":   "구독비",
	},
	rules: []rule{
		// The fuel/transport rule must precede the generic 교통 rule:
		// "유류통" drops the middle glyphs yet still starts with 유류.
		{regexp.MustCompile(`^유류.*통`), "유류교통비"},
		{regexp.MustCompile(`교통`), "유류교통비"},
		{regexp.MustCompile(`데이.*비`), "데이트비"},
		{regexp.MustCompile(`이트비`), "데이트비"},
		{regexp.MustCompile(`^카페|커피`), "카페"},
		{regexp.MustCompile(`경조`), "경조사비"},
		{regexp.MustCompile(`월급|급여`), "수입"},
	},
	glyphs: map[string]string{
		// Lone surviving glyphs of the two highest-volume categories.
		"식": "식비",
		"수": "수입",
	},
}

var subCategoryTable = &table{
	exact: map[string]string{
		"데이트비": "데이트비",
		"월세":   "월세",
		"관리비":  "관리비",
		"음료":   "음료",
		"간식":   "간식",
		"점심":   "점심",
		"저녁":   "저녁",
		"주유":   "주유",
		"대중교통": "대중교통",
		"통화료":  "통화료",
		"영화":   "영화",
		"병원":   "병원",
		"약국":   "약국",
		"선물":   "선물",
		"월급":   "월급",

		"데이트": "데이트비",
		"관리":  "관리비",
		"대중교": "대중교통",
	},
	rules: []rule{
		{regexp.MustCompile(`데이.*비`), "데이트비"},
		{regexp.MustCompile(`이트비`), "데이트비"},
		{regexp.MustCompile(`^월세`), "월세"},
		{regexp.MustCompile(`주유`), "주유"},
		{regexp.MustCompile(`병원|진료`), "병원"},
	},
	glyphs: map[string]string{
		// 데이트비 with the leading and trailing glyphs corrupted away.
		"이비": "데이트비",
		"약":  "약국",
	},
}
