package analyzer

import (
	"math"
	"webaudit/pkg/domain"
)

// Category weights for the overall score. The values are fixed product
// decisions, not configuration; they sum to exactly 1.0.
const (
	weightPerformance   = 0.30
	weightAccessibility = 0.25
	weightSEO           = 0.25
	weightBestPractices = 0.15
	weightPWA           = 0.05
)

// overallScore combines the five category scores into one weighted score,
// rounded to the nearest integer (ties away from zero).
func overallScore(r reports) int {
	weighted := weightPerformance*float64(r.performance.Score) +
		weightAccessibility*float64(r.accessibility.Score) +
		weightSEO*float64(r.seo.Score) +
		weightBestPractices*float64(r.bestPractices.Score) +
		weightPWA*float64(r.pwa.Score)

	return int(math.Round(weighted))
}

// categoryScores collects the per-category scores keyed by category name.
func categoryScores(r reports) map[domain.Category]int {
	return map[domain.Category]int{
		domain.CategoryPerformance:   r.performance.Score,
		domain.CategoryAccessibility: r.accessibility.Score,
		domain.CategorySEO:           r.seo.Score,
		domain.CategoryBestPractices: r.bestPractices.Score,
		domain.CategoryPWA:           r.pwa.Score,
	}
}
