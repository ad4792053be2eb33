package exporter

import "strings"

// Scoring constants, shared by every dialect so scores are comparable
// across targets.
const (
	// BaseScore is the starting quality of every export.
	BaseScore = 100

	// SkipPenalty is charged once per skipped section.
	SkipPenalty = 10

	// LossyPenalty is charged once when any structure was lost.
	LossyPenalty = 10
)

// Finalize assembles a Result from rendered content and accumulated
// warnings. Each warning mentioning a skipped section costs SkipPenalty;
// if any warning marks lost structure ("not supported" or "skipped") the
// result is flagged lossy and charged LossyPenalty once. The score is
// clamped to [0, 100].
func Finalize(content string, warnings []string) Result {
	score := BaseScore
	lossy := false

	for _, w := range warnings {
		if strings.Contains(w, "skipped") {
			score -= SkipPenalty
		}
		if strings.Contains(w, "not supported") || strings.Contains(w, "skipped") {
			lossy = true
		}
	}
	if lossy {
		score -= LossyPenalty
	}
	if score < 0 {
		score = 0
	}

	return Result{
		Content:         content,
		Warnings:        warnings,
		LossyConversion: lossy,
		QualityScore:    score,
	}
}
