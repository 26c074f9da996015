package exam

import (
	"github.com/om3692/SAT/internal/catalog"
)

const (
	sectionScoreFloor   = 200
	sectionScoreCeiling = 800
	compositeFloor      = 400
	compositeCeiling    = 1600

	weaknessRatio = 0.6
)

// ScoreReport is the immutable outcome of finalizing a test attempt.
type ScoreReport struct {
	TotalScore         int      `json:"total_score"`
	MathScore          int      `json:"math_score"`
	RWScore            int      `json:"rw_score"`
	CorrectCount       int      `json:"correct_count"`
	TotalAnswered      int      `json:"total_answered"`
	TotalTestQuestions int      `json:"total_test_questions"`
	Weaknesses         []string `json:"weaknesses"`
	Recommendations    []string `json:"recommendations"`

	// Elapsed-time fields are filled in by Finalize, never by the scoring
	// engine itself; they are informational only.
	TimeTakenSecs      int64  `json:"time_taken_secs"`
	TimeTakenFormatted string `json:"time_taken_formatted"`

	// Answers is the raw answer map the report was computed from, carried
	// along for score history persistence. Not part of the API payload.
	Answers map[string]string `json:"-"`
}

// CalculateScore converts raw answers into section and composite scores.
// It is a pure function of its inputs: no I/O, no clock, deterministic.
//
// Section totals come from the full ordered test, not from the answer map.
// Answers for ids the lookup does not know are skipped for correctness but
// still counted in TotalAnswered, matching the recorded behavior of score
// history rows.
func CalculateScore(orderedIDs []string, answers map[string]string, lookup func(id string) (catalog.Question, bool)) ScoreReport {
	var mathTotal, rwTotal int
	for _, id := range orderedIDs {
		q, ok := lookup(id)
		if !ok {
			continue
		}
		if q.Section == catalog.SectionMath {
			mathTotal++
		} else {
			rwTotal++
		}
	}

	var correctCount, mathCorrect, rwCorrect int
	for id, given := range answers {
		q, ok := lookup(id)
		if !ok {
			continue
		}
		if given != q.CorrectAnswer {
			continue
		}
		correctCount++
		if q.Section == catalog.SectionMath {
			mathCorrect++
		} else {
			rwCorrect++
		}
	}

	mathScore := sectionScore(mathCorrect, mathTotal)
	rwScore := sectionScore(rwCorrect, rwTotal)

	// The composite clamp is almost always a no-op given the per-section
	// clamps, but it is kept as a second stage to match recorded scores.
	total := clamp(mathScore+rwScore, compositeFloor, compositeCeiling)

	weaknesses, recommendations := diagnose(len(orderedIDs), mathCorrect, mathTotal, rwCorrect, rwTotal)

	return ScoreReport{
		TotalScore:         total,
		MathScore:          mathScore,
		RWScore:            rwScore,
		CorrectCount:       correctCount,
		TotalAnswered:      len(answers),
		TotalTestQuestions: len(orderedIDs),
		Weaknesses:         weaknesses,
		Recommendations:    recommendations,
	}
}

func sectionScore(correct, total int) int {
	if total <= 0 {
		return sectionScoreFloor
	}
	score := sectionScoreFloor + int(float64(correct)/float64(total)*600)
	return clamp(score, sectionScoreFloor, sectionScoreCeiling)
}

func diagnose(totalQuestions, mathCorrect, mathTotal, rwCorrect, rwTotal int) (weaknesses, recommendations []string) {
	if totalQuestions == 0 {
		// Unreachable while the catalog startup check holds.
		return []string{"No questions were processed for scoring."},
			[]string{"Please check the test configuration or question data."}
	}

	if mathTotal > 0 && float64(mathCorrect)/float64(mathTotal) < weaknessRatio {
		weaknesses = append(weaknesses, "Math Concepts")
		recommendations = append(recommendations, "Review foundational math topics and practice regularly.")
	}
	if rwTotal > 0 && float64(rwCorrect)/float64(rwTotal) < weaknessRatio {
		weaknesses = append(weaknesses, "Reading & Writing Skills")
		recommendations = append(recommendations, "Focus on grammar rules, vocabulary, and passage analysis techniques.")
	}
	if len(weaknesses) == 0 {
		weaknesses = append(weaknesses, "Good overall performance!")
		recommendations = append(recommendations, "Continue practicing with varied question types and explore advanced topics.")
	}
	return weaknesses, recommendations
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
