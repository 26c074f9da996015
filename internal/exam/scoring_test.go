package exam

import (
	"reflect"
	"testing"

	"github.com/om3692/SAT/internal/catalog"
)

func scoringFixture() ([]string, func(id string) (catalog.Question, bool)) {
	questions := map[string]catalog.Question{
		"m1":  {ID: "m1", Section: catalog.SectionMath, CorrectAnswer: "4"},
		"m2":  {ID: "m2", Section: catalog.SectionMath, CorrectAnswer: "9"},
		"m3":  {ID: "m3", Section: catalog.SectionMath, CorrectAnswer: "12"},
		"m4":  {ID: "m4", Section: catalog.SectionMath, CorrectAnswer: "7"},
		"rw1": {ID: "rw1", Section: catalog.SectionReadingWriting, CorrectAnswer: "their"},
		"rw2": {ID: "rw2", Section: catalog.SectionReadingWriting, CorrectAnswer: "however"},
		"rw3": {ID: "rw3", Section: catalog.SectionReadingWriting, CorrectAnswer: "its"},
		"rw4": {ID: "rw4", Section: catalog.SectionReadingWriting, CorrectAnswer: "whom"},
		"rw5": {ID: "rw5", Section: catalog.SectionReadingWriting, CorrectAnswer: "affect"},
	}
	ordered := []string{"m1", "m2", "m3", "m4", "rw1", "rw2", "rw3", "rw4", "rw5"}
	lookup := func(id string) (catalog.Question, bool) {
		q, ok := questions[id]
		return q, ok
	}
	return ordered, lookup
}

func TestCalculateScore(t *testing.T) {
	ordered, lookup := scoringFixture()

	tests := []struct {
		name         string
		answers      map[string]string
		wantTotal    int
		wantMath     int
		wantRW       int
		wantCorrect  int
		wantAnswered int
		wantWeakness []string
	}{
		{
			name: "perfect score",
			answers: map[string]string{
				"m1": "4", "m2": "9", "m3": "12", "m4": "7",
				"rw1": "their", "rw2": "however", "rw3": "its", "rw4": "whom", "rw5": "affect",
			},
			wantTotal:    1600,
			wantMath:     800,
			wantRW:       800,
			wantCorrect:  9,
			wantAnswered: 9,
			wantWeakness: []string{"Good overall performance!"},
		},
		{
			name: "all wrong floors both sections",
			answers: map[string]string{
				"m1": "x", "m2": "x", "m3": "x", "m4": "x",
				"rw1": "x", "rw2": "x", "rw3": "x", "rw4": "x", "rw5": "x",
			},
			wantTotal:    400,
			wantMath:     200,
			wantRW:       200,
			wantCorrect:  0,
			wantAnswered: 9,
			wantWeakness: []string{"Math Concepts", "Reading & Writing Skills"},
		},
		{
			name:         "no answers at all",
			answers:      map[string]string{},
			wantTotal:    400,
			wantMath:     200,
			wantRW:       200,
			wantCorrect:  0,
			wantAnswered: 0,
			wantWeakness: []string{"Math Concepts", "Reading & Writing Skills"},
		},
		{
			name: "weak math only",
			answers: map[string]string{
				"m1": "4",
				"rw1": "their", "rw2": "however", "rw3": "its", "rw4": "whom", "rw5": "affect",
			},
			wantTotal:    1150,
			wantMath:     350,
			wantRW:       800,
			wantCorrect:  6,
			wantAnswered: 6,
			wantWeakness: []string{"Math Concepts"},
		},
		{
			name: "weak reading writing only",
			answers: map[string]string{
				"m1": "4", "m2": "9", "m3": "12", "m4": "7",
				"rw1": "their", "rw2": "however",
			},
			wantTotal:    1240,
			wantMath:     800,
			wantRW:       440,
			wantCorrect:  6,
			wantAnswered: 6,
			wantWeakness: []string{"Reading & Writing Skills"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateScore(ordered, tc.answers, lookup)
			if got.TotalScore != tc.wantTotal {
				t.Fatalf("total score = %d, want %d", got.TotalScore, tc.wantTotal)
			}
			if got.MathScore != tc.wantMath {
				t.Fatalf("math score = %d, want %d", got.MathScore, tc.wantMath)
			}
			if got.RWScore != tc.wantRW {
				t.Fatalf("rw score = %d, want %d", got.RWScore, tc.wantRW)
			}
			if got.CorrectCount != tc.wantCorrect {
				t.Fatalf("correct count = %d, want %d", got.CorrectCount, tc.wantCorrect)
			}
			if got.TotalAnswered != tc.wantAnswered {
				t.Fatalf("total answered = %d, want %d", got.TotalAnswered, tc.wantAnswered)
			}
			if got.TotalTestQuestions != len(ordered) {
				t.Fatalf("total questions = %d, want %d", got.TotalTestQuestions, len(ordered))
			}
			if !reflect.DeepEqual(got.Weaknesses, tc.wantWeakness) {
				t.Fatalf("weaknesses = %v, want %v", got.Weaknesses, tc.wantWeakness)
			}
			if len(got.Recommendations) != len(got.Weaknesses) {
				t.Fatalf("recommendations and weaknesses out of step: %v vs %v", got.Recommendations, got.Weaknesses)
			}
		})
	}
}

func TestCalculateScoreCountsUnknownAnswerIDs(t *testing.T) {
	ordered, lookup := scoringFixture()
	answers := map[string]string{
		"m1":    "4",
		"ghost": "whatever",
	}

	got := CalculateScore(ordered, answers, lookup)
	if got.CorrectCount != 1 {
		t.Fatalf("correct count = %d, want 1", got.CorrectCount)
	}
	if got.TotalAnswered != 2 {
		t.Fatalf("total answered = %d, want 2 (unknown ids still count)", got.TotalAnswered)
	}
}

func TestCalculateScoreEmptyTest(t *testing.T) {
	_, lookup := scoringFixture()

	got := CalculateScore(nil, map[string]string{}, lookup)
	if got.TotalScore != 400 {
		t.Fatalf("total score = %d, want composite floor 400", got.TotalScore)
	}
	if got.MathScore != 200 || got.RWScore != 200 {
		t.Fatalf("section scores = %d/%d, want floor 200/200", got.MathScore, got.RWScore)
	}
	wantW := []string{"No questions were processed for scoring."}
	if !reflect.DeepEqual(got.Weaknesses, wantW) {
		t.Fatalf("weaknesses = %v, want %v", got.Weaknesses, wantW)
	}
}

func TestCalculateScoreDeterministic(t *testing.T) {
	ordered, lookup := scoringFixture()
	answers := map[string]string{"m1": "4", "m2": "x", "rw1": "their", "rw5": "wrong"}

	first := CalculateScore(ordered, answers, lookup)
	second := CalculateScore(ordered, answers, lookup)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("scoring not deterministic: %+v vs %+v", first, second)
	}
}

func TestSectionScoreBounds(t *testing.T) {
	tests := []struct {
		name    string
		correct int
		total   int
		want    int
	}{
		{name: "zero total floors", correct: 0, total: 0, want: 200},
		{name: "none correct", correct: 0, total: 10, want: 200},
		{name: "all correct", correct: 10, total: 10, want: 800},
		{name: "half correct", correct: 5, total: 10, want: 500},
		{name: "one third lands exact", correct: 1, total: 3, want: 400},
		{name: "rounding truncates", correct: 5, total: 7, want: 628},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := sectionScore(tc.correct, tc.total); got != tc.want {
				t.Fatalf("sectionScore(%d, %d) = %d, want %d", tc.correct, tc.total, got, tc.want)
			}
		})
	}
}

func TestDiagnoseThreshold(t *testing.T) {
	// 3 of 5 is exactly 0.6 and must not be flagged; 2 of 5 must be.
	weak, _ := diagnose(10, 2, 5, 3, 5)
	want := []string{"Math Concepts"}
	if !reflect.DeepEqual(weak, want) {
		t.Fatalf("weaknesses = %v, want %v", weak, want)
	}
}
