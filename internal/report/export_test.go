package report

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/om3692/SAT/internal/catalog"

	"github.com/xuri/excelize/v2"
)

func exportCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Question{
		{
			ID:            "m1",
			Section:       catalog.SectionMath,
			Module:        1,
			Text:          "What is 2 + 2?",
			Options:       []string{"3", "4", "5"},
			CorrectAnswer: "4",
			Topic:         "Arithmetic",
			Difficulty:    "Easy",
		},
		{
			ID:            "rw1",
			Section:       catalog.SectionReadingWriting,
			Module:        1,
			Passage:       "The committee met on Tuesday.",
			Text:          "Which choice best maintains the tone?",
			Options:       []string{"met", "convened"},
			CorrectAnswer: "convened",
			Topic:         "Tone",
			Difficulty:    "Medium",
		},
	})
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}
	return c
}

func exportRecord() *ScoreRecord {
	return &ScoreRecord{
		ID:            "3d9a2b7c-1111-4222-8333-444455556666",
		UserID:        7,
		TotalScore:    1000,
		MathScore:     800,
		RWScore:       200,
		CorrectCount:  1,
		TotalAnswered: 2,
		TimeTakenSecs: 615,
		CreatedAt:     time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
		Answers:       map[string]string{"m1": "4", "rw1": "met"},
	}
}

func TestBuildCSV(t *testing.T) {
	data, err := BuildCSV(exportCatalog(t), exportRecord())
	if err != nil {
		t.Fatalf("build csv: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "Question Number" || rows[0][12] != "TestDate" {
		t.Fatalf("unexpected header: %v", rows[0])
	}

	mathRow := rows[1]
	if mathRow[1] != "Math" || mathRow[3] != "4" || mathRow[5] != "Correct" {
		t.Fatalf("math row = %v", mathRow)
	}
	if mathRow[7] != "1" {
		t.Fatalf("module column = %q", mathRow[7])
	}
	if mathRow[10] != `["3","4","5"]` {
		t.Fatalf("options column = %q", mathRow[10])
	}
	if mathRow[12] != "2025-03-01 10:30:00" {
		t.Fatalf("test date = %q", mathRow[12])
	}

	rwRow := rows[2]
	if rwRow[1] != "Reading & Writing" || rwRow[5] != "Incorrect" {
		t.Fatalf("rw row = %v", rwRow)
	}
	if rwRow[9] != "[Passage Based] Which choice best maintains the tone?" {
		t.Fatalf("passage question text = %q", rwRow[9])
	}
}

func TestBuildCSVUnansweredQuestion(t *testing.T) {
	rec := exportRecord()
	rec.Answers = map[string]string{"m1": "4"}

	data, err := BuildCSV(exportCatalog(t), rec)
	if err != nil {
		t.Fatalf("build csv: %v", err)
	}
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	rwRow := rows[2]
	if rwRow[3] != "Not Answered" || rwRow[5] != "Not Answered" {
		t.Fatalf("unanswered row = %v", rwRow)
	}
}

func TestBuildCSVNilAnswers(t *testing.T) {
	rec := exportRecord()
	rec.Answers = nil

	data, err := BuildCSV(exportCatalog(t), rec)
	if err != nil {
		t.Fatalf("build csv: %v", err)
	}
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	for _, row := range rows[1:] {
		if row[5] != "Not Answered" {
			t.Fatalf("row with nil answers = %v", row)
		}
	}
}

func TestBuildExcel(t *testing.T) {
	data, err := BuildExcel(exportCatalog(t), exportRecord())
	if err != nil {
		t.Fatalf("build excel: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	header, err := f.GetCellValue(sheet, "A1")
	if err != nil || header != "Question Number" {
		t.Fatalf("A1 = %q err=%v", header, err)
	}
	outcome, err := f.GetCellValue(sheet, "F2")
	if err != nil || outcome != "Correct" {
		t.Fatalf("F2 = %q err=%v", outcome, err)
	}

	total, err := f.GetCellValue("Summary", "B2")
	if err != nil || total != "1000" {
		t.Fatalf("summary total = %q err=%v", total, err)
	}
}
