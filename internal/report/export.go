package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/om3692/SAT/internal/catalog"

	"github.com/xuri/excelize/v2"
)

var exportHeaders = []string{
	"Question Number", "Section", "Skill Type", "Your Answer", "Correct Answer", "Outcome",
	"QuestionID", "Module", "Difficulty", "QuestionText", "AllOptions", "ScoreID", "TestDate",
}

const notAnswered = "Not Answered"

// exportRows builds one row per catalog question for a stored record. Rows
// are keyed off the catalog's current order; a question the catalog no
// longer knows still produces a row so the export always has one line per
// question id the record could reference.
func exportRows(c *catalog.Catalog, rec *ScoreRecord) [][]string {
	testDate := "N/A"
	if !rec.CreatedAt.IsZero() {
		testDate = rec.CreatedAt.Format("2006-01-02 15:04:05")
	}

	ids := c.OrderedIDs()
	rows := make([][]string, 0, len(ids))
	for i, id := range ids {
		seq := fmt.Sprintf("%d", i+1)
		q, ok := c.Get(id)
		if !ok {
			rows = append(rows, []string{
				seq, "Unknown Section", "N/A", "N/A", "N/A", "Question Detail Missing",
				id, "N/A", "N/A", fmt.Sprintf("Details not found for question %s", id), "[]",
				rec.ID, testDate,
			})
			continue
		}

		userAnswer := notAnswered
		if v, ok := rec.Answers[id]; ok {
			userAnswer = v
		}
		outcome := notAnswered
		if userAnswer != notAnswered {
			if userAnswer == q.CorrectAnswer {
				outcome = "Correct"
			} else {
				outcome = "Incorrect"
			}
		}

		text := q.Text
		if q.Passage != "" {
			text = "[Passage Based] " + text
		}
		optionsJSON, err := json.Marshal(q.Options)
		if err != nil {
			optionsJSON = []byte("[]")
		}

		rows = append(rows, []string{
			seq, q.Section.Label(), q.Topic, userAnswer, q.CorrectAnswer, outcome,
			q.ID, strconv.Itoa(q.Module), q.Difficulty, text, string(optionsJSON),
			rec.ID, testDate,
		})
	}
	return rows
}

// BuildCSV renders a record as a per-question CSV report.
func BuildCSV(c *catalog.Catalog, rec *ScoreRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeaders); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, row := range exportRows(c, rec) {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// BuildExcel renders a record as an XLSX workbook with the same columns as
// the CSV report plus a summary block on a second sheet.
func BuildExcel(c *catalog.Catalog, rec *ScoreRecord) ([]byte, error) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
	for rowIdx, row := range exportRows(c, rec) {
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			_ = f.SetCellValue(sheet, cell, v)
		}
	}
	_ = f.SetColWidth(sheet, "A", "M", 22)

	if _, err := f.NewSheet("Summary"); err == nil {
		entries := [][2]interface{}{
			{"Score ID", rec.ID},
			{"Total Score", rec.TotalScore},
			{"Math Score", rec.MathScore},
			{"Reading & Writing Score", rec.RWScore},
			{"Correct Answers", rec.CorrectCount},
			{"Questions Answered", rec.TotalAnswered},
			{"Time Taken (seconds)", rec.TimeTakenSecs},
		}
		for i, e := range entries {
			labelCell, _ := excelize.CoordinatesToCellName(1, i+1)
			valueCell, _ := excelize.CoordinatesToCellName(2, i+1)
			_ = f.SetCellValue("Summary", labelCell, e[0])
			_ = f.SetCellValue("Summary", valueCell, e[1])
		}
		_ = f.SetColWidth("Summary", "A", "B", 26)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// ExportCSV renders a record against the service's catalog.
func (s *Service) ExportCSV(rec *ScoreRecord) ([]byte, error) {
	return BuildCSV(s.catalog, rec)
}

// ExportExcel renders a record against the service's catalog.
func (s *Service) ExportExcel(rec *ScoreRecord) ([]byte, error) {
	return BuildExcel(s.catalog, rec)
}
