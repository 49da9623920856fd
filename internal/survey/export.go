package survey

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
)

// Results возвращает сводку по ответам.
func (s *Survey) Results() Results {
	s.mu.Lock()
	defer s.mu.Unlock()

	results := Results{
		SurveyID: s.ID,
		Total:    len(s.questions),
	}

	for _, q := range s.questions {
		if q.IsAnswered() {
			results.Answered++
		}

		if q.IsMultipleChoice() {
			results.MultipleChoice++
			if q.IsCorrect() {
				results.Correct++
			}
		}
	}

	return results
}

// ExportCSV экспортирует вопросы и ответы в CSV.
func (s *Survey) ExportCSV() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer

	w := csv.NewWriter(&buf)
	_ = w.Write(
		[]string{
			"Num",
			"Question",
			"Kind",
			"Answer",
			"RightAnswer",
			"Correct",
		},
	)

	for _, q := range s.questions {
		answer := ""
		if q.Answer != nil {
			answer = fmt.Sprint(q.Answer)
		}

		right, correct := "", ""
		if q.IsMultipleChoice() {
			if q.RightAnswer != nil {
				right = fmt.Sprint(q.RightAnswer)
			}
			correct = strconv.FormatBool(q.IsCorrect())
		}

		_ = w.Write([]string{
			strconv.Itoa(q.Num),
			q.Text,
			string(q.Kind),
			answer,
			right,
			correct,
		})
	}

	w.Flush()

	err := w.Error()
	if err != nil {
		return nil, fmt.Errorf("failed to flush buffer: %w", err)
	}

	return buf.Bytes(), nil
}
