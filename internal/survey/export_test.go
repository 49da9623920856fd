package survey

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResults(t *testing.T) {
	s, _ := newTestSurvey(t)

	require.NoError(t, s.Answer("ArchLinux"))
	_, err := s.Next()
	require.NoError(t, err)
	require.NoError(t, s.Answer(ChoiceC))

	results := s.Results()
	assert.Equal(t, s.ID, results.SurveyID)
	assert.Equal(t, 4, results.Total)
	assert.Equal(t, 2, results.Answered)
	assert.Equal(t, 1, results.MultipleChoice)
	assert.Equal(t, 1, results.Correct)
}

func TestExportCSV(t *testing.T) {
	s, _ := newTestSurvey(t)

	require.NoError(t, s.Answer("ArchLinux"))
	_, err := s.Next()
	require.NoError(t, err)
	require.NoError(t, s.Answer("A"))

	data, err := s.ExportCSV()
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(string(data)))
	records, err := r.ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 5)
	assert.Equal(t, []string{"Num", "Question", "Kind", "Answer", "RightAnswer", "Correct"}, records[0])
	assert.Equal(t, []string{"0", "What is your favourite operating system?", "freeform", "ArchLinux", "", ""}, records[1])
	assert.Equal(t, []string{"1", "Please select 'C' to preserve your answers", "multiple_choice", "A", "C", "false"}, records[2])
	assert.Equal(t, "", records[3][3])
}

func TestExportCSV_Empty(t *testing.T) {
	s := New()

	data, err := s.ExportCSV()
	require.NoError(t, err)
	assert.Equal(t, "Num,Question,Kind,Answer,RightAnswer,Correct\n", string(data))
}
