package survey

import (
	"encoding/json"
	"fmt"
)

// Question представляет вопрос опроса.
// Вид вопроса определяется один раз при создании или разборе.
type Question struct {
	Num         int
	Text        string
	Answer      any
	Kind        Kind
	// RightAnswer хранится в том виде, в каком пришёл из файла, и не проверяется.
	RightAnswer any
}

// NewFreeForm создаёт вопрос со свободным ответом.
func NewFreeForm(num int, text string) *Question {
	return &Question{
		Num:  num,
		Text: text,
		Kind: KindFreeForm,
	}
}

// NewMultipleChoice создаёт вопрос с вариантами ответа.
func NewMultipleChoice(num int, text string, right Choice) *Question {
	return &Question{
		Num:         num,
		Text:        text,
		Kind:        KindMultipleChoice,
		RightAnswer: right,
	}
}

// IsMultipleChoice сообщает, является ли вопрос вопросом с вариантами.
func (q *Question) IsMultipleChoice() bool {
	return q.Kind == KindMultipleChoice
}

// IsAnswered сообщает, дан ли ответ на вопрос.
func (q *Question) IsAnswered() bool {
	if q.Answer == nil {
		return false
	}

	s, ok := q.Answer.(string)
	return !ok || s != ""
}

// IsCorrect сообщает, совпадает ли ответ на вопрос с вариантами с правильным.
func (q *Question) IsCorrect() bool {
	if !q.IsMultipleChoice() {
		return false
	}

	answer, ok := ParseChoice(q.Answer)
	if !ok {
		return false
	}

	right, ok := ParseChoice(q.RightAnswer)
	return ok && answer == right
}

// wireQuestion — представление вопроса в файле.
type wireQuestion struct {
	Num      int    `json:"num"`
	Question string `json:"question"`
	Answer   any    `json:"answer"`
}

// wireMultipleChoice — вопрос с вариантами в файле; ключ rightanswer пишется всегда.
type wireMultipleChoice struct {
	wireQuestion
	RightAnswer any `json:"rightanswer"`
}

// MarshalJSON кодирует вопрос; поле rightanswer пишется только для вопросов с вариантами.
func (q *Question) MarshalJSON() ([]byte, error) {
	w := wireQuestion{
		Num:      q.Num,
		Question: q.Text,
		Answer:   q.Answer,
	}
	if q.IsMultipleChoice() {
		return json.Marshal(wireMultipleChoice{wireQuestion: w, RightAnswer: q.RightAnswer})
	}

	return json.Marshal(w)
}

// UnmarshalJSON разбирает вопрос; наличие ключа rightanswer делает его вопросом с вариантами.
func (q *Question) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	parsed, err := questionFromFields(fields)
	if err != nil {
		return err
	}

	*q = *parsed

	return nil
}

// questionFromFields собирает вопрос из разобранной записи JSON или YAML.
func questionFromFields(fields map[string]any) (*Question, error) {
	if fields == nil {
		return nil, fmt.Errorf("question record is null")
	}

	q := &Question{Kind: KindFreeForm}

	if raw, ok := fields["num"]; ok && raw != nil {
		num, ok := toInt(raw)
		if !ok {
			return nil, fmt.Errorf("field num must be an integer, got %v", raw)
		}
		q.Num = num
	}

	if raw, ok := fields["question"]; ok && raw != nil {
		text, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("field question must be a string, got %v", raw)
		}
		q.Text = text
	}

	q.Answer = fields["answer"]

	if raw, ok := fields["rightanswer"]; ok {
		q.Kind = KindMultipleChoice
		q.RightAnswer = raw
	}

	return q, nil
}

func toInt(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int64:
		return int(val), true
	case float64:
		if val != float64(int(val)) {
			return 0, false
		}
		return int(val), true
	default:
		return 0, false
	}
}
