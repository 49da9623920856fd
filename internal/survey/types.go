package survey

import (
	"context"
	"errors"
	"strconv"
)

// Ошибки опроса
var (
	// ErrNoQuestions возвращается при чтении позиции курсора вне списка вопросов.
	ErrNoQuestions = errors.New("no questions")

	// ErrInvalidChoice возвращается, если ответ на вопрос с вариантами не входит в список вариантов.
	ErrInvalidChoice = errors.New("this is a multiple choice question")

	// ErrMalformedData возвращается, если содержимое ресурса не удалось разобрать.
	ErrMalformedData = errors.New("malformed question data")
)

// Kind — вид вопроса.
type Kind string

const (
	KindFreeForm       Kind = "freeform"
	KindMultipleChoice Kind = "multiple_choice"
)

// Choice — вариант ответа на вопрос с вариантами.
type Choice string

const (
	ChoiceA Choice = "A"
	ChoiceB Choice = "B"
	ChoiceC Choice = "C"
	ChoiceD Choice = "D"
)

// ChoiceLetters — допустимые варианты ответа в порядке индексов (A=0, B=1, ...).
var ChoiceLetters = []Choice{ChoiceA, ChoiceB, ChoiceC, ChoiceD}

// IndexToChoice преобразует индекс в вариант (0=A, 1=B, ...).
func IndexToChoice(idx int) (Choice, bool) {
	if idx >= 0 && idx < len(ChoiceLetters) {
		return ChoiceLetters[idx], true
	}

	return "", false
}

// Index возвращает индекс варианта или -1, если вариант недопустим.
func (c Choice) Index() int {
	for i, l := range ChoiceLetters {
		if l == c {
			return i
		}
	}

	return -1
}

// ParseChoice приводит значение к варианту ответа.
// Принимает Choice, букву варианта, целый индекс или индекс строкой ("0" = A).
// Регистр и пробелы не нормализуются.
func ParseChoice(v any) (Choice, bool) {
	switch val := v.(type) {
	case Choice:
		return val, val.Index() >= 0
	case string:
		if c := Choice(val); c.Index() >= 0 {
			return c, true
		}
		for i := range ChoiceLetters {
			if val == strconv.Itoa(i) {
				return IndexToChoice(i)
			}
		}
		return "", false
	case int:
		return IndexToChoice(val)
	case int64:
		return IndexToChoice(int(val))
	case float64:
		if val != float64(int(val)) {
			return "", false
		}
		return IndexToChoice(int(val))
	default:
		return "", false
	}
}

// ResourceReader читает содержимое именованного ресурса целиком.
type ResourceReader interface {
	// ReadResource возвращает содержимое ресурса name или ошибку, если ресурса нет.
	ReadResource(ctx context.Context, name string) ([]byte, error)
}

// LoadResult — результат асинхронной загрузки вопросов.
type LoadResult struct {
	Questions []*Question
	Err       error
}

// Results содержит сводку по ответам опроса.
type Results struct {
	SurveyID       string
	Total          int
	Answered       int
	MultipleChoice int
	Correct        int
}
