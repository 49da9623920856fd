package survey

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Survey хранит упорядоченный список вопросов и позицию респондента в нём.
type Survey struct {
	ID string

	questions []*Question
	current   int
	strict    bool
	mu        sync.Mutex
}

// Option настраивает Survey.
type Option func(*Survey)

// WithStrictAnswer заставляет Answer возвращать ErrNoQuestions,
// если на текущей позиции нет вопроса. По умолчанию такой ответ молча игнорируется.
func WithStrictAnswer() Option {
	return func(s *Survey) {
		s.strict = true
	}
}

// New создаёт пустой опрос с курсором на нулевой позиции.
func New(opts ...Option) *Survey {
	s := &Survey{
		ID:        uuid.NewString(),
		questions: []*Question{},
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Append добавляет вопрос в конец списка.
func (s *Survey) Append(q *Question) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.questions = append(s.questions, q)
}

// AppendMany добавляет вопросы в конец списка, сохраняя их порядок.
func (s *Survey) AppendMany(qs []*Question) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.questions = append(s.questions, qs...)
}

// ReplaceAll заменяет весь список вопросов копией qs. Позиция курсора не сбрасывается.
func (s *Survey) ReplaceAll(qs []*Question) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.questions = append([]*Question{}, qs...)
}

// All возвращает все вопросы опроса. Вопросы не копируются:
// ответы, данные через Answer, видны в возвращённых значениях.
func (s *Survey) All() []*Question {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.questions
}

// Len возвращает количество вопросов.
func (s *Survey) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.questions)
}

// Position возвращает текущую позицию курсора.
func (s *Survey) Position() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

// Current возвращает текущий вопрос.
func (s *Survey) Current() (*Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.at(s.current)
}

// Next сдвигает курсор на один вопрос вперёд и возвращает вопрос на новой позиции.
// Курсор сдвигается, даже если на новой позиции вопроса нет.
func (s *Survey) Next() (*Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.current++

	return s.at(s.current)
}

// Answer записывает ответ в текущий вопрос.
func (s *Survey) Answer(value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, err := s.at(s.current)
	if err != nil {
		if s.strict {
			return err
		}
		return nil
	}

	if !q.IsMultipleChoice() {
		q.Answer = value
		return nil
	}

	if _, ok := ParseChoice(value); !ok {
		return fmt.Errorf("question %d, answer %v: %w", q.Num, value, ErrInvalidChoice)
	}
	q.Answer = value

	return nil
}

// at возвращает вопрос на позиции pos. Вызывается под s.mu.
func (s *Survey) at(pos int) (*Question, error) {
	if pos < 0 || pos >= len(s.questions) {
		return nil, fmt.Errorf("position %d of %d: %w", pos, len(s.questions), ErrNoQuestions)
	}

	return s.questions[pos], nil
}
