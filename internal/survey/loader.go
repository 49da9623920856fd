package survey

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader загружает вопросы из ресурса и заменяет ими вопросы опроса.
type Loader struct {
	survey *Survey
	reader ResourceReader
	log    *slog.Logger
}

// NewLoader создаёт загрузчик для опроса s. Если log равен nil, используется slog.Default().
func NewLoader(s *Survey, reader ResourceReader, log *slog.Logger) *Loader {
	if log == nil {
		log = slog.Default()
	}

	return &Loader{
		survey: s,
		reader: reader,
		log:    log.With("survey_id", s.ID),
	}
}

// Load читает ресурс name, разбирает его и заменяет вопросы опроса.
// При ошибке вопросы опроса не меняются, ошибка логируется и возвращается.
func (l *Loader) Load(ctx context.Context, name string) ([]*Question, error) {
	data, err := l.reader.ReadResource(ctx, name)
	if err != nil {
		l.log.Error("failed to read questions", "resource", name, "err", err)
		return nil, fmt.Errorf("read resource %q: %w", name, err)
	}

	questions, err := DecodeQuestions(name, data)
	if err != nil {
		l.log.Error("failed to parse questions", "resource", name, "err", err)
		return nil, err
	}

	l.survey.ReplaceAll(questions)
	l.log.Debug("questions loaded", "resource", name, "count", len(questions))

	return questions, nil
}

// LoadAsync выполняет Load в отдельной горутине.
// В канал приходит ровно один результат, после чего канал закрывается.
// Замена вопросов происходит до отправки результата, даже если канал никто не читает.
func (l *Loader) LoadAsync(ctx context.Context, name string) <-chan LoadResult {
	results := make(chan LoadResult, 1)

	go func() {
		defer close(results)

		questions, err := l.Load(ctx, name)
		results <- LoadResult{Questions: questions, Err: err}
	}()

	return results
}

// DecodeQuestions разбирает список вопросов. Формат определяется по расширению имени:
// .yaml и .yml разбираются как YAML, остальное как JSON.
func DecodeQuestions(name string, data []byte) ([]*Question, error) {
	var (
		records []map[string]any
		err     error
	)

	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		records, err = decodeYAML(data)
	default:
		records, err = decodeJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedData, err)
	}

	questions := make([]*Question, 0, len(records))
	for i, record := range records {
		q, err := questionFromFields(record)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %w", ErrMalformedData, i, err)
		}
		questions = append(questions, q)
	}

	return questions, nil
}

func decodeJSON(data []byte) ([]map[string]any, error) {
	var records []map[string]any

	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if records == nil {
		return nil, fmt.Errorf("parse json: expected an array of questions")
	}

	return records, nil
}

func decodeYAML(data []byte) ([]map[string]any, error) {
	var records []map[string]any

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if records == nil {
		return nil, fmt.Errorf("parse yaml: expected a list of questions")
	}

	return records, nil
}
