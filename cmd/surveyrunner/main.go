package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/letsssgooo/surveyRunner/internal/config"
	"github.com/letsssgooo/surveyRunner/internal/lib/slogcustom"
	"github.com/letsssgooo/surveyRunner/internal/resource"
	"github.com/letsssgooo/surveyRunner/internal/survey"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := setupLogger(cfg.LogLevel)
	slog.SetDefault(log)
	slog.Info("starting survey runner...", "source", cfg.Source, "resource", cfg.Resource)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		slog.Error("survey runner stopped", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer) error {
	reader, closeReader, err := resource.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeReader()

	var opts []survey.Option
	if cfg.StrictAnswer {
		opts = append(opts, survey.WithStrictAnswer())
	}
	s := survey.New(opts...)

	loader := survey.NewLoader(s, reader, slog.Default())
	if _, err = loader.Load(ctx, cfg.Resource); err != nil {
		return err
	}

	if err = ask(s, bufio.NewScanner(in), out); err != nil {
		return err
	}

	report, err := s.ExportCSV()
	if err != nil {
		return err
	}

	_, err = out.Write(report)
	return err
}

// ask проводит респондента по вопросам, читая по одному ответу на строку.
func ask(s *survey.Survey, answers *bufio.Scanner, out io.Writer) error {
	q, err := s.Current()
	for err == nil {
		fmt.Fprintf(out, "%d. %s\n", q.Num, q.Text)
		if q.IsMultipleChoice() {
			fmt.Fprintf(out, "(choose one of %v)\n", survey.ChoiceLetters)
		}

		if !answers.Scan() {
			return answers.Err()
		}

		answer := answers.Text()
		if q.IsMultipleChoice() {
			answer = strings.ToUpper(strings.TrimSpace(answer))
		}

		if err = s.Answer(answer); err != nil {
			if errors.Is(err, survey.ErrInvalidChoice) {
				fmt.Fprintln(out, "invalid choice, try again")
				err = nil
				continue
			}
			return err
		}

		q, err = s.Next()
	}

	if !errors.Is(err, survey.ErrNoQuestions) {
		return err
	}

	return nil
}

func setupLogger(level string) *slog.Logger {
	log := slog.New(slogcustom.NewCustomHandler(os.Stderr, slogcustom.ParseLevel(level)))
	return log
}
