package services

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/username/comdirectparser/src/database"
	"github.com/username/comdirectparser/src/extraction"
	"github.com/username/comdirectparser/src/models"
	"github.com/username/comdirectparser/src/parsers"
	"golang.org/x/sync/errgroup"
)

type parseServiceImpl struct {
	extractor  extraction.TextExtractor
	parser     parsers.Parser
	log        *slog.Logger
	maxWorkers int
	persist    bool
}

// NewParseService wires the pipeline. With persist set, parsed records are
// written to the database after each run; duplicates of already stored
// records are dropped silently per the collection uniqueness rules.
func NewParseService(extractor extraction.TextExtractor, parser parsers.Parser, log *slog.Logger, maxWorkers int, persist bool) ParseService {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &parseServiceImpl{
		extractor:  extractor,
		parser:     parser,
		log:        log,
		maxWorkers: maxWorkers,
		persist:    persist,
	}
}

func (s *parseServiceImpl) Run(ctx context.Context, inputs []string) (*RunResult, error) {
	runID := uuid.NewString()
	startTime := time.Now()
	log := s.log.With("runID", runID)
	log.Info("parse run START", "inputs", len(inputs))

	files, unusable, err := extraction.ExpandInputPaths(inputs)
	if err != nil {
		return nil, err
	}
	var failed []models.SkippedDocument
	for _, path := range unusable {
		log.Warn("skipping unusable input path", "path", path)
		failed = append(failed, models.SkippedDocument{
			Filename: path,
			Reason:   "input path does not exist or is not readable",
		})
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNoInputFiles, inputs)
	}

	docs, extractFailed := s.extractAll(ctx, files)
	failed = append(failed, extractFailed...)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := s.parser.Parse(docs)
	// Unusable paths and extraction failures join the parse diagnostics;
	// all mean the same thing to the caller: this input produced no record.
	result.Skipped = append(result.Skipped, failed...)

	run := &RunResult{Result: result, RunID: runID}
	if s.persist {
		stats, err := database.InsertParseResult(result)
		if err != nil {
			return nil, fmt.Errorf("persisting parse results: %w", err)
		}
		run.Stats = &stats
		log.Info("records persisted", "inserted", stats.Inserted, "duplicates", stats.Duplicates)
	}

	log.Info("parse run END",
		"files", len(files),
		"dividends", len(result.Dividends),
		"trades", len(result.Trades),
		"taxes", len(result.Taxes),
		"saldos", len(result.Saldos),
		"giroTransactions", len(result.GiroTransactions),
		"skipped", len(result.Skipped),
		"duration", time.Since(startTime))
	return run, nil
}

// extractAll runs text extraction for every file on a bounded worker pool.
// Documents come back in input order regardless of which extraction
// finished first; a file that fails to extract becomes a diagnostic, never
// a run failure.
func (s *parseServiceImpl) extractAll(ctx context.Context, files []string) ([]models.RawDocument, []models.SkippedDocument) {
	type extracted struct {
		text string
		err  error
	}
	results := make([]extracted, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = extracted{err: err}
				return nil
			}
			text, err := s.extractor.Extract(path)
			results[i] = extracted{text: text, err: err}
			return nil
		})
	}
	g.Wait()

	var docs []models.RawDocument
	var failed []models.SkippedDocument
	for i, res := range results {
		filename := filepath.Base(files[i])
		if res.err != nil {
			s.log.Warn("skipping unreadable file", "filename", filename, "error", res.err)
			failed = append(failed, models.SkippedDocument{Filename: filename, Reason: res.err.Error()})
			continue
		}
		docs = append(docs, models.RawDocument{Filename: filename, Text: res.text})
	}
	return docs, failed
}
