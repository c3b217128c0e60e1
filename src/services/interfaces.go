package services

import (
	"context"
	"errors"

	"github.com/username/comdirectparser/src/database"
	"github.com/username/comdirectparser/src/models"
)

var (
	ErrNoInputFiles = errors.New("no input files found")
)

// RunResult is one parse run: the typed record collections plus, when
// persistence is enabled, the insert statistics.
type RunResult struct {
	Result models.ParseResult
	Stats  *database.InsertStats
	RunID  string
}

// ParseService drives the pipeline: enumerate inputs, extract text, parse,
// and optionally persist the records.
type ParseService interface {
	Run(ctx context.Context, inputs []string) (*RunResult, error)
}
