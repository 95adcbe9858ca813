package dispatch

import (
	"fmt"
	"path/filepath"

	"github.com/samber/lo"
)

// DefaultBatchSize is the number of files sent in one upload call.
const DefaultBatchSize = 100

// BatchStrategy decides what happens to the remaining batches after one fails.
type BatchStrategy int

const (
	// AbortRemaining stops at the first failed batch.
	AbortRemaining BatchStrategy = iota
	// ContinueAndCollectErrors sends every batch and reports all failures
	// together.
	ContinueAndCollectErrors
)

func (s BatchStrategy) String() string {
	switch s {
	case AbortRemaining:
		return "abort-remaining"
	case ContinueAndCollectErrors:
		return "continue"
	default:
		return fmt.Sprintf("BatchStrategy(%d)", int(s))
	}
}

// Chunk splits items into consecutive batches of at most size items,
// preserving order. Only the last batch may be shorter.
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", size)
	}
	if len(items) == 0 {
		return nil, nil
	}
	return lo.Chunk(items, size), nil
}

// BasenameError reports a local path with no final file name component.
type BasenameError struct {
	Path string
}

func (e *BasenameError) Error() string {
	return fmt.Sprintf("failed to get basename of %q", e.Path)
}

// Basename returns the final component of path, the name a file is stored
// under.
func Basename(path string) (string, error) {
	if path == "" {
		return "", &BasenameError{Path: path}
	}
	base := filepath.Base(path)
	switch base {
	case ".", "..", string(filepath.Separator):
		return "", &BasenameError{Path: path}
	}
	return base, nil
}
