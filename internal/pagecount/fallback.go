package pagecount

import (
	"errors"
	"fmt"
	"log"
)

// ErrNoPages is returned by an engine that parsed a file but found no pages.
var ErrNoPages = errors.New("no pages found")

// Engine extracts a page count from raw file bytes.
type Engine interface {
	Name() string
	Count(data []byte) (int, error)
}

// Fallback tries engines in order and returns the first positive count.
type Fallback struct {
	engines []Engine
}

// NewFallback creates a Fallback from an ordered list of engines.
func NewFallback(engines ...Engine) *Fallback {
	return &Fallback{engines: engines}
}

// Count returns the first positive count any engine produces. The error
// wraps the last engine failure when every engine fails.
func (f *Fallback) Count(fileName string, data []byte) (int, error) {
	var lastErr error
	for _, e := range f.engines {
		n, err := safeCount(e, data)
		if err == nil && n <= 0 {
			err = ErrNoPages
		}
		if err == nil {
			return n, nil
		}
		log.Printf("pagecount.Fallback: %s failed for %s: %v", e.Name(), fileName, err)
		lastErr = err
	}
	if lastErr == nil {
		return 0, ErrNoPages
	}
	return 0, fmt.Errorf("all page counters failed: %w", lastErr)
}

// safeCount turns a parser panic on malformed input into an error.
func safeCount(e Engine, data []byte) (n int, err error) {
	defer func() {
		if r := recover(); r != nil {
			n, err = 0, fmt.Errorf("%s panicked: %v", e.Name(), r)
		}
	}()
	return e.Count(data)
}
