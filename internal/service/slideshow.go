package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"datafeed/internal/model"
)

// ErrEmptyPlaylist is returned when a build request carries no playlist
// text at all. This is the one batch-level failure; a playlist whose
// references all miss still succeeds with an empty list.
var ErrEmptyPlaylist = errors.New("no text content provided")

// BuildLogger records one completed playlist build for diagnostics.
type BuildLogger func(ctx context.Context, lineCount, emitted int, failedRefs []string, durationMs int) error

// SlideshowService turns raw playlist text into ordered slideshow data.
type SlideshowService struct {
	assembler *Assembler
	logBuild  BuildLogger
}

// NewSlideshowService creates a new slideshow service. logBuild may be nil
// to disable build auditing.
func NewSlideshowService(assembler *Assembler, logBuild BuildLogger) *SlideshowService {
	return &SlideshowService{
		assembler: assembler,
		logBuild:  logBuild,
	}
}

// Build parses playlist text and assembles the slideshow records in input
// order. Returns ErrEmptyPlaylist when text is empty or whitespace.
func (s *SlideshowService) Build(ctx context.Context, text string) (*model.BuildResponse, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyPlaylist
	}

	startTime := time.Now()

	items := Parse(text)
	records, failures := s.assembler.Build(ctx, items)

	took := time.Since(startTime).Milliseconds()

	// Log build (non-blocking)
	if s.logBuild != nil {
		failedRefs := make([]string, len(failures))
		for i, f := range failures {
			failedRefs[i] = f.Ref
		}
		go func() {
			_ = s.logBuild(context.Background(), len(items), len(records), failedRefs, int(took))
		}()
	}

	return &model.BuildResponse{
		Success: true,
		Data:    records,
		Count:   len(records),
	}, nil
}
