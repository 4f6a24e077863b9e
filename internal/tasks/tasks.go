package tasks

import (
	"github.com/desertthunder/vidsum/internal/services"
)

// SummaryJob is a single video queued for summarization.
type SummaryJob struct {
	VideoID string
	Index   int
}

// SummaryJobResult records the outcome of summarizing one video.
type SummaryJobResult struct {
	VideoID string
	File    string
	Success bool
	Error   error
}

// BulkSummarizeResult aggregates the outcome of a batch run.
type BulkSummarizeResult struct {
	TotalVideos       int
	SuccessfulReports int
	FailedReports     int
	OutputDirectory   string
	ManifestPath      string
	Results           []SummaryJobResult
}

// SummaryEngine runs summarization batches against a backend.
type SummaryEngine struct {
	backend services.Backend
}

// NewSummaryEngine creates a SummaryEngine bound to the given backend.
func NewSummaryEngine(backend services.Backend) *SummaryEngine {
	return &SummaryEngine{backend: backend}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *SummaryEngine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}
