package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/desertthunder/vidsum/internal/formatter"
	"github.com/desertthunder/vidsum/internal/services"
	"github.com/desertthunder/vidsum/internal/shared"
	"golang.org/x/time/rate"
)

// BulkSummarizeOpts contains configuration for batch summary runs.
type BulkSummarizeOpts struct {
	Format     string  // Output format: markdown or html
	OutputDir  string  // Base output directory (default: summaries_{epoch})
	NumWorkers int     // Concurrent workers (default: 3)
	RateLimit  float64 // Requests per second (default: 1)
}

// BulkSummarize generates summaries for multiple videos concurrently with
// rate limiting and progress tracking.
//
// This method implements a worker pool pattern. It respects backend rate
// limits, handles partial failures gracefully, and generates a manifest
// file summarizing the run.
func (e *SummaryEngine) BulkSummarize(
	ctx context.Context,
	prog chan<- ProgressUpdate,
	inputs []string,
	opts BulkSummarizeOpts,
) (*BulkSummarizeResult, error) {
	if e.backend == nil {
		return nil, fmt.Errorf("%w: backend not initialized", shared.ErrServiceUnavailable)
	}

	if opts.OutputDir == "" {
		opts.OutputDir = fmt.Sprintf("summaries_%d", time.Now().Unix())
	}
	if opts.NumWorkers <= 0 {
		opts.NumWorkers = 3
	}
	if opts.NumWorkers > 8 {
		opts.NumWorkers = 8
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = 1.0
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	result := &BulkSummarizeResult{
		TotalVideos:     len(inputs),
		OutputDirectory: opts.OutputDir,
		Results:         make([]SummaryJobResult, 0, len(inputs)),
	}

	e.sendProgress(prog, resolvingVideosUpdate(len(inputs)))

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)

	jobs := make(chan SummaryJob, len(inputs))
	results := make(chan SummaryJobResult, len(inputs))

	var wg sync.WaitGroup
	for i := 0; i < opts.NumWorkers; i++ {
		wg.Add(1)
		go e.summarizeWorker(ctx, &wg, jobs, results, limiter, opts)
	}

	queued := 0
	for i, input := range inputs {
		videoID, err := formatter.ExtractVideoID(input)
		if err != nil {
			results <- SummaryJobResult{VideoID: input, Success: false, Error: err}
			continue
		}
		e.sendProgress(prog, summarizingUpdate(i+1, len(inputs), videoID))
		jobs <- SummaryJob{VideoID: videoID, Index: i}
		queued++
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	completed := 0
	for res := range results {
		completed++
		result.Results = append(result.Results, res)

		if res.Success {
			result.SuccessfulReports++
			e.sendProgress(prog, summaryCompletedUpdate(completed, len(inputs), res.VideoID, res.File))
		} else {
			result.FailedReports++
			e.sendProgress(prog, summaryFailedUpdate(completed, len(inputs), res.VideoID, res.Error))
		}
	}

	manifestPath := filepath.Join(opts.OutputDir, "summary_manifest.json")
	e.sendProgress(prog, writingManifestUpdate(manifestPath))
	if err := writeManifest(result, opts.Format, manifestPath); err != nil {
		return result, fmt.Errorf("run completed but failed to write manifest: %w", err)
	}
	result.ManifestPath = manifestPath
	return result, nil
}

// summarizeWorker is a worker goroutine that summarizes videos from the
// jobs channel. Each request waits on the shared limiter first.
func (e *SummaryEngine) summarizeWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	jobs <-chan SummaryJob,
	results chan<- SummaryJobResult,
	limiter *rate.Limiter,
	opts BulkSummarizeOpts,
) {
	defer wg.Done()

	for job := range jobs {
		select {
		case <-ctx.Done():
			return
		default:
		}

		if err := limiter.Wait(ctx); err != nil {
			results <- SummaryJobResult{VideoID: job.VideoID, Success: false, Error: err}
			continue
		}

		results <- e.summarizeSingle(ctx, job, opts)
	}
}

// summarizeSingle fetches one summary and writes it in the requested format.
func (e *SummaryEngine) summarizeSingle(ctx context.Context, job SummaryJob, opts BulkSummarizeOpts) SummaryJobResult {
	result := SummaryJobResult{VideoID: job.VideoID}

	formatType := services.FormatJSON
	if opts.Format == "markdown" {
		formatType = services.FormatMarkdown
	}

	summary, err := e.backend.Summarize(ctx, job.VideoID, formatType)
	if err != nil {
		result.Error = fmt.Errorf("summarize failed: %w", err)
		return result
	}

	switch opts.Format {
	case "html":
		path := filepath.Join(opts.OutputDir, job.VideoID+".html")
		file, err := formatter.WriteHTMLExport(summary, path)
		if err != nil {
			result.Error = fmt.Errorf("HTML export failed: %w", err)
			return result
		}
		result.File = file
	default:
		path := filepath.Join(opts.OutputDir, job.VideoID+".md")
		file, err := formatter.WriteMarkdownExport(summary, path)
		if err != nil {
			result.Error = fmt.Errorf("markdown export failed: %w", err)
			return result
		}
		result.File = file
	}

	result.Success = true
	return result
}

type manifestEntry struct {
	VideoID string `json:"video_id"`
	File    string `json:"file,omitempty"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

type manifest struct {
	GeneratedAt       string          `json:"generated_at"`
	Format            string          `json:"format"`
	TotalVideos       int             `json:"total_videos"`
	SuccessfulReports int             `json:"successful_reports"`
	FailedReports     int             `json:"failed_reports"`
	Entries           []manifestEntry `json:"entries"`
}

func writeManifest(result *BulkSummarizeResult, format, path string) error {
	m := manifest{
		GeneratedAt:       time.Now().UTC().Format(time.RFC3339),
		Format:            format,
		TotalVideos:       result.TotalVideos,
		SuccessfulReports: result.SuccessfulReports,
		FailedReports:     result.FailedReports,
		Entries:           make([]manifestEntry, 0, len(result.Results)),
	}
	if m.Format == "" {
		m.Format = "markdown"
	}

	for _, res := range result.Results {
		entry := manifestEntry{
			VideoID: res.VideoID,
			File:    res.File,
			Success: res.Success,
		}
		if res.Error != nil {
			entry.Error = res.Error.Error()
		}
		m.Entries = append(m.Entries, entry)
	}

	data, err := shared.MarshalJSON(m, true)
	if err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}
	return nil
}
