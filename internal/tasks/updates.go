package tasks

import "fmt"

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	ResolveVideos Phase = iota
	Summarize
	WriteManifest
)

func (p Phase) String() string {
	switch p {
	case ResolveVideos:
		return "resolve_videos"
	case Summarize:
		return "summarize"
	case WriteManifest:
		return "write_manifest"
	default:
		return ""
	}
}

func resolvingVideosUpdate(total int) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ResolveVideos,
		Step:    0,
		Total:   total,
		Message: fmt.Sprintf("Queueing %d videos for summarization...", total),
	}
}

func summarizingUpdate(step, total int, videoID string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Summarize,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] Summarizing: %s...", step, total, videoID),
	}
}

func summaryCompletedUpdate(step, total int, videoID, file string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Summarize,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✓ %s", step, total, videoID),
		Data:    file,
	}
}

func summaryFailedUpdate(step, total int, videoID string, err error) ProgressUpdate {
	return ProgressUpdate{
		Phase:   Summarize,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("[%d/%d] ✗ %s: %v", step, total, videoID, err),
	}
}

func writingManifestUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteManifest,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Writing manifest: %s", path),
	}
}
