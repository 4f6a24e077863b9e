// Package tasks orchestrates batch summarization runs with real-time progress reporting.
//
// # Core Operation
//
// [SummaryEngine.BulkSummarize] generates summaries for a list of videos:
//   - Resolves each input (bare ID or URL) to an 11 character video ID
//   - Fans work out to a bounded worker pool
//   - Throttles backend requests with a shared rate limiter
//   - Writes each summary as Markdown or HTML under the output directory
//   - Records every outcome in a JSON manifest
//
// # Progress Reporting
//
// Operations accept an optional progress channel. Updates are sent with a
// non-blocking select so a slow or absent consumer never stalls the run.
// Each [ProgressUpdate] carries a phase, step counters, and a display
// message.
//
// Partial failures are expected: a video that cannot be resolved or
// summarized is recorded in the result and the manifest, and the run
// continues with the remaining videos.
package tasks
