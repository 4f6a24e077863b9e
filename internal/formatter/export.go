package formatter

import (
	"fmt"
	"os"
	"time"

	"github.com/desertthunder/vidsum/internal/models"
)

// ExportFilename builds a timestamped export filename like
// youtube-summary-2026-08-31-14-05-09.md.
func ExportFilename(ext string, now time.Time) string {
	return fmt.Sprintf("youtube-summary-%s.%s", now.Format("2006-01-02-15-04-05"), ext)
}

// WriteMarkdownExport writes a summary as a Markdown file.
//
// Defaults to a timestamped filename in the working directory when
// filepath is empty. Returns the path written.
func WriteMarkdownExport(summary *models.Summary, filepath string) (string, error) {
	if filepath == "" {
		filepath = ExportFilename("md", time.Now())
	}

	data := SummaryToMarkdown(summary)
	if err := os.WriteFile(filepath, []byte(data), 0644); err != nil {
		return "", fmt.Errorf("failed to write Markdown file: %w", err)
	}

	return filepath, nil
}

// WriteHTMLExport renders a summary to a standalone HTML file.
func WriteHTMLExport(summary *models.Summary, filepath string) (string, error) {
	if filepath == "" {
		filepath = ExportFilename("html", time.Now())
	}

	body, err := MarkdownToHTML(SummaryToMarkdown(summary))
	if err != nil {
		return "", fmt.Errorf("failed to generate HTML: %w", err)
	}

	doc := fmt.Sprintf("<!DOCTYPE html>\n<html>\n<head><meta charset=\"utf-8\"><title>Video Summary</title></head>\n<body>\n%s</body>\n</html>\n", body)
	if err := os.WriteFile(filepath, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("failed to write HTML file: %w", err)
	}

	return filepath, nil
}
