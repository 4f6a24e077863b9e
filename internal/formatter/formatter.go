// package formatter provides display formatting for search results and
// summary export to various formats (Markdown, HTML, plain text)
package formatter

import (
	"bytes"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/vidsum/internal/models"
	"github.com/desertthunder/vidsum/internal/shared"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// MaxTitleLength is the character budget for video titles on result cards.
const MaxTitleLength = 60

var (
	videoIDPattern  = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)
	videoURLPattern = regexp.MustCompile(`(?i)(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?)/|.*[?&]v=)|youtu\.be/)([^"&?/\s]{11})`)
)

// FormatViewCount renders a raw view count for display. Values of at
// least a million collapse to "1.2M" and thousands to "1.5K"; the
// Japanese locale uses 万 (ten thousands) and 千 instead. Non-numeric
// counts such as "N/A" pass through unchanged.
func FormatViewCount(count string, locale string) string {
	if count == "N/A" {
		return count
	}

	num, err := strconv.ParseInt(count, 10, 64)
	if err != nil {
		return count
	}

	if locale == "ja" {
		switch {
		case num >= 1_000_000:
			return fmt.Sprintf("%.1f万", float64(num)/10_000)
		case num >= 1_000:
			return fmt.Sprintf("%.1f千", float64(num)/1_000)
		}
		return strconv.FormatInt(num, 10)
	}

	switch {
	case num >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(num)/1_000_000)
	case num >= 1_000:
		return fmt.Sprintf("%.1fK", float64(num)/1_000)
	}
	return strconv.FormatInt(num, 10)
}

// TruncateTitle shortens text to maxLength runes and appends an
// ellipsis. Text at or under the limit is returned unchanged.
func TruncateTitle(text string, maxLength int) string {
	runes := []rune(text)
	if len(runes) <= maxLength {
		return text
	}
	return string(runes[:maxLength]) + "..."
}

// ExtractVideoID resolves user input to an 11 character video ID. Input
// may be a bare ID or any of the common YouTube URL shapes (watch,
// embed, short link). Returns ErrInvalidVideoID when neither matches.
func ExtractVideoID(input string) (string, error) {
	input = strings.TrimSpace(input)

	if videoIDPattern.MatchString(input) {
		return input, nil
	}

	if match := videoURLPattern.FindStringSubmatch(input); match != nil {
		return match[1], nil
	}

	return "", fmt.Errorf("%w: %q", shared.ErrInvalidVideoID, input)
}

// FormatDate renders a publish timestamp as a local date string.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("Jan 2, 2006")
}

// SummaryToMarkdown builds a Markdown document from a summary. The
// backend may already supply rendered markdown_content; when present it
// wins, otherwise the document is assembled from the structured fields
// with placeholders for empty sections.
func SummaryToMarkdown(summary *models.Summary) string {
	if summary.MarkdownContent != "" {
		return summary.MarkdownContent
	}

	var buf bytes.Buffer

	buf.WriteString("# Video Summary\n\n")
	if summary.VideoURL != "" {
		buf.WriteString(fmt.Sprintf("**Video**: %s\n\n", summary.VideoURL))
	}

	buf.WriteString("## Summary\n\n")
	buf.WriteString(summary.BriefSummary + "\n\n")

	buf.WriteString("## Key Points\n\n")
	if len(summary.KeyPoints) == 0 {
		buf.WriteString("No key points available.\n\n")
	} else {
		for _, point := range summary.KeyPoints {
			buf.WriteString(fmt.Sprintf("- %s\n", point))
		}
		buf.WriteString("\n")
	}

	buf.WriteString("## Main Topics\n\n")
	if len(summary.MainTopics) == 0 {
		buf.WriteString("No topics available.\n")
	} else {
		for _, topic := range summary.MainTopics {
			buf.WriteString(fmt.Sprintf("- %s\n", topic))
		}
	}

	return buf.String()
}

// MarkdownToHTML converts a Markdown document to HTML. Raw HTML inside
// the source is escaped rather than passed through, so backend-supplied
// content cannot inject markup.
func MarkdownToHTML(markdown string) (string, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render HTML: %w", err)
	}

	return buf.String(), nil
}
