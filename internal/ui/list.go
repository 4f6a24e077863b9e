package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/desertthunder/vidsum/internal/formatter"
	"github.com/desertthunder/vidsum/internal/models"
)

var _ list.Item = videoItem{}

// videoItem wraps [models.VideoResult] to implement [list.Item].
type videoItem struct {
	video  models.VideoResult
	locale string
}

func (i videoItem) FilterValue() string { return i.video.Title }
func (i videoItem) Title() string {
	return formatter.TruncateTitle(i.video.Title, formatter.MaxTitleLength)
}
func (i videoItem) Description() string {
	views := formatter.FormatViewCount(i.video.ViewCount, i.locale)
	desc := fmt.Sprintf("%s • %s views", i.video.ChannelTitle, views)
	if i.video.PublishedAt != "" {
		desc = fmt.Sprintf("%s • %s", desc, i.video.PublishedAt)
	}
	return desc
}
