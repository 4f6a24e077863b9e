package store

import (
	"testing"

	"github.com/desertthunder/vidsum/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSubscriptions(t *testing.T) {
	t.Run("add and contains", func(t *testing.T) {
		s := NewSubscriptions()
		s.Add(models.Subscription{ChannelID: "UC1", ChannelTitle: "Zebra"})

		assert.True(t, s.Contains("UC1"))
		assert.False(t, s.Contains("UC2"))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("list is sorted by title", func(t *testing.T) {
		s := NewSubscriptions()
		s.Add(models.Subscription{ChannelID: "UC1", ChannelTitle: "Zebra"})
		s.Add(models.Subscription{ChannelID: "UC2", ChannelTitle: "Alpha"})
		s.Add(models.Subscription{ChannelID: "UC3", ChannelTitle: "Mango"})

		subs := s.List()
		assert.Equal(t, []string{"Alpha", "Mango", "Zebra"}, []string{
			subs[0].ChannelTitle, subs[1].ChannelTitle, subs[2].ChannelTitle,
		})
	})

	t.Run("add existing channel updates title", func(t *testing.T) {
		s := NewSubscriptions()
		s.Add(models.Subscription{ChannelID: "UC1", ChannelTitle: "Old"})
		s.Add(models.Subscription{ChannelID: "UC1", ChannelTitle: "New"})

		assert.Equal(t, 1, s.Len())
		assert.Equal(t, "New", s.List()[0].ChannelTitle)
	})

	t.Run("remove notifies watchers", func(t *testing.T) {
		s := NewSubscriptions()
		s.Add(models.Subscription{ChannelID: "UC1", ChannelTitle: "One"})

		var calls int
		s.Watch(func() { calls++ })

		s.Remove("UC1")
		assert.Equal(t, 1, calls)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("remove absent channel does not notify", func(t *testing.T) {
		s := NewSubscriptions()
		var calls int
		s.Watch(func() { calls++ })

		s.Remove("UC-missing")
		assert.Zero(t, calls)
	})

	t.Run("replace swaps the set", func(t *testing.T) {
		s := NewSubscriptions()
		s.Add(models.Subscription{ChannelID: "UC1", ChannelTitle: "One"})

		s.Replace([]models.Subscription{
			{ChannelID: "UC2", ChannelTitle: "Two"},
			{ChannelID: "UC3", ChannelTitle: "Three"},
		})

		assert.False(t, s.Contains("UC1"))
		assert.True(t, s.Contains("UC2"))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("clear empties the set", func(t *testing.T) {
		s := NewSubscriptions()
		s.Add(models.Subscription{ChannelID: "UC1", ChannelTitle: "One"})
		s.Clear()
		assert.Zero(t, s.Len())
	})
}
