// Package store keeps the in-memory subscription set for the current
// session. Mutations happen only after the backend confirms them, and
// watchers are notified so dependent views can re-render.
package store

import (
	"sort"
	"sync"

	"github.com/desertthunder/vidsum/internal/models"
)

// Subscriptions is an observable set of channel subscriptions keyed by
// channel ID.
type Subscriptions struct {
	mu       sync.RWMutex
	byID     map[string]models.Subscription
	watchers []func()
}

func NewSubscriptions() *Subscriptions {
	return &Subscriptions{byID: make(map[string]models.Subscription)}
}

// Watch registers a callback invoked after every change to the set.
// Callbacks run synchronously on the mutating goroutine.
func (s *Subscriptions) Watch(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.watchers = append(s.watchers, fn)
}

// Replace swaps the entire set for a fresh server-provided listing.
func (s *Subscriptions) Replace(subs []models.Subscription) {
	s.mu.Lock()
	s.byID = make(map[string]models.Subscription, len(subs))
	for _, sub := range subs {
		s.byID[sub.ChannelID] = sub
	}
	s.mu.Unlock()
	s.notify()
}

// Add inserts a confirmed subscription. Adding an already-present
// channel updates its title.
func (s *Subscriptions) Add(sub models.Subscription) {
	s.mu.Lock()
	s.byID[sub.ChannelID] = sub
	s.mu.Unlock()
	s.notify()
}

// Remove drops a subscription by channel ID. Removing an absent channel
// is a no-op and does not notify watchers.
func (s *Subscriptions) Remove(channelID string) {
	s.mu.Lock()
	if _, ok := s.byID[channelID]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.byID, channelID)
	s.mu.Unlock()
	s.notify()
}

// Contains reports whether the channel is in the set.
func (s *Subscriptions) Contains(channelID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byID[channelID]
	return ok
}

// Len returns the number of subscriptions.
func (s *Subscriptions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// List returns the subscriptions sorted by channel title, which is the
// order the channel filter dropdown presents them in.
func (s *Subscriptions) List() []models.Subscription {
	s.mu.RLock()
	subs := make([]models.Subscription, 0, len(s.byID))
	for _, sub := range s.byID {
		subs = append(subs, sub)
	}
	s.mu.RUnlock()

	sort.Slice(subs, func(i, j int) bool {
		return subs[i].ChannelTitle < subs[j].ChannelTitle
	})
	return subs
}

// Clear empties the set, used when the session signs out.
func (s *Subscriptions) Clear() {
	s.mu.Lock()
	s.byID = make(map[string]models.Subscription)
	s.mu.Unlock()
	s.notify()
}

func (s *Subscriptions) notify() {
	s.mu.RLock()
	watchers := make([]func(), len(s.watchers))
	copy(watchers, s.watchers)
	s.mu.RUnlock()

	for _, fn := range watchers {
		fn()
	}
}
