// Package activity records what happened in the admin area so the dashboard
// can show a short recent-activity feed. Events travel over the in-process
// bus and are kept in memory only.
package activity

import (
	"context"
	"sync"
	"time"

	"github.com/ruebensh/portfolio/internal/middleware"
	"github.com/ruebensh/portfolio/internal/pubsub"
)

// Event kinds.
const (
	KindCreated = "created"
	KindUpdated = "updated"
	KindDeleted = "deleted"
	KindSaved   = "saved"
	KindMessage = "message"
	KindReplied = "replied"
	KindLogin   = "login"
)

// DefaultCapacity is how many events the feed keeps.
const DefaultCapacity = 50

// Event is one admin or visitor action.
type Event struct {
	Kind    string    `json:"kind"`
	Subject string    `json:"subject"`
	At      time.Time `json:"at"`
}

// Topic carries activity events.
var Topic = pubsub.NewEvent[Event]("portfolio.activity")

// Feed is a bounded, newest-first list of events.
type Feed struct {
	mu       sync.Mutex
	events   []Event
	capacity int
}

// NewFeed creates a feed holding at most capacity events.
func NewFeed(capacity int) *Feed {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Feed{capacity: capacity}
}

// Add puts e at the front, dropping the oldest event when full.
func (f *Feed) Add(e Event) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append([]Event{e}, f.events...)
	if len(f.events) > f.capacity {
		f.events = f.events[:f.capacity]
	}
}

// Recent returns up to n events, newest first. n <= 0 returns all of them.
func (f *Feed) Recent(n int) []Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	if n <= 0 || n > len(f.events) {
		n = len(f.events)
	}
	out := make([]Event, n)
	copy(out, f.events[:n])
	return out
}

// Len returns the number of stored events.
func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.events)
}

// Attach subscribes the feed to the activity topic.
func (f *Feed) Attach(ctx context.Context, sub pubsub.Subscriber) error {
	return pubsub.Subscribe(ctx, sub, Topic, func(_ context.Context, e Event) error {
		f.Add(e)
		return nil
	})
}

// Recorder publishes events. Publishing is best effort: a failure is logged
// and never fails the action that caused it.
type Recorder struct {
	pub pubsub.Publisher
	now func() time.Time
}

// NewRecorder creates a recorder publishing on pub.
func NewRecorder(pub pubsub.Publisher) *Recorder {
	return &Recorder{pub: pub, now: time.Now}
}

// Record publishes a kind/subject event stamped with the current time.
func (r *Recorder) Record(ctx context.Context, kind, subject string) {
	e := Event{Kind: kind, Subject: subject, At: r.now().UTC()}
	if err := pubsub.Publish(ctx, r.pub, Topic, e); err != nil {
		middleware.FromContext(ctx).Warn("failed to publish activity", "kind", kind, "error", err)
	}
}
