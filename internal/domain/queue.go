package domain

import "time"

// Mode classifies a collection's publishing cadence.
type Mode string

const (
	// ModeGrowth marks a collection still building inventory; it is
	// scheduled on every eligible planning run.
	ModeGrowth Mode = "growth"
	// ModeMaintenance marks a mature collection refreshed on a rotating
	// weekly cadence.
	ModeMaintenance Mode = "maintenance"
)

func (m Mode) IsValid() bool {
	switch m {
	case ModeGrowth, ModeMaintenance:
		return true
	}
	return false
}

// DispatchPriority is an informational sort hint carried on queue items.
// It never affects dispatch ordering.
func (m Mode) DispatchPriority() int {
	if m == ModeGrowth {
		return 10
	}
	return 5
}

// QueueItem is one planned distribution event. JSON field names match the
// original queue file format so documents written by earlier versions of the
// scheduler remain readable.
type QueueItem struct {
	Collection  string     `json:"collection"`
	BoardName   string     `json:"board_name"`
	Mode        Mode       `json:"mode"`
	Priority    int        `json:"priority"`
	FeedURL     string     `json:"rss_url"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
}

// IsDue reports whether the item should be dispatched at now. Items without
// a scheduled time predate slot assignment and are treated as already due.
func (i QueueItem) IsDue(now time.Time) bool {
	return i.ScheduledAt == nil || !i.ScheduledAt.After(now)
}

// DistributionQueue is the persisted plan: the single durable artifact
// shared between the scheduler and the conductor.
type DistributionQueue struct {
	GeneratedAt time.Time   `json:"generated_at"`
	Queue       []QueueItem `json:"queue"`
}

// Due returns the positions of all items dispatchable at now.
func (q *DistributionQueue) Due(now time.Time) []int {
	var due []int
	for i, item := range q.Queue {
		if item.IsDue(now) {
			due = append(due, i)
		}
	}
	return due
}

// NextScheduled returns the earliest scheduled time strictly after now,
// or nil when no future item exists.
func (q *DistributionQueue) NextScheduled(now time.Time) *time.Time {
	var next *time.Time
	for _, item := range q.Queue {
		if item.ScheduledAt == nil || !item.ScheduledAt.After(now) {
			continue
		}
		if next == nil || item.ScheduledAt.Before(*next) {
			next = item.ScheduledAt
		}
	}
	return next
}

// Without returns a copy of the queue slice with the given positions removed.
// Positions must refer to the current Queue slice.
func (q *DistributionQueue) Without(positions []int) []QueueItem {
	drop := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		drop[p] = struct{}{}
	}
	kept := make([]QueueItem, 0, len(q.Queue))
	for i, item := range q.Queue {
		if _, ok := drop[i]; !ok {
			kept = append(kept, item)
		}
	}
	return kept
}
