package entity

import (
	"sort"
	"time"
)

// UpcomingWindow is how far ahead of now a recurring entry counts as upcoming.
const UpcomingWindow = 24 * time.Hour

// RecurrenceBucket names the group a recurring transaction falls into.
type RecurrenceBucket string

const (
	RecurrenceBucketMissed   RecurrenceBucket = "missed"
	RecurrenceBucketUpcoming RecurrenceBucket = "upcoming"
)

// RecurringBuckets groups active recurring transactions relative to an instant.
type RecurringBuckets struct {
	Missed   []*Transaction // date before now, newest first
	Upcoming []*Transaction // date within [now, now+UpcomingWindow], soonest first
}

// ClassifyRecurring splits transactions into missed and upcoming buckets.
// Only the stored date of each row is considered; future occurrences are
// never projected. Rows whose recurrence ended at or before now are ignored.
func ClassifyRecurring(transactions []*Transaction, now time.Time) RecurringBuckets {
	buckets := RecurringBuckets{
		Missed:   []*Transaction{},
		Upcoming: []*Transaction{},
	}
	horizon := now.Add(UpcomingWindow)

	for _, t := range transactions {
		if !t.IsActiveRecurringAt(now) {
			continue
		}
		switch {
		case t.Date.Before(now):
			buckets.Missed = append(buckets.Missed, t)
		case !t.Date.After(horizon):
			buckets.Upcoming = append(buckets.Upcoming, t)
		}
	}

	sort.SliceStable(buckets.Missed, func(i, j int) bool {
		return buckets.Missed[i].Date.After(buckets.Missed[j].Date)
	})
	sort.SliceStable(buckets.Upcoming, func(i, j int) bool {
		return buckets.Upcoming[i].Date.Before(buckets.Upcoming[j].Date)
	})
	return buckets
}
