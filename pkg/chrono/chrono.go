// Package chrono holds the small pieces of calendar arithmetic the rest of
// the system relies on: patient ages and appointment day bucketing.
package chrono

import (
	"fmt"
	"time"
)

// Age returns completed years between dob and now. The birthday itself counts:
// someone born 2000-06-15 turns 24 on 2024-06-15, not the day after.
func Age(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	anniversary := time.Date(now.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, now.Location())
	if now.Before(anniversary) {
		years--
	}
	return years
}

// Bucket classifies an appointment relative to a reference day.
type Bucket string

const (
	BucketUpcoming      Bucket = "upcoming"
	BucketPast          Bucket = "past"
	BucketToday         Bucket = "today"
	BucketFutureOrToday Bucket = "futureOrToday"
)

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MatchesBucket reports whether t falls in the bucket relative to ref.
// Comparison is by calendar day in ref's zone: t is converted there first, so
// a UTC timestamp late in the evening still lands on the caller's local day.
// An appointment later today is "today", not "upcoming". An unknown bucket is
// an error, not a silent false.
func MatchesBucket(t time.Time, bucket Bucket, ref time.Time) (bool, error) {
	day := startOfDay(t.In(ref.Location()))
	refDay := startOfDay(ref)
	switch bucket {
	case BucketUpcoming:
		return day.After(refDay), nil
	case BucketPast:
		return day.Before(refDay), nil
	case BucketToday:
		return day.Equal(refDay), nil
	case BucketFutureOrToday:
		return !day.Before(refDay), nil
	default:
		return false, fmt.Errorf("unknown bucket: %q", bucket)
	}
}

// ParseAndMatch parses an RFC 3339 timestamp and classifies it. Unparseable
// input is an error; callers decide whether to skip or surface it.
func ParseAndMatch(value string, bucket Bucket, ref time.Time) (bool, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return false, fmt.Errorf("parse time %q: %w", value, err)
	}
	return MatchesBucket(t, bucket, ref)
}

// Partition splits times into past and future-or-today groups relative to
// ref, comparing days in ref's zone. Order within each group follows the
// input.
func Partition(times []time.Time, ref time.Time) (past, futureOrToday []time.Time) {
	refDay := startOfDay(ref)
	for _, t := range times {
		if startOfDay(t.In(ref.Location())).Before(refDay) {
			past = append(past, t)
		} else {
			futureOrToday = append(futureOrToday, t)
		}
	}
	return past, futureOrToday
}
