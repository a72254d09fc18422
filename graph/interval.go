// SPDX-License-Identifier: MIT
// Package: credrank/graph
//
// interval.go — contiguous time interval sequences.
//
// An interval sequence partitions a span of time into consecutive epochs:
// each interval must start where the previous one ended, and every interval
// must have positive length. The builder derives its time boundaries from
// the interval start times.

package graph

import "fmt"

// Interval is a half-open time span [StartTimeMs, EndTimeMs).
type Interval struct {
	StartTimeMs int64
	EndTimeMs   int64
}

// Intervals is an ordered, contiguous interval sequence.
type Intervals []Interval

// Validate checks ordering, positive length, and contiguity.
// Returns ErrBadInterval (wrapped with the offending index) on violation.
func (iv Intervals) Validate() error {
	for i, span := range iv {
		if span.EndTimeMs <= span.StartTimeMs {
			return fmt.Errorf("interval %d [%d,%d) has non-positive length: %w",
				i, span.StartTimeMs, span.EndTimeMs, ErrBadInterval)
		}
		if i > 0 && iv[i-1].EndTimeMs != span.StartTimeMs {
			return fmt.Errorf("interval %d starts at %d, previous ends at %d: %w",
				i, span.StartTimeMs, iv[i-1].EndTimeMs, ErrBadInterval)
		}
	}
	return nil
}

// StartTimes returns the interval start times in order.
func (iv Intervals) StartTimes() []int64 {
	out := make([]int64, len(iv))
	for i, span := range iv {
		out[i] = span.StartTimeMs
	}
	return out
}
