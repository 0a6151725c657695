// Package stats provides lightweight in-process counters for
// memoizers.
//
// A [Collector] implements memo.Observer and tallies hits, misses,
// and failures with atomic counters. Collectors register in a
// [Registry], and [Handler] serves a JSON snapshot of every
// registered memoizer over HTTP for quick inspection without a
// metrics pipeline.
package stats
