// Package testutil times subtests and prints a per-suite summary.
package testutil

import (
	"fmt"
	"testing"
	"time"
)

type Result struct {
	Name     string
	Duration time.Duration
	Passed   bool
}

// Suite collects subtest results for one top-level test.
type Suite struct {
	name    string
	results []Result
}

// NewSuite registers PrintSummary as a cleanup on t.
func NewSuite(t *testing.T, name string) *Suite {
	s := &Suite{name: name}
	t.Cleanup(s.PrintSummary)
	return s
}

// Run wraps t.Run and records how long the subtest took and whether it passed.
func (s *Suite) Run(t *testing.T, name string, fn func(t *testing.T)) bool {
	return t.Run(name, func(t *testing.T) {
		start := time.Now()
		defer func() {
			s.results = append(s.results, Result{
				Name:     name,
				Duration: time.Since(start),
				Passed:   !t.Failed(),
			})
		}()
		fn(t)
	})
}

func (s *Suite) Passed() int {
	n := 0
	for _, r := range s.results {
		if r.Passed {
			n++
		}
	}
	return n
}

func (s *Suite) PrintSummary() {
	if len(s.results) == 0 {
		return
	}
	var total time.Duration
	for _, r := range s.results {
		total += r.Duration
	}
	passed := s.Passed()

	fmt.Printf("\n📊 %s: %d/%d passed in %v\n", s.name, passed, len(s.results), total)
	for _, r := range s.results {
		status := "✅"
		if !r.Passed {
			status = "❌"
		}
		fmt.Printf("   %s %s: %v\n", status, r.Name, r.Duration)
	}
}
