// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package status

import (
	"fmt"
)

// 📊 Status is the outcome for a single target path
type Status int

const (
	StatusUnknown   Status = iota
	StatusSkip             // Nothing exists at the path
	StatusUpdated          // Content changed and was written
	StatusUnchanged        // Content matched no rule
)

// DoneLine is printed once every target path has been processed
const DoneLine = "Done!"

// String returns the label printed in front of the path
func (s Status) String() string {
	switch s {
	case StatusSkip:
		return "SKIP"
	case StatusUpdated:
		return "UPDATED"
	case StatusUnchanged:
		return "NO CHANGE"
	default:
		return "UNKNOWN"
	}
}

// Line formats the status line for path
func Line(s Status, path string) string {
	return fmt.Sprintf("%s: %s", s, path)
}

// 📄 Result is what happened to one target path
type Result struct {
	Path         string // Target path as configured
	Status       Status // Outcome
	Replacements int    // Occurrences replaced, zero unless Updated
}

// String returns the status line for the result
func (r Result) String() string {
	return Line(r.Status, r.Path)
}

// 📈 Summary counts results by status
type Summary struct {
	Skipped      int
	Updated      int
	Unchanged    int
	Replacements int
}

// Add records one result
func (s *Summary) Add(r Result) {
	switch r.Status {
	case StatusSkip:
		s.Skipped++
	case StatusUpdated:
		s.Updated++
	case StatusUnchanged:
		s.Unchanged++
	}
	s.Replacements += r.Replacements
}

// Total returns the number of results recorded
func (s Summary) Total() int {
	return s.Skipped + s.Updated + s.Unchanged
}

// String returns a one line summary
func (s Summary) String() string {
	return fmt.Sprintf("%d files: %d updated, %d unchanged, %d skipped, %d replacements",
		s.Total(), s.Updated, s.Unchanged, s.Skipped, s.Replacements)
}

// Summarize builds a Summary from results
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		s.Add(r)
	}
	return s
}
