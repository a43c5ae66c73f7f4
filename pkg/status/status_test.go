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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name   string
		status Status
		path   string
		want   string
	}{
		{name: "skip", status: StatusSkip, path: "src/pages/BundleSort.jsx", want: "SKIP: src/pages/BundleSort.jsx"},
		{name: "updated", status: StatusUpdated, path: "src/pages/BundleSort.jsx", want: "UPDATED: src/pages/BundleSort.jsx"},
		{name: "unchanged", status: StatusUnchanged, path: "src/pages/BundleSort.jsx", want: "NO CHANGE: src/pages/BundleSort.jsx"},
		{name: "unknown", status: StatusUnknown, path: "x", want: "UNKNOWN: x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Line(tt.status, tt.path))
			assert.Equal(t, tt.want, Result{Path: tt.path, Status: tt.status}.String())
		})
	}
}

func TestSummary(t *testing.T) {
	results := []Result{
		{Path: "a", Status: StatusSkip},
		{Path: "b", Status: StatusUpdated, Replacements: 3},
		{Path: "c", Status: StatusUnchanged},
		{Path: "d", Status: StatusUpdated, Replacements: 1},
	}

	sum := Summarize(results)
	assert.Equal(t, Summary{Skipped: 1, Updated: 2, Unchanged: 1, Replacements: 4}, sum)
	assert.Equal(t, 4, sum.Total())
	assert.Equal(t, "4 files: 2 updated, 1 unchanged, 1 skipped, 4 replacements", sum.String())
}
