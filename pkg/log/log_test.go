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

package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/tablerename/pkg/status"
)

func TestLogger(t *testing.T) {
	console := &bytes.Buffer{}
	structured := &bytes.Buffer{}
	logger := New(console, zerolog.New(structured), nil)
	ctx := context.Background()

	logger.LogFileOperation(ctx, status.Result{Path: "src/pages/GeneralSort.jsx", Status: status.StatusSkip})
	logger.LogFileOperation(ctx, status.Result{Path: "src/pages/BundleSort.jsx", Status: status.StatusUpdated, Replacements: 4})
	logger.LogFileOperation(ctx, status.Result{Path: "src/pages/SalesScanner.jsx", Status: status.StatusUnchanged})
	logger.Done(ctx)

	assert.Equal(t, strings.Join([]string{
		"SKIP: src/pages/GeneralSort.jsx",
		"UPDATED: src/pages/BundleSort.jsx",
		"NO CHANGE: src/pages/SalesScanner.jsx",
		"Done!",
		"",
	}, "\n"), console.String())

	assert.Len(t, logger.Results(), 3)

	lines := strings.Split(strings.TrimSpace(structured.String()), "\n")
	require.Len(t, lines, 4)

	var event map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &event))
	assert.Equal(t, "src/pages/BundleSort.jsx", event["file"])
	assert.Equal(t, "UPDATED", event["status"])
	assert.EqualValues(t, 4, event["replacements"])

	require.NoError(t, json.Unmarshal([]byte(lines[3]), &event))
	assert.Equal(t, "rename complete", event["message"])
	assert.EqualValues(t, 1, event["updated"])
	assert.EqualValues(t, 3, event["files"])
}

func TestLoggerContext(t *testing.T) {
	logger := New(&bytes.Buffer{}, zerolog.Nop(), nil)

	ctx := NewContext(context.Background(), logger)

	got, ok := FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, logger, got, "logger from context should be the same instance")

	_, ok = FromContext(context.Background())
	assert.False(t, ok, "a bare context carries no logger")
}
