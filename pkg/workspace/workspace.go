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

// Package workspace provides the file access used by a rename run.
//
// Paths handed to a Files implementation are slash separated and relative to
// the workspace root.
package workspace

import (
	"context"
)

// 💾 Files reads and writes whole files in a workspace
type Files interface {
	// Exists reports whether something exists at path
	Exists(ctx context.Context, path string) (bool, error)

	// ReadFile returns the full content at path
	ReadFile(ctx context.Context, path string) ([]byte, error)

	// WriteFile replaces the full content at path
	WriteFile(ctx context.Context, path string, content []byte) error
}
