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

package operation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🏃 OperationRunner executes operations one after another
type OperationRunner struct {
	logger *zerolog.Logger
	newID  func() string
}

// 🏗️ NewRunner creates a new runner
func NewRunner(logger *zerolog.Logger) *OperationRunner {
	return &OperationRunner{
		logger: logger,
		newID:  uuid.NewString,
	}
}

// 🏃 Run executes the operations in order and stops at the first error.
// Every log event written during the run carries the same run_id.
func (r *OperationRunner) Run(ctx context.Context, ops ...Operation) error {
	logger := r.logger.With().Str("run_id", r.newID()).Logger()
	ctx = logger.WithContext(ctx)

	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("operation %s not started: %w", op.Name(), err)
		}

		start := time.Now()
		logger.Debug().Str("operation", op.Name()).Msg("starting operation")

		if err := op.Execute(ctx); err != nil {
			logger.Error().Err(err).Str("operation", op.Name()).Dur("took", time.Since(start)).Msg("operation failed")
			return errors.Errorf("running %s: %w", op.Name(), err)
		}

		logger.Debug().Str("operation", op.Name()).Dur("took", time.Since(start)).Msg("operation complete")
	}

	return nil
}
