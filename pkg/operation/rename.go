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
	"bytes"
	"context"

	"github.com/rs/zerolog"
	"github.com/walteh/tablerename/pkg/status"
	"github.com/walteh/tablerename/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📦 NewRenameOperation creates the rename operation. The config is validated
// here so an overlapping mapping fails before any file is opened.
func NewRenameOperation(opts Options) (Operation, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	if err := base.Config.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	return &renameOperation{
		BaseOperation: base,
		rules:         base.Config.Rules(),
	}, nil
}

// 📦 renameOperation rewrites every configured file in place
type renameOperation struct {
	BaseOperation
	rules []text.ReplacementRule
}

func (op *renameOperation) Name() string {
	return "rename"
}

// 🏃 Execute processes every configured path, in order
func (op *renameOperation) Execute(ctx context.Context) error {
	logger, err := op.statusLogger(ctx)
	if err != nil {
		return err
	}

	for _, path := range op.Config.Files {
		if err := ctx.Err(); err != nil {
			return errors.Errorf("stopped before %s: %w", path, err)
		}

		result, err := op.processFile(ctx, path)
		if err != nil {
			return errors.Errorf("processing %s: %w", path, err)
		}

		logger.LogFileOperation(ctx, result)
	}

	logger.Done(ctx)
	return nil
}

// 📄 processFile handles a single target path
func (op *renameOperation) processFile(ctx context.Context, path string) (status.Result, error) {
	logger := zerolog.Ctx(ctx).With().Str("file", path).Logger()

	exists, err := op.Files.Exists(ctx, path)
	if err != nil {
		return status.Result{}, errors.Errorf("checking existence: %w", err)
	}
	if !exists {
		logger.Debug().Msg("file missing")
		return status.Result{Path: path, Status: status.StatusSkip}, nil
	}

	content, err := op.Files.ReadFile(ctx, path)
	if err != nil {
		return status.Result{}, errors.Errorf("reading: %w", err)
	}

	rules, err := text.RulesFor(path, op.rules)
	if err != nil {
		return status.Result{}, errors.Errorf("selecting rules: %w", err)
	}
	logger.Debug().Int("rules", len(rules)).Int("bytes", len(content)).Msg("applying rules")

	replaced, err := op.Replacer.ReplaceText(ctx, bytes.NewReader(content), rules)
	if err != nil {
		return status.Result{}, errors.Errorf("replacing text: %w", err)
	}

	if !replaced.WasModified {
		return status.Result{Path: path, Status: status.StatusUnchanged}, nil
	}

	if err := op.Files.WriteFile(ctx, path, replaced.ModifiedContent); err != nil {
		return status.Result{}, errors.Errorf("writing: %w", err)
	}

	return status.Result{
		Path:         path,
		Status:       status.StatusUpdated,
		Replacements: replaced.ReplacementCount,
	}, nil
}

// Rename runs the rename operation directly and returns the per-file results
func Rename(ctx context.Context, opts Options) ([]status.Result, error) {
	base, err := NewBaseOperation(opts)
	if err != nil {
		return nil, err
	}
	logger, err := base.statusLogger(ctx)
	if err != nil {
		return nil, err
	}
	opts.Logger = logger

	op, err := NewRenameOperation(opts)
	if err != nil {
		return nil, err
	}
	if err := op.Execute(ctx); err != nil {
		return logger.Results(), err
	}
	return logger.Results(), nil
}
