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

	"github.com/walteh/tablerename/pkg/config"
	"github.com/walteh/tablerename/pkg/log"
	"github.com/walteh/tablerename/pkg/text"
	"github.com/walteh/tablerename/pkg/workspace"
	"gitlab.com/tozd/go/errors"
)

// 🎯 Operation is a unit of work the runner executes
type Operation interface {
	// Name identifies the operation in logs
	Name() string
	// Execute runs the operation to completion
	Execute(ctx context.Context) error
}

// 🔧 Options contains what an operation works with
type Options struct {
	// Config is the validated run configuration
	Config *config.Config
	// Files reads and writes target files
	Files workspace.Files
	// Replacer transforms content, defaults to text.SimpleTextReplacer
	Replacer text.TextReplacer
	// Logger prints status lines, defaults to the logger carried by the context
	Logger *log.Logger
}

// 📦 BaseOperation holds the options shared by all operations
type BaseOperation struct {
	Options
}

// 🏗️ NewBaseOperation fills in defaults and checks required options
func NewBaseOperation(opts Options) (BaseOperation, error) {
	if opts.Config == nil {
		return BaseOperation{}, errors.Errorf("config is required")
	}
	if opts.Files == nil {
		return BaseOperation{}, errors.Errorf("files are required")
	}
	if opts.Replacer == nil {
		opts.Replacer = text.NewSimpleTextReplacer()
	}
	return BaseOperation{Options: opts}, nil
}

// statusLogger returns the configured logger, or the one stored in ctx
func (o BaseOperation) statusLogger(ctx context.Context) (*log.Logger, error) {
	if o.Logger != nil {
		return o.Logger, nil
	}
	if l, ok := log.FromContext(ctx); ok {
		return l, nil
	}
	return nil, errors.Errorf("logger is required")
}
