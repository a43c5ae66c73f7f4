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

package config

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/tablerename/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse decodes the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🔄 Replacement is one literal old -> new substitution
type Replacement struct {
	Old   string `json:"old" yaml:"old"`                         // Text to replace, every occurrence
	New   string `json:"new" yaml:"new"`                         // Text to put in its place
	Files string `json:"files,omitempty" yaml:"files,omitempty"` // Optional glob limiting the target files
}

// 📚 Config is everything a rename run needs
type Config struct {
	Root         string        `json:"root,omitempty" yaml:"root,omitempty"` // Directory target paths are relative to
	Replacements []Replacement `json:"replacements" yaml:"replacements"`     // Applied in order
	Files        []string      `json:"files" yaml:"files"`                   // Processed in order
}

// 🏭 Default returns the table rename migration: the jumpstart tables move
// under a jumpstart_ prefix and kickstart_items becomes kickstart_intake.
func Default() *Config {
	return &Config{
		Root: ".",
		Replacements: []Replacement{
			{Old: "from('items')", New: "from('jumpstart_manifest')"},
			{Old: "from('scans')", New: "from('jumpstart_sold_scans')"},
			{Old: "from('sort_log')", New: "from('jumpstart_sort_log')"},
			{Old: "from('bundle_boxes')", New: "from('jumpstart_bundle_boxes')"},
			{Old: "from('bundle_scans')", New: "from('jumpstart_bundle_scans')"},
			{Old: "from('kickstart_items')", New: "from('kickstart_intake')"},
		},
		Files: []string{
			"src/components/AdminDashboard.jsx",
			"src/components/AdminInventory.jsx",
			"src/components/files/AdminInputs.jsx",
			"src/pages/KickstartSort.jsx",
			"src/pages/GeneralSort.jsx",
			"src/pages/BundleSort.jsx",
			"src/pages/SalesScanner.jsx",
		},
	}
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	logger.Debug().
		Int("replacements", len(cfg.Replacements)).
		Int("files", len(cfg.Files)).
		Msg("configuration loaded")

	return cfg, nil
}

// 🔍 Validate checks the configuration. Target paths are kept as written.
func (cfg *Config) Validate() error {
	if len(cfg.Replacements) == 0 {
		return errors.Errorf("replacements are required")
	}
	if len(cfg.Files) == 0 {
		return errors.Errorf("files are required")
	}

	if cfg.Root == "" {
		cfg.Root = "."
	}
	cfg.Root = filepath.Clean(cfg.Root)

	seen := make(map[string]int, len(cfg.Files))
	for i, f := range cfg.Files {
		if strings.TrimSpace(f) == "" {
			return errors.Errorf("files[%d]: path is required", i)
		}
		slashed := filepath.ToSlash(f)
		if filepath.IsAbs(f) || path.IsAbs(slashed) {
			return errors.Errorf("files[%d]: %q must be relative to root", i, f)
		}
		clean := path.Clean(slashed)
		if clean == ".." || strings.HasPrefix(clean, "../") {
			return errors.Errorf("files[%d]: %q escapes root", i, f)
		}
		if prev, ok := seen[clean]; ok {
			return errors.Errorf("files[%d]: %q duplicates files[%d]", i, f, prev)
		}
		seen[clean] = i
	}

	if err := text.NewSimpleTextReplacer().ValidateRules(cfg.Rules()); err != nil {
		return errors.Errorf("replacements: %w", err)
	}

	return nil
}

// Rules converts the replacements into text rules, keeping their order
func (cfg *Config) Rules() []text.ReplacementRule {
	rules := make([]text.ReplacementRule, 0, len(cfg.Replacements))
	for _, r := range cfg.Replacements {
		rules = append(rules, text.ReplacementRule{
			FromText:       r.Old,
			ToText:         r.New,
			FileFilterGlob: r.Files,
		})
	}
	return rules
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	return fmt.Sprintf("%d replacements over %d files in %s", len(cfg.Replacements), len(cfg.Files), cfg.Root)
}
