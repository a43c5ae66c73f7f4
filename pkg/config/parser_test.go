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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 🧪 TestParserRegistration tests the parser registration system
func TestParserRegistration(t *testing.T) {
	originalParsers := parsers
	defer func() {
		parsers = originalParsers
	}()

	parsers = nil

	mockParser := &struct {
		Parser
	}{}

	Register(mockParser)
	assert.Len(t, parsers, 1, "should have 1 parser registered")
	assert.Equal(t, mockParser, parsers[0], "registered parser should match")
}

// 🧪 TestParserSelection tests parser selection by file extension
func TestParserSelection(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     Parser
	}{
		{name: "yaml_file", filename: "tablerename.yaml", want: &YAMLParser{}},
		{name: "yml_file", filename: "tablerename.yml", want: &YAMLParser{}},
		{name: "json_file", filename: "tablerename.json", want: &JSONParser{}},
		{name: "json_upper", filename: "TABLERENAME.JSON", want: &JSONParser{}},
		{name: "hcl_file", filename: "tablerename.hcl", want: &HCLParser{}},
		{name: "unknown_extension", filename: "tablerename.txt", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := GetParser(tt.filename)
			if tt.want == nil {
				assert.Nil(t, got, "should return nil for unknown extension")
				return
			}
			require.NotNil(t, got, "should return a parser")
			assert.IsType(t, tt.want, got, "should return correct parser type")
		})
	}
}

// 🧪 TestHCLParsing tests HCL config parsing
func TestHCLParsing(t *testing.T) {
	tests := []struct {
		name        string
		config      string
		errContains string
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "valid_hcl",
			config: `
root  = "web"
files = ["src/pages/KickstartSort.jsx"]

replacement {
  old = "from('kickstart_items')"
  new = "from('kickstart_intake')"
}
`,
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "web", cfg.Root)
				assert.Equal(t, []string{"src/pages/KickstartSort.jsx"}, cfg.Files)
				assert.Equal(t, []Replacement{{Old: "from('kickstart_items')", New: "from('kickstart_intake')"}}, cfg.Replacements)
			},
		},
		{
			name: "invalid_hcl_syntax",
			config: `
files = [
replacement {
`,
			errContains: "parsing HCL",
		},
		{
			name: "invalid_block_type",
			config: `
files = []
unknown_block {
  foo = "bar"
}`,
			errContains: "decoding HCL",
		},
	}

	parser := &HCLParser{}
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parser.Parse(ctx, []byte(tt.config))
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestParseEnv(t *testing.T) {
	e, err := ParseEnvFrom(map[string]string{
		"TABLERENAME_ROOT":   "/srv/app",
		"TABLERENAME_CONFIG": "rename.yaml",
		"TABLERENAME_DEBUG":  "true",
	})
	require.NoError(t, err)
	assert.Equal(t, Env{Root: "/srv/app", Config: "rename.yaml", Debug: true}, e)

	cfg := Default()
	e.Apply(cfg)
	assert.Equal(t, "/srv/app", cfg.Root)

	cfg = Default()
	Env{}.Apply(cfg)
	assert.Equal(t, ".", cfg.Root, "empty env leaves root alone")

	_, err = ParseEnvFrom(map[string]string{"TABLERENAME_DEBUG": "sometimes"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing environment")
}
