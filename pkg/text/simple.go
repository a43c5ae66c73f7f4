package text

import (
	"context"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"gitlab.com/tozd/go/errors"
)

// SimpleTextReplacer implements TextReplacer using literal string replacement
type SimpleTextReplacer struct{}

// NewSimpleTextReplacer creates a new SimpleTextReplacer
func NewSimpleTextReplacer() *SimpleTextReplacer {
	return &SimpleTextReplacer{}
}

// ReplaceText implements TextReplacer.ReplaceText
func (r *SimpleTextReplacer) ReplaceText(ctx context.Context, content io.Reader, rules []ReplacementRule) (*ReplacementResult, error) {
	originalContent, err := io.ReadAll(content)
	if err != nil {
		return nil, errors.Errorf("reading content: %w", err)
	}

	result := &ReplacementResult{
		OriginalContent: originalContent,
		ModifiedContent: originalContent,
	}

	currentContent := string(originalContent)
	for _, rule := range rules {
		if rule.FromText == "" {
			continue
		}

		n := strings.Count(currentContent, rule.FromText)
		if n == 0 {
			continue
		}

		currentContent = strings.ReplaceAll(currentContent, rule.FromText, rule.ToText)
		result.ReplacementCount += n
	}

	// a rule mapping text onto itself counts but changes nothing
	result.WasModified = currentContent != string(originalContent)
	if result.WasModified {
		result.ModifiedContent = []byte(currentContent)
	}

	return result, nil
}

// ValidateRules implements TextReplacer.ValidateRules.
//
// Besides the per-rule checks, replacement output must never be matchable
// again: no FromText may occur inside any ToText or overlap either end of it,
// and no ToText may occur inside any FromText. ToText must be non-empty, since
// a deletion can join its neighbours into a new match.
func (r *SimpleTextReplacer) ValidateRules(rules []ReplacementRule) error {
	var problems []string

	seen := make(map[string]int, len(rules))
	for i, rule := range rules {
		if rule.FromText == "" {
			problems = append(problems, fmt.Sprintf("rule %d: from_text is required", i))
			continue
		}
		if rule.ToText == "" {
			problems = append(problems, fmt.Sprintf("rule %d: to_text is required, deleting %q can join text into a new match", i, rule.FromText))
		}
		if prev, ok := seen[rule.FromText]; ok {
			problems = append(problems, fmt.Sprintf("rule %d: from_text %q duplicates rule %d", i, rule.FromText, prev))
		} else {
			seen[rule.FromText] = i
		}
		if rule.FileFilterGlob != "" && !doublestar.ValidatePattern(rule.FileFilterGlob) {
			problems = append(problems, fmt.Sprintf("rule %d: file_filter_glob %q is not a valid pattern", i, rule.FileFilterGlob))
		}
	}

	for i, a := range rules {
		if a.FromText == "" {
			continue
		}
		for j, b := range rules {
			if b.ToText == "" {
				continue
			}
			switch {
			case strings.Contains(b.ToText, a.FromText):
				problems = append(problems, fmt.Sprintf("rule %d: from_text %q occurs in to_text of rule %d", i, a.FromText, j))
			case strings.Contains(a.FromText, b.ToText):
				problems = append(problems, fmt.Sprintf("rule %d: from_text %q contains to_text of rule %d", i, a.FromText, j))
			default:
				if k := edgeOverlap(b.ToText, a.FromText); k > 0 {
					problems = append(problems, fmt.Sprintf("rule %d: from_text %q starts with %q, which ends to_text of rule %d", i, a.FromText, a.FromText[:k], j))
				}
				if k := edgeOverlap(a.FromText, b.ToText); k > 0 {
					problems = append(problems, fmt.Sprintf("rule %d: from_text %q ends with %q, which starts to_text of rule %d", i, a.FromText, a.FromText[len(a.FromText)-k:], j))
				}
			}
		}
	}

	if len(problems) > 0 {
		return errors.Errorf("invalid replacement rules: %s", strings.Join(problems, "; "))
	}
	return nil
}

// edgeOverlap returns the length of the longest proper suffix of left that is
// also a proper prefix of right, or 0.
func edgeOverlap(left, right string) int {
	limit := min(len(left), len(right)) - 1
	for k := limit; k > 0; k-- {
		if strings.HasSuffix(left, right[:k]) {
			return k
		}
	}
	return 0
}

// RulesFor returns the rules that apply to path, keeping their order. Globs
// match against the cleaned slash form of path.
func RulesFor(target string, rules []ReplacementRule) ([]ReplacementRule, error) {
	clean := path.Clean(filepath.ToSlash(target))
	out := make([]ReplacementRule, 0, len(rules))
	for _, rule := range rules {
		if rule.FileFilterGlob == "" {
			out = append(out, rule)
			continue
		}
		matched, err := doublestar.Match(rule.FileFilterGlob, clean)
		if err != nil {
			return nil, errors.Errorf("matching %q against %q: %w", target, rule.FileFilterGlob, err)
		}
		if matched {
			out = append(out, rule)
		}
	}
	return out, nil
}
