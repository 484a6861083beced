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

// Package text holds the literal, marker-gated rewrites applied to Unity
// project files. Nothing here touches the filesystem.
package text

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"gitlab.com/tozd/go/errors"
)

// 🔄 ReplacementRule replaces every occurrence of FromText with ToText
type ReplacementRule struct {
	FromText string
	ToText   string
}

// 🚪 Rewrite applies Rules only to content that contains Marker.
// An empty Marker gates nothing.
type Rewrite struct {
	Marker string
	Rules  []ReplacementRule
}

// 📊 ReplacementResult is the outcome of a single Rewrite.Apply
type ReplacementResult struct {
	OriginalContent  []byte
	ModifiedContent  []byte
	MarkerFound      bool
	WasModified      bool
	ReplacementCount int
}

// ✏️ Apply runs the rewrite over the whole content in one pass per rule.
func (rw Rewrite) Apply(content []byte) *ReplacementResult {
	result := &ReplacementResult{
		OriginalContent: content,
		ModifiedContent: content,
	}

	original := string(content)
	if rw.Marker != "" && !strings.Contains(original, rw.Marker) {
		return result
	}
	result.MarkerFound = true

	current := original
	for _, rule := range rw.Rules {
		if rule.FromText == "" {
			continue
		}
		if n := strings.Count(current, rule.FromText); n > 0 {
			result.ReplacementCount += n
			current = strings.ReplaceAll(current, rule.FromText, rule.ToText)
		}
	}

	if current != original {
		result.WasModified = true
		result.ModifiedContent = []byte(current)
	}

	return result
}

// 🔍 ValidateRules checks that every rule has something to replace
func ValidateRules(rules []ReplacementRule) error {
	for i, rule := range rules {
		if rule.FromText == "" {
			return errors.Errorf("rule %d: from_text is required", i)
		}
	}
	return nil
}

// 📝 Diff renders the change as an inline human-readable diff
func (r *ReplacementResult) Diff() string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(r.OriginalContent), string(r.ModifiedContent), false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	return dmp.DiffPrettyText(diffs)
}

// Delta encodes the change compactly for debug logs.
func (r *ReplacementResult) Delta() string {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(r.OriginalContent), string(r.ModifiedContent), false)
	return dmp.DiffToDelta(diffs)
}
