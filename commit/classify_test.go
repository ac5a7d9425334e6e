package commit

import (
	"testing"

	"github.com/vclog/vclog/model"
)

func TestClassify(t *testing.T) {
	tcs := []struct {
		name        string
		subject     string
		category    Category
		scope       string
		description string
	}{
		{
			name:        "feat-scoped",
			subject:     "feat(sync): exclude post-ad videos",
			category:    CategoryFeatures,
			scope:       "sync",
			description: "exclude post-ad videos",
		},
		{
			name:        "fix-scoped",
			subject:     "fix(offline): increase upload timeout to 120 seconds",
			category:    CategoryBugFixes,
			scope:       "offline",
			description: "increase upload timeout to 120 seconds",
		},
		{
			name:        "perf-scoped",
			subject:     "perf(placeholder): add caching mechanism for same URL and duration",
			category:    CategoryPerformance,
			scope:       "placeholder",
			description: "add caching mechanism for same URL and duration",
		},
		{
			name:        "feat-no-scope",
			subject:     "feat: cool feature",
			category:    CategoryFeatures,
			description: "cool feature",
		},
		{
			name:        "case-insensitive-type",
			subject:     "Fix: broken link",
			category:    CategoryBugFixes,
			description: "broken link",
		},
		{
			name:        "breaking-bang",
			subject:     "feat(api)!: remove v1 endpoints",
			category:    CategoryFeatures,
			scope:       "api",
			description: "remove v1 endpoints",
		},
		{
			name:        "build-is-chore",
			subject:     "build: bump gradle",
			category:    CategoryChores,
			description: "bump gradle",
		},
		{
			name:        "ci-is-chore",
			subject:     "ci: cache docker layers",
			category:    CategoryChores,
			description: "cache docker layers",
		},
		{
			name:        "refactor",
			subject:     "refactor(player): split controller",
			category:    CategoryRefactoring,
			scope:       "player",
			description: "split controller",
		},
		{
			name:        "docs",
			subject:     "docs: add install section",
			category:    CategoryDocumentation,
			description: "add install section",
		},
		{
			name:        "test",
			subject:     "test(sync): cover retry path",
			category:    CategoryTests,
			scope:       "sync",
			description: "cover retry path",
		},
		{
			name:        "unknown-type",
			subject:     "style(ui): reindent",
			category:    CategoryOther,
			scope:       "ui",
			description: "reindent",
		},
		{
			name:        "no-grammar-match",
			subject:     "updated readme",
			category:    CategoryOther,
			description: "updated readme",
		},
		{
			name:        "colon-without-space",
			subject:     "fix:missing space",
			category:    CategoryOther,
			description: "fix:missing space",
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			e := Classify(&model.Commit{ID: "deadbeef", Subject: tc.subject})
			if e.Category != tc.category {
				t.Errorf("expected category %s, got %s", tc.category, e.Category)
			}
			if e.Scope != tc.scope {
				t.Errorf("expected scope %q, got %q", tc.scope, e.Scope)
			}
			if e.Description != tc.description {
				t.Errorf("expected description %q, got %q", tc.description, e.Description)
			}
			if e.Raw != tc.subject {
				t.Errorf("expected raw line preserved, got %q", e.Raw)
			}
		})
	}
}

func TestEntryText(t *testing.T) {
	e := &Entry{Scope: "sync", Description: "exclude post-ad videos"}
	if got := e.Text(); got != "sync: exclude post-ad videos" {
		t.Fatalf("unexpected text: %q", got)
	}
	e = &Entry{Description: "cool feature"}
	if got := e.Text(); got != "cool feature" {
		t.Fatalf("unexpected text: %q", got)
	}
}

func TestCategoryForType(t *testing.T) {
	if c := CategoryForType("FEAT"); c != CategoryFeatures {
		t.Fatalf("expected case-insensitive match, got %s", c)
	}
	if c := CategoryForType("bananas"); c != CategoryOther {
		t.Fatalf("expected fallthrough to Other, got %s", c)
	}
}
