// Package commit contains code for classifying commits and resolving
// version ranges.
package commit

import "strings"

// Category buckets a commit for changelog display.
type Category int

const (
	_ Category = iota

	CategoryFeatures
	CategoryBugFixes
	CategoryPerformance
	CategoryRefactoring
	CategoryDocumentation
	CategoryTests
	CategoryChores
	CategoryOther
)

func (c Category) String() string {
	switch c {
	case CategoryFeatures:
		return "Features"
	case CategoryBugFixes:
		return "Bug Fixes"
	case CategoryPerformance:
		return "Performance"
	case CategoryRefactoring:
		return "Refactoring"
	case CategoryDocumentation:
		return "Documentation"
	case CategoryTests:
		return "Tests"
	case CategoryChores:
		return "Chores"
	case CategoryOther:
		return "Other"
	case 0:
		return "<INVALID>"
	default:
		return "<UNKNOWN>"
	}
}

// CategoryInfo describes how a category renders in changelog output.
type CategoryInfo struct {
	Icon  string
	Label string
}

var categoryInfos = map[Category]CategoryInfo{
	CategoryFeatures:      {Icon: "✨", Label: "Features"},
	CategoryBugFixes:      {Icon: "🐛", Label: "Bug Fixes"},
	CategoryPerformance:   {Icon: "⚡", Label: "Performance"},
	CategoryRefactoring:   {Icon: "♻️", Label: "Refactoring"},
	CategoryDocumentation: {Icon: "📚", Label: "Documentation"},
	CategoryTests:         {Icon: "🧪", Label: "Tests"},
	CategoryChores:        {Icon: "🔧", Label: "Chores"},
	CategoryOther:         {Icon: "📝", Label: "Other"},
}

func (c Category) Info() CategoryInfo { return categoryInfos[c] }

// CategoryOrder is the canonical order groups appear in rendered output.
// Empty categories are dropped, never reordered.
var CategoryOrder = []Category{
	CategoryFeatures,
	CategoryBugFixes,
	CategoryPerformance,
	CategoryRefactoring,
	CategoryDocumentation,
	CategoryTests,
	CategoryChores,
	CategoryOther,
}

var typeCategories = map[string]Category{
	"feat":     CategoryFeatures,
	"fix":      CategoryBugFixes,
	"perf":     CategoryPerformance,
	"refactor": CategoryRefactoring,
	"docs":     CategoryDocumentation,
	"test":     CategoryTests,
	"chore":    CategoryChores,
	"build":    CategoryChores,
	"ci":       CategoryChores,
}

// CategoryForType maps a conventional commit type token to its category.
// The match is case-insensitive; unknown tokens map to CategoryOther.
func CategoryForType(token string) Category {
	if c, ok := typeCategories[strings.ToLower(token)]; ok {
		return c
	}
	return CategoryOther
}
