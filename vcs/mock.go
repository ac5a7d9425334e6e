package vcs

import (
	"context"
	"strings"
	"time"

	"github.com/vclog/vclog/model"
)

// Mock implements Interface in memory. Commits are stored newest first,
// like git log emits them.
type Mock struct {
	t       time.Time
	tags    []string
	tagRefs map[string]string
	commits []*model.Commit
	diff    string
}

func NewMock() *Mock {
	return &Mock{
		t:       time.Now(),
		tagRefs: make(map[string]string),
	}
}

func (m *Mock) SetTags(tags ...string) *Mock {
	m.tags = tags
	return m
}

// SetTagRef maps a tag name to a commit hash. Unmapped tags resolve to
// their own name.
func (m *Mock) SetTagRef(tag, id string) *Mock {
	m.tagRefs[tag] = id
	return m
}

func (m *Mock) SetCommits(commits ...*model.Commit) *Mock {
	finalCommits := make([]*model.Commit, len(commits))
	for i, commit := range commits {
		c := *commit
		if c.AuthorDate.IsZero() {
			c.AuthorDate = m.t
			m.t = m.t.Add(-time.Minute)
		}
		finalCommits[i] = &c
	}
	m.commits = finalCommits
	return m
}

func (m *Mock) SetDiff(diff string) *Mock {
	m.diff = diff
	return m
}

func (m *Mock) ReadTags(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return m.tags, nil
	}
	var tags []string
	for _, t := range m.tags {
		if globMatches(t, query) {
			tags = append(tags, t)
		}
	}
	return tags, nil
}

// ReadCommits understands the empty query (full history) and an
// "old..new" hash range, which returns the commits reachable from new
// but not old: newest first, excluding old, including new.
func (m *Mock) ReadCommits(ctx context.Context, query string) ([]*model.Commit, error) {
	if query == "" {
		return m.commits, nil
	}
	older, newer, ok := strings.Cut(query, "..")
	if !ok {
		return m.commits, nil
	}

	start := 0
	if i := m.indexOf(newer); i >= 0 {
		start = i
	}
	end := len(m.commits)
	if i := m.indexOf(older); i >= 0 {
		end = i
	}
	if start > end {
		return nil, nil
	}
	return m.commits[start:end], nil
}

func (m *Mock) indexOf(id string) int {
	for i, c := range m.commits {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (m *Mock) ResolveRef(ctx context.Context, ref string) (string, error) {
	if id, ok := m.tagRefs[ref]; ok {
		return id, nil
	}
	for _, t := range m.tags {
		if t == ref {
			return ref, nil
		}
	}
	if i := m.indexOf(ref); i >= 0 {
		return ref, nil
	}
	return "", NotFoundError{Ref: ref}
}

func (m *Mock) Diff(ctx context.Context, older, newer string) (string, error) {
	return m.diff, nil
}

func globMatches(s string, glob string) bool {
	parts := strings.Split(glob, "*")
	remaining := s
	for {
		if len(parts) == 0 {
			break
		}
		part := parts[0]
		parts = parts[1:]

		if !strings.HasPrefix(remaining, part) {
			return false
		}
		remaining = strings.TrimPrefix(remaining, part)
	}
	if len(glob) > 0 && glob[len(glob)-1] == '*' {
		return true
	}
	return remaining == ""
}
