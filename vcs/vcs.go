// Package vcs abstracts version control systems. Currently just git.
package vcs

import (
	"context"
	"fmt"

	"github.com/vclog/vclog/model"
)

// UnavailableError wraps a failed invocation of the underlying VCS. The
// cause is surfaced verbatim.
type UnavailableError struct {
	Err error
}

func (e UnavailableError) Error() string {
	return fmt.Sprintf("vcs: invocation failed: %v", e.Err)
}

func (e UnavailableError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Ref string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("vcs: ref %q not found", e.Ref)
}

type Interface interface {
	// ReadCommits reads commits matching query, newest first. An empty
	// query reads the full history of every ref.
	ReadCommits(ctx context.Context, query string) ([]*model.Commit, error)
	// ReadTags lists tag names, optionally filtered by a glob query.
	ReadTags(ctx context.Context, query string) ([]string, error)
	// ResolveRef resolves a ref name to a commit hash.
	ResolveRef(ctx context.Context, ref string) (string, error)
	// Diff returns the patch between two refs.
	Diff(ctx context.Context, older, newer string) (string, error)
}
