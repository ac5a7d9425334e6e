// Package runner manages command-line execution.
package runner

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/vclog/vclog/ai"
	"github.com/vclog/vclog/commit"
	"github.com/vclog/vclog/config"
	"github.com/vclog/vclog/vcs"
)

type Runner struct {
	cfg      config.Config
	vcs      vcs.Interface
	resolver *commit.Resolver
}

func New(cfg config.Config, vcs vcs.Interface) *Runner {
	return &Runner{
		cfg:      cfg,
		vcs:      vcs,
		resolver: commit.NewResolver(cfg, vcs),
	}
}

// List returns version markers, newest first, capped at max when max > 0.
func (r *Runner) List(ctx context.Context, max int) ([]*commit.Version, error) {
	vers, err := r.resolver.List(ctx)
	if err != nil {
		return nil, err
	}
	if max > 0 && len(vers) > max {
		vers = vers[:max]
	}
	return vers, nil
}

// Changelog resolves the boundaries for tokens, extracts the commits
// between them and assembles the changelog.
func (r *Runner) Changelog(ctx context.Context, tokens []string) (*commit.Changelog, error) {
	pair, err := r.resolver.Resolve(ctx, tokens)
	if err != nil {
		return nil, err
	}
	entries, err := r.extract(ctx, pair)
	if err != nil {
		return nil, err
	}
	return commit.Assemble(pair, entries), nil
}

// extract reads the log between the pair's boundaries and classifies it.
// git emits newest first; entries are returned oldest first so groups
// keep chronological order. Subjects that are themselves version markers
// are not changelog content.
func (r *Runner) extract(ctx context.Context, pair *commit.VersionPair) ([]*commit.Entry, error) {
	commits, err := r.vcs.ReadCommits(ctx, pair.Older.Commit+".."+pair.Newer.Commit)
	if err != nil {
		return nil, err
	}

	var entries []*commit.Entry
	for i := len(commits) - 1; i >= 0; i-- {
		c := commits[i]
		if commit.IsVersion(strings.TrimSpace(c.Subject)) {
			continue
		}
		entries = append(entries, commit.Classify(c))
	}
	return entries, nil
}

// Summarize runs the AI summarizer over the changelog's commit range. It
// returns ai.Error on any failure; callers fall back to plain rendering.
func (r *Runner) Summarize(ctx context.Context, cl *commit.Changelog) (string, error) {
	client, err := ai.New(r.cfg)
	if err != nil {
		return "", err
	}
	subjects := make([]string, len(cl.Entries))
	for i, e := range cl.Entries {
		subjects[i] = e.Raw
	}
	return client.Summarize(ctx, cl.Pair, subjects)
}

// Diff returns the patch between the resolved boundaries. With no tokens
// it diffs the latest pair.
func (r *Runner) Diff(ctx context.Context, tokens []string) (string, error) {
	pair, err := r.resolver.Resolve(ctx, tokens)
	if err != nil {
		return "", err
	}
	r.cfg.Debugf("diffing %s..%s", pair.Older.ShortCommit(), pair.Newer.ShortCommit())
	return r.vcs.Diff(ctx, pair.Older.Commit, pair.Newer.Commit)
}

// Copy puts rendered output on the system clipboard.
func (r *Runner) Copy(text string) error {
	return clipboard.WriteAll(text)
}
