package commit

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/vclog/vclog/config"
	"github.com/vclog/vclog/vcs"
)

// ErrInsufficientHistory is returned when history holds fewer qualifying
// versions than an operation needs.
var ErrInsufficientHistory = errors.New("commit: need at least two versions in history")

// UnresolvedVersionError is returned when a requested token matches no
// version marker in history.
type UnresolvedVersionError struct {
	Token string
}

func (e UnresolvedVersionError) Error() string {
	return fmt.Sprintf("commit: version %q not found in history", e.Token)
}

// VersionPair is an ordered pair of resolved boundaries. Callers
// supplying explicit tokens own the direction; the pair is never
// reordered on their behalf.
type VersionPair struct {
	Older *Version `json:"older"`
	Newer *Version `json:"newer"`
}

// Resolver enumerates version markers and resolves changelog boundaries.
type Resolver struct {
	cfg config.Config
	vcs vcs.Interface
}

func NewResolver(cfg config.Config, vcs vcs.Interface) *Resolver {
	return &Resolver{cfg: cfg, vcs: vcs}
}

// List returns all version markers in history, newest first.
func (r *Resolver) List(ctx context.Context) ([]*Version, error) {
	vers, err := r.readMarkers(ctx)
	if err != nil {
		return nil, err
	}
	sort.Sort(sort.Reverse(versions(vers)))
	return vers, nil
}

// readMarkers enumerates tags whose names match the version grammar, plus
// commits whose subject line matches it. A tag wins when the same version
// appears as both.
func (r *Resolver) readMarkers(ctx context.Context) ([]*Version, error) {
	tags, err := r.vcs.ReadTags(ctx, "")
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var vers []*Version
	for _, tag := range tags {
		sv, err := ParseVersion(tag)
		if err != nil {
			continue
		}
		key := versionKey(sv)
		if seen[key] {
			continue
		}
		id, err := r.vcs.ResolveRef(ctx, tag)
		if err != nil {
			return nil, err
		}
		seen[key] = true
		vers = append(vers, &Version{Version: sv, Raw: tag, Commit: id})
	}

	commits, err := r.vcs.ReadCommits(ctx, "")
	if err != nil {
		return nil, err
	}
	for _, c := range commits {
		subject := strings.TrimSpace(c.Subject)
		sv, err := ParseVersion(subject)
		if err != nil {
			continue
		}
		key := versionKey(sv)
		if seen[key] {
			continue
		}
		seen[key] = true
		vers = append(vers, &Version{Version: sv, Raw: subject, Commit: c.ID})
	}

	r.cfg.Debugf("found %d version markers", len(vers))
	return vers, nil
}

// Resolve determines the changelog boundaries for the given tokens. With
// no tokens the two highest-precedence markers are used. One token is
// paired with its immediate lower-precedence neighbor. Two tokens resolve
// directly, in caller order.
func (r *Resolver) Resolve(ctx context.Context, tokens []string) (*VersionPair, error) {
	vers, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	switch len(tokens) {
	case 0:
		if len(vers) < 2 {
			return nil, ErrInsufficientHistory
		}
		return &VersionPair{Older: vers[1], Newer: vers[0]}, nil
	case 1:
		newer, i := findToken(vers, tokens[0])
		if newer == nil {
			return nil, UnresolvedVersionError{Token: tokens[0]}
		}
		if i+1 >= len(vers) {
			return nil, ErrInsufficientHistory
		}
		return &VersionPair{Older: vers[i+1], Newer: newer}, nil
	case 2:
		older, _ := findToken(vers, tokens[0])
		if older == nil {
			return nil, UnresolvedVersionError{Token: tokens[0]}
		}
		newer, _ := findToken(vers, tokens[1])
		if newer == nil {
			return nil, UnresolvedVersionError{Token: tokens[1]}
		}
		return &VersionPair{Older: older, Newer: newer}, nil
	}
	return nil, fmt.Errorf("commit: expected at most 2 version tokens, got %d", len(tokens))
}

// findToken matches a requested token against the sorted markers, first
// verbatim, then by normalized version equality so v1.2.3 finds a marker
// recorded as 1.2.3.
func findToken(vers []*Version, token string) (*Version, int) {
	sv, parseErr := ParseVersion(token)
	for i, v := range vers {
		if v.Raw == token {
			return v, i
		}
		if parseErr == nil && versionKey(v.Version) == versionKey(sv) {
			return v, i
		}
	}
	return nil, -1
}
