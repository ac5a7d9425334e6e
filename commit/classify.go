package commit

import (
	"regexp"
	"strings"

	"github.com/vclog/vclog/model"
)

// subjectRE matches conventional commit subjects: type(scope): description.
var subjectRE = regexp.MustCompile(`^(?P<type>[A-Za-z0-9]+)(?P<scope>\([^\)]+\))?!?:\s+(?P<body>.+)$`)

// Entry is a single classified commit. It is never mutated after
// classification.
type Entry struct {
	Category    Category `json:"category"`
	CommitType  string   `json:"commit_type,omitempty"`
	Scope       string   `json:"scope,omitempty"`
	Description string   `json:"description"`
	Raw         string   `json:"raw"`
	ID          string   `json:"commit,omitempty"`
}

// Text returns the entry as it appears in a changelog bullet.
func (e *Entry) Text() string {
	if e.Scope != "" {
		return e.Scope + ": " + e.Description
	}
	return e.Description
}

// Classify parses one commit into a typed entry. Subjects that don't
// match the conventional grammar land in CategoryOther with the full raw
// subject preserved as the description and no scope.
func Classify(c *model.Commit) *Entry {
	m := subjectRE.FindStringSubmatch(c.Subject)
	if m == nil {
		return &Entry{
			Category:    CategoryOther,
			Description: c.Subject,
			Raw:         c.Subject,
			ID:          c.ID,
		}
	}

	typ := strings.ToLower(m[subjectRE.SubexpIndex("type")])
	scope := m[subjectRE.SubexpIndex("scope")]
	scope = strings.TrimSuffix(strings.TrimPrefix(scope, "("), ")")
	return &Entry{
		Category:    CategoryForType(typ),
		CommitType:  typ,
		Scope:       scope,
		Description: m[subjectRE.SubexpIndex("body")],
		Raw:         c.Subject,
		ID:          c.ID,
	}
}
