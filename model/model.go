// Package model contains abstract data models.
package model

import "time"

// Commit is one raw log entry as emitted by the VCS.
type Commit struct {
	ID         string `json:"commit"`
	Author     string `json:"author,omitempty"`
	AuthorDate time.Time
	Subject    string `json:"subject"`
	Body       string `json:"body,omitempty"`
}

func (c *Commit) ShortID() string {
	if len(c.ID) < 8 {
		return c.ID
	}
	return c.ID[:8]
}
