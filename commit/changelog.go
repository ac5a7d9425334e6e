package commit

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/template"
)

// Format selects a changelog rendering.
type Format string

const (
	FormatText     Format = "text"
	FormatMarkdown Format = "md"
)

func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, "":
		return FormatText, nil
	case FormatMarkdown:
		return FormatMarkdown, nil
	}
	return "", fmt.Errorf("commit: unknown format %q (expected text or md)", s)
}

// Group holds the entries for a single category, in extraction order.
type Group struct {
	Category Category `json:"category"`
	Entries  []*Entry `json:"entries"`
}

func (g *Group) Info() CategoryInfo { return g.Category.Info() }

// Changelog is the final artifact: the resolved boundaries, every
// classified entry in chronological order, and the non-empty groups in
// canonical category order. It is purely a rendering input once
// assembled.
type Changelog struct {
	Pair    *VersionPair `json:"pair"`
	Entries []*Entry     `json:"entries"`
	Groups  []*Group     `json:"groups"`
	Summary string       `json:"summary,omitempty"`
}

// Assemble partitions classified entries into canonically ordered groups.
// Empty categories are dropped; entry order inside a group is the order
// given, which extraction guarantees is chronological.
func Assemble(pair *VersionPair, entries []*Entry) *Changelog {
	byCat := make(map[Category][]*Entry)
	for _, e := range entries {
		byCat[e.Category] = append(byCat[e.Category], e)
	}

	cl := &Changelog{Pair: pair, Entries: entries}
	for _, cat := range CategoryOrder {
		if len(byCat[cat]) == 0 {
			continue
		}
		cl.Groups = append(cl.Groups, &Group{Category: cat, Entries: byCat[cat]})
	}
	return cl
}

const textTemplate = `Changelog: {{ .Pair.Older }} → {{ .Pair.Newer }}
{{ range .Groups }}
{{ .Info.Icon }} {{ .Info.Label }}:
{{- range .Entries }}
  - {{ .Text }}
{{- end }}
{{ end }}`

const markdownTemplate = `## Changelog: {{ .Pair.Older }} → {{ .Pair.Newer }}
{{ range .Groups }}
### {{ .Info.Icon }} {{ .Info.Label }}:
{{- range .Entries }}
- {{ .Text }}
{{- end }}
{{ end }}`

var (
	textTmpl     = template.Must(template.New("text").Parse(textTemplate))
	markdownTmpl = template.Must(template.New("markdown").Parse(markdownTemplate))
)

// Render writes the changelog in the requested format. When an AI summary
// is present it replaces the assembled rendering entirely.
func (c *Changelog) Render(w io.Writer, f Format) error {
	if c.Summary != "" {
		_, err := io.WriteString(w, strings.TrimRight(c.Summary, "\n")+"\n")
		return err
	}
	t := textTmpl
	if f == FormatMarkdown {
		t = markdownTmpl
	}
	return t.Execute(w, c)
}

func (c *Changelog) RenderString(f Format) (string, error) {
	b := &bytes.Buffer{}
	if err := c.Render(b, f); err != nil {
		return "", err
	}
	return b.String(), nil
}
