// Package audit checks rendered stories against the host application's
// markup conventions: only known class names, and no colour literals in
// inline styles.
package audit

import (
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/alexisbeaulieu97/storyshelf/internal/catalog"
	"github.com/alexisbeaulieu97/storyshelf/internal/components"
	storyerrors "github.com/alexisbeaulieu97/storyshelf/pkg/errors"
)

// HostClasses is the class vocabulary used by the host application templates.
var HostClasses = []string{
	"alert", "alert--error", "alert--info", "alert--success", "alert--warning", "alert-list",
	"btn", "btn--danger", "btn--primary", "btn--secondary", "btn--success",
	"card", "container-card", "errorlist",
	"form-group", "form-helptext", "form-input", "form-label",
	"heading-2", "heading-3", "link",
	"nav", "nav--dark", "nav__link", "nav__link--active",
}

// Kind classifies a finding.
type Kind string

const (
	KindClass   Kind = "class"
	KindLiteral Kind = "literal"
)

// Finding is one convention violation inside a story.
type Finding struct {
	StoryID string `json:"story"`
	Kind    Kind   `json:"kind"`
	Value   string `json:"value"`
	Element string `json:"element"`
}

// Failure records a story that could not be rendered for auditing.
type Failure struct {
	StoryID string `json:"story"`
	Code    string `json:"code"`
	Key     string `json:"key"`
}

// Report summarises an audit run.
type Report struct {
	Stories  int       `json:"stories"`
	Findings []Finding `json:"findings"`
	Failures []Failure `json:"failures"`
}

// Clean reports whether the run found nothing to fix.
func (r Report) Clean() bool {
	return len(r.Findings) == 0 && len(r.Failures) == 0
}

var colourLiteral = regexp.MustCompile(`#[0-9a-fA-F]{3,8}\b|rgba?\(`)

// Auditor holds the accepted class vocabulary.
type Auditor struct {
	allowed map[string]struct{}
}

// New returns an auditor accepting HostClasses plus extra.
func New(extra ...string) *Auditor {
	a := &Auditor{allowed: make(map[string]struct{}, len(HostClasses)+len(extra))}
	for _, c := range HostClasses {
		a.allowed[c] = struct{}{}
	}
	for _, c := range extra {
		a.allowed[c] = struct{}{}
	}
	return a
}

// Fragment audits a single fragment.
func (a *Auditor) Fragment(id string, f components.Fragment) ([]Finding, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(f)))
	if err != nil {
		return nil, storyerrors.Wrap(storyerrors.CodeRenderFailed, id, err)
	}

	var findings []Finding
	doc.Find("[class]").Each(func(_ int, s *goquery.Selection) {
		for _, class := range strings.Fields(s.AttrOr("class", "")) {
			if _, ok := a.allowed[class]; !ok {
				findings = append(findings, Finding{StoryID: id, Kind: KindClass, Value: class, Element: goquery.NodeName(s)})
			}
		}
	})
	doc.Find("[style]").Each(func(_ int, s *goquery.Selection) {
		for _, lit := range colourLiteral.FindAllString(s.AttrOr("style", ""), -1) {
			findings = append(findings, Finding{StoryID: id, Kind: KindLiteral, Value: lit, Element: goquery.NodeName(s)})
		}
	})
	return findings, nil
}

// Run audits every successful outcome and records failed ones.
func (a *Auditor) Run(outcomes []catalog.Outcome) Report {
	report := Report{Stories: len(outcomes)}
	for _, o := range outcomes {
		if o.Err != nil {
			report.Failures = append(report.Failures, Failure{
				StoryID: o.Ref.ID,
				Code:    string(storyerrors.CodeOf(o.Err)),
				Key:     storyerrors.KeyOf(o.Err),
			})
			continue
		}
		findings, err := a.Fragment(o.Ref.ID, o.Result.Fragment)
		if err != nil {
			report.Failures = append(report.Failures, Failure{StoryID: o.Ref.ID, Code: string(storyerrors.CodeRenderFailed), Key: o.Ref.ID})
			continue
		}
		report.Findings = append(report.Findings, findings...)
	}
	return report
}

// Classes returns the distinct class names used in f, sorted.
func Classes(f components.Fragment) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(f)))
	if err != nil {
		return nil, err
	}
	seen := map[string]struct{}{}
	doc.Find("[class]").Each(func(_ int, s *goquery.Selection) {
		for _, class := range strings.Fields(s.AttrOr("class", "")) {
			seen[class] = struct{}{}
		}
	})
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out, nil
}
