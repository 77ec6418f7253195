package rendering

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/resume-studio/internal/types"
)

// renderedFacts is what a reader can see in a portfolio: every tagged fact
// plus the targets of every link, in document order.
type renderedFacts struct {
	fields map[string]string
	links  []string
}

func extractFacts(html string) (*renderedFacts, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &RenderError{Message: "failed to parse HTML", Cause: err}
	}

	facts := &renderedFacts{fields: make(map[string]string)}
	doc.Find("[data-field]").Each(func(_ int, s *goquery.Selection) {
		key, _ := s.Attr("data-field")
		facts.fields[key] = strings.TrimSpace(s.Text())
	})
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		facts.links = append(facts.links, href)
	})
	return facts, nil
}

// CheckParity renders a resume through both portfolio renderers with the same
// clock and reports every visible fact or link on which they disagree.
func CheckParity(m *types.ResumeModel, templateID string) error {
	clock := FixedClock(SystemClock{}.Now())
	interactive := NewInteractive(clock).RenderHTML(m, templateID, nil)
	static, err := NewStatic(clock).Render(m, templateID)
	if err != nil {
		return err
	}
	return compareRenderings(LookupTheme(templateID).ID, interactive, static)
}

func compareRenderings(templateID, interactiveHTML, staticHTML string) error {
	a, err := extractFacts(interactiveHTML)
	if err != nil {
		return err
	}
	b, err := extractFacts(staticHTML)
	if err != nil {
		return err
	}

	keys := make(map[string]struct{}, len(a.fields)+len(b.fields))
	for k := range a.fields {
		keys[k] = struct{}{}
	}
	for k := range b.fields {
		keys[k] = struct{}{}
	}
	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	var mismatches []ParityMismatch
	for _, k := range sorted {
		av, aok := a.fields[k]
		bv, bok := b.fields[k]
		if av != bv || aok != bok {
			mismatches = append(mismatches, ParityMismatch{Field: k, Interactive: av, Static: bv})
		}
	}
	for i := 0; i < max(len(a.links), len(b.links)); i++ {
		var av, bv string
		if i < len(a.links) {
			av = a.links[i]
		}
		if i < len(b.links) {
			bv = b.links[i]
		}
		if av != bv {
			mismatches = append(mismatches, ParityMismatch{Field: fmt.Sprintf("link[%d]", i), Interactive: av, Static: bv})
		}
	}

	if len(mismatches) > 0 {
		return &ParityError{Template: templateID, Mismatches: mismatches}
	}
	return nil
}
