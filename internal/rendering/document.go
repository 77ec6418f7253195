package rendering

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// DocumentTheme is one printable resume layout
type DocumentTheme struct {
	ID          string
	Name        string
	Description string
	Accent      string
	FontStack   string
	build       func(m *types.ResumeModel, t *DocumentTheme) *Node
}

const pageCSS = `@page{size:A4;margin:0;}
*{margin:0;padding:0;box-sizing:border-box;}
body{background:#fff;-webkit-print-color-adjust:exact;print-color-adjust:exact;}
.page{width:210mm;min-height:297mm;margin:0 auto;}`

var modernDocument = DocumentTheme{
	ID:          "modern",
	Name:        "Modern",
	Description: "Blue accents & skill pills",
	Accent:      "#2563eb",
	FontStack:   "'Segoe UI',Roboto,Helvetica,Arial,sans-serif",
	build:       buildModernDocument,
}

var professionalDocument = DocumentTheme{
	ID:          "professional",
	Name:        "Professional",
	Description: "Traditional serif layout",
	Accent:      "#111827",
	FontStack:   "Georgia,'Times New Roman',serif",
	build:       buildProfessionalDocument,
}

var minimalDocument = DocumentTheme{
	ID:          "minimal",
	Name:        "Minimal",
	Description: "Compact and plain",
	Accent:      "#374151",
	FontStack:   "Arial,Helvetica,sans-serif",
	build:       buildMinimalDocument,
}

// Document renders printable resume documents
type Document struct{}

// Render returns a complete A4 HTML document. Unknown ids use the default document template.
func (Document) Render(m *types.ResumeModel, templateID string) (string, error) {
	if m == nil {
		return "", &RenderError{Message: "resume is nil"}
	}
	t := LookupDocument(templateID)
	model := m.Clone()

	doc := Fragment(
		Raw("<!DOCTYPE html>\n"),
		El("html", A("lang", "en"),
			El("head", nil,
				El("meta", A("charset", "UTF-8")),
				El("title", nil, Text(model.DisplayName()+" — Resume")),
				El("style", nil, Raw(pageCSS)),
			),
			El("body", A("style", "font-family:"+t.FontStack+";color:#111827;"),
				El("div", A("class", "page", "data-template", t.ID), t.build(model, t)),
			),
		),
	)

	var sb strings.Builder
	if err := Render(&sb, doc); err != nil {
		return "", &TemplateError{Template: t.ID, Message: "failed to write document", Cause: err}
	}
	return sb.String(), nil
}

// contactParts returns the non-empty contact values in display order
func contactParts(info types.PersonalInfo) []string {
	var parts []string
	for _, v := range []string{info.Email, info.Phone, info.Address, info.LinkedIn, info.Website} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	return parts
}

func textIf(tag, style, text string) *Node {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return El(tag, A("style", style), Text(text))
}

var bulletPrefix = regexp.MustCompile(`^[•\-]\s*`)

// descriptionBullets splits a description into bullet lines, stripping any
// existing bullet marker and dropping blank lines.
func descriptionBullets(description string) []string {
	var bullets []string
	for _, line := range strings.Split(description, "\n") {
		line = strings.TrimSpace(bulletPrefix.ReplaceAllString(strings.TrimSpace(line), ""))
		if line != "" {
			bullets = append(bullets, line)
		}
	}
	return bullets
}

func buildModernDocument(m *types.ResumeModel, t *DocumentTheme) *Node {
	info := m.PersonalInfo
	heading := func(title string) *Node {
		return El("h2", A("style", "font-size:14px;font-weight:700;text-transform:uppercase;letter-spacing:1px;color:"+t.Accent+";border-bottom:2px solid "+t.Accent+";padding-bottom:4px;margin:20px 0 10px;"), Text(title))
	}

	page := El("div", A("style", "padding:40px 48px;font-size:13px;line-height:1.5;"),
		El("h1", A("style", "font-size:30px;font-weight:800;text-transform:uppercase;letter-spacing:1px;"), Text(m.DisplayName())),
		textIf("p", "font-size:16px;color:"+t.Accent+";font-weight:600;margin-top:2px;", info.JobTitle),
		textIf("p", "color:#4b5563;margin-top:6px;", strings.Join(contactParts(info), " • ")),
		textIf("p", "margin-top:14px;color:#374151;", info.Summary),
	)

	if len(m.Experience) > 0 {
		page.Append(heading("Experience"))
		for _, exp := range m.Experience {
			page.Append(El("div", A("style", "margin-bottom:12px;"),
				El("div", A("style", "display:flex;justify-content:space-between;"),
					El("strong", nil, Text(exp.Title)),
					El("span", A("style", "color:#6b7280;"), Text(FormatDateRange(exp.StartDate, exp.EndDate))),
				),
				textIf("p", "color:"+t.Accent+";font-weight:600;", exp.Company),
				textIf("p", "white-space:pre-line;color:#374151;", exp.Description),
			))
		}
	}

	if len(m.Education) > 0 {
		page.Append(heading("Education"))
		for _, edu := range m.Education {
			page.Append(El("div", A("style", "display:flex;justify-content:space-between;margin-bottom:8px;"),
				El("div", nil, El("strong", nil, Text(edu.Degree)), textIf("p", "color:#4b5563;", edu.School)),
				El("span", A("style", "color:#6b7280;"), Text(FormatDateRange(edu.StartDate, edu.EndDate))),
			))
		}
	}

	if len(m.Projects) > 0 {
		page.Append(heading("Projects"))
		for _, p := range m.Projects {
			page.Append(El("div", A("style", "margin-bottom:10px;"),
				El("strong", nil, Text(p.Name)),
				textIf("p", "color:#374151;", p.Description),
				textIf("p", "color:#6b7280;font-size:12px;", strings.Join(types.SplitSkills(p.Technologies), ", ")),
				textIf("p", "color:"+t.Accent+";font-size:12px;", p.Link),
			))
		}
	}

	if skills := m.Skills.Tokens(); len(skills) > 0 {
		page.Append(heading("Skills"))
		pills := El("div", A("style", "display:flex;flex-wrap:wrap;gap:6px;"))
		for _, s := range skills {
			pills.Append(El("span", A("style", "background:#eff6ff;color:"+t.Accent+";padding:2px 10px;border-radius:9999px;font-size:12px;"), Text(s)))
		}
		page.Append(pills)
	}
	return page
}

func buildProfessionalDocument(m *types.ResumeModel, t *DocumentTheme) *Node {
	info := m.PersonalInfo
	heading := func(title string) *Node {
		return El("h2", A("style", "font-size:15px;font-weight:700;text-transform:uppercase;border-bottom:1px solid "+t.Accent+";margin:18px 0 8px;"), Text(title))
	}

	page := El("div", A("style", "padding:48px 56px;font-size:13px;line-height:1.5;"),
		El("div", A("style", "text-align:center;margin-bottom:12px;"),
			El("h1", A("style", "font-size:28px;font-weight:700;"), Text(m.DisplayName())),
			textIf("p", "font-style:italic;font-size:15px;", info.JobTitle),
			textIf("p", "margin-top:4px;", strings.Join(contactParts(info), " | ")),
		),
		textIf("p", "text-align:justify;", info.Summary),
	)

	if len(m.Experience) > 0 {
		page.Append(heading("Professional Experience"))
		for _, exp := range m.Experience {
			item := El("div", A("style", "margin-bottom:12px;"),
				El("div", A("style", "display:flex;justify-content:space-between;"),
					El("strong", nil, Text(exp.Title)),
					El("span", nil, Text(FormatDateRange(exp.StartDate, exp.EndDate))),
				),
				textIf("p", "font-style:italic;", exp.Company),
			)
			if bullets := descriptionBullets(exp.Description); len(bullets) > 0 {
				list := El("ul", A("style", "margin:4px 0 0 18px;"))
				for _, b := range bullets {
					list.Append(El("li", nil, Text(b)))
				}
				item.Append(list)
			}
			page.Append(item)
		}
	}

	if len(m.Education) > 0 {
		page.Append(heading("Education"))
		for _, edu := range m.Education {
			page.Append(El("div", A("style", "display:flex;justify-content:space-between;margin-bottom:6px;"),
				El("div", nil, El("strong", nil, Text(edu.Degree)), textIf("span", "", prefixed(", ", edu.School))),
				El("span", nil, Text(FormatDateRange(edu.StartDate, edu.EndDate))),
			))
		}
	}

	if len(m.Projects) > 0 {
		page.Append(heading("Key Projects"))
		for _, p := range m.Projects {
			page.Append(El("div", A("style", "margin-bottom:8px;"),
				El("strong", nil, Text(p.Name)),
				textIf("span", "", prefixed(" | ", strings.Join(types.SplitSkills(p.Technologies), ", "))),
				textIf("p", "", p.Description),
			))
		}
	}

	if skills := m.Skills.Tokens(); len(skills) > 0 {
		page.Append(heading("Skills"), El("p", nil, Text(strings.Join(skills, ", "))))
	}
	return page
}

func buildMinimalDocument(m *types.ResumeModel, _ *DocumentTheme) *Node {
	info := m.PersonalInfo
	heading := func(title string) *Node {
		return El("h2", A("style", "font-size:13px;font-weight:700;text-transform:uppercase;margin:14px 0 6px;"), Text(title))
	}

	page := El("div", A("style", "padding:36px 40px;font-size:12px;line-height:1.45;"),
		El("h1", A("style", "font-size:24px;font-weight:700;"), Text(m.DisplayName())),
		textIf("p", "color:#4b5563;", info.JobTitle),
		textIf("p", "color:#4b5563;margin-top:2px;", strings.Join(contactParts(info), " · ")),
		textIf("p", "margin-top:10px;", info.Summary),
	)

	if len(m.Experience) > 0 {
		page.Append(heading("Professional Experience"))
		for _, exp := range m.Experience {
			page.Append(El("div", A("style", "margin-bottom:10px;"),
				El("div", A("style", "display:flex;justify-content:space-between;"),
					El("strong", nil, Text(joinNonEmpty(" — ", exp.Title, exp.Company))),
					El("span", nil, Text(FormatDateRange(exp.StartDate, exp.EndDate))),
				),
				textIf("p", "white-space:pre-line;", exp.Description),
			))
		}
	}

	if len(m.Projects) > 0 {
		page.Append(heading("Projects"))
		for _, p := range m.Projects {
			page.Append(El("div", A("style", "margin-bottom:8px;"),
				El("strong", nil, Text(p.Name)),
				textIf("p", "", p.Description),
				textIf("p", "color:#4b5563;", prefixed("Tech Stack: ", strings.Join(types.SplitSkills(p.Technologies), ", "))),
				textIf("p", "color:#4b5563;", p.Link),
			))
		}
	}

	if len(m.Education) > 0 {
		page.Append(heading("Education"))
		for _, edu := range m.Education {
			page.Append(El("div", A("style", "display:flex;justify-content:space-between;margin-bottom:4px;"),
				El("span", nil, Text(joinNonEmpty(", ", edu.Degree, edu.School))),
				El("span", nil, Text(FormatDateRange(edu.StartDate, edu.EndDate))),
			))
		}
	}

	if skills := m.Skills.Tokens(); len(skills) > 0 {
		page.Append(heading("Skills"), El("p", nil, Text(strings.Join(skills, ", "))))
	}
	return page
}

// prefixed returns prefix+s, or "" when s is empty
func prefixed(prefix, s string) string {
	if s == "" {
		return ""
	}
	return prefix + s
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
