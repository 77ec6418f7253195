package rendering

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/resume-studio/internal/types"
)

// heroSkillGroup is the number of skill badges per row
const heroSkillGroup = 6

// portfolioView is everything the body builder needs, resolved once per render.
type portfolioView struct {
	theme    *Theme
	model    *types.ResumeModel
	name     string
	first    string
	initials string
	skills   []string
	nav      []NavItem
	year     int
}

func newPortfolioView(m *types.ResumeModel, theme *Theme, clock Clock) *portfolioView {
	model := m.Clone()
	return &portfolioView{
		theme:    theme,
		model:    model,
		name:     model.DisplayName(),
		first:    model.FirstName(),
		initials: model.Initials(),
		skills:   model.Skills.Tokens(),
		nav:      ThemedNav(model, theme),
		year:     clock.Now().Year(),
	}
}

func styles(parts ...string) string {
	return strings.Join(parts, "")
}

func indexed(section string, i int, name string) string {
	return section + "." + strconv.Itoa(i) + "." + name
}

// externalLink opens outside the current document without leaking the opener or referrer.
func externalLink(href, style, label string) *Node {
	return El("a", A(
		"href", NormalizeURL(href),
		"target", "_blank",
		"rel", "noopener noreferrer",
		"style", style,
	), Text(label))
}

func mailtoLink(email, style string, label *Node) *Node {
	return El("a", A("href", "mailto:"+email, "style", style), label)
}

// body builds the header, main content and footer shared by both portfolio renderers.
func (v *portfolioView) body(state *NavState) *Node {
	return Fragment(
		v.header(state),
		El("main", A("style", fmt.Sprintf("max-width:%dpx;margin:0 auto;padding:0 20px;", v.theme.MaxWidth)),
			v.hero(),
			v.skillsSection(),
			v.experienceSection(),
			v.projectsSection(),
			v.contactSection(),
		),
		v.footer(),
	)
}

func (v *portfolioView) header(state *NavState) *Node {
	t := v.theme
	bar := El("div", A("style", fmt.Sprintf(
		"max-width:%dpx;margin:0 auto;padding:0 20px;display:flex;align-items:center;justify-content:space-between;height:%dpx;",
		t.MaxWidth, t.HeaderHeight)),
		v.brand(),
		El("nav", A("class", "desktop-nav", "style", "display:flex;gap:4px;"), v.navButtons(state, false)...),
		El("button", A(
			"class", "mobile-menu-btn",
			"type", "button",
			"aria-label", "Toggle menu",
			"aria-expanded", strconv.FormatBool(state.MenuOpen),
			"style", "background:none;border:none;cursor:pointer;padding:8px;font-size:20px;color:"+t.NavColor+";",
		), Text("☰")),
	)

	menuStyle := t.MenuStyle
	if state.MenuOpen {
		menuStyle += "display:block;"
	}
	menu := El("div", A("class", "mobile-menu", "style", menuStyle), v.navButtons(state, true)...)

	return El("header", A("style", "position:sticky;top:0;z-index:50;"+t.HeaderStyle), bar, menu)
}

func (v *portfolioView) brand() *Node {
	t := v.theme
	style := "font-weight:700;font-size:18px;color:" + t.BrandColor + ";"
	switch t.Brand {
	case BrandFirstName:
		return El("span", A("class", "brand", "style", style), Text(v.first))
	case BrandSpaced:
		return El("span", A("class", "brand", "style", style+"letter-spacing:2px;text-transform:uppercase;"), Text(v.first))
	case BrandSparkle:
		return El("span", A("class", "brand", "style", style), Text("✦ "+v.first))
	case BrandPrompt:
		return El("span", A("class", "brand", "style", style+"font-size:14px;"),
			Text("> "+strings.ToLower(v.first)),
			El("span", A("class", "cursor"), Text("_")),
		)
	default:
		return nil
	}
}

func (v *portfolioView) navButtons(state *NavState, vertical bool) []*Node {
	t := v.theme
	buttons := make([]*Node, 0, len(v.nav))
	for _, item := range v.nav {
		color := t.NavColor
		class := "nav-link"
		if item.ID == state.Active {
			color = t.NavActive
			class += " active"
		}
		style := "padding:8px 12px;border-radius:" + t.NavRadius + ";font-size:14px;font-weight:500;cursor:pointer;background:none;border:none;font-family:inherit;color:" + color + ";"
		if vertical {
			style += "display:block;width:100%;text-align:left;font-size:16px;"
		}
		b := El("button", A("type", "button", "class", class, "data-target", item.ID, "style", style), Text(item.Label))
		if item.ID == state.Active {
			b.Set("aria-current", "page")
		}
		buttons = append(buttons, b)
	}
	return buttons
}

func (v *portfolioView) avatar() *Node {
	t := v.theme
	size := fmt.Sprintf("width:%dpx;height:%dpx;border-radius:%s;flex-shrink:0;", t.AvatarSize, t.AvatarSize, t.AvatarRadius)
	if t.Hero == HeroCentered {
		size += "margin:0 auto 24px;"
	}
	if photo := v.model.PersonalInfo.Photo; present(photo) {
		return El("img", A("class", "avatar", "src", photo, "alt", v.name, "style", size+"object-fit:cover;display:block;"))
	}
	return El("div", A("class", "avatar", "style", styles(size, t.AvatarStyle,
		fmt.Sprintf("display:flex;align-items:center;justify-content:center;font-weight:700;font-size:%dpx;", t.AvatarSize/3))),
		Text(v.initials))
}

func (v *portfolioView) hero() *Node {
	t := v.theme
	info := v.model.PersonalInfo
	nameStyle := fmt.Sprintf("font-size:%dpx;font-weight:700;margin-bottom:8px;", t.NameSize)
	nameSpan := El("span", A("data-field", "fullName", "style", "color:"+t.NameColor+";"), Text(v.name))

	content := El("div", A("class", "hero-info", "style", "flex:1;min-width:260px;"))
	switch {
	case t.Terminal:
		content.Append(
			El("p", A("style", "color:"+t.MutedColor+";font-size:14px;margin-bottom:4px;"), Text(t.Greeting)),
			El("h1", A("style", nameStyle), nameSpan),
			v.roleLine(),
		)
	case t.Greeting != "":
		content.Append(
			El("h1", A("style", nameStyle+"color:"+t.TextColor+";"), Text(t.Greeting), nameSpan),
			v.subtitle(),
		)
	default:
		content.Append(
			El("h1", A("style", nameStyle), nameSpan),
			v.subtitle(),
		)
	}

	if present(info.Summary) {
		content.Append(El("p", A("data-field", "summary", "style", "color:"+t.BodyColor+";line-height:1.7;margin:0 0 16px;"), Text(info.Summary)))
	}

	if t.HeroSkillLimit > 0 && len(v.skills) > 0 {
		row := El("div", A("class", "hero-skills", "style", "display:flex;flex-wrap:wrap;gap:8px;margin-bottom:16px;"))
		for _, s := range v.skills[:min(t.HeroSkillLimit, len(v.skills))] {
			row.Append(El("span", A("style", t.BadgeStyle), Text(s)))
		}
		content.Append(row)
	}

	links := El("div", A("class", "hero-links", "style", "display:flex;flex-wrap:wrap;gap:12px;"))
	if present(info.Email) {
		links.Append(mailtoLink(info.Email, t.AltButtonStyle, Text(info.Email)))
	}
	if present(info.LinkedIn) {
		links.Append(externalLink(info.LinkedIn, t.ButtonStyle, "LinkedIn"))
	}
	if present(info.Website) {
		links.Append(externalLink(info.Website, t.AltButtonStyle, SiteLabel(info.Website)))
	}
	if len(links.Children) > 0 {
		content.Append(links)
	}

	layout := "padding:64px 0 48px;"
	if t.Hero == HeroSplit {
		layout += "display:flex;flex-wrap:wrap;align-items:center;gap:32px;"
	} else {
		layout += "text-align:center;"
	}
	return El("section", A("id", SectionHome, "style", layout), v.avatar(), content)
}

func (v *portfolioView) subtitle() *Node {
	t := v.theme
	info := v.model.PersonalInfo
	p := El("p", A("style", "color:"+t.TitleColor+";font-size:18px;margin-bottom:12px;"))
	if present(info.JobTitle) {
		p.Append(El("span", A("data-field", "jobTitle"), Text(info.JobTitle)))
	}
	if t.Hero == HeroSplit && present(info.Address) {
		if present(info.JobTitle) {
			p.Append(Text(" | "))
		}
		p.Append(El("span", A("class", "hero-address"), Text(info.Address)))
	}
	if len(p.Children) == 0 {
		return nil
	}
	return p
}

func (v *portfolioView) roleLine() *Node {
	t := v.theme
	title := v.model.PersonalInfo.JobTitle
	role := El("span", nil, Text(t.Role(title)))
	if present(title) {
		role.Set("data-field", "jobTitle")
	}
	return El("p", A("style", "color:"+t.TitleColor+";margin-bottom:16px;"),
		El("span", A("style", "color:#c084fc;"), Text("const")),
		Text(" role = "),
		El("span", A("style", "color:#fbbf24;"), Text(`"`), role, Text(`"`)),
		Text(";"),
	)
}

func (v *portfolioView) heading(text string, prompt bool) *Node {
	t := v.theme
	if t.Terminal && prompt {
		return El("h2", A("style", t.HeadingStyle),
			El("span", A("style", "color:"+t.Color+";"), Text(">")),
			Text(" "+text),
		)
	}
	return El("h2", A("style", t.HeadingStyle), Text(text))
}

func (v *portfolioView) skillsSection() *Node {
	if len(v.skills) == 0 {
		return nil
	}
	t := v.theme
	section := El("section", A("id", SectionSkills, "style", "padding:48px 0;"), v.heading(t.Headings.Skills, false))

	list := El("div", A("class", "skills", "style", "display:flex;flex-direction:column;gap:8px;"))
	if t.Terminal {
		list.Set("style", "display:flex;flex-direction:column;gap:8px;padding-left:24px;")
	}
	i := 0
	for _, group := range ChunkIntoGroups(v.skills, heroSkillGroup) {
		row := El("div", A("class", "skill-row", "style", "display:flex;flex-wrap:wrap;justify-content:center;gap:8px;"))
		for _, s := range group {
			badge := El("span", A("data-field", indexed("skills", i, "name")), Text(s))
			if t.Terminal {
				row.Append(El("span", A("style", t.BadgeStyle), Text(`"`), badge, Text(`"`)))
			} else {
				badge.Set("style", t.BadgeStyle)
				row.Append(badge)
			}
			i++
		}
		list.Append(row)
	}
	section.Append(list)

	if t.Terminal {
		section.Append(El("p", A("style", t.HeadingStyle+"margin-top:8px;"), Text("];")))
	}
	return section
}

func (v *portfolioView) experienceSection() *Node {
	m := v.model
	if len(m.Experience) == 0 && len(m.Education) == 0 {
		return nil
	}
	section := El("section", A("id", SectionExperience, "style", "padding:48px 0;"))
	if v.theme.EducationFirst {
		section.Append(v.educationGroup(), v.experienceGroup())
	} else {
		section.Append(v.experienceGroup(), v.educationGroup())
	}
	return section
}

func (v *portfolioView) dateSpan(key, start, end string) *Node {
	if !present(start) && !present(end) {
		return nil
	}
	return El("span", A("data-field", key, "style", "font-size:13px;font-weight:600;color:"+v.theme.DateColor+";"),
		Text(FormatDateRange(start, end)))
}

func (v *portfolioView) timelineDot() *Node {
	if !v.theme.Timeline {
		return nil
	}
	return El("span", A("class", "timeline-dot", "style",
		"position:absolute;left:-9px;top:6px;width:16px;height:16px;border-radius:50%;background:#f97316;"))
}

func (v *portfolioView) experienceGroup() *Node {
	t := v.theme
	if len(v.model.Experience) == 0 {
		return nil
	}
	group := El("div", A("class", "experience-list", "style", "margin-bottom:32px;"), v.heading(t.Headings.Experience, true))
	for i, exp := range v.model.Experience {
		card := El("div", A("class", "experience-item", "style", t.CardStyle),
			v.timelineDot(),
			El("div", A("style", "display:flex;flex-wrap:wrap;justify-content:space-between;gap:8px;margin-bottom:4px;"),
				El("h3", A("data-field", indexed("experience", i, "title"), "style", "font-size:18px;font-weight:700;"), Text(exp.Title)),
				v.dateSpan(indexed("experience", i, "dates"), exp.StartDate, exp.EndDate),
			),
			El("p", A("data-field", indexed("experience", i, "company"), "style", "color:"+t.CompanyColor+";font-weight:600;margin-bottom:8px;"), Text(exp.Company)),
		)
		if present(exp.Description) {
			card.Append(El("p", A("data-field", indexed("experience", i, "description"), "style", "color:"+t.BodyColor+";line-height:1.7;white-space:pre-line;"), Text(exp.Description)))
		}
		group.Append(card)
	}
	return group
}

func (v *portfolioView) educationGroup() *Node {
	t := v.theme
	if len(v.model.Education) == 0 {
		return nil
	}
	group := El("div", A("class", "education-list", "style", "margin-bottom:32px;"), v.heading(t.Headings.Education, true))
	for i, edu := range v.model.Education {
		group.Append(El("div", A("class", "education-item", "style", t.EducationCard),
			v.timelineDot(),
			El("div", A("style", "display:flex;flex-wrap:wrap;justify-content:space-between;gap:8px;"),
				El("h3", A("data-field", indexed("education", i, "degree"), "style", "font-size:18px;font-weight:700;"), Text(edu.Degree)),
				v.dateSpan(indexed("education", i, "dates"), edu.StartDate, edu.EndDate),
			),
			El("p", A("data-field", indexed("education", i, "school"), "style", "color:"+t.CompanyColor+";"), Text(edu.School)),
		))
	}
	return group
}

func (v *portfolioView) projectsSection() *Node {
	t := v.theme
	if len(v.model.Projects) == 0 {
		return nil
	}
	grid := El("div", A("class", "projects", "style", "display:grid;grid-template-columns:repeat(auto-fit,minmax(300px,1fr));gap:24px;"))
	for i, p := range v.model.Projects {
		card := El("div", A("class", "project", "style", t.CardStyle),
			El("h3", A("data-field", indexed("projects", i, "name"), "style", "font-size:20px;font-weight:700;margin-bottom:8px;color:"+t.ProjectNameColor+";"), Text(p.Name)),
		)
		if present(p.Description) {
			card.Append(El("p", A("data-field", indexed("projects", i, "description"), "style", "color:"+t.BodyColor+";line-height:1.6;margin-bottom:16px;"), Text(p.Description)))
		}
		if tags := types.SplitSkills(p.Technologies); len(tags) > 0 {
			if t.PlainTechnologies {
				card.Append(El("p", A("data-field", indexed("projects", i, "technologies"), "style", t.TagStyle), Text(strings.Join(tags, ", "))))
			} else {
				row := El("div", A("data-field", indexed("projects", i, "technologies"), "style", "display:flex;flex-wrap:wrap;gap:6px;margin-bottom:16px;"))
				for _, tag := range tags {
					row.Append(El("span", A("style", t.TagStyle), Text(tag)))
				}
				card.Append(row)
			}
		}
		if present(p.Link) {
			label := t.ProjectLinkLabel
			if t.Terminal {
				label += p.Link
			}
			card.Append(externalLink(p.Link, "color:"+t.LinkColor+";text-decoration:none;font-weight:600;font-size:14px;", label))
		}
		grid.Append(card)
	}
	return El("section", A("id", SectionProjects, "style", "padding:48px 0;"), v.heading(t.Headings.Projects, true), grid)
}

func (v *portfolioView) contactSection() *Node {
	t := v.theme
	info := v.model.PersonalInfo
	list := El("div", A("class", "contact", "style", "display:flex;flex-direction:column;gap:16px;max-width:500px;margin:0 auto;color:"+t.BodyColor+";"))
	row := func(icon string, content *Node) *Node {
		return El("div", A("style", "display:flex;align-items:center;gap:12px;"), El("span", A("aria-hidden", "true"), Text(icon)), content)
	}
	if present(info.Email) {
		list.Append(row("📧", mailtoLink(info.Email, "color:inherit;text-decoration:none;", El("span", A("data-field", "email"), Text(info.Email)))))
	}
	if present(info.Phone) {
		list.Append(row("📱", El("span", A("data-field", "phone"), Text(info.Phone))))
	}
	if present(info.Address) {
		list.Append(row("📍", El("span", A("data-field", "address"), Text(info.Address))))
	}
	if present(info.LinkedIn) {
		list.Append(row("🔗", externalLink(info.LinkedIn, "color:"+t.LinkColor+";text-decoration:none;", "LinkedIn")))
	}
	if present(info.Website) {
		list.Append(row("🌐", externalLink(info.Website, "color:"+t.LinkColor+";text-decoration:none;", SiteLabel(info.Website))))
	}
	return El("section", A("id", SectionContact, "style", "padding:48px 0 64px;"), v.heading(t.Headings.Contact, true), list)
}

func (v *portfolioView) footer() *Node {
	t := v.theme
	return El("footer", A("style", t.FooterStyle),
		El("p", nil, Text(fmt.Sprintf("%s© %d %s", t.FooterPrefix, v.year, v.name))),
	)
}

// present reports whether a field has visible content.
func present(s string) bool {
	return strings.TrimSpace(s) != ""
}
