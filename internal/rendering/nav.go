package rendering

import "github.com/jonathan/resume-studio/internal/types"

// ScrollThreshold is how close, in pixels, a section's top must be to the
// viewport top for that section to become active.
const ScrollThreshold = 100

// Section ids used as navigation targets
const (
	SectionHome       = "home"
	SectionSkills     = "skills"
	SectionExperience = "experience"
	SectionProjects   = "projects"
	SectionContact    = "contact"
)

// NavItem is one navigation entry
type NavItem struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// BuildNav returns the navigation items for a resume. Home and contact are
// always present; the others only when their section has content.
func BuildNav(m *types.ResumeModel) []NavItem {
	items := []NavItem{{ID: SectionHome, Label: "Home"}}
	if len(m.Skills.Tokens()) > 0 {
		items = append(items, NavItem{ID: SectionSkills, Label: "Skills"})
	}
	if len(m.Experience) > 0 || len(m.Education) > 0 {
		items = append(items, NavItem{ID: SectionExperience, Label: "Experience"})
	}
	if len(m.Projects) > 0 {
		items = append(items, NavItem{ID: SectionProjects, Label: "Projects"})
	}
	return append(items, NavItem{ID: SectionContact, Label: "Contact"})
}

// ThemedNav applies a theme's label transform to the nav items
func ThemedNav(m *types.ResumeModel, theme *Theme) []NavItem {
	items := BuildNav(m)
	for i := range items {
		items[i].Label = theme.NavLabel(items[i].Label)
	}
	return items
}

// SectionOffset is the top of a section relative to the viewport top
type SectionOffset struct {
	ID  string
	Top float64
}

// NavState is the navigation state of a live portfolio
type NavState struct {
	Active   string `json:"active"`
	MenuOpen bool   `json:"menuOpen"`
	items    []NavItem
}

// NewNavState starts on the home section with the menu closed
func NewNavState(items []NavItem) *NavState {
	return &NavState{Active: SectionHome, items: items}
}

func (s *NavState) has(id string) bool {
	for _, it := range s.items {
		if it.ID == id {
			return true
		}
	}
	return false
}

// Select activates a section on explicit user choice and closes the mobile menu.
// Unknown ids leave the active section unchanged.
func (s *NavState) Select(id string) {
	if s.has(id) {
		s.Active = id
	}
	s.MenuOpen = false
}

// ToggleMenu opens or closes the mobile menu
func (s *NavState) ToggleMenu() {
	s.MenuOpen = !s.MenuOpen
}

// Observe updates the active section from scroll positions. The last section,
// in nav order, whose top is within ScrollThreshold of the viewport top wins.
func (s *NavState) Observe(offsets []SectionOffset) {
	tops := make(map[string]float64, len(offsets))
	for _, o := range offsets {
		tops[o.ID] = o.Top
	}
	for i := len(s.items) - 1; i >= 0; i-- {
		top, ok := tops[s.items[i].ID]
		if ok && top <= ScrollThreshold {
			s.Active = s.items[i].ID
			return
		}
	}
}
