package rendering

import (
	"github.com/jonathan/resume-studio/internal/types"
)

// Interactive renders the live portfolio preview. It keeps no state of its
// own; navigation state is owned by the caller and passed to each render.
type Interactive struct {
	Clock Clock
}

// NewInteractive creates an interactive renderer. A nil clock uses the system clock.
func NewInteractive(clock Clock) *Interactive {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Interactive{Clock: clock}
}

// State returns the initial navigation state for a resume in a theme
func (r *Interactive) State(m *types.ResumeModel, templateID string) *NavState {
	if m == nil {
		m = types.NewEmptyResume()
	}
	return NewNavState(ThemedNav(m, LookupTheme(templateID)))
}

// Render builds the portfolio tree for the given state. A nil state renders
// the initial state.
func (r *Interactive) Render(m *types.ResumeModel, templateID string, state *NavState) *Node {
	theme := LookupTheme(templateID)
	v := newPortfolioView(m, theme, r.Clock)
	if state == nil {
		state = NewNavState(v.nav)
	}
	return portfolioRoot(v, state)
}

// RenderHTML serializes the interactive tree as an HTML fragment
func (r *Interactive) RenderHTML(m *types.ResumeModel, templateID string, state *NavState) string {
	return r.Render(m, templateID, state).HTML()
}

// portfolioRoot is the element both renderers emit around the shared body
func portfolioRoot(v *portfolioView, state *NavState) *Node {
	t := v.theme
	return El("div", A(
		"class", "portfolio",
		"data-template", t.ID,
		"data-nav-color", t.NavColor,
		"data-nav-active", t.NavActive,
		"style", "min-height:100vh;font-family:"+t.FontStack+";color:"+t.TextColor+";"+t.PageStyle,
	), v.body(state))
}
