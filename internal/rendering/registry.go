package rendering

// DefaultPortfolioTemplate is used for unknown portfolio ids
const DefaultPortfolioTemplate = "classic"

// DefaultDocumentTemplate is used for unknown document ids
const DefaultDocumentTemplate = "minimal"

// TemplateInfo describes a template for selection UIs. Colors are cosmetic only.
type TemplateInfo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Background  string `json:"background"`
}

// portfolioThemes is in display order
var portfolioThemes = []*Theme{
	&classicTheme,
	&darkTheme,
	&minimalTheme,
	&gradientTheme,
	&developerTheme,
}

// documentThemes is in display order
var documentThemes = []*DocumentTheme{
	&modernDocument,
	&professionalDocument,
	&minimalDocument,
}

// PortfolioTemplates lists the portfolio variants
func PortfolioTemplates() []TemplateInfo {
	out := make([]TemplateInfo, 0, len(portfolioThemes))
	for _, t := range portfolioThemes {
		out = append(out, TemplateInfo{ID: t.ID, Name: t.Name, Description: t.Description, Color: t.Color, Background: t.Background})
	}
	return out
}

// DocumentTemplates lists the resume document variants
func DocumentTemplates() []TemplateInfo {
	out := make([]TemplateInfo, 0, len(documentThemes))
	for _, t := range documentThemes {
		out = append(out, TemplateInfo{ID: t.ID, Name: t.Name, Description: t.Description, Color: t.Accent, Background: "#ffffff"})
	}
	return out
}

// PortfolioTemplateIDs returns the portfolio ids in display order
func PortfolioTemplateIDs() []string {
	ids := make([]string, 0, len(portfolioThemes))
	for _, t := range portfolioThemes {
		ids = append(ids, t.ID)
	}
	return ids
}

// IsPortfolioTemplate reports whether id names a portfolio variant
func IsPortfolioTemplate(id string) bool {
	for _, t := range portfolioThemes {
		if t.ID == id {
			return true
		}
	}
	return false
}

// IsDocumentTemplate reports whether id names a document variant
func IsDocumentTemplate(id string) bool {
	for _, t := range documentThemes {
		if t.ID == id {
			return true
		}
	}
	return false
}

// LookupTheme returns the portfolio theme for id, or the default theme. It never fails.
func LookupTheme(id string) *Theme {
	for _, t := range portfolioThemes {
		if t.ID == id {
			return t
		}
	}
	return &classicTheme
}

// LookupDocument returns the document theme for id, or the default. It never fails.
func LookupDocument(id string) *DocumentTheme {
	for _, t := range documentThemes {
		if t.ID == id {
			return t
		}
	}
	return &minimalDocument
}
