package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortfolioTemplates_Order(t *testing.T) {
	assert.Equal(t, []string{"classic", "dark", "minimal", "gradient", "developer"}, PortfolioTemplateIDs())

	infos := PortfolioTemplates()
	assert.Equal(t, TemplateInfo{
		ID:          "classic",
		Name:        "Classic",
		Description: "Warm & Professional",
		Color:       "#ea580c",
		Background:  "#fff7e6",
	}, infos[0])
	assert.Equal(t, "Terminal Style", infos[4].Description)
}

func TestDocumentTemplates_Order(t *testing.T) {
	infos := DocumentTemplates()
	ids := make([]string, 0, len(infos))
	for _, i := range infos {
		ids = append(ids, i.ID)
	}
	assert.Equal(t, []string{"modern", "professional", "minimal"}, ids)
	assert.Equal(t, "#2563eb", infos[0].Color)
}

func TestLookupTheme_FallsBack(t *testing.T) {
	assert.Equal(t, "dark", LookupTheme("dark").ID)
	assert.Equal(t, DefaultPortfolioTemplate, LookupTheme("neon").ID)
	assert.Equal(t, DefaultPortfolioTemplate, LookupTheme("").ID)
}

func TestLookupDocument_FallsBack(t *testing.T) {
	assert.Equal(t, "professional", LookupDocument("professional").ID)
	assert.Equal(t, DefaultDocumentTemplate, LookupDocument("fancy").ID)
}

func TestMembership(t *testing.T) {
	assert.True(t, IsPortfolioTemplate("gradient"))
	assert.False(t, IsPortfolioTemplate("modern"))
	assert.True(t, IsDocumentTemplate("modern"))
	assert.False(t, IsDocumentTemplate("classic"))
}
