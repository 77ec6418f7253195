package scoring

import (
	"math"

	"github.com/jonathan/resume-studio/internal/types"
)

// ProfileCompleteness reports the share of profile fields that are filled in.
func ProfileCompleteness(m *types.ResumeModel) types.Completeness {
	if m == nil {
		return types.Completeness{Percent: 0, Label: "Empty"}
	}
	info := m.PersonalInfo
	checks := []bool{
		info.FullName != "",
		info.Email != "",
		info.JobTitle != "",
		info.Phone != "",
		info.Summary != "",
		info.Photo != "",
		len(m.Education) > 0,
		len(m.Experience) > 0,
		len(m.Projects) > 0,
		len(m.Skills.Tokens()) > 0,
	}

	filled := 0
	for _, ok := range checks {
		if ok {
			filled++
		}
	}
	pct := int(math.Round(float64(filled) / float64(len(checks)) * 100))
	return types.Completeness{Percent: pct, Label: completenessLabel(pct)}
}

func completenessLabel(pct int) string {
	switch {
	case pct >= 90:
		return "Excellent"
	case pct >= 70:
		return "Good"
	case pct >= 40:
		return "Fair"
	default:
		return "Low"
	}
}
