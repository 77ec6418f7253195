// Package types provides type definitions for structured data used throughout the resume studio.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// summaryMinLength is the length a summary must exceed to count as present.
const summaryMinLength = 20

// ResumeModel is the canonical representation of a resume.
// Renderers and the scorer treat it as read-only.
type ResumeModel struct {
	PersonalInfo PersonalInfo `json:"personalInfo"`
	Education    []Education  `json:"education"`
	Experience   []Experience `json:"experience"`
	Skills       Skills       `json:"skills"`
	Projects     []Project    `json:"projects"`
}

// PersonalInfo holds contact and identity fields. Photo is an opaque image reference.
type PersonalInfo struct {
	FullName string `json:"fullName"`
	JobTitle string `json:"jobTitle"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Summary  string `json:"summary"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
	Photo    string `json:"photo"`
}

// Education is a single education entry
type Education struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Experience is a single work history entry. Description may hold newline separated bullets.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// Project is a single project entry. Technologies is a comma separated tag list.
type Project struct {
	Name         string `json:"name"`
	Technologies string `json:"technologies"`
	Link         string `json:"link"`
	Description  string `json:"description"`
}

// NewEmptyResume returns the all-empty skeleton used when no data is available.
func NewEmptyResume() *ResumeModel {
	return &ResumeModel{
		Education:  []Education{},
		Experience: []Experience{},
		Projects:   []Project{},
	}
}

// HasName reports whether the full name is non-blank.
func (m *ResumeModel) HasName() bool {
	return strings.TrimSpace(m.PersonalInfo.FullName) != ""
}

// HasValidEmail reports whether the email contains an @.
func (m *ResumeModel) HasValidEmail() bool {
	return strings.Contains(m.PersonalInfo.Email, "@")
}

// HasSummary reports whether the summary is long enough to count.
func (m *ResumeModel) HasSummary() bool {
	return utf8.RuneCountInString(m.PersonalInfo.Summary) > summaryMinLength
}

// IsEmpty reports whether none of the scored signals are present.
func (m *ResumeModel) IsEmpty() bool {
	return !m.HasName() &&
		!m.HasValidEmail() &&
		!m.HasSummary() &&
		len(m.Experience) == 0 &&
		len(m.Education) == 0 &&
		len(m.Skills.Tokens()) == 0 &&
		len(m.Projects) == 0
}

// DisplayName returns the full name or "Your Name" when blank.
func (m *ResumeModel) DisplayName() string {
	if name := strings.TrimSpace(m.PersonalInfo.FullName); name != "" {
		return name
	}
	return "Your Name"
}

// FirstName returns the first whitespace token of the display name.
func (m *ResumeModel) FirstName() string {
	fields := strings.Fields(m.DisplayName())
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Initials returns the upper-cased first letters of each name token, or "U" without a name.
func (m *ResumeModel) Initials() string {
	fields := strings.Fields(m.PersonalInfo.FullName)
	if len(fields) == 0 {
		return "U"
	}
	var sb strings.Builder
	for _, f := range fields {
		r, _ := utf8.DecodeRuneInString(f)
		sb.WriteRune(r)
	}
	return strings.ToUpper(sb.String())
}

// Clone returns a deep copy of the model.
func (m *ResumeModel) Clone() *ResumeModel {
	if m == nil {
		return NewEmptyResume()
	}
	out := &ResumeModel{
		PersonalInfo: m.PersonalInfo,
		Education:    append([]Education{}, m.Education...),
		Experience:   append([]Experience{}, m.Experience...),
		Projects:     append([]Project{}, m.Projects...),
		Skills:       m.Skills.clone(),
	}
	return out
}

// Serialize returns the JSON form of the model without HTML escaping.
// The scorer counts words and keywords over this text.
func (m *ResumeModel) Serialize() string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return ""
	}
	return strings.TrimRight(buf.String(), "\n")
}

// UnmarshalJSON decodes a resume leniently: a missing or wrong-shaped field
// decodes as empty instead of failing. Only a non-object document is an error.
func (m *ResumeModel) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("resume must be a JSON object: %w", err)
	}

	*m = *NewEmptyResume()

	if v, ok := raw["personalInfo"]; ok {
		m.PersonalInfo = decodePersonalInfo(v)
	}
	if v, ok := raw["education"]; ok {
		m.Education = decodeList(v, decodeEducation)
	}
	if v, ok := raw["experience"]; ok {
		m.Experience = decodeList(v, decodeExperience)
	}
	if v, ok := raw["projects"]; ok {
		m.Projects = decodeList(v, decodeProject)
	}
	if v, ok := raw["skills"]; ok {
		// Skills has its own lenient decoder
		_ = m.Skills.UnmarshalJSON(v)
	}
	return nil
}

// ParseResume decodes a resume document.
func ParseResume(data []byte) (*ResumeModel, error) {
	var m ResumeModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func decodeList[T any](data json.RawMessage, decode func(map[string]json.RawMessage) T) []T {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return []T{}
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(item, &fields); err != nil || fields == nil {
			continue
		}
		out = append(out, decode(fields))
	}
	return out
}

// stringField reads a string value, treating anything else as empty.
func stringField(fields map[string]json.RawMessage, key string) string {
	v, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return ""
	}
	return s
}

func decodePersonalInfo(data json.RawMessage) PersonalInfo {
	var f map[string]json.RawMessage
	if err := json.Unmarshal(data, &f); err != nil {
		return PersonalInfo{}
	}
	return PersonalInfo{
		FullName: stringField(f, "fullName"),
		JobTitle: stringField(f, "jobTitle"),
		Email:    stringField(f, "email"),
		Phone:    stringField(f, "phone"),
		Address:  stringField(f, "address"),
		Summary:  stringField(f, "summary"),
		LinkedIn: stringField(f, "linkedin"),
		Website:  stringField(f, "website"),
		Photo:    stringField(f, "photo"),
	}
}

func decodeEducation(f map[string]json.RawMessage) Education {
	return Education{
		School:    stringField(f, "school"),
		Degree:    stringField(f, "degree"),
		StartDate: stringField(f, "startDate"),
		EndDate:   stringField(f, "endDate"),
	}
}

func decodeExperience(f map[string]json.RawMessage) Experience {
	return Experience{
		Title:       stringField(f, "title"),
		Company:     stringField(f, "company"),
		StartDate:   stringField(f, "startDate"),
		EndDate:     stringField(f, "endDate"),
		Description: stringField(f, "description"),
	}
}

func decodeProject(f map[string]json.RawMessage) Project {
	return Project{
		Name:         stringField(f, "name"),
		Technologies: stringField(f, "technologies"),
		Link:         stringField(f, "link"),
		Description:  stringField(f, "description"),
	}
}
