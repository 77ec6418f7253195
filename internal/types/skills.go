package types

import (
	"encoding/json"
	"strings"
)

// Skills holds the skills field in either of its accepted forms: a comma
// separated string or a list of strings. It marshals back in the form it was given.
type Skills struct {
	text   string
	items  []string
	isList bool
}

// SkillsFromString builds a Skills value from a comma separated string.
func SkillsFromString(s string) Skills {
	return Skills{text: s}
}

// SkillsFromList builds a Skills value from a list of skills.
func SkillsFromList(items []string) Skills {
	return Skills{items: append([]string{}, items...), isList: true}
}

// SplitSkills splits a comma separated string into trimmed, non-empty tokens.
// Order and duplicates are preserved.
func SplitSkills(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Tokens returns the normalized skill list. Every consumer goes through here.
func (s Skills) Tokens() []string {
	if !s.isList {
		return SplitSkills(s.text)
	}
	out := make([]string, 0, len(s.items))
	for _, item := range s.items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// String returns the skills joined with ", ".
func (s Skills) String() string {
	return strings.Join(s.Tokens(), ", ")
}

// IsList reports whether the value was given as a list.
func (s Skills) IsList() bool {
	return s.isList
}

// Raw returns the original string form. It is empty for list values.
func (s Skills) Raw() string {
	return s.text
}

func (s Skills) clone() Skills {
	return Skills{text: s.text, items: append([]string(nil), s.items...), isList: s.isList}
}

// MarshalJSON writes the skills in their original form.
func (s Skills) MarshalJSON() ([]byte, error) {
	if s.isList {
		items := s.items
		if items == nil {
			items = []string{}
		}
		return json.Marshal(items)
	}
	return json.Marshal(s.text)
}

// UnmarshalJSON accepts a string or a list. Any other shape decodes as empty.
func (s *Skills) UnmarshalJSON(data []byte) error {
	*s = Skills{}

	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		s.text = text
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	s.isList = true
	s.items = make([]string, 0, len(raw))
	for _, r := range raw {
		var item string
		if err := json.Unmarshal(r, &item); err == nil {
			s.items = append(s.items, item)
		}
	}
	return nil
}
