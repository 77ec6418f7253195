package types

// ScoreResult is the outcome of an ATS scoring pass.
// Checks are ordered: contact, summary, sections, depth, verbs, keywords or bonus.
type ScoreResult struct {
	Score  int     `json:"score"`
	Checks []Check `json:"checks"`
}

// Check is a single scored rule with a human-readable message
type Check struct {
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// Completeness summarizes how many profile fields are filled in
type Completeness struct {
	Percent int    `json:"percent"`
	Label   string `json:"label"`
}
