// Package scoring computes the heuristic ATS score and the profile completeness of a resume.
package scoring

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-studio/internal/types"
)

// Points awarded per rule. The maximum sum is exactly 100.
const (
	contactPoints       = 15
	summaryPoints       = 15
	sectionsPoints      = 20
	depthPoints         = 15
	verbsPoints         = 15
	singleVerbPoints    = 8
	strongMatchPoints   = 20
	partialMatchPoints  = 10
	projectsBonusPoints = 12
	contactBonusPoints  = 8

	maxScore = 100
)

// Thresholds used by the rules
const (
	// DepthTarget is the word count a resume must exceed for full depth points
	DepthTarget = 100
	// minKeywordLength is the length a job description token must exceed to be a keyword
	minKeywordLength = 4
	strongMatches    = 5
	partialMatches   = 2
)

// ActionVerbs are the verbs looked for in experience descriptions
var ActionVerbs = []string{
	"managed", "led", "developed", "created", "implemented", "designed", "optimized",
	"increased", "built", "launched", "improved", "delivered", "achieved",
}

const verbExamples = "Managed, Led, Developed, Implemented"

var structuralPunctuation = strings.NewReplacer(
	"{", " ", "}", " ", "[", " ", "]", " ", `"`, " ", ",", " ", ":", " ", `\`, " ",
)

// Score rates a resume out of 100. The job description is optional; when it is
// blank the last rule rewards projects and contact reachability instead of
// keyword overlap. Score is pure: identical input always yields identical output.
func Score(m *types.ResumeModel, jobDescription string) types.ScoreResult {
	if m == nil || m.IsEmpty() {
		return types.ScoreResult{
			Score:  0,
			Checks: []types.Check{{Passed: false, Message: "Resume is empty. Add your details to get a score."}},
		}
	}

	serialized := m.Serialize()
	rules := []func() (int, types.Check){
		func() (int, types.Check) { return checkContact(m) },
		func() (int, types.Check) { return checkSummary(m) },
		func() (int, types.Check) { return checkSections(m) },
		func() (int, types.Check) { return checkDepth(serialized) },
		func() (int, types.Check) { return checkActionVerbs(m) },
		func() (int, types.Check) {
			if strings.TrimSpace(jobDescription) != "" {
				return checkKeywords(serialized, jobDescription)
			}
			return checkBonus(m)
		},
	}

	result := types.ScoreResult{Checks: make([]types.Check, 0, len(rules))}
	for _, rule := range rules {
		points, check := rule()
		result.Score += points
		result.Checks = append(result.Checks, check)
	}
	result.Score = max(0, min(maxScore, result.Score))
	return result
}

func checkContact(m *types.ResumeModel) (int, types.Check) {
	if m.HasName() && m.HasValidEmail() {
		return contactPoints, types.Check{Passed: true, Message: "Contact information is complete."}
	}
	var missing []string
	if !m.HasName() {
		missing = append(missing, "full name")
	}
	if !m.HasValidEmail() {
		missing = append(missing, "valid email")
	}
	return 0, types.Check{Message: "Missing " + strings.Join(missing, " and ") + "."}
}

func checkSummary(m *types.ResumeModel) (int, types.Check) {
	if m.HasSummary() {
		return summaryPoints, types.Check{Passed: true, Message: "Professional summary included."}
	}
	return 0, types.Check{Message: "Add a professional summary of more than 20 characters."}
}

func checkSections(m *types.ResumeModel) (int, types.Check) {
	var missing []string
	if len(m.Experience) == 0 {
		missing = append(missing, "Experience")
	}
	if len(m.Education) == 0 {
		missing = append(missing, "Education")
	}
	if len(m.Skills.Tokens()) == 0 {
		missing = append(missing, "Skills")
	}
	if len(missing) == 0 {
		return sectionsPoints, types.Check{Passed: true, Message: "All essential sections present."}
	}
	return 0, types.Check{Message: "Missing sections: " + strings.Join(missing, ", ")}
}

// WordCount counts the words of a serialized resume once structural JSON
// punctuation is removed. Single-character tokens are not words.
func WordCount(serialized string) int {
	count := 0
	for _, tok := range strings.Fields(structuralPunctuation.Replace(serialized)) {
		if utf8.RuneCountInString(tok) > 1 {
			count++
		}
	}
	return count
}

func checkDepth(serialized string) (int, types.Check) {
	words := WordCount(serialized)
	if words > DepthTarget {
		return depthPoints, types.Check{Passed: true, Message: fmt.Sprintf("Good content depth (%d words).", words)}
	}
	return 0, types.Check{Message: fmt.Sprintf("Content is thin: %d words, aim for more than %d.", words, DepthTarget)}
}

// MatchedVerbs returns the action verbs found in the experience descriptions, in list order.
func MatchedVerbs(m *types.ResumeModel) []string {
	descriptions := make([]string, 0, len(m.Experience))
	for _, e := range m.Experience {
		descriptions = append(descriptions, e.Description)
	}
	text := strings.ToLower(strings.Join(descriptions, " "))

	var matched []string
	for _, verb := range ActionVerbs {
		if strings.Contains(text, verb) {
			matched = append(matched, verb)
		}
	}
	return matched
}

func checkActionVerbs(m *types.ResumeModel) (int, types.Check) {
	matched := MatchedVerbs(m)
	switch len(matched) {
	case 0:
		return 0, types.Check{Message: "No action verbs found. Try: " + verbExamples + "."}
	case 1:
		return singleVerbPoints, types.Check{Message: fmt.Sprintf("Only one action verb (%s). Try: %s.", matched[0], verbExamples)}
	default:
		return verbsPoints, types.Check{Passed: true, Message: fmt.Sprintf("Uses strong action verbs (%d found).", len(matched))}
	}
}

// MatchedKeywords returns the distinct job description keywords that occur in the serialized resume.
func MatchedKeywords(serialized, jobDescription string) []string {
	text := strings.ToLower(serialized)
	seen := make(map[string]bool)
	var matched []string
	for _, tok := range strings.Fields(strings.ToLower(jobDescription)) {
		if utf8.RuneCountInString(tok) <= minKeywordLength || seen[tok] {
			continue
		}
		seen[tok] = true
		if strings.Contains(text, tok) {
			matched = append(matched, tok)
		}
	}
	return matched
}

func checkKeywords(serialized, jobDescription string) (int, types.Check) {
	n := len(MatchedKeywords(serialized, jobDescription))
	switch {
	case n > strongMatches:
		return strongMatchPoints, types.Check{Passed: true, Message: fmt.Sprintf("Matched %d keywords from the job description.", n)}
	case n > partialMatches:
		return partialMatchPoints, types.Check{Message: fmt.Sprintf("Matched %d keywords from the job description. Add more to strengthen the match.", n)}
	default:
		return 0, types.Check{Message: fmt.Sprintf("Matched %d keywords from the job description. Low keyword match.", n)}
	}
}

func checkBonus(m *types.ResumeModel) (int, types.Check) {
	points := 0
	var present, missing []string

	if len(m.Projects) > 0 {
		points += projectsBonusPoints
		present = append(present, "Projects section adds value")
	} else {
		missing = append(missing, "Add a projects section")
	}
	if m.PersonalInfo.Phone != "" && m.PersonalInfo.LinkedIn != "" {
		points += contactBonusPoints
		present = append(present, "Phone and LinkedIn included")
	} else {
		missing = append(missing, "Add phone and LinkedIn")
	}

	return points, types.Check{
		Passed:  len(missing) == 0,
		Message: strings.Join(append(present, missing...), ". ") + ".",
	}
}
