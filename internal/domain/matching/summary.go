package matching

import (
	"fmt"
	"strings"
)

const (
	summaryMaxSkills = 6
	summaryFallback  = "Motivated student seeking opportunities to apply and grow skills."
)

// Summarize builds the one-paragraph profile blurb shown on a candidate's
// resume page. Only the first six skills are listed.
func Summarize(skills []string, courseCount, projectCount int) string {
	parts := make([]string, 0, 3)
	if len(skills) > 0 {
		listed := skills
		if len(listed) > summaryMaxSkills {
			listed = listed[:summaryMaxSkills]
		}
		parts = append(parts, fmt.Sprintf("Skilled in %s.", strings.Join(listed, ", ")))
	}
	if projectCount > 0 {
		parts = append(parts, fmt.Sprintf("Completed %d project(s) demonstrating practical experience.", projectCount))
	}
	if courseCount > 0 {
		parts = append(parts, fmt.Sprintf("Finished %d relevant course(s).", courseCount))
	}
	if len(parts) == 0 {
		return summaryFallback
	}
	return strings.Join(parts, " ")
}

// SummarizeCandidate lists skills in sorted order and counts distinct
// courses, since a TokenSet keeps neither input order nor duplicates.
func SummarizeCandidate(c Candidate) string {
	return Summarize(c.Skills.Sorted(), c.Courses.Len(), len(c.Projects))
}
