package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	assert.Equal(t,
		"Motivated student seeking opportunities to apply and grow skills.",
		Summarize(nil, 0, 0),
	)
	assert.Equal(t,
		"Skilled in Go, SQL. Completed 2 project(s) demonstrating practical experience. Finished 1 relevant course(s).",
		Summarize([]string{"Go", "SQL"}, 1, 2),
	)
	assert.Equal(t,
		"Skilled in A, B, C, D, E, F.",
		Summarize([]string{"A", "B", "C", "D", "E", "F", "G", "H"}, 0, 0),
	)
	assert.Equal(t, "Finished 3 relevant course(s).", Summarize(nil, 3, 0))
}

func TestSummarizeCandidate(t *testing.T) {
	c := Candidate{
		Skills:   NewTokenSet("SQL", "Go"),
		Courses:  NewTokenSet("OS", "DBMS"),
		Projects: []string{"compiler"},
	}
	assert.Equal(t,
		"Skilled in Go, SQL. Completed 1 project(s) demonstrating practical experience. Finished 2 relevant course(s).",
		SummarizeCandidate(c),
	)
}

func TestSummarizeCandidate_SortedSkillsDistinctCourses(t *testing.T) {
	c := Candidate{
		Skills:  DecodeTokenSet([]byte(`["Zig","H","G","F","E","D","C","B","A"]`)),
		Courses: DecodeTokenSet([]byte(`["DBMS","DBMS","OS"]`)),
	}
	assert.Equal(t,
		"Skilled in A, B, C, D, E, F. Finished 2 relevant course(s).",
		SummarizeCandidate(c),
	)
}
