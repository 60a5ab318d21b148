package matching

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTokenSet(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{name: "array", raw: `["Python","SQL","Python"]`, want: []string{"Python", "SQL"}},
		{name: "empty input", raw: ``, want: []string{}},
		{name: "null", raw: `null`, want: []string{}},
		{name: "empty array", raw: `[]`, want: []string{}},
		{name: "malformed", raw: `["Python",`, want: []string{}},
		{name: "object", raw: `{"skills":["Go"]}`, want: []string{}},
		{name: "mixed types", raw: `["Go", 3]`, want: []string{}},
		{name: "case sensitive", raw: `["go","Go"]`, want: []string{"Go", "go"}},
		{name: "empty string dropped", raw: `["", "Python"]`, want: []string{"Python"}},
		{name: "null element dropped", raw: `["Python", null]`, want: []string{"Python"}},
		{name: "only empty", raw: `[""]`, want: []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DecodeTokenSet([]byte(tc.raw)).Sorted())
		})
	}
}

func TestDecodeTokenSet_EmptyTokenIsNotRequired(t *testing.T) {
	r := Requirement{RequiredSkills: DecodeTokenSet([]byte(`["Python",""]`))}
	res := NewScorer(DefaultPolicy()).ScoreSets(NewTokenSet("Python"), NewTokenSet(), r)

	assert.Equal(t, 100.0, res.MatchPercentage)
	assert.True(t, res.IsEligible)
	assert.True(t, res.MissingSkills.IsEmpty())
}

func TestTokenSet_SetAlgebra(t *testing.T) {
	a := NewTokenSet("Go", "SQL", "Docker")
	b := NewTokenSet("SQL", "React")

	assert.Equal(t, []string{"SQL"}, a.Intersect(b).Sorted())
	assert.Equal(t, []string{"Docker", "Go"}, a.Difference(b).Sorted())
	assert.Equal(t, []string{"Docker", "Go", "React", "SQL"}, a.Union(b).Sorted())
	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(NewTokenSet("Java")))
	assert.True(t, NewTokenSet("x", "y").Equal(NewTokenSet("y", "x")))

	var zero TokenSet
	assert.True(t, zero.IsEmpty())
	assert.False(t, zero.Has("Go"))
	assert.Equal(t, []string{"Go"}, zero.With("Go").Sorted())
	assert.True(t, zero.IsEmpty())
}

func TestTokenSet_JSON(t *testing.T) {
	type doc struct {
		Skills TokenSet `json:"skills"`
		Name   string   `json:"name"`
	}

	b, err := json.Marshal(doc{Skills: NewTokenSet("SQL", "Go"), Name: "a"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"skills":["Go","SQL"],"name":"a"}`, string(b))

	var d doc
	require.NoError(t, json.Unmarshal([]byte(`{"skills":"not-a-list","name":"b"}`), &d))
	assert.True(t, d.Skills.IsEmpty())
	assert.Equal(t, "b", d.Name)
}

func TestTokenSet_Scan(t *testing.T) {
	var s TokenSet
	require.NoError(t, s.Scan([]byte(`["Go"]`)))
	assert.Equal(t, []string{"Go"}, s.Sorted())

	require.NoError(t, s.Scan(`["A","B"]`))
	assert.Equal(t, []string{"A", "B"}, s.Sorted())

	require.NoError(t, s.Scan(nil))
	assert.True(t, s.IsEmpty())

	require.NoError(t, s.Scan("oops"))
	assert.True(t, s.IsEmpty())

	v, err := NewTokenSet("B", "A").Value()
	require.NoError(t, err)
	assert.Equal(t, `["A","B"]`, v)
}
