package resolver

import (
	"encoding/json"
	"testing"

	"degrees/backend/internal/graph"
	apperrors "degrees/backend/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func directory() *graph.Graph {
	b := graph.NewBuilder()
	b.AddPerson("158", "Tom Hanks", 1956)
	b.AddPerson("914612", "Emma Watson", 1990)
	b.AddPerson("914613", "Emma Watson", 0)
	b.AddPerson("914614", "Emma Watson", 1971)
	b.AddPerson("1", "Emma Stone", 1988)
	b.AddPerson("99", "Emma Adams", 1965)
	return b.Build()
}

func TestResolve_NotFound(t *testing.T) {
	res := New(directory()).Resolve("Zelda Nobody")

	assert.Equal(t, NotFound, res.Kind)
	assert.Empty(t, res.PersonID)
	var notFound *apperrors.ErrPersonNotFound
	require.ErrorAs(t, res.Err(), &notFound)
	assert.Equal(t, "Zelda Nobody", notFound.Name)
}

func TestResolve_Unique(t *testing.T) {
	res := New(directory()).Resolve("tom HANKS")

	assert.Equal(t, Unique, res.Kind)
	assert.Equal(t, "158", res.PersonID)
	assert.NoError(t, res.Err())
}

func TestResolve_Ambiguous(t *testing.T) {
	res := New(directory()).Resolve("Emma Watson")

	require.Equal(t, Ambiguous, res.Kind)
	assert.Equal(t, []Candidate{
		{ID: "914612", Name: "Emma Watson", Birth: 1990},
		{ID: "914613", Name: "Emma Watson"},
		{ID: "914614", Name: "Emma Watson", Birth: 1971},
	}, res.Candidates)

	var ambiguous *apperrors.ErrAmbiguousName
	require.ErrorAs(t, res.Err(), &ambiguous)
	assert.Len(t, ambiguous.CandidateIDs, 3)
}

func TestResolution_Choose(t *testing.T) {
	res := New(directory()).Resolve("Emma Watson")

	picked := res.Choose("914613")
	assert.Equal(t, Unique, picked.Kind)
	assert.Equal(t, "914613", picked.PersonID)

	missed := res.Choose("158")
	assert.Equal(t, NotFound, missed.Kind)
	assert.Equal(t, "Emma Watson", missed.Query)

	unique := New(directory()).Resolve("Tom Hanks")
	assert.Equal(t, unique, unique.Choose("anything"))
}

func TestSuggest(t *testing.T) {
	r := New(directory())

	got := r.Suggest("emma", 0)
	var ids []string
	for _, c := range got {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []string{"99", "1", "914612", "914613", "914614"}, ids)

	top := r.Suggest("emma", 2)
	require.Len(t, top, 2)
	assert.Equal(t, "Emma Adams", top[0].Name)
	assert.Equal(t, "Emma Stone", top[1].Name)
	assert.Empty(t, r.Suggest("", 5))
}

func TestKind_JSON(t *testing.T) {
	out, err := json.Marshal(Resolution{Kind: Ambiguous, Query: "x"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"ambiguous","query":"x"}`, string(out))
}
