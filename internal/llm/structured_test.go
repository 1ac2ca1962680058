package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type coursePayload struct {
	Title  string  `json:"title"`
	Rating float64 `json:"rating"`
}

func TestExtractJSON_CleanJSON(t *testing.T) {
	got, err := ExtractJSON[coursePayload](`{"title":"Go 101","rating":4.5}`, nil)
	require.NoError(t, err)
	assert.Equal(t, "Go 101", got.Title)
	assert.Equal(t, 4.5, got.Rating)
}

func TestExtractJSON_FencedWithProse(t *testing.T) {
	raw := "Here you go:\n```json\n{\"title\":\"Design\",\"rating\":4}\n```\nEnjoy!"
	got, err := ExtractJSON[coursePayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Design", got.Title)
}

func TestExtractJSON_BracesInsideStrings(t *testing.T) {
	raw := `{"title":"Closures {and} \"scopes\"","rating":4}`
	got, err := ExtractJSON[coursePayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, `Closures {and} "scopes"`, got.Title)
}

func TestExtractJSON_CommentsAndLeadingDecimals(t *testing.T) {
	raw := `{
		// generated
		"title": "Web // not a comment", /* rating below */
		"rating": .5
	}`
	got, err := ExtractJSON[coursePayload](raw, nil)
	require.NoError(t, err)
	assert.Equal(t, "Web // not a comment", got.Title)
	assert.Equal(t, 0.5, got.Rating)
}

func TestExtractJSON_NegativeLeadingDecimal(t *testing.T) {
	type delta struct {
		D float64 `json:"d"`
	}
	got, err := ExtractJSON[delta](`{"d": -.25}`, nil)
	require.NoError(t, err)
	assert.Equal(t, -0.25, got.D)
}

func TestExtractJSON_NoObject(t *testing.T) {
	_, err := ExtractJSON[coursePayload]("I cannot help with that.", nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_Malformed(t *testing.T) {
	_, err := ExtractJSON[coursePayload](`{"title": broken}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}

func TestExtractJSON_ValidatorRejects(t *testing.T) {
	v := func(c coursePayload) error {
		if c.Rating > 5 {
			return errors.New("rating above 5")
		}
		return nil
	}
	_, err := ExtractJSON(`{"title":"x","rating":7}`, v)
	assert.ErrorIs(t, err, ErrInvalidOutput)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestExtractJSONArray(t *testing.T) {
	raw := "```json\n[{\"title\":\"A\",\"rating\":4.1},{\"title\":\"B [beta]\",\"rating\":3.9}]\n```"
	got, err := ExtractJSONArray[coursePayload](raw, func(list []coursePayload) error {
		if len(list) == 0 {
			return errors.New("empty")
		}
		return nil
	})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "B [beta]", got[1].Title)
}

func TestExtractJSONArray_NoArray(t *testing.T) {
	_, err := ExtractJSONArray[coursePayload](`{"title":"A"}`, nil)
	assert.ErrorIs(t, err, ErrInvalidOutput)
}
