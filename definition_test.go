package mdndoc_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/mdndoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchOutcome_Found(t *testing.T) {
	t.Parallel()

	var nilOutcome *mdndoc.SearchOutcome
	assert.False(t, nilOutcome.Found())
	assert.False(t, (&mdndoc.SearchOutcome{Candidates: []mdndoc.SearchCandidate{}}).Found())
	assert.True(t, (&mdndoc.SearchOutcome{Definition: &mdndoc.Definition{Method: "map"}}).Found())
}

func TestSearchOutcome_MarshalJSON(t *testing.T) {
	t.Parallel()

	t.Run("encodes resolved outcome as data", func(t *testing.T) {
		t.Parallel()

		outcome := &mdndoc.SearchOutcome{Definition: &mdndoc.Definition{
			Method:     "map",
			Definition: "Creates a new array.",
			URL:        "https://developer.mozilla.org/es/docs/Array/map",
		}}

		b, err := json.Marshal(outcome)

		require.NoError(t, err)
		assert.JSONEq(t, `{"data":{
			"method":"map",
			"definition":"Creates a new array.",
			"url":"https://developer.mozilla.org/es/docs/Array/map"
		}}`, string(b))
	})

	t.Run("encodes empty candidate list as searchList", func(t *testing.T) {
		t.Parallel()

		b, err := json.Marshal(&mdndoc.SearchOutcome{})

		require.NoError(t, err)
		assert.JSONEq(t, `{"searchList":[]}`, string(b))
	})

	t.Run("decodes back into the same variant", func(t *testing.T) {
		t.Parallel()

		in := &mdndoc.SearchOutcome{Candidates: []mdndoc.SearchCandidate{
			{Title: "Map.get()", Path: "/es/docs/Map/get"},
		}}

		b, err := json.Marshal(in)
		require.NoError(t, err)

		var out mdndoc.SearchOutcome
		require.NoError(t, json.Unmarshal(b, &out))
		assert.Equal(t, in, &out)
		assert.False(t, out.Found())
	})
}
