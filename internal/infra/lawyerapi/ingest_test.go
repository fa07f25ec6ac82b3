package lawyerapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestor_RejectsInvalidRecords(t *testing.T) {
	in := NewIngestor()

	cases := []struct {
		name   string
		item   any
		reason string
	}{
		{"missing id", map[string]any{"firstName": "A"}, "id is required"},
		{"missing first name", map[string]any{"_id": "1"}, "firstname is required"},
		{"negative year", map[string]any{"_id": "1", "firstName": "A", "yearOfJoining": -3}, "yearofjoining must be at least 0"},
		{"bad year", map[string]any{"_id": "1", "firstName": "A", "yearOfJoining": "soon"}, "yearOfJoining"},
		{"not an object", "lawyer", "cannot unmarshal"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, rejected := in.Providers([]any{tc.item})
			assert.Empty(t, out)
			require.Len(t, rejected, 1)
			assert.Contains(t, rejected[0].Reason, tc.reason)
		})
	}
}

func TestIngestor_KeepsOrderAndNormalizes(t *testing.T) {
	out, rejected := NewIngestor().Providers([]any{
		map[string]any{"_id": "b", "firstName": "B", "qualifications": nil},
		map[string]any{"_id": "a", "firstName": "A", "yearOfJoining": nil, "qualifications": []any{" LLB ", "LLM"}},
	})
	assert.Empty(t, rejected)
	require.Len(t, out, 2)
	assert.Equal(t, "b", out[0].ID)
	assert.Equal(t, []string{}, out[0].Qualifications)
	assert.Equal(t, []string{"LLB", "LLM"}, out[1].Qualifications)
	assert.Equal(t, 0, out[1].YearOfJoining)
}
