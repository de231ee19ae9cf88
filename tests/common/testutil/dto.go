//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap converts a request DTO to its JSON object form and applies muts, so a
// test can send payloads the typed DTO cannot express.
func DtoMap(t *testing.T, v any, muts ...func(map[string]any)) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err, "failed to marshal DTO")
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m), "DTO must marshal to a JSON object")
	for _, f := range muts {
		f(m)
	}
	return m
}
