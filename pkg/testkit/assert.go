// Package testkit holds shared assertion helpers for handler-level tests.
package testkit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertJSONBody deep-compares actual response bytes against expected bytes
// using testify's assert.Equal after normalising both through JSON unmarshal
// (so key order and whitespace never matter).
func AssertJSONBody(t *testing.T, expected, actual []byte) {
	t.Helper()
	if len(expected) == 0 {
		return
	}

	var expVal, actVal interface{}

	require.NoError(t, json.Unmarshal(expected, &expVal),
		"expected response is not valid JSON")

	if !assert.NoError(t, json.Unmarshal(actual, &actVal),
		"actual response is not valid JSON\nbody: %s", string(actual)) {
		return
	}

	assert.Equal(t, expVal, actVal, "response body mismatch")
}

// DecodeJSON unmarshals body into dest, failing the test on malformed JSON.
func DecodeJSON(t *testing.T, body []byte, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(body, dest),
		"response is not valid JSON\nbody: %s", string(body))
}
