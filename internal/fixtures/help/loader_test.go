package help

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHelpJSON(t *testing.T) {
	raw := DefaultHelpJSON()
	require.NotEmpty(t, raw)

	var doc map[string]map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "conversion")
	assert.Contains(t, doc, "predictions")
	assert.Equal(t, "How Currency Conversion Works", doc["conversion"]["title"])
}

func TestDefaultHelpJSON_ReturnsCopy(t *testing.T) {
	first := DefaultHelpJSON()
	first[0] = 'x'
	assert.Equal(t, byte('{'), DefaultHelpJSON()[0])
}
