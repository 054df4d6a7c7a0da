package feed

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPayloadDecode(t *testing.T) {
	raw := `{
		"types": [{"id": 5, "name": "Bedding", "translation": {"en": "Bedding", "ru": "Постельное"}}],
		"categories": [{"id": 1, "name": "Root"}, {"id": 2, "name": "Child", "parent_id": 1}],
		"products": [{"id": 100, "sku": "A-1"}, {"id": 101, "sku": "A-2", "name": "broken"}]
	}`

	var p Payload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	require.Len(t, p.Types, 1)
	assert.Equal(t, int64(5), p.Types[0].ID)
	assert.Equal(t, "Постельное", p.Types[0].Translation["ru"])

	require.Len(t, p.Categories, 2)
	assert.Nil(t, p.Categories[0].ParentID)
	require.NotNil(t, p.Categories[1].ParentID)
	assert.Equal(t, int64(1), *p.Categories[1].ParentID)

	// Products stay raw; a malformed record only fails at per-record decode.
	require.Len(t, p.Products, 2)
	var good ProductRecord
	assert.NoError(t, json.Unmarshal(p.Products[0], &good))
	assert.Equal(t, "A-1", good.Sku)
	var bad ProductRecord
	assert.Error(t, json.Unmarshal(p.Products[1], &bad))
}

func TestFlexTypes(t *testing.T) {
	type sample struct {
		When  *FlexTime  `json:"when"`
		OK    FlexBool   `json:"ok"`
		N     FlexInt    `json:"n"`
		W     FlexFloat  `json:"w"`
		Label FlexString `json:"label"`
	}

	t.Run("Epoch And Loose Scalars", func(t *testing.T) {
		var p sample
		require.NoError(t, json.Unmarshal([]byte(`{"when": 1700000000, "ok": "1", "n": "7", "w": "1.5", "label": 12}`), &p))
		require.NotNil(t, p.When.Ptr())
		assert.True(t, p.OK.Bool())
		assert.Equal(t, 7, p.N.Int())
		assert.Equal(t, 1.5, p.W.Float())
		assert.Equal(t, "12", p.Label.String())
	})

	t.Run("Unparsable Date Is No Value", func(t *testing.T) {
		var p sample
		require.NoError(t, json.Unmarshal([]byte(`{"when": "soon"}`), &p))
		assert.Nil(t, p.When.Ptr())
	})

	t.Run("Absent Date Is Nil", func(t *testing.T) {
		var p sample
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.Nil(t, p.When.Ptr())
	})
}
