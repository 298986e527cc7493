package response

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seelv/dancebook/internal/domain"
)

func TestNewPackResponse(t *testing.T) {
	t.Run("empty pack leaves starting date out", func(t *testing.T) {
		raw, err := json.Marshal(NewPackResponse(domain.Pack{ID: 7, Name: "empty", Events: []domain.Event{}}))
		require.NoError(t, err)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.NotContains(t, body, "starting_date")
		assert.Equal(t, "empty", body["name"])
	})

	t.Run("earliest event date", func(t *testing.T) {
		resp := NewPackResponse(domain.Pack{ID: 1, Events: []domain.Event{
			{ID: 2, Date: domain.NewDate(2026, time.November, 15)},
			{ID: 1, Date: domain.NewDate(2026, time.November, 14)},
		}})
		require.NotNil(t, resp.StartingDate)
		assert.Equal(t, "2026-11-14", resp.StartingDate.String())
	})
}
