package requesthandler

import (
	"testing"

	"github.com/stretchr/testify/require"
	dbmodels "hr-requests-backend/models/db"
)

func leaveItems(ids ...string) []dbmodels.RequestItem {
	items := make([]dbmodels.RequestItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, dbmodels.RequestItem{
			BaseModel:  dbmodels.BaseModel{ID: id},
			ItemStatus: true,
		})
	}
	return items
}

func TestResolveRejectionScope(t *testing.T) {
	items := leaveItems("i1", "i2", "i3")

	t.Run("empty selection rejects the whole request", func(t *testing.T) {
		scope, ids, err := resolveRejectionScope(nil, items)
		require.Nil(t, err)
		require.Equal(t, scopeWhole, scope)
		require.Empty(t, ids)
	})

	t.Run("full selection is equivalent to rejecting the whole request", func(t *testing.T) {
		scope, ids, err := resolveRejectionScope([]string{"i1", "i2", "i3"}, items)
		require.Nil(t, err)
		require.Equal(t, scopeWhole, scope)
		require.Empty(t, ids)
	})

	t.Run("strict subset rejects only the selected items", func(t *testing.T) {
		scope, ids, err := resolveRejectionScope([]string{"i2"}, items)
		require.Nil(t, err)
		require.Equal(t, scopePartial, scope)
		require.Equal(t, []string{"i2"}, ids)
	})

	t.Run("duplicated selections collapse", func(t *testing.T) {
		scope, ids, err := resolveRejectionScope([]string{"i2", "i2", "i3", "i3"}, items)
		require.Nil(t, err)
		require.Equal(t, scopePartial, scope)
		require.Equal(t, []string{"i2", "i3"}, ids)
	})

	t.Run("duplicates covering the full set fall through to whole rejection", func(t *testing.T) {
		scope, ids, err := resolveRejectionScope([]string{"i1", "i1", "i2", "i3"}, items)
		require.Nil(t, err)
		require.Equal(t, scopeWhole, scope)
		require.Empty(t, ids)
	})

	t.Run("foreign item is refused", func(t *testing.T) {
		_, _, err := resolveRejectionScope([]string{"other"}, items)
		require.Error(t, err)
	})
}
