package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"hr-requests-backend/models"
	dbmodels "hr-requests-backend/models/db"
)

func TestRender(t *testing.T) {
	createdAt := time.Date(2024, 3, 15, 9, 30, 5, 0, time.UTC)
	t.Run("reject is visually distinct", func(t *testing.T) {
		view := Render(dbmodels.HistoryEntry{
			UserNameApproval: "Jane Roe",
			Action:           models.ActionTagReject,
			Note:             "insufficient balance",
			BaseModel:        dbmodels.BaseModel{CreatedAt: createdAt},
		})
		require.True(t, view.IsReject)
		require.Equal(t, "insufficient balance", view.Note)
		require.Equal(t, "2024-03-15 09:30:05", view.CreatedAt)
	})
	t.Run("every other action tag is non-reject", func(t *testing.T) {
		for _, action := range []string{
			models.ActionTagApprove,
			models.ActionTagAssign,
			models.ActionTagResolve,
			models.ActionTagSubmit,
			"SOMETHING_ELSE",
		} {
			view := Render(dbmodels.HistoryEntry{Action: action})
			require.False(t, view.IsReject, "action %v", action)
		}
	})
	t.Run("blank note and missing timestamp render placeholders", func(t *testing.T) {
		view := Render(dbmodels.HistoryEntry{Action: models.ActionTagApprove})
		require.Equal(t, Placeholder, view.Note)
		require.Equal(t, Placeholder, view.CreatedAt)
	})
}

func TestProjectKeepsOrder(t *testing.T) {
	entries := []dbmodels.HistoryEntry{
		{Action: models.ActionTagSubmit, UserNameApproval: "author"},
		{Action: models.ActionTagApprove, UserNameApproval: "manager"},
		{Action: models.ActionTagReject, UserNameApproval: "hr"},
	}
	views := Project(entries)
	require.Len(t, views, 3)
	require.Equal(t, "author", views[0].UserNameApproval)
	require.Equal(t, "manager", views[1].UserNameApproval)
	require.Equal(t, "hr", views[2].UserNameApproval)
	require.True(t, views[2].IsReject)
}
