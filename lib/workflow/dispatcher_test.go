package workflow

import (
	"testing"

	"github.com/stretchr/testify/require"
	"hr-requests-backend/models"
	requestapimodels "hr-requests-backend/models/api/request"
	dbmodels "hr-requests-backend/models/db"
)

func actionKinds(actions []requestapimodels.ActionView) []models.ActionKind {
	kinds := make([]models.ActionKind, 0, len(actions))
	for _, action := range actions {
		kinds = append(kinds, action.Action)
	}
	return kinds
}

func TestDispatchTerminalStatuses(t *testing.T) {
	for _, status := range []models.RequestStatus{models.RequestStatusComplete, models.RequestStatusReject} {
		t.Run(string(status), func(t *testing.T) {
			for _, mode := range []models.ViewMode{models.ModeApproval, models.ModeView, models.ModeManagerITApproval} {
				actions := Dispatch(Context{
					Status:      status,
					RequestType: models.RequestTypeLeaveRequest,
					Mode:        mode,
				})
				require.Empty(t, actions)
			}
		})
	}
}

func TestDispatchViewModeSuppression(t *testing.T) {
	statuses := []models.RequestStatus{
		models.RequestStatusPending,
		models.RequestStatusFinalApproval,
		models.RequestStatusWaitConfirm,
		models.RequestStatusAssigned,
	}
	for _, status := range statuses {
		actions := Dispatch(Context{
			Status:         status,
			RequestType:    models.RequestTypeITForm,
			Mode:           models.ModeView,
			FinalStepOwner: true,
			PurchaseLinked: true,
		})
		require.Empty(t, actions, "status %v", status)
	}
}

func TestDispatchPending(t *testing.T) {
	t.Run("reject and approve offered", func(t *testing.T) {
		actions := Dispatch(Context{
			Status:      models.RequestStatusPending,
			RequestType: models.RequestTypeOvertime,
			Mode:        models.ModeApproval,
		})
		require.Equal(t, []models.ActionKind{models.ActionReject, models.ActionApprove}, actionKinds(actions))
		require.True(t, actions[0].RequireNote)
	})
	t.Run("item selection hides full approve", func(t *testing.T) {
		actions := Dispatch(Context{
			Status:        models.RequestStatusPending,
			RequestType:   models.RequestTypeOvertime,
			Mode:          models.ModeApproval,
			ItemsSelected: true,
		})
		require.Equal(t, []models.ActionKind{models.ActionReject}, actionKinds(actions))
	})
}

func TestDispatchFinalApproval(t *testing.T) {
	t.Run("assign requires selection", func(t *testing.T) {
		actions := Dispatch(Context{
			Status:      models.RequestStatusFinalApproval,
			RequestType: models.RequestTypeLeaveRequest,
			Mode:        models.ModeApproval,
		})
		require.Equal(t, []models.ActionKind{models.ActionAssign}, actionKinds(actions))
		require.True(t, actions[0].RequireAssignees)
		require.Equal(t, models.TeamHR, actions[0].CandidateTeam)
	})
	t.Run("manager IT approval switches the candidate pool", func(t *testing.T) {
		actions := Dispatch(Context{
			Status:      models.RequestStatusFinalApproval,
			RequestType: models.RequestTypeLeaveRequest,
			Mode:        models.ModeManagerITApproval,
		})
		require.Len(t, actions, 1)
		require.Equal(t, models.TeamIT, actions[0].CandidateTeam)
	})
	t.Run("existing assignment is immutable", func(t *testing.T) {
		actions := Dispatch(Context{
			Status:        models.RequestStatusFinalApproval,
			RequestType:   models.RequestTypeLeaveRequest,
			Mode:          models.ModeApproval,
			HasAssignment: true,
		})
		require.Empty(t, actions)
	})
}

func TestDispatchWaitConfirm(t *testing.T) {
	t.Run("final step owner approves the purchase", func(t *testing.T) {
		actions := Dispatch(Context{
			Status:         models.RequestStatusWaitConfirm,
			RequestType:    models.RequestTypeITForm,
			Mode:           models.ModeApproval,
			PurchaseLinked: true,
			FinalStepOwner: true,
		})
		require.Equal(t, []models.ActionKind{models.ActionApprovePurchase}, actionKinds(actions))
	})
	t.Run("other actors are pointed at purchase creation", func(t *testing.T) {
		actions := Dispatch(Context{
			Status:         models.RequestStatusWaitConfirm,
			RequestType:    models.RequestTypeITForm,
			Mode:           models.ModeApproval,
			PurchaseLinked: true,
		})
		require.Equal(t, []models.ActionKind{models.ActionCreatePurchase}, actionKinds(actions))
	})
	t.Run("nothing offered outside the purchase flow", func(t *testing.T) {
		actions := Dispatch(Context{
			Status:      models.RequestStatusWaitConfirm,
			RequestType: models.RequestTypeLeaveRequest,
			Mode:        models.ModeApproval,
		})
		require.Empty(t, actions)
	})
}

func TestDispatchAssigned(t *testing.T) {
	t.Run("resolve with completion dates for IT forms", func(t *testing.T) {
		actions := Dispatch(Context{
			Status:         models.RequestStatusAssigned,
			RequestType:    models.RequestTypeITForm,
			Mode:           models.ModeApproval,
			PurchaseLinked: true,
		})
		require.Equal(t, []models.ActionKind{models.ActionResolve, models.ActionConfirmPurchase}, actionKinds(actions))
		require.True(t, actions[0].RequireDates)
		require.Equal(t, models.QueuePurchaseWait, actions[0].Destination)
	})
	t.Run("plain resolve elsewhere", func(t *testing.T) {
		actions := Dispatch(Context{
			Status:      models.RequestStatusAssigned,
			RequestType: models.RequestTypeLeaveRequest,
			Mode:        models.ModeApproval,
		})
		require.Equal(t, []models.ActionKind{models.ActionResolve}, actionKinds(actions))
		require.False(t, actions[0].RequireDates)
		require.Equal(t, models.QueueAssignedTasks, actions[0].Destination)
	})
}

func TestNewContext(t *testing.T) {
	referenceID := "purchase-1"
	rec := dbmodels.Request{
		RequestTypeID:   models.RequestTypeITForm,
		RequestStatusID: models.RequestStatusWaitConfirm,
		CurrentStep:     1,
		ReferenceID:     &referenceID,
		Steps: []dbmodels.ApprovalStep{
			{Ordinal: 0, UserCode: "E001"},
			{Ordinal: 1, UserCode: "E002"},
		},
		Tasks: []dbmodels.AssignedTask{
			{UserCode: "IT01"},
		},
	}
	c := NewContext(rec, models.Actor{UserCode: "E002"}, models.ModeApproval, false)
	require.True(t, c.FinalStepOwner)
	require.True(t, c.PurchaseLinked)
	require.True(t, c.HasAssignment)

	c = NewContext(rec, models.Actor{UserCode: "E001"}, models.ModeApproval, false)
	require.False(t, c.FinalStepOwner)
}

func TestDestination(t *testing.T) {
	require.Equal(t, models.QueueWaitApproval, Destination(models.ActionApprove, models.RequestTypeLeaveRequest, false))
	require.Equal(t, models.QueueWaitApproval, Destination(models.ActionReject, models.RequestTypeLeaveRequest, false))
	require.Equal(t, models.QueueWaitApproval, Destination(models.ActionAssign, models.RequestTypeITForm, true))
	require.Equal(t, models.QueueAssignedTasks, Destination(models.ActionResolve, models.RequestTypeLeaveRequest, false))
	require.Equal(t, models.QueuePurchaseWait, Destination(models.ActionResolve, models.RequestTypeITForm, true))
	require.Equal(t, models.QueuePurchaseWait, Destination(models.ActionConfirmPurchase, models.RequestTypeITForm, true))
}
