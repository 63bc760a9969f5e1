package requesthandler

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"hr-requests-backend/models"
	employeeapimodels "hr-requests-backend/models/api/employee"
	requestapimodels "hr-requests-backend/models/api/request"
	dbmodels "hr-requests-backend/models/db"
)

type fakeRequestStore struct {
	rec     *dbmodels.Request
	queries int
}

func (f *fakeRequestStore) Create(rec dbmodels.Request) (string, error) { return "", nil }

func (f *fakeRequestStore) GetByID(id string) (*dbmodels.Request, error) {
	f.queries++
	return f.rec, nil
}

func (f *fakeRequestStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (f *fakeRequestStore) List(actor models.Actor, filter requestapimodels.RequestFilter) ([]dbmodels.Request, error) {
	return nil, nil
}

func (f *fakeRequestStore) ListCount(actor models.Actor, filter requestapimodels.RequestFilter) (int64, error) {
	return 0, nil
}

func (f *fakeRequestStore) CountWaitApproval(userCode string) (int64, error) { return 0, nil }

type fakeAssignment struct {
	resolved int
}

func (f *fakeAssignment) Candidates(team models.TeamKind, department string) ([]employeeapimodels.CandidateView, error) {
	return nil, nil
}

func (f *fakeAssignment) Resolve(selected []requestapimodels.AssignedUserData) ([]requestapimodels.AssignedUserData, error) {
	if len(selected) == 0 {
		return nil, errors.New("no assignee selected")
	}
	f.resolved++
	return selected, nil
}

var approver = models.Actor{
	UserCode:      "M001",
	UserName:      "Manager One",
	OrgPositionID: "pos-1",
}

func pendingRequest() *dbmodels.Request {
	return &dbmodels.Request{
		BaseModel:       dbmodels.BaseModel{ID: "req-1"},
		Code:            "LR-1",
		RequestTypeID:   models.RequestTypeLeaveRequest,
		RequestStatusID: models.RequestStatusPending,
		AuthorCode:      "E100",
		Steps: []dbmodels.ApprovalStep{
			{Ordinal: 0, UserCode: "M001", UserName: "Manager One"},
			{Ordinal: 1, UserCode: "M002", UserName: "Manager Two"},
		},
		Items: leaveItems("i1", "i2", "i3"),
	}
}

func TestActorWithoutOrgPosition(t *testing.T) {
	store := &fakeRequestStore{rec: pendingRequest()}
	handler := impl{store: store, assignment: &fakeAssignment{}}
	actor := models.Actor{UserCode: "M001", UserName: "Manager One"}

	_, err := handler.Approve(actor, "req-1", requestapimodels.ApproveData{Status: true})
	require.EqualError(t, err, "org position not set, contact HR")

	_, err = handler.Create(actor, requestapimodels.RequestCreateData{})
	require.EqualError(t, err, "org position not set, contact HR")

	_, err = handler.Assign(actor, "req-1", requestapimodels.AssignData{})
	require.EqualError(t, err, "org position not set, contact HR")

	// nothing was loaded or touched
	require.Equal(t, 0, store.queries)
}

func TestApproveGuards(t *testing.T) {
	t.Run("terminal status refuses approval", func(t *testing.T) {
		rec := pendingRequest()
		rec.RequestStatusID = models.RequestStatusComplete
		handler := impl{store: &fakeRequestStore{rec: rec}}
		_, err := handler.Approve(approver, "req-1", requestapimodels.ApproveData{Status: true})
		require.Error(t, err)
	})
	t.Run("another step owner refuses approval", func(t *testing.T) {
		stranger := models.Actor{UserCode: "X999", OrgPositionID: "pos-9"}
		handler := impl{store: &fakeRequestStore{rec: pendingRequest()}}
		_, err := handler.Approve(stranger, "req-1", requestapimodels.ApproveData{Status: true})
		require.EqualError(t, err, "another employee is responsible for the current step")
	})
}

func TestAssignGuards(t *testing.T) {
	t.Run("empty selection never reaches the stores", func(t *testing.T) {
		rec := pendingRequest()
		rec.RequestStatusID = models.RequestStatusFinalApproval
		resolver := &fakeAssignment{}
		handler := impl{store: &fakeRequestStore{rec: rec}, assignment: resolver}
		_, err := handler.Assign(approver, "req-1", requestapimodels.AssignData{})
		require.EqualError(t, err, "no assignee selected")
		require.Equal(t, 0, resolver.resolved)
	})
	t.Run("assignment is refused outside final approval", func(t *testing.T) {
		handler := impl{store: &fakeRequestStore{rec: pendingRequest()}, assignment: &fakeAssignment{}}
		_, err := handler.Assign(approver, "req-1", requestapimodels.AssignData{
			AssignedUsers: []requestapimodels.AssignedUserData{{UserCode: "HR01"}},
		})
		require.Error(t, err)
	})
	t.Run("existing assignment is immutable", func(t *testing.T) {
		rec := pendingRequest()
		rec.RequestStatusID = models.RequestStatusFinalApproval
		rec.Tasks = []dbmodels.AssignedTask{{UserCode: "HR01"}}
		handler := impl{store: &fakeRequestStore{rec: rec}, assignment: &fakeAssignment{}}
		_, err := handler.Assign(approver, "req-1", requestapimodels.AssignData{
			AssignedUsers: []requestapimodels.AssignedUserData{{UserCode: "HR02"}},
		})
		require.EqualError(t, err, "the task is already assigned")
	})
}

func TestResolveGuards(t *testing.T) {
	t.Run("only an assignee may resolve", func(t *testing.T) {
		rec := pendingRequest()
		rec.RequestStatusID = models.RequestStatusAssigned
		rec.Tasks = []dbmodels.AssignedTask{{UserCode: "HR01"}}
		handler := impl{store: &fakeRequestStore{rec: rec}}
		_, err := handler.Resolve(approver, "req-1", requestapimodels.ResolveData{})
		require.EqualError(t, err, "the task is assigned to another employee")
	})
	t.Run("IT form requires completion dates", func(t *testing.T) {
		referenceID := "purchase-1"
		rec := pendingRequest()
		rec.RequestTypeID = models.RequestTypeITForm
		rec.RequestStatusID = models.RequestStatusAssigned
		rec.ReferenceID = &referenceID
		rec.Items = nil
		rec.Tasks = []dbmodels.AssignedTask{{UserCode: approver.UserCode}}
		handler := impl{store: &fakeRequestStore{rec: rec}}
		_, err := handler.Resolve(approver, "req-1", requestapimodels.ResolveData{})
		require.EqualError(t, err, "target and actual completion dates are required")
	})
}

func TestRejectItemsGuards(t *testing.T) {
	t.Run("non-composite request carries no line items", func(t *testing.T) {
		rec := pendingRequest()
		rec.RequestTypeID = models.RequestTypeInternalMemoHR
		rec.Items = nil
		handler := impl{store: &fakeRequestStore{rec: rec}}
		_, err := handler.RejectItems(approver, "req-1", requestapimodels.RejectItemsData{Note: "no"})
		require.Error(t, err)
	})
	t.Run("foreign item is refused", func(t *testing.T) {
		handler := impl{store: &fakeRequestStore{rec: pendingRequest()}}
		_, err := handler.RejectItems(approver, "req-1", requestapimodels.RejectItemsData{
			ItemIDs: []string{"other"},
			Note:    "no",
		})
		require.Error(t, err)
	})
}

func TestPurchaseGuards(t *testing.T) {
	t.Run("confirmation is limited to purchase-linked IT forms", func(t *testing.T) {
		rec := pendingRequest()
		rec.RequestStatusID = models.RequestStatusAssigned
		handler := impl{store: &fakeRequestStore{rec: rec}}
		_, err := handler.ConfirmPurchase(approver, "req-1", requestapimodels.PurchaseActionData{})
		require.EqualError(t, err, "the request does not participate in the purchase flow")
	})
	t.Run("purchase approval is reserved for the final step owner", func(t *testing.T) {
		referenceID := "purchase-1"
		rec := pendingRequest()
		rec.RequestTypeID = models.RequestTypeITForm
		rec.RequestStatusID = models.RequestStatusWaitConfirm
		rec.ReferenceID = &referenceID
		rec.Items = nil
		handler := impl{store: &fakeRequestStore{rec: rec}}
		_, err := handler.ApprovePurchase(approver, "req-1", requestapimodels.PurchaseActionData{})
		require.EqualError(t, err, "the final step owner is responsible for purchase approval")
	})
}

func TestActionsEligibility(t *testing.T) {
	handler := impl{store: &fakeRequestStore{rec: pendingRequest()}}

	t.Run("current step owner sees reject and approve", func(t *testing.T) {
		actions, err := handler.Actions(approver, "req-1", models.ModeApproval)
		require.Nil(t, err)
		require.Len(t, actions, 2)
		require.Equal(t, models.ActionReject, actions[0].Action)
		require.Equal(t, models.ActionApprove, actions[1].Action)
	})
	t.Run("other actors see nothing at pending", func(t *testing.T) {
		actions, err := handler.Actions(models.Actor{UserCode: "X999"}, "req-1", models.ModeApproval)
		require.Nil(t, err)
		require.Empty(t, actions)
	})
	t.Run("view mode suppresses everything", func(t *testing.T) {
		actions, err := handler.Actions(approver, "req-1", models.ModeView)
		require.Nil(t, err)
		require.Empty(t, actions)
	})
}
