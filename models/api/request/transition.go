package requestapimodels

import (
	"time"

	"github.com/pkg/errors"
	"hr-requests-backend/models"
)

// ApproveData drives the generic approve/reject transition.
// Status=false is whole-request rejection and requires a note.
type ApproveData struct {
	Status bool   `json:"status"`
	Note   string `json:"note"`
}

func (a ApproveData) Validate() error {
	if !a.Status && a.Note == "" {
		return errors.New("rejection requires a note")
	}
	return nil
}

type AssignedUserData struct {
	UserCode string `json:"user_code"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
}

func (a AssignedUserData) Validate() error {
	if a.UserCode == "" {
		return errors.New("assignee without user code")
	}
	return nil
}

type AssignData struct {
	AssignedUsers []AssignedUserData `json:"assigned_users"`
	TargetDate    *time.Time         `json:"target_date,omitempty"`
	Note          string             `json:"note"`
}

func (a AssignData) Validate() error {
	for _, user := range a.AssignedUsers {
		if err := user.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type ResolveData struct {
	TargetDate *time.Time `json:"target_date,omitempty"`
	ActualDate *time.Time `json:"actual_date,omitempty"`
	Note       string     `json:"note"`
}

type RejectItemsData struct {
	ItemIDs []string `json:"item_ids"`
	Note    string   `json:"note"`
}

func (r RejectItemsData) Validate() error {
	if r.Note == "" {
		return errors.New("rejection requires a note")
	}
	return nil
}

type PurchaseActionData struct {
	Note string `json:"note"`
}

// TransitionView is returned on every successful transition: the new status
// and the queue the user is routed to.
type TransitionView struct {
	RequestStatusID models.RequestStatus `json:"request_status_id"`
	Destination     models.Queue         `json:"destination"`
}

// ActionView is one enabled action computed by the dispatcher.
type ActionView struct {
	Action           models.ActionKind `json:"action"`
	RequireNote      bool              `json:"require_note"`
	RequireAssignees bool              `json:"require_assignees"`
	RequireDates     bool              `json:"require_dates"`
	CandidateTeam    models.TeamKind   `json:"candidate_team,omitempty"`
	Destination      models.Queue      `json:"destination,omitempty"`
}

// HistoryEntryView is one rendered ledger row. IsReject is the only
// presentation-relevant distinction between action tags; blank notes and
// missing timestamps render as "--".
type HistoryEntryView struct {
	UserNameApproval string `json:"user_name_approval"`
	Action           string `json:"action"`
	IsReject         bool   `json:"is_reject"`
	Note             string `json:"note"`
	CreatedAt        string `json:"created_at"`
}
