package requestapimodels

import (
	"time"

	"github.com/pkg/errors"
	"hr-requests-backend/models"
	apimodels "hr-requests-backend/models/api"
	dbmodels "hr-requests-backend/models/db"
)

type RequestCreateData struct {
	RequestTypeID models.RequestType      `json:"request_type_id"`
	ReferenceID   string                  `json:"reference_id,omitempty"` // related request, e.g. purchase behind an IT form
	Details       dbmodels.RequestDetails `json:"details"`
	Items         []ItemData              `json:"items,omitempty"`
	Steps         []StepData              `json:"approval_steps"`
}

func (r RequestCreateData) Validate() error {
	if !r.RequestTypeID.IsValid() {
		return errors.Errorf("unknown request type %v", r.RequestTypeID)
	}
	if err := r.Details.MatchesType(r.RequestTypeID); err != nil {
		return err
	}
	if len(r.Steps) == 0 {
		return errors.New("approval chain is empty")
	}
	for _, step := range r.Steps {
		if err := step.Validate(); err != nil {
			return err
		}
	}
	if r.RequestTypeID.IsComposite() && len(r.Items) == 0 {
		return errors.New("composite request requires at least one line item")
	}
	if !r.RequestTypeID.IsComposite() && len(r.Items) != 0 {
		return errors.Errorf("request type %v does not carry line items", r.RequestTypeID)
	}
	for _, item := range r.Items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	return nil
}

type StepData struct {
	UserCode      string `json:"user_code"`
	UserName      string `json:"user_name"`
	OrgPositionID string `json:"org_position_id"`
}

func (s StepData) Validate() error {
	if s.UserCode == "" {
		return errors.New("approval step without user code")
	}
	return nil
}

type ItemData struct {
	UserCode  string    `json:"user_code"`
	UserName  string    `json:"user_name"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

func (i ItemData) Validate() error {
	if i.StartDate.IsZero() || i.EndDate.IsZero() {
		return errors.New("line item requires start and end date")
	}
	if i.EndDate.Before(i.StartDate) {
		return errors.New("line item end date precedes start date")
	}
	return nil
}

type RequestFilter struct {
	apimodels.Pagination
	Queue         models.Queue       `json:"queue"`
	RequestTypeID models.RequestType `json:"request_type_id,omitempty"`
}

func (f RequestFilter) Validate() error {
	switch f.Queue {
	case models.QueueWaitApproval, models.QueueAssignedTasks, models.QueuePurchaseWait, models.QueueMyRequests:
	default:
		return errors.Errorf("unknown queue %v", f.Queue)
	}
	if f.RequestTypeID != "" && !f.RequestTypeID.IsValid() {
		return errors.Errorf("unknown request type %v", f.RequestTypeID)
	}
	return nil
}

type RequestView struct {
	ID              string                  `json:"id"`
	Code            string                  `json:"code"`
	RequestTypeID   models.RequestType      `json:"request_type_id"`
	RequestStatusID models.RequestStatus    `json:"request_status_id"`
	CurrentStep     int                     `json:"current_step"`
	AuthorCode      string                  `json:"author_code"`
	AuthorName      string                  `json:"author_name"`
	ReferenceID     string                  `json:"reference_id,omitempty"`
	Details         dbmodels.RequestDetails `json:"details"`
	Steps           []StepView              `json:"approval_steps"`
	Items           []ItemView              `json:"items,omitempty"`
	AssignedUsers   []AssignedUserView      `json:"assigned_users,omitempty"`
	History         []HistoryEntryView      `json:"history_application_forms"`
	CreatedAt       time.Time               `json:"created_at"`
}

type StepView struct {
	StepData
	Ordinal int `json:"ordinal"`
}

type ItemView struct {
	ID         string    `json:"id"`
	UserCode   string    `json:"user_code"`
	UserName   string    `json:"user_name"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	ItemStatus bool      `json:"application_form_item_status"`
	NoteOfHR   string    `json:"note_of_hr"`
}

type AssignedUserView struct {
	UserCode   string     `json:"user_code"`
	UserName   string     `json:"user_name"`
	Email      string     `json:"email"`
	TargetDate *time.Time `json:"target_date,omitempty"`
	ActualDate *time.Time `json:"actual_date,omitempty"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

func RequestConvert(rec dbmodels.Request, history []HistoryEntryView) RequestView {
	view := RequestView{
		ID:              rec.ID,
		Code:            rec.Code,
		RequestTypeID:   rec.RequestTypeID,
		RequestStatusID: rec.RequestStatusID,
		CurrentStep:     rec.CurrentStep,
		AuthorCode:      rec.AuthorCode,
		AuthorName:      rec.AuthorName,
		Details:         rec.Details,
		History:         history,
		CreatedAt:       rec.CreatedAt,
	}
	if rec.ReferenceID != nil {
		view.ReferenceID = *rec.ReferenceID
	}
	view.Steps = make([]StepView, 0, len(rec.Steps))
	for _, step := range rec.Steps {
		view.Steps = append(view.Steps, StepView{
			StepData: StepData{
				UserCode:      step.UserCode,
				UserName:      step.UserName,
				OrgPositionID: step.OrgPositionID,
			},
			Ordinal: step.Ordinal,
		})
	}
	view.Items = make([]ItemView, 0, len(rec.Items))
	for _, item := range rec.Items {
		view.Items = append(view.Items, ItemConvert(item))
	}
	view.AssignedUsers = make([]AssignedUserView, 0, len(rec.Tasks))
	for _, task := range rec.Tasks {
		view.AssignedUsers = append(view.AssignedUsers, AssignedUserView{
			UserCode:   task.UserCode,
			UserName:   task.UserName,
			Email:      task.Email,
			TargetDate: task.TargetDate,
			ActualDate: task.ActualDate,
			ResolvedAt: task.ResolvedAt,
		})
	}
	return view
}

func ItemConvert(rec dbmodels.RequestItem) ItemView {
	return ItemView{
		ID:         rec.ID,
		UserCode:   rec.UserCode,
		UserName:   rec.UserName,
		StartDate:  rec.StartDate,
		EndDate:    rec.EndDate,
		ItemStatus: rec.ItemStatus,
		NoteOfHR:   rec.NoteOfHR,
	}
}
