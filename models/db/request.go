package dbmodels

import (
	"hr-requests-backend/models"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Request struct {
	BaseModel
	Code            string               `gorm:"type:varchar(50);uniqueIndex"`
	RequestTypeID   models.RequestType   `gorm:"type:varchar(50);index"`
	RequestStatusID models.RequestStatus `gorm:"type:varchar(50);index"`
	CurrentStep     int
	AuthorCode      string `gorm:"type:varchar(50);index"`
	AuthorName      string `gorm:"type:varchar(255)"`
	// ReferenceID links a related request, e.g. an IT form to its purchase.
	ReferenceID *string        `gorm:"type:varchar(36)"`
	Reference   *Request       `gorm:"foreignKey:ReferenceID"`
	Details     RequestDetails `gorm:"type:jsonb"`
	Steps       []ApprovalStep `gorm:"foreignKey:RequestID"`
	Items       []RequestItem  `gorm:"foreignKey:RequestID"`
	Tasks       []AssignedTask `gorm:"foreignKey:RequestID"`
	History     []HistoryEntry `gorm:"foreignKey:RequestID"`
}

func (r *Request) AfterDelete(tx *gorm.DB) (err error) {
	if r.ID == "" {
		return nil
	}
	tx.Clauses(clause.Returning{}).Where("request_id = ?", r.ID).Delete(&ApprovalStep{})
	tx.Clauses(clause.Returning{}).Where("request_id = ?", r.ID).Delete(&RequestItem{})
	tx.Clauses(clause.Returning{}).Where("request_id = ?", r.ID).Delete(&AssignedTask{})
	return
}

// CurrentStepOwner returns the step the request is waiting on, nil once the
// chain is exhausted. isLast reports whether that step is the final one.
func (r Request) CurrentStepOwner() (isLast bool, step *ApprovalStep) {
	for idx := range r.Steps {
		if r.Steps[idx].Ordinal == r.CurrentStep {
			return r.CurrentStep == len(r.Steps)-1, &r.Steps[idx]
		}
	}
	return false, nil
}

// FinalStepOwner returns the owner of the last approval step.
func (r Request) FinalStepOwner() *ApprovalStep {
	last := -1
	var step *ApprovalStep
	for idx := range r.Steps {
		if r.Steps[idx].Ordinal > last {
			last = r.Steps[idx].Ordinal
			step = &r.Steps[idx]
		}
	}
	return step
}

// HasAssignment reports whether a task assignment already exists; once made
// it is immutable.
func (r Request) HasAssignment() bool {
	return len(r.Tasks) > 0
}

// ApprovalStep is one ordinal of the approval chain, fixed at submission.
type ApprovalStep struct {
	BaseModel
	RequestID     string `gorm:"type:varchar(36);index"`
	Ordinal       int
	UserCode      string `gorm:"type:varchar(50)"`
	UserName      string `gorm:"type:varchar(255)"`
	OrgPositionID string `gorm:"type:varchar(36)"`
}

// RequestItem is a line item of a composite request (one leave period, one
// overtime period). The item set is fixed at submission; only ItemStatus and
// NoteOfHR mutate afterwards.
type RequestItem struct {
	BaseModel
	RequestID string `gorm:"type:varchar(36);index"`
	UserCode  string `gorm:"type:varchar(50)"`
	UserName  string `gorm:"type:varchar(255)"`
	StartDate time.Time
	EndDate   time.Time
	// ItemStatus is true while the item is pending or approved, false once
	// explicitly rejected.
	ItemStatus bool   `gorm:"default:true"`
	NoteOfHR   string
}

// AssignedTask records one recipient of an assign transition.
type AssignedTask struct {
	BaseModel
	RequestID  string `gorm:"type:varchar(36);index"`
	UserCode   string `gorm:"type:varchar(50)"`
	UserName   string `gorm:"type:varchar(255)"`
	Email      string `gorm:"type:varchar(255)"`
	TargetDate *time.Time
	ActualDate *time.Time
	ResolvedAt *time.Time
}

// HistoryEntry is one audit record of an action taken on a request.
// Append-only, insertion order is chronological order.
type HistoryEntry struct {
	BaseModel
	RequestID        string `gorm:"type:varchar(36);index"`
	UserCode         string `gorm:"type:varchar(50)"`
	UserNameApproval string `gorm:"type:varchar(255)"`
	Action           string `gorm:"type:varchar(50)"`
	Note             string
}
