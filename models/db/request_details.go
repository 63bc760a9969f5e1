package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"hr-requests-backend/models"
)

// RequestDetails is the per-type payload of a request, stored as jsonb.
// Exactly one variant section is set, matching the request type; it is
// parsed and validated once at the API boundary.
type RequestDetails struct {
	Leave       *LeaveDetails       `json:"leave,omitempty"`
	Overtime    *OvertimeDetails    `json:"overtime,omitempty"`
	ITForm      *ITFormDetails      `json:"it_form,omitempty"`
	Resignation *ResignationDetails `json:"resignation,omitempty"`
	Termination *TerminationDetails `json:"termination,omitempty"`
	Warning     *WarningDetails     `json:"warning,omitempty"`
	Requisition *RequisitionDetails `json:"requisition,omitempty"`
	Memo        *MemoDetails        `json:"memo,omitempty"`
	Purchase    *PurchaseDetails    `json:"purchase,omitempty"`
}

type LeaveDetails struct {
	LeaveType string `json:"leave_type"`
	Reason    string `json:"reason"`
}

type OvertimeDetails struct {
	Project string `json:"project"`
	Reason  string `json:"reason"`
}

type ITFormDetails struct {
	Category    string     `json:"category"`
	Priority    string     `json:"priority"`
	Description string     `json:"description"`
	TargetDate  *time.Time `json:"target_date,omitempty"`
	ActualDate  *time.Time `json:"actual_date,omitempty"`
}

type ResignationDetails struct {
	LastWorkingDate time.Time `json:"last_working_date"`
	Reason          string    `json:"reason"`
	HandOver        string    `json:"hand_over"`
}

type TerminationDetails struct {
	TerminationDate time.Time `json:"termination_date"`
	Reason          string    `json:"reason"`
}

type WarningDetails struct {
	ViolationDate time.Time `json:"violation_date"`
	Violation     string    `json:"violation"`
	WarningLevel  int       `json:"warning_level"`
}

type RequisitionDetails struct {
	JobTitle      string `json:"job_title"`
	Department    string `json:"department"`
	OpenPositions int    `json:"open_positions"`
	Reason        string `json:"reason"`
}

type MemoDetails struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
}

type PurchaseDetails struct {
	Items         string  `json:"items"`
	EstimatedCost float64 `json:"estimated_cost"`
	Supplier      string  `json:"supplier"`
}

func (d RequestDetails) Value() (driver.Value, error) {
	valueString, err := json.Marshal(d)
	return string(valueString), err
}

func (d *RequestDetails) Scan(value any) error {
	if err := json.Unmarshal(value.([]byte), &d); err != nil {
		return err
	}
	return nil
}

// MatchesType checks that the single populated variant agrees with the
// declared request type.
func (d RequestDetails) MatchesType(requestType models.RequestType) error {
	variants := map[models.RequestType]bool{
		models.RequestTypeLeaveRequest:        d.Leave != nil,
		models.RequestTypeOvertime:            d.Overtime != nil,
		models.RequestTypeITForm:              d.ITForm != nil,
		models.RequestTypeResignationLetter:   d.Resignation != nil,
		models.RequestTypeTerminationLetter:   d.Termination != nil,
		models.RequestTypeWarningLetter:       d.Warning != nil,
		models.RequestTypeManpowerRequisition: d.Requisition != nil,
		models.RequestTypeInternalMemoHR:      d.Memo != nil,
		models.RequestTypePurchase:            d.Purchase != nil,
	}
	for variantType, set := range variants {
		if set && variantType != requestType {
			return errors.Errorf("details payload %v does not match request type %v", variantType, requestType)
		}
	}
	if need, known := variants[requestType]; known && !need {
		return errors.Errorf("missing details payload for request type %v", requestType)
	}
	return nil
}
