package models

type RequestStatus string

const (
	RequestStatusPending       RequestStatus = "PENDING"
	RequestStatusFinalApproval RequestStatus = "FINAL_APPROVAL"
	RequestStatusWaitConfirm   RequestStatus = "WAIT_CONFIRM"
	RequestStatusAssigned      RequestStatus = "ASSIGNED"
	RequestStatusComplete      RequestStatus = "COMPLETE"
	RequestStatusReject        RequestStatus = "REJECT"
)

var requestStatusHumanName = map[RequestStatus]string{
	RequestStatusPending:       "Pending approval",
	RequestStatusFinalApproval: "Final approval",
	RequestStatusWaitConfirm:   "Waiting for purchase confirmation",
	RequestStatusAssigned:      "Assigned",
	RequestStatusComplete:      "Complete",
	RequestStatusReject:        "Rejected",
}

func (s RequestStatus) ToHuman() string {
	if human, exist := requestStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

// IsTerminal reports whether no further transition is possible.
func (s RequestStatus) IsTerminal() bool {
	return s == RequestStatusComplete || s == RequestStatusReject
}

func (s RequestStatus) AllowApprove() bool {
	return s == RequestStatusPending
}

func (s RequestStatus) AllowReject() bool {
	return !s.IsTerminal()
}

func (s RequestStatus) AllowAssign() bool {
	return s == RequestStatusFinalApproval
}

func (s RequestStatus) AllowResolve() bool {
	return s == RequestStatusAssigned
}

func (s RequestStatus) AllowConfirmPurchase() bool {
	return s == RequestStatusAssigned
}

func (s RequestStatus) AllowApprovePurchase() bool {
	return s == RequestStatusWaitConfirm
}

type RequestType string

const (
	RequestTypeWarningLetter       RequestType = "WARNING_LETTER"
	RequestTypeTerminationLetter   RequestType = "TERMINATION_LETTER"
	RequestTypeResignationLetter   RequestType = "RESIGNATION_LETTER"
	RequestTypeManpowerRequisition RequestType = "MANPOWER_REQUISITION_LETTER"
	RequestTypeTimekeeping         RequestType = "TIMEKEEPING"
	RequestTypeOvertime            RequestType = "OVERTIME"
	RequestTypeLeaveRequest        RequestType = "LEAVE_REQUEST"
	RequestTypeInternalMemoHR      RequestType = "INTERNAL_MEMO_HR"
	RequestTypeITForm              RequestType = "IT_FORM"
	RequestTypePurchase            RequestType = "PURCHASE"
)

var requestTypeHumanName = map[RequestType]string{
	RequestTypeWarningLetter:       "Warning letter",
	RequestTypeTerminationLetter:   "Termination letter",
	RequestTypeResignationLetter:   "Resignation letter",
	RequestTypeManpowerRequisition: "Manpower requisition letter",
	RequestTypeTimekeeping:         "Timekeeping",
	RequestTypeOvertime:            "Overtime",
	RequestTypeLeaveRequest:        "Leave request",
	RequestTypeInternalMemoHR:      "Internal memo (HR)",
	RequestTypeITForm:              "IT form",
	RequestTypePurchase:            "Purchase",
}

func (t RequestType) ToHuman() string {
	if human, exist := requestTypeHumanName[t]; exist {
		return human
	}
	return string(t)
}

func (t RequestType) IsValid() bool {
	_, exist := requestTypeHumanName[t]
	return exist
}

// IsComposite reports whether the request carries independently
// rejectable line items.
func (t RequestType) IsComposite() bool {
	return t == RequestTypeLeaveRequest || t == RequestTypeOvertime
}

// SupportsPurchaseFlow reports whether the WaitConfirm branch applies.
// Only IT forms linked to a purchase enter it.
func (t RequestType) SupportsPurchaseFlow() bool {
	return t == RequestTypeITForm
}

// RequiresCompletionDates reports whether resolve must carry
// target/actual completion dates.
func (t RequestType) RequiresCompletionDates() bool {
	return t == RequestTypeITForm
}

// AssigneeTeam is the candidate pool a task of this type is assigned from.
func (t RequestType) AssigneeTeam() TeamKind {
	if t == RequestTypeITForm || t == RequestTypePurchase {
		return TeamIT
	}
	return TeamHR
}

// IsLetter reports whether a printable letter can be generated.
func (t RequestType) IsLetter() bool {
	switch t {
	case RequestTypeWarningLetter, RequestTypeTerminationLetter, RequestTypeResignationLetter:
		return true
	}
	return false
}

// ActionKind is the closed set of transition names. The string values are
// the wire tags the transition endpoints are addressed by.
type ActionKind string

const (
	ActionApprove         ActionKind = "approval"
	ActionReject          ActionKind = "reject"
	ActionAssign          ActionKind = "assigned"
	ActionResolve         ActionKind = "resolved"
	ActionConfirmPurchase ActionKind = "confirm_purchase_request"
	ActionApprovePurchase ActionKind = "approval_purchase_request"
	// ActionCreatePurchase is a navigation hint, not a transition: the
	// actor has to raise the linked purchase request first.
	ActionCreatePurchase ActionKind = "create_purchase_request"
)

type ViewMode string

const (
	ModeApproval          ViewMode = "approval"
	ModeView              ViewMode = "view"
	ModeManagerITApproval ViewMode = "manager_it_approval"
)

// Queue identifies the destination list a user is routed to after a
// successful transition.
type Queue string

const (
	QueueWaitApproval  Queue = "wait_approval"
	QueueAssignedTasks Queue = "assigned_tasks"
	QueuePurchaseWait  Queue = "purchase_wait"
	QueueMyRequests    Queue = "my_requests"
)

type TeamKind string

const (
	TeamIT    TeamKind = "IT"
	TeamHR    TeamKind = "HR"
	TeamUnion TeamKind = "UNION"
)

func (t TeamKind) IsValid() bool {
	switch t {
	case TeamIT, TeamHR, TeamUnion:
		return true
	}
	return false
}

// History action tags. ActionTagReject is the only tag with distinct
// presentation semantics in the ledger.
const (
	ActionTagApprove         = "APPROVE"
	ActionTagReject          = "REJECT"
	ActionTagAssign          = "ASSIGN"
	ActionTagResolve         = "RESOLVE"
	ActionTagRejectItems     = "REJECT_ITEMS"
	ActionTagConfirmPurchase = "CONFIRM_PURCHASE"
	ActionTagApprovePurchase = "APPROVE_PURCHASE"
	ActionTagSubmit          = "SUBMIT"
)

// BadgeWaitApprovalKey is the named counter invalidated after every
// successful transition so pending-queue badges stay correct.
const BadgeWaitApprovalKey = "count-wait-approval-sidebar"
