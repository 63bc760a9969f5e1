package workflow

import (
	"hr-requests-backend/models"
	requestapimodels "hr-requests-backend/models/api/request"
	dbmodels "hr-requests-backend/models/db"
)

// Context is everything the dispatcher needs to decide the enabled actions
// for one request as seen by one actor. It is derived from the loaded
// request plus the actor's session context; the dispatcher itself stays a
// pure function over it.
type Context struct {
	Status        models.RequestStatus
	RequestType   models.RequestType
	Mode          models.ViewMode
	// FinalStepOwner is true when the actor owns the last approval step;
	// it picks the branch offered at WaitConfirm.
	FinalStepOwner bool
	// PurchaseLinked is true when the request participates in the
	// IT-purchase sub-flow (IT form with a purchase reference).
	PurchaseLinked bool
	// HasAssignment suppresses re-assignment: once made, assignment is
	// immutable and rendered read-only.
	HasAssignment bool
	// ItemsSelected hides the full-approve action while any line item is
	// individually selected, forcing partial-rejection semantics.
	ItemsSelected bool
}

// NewContext derives the dispatch context for a request and actor.
func NewContext(rec dbmodels.Request, actor models.Actor, mode models.ViewMode, itemsSelected bool) Context {
	finalOwner := false
	if step := rec.FinalStepOwner(); step != nil {
		finalOwner = step.UserCode == actor.UserCode
	}
	return Context{
		Status:         rec.RequestStatusID,
		RequestType:    rec.RequestTypeID,
		Mode:           mode,
		FinalStepOwner: finalOwner,
		PurchaseLinked: rec.RequestTypeID.SupportsPurchaseFlow() && rec.ReferenceID != nil,
		HasAssignment:  rec.HasAssignment(),
		ItemsSelected:  itemsSelected,
	}
}

// Dispatch applies the status decision table and returns the ordered set of
// enabled actions. Terminal statuses and view mode yield an empty set.
func Dispatch(c Context) []requestapimodels.ActionView {
	if c.Mode == models.ModeView {
		return nil
	}
	if c.Status.IsTerminal() {
		return nil
	}
	switch c.Status {
	case models.RequestStatusPending:
		actions := []requestapimodels.ActionView{
			{
				Action:      models.ActionReject,
				RequireNote: true,
				Destination: models.QueueWaitApproval,
			},
		}
		if !c.ItemsSelected {
			actions = append(actions, requestapimodels.ActionView{
				Action:      models.ActionApprove,
				Destination: models.QueueWaitApproval,
			})
		}
		return actions
	case models.RequestStatusFinalApproval:
		if c.HasAssignment {
			return nil
		}
		team := c.RequestType.AssigneeTeam()
		if c.Mode == models.ModeManagerITApproval {
			team = models.TeamIT
		}
		return []requestapimodels.ActionView{
			{
				Action:           models.ActionAssign,
				RequireAssignees: true,
				CandidateTeam:    team,
				Destination:      models.QueueWaitApproval,
			},
		}
	case models.RequestStatusWaitConfirm:
		if !c.PurchaseLinked {
			return nil
		}
		if c.FinalStepOwner {
			return []requestapimodels.ActionView{
				{
					Action:      models.ActionApprovePurchase,
					RequireNote: true,
					Destination: models.QueuePurchaseWait,
				},
			}
		}
		return []requestapimodels.ActionView{
			{
				Action:      models.ActionCreatePurchase,
				Destination: models.QueuePurchaseWait,
			},
		}
	case models.RequestStatusAssigned:
		destination := models.QueueAssignedTasks
		if c.PurchaseLinked {
			destination = models.QueuePurchaseWait
		}
		actions := []requestapimodels.ActionView{
			{
				Action:       models.ActionResolve,
				RequireDates: c.RequestType.RequiresCompletionDates(),
				Destination:  destination,
			},
		}
		if c.PurchaseLinked {
			actions = append(actions, requestapimodels.ActionView{
				Action:      models.ActionConfirmPurchase,
				RequireNote: true,
				Destination: models.QueuePurchaseWait,
			})
		}
		return actions
	}
	return nil
}

// Destination returns the queue a successful transition routes to. Falls
// back to the wait-approval queue for action kinds outside the table.
func Destination(kind models.ActionKind, requestType models.RequestType, purchaseLinked bool) models.Queue {
	switch kind {
	case models.ActionResolve:
		if purchaseLinked {
			return models.QueuePurchaseWait
		}
		return models.QueueAssignedTasks
	case models.ActionConfirmPurchase, models.ActionApprovePurchase, models.ActionCreatePurchase:
		return models.QueuePurchaseWait
	}
	return models.QueueWaitApproval
}
