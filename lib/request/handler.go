package requesthandler

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"hr-requests-backend/db"
	"hr-requests-backend/lib/assignment"
	"hr-requests-backend/lib/badge"
	pdfexport "hr-requests-backend/lib/export/pdf"
	xlsexport "hr-requests-backend/lib/export/xls"
	filestorage "hr-requests-backend/lib/file-storage"
	"hr-requests-backend/lib/ledger"
	"hr-requests-backend/lib/notify"
	requesthistorystore "hr-requests-backend/lib/request/history-store"
	requestitemstore "hr-requests-backend/lib/request/item-store"
	requeststore "hr-requests-backend/lib/request/store"
	requesttaskstore "hr-requests-backend/lib/request/task-store"
	"hr-requests-backend/lib/workflow"
	"hr-requests-backend/models"
	requestapimodels "hr-requests-backend/models/api/request"
	dbmodels "hr-requests-backend/models/db"
)

type Provider interface {
	Create(actor models.Actor, data requestapimodels.RequestCreateData) (id string, err error)
	GetByID(id string) (item requestapimodels.RequestView, err error)
	List(actor models.Actor, filter requestapimodels.RequestFilter) (list []requestapimodels.RequestView, rowCount int64, err error)
	Actions(actor models.Actor, id string, mode models.ViewMode) (actions []requestapimodels.ActionView, err error)
	Approve(actor models.Actor, id string, data requestapimodels.ApproveData) (requestapimodels.TransitionView, error)
	Assign(actor models.Actor, id string, data requestapimodels.AssignData) (requestapimodels.TransitionView, error)
	Resolve(actor models.Actor, id string, data requestapimodels.ResolveData) (requestapimodels.TransitionView, error)
	RejectItems(actor models.Actor, id string, data requestapimodels.RejectItemsData) (requestapimodels.TransitionView, error)
	ConfirmPurchase(actor models.Actor, id string, data requestapimodels.PurchaseActionData) (requestapimodels.TransitionView, error)
	ApprovePurchase(actor models.Actor, id string, data requestapimodels.PurchaseActionData) (requestapimodels.TransitionView, error)
	Export(ctx context.Context, id string) (fileName string, file *bytes.Buffer, err error)
	Letter(id string) (fileName string, file []byte, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:      requeststore.NewInstance(db.DB),
		assignment: assignment.Instance,
	}
}

type impl struct {
	store      requeststore.Provider
	assignment assignment.Provider
}

// checkActor verifies the acting user's session context before any state is
// touched. An employee without an org position cannot act on requests.
func checkActor(actor models.Actor) error {
	if actor.UserCode == "" {
		return errors.New("acting user is unknown")
	}
	if actor.OrgPositionID == "" {
		return errors.New("org position not set, contact HR")
	}
	return nil
}

func (i impl) Create(actor models.Actor, data requestapimodels.RequestCreateData) (id string, err error) {
	logger := log.WithField("user_code", actor.UserCode)
	if err = checkActor(actor); err != nil {
		return "", err
	}
	rec := dbmodels.Request{
		Code:            generateCode(data.RequestTypeID),
		RequestTypeID:   data.RequestTypeID,
		RequestStatusID: models.RequestStatusPending,
		CurrentStep:     0,
		AuthorCode:      actor.UserCode,
		AuthorName:      actor.UserName,
		Details:         data.Details,
	}
	if data.ReferenceID != "" {
		reference, err := i.getRec(data.ReferenceID)
		if err != nil {
			return "", err
		}
		if data.RequestTypeID == models.RequestTypeITForm && reference.RequestTypeID != models.RequestTypePurchase {
			return "", errors.New("an IT form may only reference a purchase request")
		}
		rec.ReferenceID = &reference.ID
	}
	for ordinal, step := range data.Steps {
		rec.Steps = append(rec.Steps, dbmodels.ApprovalStep{
			Ordinal:       ordinal,
			UserCode:      step.UserCode,
			UserName:      step.UserName,
			OrgPositionID: step.OrgPositionID,
		})
	}
	for _, item := range data.Items {
		rec.Items = append(rec.Items, dbmodels.RequestItem{
			UserCode:   item.UserCode,
			UserName:   item.UserName,
			StartDate:  item.StartDate,
			EndDate:    item.EndDate,
			ItemStatus: true,
		})
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := requeststore.NewInstance(tx)
		historyStore := requesthistorystore.NewInstance(tx)
		id, err = store.Create(rec)
		if err != nil {
			logger.
				WithField("request", fmt.Sprintf("%+v", data)).
				WithError(err).
				Error("failed to create request")
			return err
		}
		return appendHistory(historyStore, id, actor, models.ActionTagSubmit, "")
	})
	if err != nil {
		return "", err
	}
	logger.
		WithField("rec_id", id).
		Info("request submitted")
	i.afterTransition(context.Background(), rec)
	return id, nil
}

func (i impl) GetByID(id string) (item requestapimodels.RequestView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return requestapimodels.RequestView{}, err
	}
	return requestapimodels.RequestConvert(*rec, ledger.Project(rec.History)), nil
}

func (i impl) List(actor models.Actor, filter requestapimodels.RequestFilter) (list []requestapimodels.RequestView, rowCount int64, err error) {
	recs, err := i.store.List(actor, filter)
	if err != nil {
		return nil, 0, err
	}
	rowCount, err = i.store.ListCount(actor, filter)
	if err != nil {
		return nil, 0, err
	}
	list = make([]requestapimodels.RequestView, 0, len(recs))
	for _, rec := range recs {
		list = append(list, requestapimodels.RequestConvert(rec, ledger.Project(rec.History)))
	}
	return list, rowCount, nil
}

func (i impl) Actions(actor models.Actor, id string, mode models.ViewMode) (actions []requestapimodels.ActionView, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return nil, err
	}
	dispatched := workflow.Dispatch(workflow.NewContext(*rec, actor, mode, false))
	return filterEligible(*rec, actor, dispatched), nil
}

// filterEligible keeps only the actions the actor is actually responsible
// for: the current step owner approves, an assignee resolves.
func filterEligible(rec dbmodels.Request, actor models.Actor, actions []requestapimodels.ActionView) []requestapimodels.ActionView {
	result := make([]requestapimodels.ActionView, 0, len(actions))
	for _, action := range actions {
		switch action.Action {
		case models.ActionApprove, models.ActionReject:
			if !isCurrentStepOwner(rec, actor) {
				continue
			}
		case models.ActionResolve, models.ActionConfirmPurchase:
			if !isAssignee(rec, actor) {
				continue
			}
		}
		result = append(result, action)
	}
	return result
}

func (i impl) Approve(actor models.Actor, id string, data requestapimodels.ApproveData) (requestapimodels.TransitionView, error) {
	if err := checkActor(actor); err != nil {
		return requestapimodels.TransitionView{}, err
	}
	rec, err := i.getRec(id)
	if err != nil {
		return requestapimodels.TransitionView{}, err
	}
	if !data.Status {
		return i.rejectWhole(*rec, actor, data.Note)
	}
	logger := transitionLogger(actor, id)
	if !rec.RequestStatusID.AllowApprove() {
		return requestapimodels.TransitionView{}, errors.Errorf("approval is not possible in the current status: %v", rec.RequestStatusID)
	}
	isLast, step := rec.CurrentStepOwner()
	if step == nil {
		return requestapimodels.TransitionView{}, errors.New("no approval step is waiting on this request")
	}
	if step.UserCode != actor.UserCode {
		return requestapimodels.TransitionView{}, errors.New("another employee is responsible for the current step")
	}
	newStatus := rec.RequestStatusID
	updMap := map[string]interface{}{}
	if isLast {
		newStatus = models.RequestStatusFinalApproval
		updMap["RequestStatusID"] = newStatus
	} else {
		updMap["CurrentStep"] = rec.CurrentStep + 1
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := requeststore.NewInstance(tx)
		historyStore := requesthistorystore.NewInstance(tx)
		if err := store.Update(id, updMap); err != nil {
			return err
		}
		return appendHistory(historyStore, id, actor, models.ActionTagApprove, data.Note)
	})
	if err != nil {
		logger.WithError(err).Error("failed to approve request")
		return requestapimodels.TransitionView{}, err
	}
	logger.Info("request approved")
	i.afterTransition(context.Background(), *rec)
	return requestapimodels.TransitionView{
		RequestStatusID: newStatus,
		Destination:     workflow.Destination(models.ActionApprove, rec.RequestTypeID, isPurchaseLinked(*rec)),
	}, nil
}

func (i impl) Assign(actor models.Actor, id string, data requestapimodels.AssignData) (requestapimodels.TransitionView, error) {
	if err := checkActor(actor); err != nil {
		return requestapimodels.TransitionView{}, err
	}
	rec, err := i.getRec(id)
	if err != nil {
		return requestapimodels.TransitionView{}, err
	}
	logger := transitionLogger(actor, id)
	if !rec.RequestStatusID.AllowAssign() {
		return requestapimodels.TransitionView{}, errors.Errorf("assignment is not possible in the current status: %v", rec.RequestStatusID)
	}
	if rec.HasAssignment() {
		return requestapimodels.TransitionView{}, errors.New("the task is already assigned")
	}
	users, err := i.assignment.Resolve(data.AssignedUsers)
	if err != nil {
		return requestapimodels.TransitionView{}, err
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := requeststore.NewInstance(tx)
		taskStore := requesttaskstore.NewInstance(tx)
		historyStore := requesthistorystore.NewInstance(tx)
		for _, user := range users {
			_, err := taskStore.Create(dbmodels.AssignedTask{
				RequestID:  id,
				UserCode:   user.UserCode,
				UserName:   user.UserName,
				Email:      user.Email,
				TargetDate: data.TargetDate,
			})
			if err != nil {
				return err
			}
		}
		if err := store.Update(id, map[string]interface{}{"RequestStatusID": models.RequestStatusAssigned}); err != nil {
			return err
		}
		return appendHistory(historyStore, id, actor, models.ActionTagAssign, data.Note)
	})
	if err != nil {
		logger.WithError(err).Error("failed to assign task")
		return requestapimodels.TransitionView{}, err
	}
	logger.
		WithField("assignees", len(users)).
		Info("task assigned")
	if notify.Instance != nil {
		notify.Instance.TaskAssigned(*rec, users, data.Note)
	}
	i.afterTransition(context.Background(), *rec, assigneeCodes(users)...)
	return requestapimodels.TransitionView{
		RequestStatusID: models.RequestStatusAssigned,
		Destination:     workflow.Destination(models.ActionAssign, rec.RequestTypeID, isPurchaseLinked(*rec)),
	}, nil
}

func (i impl) Resolve(actor models.Actor, id string, data requestapimodels.ResolveData) (requestapimodels.TransitionView, error) {
	if err := checkActor(actor); err != nil {
		return requestapimodels.TransitionView{}, err
	}
	rec, err := i.getRec(id)
	if err != nil {
		return requestapimodels.TransitionView{}, err
	}
	logger := transitionLogger(actor, id)
	if !rec.RequestStatusID.AllowResolve() {
		return requestapimodels.TransitionView{}, errors.Errorf("resolution is not possible in the current status: %v", rec.RequestStatusID)
	}
	if !isAssignee(*rec, actor) {
		return requestapimodels.TransitionView{}, errors.New("the task is assigned to another employee")
	}
	if rec.RequestTypeID.RequiresCompletionDates() {
		if data.ActualDate == nil || (data.TargetDate == nil && !hasTargetDate(*rec)) {
			return requestapimodels.TransitionView{}, errors.New("target and actual completion dates are required")
		}
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		store := requeststore.NewInstance(tx)
		taskStore := requesttaskstore.NewInstance(tx)
		historyStore := requesthistorystore.NewInstance(tx)
		if err := taskStore.MarkResolved(id, data.TargetDate, data.ActualDate, time.Now()); err != nil {
			return err
		}
		if err := store.Update(id, map[string]interface{}{"RequestStatusID": models.RequestStatusComplete}); err != nil {
			return err
		}
		return appendHistory(historyStore, id, actor, models.ActionTagResolve, data.Note)
	})
	if err != nil {
		logger.WithError(err).Error("failed to resolve task")
		return requestapimodels.TransitionView{}, err
	}
	logger.Info("task resolved")
	if notify.Instance != nil {
		notify.Instance.RequestDecided(*rec, "completed", data.Note)
	}
	i.afterTransition(context.Background(), *rec)
	return requestapimodels.TransitionView{
		RequestStatusID: models.RequestStatusComplete,
		Destination:     workflow.Destination(models.ActionResolve, rec.RequestTypeID, isPurchaseLinked(*rec)),
	}, nil
}

func (i impl) RejectItems(actor models.Actor, id string, data requestapimodels.RejectItemsData) (requestapimodels.TransitionView, error) {
	if err := checkActor(actor); err != nil {
		return requestapimodels.TransitionView{}, err
	}
	rec, err := i.getRec(id)
	if err != nil {
		return requestapimodels.TransitionView{}, err
	}
	if !rec.RequestTypeID.IsComposite() {
		return requestapimodels.TransitionView{}, errors.Errorf("request type %v does not carry line items", rec.RequestTypeID)
	}
	if !rec.RequestStatusID.AllowReject() {
		return requestapimodels.TransitionView{}, errors.Errorf("rejection is not possible in the current status: %v", rec.RequestStatusID)
	}
	if !isCurrentStepOwner(*rec, actor) {
		return requestapimodels.TransitionView{}, errors.New("another employee is responsible for the current step")
	}
	scope, itemIDs, err := resolveRejectionScope(data.ItemIDs, rec.Items)
	if err != nil {
		return requestapimodels.TransitionView{}, err
	}
	// An empty selection and a full selection both reject the whole request.
	if scope == scopeWhole {
		return i.rejectWhole(*rec, actor, data.Note)
	}
	logger := transitionLogger(actor, id)
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		itemStore := requestitemstore.NewInstance(tx)
		historyStore := requesthistorystore.NewInstance(tx)
		if err := itemStore.MarkRejected(id, itemIDs, data.Note); err != nil {
			return err
		}
		return appendHistory(historyStore, id, actor, models.ActionTagRejectItems, data.Note)
	})
	if err != nil {
		logger.WithError(err).Error("failed to reject line items")
		return requestapimodels.TransitionView{}, err
	}
	logger.
		WithField("items", len(itemIDs)).
		Info("line items rejected")
	i.afterTransition(context.Background(), *rec)
	// The parent request keeps its status; the remaining items stay
	// pending for further action.
	return requestapimodels.TransitionView{
		RequestStatusID: rec.RequestStatusID,
		Destination:     workflow.Destination(models.ActionReject, rec.RequestTypeID, isPurchaseLinked(*rec)),
	}, nil
}

func (i impl) ConfirmPurchase(actor models.Actor, id string, data requestapimodels.PurchaseActionData) (requestapimodels.TransitionView, error) {
	if err := checkActor(actor); err != nil {
		return requestapimodels.TransitionView{}, err
	}
	rec, err := i.getRec(id)
	if err != nil {
		return requestapimodels.TransitionView{}, err
	}
	if !isPurchaseLinked(*rec) {
		return requestapimodels.TransitionView{}, errors.New("the request does not participate in the purchase flow")
	}
	if !rec.RequestStatusID.AllowConfirmPurchase() {
		return requestapimodels.TransitionView{}, errors.Errorf("purchase confirmation is not possible in the current status: %v", rec.RequestStatusID)
	}
	if !isAssignee(*rec, actor) {
		return requestapimodels.TransitionView{}, errors.New("the task is assigned to another employee")
	}
	err = i.changeStatus(actor, id, models.RequestStatusWaitConfirm, models.ActionTagConfirmPurchase, data.Note)
	if err != nil {
		return requestapimodels.TransitionView{}, err
	}
	i.afterTransition(context.Background(), *rec)
	return requestapimodels.TransitionView{
		RequestStatusID: models.RequestStatusWaitConfirm,
		Destination:     workflow.Destination(models.ActionConfirmPurchase, rec.RequestTypeID, true),
	}, nil
}

func (i impl) ApprovePurchase(actor models.Actor, id string, data requestapimodels.PurchaseActionData) (requestapimodels.TransitionView, error) {
	if err := checkActor(actor); err != nil {
		return requestapimodels.TransitionView{}, err
	}
	rec, err := i.getRec(id)
	if err != nil {
		return requestapimodels.TransitionView{}, err
	}
	if !isPurchaseLinked(*rec) {
		return requestapimodels.TransitionView{}, errors.New("the request does not participate in the purchase flow")
	}
	if !rec.RequestStatusID.AllowApprovePurchase() {
		return requestapimodels.TransitionView{}, errors.Errorf("purchase approval is not possible in the current status: %v", rec.RequestStatusID)
	}
	finalStep := rec.FinalStepOwner()
	if finalStep == nil || finalStep.UserCode != actor.UserCode {
		return requestapimodels.TransitionView{}, errors.New("the final step owner is responsible for purchase approval")
	}
	err = i.changeStatus(actor, id, models.RequestStatusAssigned, models.ActionTagApprovePurchase, data.Note)
	if err != nil {
		return requestapimodels.TransitionView{}, err
	}
	i.afterTransition(context.Background(), *rec)
	return requestapimodels.TransitionView{
		RequestStatusID: models.RequestStatusAssigned,
		Destination:     workflow.Destination(models.ActionApprovePurchase, rec.RequestTypeID, true),
	}, nil
}

func (i impl) Export(ctx context.Context, id string) (fileName string, file *bytes.Buffer, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return "", nil, err
	}
	buf, err := xlsexport.Instance.ExportRequest(*rec, ledger.Project(rec.History))
	if err != nil {
		return "", nil, err
	}
	fileName = fmt.Sprintf("%s.xlsx", rec.Code)
	if filestorage.Instance != nil {
		err = filestorage.Instance.ArchiveExport(ctx, rec.Code, fileName,
			"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
		if err != nil {
			log.WithField("rec_id", id).WithError(err).Error("failed to archive export")
		}
	}
	return fileName, buf, nil
}

func (i impl) Letter(id string) (fileName string, file []byte, err error) {
	rec, err := i.getRec(id)
	if err != nil {
		return "", nil, err
	}
	file, err = pdfexport.GenerateLetter(*rec)
	if err != nil {
		return "", nil, err
	}
	return fmt.Sprintf("%s.pdf", rec.Code), file, nil
}

// rejectWhole terminates the request. It is shared by the explicit reject
// transition and by item rejections covering the full item set.
func (i impl) rejectWhole(rec dbmodels.Request, actor models.Actor, note string) (requestapimodels.TransitionView, error) {
	logger := transitionLogger(actor, rec.ID)
	if !rec.RequestStatusID.AllowReject() {
		return requestapimodels.TransitionView{}, errors.Errorf("rejection is not possible in the current status: %v", rec.RequestStatusID)
	}
	if rec.RequestStatusID == models.RequestStatusPending && !isCurrentStepOwner(rec, actor) {
		return requestapimodels.TransitionView{}, errors.New("another employee is responsible for the current step")
	}
	err := i.changeStatus(actor, rec.ID, models.RequestStatusReject, models.ActionTagReject, note)
	if err != nil {
		logger.WithError(err).Error("failed to reject request")
		return requestapimodels.TransitionView{}, err
	}
	logger.Info("request rejected")
	if notify.Instance != nil {
		notify.Instance.RequestDecided(rec, "rejected", note)
	}
	i.afterTransition(context.Background(), rec)
	return requestapimodels.TransitionView{
		RequestStatusID: models.RequestStatusReject,
		Destination:     workflow.Destination(models.ActionReject, rec.RequestTypeID, isPurchaseLinked(rec)),
	}, nil
}

func (i impl) changeStatus(actor models.Actor, id string, status models.RequestStatus, actionTag, note string) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		store := requeststore.NewInstance(tx)
		historyStore := requesthistorystore.NewInstance(tx)
		if err := store.Update(id, map[string]interface{}{"RequestStatusID": status}); err != nil {
			return err
		}
		return appendHistory(historyStore, id, actor, actionTag, note)
	})
}

func (i impl) getRec(id string) (*dbmodels.Request, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("failed to load request")
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("request not found")
	}
	return rec, nil
}

// afterTransition fans out the best-effort side effects: badge counter
// invalidation and websocket pushes for every affected user.
func (i impl) afterTransition(ctx context.Context, rec dbmodels.Request, extraCodes ...string) {
	codes := append(affectedUsers(rec), extraCodes...)
	if badge.Instance != nil {
		badge.Instance.Invalidate(ctx, codes...)
	}
	if notify.Instance != nil {
		notify.Instance.PushBadge(ctx, codes...)
	}
}

func affectedUsers(rec dbmodels.Request) []string {
	codes := []string{rec.AuthorCode}
	for _, step := range rec.Steps {
		codes = append(codes, step.UserCode)
	}
	for _, task := range rec.Tasks {
		codes = append(codes, task.UserCode)
	}
	return codes
}

func assigneeCodes(users []requestapimodels.AssignedUserData) []string {
	codes := make([]string, 0, len(users))
	for _, user := range users {
		codes = append(codes, user.UserCode)
	}
	return codes
}

func appendHistory(historyStore requesthistorystore.Provider, requestID string, actor models.Actor, actionTag, note string) error {
	_, err := historyStore.Create(dbmodels.HistoryEntry{
		RequestID:        requestID,
		UserCode:         actor.UserCode,
		UserNameApproval: actor.UserName,
		Action:           actionTag,
		Note:             note,
	})
	return err
}

func transitionLogger(actor models.Actor, id string) *log.Entry {
	return log.
		WithField("rec_id", id).
		WithField("user_code", actor.UserCode)
}

func isCurrentStepOwner(rec dbmodels.Request, actor models.Actor) bool {
	_, step := rec.CurrentStepOwner()
	return step != nil && step.UserCode == actor.UserCode
}

func hasTargetDate(rec dbmodels.Request) bool {
	for _, task := range rec.Tasks {
		if task.TargetDate != nil {
			return true
		}
	}
	return false
}

func isAssignee(rec dbmodels.Request, actor models.Actor) bool {
	for _, task := range rec.Tasks {
		if task.UserCode == actor.UserCode {
			return true
		}
	}
	return false
}

func isPurchaseLinked(rec dbmodels.Request) bool {
	return rec.RequestTypeID.SupportsPurchaseFlow() && rec.ReferenceID != nil
}

var codePrefix = map[models.RequestType]string{
	models.RequestTypeWarningLetter:       "WL",
	models.RequestTypeTerminationLetter:   "TL",
	models.RequestTypeResignationLetter:   "RL",
	models.RequestTypeManpowerRequisition: "MR",
	models.RequestTypeTimekeeping:         "TK",
	models.RequestTypeOvertime:            "OT",
	models.RequestTypeLeaveRequest:        "LR",
	models.RequestTypeInternalMemoHR:      "IM",
	models.RequestTypeITForm:              "ITF",
	models.RequestTypePurchase:            "PR",
}

func generateCode(requestType models.RequestType) string {
	prefix, exist := codePrefix[requestType]
	if !exist {
		prefix = "RQ"
	}
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(uuid.NewString()[:8]))
}
