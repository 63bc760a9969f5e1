package notify

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"hr-requests-backend/db"
	"hr-requests-backend/lib/badge"
	employeestore "hr-requests-backend/lib/employee/store"
	"hr-requests-backend/lib/smtp"
	connectionhub "hr-requests-backend/lib/ws/hub/connection-hub"
	"hr-requests-backend/models"
	requestapimodels "hr-requests-backend/models/api/request"
	dbmodels "hr-requests-backend/models/db"
	wsmodels "hr-requests-backend/models/ws"
)

// Provider fans out the side effects of a successful transition:
// notification mail and refreshed badge counters over the websocket hub.
// Everything here is best-effort; failures are logged and never surfaced
// to the transition caller.
type Provider interface {
	TaskAssigned(rec dbmodels.Request, assignees []requestapimodels.AssignedUserData, note string)
	RequestDecided(rec dbmodels.Request, decision string, note string)
	PushBadge(ctx context.Context, userCodes ...string)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		employeeStore: employeestore.NewInstance(db.DB),
	}
}

type impl struct {
	employeeStore employeestore.Provider
}

func (i impl) TaskAssigned(rec dbmodels.Request, assignees []requestapimodels.AssignedUserData, note string) {
	subject := fmt.Sprintf("Task assigned: %s", rec.Code)
	message := fmt.Sprintf("You have been assigned a task for %s %s.\nNote: %s",
		rec.RequestTypeID.ToHuman(), rec.Code, note)
	for _, assignee := range assignees {
		if assignee.Email == "" {
			continue
		}
		if err := smtp.Instance.SendEMail(assignee.Email, message, subject); err != nil {
			log.WithField("rec_id", rec.ID).WithError(err).Error("failed to notify assignee")
		}
	}
}

func (i impl) RequestDecided(rec dbmodels.Request, decision string, note string) {
	logger := log.WithField("rec_id", rec.ID)
	author, err := i.employeeStore.GetByCode(rec.AuthorCode)
	if err != nil {
		logger.WithError(err).Error("failed to load request author")
		return
	}
	if author == nil || author.Email == "" {
		return
	}
	subject := fmt.Sprintf("Request %s: %s", rec.Code, decision)
	message := fmt.Sprintf("Your %s %s has been %s.\nNote: %s",
		rec.RequestTypeID.ToHuman(), rec.Code, decision, note)
	if err = smtp.Instance.SendEMail(author.Email, message, subject); err != nil {
		logger.WithError(err).Error("failed to notify request author")
	}
}

func (i impl) PushBadge(ctx context.Context, userCodes ...string) {
	for _, userCode := range userCodes {
		if userCode == "" || !connectionhub.Instance.IsConnected(userCode) {
			continue
		}
		count, err := badge.Instance.WaitApprovalCount(ctx, userCode)
		if err != nil {
			log.WithField("user_code", userCode).WithError(err).Error("failed to refresh badge counter")
			continue
		}
		connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
			ToUserCode: userCode,
			Time:       time.Now().Format("02.01.2006 15:04:05"),
			Code:       models.BadgeWaitApprovalKey,
			Count:      count,
		})
	}
}
