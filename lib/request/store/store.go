package requeststore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"hr-requests-backend/models"
	requestapimodels "hr-requests-backend/models/api/request"
	dbmodels "hr-requests-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Request) (id string, err error)
	GetByID(id string) (rec *dbmodels.Request, err error)
	Update(id string, updMap map[string]interface{}) error
	List(actor models.Actor, filter requestapimodels.RequestFilter) (list []dbmodels.Request, err error)
	ListCount(actor models.Actor, filter requestapimodels.RequestFilter) (rowCount int64, err error)
	CountWaitApproval(userCode string) (count int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Request) (id string, err error) {
	err = i.db.
		Omit("Reference").
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Request, error) {
	rec := dbmodels.Request{}
	err := i.db.
		Where("id = ?", id).
		Preload(clause.Associations).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Request{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("request not found")
	}
	return nil
}

func (i impl) List(actor models.Actor, filter requestapimodels.RequestFilter) (list []dbmodels.Request, err error) {
	list = []dbmodels.Request{}
	tx := i.applyFilter(actor, filter).
		Preload(clause.Associations)
	page, limit := filter.GetPage()
	tx = tx.
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit)
	err = tx.Find(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) ListCount(actor models.Actor, filter requestapimodels.RequestFilter) (rowCount int64, err error) {
	err = i.applyFilter(actor, filter).
		Count(&rowCount).
		Error
	if err != nil {
		return 0, err
	}
	return rowCount, nil
}

// CountWaitApproval counts requests waiting on the given user's approval
// step. It backs the sidebar badge.
func (i impl) CountWaitApproval(userCode string) (count int64, err error) {
	err = i.db.
		Model(&dbmodels.Request{}).
		Joins("JOIN approval_steps ON approval_steps.request_id = requests.id AND approval_steps.ordinal = requests.current_step").
		Where("requests.request_status_id = ?", models.RequestStatusPending).
		Where("approval_steps.user_code = ?", userCode).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (i impl) applyFilter(actor models.Actor, filter requestapimodels.RequestFilter) *gorm.DB {
	tx := i.db.Model(&dbmodels.Request{})
	switch filter.Queue {
	case models.QueueWaitApproval:
		tx = tx.
			Joins("JOIN approval_steps ON approval_steps.request_id = requests.id AND approval_steps.ordinal = requests.current_step").
			Where("requests.request_status_id = ?", models.RequestStatusPending).
			Where("approval_steps.user_code = ?", actor.UserCode)
	case models.QueueAssignedTasks:
		tx = tx.
			Joins("JOIN assigned_tasks ON assigned_tasks.request_id = requests.id").
			Where("requests.request_status_id = ?", models.RequestStatusAssigned).
			Where("assigned_tasks.user_code = ?", actor.UserCode)
	case models.QueuePurchaseWait:
		tx = tx.
			Where("requests.request_status_id = ?", models.RequestStatusWaitConfirm)
	case models.QueueMyRequests:
		tx = tx.
			Where("requests.author_code = ?", actor.UserCode)
	}
	if filter.RequestTypeID != "" {
		tx = tx.Where("requests.request_type_id = ?", filter.RequestTypeID)
	}
	return tx
}
