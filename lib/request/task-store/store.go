package requesttaskstore

import (
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-requests-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.AssignedTask) (id string, err error)
	List(requestID string) (list []dbmodels.AssignedTask, err error)
	MarkResolved(requestID string, targetDate, actualDate *time.Time, resolvedAt time.Time) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.AssignedTask) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(requestID string) (list []dbmodels.AssignedTask, err error) {
	list = []dbmodels.AssignedTask{}
	err = i.db.
		Where("request_id = ?", requestID).
		Order("created_at").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) MarkResolved(requestID string, targetDate, actualDate *time.Time, resolvedAt time.Time) error {
	updMap := map[string]interface{}{
		"ResolvedAt": resolvedAt,
	}
	if targetDate != nil {
		updMap["TargetDate"] = targetDate
	}
	if actualDate != nil {
		updMap["ActualDate"] = actualDate
	}
	err := i.db.
		Model(&dbmodels.AssignedTask{}).
		Where("request_id = ?", requestID).
		Updates(updMap).
		Error
	if err != nil {
		return err
	}
	return nil
}
