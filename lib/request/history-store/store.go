package requesthistorystore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-requests-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.HistoryEntry) (id string, err error)
	List(requestID string) (list []dbmodels.HistoryEntry, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.HistoryEntry) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(requestID string) (list []dbmodels.HistoryEntry, err error) {
	list = []dbmodels.HistoryEntry{}
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
