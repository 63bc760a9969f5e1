package requestitemstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	dbmodels "hr-requests-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.RequestItem) (id string, err error)
	List(requestID string) (list []dbmodels.RequestItem, err error)
	// MarkRejected flips ItemStatus to false and stores the note for the
	// given items only; siblings stay untouched.
	MarkRejected(requestID string, itemIDs []string, note string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.RequestItem) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) List(requestID string) (list []dbmodels.RequestItem, err error) {
	list = []dbmodels.RequestItem{}
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

func (i impl) MarkRejected(requestID string, itemIDs []string, note string) error {
	if len(itemIDs) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.RequestItem{}).
		Where("request_id = ?", requestID).
		Where("id IN ?", itemIDs).
		Updates(map[string]interface{}{
			"ItemStatus": false,
			"NoteOfHR":   note,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected != int64(len(itemIDs)) {
		return errors.New("some selected items do not belong to the request")
	}
	return nil
}
