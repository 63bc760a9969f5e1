package employeestore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"hr-requests-backend/models"
	dbmodels "hr-requests-backend/models/db"
)

type Provider interface {
	GetByCode(userCode string) (rec *dbmodels.Employee, err error)
	ListByTeam(team models.TeamKind) (list []dbmodels.Employee, err error)
	ListUnionByDepartment(department string) (list []dbmodels.Employee, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) GetByCode(userCode string) (*dbmodels.Employee, error) {
	rec := dbmodels.Employee{}
	err := i.db.
		Where("user_code = ?", userCode).
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

func (i impl) ListByTeam(team models.TeamKind) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	err = i.db.
		Where("team = ?", team).
		Where("is_active = ?", true).
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

func (i impl) ListUnionByDepartment(department string) (list []dbmodels.Employee, err error) {
	list = []dbmodels.Employee{}
	err = i.db.
		Where("is_union_member = ?", true).
		Where("department = ?", department).
		Where("is_active = ?", true).
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
