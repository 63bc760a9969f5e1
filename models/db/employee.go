package dbmodels

import (
	"hr-requests-backend/models"
)

type Employee struct {
	BaseModel
	UserCode      string          `gorm:"type:varchar(50);uniqueIndex"`
	UserName      string          `gorm:"type:varchar(255)"`
	Email         string          `gorm:"type:varchar(255)"`
	Password      string          `gorm:"type:varchar(128)"`
	Team          models.TeamKind `gorm:"type:varchar(20);index"`
	Department    string          `gorm:"type:varchar(100);index"`
	OrgPositionID string          `gorm:"type:varchar(36)"`
	Role          models.UserRole `gorm:"type:varchar(50)"`
	IsUnionMember bool
	IsActive      bool
}

func (e Employee) ToActor() models.Actor {
	return models.Actor{
		UserCode:      e.UserCode,
		UserName:      e.UserName,
		Email:         e.Email,
		OrgPositionID: e.OrgPositionID,
		Role:          e.Role,
	}
}
