package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "hr-requests-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	if err := DB.AutoMigrate(&dbmodels.Employee{}); err != nil {
		return errors.Wrap(err, "migration failed for Employee")
	}
	if err := DB.AutoMigrate(&dbmodels.Request{}); err != nil {
		return errors.Wrap(err, "migration failed for Request")
	}
	if err := DB.AutoMigrate(&dbmodels.ApprovalStep{}); err != nil {
		return errors.Wrap(err, "migration failed for ApprovalStep")
	}
	if err := DB.AutoMigrate(&dbmodels.RequestItem{}); err != nil {
		return errors.Wrap(err, "migration failed for RequestItem")
	}
	if err := DB.AutoMigrate(&dbmodels.AssignedTask{}); err != nil {
		return errors.Wrap(err, "migration failed for AssignedTask")
	}
	if err := DB.AutoMigrate(&dbmodels.HistoryEntry{}); err != nil {
		return errors.Wrap(err, "migration failed for HistoryEntry")
	}
	log.Info("migrations finished")
	return nil
}
