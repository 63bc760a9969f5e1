package initializers

import (
	"context"

	"hr-requests-backend/config"
	"hr-requests-backend/fiberlog"
	"hr-requests-backend/lib/assignment"
	authhandler "hr-requests-backend/lib/auth"
	xlsexport "hr-requests-backend/lib/export/xls"
	"hr-requests-backend/lib/notify"
	requesthandler "hr-requests-backend/lib/request"
	connectionhub "hr-requests-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	InitRedis(ctx)
	connectionhub.Init()
	authhandler.NewHandler()
	assignment.NewHandler()
	xlsexport.NewHandler()
	requesthandler.NewHandler()
	notify.NewHandler()
}
