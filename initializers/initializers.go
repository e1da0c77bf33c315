package initializers

import (
	"context"

	"academic-records-backend/config"
	"academic-records-backend/fiberlog"
	approvalprovider "academic-records-backend/lib/approval"
	articleprovider "academic-records-backend/lib/article"
	authprovider "academic-records-backend/lib/auth"
	authorprovider "academic-records-backend/lib/author"
	contributionprovider "academic-records-backend/lib/contribution"
	academicdegreeprovider "academic-records-backend/lib/dicts/academic-degree"
	authorstatusprovider "academic-records-backend/lib/dicts/author-status"
	disciplineprovider "academic-records-backend/lib/dicts/discipline"
	employeegroupprovider "academic-records-backend/lib/dicts/employee-group"
	employeestatusprovider "academic-records-backend/lib/dicts/employee-status"
	journalprovider "academic-records-backend/lib/dicts/journal"
	positionprovider "academic-records-backend/lib/dicts/position"
	publisherprovider "academic-records-backend/lib/dicts/publisher"
	employeeprovider "academic-records-backend/lib/employee"
	employmentprovider "academic-records-backend/lib/employment"
	exportprovider "academic-records-backend/lib/export"
	pdfexport "academic-records-backend/lib/export/pdf"
	xlsexport "academic-records-backend/lib/export/xls"
	patentprovider "academic-records-backend/lib/patent"
	projectprovider "academic-records-backend/lib/project"
	unitsprovider "academic-records-backend/lib/units"
	usersprovider "academic-records-backend/lib/users"
	usersload "academic-records-backend/lib/users-load"
	"academic-records-backend/lib/utils/lock"
)

var LoggerConfig *fiberlog.Config

// InitAllServices creates the providers; a provider is created after the ones it depends on.
func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitServices(ctx)
}

// InitServices expects the config and the database connection to be ready.
func InitServices(ctx context.Context) {
	InitS3(ctx)
	InitSmtp()
	lock.InitResourceLock(ctx)

	unitsprovider.NewHandler()
	employeestatusprovider.NewHandler()
	academicdegreeprovider.NewHandler()
	disciplineprovider.NewHandler()
	employeegroupprovider.NewHandler()
	positionprovider.NewHandler()
	publisherprovider.NewHandler()
	journalprovider.NewHandler()
	authorstatusprovider.NewHandler()

	usersprovider.NewHandler()
	authprovider.NewHandler()
	usersload.NewHandler()

	employeeprovider.NewHandler()
	employmentprovider.NewHandler()
	authorprovider.NewHandler()

	articleprovider.NewHandler()
	patentprovider.NewHandler()
	projectprovider.NewHandler()
	contributionprovider.NewHandler()
	approvalprovider.NewHandler()

	xlsexport.NewHandler()
	pdfexport.NewHandler(config.Conf.App.FontDir)
	exportprovider.NewHandler()
}
