package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	dbmodels "academic-records-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("running migrations")
	migrations := []struct {
		name  string
		model interface{}
	}{
		{"User", &dbmodels.User{}},
		{"University", &dbmodels.University{}},
		{"Faculty", &dbmodels.Faculty{}},
		{"Department", &dbmodels.Department{}},
		{"EmployeeStatus", &dbmodels.EmployeeStatus{}},
		{"EmployeeGroup", &dbmodels.EmployeeGroup{}},
		{"Position", &dbmodels.Position{}},
		{"AcademicDegree", &dbmodels.AcademicDegree{}},
		{"Discipline", &dbmodels.Discipline{}},
		{"Employee", &dbmodels.Employee{}},
		{"Employment", &dbmodels.Employment{}},
		{"Publisher", &dbmodels.Publisher{}},
		{"Journal", &dbmodels.Journal{}},
		{"Article", &dbmodels.Article{}},
		{"Patent", &dbmodels.Patent{}},
		{"Project", &dbmodels.Project{}},
		{"Author", &dbmodels.Author{}},
		{"AuthorStatus", &dbmodels.AuthorStatus{}},
		{"Contribution", &dbmodels.Contribution{}},
		{"ApprovalHistory", &dbmodels.ApprovalHistory{}},
		{"ArchivedFile", &dbmodels.ArchivedFile{}},
	}
	for _, migration := range migrations {
		if err := DB.AutoMigrate(migration.model); err != nil {
			return errors.Wrapf(err, "failed to create the %s structure", migration.name)
		}
	}
	log.Info("migrations finished")
	return nil
}
