package initializers

import (
	log "github.com/sirupsen/logrus"

	"academic-records-backend/config"
	"academic-records-backend/db"
)

func InitDBConnection() {
	dbConf := config.Conf.Database
	err := db.Connect(dbConf.Host, dbConf.Port, dbConf.Name, dbConf.User, dbConf.Password, *dbConf.DebugMode, *dbConf.MigrateOnStart)
	if err != nil {
		log.WithError(err).Fatal("records database is unavailable")
	}
	db.InitPreload()
}
