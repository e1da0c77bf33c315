package db

import (
	"time"

	log "github.com/sirupsen/logrus"

	"academic-records-backend/config"
	authutils "academic-records-backend/lib/utils/auth-utils"
	dbmodels "academic-records-backend/models/db"
)

func InitPreload() {
	addSuperuser()
}

func addSuperuser() {
	if config.Conf.Admin.Username == "" || config.Conf.Admin.Password == "" {
		log.Warn("superuser not added, ADMIN_USERNAME or ADMIN_PASSWORD is not set")
		return
	}
	var count int64
	err := DB.Model(&dbmodels.User{}).
		Where("username = ?", config.Conf.Admin.Username).
		Count(&count).
		Error
	if err != nil {
		log.WithError(err).Error("failed to add the superuser")
		return
	}
	if count != 0 {
		return
	}
	hash, err := authutils.HashPassword(config.Conf.Admin.Password)
	if err != nil {
		log.WithError(err).Error("failed to add the superuser")
		return
	}
	rec := dbmodels.User{
		Username:    config.Conf.Admin.Username,
		Password:    hash,
		FirstName:   config.Conf.Admin.FirstName,
		LastName:    config.Conf.Admin.LastName,
		Email:       config.Conf.Admin.Email,
		IsActive:    true,
		IsStaff:     true,
		IsSuperuser: true,
		DateJoined:  time.Now(),
	}
	rec.Clean()
	if err = DB.Create(&rec).Error; err != nil {
		log.WithError(err).Error("failed to add the superuser")
		return
	}
	log.WithField("username", rec.Username).Info("superuser added")
}
