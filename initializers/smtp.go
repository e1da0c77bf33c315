package initializers

import (
	log "github.com/sirupsen/logrus"

	"academic-records-backend/config"
	"academic-records-backend/lib/smtp"
)

func InitSmtp() {
	smtpConf := config.Conf.Smtp
	err := smtp.Connect(smtpConf.User, smtpConf.Password, smtpConf.Host, smtpConf.Port, smtpConf.From, *smtpConf.TLSEnabled)
	if err != nil {
		panic(err.Error())
	}
	if !smtp.Instance.Configured() {
		log.Warn("smtp is not configured, activation notices are disabled")
	}
}
