package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
		BodyLimit  int    `default:"20971520" env:"APP_BODY_LIMIT"`
		SwaggerDoc string `default:"./docs/swagger.json" env:"APP_SWAGGER_DOC"`
		FontDir    string `default:"" env:"APP_FONT_DIR"` // DejaVuSans.ttf and DejaVuSans-Bold.ttf for PDF reports
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"academic-records" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret      string `default:"change-me" env:"JWT_SECRET"`
		JWTExpireInSec int    `default:"28800" env:"JWT_EXPIRE_IN_SEC"`
	}
	Admin struct {
		Username  string `default:"" env:"ADMIN_USERNAME"`
		Password  string `default:"" env:"ADMIN_PASSWORD"`
		Email     string `default:"" env:"ADMIN_EMAIL"`
		FirstName string `default:"" env:"ADMIN_FIRST_NAME"`
		LastName  string `default:"" env:"ADMIN_LAST_NAME"`
	}
	S3 struct {
		Endpoint        string `default:"" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"academic-records" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		From       string `default:"" env:"SMTP_FROM"`
	}
	Records struct {
		MinArticleYear       int    `default:"1900" env:"RECORDS_MIN_ARTICLE_YEAR"`
		MaxArticleYearOffset int    `default:"1" env:"RECORDS_MAX_ARTICLE_YEAR_OFFSET"`
		OrcidURLPrefix       string `default:"https://orcid.org/" env:"RECORDS_ORCID_URL_PREFIX"`
		DOIURLPrefix         string `default:"https://doi.org" env:"RECORDS_DOI_URL_PREFIX"`
		UserSheet            string `default:"accounts.user" env:"RECORDS_USER_SHEET"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
