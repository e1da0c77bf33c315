package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"

	"academic-records-backend/config"
	filestorage "academic-records-backend/lib/file-storage"
)

// InitS3 leaves the archive disabled when the storage cannot be reached.
func InitS3(ctx context.Context) {
	err := filestorage.Connect(ctx, config.Conf.S3.Endpoint, config.Conf.S3.AccessKeyID,
		config.Conf.S3.SecretAccessKey, config.Conf.S3.BucketName, *config.Conf.S3.UseSSL)
	if err != nil {
		log.WithError(err).Error("object storage is not available, files will not be archived")
		return
	}
	if filestorage.Instance != nil {
		log.Info("object storage client initialized")
	}
}
