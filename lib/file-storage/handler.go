package filestorage

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"academic-records-backend/db"
	"academic-records-backend/lib/file-storage/store"
	initchecker "academic-records-backend/lib/utils/init-checker"
	"academic-records-backend/models"
	dbmodels "academic-records-backend/models/db"
)

type Provider interface {
	// Archive uploads the file and registers it; userID may be empty for command line jobs.
	Archive(ctx context.Context, kind dbmodels.ArchiveKind, fileName, contentType string, data []byte, userID string) (id string, err error)
	GetFile(ctx context.Context, id string) (rec *dbmodels.ArchivedFile, data []byte, err error)
	List(kind dbmodels.ArchiveKind) (list []dbmodels.ArchivedFile, err error)
}

// Instance stays nil when the object storage is not configured.
var Instance Provider

func Connect(ctx context.Context, endpoint, accessKeyID, secretAccessKey, bucket string, useSSL bool) error {
	if endpoint == "" {
		log.Warn("object storage is not configured, files will not be archived")
		return nil
	}
	objects, err := newMinioObjects(ctx, endpoint, accessKeyID, secretAccessKey, bucket, useSSL)
	if err != nil {
		return errors.Wrap(err, "failed to connect to the object storage")
	}
	Instance = newProvider(store.NewInstance(db.DB), objects)
	return nil
}

func newProvider(fileStore store.Provider, objects objectStore) Provider {
	instance := impl{
		store:   fileStore,
		objects: objects,
		now:     time.Now,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"objects", instance.objects,
	)
	return instance
}

type impl struct {
	store   store.Provider
	objects objectStore
	now     func() time.Time
}

func (i impl) Archive(ctx context.Context, kind dbmodels.ArchiveKind, fileName, contentType string, data []byte, userID string) (id string, err error) {
	objectName := i.objectName(kind, fileName)
	logger := log.WithField("object", objectName)
	if err = i.objects.Put(ctx, objectName, contentType, data); err != nil {
		logger.WithError(err).Error("failed to upload the file")
		return "", err
	}
	rec := dbmodels.ArchivedFile{
		Kind:        kind,
		ObjectName:  objectName,
		FileName:    fileName,
		ContentType: contentType,
		Size:        int64(len(data)),
	}
	if userID != "" {
		rec.UserID = &userID
	}
	id, err = i.store.Save(rec)
	if err != nil {
		return "", err
	}
	logger.WithField("rec_id", id).Info("file archived")
	return id, nil
}

func (i impl) GetFile(ctx context.Context, id string) (*dbmodels.ArchivedFile, []byte, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, errors.Wrap(models.ErrNotFound, "archived file not found")
	}
	data, err := i.objects.Get(ctx, rec.ObjectName)
	if err != nil {
		return nil, nil, err
	}
	return rec, data, nil
}

func (i impl) List(kind dbmodels.ArchiveKind) (list []dbmodels.ArchivedFile, err error) {
	return i.store.List(kind)
}

// objectName groups the objects by kind and day: kind/2024/05/10/<uuid>-file.xlsx
func (i impl) objectName(kind dbmodels.ArchiveKind, fileName string) string {
	day := i.now().UTC().Format("2006/01/02")
	return path.Join(string(kind), day, fmt.Sprintf("%s-%s", uuid.NewString(), path.Base(fileName)))
}
