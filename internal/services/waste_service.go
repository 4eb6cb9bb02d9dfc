package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"github.com/larderlog/backend/internal/logger"
	"github.com/larderlog/backend/internal/models"
	"github.com/larderlog/backend/internal/storage"
	"github.com/larderlog/backend/internal/store"
)

var wasteStore *store.Store[models.WasteRecord]

// InitWaste wires the waste record store.
func InitWaste(s *store.Store[models.WasteRecord]) {
	wasteStore = s
}

// CreateWasteRecord inserts a waste record. When a photo is attached, the
// object upload and the metadata write run in parallel; if the metadata
// write fails the uploaded object is removed again.
func CreateWasteRecord(ctx context.Context, rec models.WasteRecord, photo *multipart.FileHeader) (models.WasteRecord, error) {
	if photo == nil {
		return rec, wasteStore.Insert(ctx, rec)
	}

	file, err := photo.Open()
	if err != nil {
		return models.WasteRecord{}, errors.New("failed to open photo")
	}
	defer file.Close()

	photoBytes, err := io.ReadAll(file)
	if err != nil {
		return models.WasteRecord{}, errors.New("failed to read photo")
	}

	objectName := fmt.Sprintf("%s_%s", uuid.NewString(), photo.Filename)
	rec.PhotoURL = storage.ObjectURL(objectName)

	minioResultChan := make(chan error, 1)
	metadataResultChan := make(chan error, 1)

	go func() {
		_, err := storage.MinioClient.PutObject(
			context.Background(),
			storage.WasteBucket,
			objectName,
			bytes.NewReader(photoBytes),
			int64(len(photoBytes)),
			minio.PutObjectOptions{ContentType: photo.Header.Get("Content-Type")},
		)
		minioResultChan <- err
	}()

	go func() {
		metadataResultChan <- wasteStore.Insert(ctx, rec)
	}()

	minioErr := <-minioResultChan
	metadataErr := <-metadataResultChan

	if minioErr != nil {
		return models.WasteRecord{}, errors.New("failed to store photo: " + minioErr.Error())
	}
	if metadataErr != nil {
		go func() {
			err := storage.MinioClient.RemoveObject(context.Background(), storage.WasteBucket, objectName, minio.RemoveObjectOptions{})
			if err != nil {
				logger.L.Warnf("failed to clean up orphaned photo %s: %v", objectName, err)
			}
		}()
		return models.WasteRecord{}, metadataErr
	}

	return rec, nil
}

// SaveWastePhoto uploads a replacement photo for an existing record and
// returns its public URL.
func SaveWastePhoto(ctx context.Context, photo *multipart.FileHeader) (string, error) {
	file, err := photo.Open()
	if err != nil {
		return "", errors.New("failed to open photo")
	}
	defer file.Close()

	photoBytes, err := io.ReadAll(file)
	if err != nil {
		return "", errors.New("failed to read photo")
	}

	objectName := fmt.Sprintf("%s_%s", uuid.NewString(), photo.Filename)
	_, err = storage.MinioClient.PutObject(
		ctx,
		storage.WasteBucket,
		objectName,
		bytes.NewReader(photoBytes),
		int64(len(photoBytes)),
		minio.PutObjectOptions{ContentType: photo.Header.Get("Content-Type")},
	)
	if err != nil {
		return "", errors.New("failed to store photo: " + err.Error())
	}
	return storage.ObjectURL(objectName), nil
}
