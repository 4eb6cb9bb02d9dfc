package storage

import (
	"context"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/larderlog/backend/internal/config"
	"github.com/larderlog/backend/internal/logger"
)

// WasteBucket holds uploaded waste-record photos.
const WasteBucket = "waste-photos"

var (
	MinioClient *minio.Client
	publicBase  string
)

// InitMinio connects to MinIO and ensures the photo bucket exists.
func InitMinio(cfg config.MinioConfig) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		logger.L.Fatalf("failed to connect to MinIO: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, WasteBucket)
	if err != nil {
		logger.L.Warnf("failed to check bucket existence: %v", err)
	} else if !exists {
		if err := client.MakeBucket(ctx, WasteBucket, minio.MakeBucketOptions{}); err != nil {
			logger.L.Warnf("failed to create bucket: %v", err)
		} else {
			logger.L.Infow("created bucket", "bucket", WasteBucket)
		}
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}
	publicBase = scheme + "://" + cfg.Endpoint + "/" + WasteBucket

	MinioClient = client
	logger.L.Info("connected to MinIO")
}

// ObjectURL returns the public URL of an object in the waste photo bucket.
func ObjectURL(objectName string) string {
	return publicBase + "/" + objectName
}
