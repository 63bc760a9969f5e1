package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	filestorage "hr-requests-backend/lib/file-storage"
	s3client "hr-requests-backend/s3"
)

func InitS3() {
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("failed to initialize the S3 client, export archiving is disabled")
		filestorage.NewInstance(nil)
		return
	}
	if err = s3client.MakeBucket(context.Background(), minioClient); err != nil {
		log.WithError(err).Error("failed to prepare the S3 bucket, export archiving is disabled")
		filestorage.NewInstance(nil)
		return
	}
	s3client.Client = minioClient
	filestorage.NewInstance(minioClient)
	log.Info("S3 client initialized")
}
