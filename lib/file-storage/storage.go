package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"hr-requests-backend/config"
)

// Provider archives generated exports next to returning them, so a report
// produced once for a request stays retrievable.
type Provider interface {
	ArchiveExport(ctx context.Context, requestCode, fileName, contentType string, data []byte) error
	GetExport(ctx context.Context, requestCode, fileName string) ([]byte, error)
}

var Instance Provider

func NewInstance(s3client *minio.Client) {
	Instance = &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i impl) ArchiveExport(ctx context.Context, requestCode, fileName, contentType string, data []byte) error {
	if i.s3client == nil {
		return nil
	}
	objectName := exportObjectName(requestCode, fileName)
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return err
	}
	return nil
}

func (i impl) GetExport(ctx context.Context, requestCode, fileName string) ([]byte, error) {
	objectName := exportObjectName(requestCode, fileName)
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer object.Close()
	return io.ReadAll(object)
}

func exportObjectName(requestCode, fileName string) string {
	return fmt.Sprintf("exports/%s/%s", requestCode, fileName)
}
