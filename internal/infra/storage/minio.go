package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"
)

type FileStorage struct {
	client    *minio.Client
	bucket    string
	endpoint  string
	publicURL string
}

// NewFileStorage connects to MinIO and makes sure the thumbnail bucket
// exists with a public-read policy.
func NewFileStorage(endpoint, publicURL, accessKey, secretKey, bucketName string) (*FileStorage, error) {
	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: false,
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	exists, errBucket := minioClient.BucketExists(ctx, bucketName)
	if errBucket == nil && !exists {
		err := minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err == nil {
			policy := fmt.Sprintf(`{"Version":"2012-10-17","Statement":[{"Effect":"Allow","Principal":{"AWS":["*"]},"Action":["s3:GetObject"],"Resource":["arn:aws:s3:::%s/*"]}]}`, bucketName)
			_ = minioClient.SetBucketPolicy(ctx, bucketName, policy)
			zap.L().Info("bucket created and policy set", zap.String("bucket", bucketName))
		} else {
			// Possibly a permission issue while the bucket already exists.
			zap.L().Warn("failed to create bucket", zap.Error(err))
		}
	}

	return &FileStorage{
		client:    minioClient,
		bucket:    bucketName,
		endpoint:  endpoint,
		publicURL: publicURL,
	}, nil
}

// UploadImage stores a thumbnail and returns its public URL.
func (s *FileStorage) UploadImage(ctx context.Context, fileName string, fileSize int64, reader io.Reader, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, s.bucket, fileName, reader, fileSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", err
	}

	// Manual join: path.Join would collapse "http://" to "http:/".
	baseURL := strings.TrimRight(s.publicURL, "/")
	fileURL := fmt.Sprintf("%s/%s/%s", baseURL, s.bucket, fileName)
	return fileURL, nil
}
