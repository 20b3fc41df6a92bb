package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/minio/minio-go/v7"
)

func objectName(key string) string {
	return key + ".json"
}

// MinioBlobRepository 每个键保存为桶中的一个对象
type MinioBlobRepository struct {
	Client *minio.Client
	Bucket string
}

func NewMinioBlobRepository(client *minio.Client, bucket string) *MinioBlobRepository {
	return &MinioBlobRepository{Client: client, Bucket: bucket}
}

func (r *MinioBlobRepository) Get(ctx context.Context, key string) (string, error) {
	obj, err := r.Client.GetObject(ctx, r.Bucket, objectName(key), minio.GetObjectOptions{})
	if err != nil {
		return "", r.mapError(key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return "", r.mapError(key, err)
	}
	return string(data), nil
}

func (r *MinioBlobRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.Client.PutObject(ctx, r.Bucket, objectName(key), strings.NewReader(value), int64(len(value)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("minio put %s: %w", key, err)
	}
	return nil
}

func (r *MinioBlobRepository) mapError(key string, err error) error {
	resp := minio.ToErrorResponse(err)
	if resp.Code == "NoSuchKey" || resp.StatusCode == http.StatusNotFound {
		return ErrBlobNotFound
	}
	return fmt.Errorf("minio get %s: %w", key, err)
}

// OSSBlobRepository 阿里云 OSS 实现
type OSSBlobRepository struct {
	Bucket *oss.Bucket
}

func NewOSSBlobRepository(client *oss.Client, bucketName string) (*OSSBlobRepository, error) {
	bucket, err := client.Bucket(bucketName)
	if err != nil {
		return nil, err
	}
	return &OSSBlobRepository{Bucket: bucket}, nil
}

func (r *OSSBlobRepository) Get(ctx context.Context, key string) (string, error) {
	body, err := r.Bucket.GetObject(objectName(key), oss.WithContext(ctx))
	if err != nil {
		var se oss.ServiceError
		if errors.As(err, &se) && se.StatusCode == http.StatusNotFound {
			return "", ErrBlobNotFound
		}
		return "", fmt.Errorf("oss get %s: %w", key, err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *OSSBlobRepository) Set(ctx context.Context, key, value string) error {
	err := r.Bucket.PutObject(objectName(key), strings.NewReader(value),
		oss.ContentType("application/json"),
		oss.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("oss put %s: %w", key, err)
	}
	return nil
}
