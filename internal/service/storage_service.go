package service

import (
	"fmt"

	"skillmap_backend/internal/config"
	"skillmap_backend/internal/repository"
	"skillmap_backend/internal/util"
	"skillmap_backend/pkg/database"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// StorageService 按配置选择持久化后端，Close 释放后端持有的连接
type StorageService struct {
	Blob  repository.BlobStore
	Type  string
	close func() error
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	s := &StorageService{Type: cfg.Storage.Type, close: func() error { return nil }}

	switch cfg.Storage.Type {
	case config.StorageMemory:
		s.Blob = repository.NewMemoryBlobRepository()
	case config.StorageLocal:
		s.Blob = repository.NewFileBlobRepository(cfg.Storage.LocalPath)
	case config.StorageRedis:
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("init redis: %w", err)
		}
		s.Blob = repository.NewRedisBlobRepository(rdb)
		s.close = rdb.Close
	case config.StorageMySQL:
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("init database: %w", err)
		}
		s.Blob = repository.NewGormBlobRepository(db)
		s.close = func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
	case config.StorageMinio:
		client, err := minio.New(cfg.Storage.MinioEndpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.Storage.MinioAccessID, cfg.Storage.MinioSecret, ""),
			Secure: cfg.Storage.MinioUseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("init minio: %w", err)
		}
		s.Blob = repository.NewMinioBlobRepository(client, cfg.Storage.MinioBucket)
	case config.StorageOSS:
		client, err := oss.New(cfg.Storage.OSSEndpoint, cfg.Storage.OSSAccessKey, cfg.Storage.OSSSecretKey)
		if err != nil {
			return nil, fmt.Errorf("init oss: %w", err)
		}
		blob, err := repository.NewOSSBlobRepository(client, cfg.Storage.OSSBucket)
		if err != nil {
			return nil, fmt.Errorf("init oss bucket: %w", err)
		}
		s.Blob = blob
	default:
		return nil, fmt.Errorf("%w: %q", util.ErrUnsupportedStorage, cfg.Storage.Type)
	}

	return s, nil
}

func (s *StorageService) Close() error {
	if s.close == nil {
		return nil
	}
	return s.close()
}
