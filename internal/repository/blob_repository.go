package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrBlobNotFound 键不存在，调用方应视为空集合
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore 持久化单个字符串值的键值存储
type BlobStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// MemoryBlobRepository 进程内存储，用于测试与演示模式
type MemoryBlobRepository struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryBlobRepository() *MemoryBlobRepository {
	return &MemoryBlobRepository{values: make(map[string]string)}
}

func (r *MemoryBlobRepository) Get(ctx context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	if !ok {
		return "", ErrBlobNotFound
	}
	return v, nil
}

func (r *MemoryBlobRepository) Set(ctx context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values[key] = value
	return nil
}

// FileBlobRepository 每个键对应 Dir 下的一个 JSON 文件
type FileBlobRepository struct {
	Dir string
}

func NewFileBlobRepository(dir string) *FileBlobRepository {
	return &FileBlobRepository{Dir: dir}
}

func (r *FileBlobRepository) path(key string) string {
	return filepath.Join(r.Dir, key+".json")
}

func (r *FileBlobRepository) Get(ctx context.Context, key string) (string, error) {
	data, err := os.ReadFile(r.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrBlobNotFound
		}
		return "", fmt.Errorf("read blob %s: %w", key, err)
	}
	return string(data), nil
}

func (r *FileBlobRepository) Set(ctx context.Context, key, value string) error {
	if err := os.MkdirAll(r.Dir, 0755); err != nil {
		return err
	}

	// 先写临时文件再重命名，避免写到一半的文件被读到
	tmp, err := os.CreateTemp(r.Dir, key+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		return fmt.Errorf("write blob %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), r.path(key))
}
