// Package storage persists uploaded files on the local filesystem.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/open-music/server/pkg/errors"
)

// Storage 上传文件存储接口
type Storage interface {
	Save(filename string, size int64, r io.Reader) (string, error)
	FileURL(stored string) string
}

// LocalStorage 本地磁盘存储
type LocalStorage struct {
	dir      string
	baseURL  string
	maxBytes int64
}

// NewLocalStorage 创建本地存储，目录不存在时自动创建
func NewLocalStorage(dir, baseURL string, maxBytes int64) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStorage{
		dir:      dir,
		baseURL:  baseURL,
		maxBytes: maxBytes,
	}, nil
}

// Save 保存上传内容，超出大小上限时拒绝。返回存储文件名。
func (s *LocalStorage) Save(filename string, size int64, r io.Reader) (string, error) {
	if size > s.maxBytes {
		return "", errors.Validation(
			fmt.Sprintf("file size exceeds the %d byte limit", s.maxBytes))
	}

	stored := fmt.Sprintf("%d-%s%s",
		time.Now().UnixNano(), uuid.NewString(), filepath.Ext(filename))

	f, err := os.Create(filepath.Join(s.dir, stored))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer f.Close()

	// 复制时再次限制大小，防止声明长度与实际不符
	written, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write file: %w", err)
	}
	if written > s.maxBytes {
		os.Remove(f.Name())
		return "", errors.Validation(
			fmt.Sprintf("file size exceeds the %d byte limit", s.maxBytes))
	}

	return stored, nil
}

// FileURL 返回存储文件的访问URL
func (s *LocalStorage) FileURL(stored string) string {
	return fmt.Sprintf("%s/upload/images/%s", s.baseURL, stored)
}

// Dir 返回存储目录，供静态文件路由挂载
func (s *LocalStorage) Dir() string {
	return s.dir
}
