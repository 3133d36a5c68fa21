package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStore 本地磁盘媒体存储，文件经 /uploads/* 静态路由对外提供
type LocalStore struct {
	dir string
}

// NewLocalStore 确保目录存在并返回存储实例
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Dir() string {
	return s.dir
}

// Save 将内容写入目录下的指定文件名，返回写入字节数
func (s *LocalStore) Save(filename string, r io.Reader) (int64, error) {
	f, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = f.Close() }()

	n, err := io.Copy(f, r)
	if err != nil {
		return n, fmt.Errorf("failed to write file: %w", err)
	}
	return n, nil
}

// Remove 删除文件，文件不存在时不视为错误
func (s *LocalStore) Remove(filename string) error {
	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
