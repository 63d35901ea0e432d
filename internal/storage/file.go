package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/wyfcoding/voguevault/pkg/logger"
)

// FileStore 基于本地 JSON 文件的存储后端，每个逻辑键对应一个文件
type FileStore struct {
	dir            string
	onWriteFailure func()
}

var _ Store = (*FileStore)(nil)

// FileOption FileStore 可选配置
type FileOption func(*FileStore)

// WithWriteFailureHook 注册写入失败回调（用于指标上报）
func WithWriteFailureHook(fn func()) FileOption {
	return func(s *FileStore) { s.onWriteFailure = fn }
}

// NewFileStore 创建文件存储后端，目录不存在时自动创建
func NewFileStore(dir string, opts ...FileOption) *FileStore {
	s := &FileStore{dir: dir}
	for _, opt := range opts {
		opt(s)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warn(context.Background(), "Failed to create storage directory, writes will be dropped",
			"dir", dir, "error", err)
	}
	return s
}

func (s *FileStore) path(key Key) string {
	return filepath.Join(s.dir, string(key)+".json")
}

// Get 读取并解码快照；文件缺失、损坏或不可读一律按"不存在"处理
func (s *FileStore) Get(ctx context.Context, key Key, dest any) bool {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn(ctx, "Failed to read snapshot", "key", key, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		logger.Warn(ctx, "Corrupted snapshot ignored", "key", key, "error", err)
		return false
	}
	return true
}

// Set 序列化并写入快照；任何失败仅记录日志
func (s *FileStore) Set(ctx context.Context, key Key, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		s.dropWrite(ctx, key, err)
		return
	}

	// 先写临时文件再改名，避免读到半写状态
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		s.dropWrite(ctx, key, err)
		return
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		s.dropWrite(ctx, key, err)
	}
}

// Clear 删除快照文件，幂等
func (s *FileStore) Clear(ctx context.Context, key Key) {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		logger.Warn(ctx, "Failed to clear snapshot", "key", key, "error", err)
	}
}

func (s *FileStore) dropWrite(ctx context.Context, key Key, err error) {
	logger.Warn(ctx, "Snapshot write dropped", "key", key, "error", err)
	if s.onWriteFailure != nil {
		s.onWriteFailure()
	}
}
