package game

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/decker502/penalty/pkg/config"
)

// ErrClipsNotLoaded 片段库尚未加载完成
var ErrClipsNotLoaded = errors.New("clip library not loaded")

// ClipLoader 片段配置加载函数
type ClipLoader func() (*config.ClipConfig, error)

// ClipLibrary 动画片段库
//
// 片段配置在后台 goroutine 中加载，加载完成前所有查询返回"不存在"，
// 调用方（EntityAnimator）据此跳过动画播放，游戏逻辑不受影响。
//
// 并发模型:
//   - 只有加载 goroutine 写入，写入在 mu 写锁下完成
//   - 帧循环通过读锁查询
type ClipLibrary struct {
	mu     sync.RWMutex
	clips  *config.ClipConfig
	err    error
	loaded bool

	startOnce sync.Once
	done      chan struct{}
}

// NewClipLibrary 创建空的片段库
func NewClipLibrary() *ClipLibrary {
	return &ClipLibrary{done: make(chan struct{})}
}

// LoadAsync 在后台加载片段配置，只有第一次调用生效
func (l *ClipLibrary) LoadAsync(loader ClipLoader) {
	l.startOnce.Do(func() {
		go func() {
			defer close(l.done)

			clips, err := loader()

			l.mu.Lock()
			l.clips = clips
			l.err = err
			l.loaded = err == nil && clips != nil
			l.mu.Unlock()

			if err != nil {
				log.Printf("[ClipLibrary] Warning: Failed to load clips: %v (animations disabled)", err)
				return
			}
			log.Printf("[ClipLibrary] Loaded clips for %d units", len(clips.Units))
		}()
	})
}

// Set 同步设置片段配置（测试和终端前端使用）
func (l *ClipLibrary) Set(clips *config.ClipConfig) {
	l.startOnce.Do(func() {
		l.mu.Lock()
		l.clips = clips
		l.loaded = clips != nil
		l.mu.Unlock()
		close(l.done)
	})
}

// Loaded 是否已成功加载
func (l *ClipLibrary) Loaded() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loaded
}

// Err 返回加载错误（加载中或成功时为 nil）
func (l *ClipLibrary) Err() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.err
}

// Wait 阻塞直到加载结束或 ctx 取消
func (l *ClipLibrary) Wait(ctx context.Context) error {
	select {
	case <-l.done:
		if err := l.Err(); err != nil {
			return err
		}
		if !l.Loaded() {
			return ErrClipsNotLoaded
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Lookup 查找片段，未加载或不存在时返回 false
func (l *ClipLibrary) Lookup(unit, name string) (config.ClipDef, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if !l.loaded {
		return config.ClipDef{}, false
	}
	return l.clips.Lookup(unit, name)
}
