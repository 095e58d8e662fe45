package shootout

import (
	"sort"
	"time"
)

// TimerKind 延迟事件类型
type TimerKind int

const (
	// TimerLaunch 踢球动作到达触球帧，设置球速
	TimerLaunch TimerKind = iota
	// TimerReset 结算后延迟复位
	TimerReset
)

// String 返回事件名称
func (k TimerKind) String() string {
	switch k {
	case TimerLaunch:
		return "launch"
	case TimerReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Timer 一个待触发的延迟事件
type Timer struct {
	Kind       TimerKind
	Due        time.Duration // 触发时刻（单调时钟）
	Generation uint64        // 调度时的会话代数
}

// Scheduler 基于单调时钟的延迟事件队列
//
// 时钟由调用方每帧读取一次后传入，队列本身不读取系统时间。
// 每个事件记录调度时的代数，代数不匹配的事件在触发时被丢弃，
// 这样状态切换后遗留的旧事件不会覆盖新状态。
type Scheduler struct {
	pending []Timer
}

// NewScheduler 创建空队列
func NewScheduler() *Scheduler {
	return &Scheduler{
		pending: make([]Timer, 0, 4),
	}
}

// Schedule 添加延迟事件
//
// 参数:
//   - kind: 事件类型
//   - due: 触发时刻
//   - generation: 当前会话代数
func (s *Scheduler) Schedule(kind TimerKind, due time.Duration, generation uint64) {
	s.pending = append(s.pending, Timer{Kind: kind, Due: due, Generation: generation})
	sort.SliceStable(s.pending, func(i, j int) bool {
		return s.pending[i].Due < s.pending[j].Due
	})
}

// Due 取出所有到期且代数匹配的事件，按触发时刻排序
// 到期但代数过期的事件会被直接丢弃
//
// 参数:
//   - now: 当前时刻
//   - generation: 当前会话代数
//
// 返回:
//   - []Timer: 需要处理的事件
func (s *Scheduler) Due(now time.Duration, generation uint64) []Timer {
	var fired []Timer
	kept := s.pending[:0]
	for _, t := range s.pending {
		switch {
		case t.Generation != generation:
			// 过期事件
		case t.Due <= now:
			fired = append(fired, t)
		default:
			kept = append(kept, t)
		}
	}
	s.pending = kept
	return fired
}

// Cancel 取消指定类型的所有事件
func (s *Scheduler) Cancel(kind TimerKind) {
	kept := s.pending[:0]
	for _, t := range s.pending {
		if t.Kind != kind {
			kept = append(kept, t)
		}
	}
	s.pending = kept
}

// CancelAll 清空队列
func (s *Scheduler) CancelAll() {
	s.pending = s.pending[:0]
}

// Len 返回待触发事件数量
func (s *Scheduler) Len() int {
	return len(s.pending)
}

// Pending 检查是否有指定类型的待触发事件
func (s *Scheduler) Pending(kind TimerKind) bool {
	for _, t := range s.pending {
		if t.Kind == kind {
			return true
		}
	}
	return false
}
