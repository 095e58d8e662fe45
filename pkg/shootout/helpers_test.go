package shootout

import "time"

const frame = 16 * time.Millisecond

// recordingAnimator 记录所有播放请求的测试动画
type recordingAnimator struct {
	plays     []string
	stops     int
	current   string
	available map[string]bool // nil 表示所有动画都可用
}

func (a *recordingAnimator) Play(name string) bool {
	if a.available != nil && !a.available[name] {
		return false
	}
	a.plays = append(a.plays, name)
	a.current = name
	return true
}

func (a *recordingAnimator) Stop() {
	a.stops++
	a.current = ""
}

func (a *recordingAnimator) IsPlaying(name string) bool {
	return a.current == name
}

func (a *recordingAnimator) count(name string) int {
	n := 0
	for _, p := range a.plays {
		if p == name {
			n++
		}
	}
	return n
}

// eventLog 收集事件
type eventLog struct {
	events []Event
}

func (l *eventLog) OnEvent(e Event) {
	l.events = append(l.events, e)
}

func (l *eventLog) kinds() []EventKind {
	out := make([]EventKind, 0, len(l.events))
	for _, e := range l.events {
		out = append(out, e.Kind)
	}
	return out
}

func (l *eventLog) count(kind EventKind) int {
	n := 0
	for _, e := range l.events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// runFrames 以固定帧间隔推进 n 帧，返回最后的时刻
func runFrames(s *Session, now time.Duration, n int) time.Duration {
	for i := 0; i < n; i++ {
		now += frame
		s.Update(now)
	}
	return now
}

// runUntil 推进直到状态离开 from，最多 max 帧
func runUntil(s *Session, now time.Duration, from State, max int) (time.Duration, bool) {
	for i := 0; i < max; i++ {
		now += frame
		s.Update(now)
		if s.State() != from {
			return now, true
		}
	}
	return now, false
}

// aimTo 用左右输入把瞄准移动到目标值
func aimTo(s *Session, target float64) {
	for s.Aim() < target {
		s.HandleInput(InputRight)
	}
	for s.Aim() > target {
		s.HandleInput(InputLeft)
	}
}
