package shootout

// EventKind 状态机对外发布的事件类型
type EventKind int

const (
	EventKick EventKind = iota
	EventLaunch
	EventDive
	EventDeflect
	EventGoal
	EventSave
	EventMiss
	EventCelebrate
	EventReset
)

// String 返回事件名称
func (k EventKind) String() string {
	switch k {
	case EventKick:
		return "kick"
	case EventLaunch:
		return "launch"
	case EventDive:
		return "dive"
	case EventDeflect:
		return "deflect"
	case EventGoal:
		return "goal"
	case EventSave:
		return "save"
	case EventMiss:
		return "miss"
	case EventCelebrate:
		return "celebrate"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event 一条状态机事件
// Outcome 只在 goal/save/miss 上有效；Team/Dot 只在记分板启用时有效
type Event struct {
	Kind    EventKind
	Attempt int
	Dive    Dive
	Outcome Outcome
	Ledger  bool
	Team    TeamIndex
	Dot     int
}

// Listener 事件订阅者（记分板、音效等）
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc 函数适配器
type ListenerFunc func(e Event)

// OnEvent 实现 Listener
func (f ListenerFunc) OnEvent(e Event) {
	f(e)
}
