package shootout

import (
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Attempt 一次射门尝试
// 射门触发时创建，复位时清空
type Attempt struct {
	Number     int        // 从 1 开始的序号
	Aim        float64    // 触发时的瞄准偏移
	Launch     mgl64.Vec3 // 出球速度（Launched 之后有效）
	Launched   bool       // 球是否已离脚
	Frames     int        // 飞行帧数
	Dive       Dive       // 守门员扑救方向
	Crossed    bool       // 是否已穿过门线
	Resolved   bool       // 是否已结算
	Outcome    Outcome    // 结算结果（Resolved 或 Crossed 之后有效）
	Celebrated bool       // 庆祝动画是否已触发
}

// Option 会话构造选项
type Option func(*Session)

// WithAnimators 设置射手和守门员的动画接口，nil 表示没有动画
func WithAnimators(striker, keeper Animator) Option {
	return func(s *Session) {
		if striker != nil {
			s.striker = striker
		}
		if keeper != nil {
			s.keeper = keeper
		}
	}
}

// WithDiveChooser 注入扑救方向选择函数
func WithDiveChooser(c DiveChooser) Option {
	return func(s *Session) {
		if c != nil {
			s.chooseDive = c
		}
	}
}

// WithRand 设置随机源（反弹扰动；未指定 DiveChooser 时也用于扑救方向）
func WithRand(r *rand.Rand) Option {
	return func(s *Session) {
		if r != nil {
			s.rng = r
		}
	}
}

// WithListener 添加事件订阅者
func WithListener(l Listener) Option {
	return func(s *Session) {
		if l != nil {
			s.listeners = append(s.listeners, l)
		}
	}
}

// Session 一局点球游戏的全部可变状态
//
// 所有状态都归 Session 所有，由帧循环显式调用 HandleInput 和 Update 驱动，
// 不依赖任何渲染环境，因此可以直接在单元测试中使用。
// Session 不是并发安全的，只应在帧循环所在的 goroutine 中使用。
type Session struct {
	params Params

	state         State
	aim           float64
	cursorVisible bool
	ball          Ball
	keeperX       float64
	attempt       Attempt
	attempts      int

	lastOutcome Outcome
	hasOutcome  bool

	ledger *Ledger

	scheduler  *Scheduler
	generation uint64
	now        time.Duration

	striker    Animator
	keeper     Animator
	chooseDive DiveChooser
	rng        *rand.Rand
	listeners  []Listener
}

// NewSession 创建会话并进入瞄准状态
//
// 参数:
//   - p: 变体参数
//   - opts: 可选项（动画、随机源、订阅者）
//
// 返回:
//   - *Session: 已处于 StateAiming 的会话
func NewSession(p Params, opts ...Option) *Session {
	s := &Session{
		params:        p,
		state:         StateAiming,
		cursorVisible: true,
		ball:          NewBall(p.Spawn, p.BallRadius),
		scheduler:     NewScheduler(),
		striker:       NopAnimator{},
		keeper:        NopAnimator{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.chooseDive == nil {
		s.chooseDive = RandomDiveChooser(s.rng)
	}
	if p.Ledger.Enabled {
		s.ledger = NewLedger(p.Ledger)
	}

	s.keeper.Play(ClipIdle)
	s.striker.Play(ClipIdle)
	return s
}

// AddListener 添加事件订阅者
func (s *Session) AddListener(l Listener) {
	if l != nil {
		s.listeners = append(s.listeners, l)
	}
}

// HandleInput 处理一条输入
//
// 瞄准状态下左右调整瞄准（限制在 ±AimLimit），触发键射门；
// ready 状态下触发键复位；其他情况忽略输入。
func (s *Session) HandleInput(in Input) {
	switch s.state {
	case StateAiming:
		switch in {
		case InputLeft:
			s.aim = clamp(s.aim-s.params.AimStep, -s.params.AimLimit, s.params.AimLimit)
		case InputRight:
			s.aim = clamp(s.aim+s.params.AimStep, -s.params.AimLimit, s.params.AimLimit)
		case InputTrigger:
			s.shoot()
		}
	case StateReady:
		if in == InputTrigger {
			s.Reset()
		}
	}
}

// Update 推进一帧
//
// 先处理到期的延迟事件，再在射门状态下积分一步。
// now 是帧开始时读取一次的单调时钟；回退的时间会被忽略。
func (s *Session) Update(now time.Duration) {
	if now > s.now {
		s.now = now
	}

	for _, t := range s.scheduler.Due(s.now, s.generation) {
		s.fire(t)
	}

	if s.state == StateShooting {
		s.integrate()
	}
}

// Reset 复位到瞄准状态
// 球回到出生点，速度、瞄准清零，显示瞄准光标，守门员回到待机动画，
// 并取消所有待触发的延迟事件。任何状态下都可以调用。
func (s *Session) Reset() {
	s.transition(StateAiming)

	s.ball.Reset(s.params.Spawn)
	s.aim = 0
	s.cursorVisible = true
	s.keeperX = 0
	s.attempt = Attempt{}

	s.keeper.Stop()
	s.keeper.Play(ClipIdle)
	if !s.striker.IsPlaying(ClipCelebrate) {
		s.striker.Play(ClipIdle)
	}

	s.emit(Event{Kind: EventReset, Attempt: s.attempts})
}

// shoot 射门触发
func (s *Session) shoot() {
	s.transition(StateShooting)
	s.cursorVisible = false
	s.attempts++
	s.attempt = Attempt{
		Number: s.attempts,
		Aim:    s.aim,
	}

	s.striker.Stop()
	s.striker.Play(ClipKick)
	// 无论踢球动画是否存在都要出球，否则资源缺失时状态机会卡住
	s.scheduler.Schedule(TimerLaunch, s.now+s.params.KickDelay, s.generation)
	s.emit(Event{Kind: EventKick, Attempt: s.attempts})

	dive := s.chooseDive()
	s.attempt.Dive = dive
	s.keeperX = dive.Sign() * s.params.DiveReach
	s.keeper.Stop()
	s.keeper.Play(dive.Clip())
	s.emit(Event{Kind: EventDive, Attempt: s.attempts, Dive: dive})

	log.Printf("[Session] 第 %d 次射门: aim=%.2f dive=%s", s.attempts, s.aim, dive)
}

// fire 处理到期的延迟事件
func (s *Session) fire(t Timer) {
	switch t.Kind {
	case TimerLaunch:
		if s.state != StateShooting {
			return
		}
		s.launch()
	case TimerReset:
		if s.state != StateResolving {
			return
		}
		s.Reset()
	}
}

// launch 球离脚，由玩家输入推导出唯一一次物理参数
func (s *Session) launch() {
	v := mgl64.Vec3{
		(s.attempt.Aim - s.ball.Position.X()) * s.params.LateralGain,
		s.params.VerticalGain,
		-s.params.ForwardSpeed,
	}
	s.ball.Velocity = v
	s.attempt.Launch = v
	s.attempt.Launched = true
	s.emit(Event{Kind: EventLaunch, Attempt: s.attempt.Number, Dive: s.attempt.Dive})
}

// integrate 积分一帧并检测门线/边界
func (s *Session) integrate() {
	if !s.attempt.Launched {
		return
	}

	if !s.ball.Moving(s.params.Epsilon) {
		if s.attempt.Crossed {
			s.resolve(s.attempt.Outcome)
		} else {
			pos := s.ball.Position
			s.resolve(Missed(pos.X(), pos.Y(), s.keeperX, true))
		}
		return
	}

	prevZ := s.ball.Position.Z()
	s.ball.Step(s.params.Damping)
	s.attempt.Frames++
	pos := s.ball.Position

	if !s.attempt.Crossed && prevZ >= s.params.GoalLineZ && pos.Z() < s.params.GoalLineZ {
		s.attempt.Crossed = true
		o := Evaluate(pos.X(), pos.Y(), s.keeperX, &s.params)
		s.attempt.Outcome = o

		if o.Blocked && s.params.Policy == PolicyRebound && s.ball.Velocity.Z() < 0 {
			s.deflect()
			return
		}
		s.resolve(o)
		return
	}

	if s.outOfBounds(pos) {
		if s.attempt.Crossed {
			s.resolve(s.attempt.Outcome)
		} else {
			s.resolve(Missed(pos.X(), pos.Y(), s.keeperX, false))
		}
	}
}

// deflect 扑住后的反弹：前向速度反向并按恢复系数衰减，附加小幅随机扰动
func (s *Session) deflect() {
	v := s.ball.Velocity
	jitter := s.params.BounceJitter
	s.ball.Velocity = mgl64.Vec3{
		v.X() + (s.rng.Float64()*2-1)*jitter,
		v.Y() + s.rng.Float64()*jitter,
		-v.Z() * s.params.Restitution,
	}
	s.attempt.Outcome.Deflected = true
	s.emit(Event{Kind: EventDeflect, Attempt: s.attempt.Number, Dive: s.attempt.Dive, Outcome: s.attempt.Outcome})
}

// outOfBounds 检查球是否离开场地范围
func (s *Session) outOfBounds(pos mgl64.Vec3) bool {
	return math.Abs(pos.X()) > s.params.LateralBound ||
		pos.Y() > s.params.HeightBound ||
		pos.Z() > s.params.BackBound
}

// resolve 结算当前射门
func (s *Session) resolve(o Outcome) {
	if s.attempt.Resolved {
		return
	}
	s.attempt.Resolved = true
	s.attempt.Outcome = o
	s.lastOutcome = o
	s.hasOutcome = true
	s.ball.Velocity = mgl64.Vec3{}

	kind := EventMiss
	switch {
	case o.Scored:
		kind = EventGoal
	case o.Blocked:
		kind = EventSave
	}
	ev := Event{Kind: kind, Attempt: s.attempt.Number, Dive: s.attempt.Dive, Outcome: o}
	if s.ledger != nil {
		ev.Ledger = true
		ev.Team, ev.Dot = s.ledger.Record(o.Scored)
	}
	s.emit(ev)

	log.Printf("[Session] 第 %d 次射门结算: %s (crossX=%.2f keeperX=%.2f)",
		s.attempt.Number, o.Label(), o.CrossX, o.KeeperX)

	if o.Scored && s.params.Celebrate && !s.attempt.Celebrated {
		s.attempt.Celebrated = true
		s.striker.Stop()
		s.striker.Play(ClipCelebrate)
		s.emit(Event{Kind: EventCelebrate, Attempt: s.attempt.Number, Outcome: o})
	}

	if s.params.WaitForTrigger {
		s.transition(StateReady)
		return
	}
	s.transition(StateResolving)
	s.scheduler.Schedule(TimerReset, s.now+s.params.ResetDelay, s.generation)
}

// transition 切换状态
// 每次切换都会使代数加一并取消所有待触发事件
func (s *Session) transition(next State) {
	s.generation++
	s.scheduler.CancelAll()
	s.state = next
}

func (s *Session) emit(e Event) {
	for _, l := range s.listeners {
		l.OnEvent(e)
	}
}

// State 返回当前状态
func (s *Session) State() State { return s.state }

// Aim 返回当前瞄准偏移
func (s *Session) Aim() float64 { return s.aim }

// CursorVisible 瞄准光标是否可见
func (s *Session) CursorVisible() bool { return s.cursorVisible }

// Ball 返回球状态的副本
func (s *Session) Ball() Ball { return s.ball }

// KeeperX 返回守门员的有效横向位置
func (s *Session) KeeperX() float64 { return s.keeperX }

// Attempt 返回当前射门的副本
func (s *Session) Attempt() Attempt { return s.attempt }

// Attempts 返回累计射门次数
func (s *Session) Attempts() int { return s.attempts }

// LastOutcome 返回最近一次结算结果
func (s *Session) LastOutcome() (Outcome, bool) { return s.lastOutcome, s.hasOutcome }

// Ledger 返回记分板，未启用时为 nil
func (s *Session) Ledger() *Ledger { return s.ledger }

// Params 返回变体参数
func (s *Session) Params() Params { return s.params }

// Now 返回最近一次 Update 的时刻
func (s *Session) Now() time.Duration { return s.now }

// PendingTimers 返回待触发的延迟事件数量
func (s *Session) PendingTimers() int { return s.scheduler.Len() }

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
