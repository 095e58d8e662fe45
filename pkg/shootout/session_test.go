package shootout

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

func newTestSession(p Params, dive Dive, opts ...Option) (*Session, *recordingAnimator, *recordingAnimator, *eventLog) {
	striker := &recordingAnimator{}
	keeper := &recordingAnimator{}
	events := &eventLog{}
	all := []Option{
		WithAnimators(striker, keeper),
		WithDiveChooser(FixedDive(dive)),
		WithRand(rand.New(rand.NewSource(1))),
		WithListener(events),
	}
	all = append(all, opts...)
	return NewSession(p, all...), striker, keeper, events
}

// TestAimClamp 测试任意长度的输入序列后瞄准都在 [-3, 3] 内
func TestAimClamp(t *testing.T) {
	s, _, _, _ := newTestSession(DefaultParams(), DiveCenter)
	r := rand.New(rand.NewSource(7))

	for i := 0; i < 2000; i++ {
		if r.Intn(2) == 0 {
			s.HandleInput(InputLeft)
		} else {
			s.HandleInput(InputRight)
		}
		if s.Aim() < -3 || s.Aim() > 3 {
			t.Fatalf("input %d: aim %.2f out of [-3, 3]", i, s.Aim())
		}
	}

	for i := 0; i < 50; i++ {
		s.HandleInput(InputRight)
	}
	if s.Aim() != 3 {
		t.Errorf("aim after many rights: got %.2f, want 3", s.Aim())
	}
	for i := 0; i < 50; i++ {
		s.HandleInput(InputLeft)
	}
	if s.Aim() != -3 {
		t.Errorf("aim after many lefts: got %.2f, want -3", s.Aim())
	}
}

// TestTriggerStartsShot 测试射门触发
func TestTriggerStartsShot(t *testing.T) {
	s, striker, keeper, events := newTestSession(DefaultParams(), DiveLeft)

	s.HandleInput(InputTrigger)

	if s.State() != StateShooting {
		t.Fatalf("state: got %s, want shooting", s.State())
	}
	if s.CursorVisible() {
		t.Error("cursor should be hidden while shooting")
	}
	if striker.current != ClipKick {
		t.Errorf("striker clip: got %q, want %q", striker.current, ClipKick)
	}
	if keeper.current != ClipDiveLeft {
		t.Errorf("keeper clip: got %q, want %q", keeper.current, ClipDiveLeft)
	}
	if s.KeeperX() != -2 {
		t.Errorf("keeperX: got %.2f, want -2", s.KeeperX())
	}
	if s.Ball().Velocity != (mgl64.Vec3{}) {
		t.Errorf("ball should not move before the kick delay, got %v", s.Ball().Velocity)
	}
	if events.count(EventKick) != 1 || events.count(EventDive) != 1 {
		t.Errorf("events: got %v", events.kinds())
	}
}

// TestLaunchAfterKickDelay 测试 700ms 后出球，速度由瞄准推导
func TestLaunchAfterKickDelay(t *testing.T) {
	p := DefaultParams()
	s, _, _, _ := newTestSession(p, DiveCenter)
	aimTo(s, 2)
	s.HandleInput(InputTrigger)

	s.Update(699 * time.Millisecond)
	if s.Attempt().Launched {
		t.Fatal("ball launched before the kick delay")
	}

	s.Update(700 * time.Millisecond)
	if !s.Attempt().Launched {
		t.Fatal("ball not launched at the kick delay")
	}

	want := mgl64.Vec3{2 * p.LateralGain, p.VerticalGain, -p.ForwardSpeed}
	if !s.Attempt().Launch.ApproxEqual(want) {
		t.Errorf("launch velocity: got %v, want %v", s.Attempt().Launch, want)
	}
}

// TestLaunchWithoutKickClip 测试踢球动画缺失时仍然出球
func TestLaunchWithoutKickClip(t *testing.T) {
	striker := &recordingAnimator{available: map[string]bool{}}
	s := NewSession(DefaultParams(),
		WithAnimators(striker, nil),
		WithDiveChooser(FixedDive(DiveRight)),
	)

	s.HandleInput(InputTrigger)
	runFrames(s, 0, 50)

	if !s.Attempt().Launched {
		t.Error("ball should launch even when the kick clip is missing")
	}
	if len(striker.plays) != 0 {
		t.Errorf("no clip should have played, got %v", striker.plays)
	}
}

// TestTriggerIgnoredOutsideAiming 测试非瞄准状态下射门输入无效
func TestTriggerIgnoredOutsideAiming(t *testing.T) {
	s, striker, keeper, events := newTestSession(DefaultParams(), DiveCenter)
	s.HandleInput(InputTrigger)
	now := runFrames(s, 0, 60)

	ball := s.Ball()
	attempts := s.Attempts()
	strikerPlays, keeperPlays := len(striker.plays), len(keeper.plays)
	nEvents := len(events.events)

	s.HandleInput(InputTrigger)
	s.HandleInput(InputLeft)
	s.HandleInput(InputRight)

	if s.State() != StateShooting {
		t.Errorf("state: got %s, want shooting", s.State())
	}
	if s.Ball() != ball {
		t.Error("ball changed after ignored input")
	}
	if s.Attempts() != attempts {
		t.Errorf("attempts: got %d, want %d", s.Attempts(), attempts)
	}
	if len(striker.plays) != strikerPlays || len(keeper.plays) != keeperPlays {
		t.Error("animations changed after ignored input")
	}
	if len(events.events) != nEvents {
		t.Errorf("unexpected events: %v", events.kinds()[nEvents:])
	}

	// resolving 状态同样忽略
	now, ok := runUntil(s, now, StateShooting, 400)
	if !ok || s.State() != StateResolving {
		t.Fatalf("expected resolving, got %s", s.State())
	}
	s.HandleInput(InputTrigger)
	if s.State() != StateResolving || s.Attempts() != attempts {
		t.Error("trigger during resolving should be ignored")
	}
	_ = now
}

// TestCenterShotBlockedByCenteredKeeper 中路射门被居中的守门员扑住
func TestCenterShotBlockedByCenteredKeeper(t *testing.T) {
	s, _, _, events := newTestSession(DefaultParams(), DiveCenter)
	s.HandleInput(InputTrigger)

	if _, ok := runUntil(s, 0, StateShooting, 400); !ok {
		t.Fatal("shot never resolved")
	}

	o, ok := s.LastOutcome()
	if !ok {
		t.Fatal("no outcome recorded")
	}
	if !o.Blocked {
		t.Errorf("expected blocked, crossX=%.3f keeperX=%.3f", o.CrossX, o.KeeperX)
	}
	if o.Scored {
		t.Error("blocked shot must not score")
	}
	if events.count(EventSave) != 1 {
		t.Errorf("expected one save event, got %v", events.kinds())
	}
}

// TestCornerShotScoresPastCenteredKeeper 瞄准最大偏移，守门员居中，进球
func TestCornerShotScoresPastCenteredKeeper(t *testing.T) {
	s, _, _, events := newTestSession(DefaultParams(), DiveCenter)
	aimTo(s, 3)
	s.HandleInput(InputTrigger)

	if _, ok := runUntil(s, 0, StateShooting, 400); !ok {
		t.Fatal("shot never resolved")
	}

	o, _ := s.LastOutcome()
	if o.Blocked {
		t.Errorf("expected not blocked, crossX=%.3f", o.CrossX)
	}
	if !o.Scored {
		t.Error("expected a goal")
	}
	if !o.OnTarget {
		t.Errorf("calibrated shot should land inside the goal, crossX=%.3f crossY=%.3f", o.CrossX, o.CrossY)
	}
	if math.Abs(o.CrossX-3) > 0.2 {
		t.Errorf("crossX: got %.3f, want about 3", o.CrossX)
	}
	if events.count(EventGoal) != 1 {
		t.Errorf("expected one goal event, got %v", events.kinds())
	}
}

// TestDivingKeeperCoversCorner 守门员扑向射门方向时扑住
func TestDivingKeeperCoversCorner(t *testing.T) {
	s, _, _, _ := newTestSession(DefaultParams(), DiveRight)
	aimTo(s, 2)
	s.HandleInput(InputTrigger)
	runUntil(s, 0, StateShooting, 400)

	o, _ := s.LastOutcome()
	if !o.Blocked {
		t.Errorf("keeper at %.2f should block a shot crossing at %.2f", o.KeeperX, o.CrossX)
	}
}

// TestTimedResetAfterResolution 简单变体结算 1500ms 后自动复位
func TestTimedResetAfterResolution(t *testing.T) {
	s, _, keeper, events := newTestSession(DefaultParams(), DiveLeft)
	s.HandleInput(InputTrigger)

	now, ok := runUntil(s, 0, StateShooting, 400)
	if !ok {
		t.Fatal("shot never resolved")
	}
	if s.State() != StateResolving {
		t.Fatalf("state: got %s, want resolving", s.State())
	}

	now = runFrames(s, now, 93) // 1488ms
	if s.State() != StateResolving {
		t.Fatalf("reset fired early at %v", now)
	}
	runFrames(s, now, 1)
	if s.State() != StateAiming {
		t.Fatalf("state after reset delay: got %s, want aiming", s.State())
	}
	if keeper.current != ClipIdle {
		t.Errorf("keeper clip after reset: got %q, want idle", keeper.current)
	}
	if events.count(EventReset) != 1 {
		t.Errorf("expected one reset event, got %v", events.kinds())
	}
}

// TestResetRestoresInitialState 任何状态下复位都恢复初始值
func TestResetRestoresInitialState(t *testing.T) {
	p := DefaultParams()

	for _, frames := range []int{0, 20, 60, 100, 300} {
		s, _, _, _ := newTestSession(p, DiveRight)
		aimTo(s, -2.5)
		s.HandleInput(InputTrigger)
		runFrames(s, 0, frames)

		s.Reset()

		ball := s.Ball()
		if ball.Position != p.Spawn {
			t.Errorf("frames=%d: position %v, want %v", frames, ball.Position, p.Spawn)
		}
		if ball.Velocity != (mgl64.Vec3{}) {
			t.Errorf("frames=%d: velocity %v, want zero", frames, ball.Velocity)
		}
		if s.Aim() != 0 {
			t.Errorf("frames=%d: aim %.2f, want 0", frames, s.Aim())
		}
		if !s.CursorVisible() {
			t.Errorf("frames=%d: cursor hidden after reset", frames)
		}
		if s.State() != StateAiming {
			t.Errorf("frames=%d: state %s, want aiming", frames, s.State())
		}
		if s.PendingTimers() != 0 {
			t.Errorf("frames=%d: %d timers still pending", frames, s.PendingTimers())
		}
	}
}

// TestStaleLaunchDroppedAfterReset 复位后旧的出球事件不再生效
func TestStaleLaunchDroppedAfterReset(t *testing.T) {
	s, _, _, events := newTestSession(DefaultParams(), DiveCenter)
	s.HandleInput(InputTrigger)
	now := runFrames(s, 0, 10) // 160ms，出球事件还在等待

	s.Reset()
	runFrames(s, now, 60)

	if s.Ball().Velocity != (mgl64.Vec3{}) {
		t.Errorf("stale launch moved the ball: %v", s.Ball().Velocity)
	}
	if s.State() != StateAiming {
		t.Errorf("state: got %s, want aiming", s.State())
	}
	if events.count(EventLaunch) != 0 {
		t.Error("launch event fired after reset")
	}
}

// TestWaitForTrigger 复杂变体结算后进入 ready，按键才复位
func TestWaitForTrigger(t *testing.T) {
	p := DefaultParams()
	p.WaitForTrigger = true
	p.Ledger.Enabled = false
	s, _, _, _ := newTestSession(p, DiveCenter)

	s.HandleInput(InputTrigger)
	now, _ := runUntil(s, 0, StateShooting, 400)
	if s.State() != StateReady {
		t.Fatalf("state: got %s, want ready", s.State())
	}

	runFrames(s, now, 500)
	if s.State() != StateReady {
		t.Fatalf("ready state should wait for input, got %s", s.State())
	}

	s.HandleInput(InputLeft)
	if s.Aim() != 0 {
		t.Error("aim input should be ignored in ready state")
	}

	s.HandleInput(InputTrigger)
	if s.State() != StateAiming {
		t.Errorf("state after trigger: got %s, want aiming", s.State())
	}
	if s.Attempts() != 1 {
		t.Errorf("reset trigger must not start a new shot, attempts=%d", s.Attempts())
	}
}

// TestOnTargetRequired 要求射正时，未扑住但偏出仍算失败
func TestOnTargetRequired(t *testing.T) {
	p := DefaultParams()
	p.RequireOnTarget = true
	p.GoalHalfWidth = 2.5
	s, _, _, events := newTestSession(p, DiveLeft)
	aimTo(s, 3)
	s.HandleInput(InputTrigger)
	runUntil(s, 0, StateShooting, 400)

	o, _ := s.LastOutcome()
	if o.Blocked {
		t.Fatal("keeper dived the other way, should not block")
	}
	if o.OnTarget {
		t.Errorf("crossX=%.2f should be wide of a 2.5 half width goal", o.CrossX)
	}
	if o.Scored {
		t.Error("off-target shot must not score")
	}
	if events.count(EventMiss) != 1 {
		t.Errorf("expected a miss event, got %v", events.kinds())
	}
}

// TestShortShotResolvesAsMiss 力量不足停在门前也会结算
func TestShortShotResolvesAsMiss(t *testing.T) {
	p := DefaultParams()
	p.ForwardSpeed = 0.1
	s, _, _, _ := newTestSession(p, DiveLeft)
	s.HandleInput(InputTrigger)

	now, ok := runUntil(s, 0, StateShooting, 1000)
	if !ok {
		t.Fatal("stalled shot never resolved")
	}
	o, _ := s.LastOutcome()
	if !o.Short || o.Scored {
		t.Errorf("expected a short miss, got %+v", o)
	}

	if _, ok := runUntil(s, now, StateResolving, 200); !ok || s.State() != StateAiming {
		t.Errorf("session should return to aiming, got %s", s.State())
	}
}

// TestWideShotResolvesOutOfBounds 横向出界也会结算
func TestWideShotResolvesOutOfBounds(t *testing.T) {
	p := DefaultParams()
	p.LateralGain = 0.2
	p.LateralBound = 6
	s, _, _, _ := newTestSession(p, DiveCenter)
	aimTo(s, 3)
	s.HandleInput(InputTrigger)
	runUntil(s, 0, StateShooting, 400)

	o, _ := s.LastOutcome()
	if o.Scored || o.Blocked || o.Short {
		t.Errorf("expected a plain miss, got %+v", o)
	}
	if math.Abs(o.CrossX) <= 6 {
		t.Errorf("ball should have left the lateral bound, x=%.2f", o.CrossX)
	}
}

// TestReboundPolicy 扑住后反弹，飞行结束后才结算
func TestReboundPolicy(t *testing.T) {
	p := DefaultParams()
	p.Policy = PolicyRebound
	p.WaitForTrigger = true
	p.Ledger.Enabled = false
	s, _, _, events := newTestSession(p, DiveCenter)
	s.HandleInput(InputTrigger)

	now := time.Duration(0)
	deflectedWhileShooting := false
	for i := 0; i < 600 && s.State() == StateShooting; i++ {
		now += frame
		s.Update(now)
		if events.count(EventDeflect) == 1 && s.State() == StateShooting {
			deflectedWhileShooting = true
			if s.Ball().Velocity.Z() <= 0 {
				t.Fatalf("deflected ball should move away from goal, v=%v", s.Ball().Velocity)
			}
		}
	}

	if !deflectedWhileShooting {
		t.Fatalf("expected a deflection before resolution, events=%v", events.kinds())
	}
	if s.State() != StateReady {
		t.Fatalf("state: got %s, want ready", s.State())
	}
	o, _ := s.LastOutcome()
	if !o.Blocked || !o.Deflected || o.Scored {
		t.Errorf("unexpected outcome %+v", o)
	}
	if events.count(EventSave) != 1 {
		t.Errorf("expected one save event, got %v", events.kinds())
	}
}

// TestReboundPolicyGoalEndsImmediately 未扑住时反弹策略也立即结算
func TestReboundPolicyGoalEndsImmediately(t *testing.T) {
	p := DefaultParams()
	p.Policy = PolicyRebound
	s, _, _, events := newTestSession(p, DiveCenter)
	aimTo(s, 3)
	s.HandleInput(InputTrigger)
	runUntil(s, 0, StateShooting, 400)

	if events.count(EventDeflect) != 0 {
		t.Error("unblocked shot should not deflect")
	}
	o, _ := s.LastOutcome()
	if !o.Scored {
		t.Errorf("expected a goal, got %+v", o)
	}
	if s.Ball().Position.Z() >= p.GoalLineZ {
		t.Errorf("ball should be past the goal line, z=%.2f", s.Ball().Position.Z())
	}
}

// TestCelebrationOncePerAttempt 进球庆祝每次射门只播放一次
func TestCelebrationOncePerAttempt(t *testing.T) {
	p := DefaultParams()
	p.Celebrate = true
	p.WaitForTrigger = true
	s, striker, _, events := newTestSession(p, DiveLeft)
	aimTo(s, 3)
	s.HandleInput(InputTrigger)
	now, _ := runUntil(s, 0, StateShooting, 400)
	runFrames(s, now, 120)

	if got := striker.count(ClipCelebrate); got != 1 {
		t.Errorf("celebrate played %d times, want 1", got)
	}
	if events.count(EventCelebrate) != 1 {
		t.Errorf("expected one celebrate event, got %v", events.kinds())
	}

	// 复位不会打断庆祝动画
	s.HandleInput(InputTrigger)
	if striker.current != ClipCelebrate {
		t.Errorf("celebration interrupted by reset, current=%q", striker.current)
	}
}

// TestNoCelebrationOnSave 扑住时不庆祝
func TestNoCelebrationOnSave(t *testing.T) {
	p := DefaultParams()
	p.Celebrate = true
	s, striker, _, _ := newTestSession(p, DiveCenter)
	s.HandleInput(InputTrigger)
	runUntil(s, 0, StateShooting, 400)

	if striker.count(ClipCelebrate) != 0 {
		t.Error("celebration played on a saved shot")
	}
}

// TestSessionLedgerRotation 通过会话驱动记分板轮换
func TestSessionLedgerRotation(t *testing.T) {
	dives := SequenceDives(DiveCenter, DiveLeft)
	s, _, _, events := newTestSession(DefaultParams(), DiveCenter, WithDiveChooser(dives))

	now := time.Duration(0)
	for i := 0; i < 10; i++ {
		if s.State() != StateAiming {
			t.Fatalf("attempt %d: state %s, want aiming", i, s.State())
		}
		if i == 5 && s.Ledger().Current() != TeamAway {
			t.Errorf("after 5 attempts current team should be away")
		}
		s.HandleInput(InputTrigger)
		now, _ = runUntil(s, now, StateShooting, 400)
		now, _ = runUntil(s, now, StateResolving, 200)
	}

	l := s.Ledger()
	home, away := l.Team(TeamHome), l.Team(TeamAway)
	if len(home.Results) != 5 || len(away.Results) != 5 {
		t.Fatalf("results: home=%d away=%d, want 5 each", len(home.Results), len(away.Results))
	}

	teams := map[TeamIndex]int{}
	for _, e := range events.events {
		if e.Ledger {
			teams[e.Team]++
		}
	}
	if teams[TeamHome] != 5 || teams[TeamAway] != 5 {
		t.Errorf("ledger events per team: %v", teams)
	}
}

// TestUpdateIgnoresClockRegression 时钟回退不影响调度
func TestUpdateIgnoresClockRegression(t *testing.T) {
	s, _, _, _ := newTestSession(DefaultParams(), DiveCenter)
	s.Update(500 * time.Millisecond)
	s.HandleInput(InputTrigger)
	s.Update(100 * time.Millisecond)

	if s.Now() != 500*time.Millisecond {
		t.Errorf("now: got %v, want 500ms", s.Now())
	}
	s.Update(1199 * time.Millisecond)
	if s.Attempt().Launched {
		t.Error("launch fired before trigger time + delay")
	}
	s.Update(1200 * time.Millisecond)
	if !s.Attempt().Launched {
		t.Error("launch should fire at trigger time + delay")
	}
}
