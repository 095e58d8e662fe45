package systems

import (
	"image/color"

	"github.com/decker502/penalty/pkg/components"
	"github.com/decker502/penalty/pkg/config"
	"github.com/decker502/penalty/pkg/ecs"
	"github.com/decker502/penalty/pkg/entities"
	"github.com/decker502/penalty/pkg/shootout"
	"github.com/decker502/penalty/pkg/utils"
)

// 结果文字颜色
var (
	colorGoalText = color.RGBA{R: 255, G: 230, B: 60, A: 255}
	colorSaveText = color.RGBA{R: 255, G: 120, B: 60, A: 255}
	colorMissText = color.RGBA{R: 230, G: 230, B: 230, A: 255}
)

// 操作提示
const (
	hintAiming = "LEFT/RIGHT aim   SPACE shoot   ESC menu   M mute"
	hintReady  = "SPACE to reset"
)

// SessionSyncSystem 把状态机的状态同步到 ECS 组件
//
// 状态机不依赖渲染，本系统每帧读取 Session 并写入
// TransformComponent、KeeperMotionComponent 和 StatusTextComponent。
type SessionSyncSystem struct {
	entityManager *ecs.EntityManager
	session       *shootout.Session
	rig           entities.Rig
}

// NewSessionSyncSystem 创建同步系统
func NewSessionSyncSystem(em *ecs.EntityManager, session *shootout.Session, rig entities.Rig) *SessionSyncSystem {
	return &SessionSyncSystem{
		entityManager: em,
		session:       session,
		rig:           rig,
	}
}

// Update 同步一帧
func (s *SessionSyncSystem) Update(deltaTime float64) {
	p := s.session.Params()

	// 球
	if tr, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.rig.Ball); ok {
		ball := s.session.Ball()
		tr.Position = ball.Position
		tr.Orientation = ball.Orientation
	}

	// 瞄准光标
	if tr, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.rig.Cursor); ok {
		tr.Position = entities.CursorPosition(p, s.session.Aim())
		tr.Visible = s.session.CursorVisible()
	}

	s.updateKeeper(p, deltaTime)
	s.updateStatus()
}

// updateKeeper 守门员从当前位置缓动到扑救位置
func (s *SessionSyncSystem) updateKeeper(p shootout.Params, deltaTime float64) {
	tr, ok := ecs.GetComponent[*components.TransformComponent](s.entityManager, s.rig.Keeper)
	if !ok {
		return
	}
	motion, ok := ecs.GetComponent[*components.KeeperMotionComponent](s.entityManager, s.rig.Keeper)
	if !ok {
		tr.Position = entities.KeeperPosition(p, s.session.KeeperX())
		return
	}

	target := s.session.KeeperX()
	if target != motion.TargetX {
		motion.FromX = tr.Position.X()
		motion.TargetX = target
		motion.Elapsed = 0
		motion.Duration = config.KeeperEaseDuration
	}

	motion.Elapsed += deltaTime
	t := 1.0
	if motion.Duration > 0 {
		t = utils.Clamp01(motion.Elapsed / motion.Duration)
	}
	x := utils.Lerp(motion.FromX, motion.TargetX, utils.EaseOutCubic(t))
	tr.Position = entities.KeeperPosition(p, x)
}

// updateStatus 刷新结果文字和操作提示
func (s *SessionSyncSystem) updateStatus() {
	status, ok := ecs.GetComponent[*components.StatusTextComponent](s.entityManager, s.rig.HUD)
	if !ok {
		return
	}

	switch s.session.State() {
	case shootout.StateAiming:
		status.Text = ""
		status.Hint = hintAiming
	case shootout.StateShooting:
		status.Text = ""
		status.Hint = ""
	case shootout.StateResolving, shootout.StateReady:
		o := s.session.Attempt().Outcome
		status.Text = o.Label()
		status.Color = OutcomeColor(o)
		status.Hint = ""
		if s.session.State() == shootout.StateReady {
			status.Hint = hintReady
		}
	}
}

// OutcomeColor 结果文字颜色
func OutcomeColor(o shootout.Outcome) color.RGBA {
	switch {
	case o.Scored:
		return colorGoalText
	case o.Blocked:
		return colorSaveText
	default:
		return colorMissText
	}
}
