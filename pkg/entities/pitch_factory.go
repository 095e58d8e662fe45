package entities

import (
	"image/color"

	"github.com/decker502/penalty/pkg/components"
	"github.com/decker502/penalty/pkg/ecs"
	"github.com/decker502/penalty/pkg/shootout"
	"github.com/go-gl/mathgl/mgl64"
)

// 单位名，对应 data/clips.yaml 中的 units
const (
	UnitStriker = "striker"
	UnitKeeper  = "keeper"
)

// 人物尺寸（世界单位）
const (
	strikerHeight = 1.8
	strikerWidth  = 0.45
	keeperHeight  = 1.9
	keeperWidth   = 0.55
	cursorRadius  = 0.35
)

// 绘制层级（小的先画）
const (
	LayerPitch = iota
	LayerGoal
	LayerFigures
	LayerCursor
)

var (
	colorPitch   = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	colorGoal    = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	colorStriker = color.RGBA{R: 30, G: 90, B: 200, A: 255}
	colorKeeper  = color.RGBA{R: 240, G: 170, B: 20, A: 255}
	colorBall    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorCursor  = color.RGBA{R: 255, G: 60, B: 60, A: 255}
)

// Rig 一个射门场景的全部实体
type Rig struct {
	Pitch   ecs.EntityID
	Goal    ecs.EntityID
	Striker ecs.EntityID
	Keeper  ecs.EntityID
	Ball    ecs.EntityID
	Cursor  ecs.EntityID
	HUD     ecs.EntityID
}

// NewRig 按变体参数创建场地、球门、射手、守门员、球、瞄准光标和 HUD 实体
//
// 参数:
//   - em: 实体管理器
//   - p: 变体参数（决定球门尺寸和球的出生点）
//
// 返回:
//   - Rig: 创建的实体ID集合
func NewRig(em *ecs.EntityManager, p shootout.Params) Rig {
	var rig Rig

	rig.Pitch = newFigure(em, mgl64.Vec3{0, 0, p.Spawn.Z()}, components.FigureComponent{
		Kind:   components.FigurePitch,
		Color:  colorPitch,
		Width:  p.LateralBound * 2,
		Height: p.Spawn.Z() - p.GoalLineZ,
		Layer:  LayerPitch,
	})

	rig.Goal = newFigure(em, mgl64.Vec3{0, 0, p.GoalLineZ}, components.FigureComponent{
		Kind:   components.FigureGoal,
		Color:  colorGoal,
		Width:  p.GoalHalfWidth * 2,
		Height: p.GoalHeight,
		Layer:  LayerGoal,
	})

	rig.Striker = newFigure(em, StrikerPosition(p), components.FigureComponent{
		Kind:   components.FigureStriker,
		Color:  colorStriker,
		Width:  strikerWidth,
		Height: strikerHeight,
		Layer:  LayerFigures,
	})
	em.AddComponent(rig.Striker, &components.ClipComponent{Unit: UnitStriker})

	rig.Keeper = newFigure(em, KeeperPosition(p, 0), components.FigureComponent{
		Kind:   components.FigureKeeper,
		Color:  colorKeeper,
		Width:  keeperWidth,
		Height: keeperHeight,
		Layer:  LayerFigures,
	})
	em.AddComponent(rig.Keeper, &components.ClipComponent{Unit: UnitKeeper})
	em.AddComponent(rig.Keeper, &components.KeeperMotionComponent{})

	rig.Ball = newFigure(em, p.Spawn, components.FigureComponent{
		Kind:   components.FigureBall,
		Color:  colorBall,
		Radius: p.BallRadius,
		Layer:  LayerFigures,
	})

	rig.Cursor = newFigure(em, CursorPosition(p, 0), components.FigureComponent{
		Kind:   components.FigureCursor,
		Color:  colorCursor,
		Radius: cursorRadius,
		Layer:  LayerCursor,
	})

	rig.HUD = em.CreateEntity()
	em.AddComponent(rig.HUD, &components.ScoreboardComponent{
		Enabled: p.Ledger.Enabled,
		Teams:   p.Ledger.Teams,
		PerTurn: p.Ledger.AttemptsPerTurn,
	})
	em.AddComponent(rig.HUD, &components.StatusTextComponent{})

	return rig
}

// StrikerPosition 射手站位：球后方偏左
func StrikerPosition(p shootout.Params) mgl64.Vec3 {
	return mgl64.Vec3{p.Spawn.X() - 0.7, 0, p.Spawn.Z() + 1.2}
}

// KeeperPosition 守门员站位：门线前方，x 为横向位置
func KeeperPosition(p shootout.Params, x float64) mgl64.Vec3 {
	return mgl64.Vec3{x, 0, p.GoalLineZ + 0.6}
}

// CursorPosition 瞄准光标：门线上、球门半高处
func CursorPosition(p shootout.Params, aim float64) mgl64.Vec3 {
	return mgl64.Vec3{aim, p.GoalHeight / 2, p.GoalLineZ}
}

func newFigure(em *ecs.EntityManager, pos mgl64.Vec3, figure components.FigureComponent) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.TransformComponent{
		Position:    pos,
		Orientation: mgl64.QuatIdent(),
		Visible:     true,
	})
	f := figure
	em.AddComponent(id, &f)
	return id
}
