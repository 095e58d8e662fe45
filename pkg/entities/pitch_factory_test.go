package entities

import (
	"testing"

	"github.com/decker502/penalty/pkg/components"
	"github.com/decker502/penalty/pkg/ecs"
	"github.com/decker502/penalty/pkg/shootout"
)

// TestNewRig 测试场景实体创建
func TestNewRig(t *testing.T) {
	em := ecs.NewEntityManager()
	p := shootout.DefaultParams()
	rig := NewRig(em, p)

	figures := ecs.GetEntitiesWith2[*components.TransformComponent, *components.FigureComponent](em)
	if len(figures) != 6 {
		t.Fatalf("expected 6 figures, got %d", len(figures))
	}

	ball, ok := ecs.GetComponent[*components.TransformComponent](em, rig.Ball)
	if !ok || ball.Position != p.Spawn {
		t.Errorf("ball should start at spawn, got %+v", ball)
	}

	goal, _ := ecs.GetComponent[*components.FigureComponent](em, rig.Goal)
	if goal.Kind != components.FigureGoal || goal.Width != p.GoalHalfWidth*2 || goal.Height != p.GoalHeight {
		t.Errorf("goal figure = %+v", goal)
	}

	for _, id := range []ecs.EntityID{rig.Striker, rig.Keeper} {
		if !ecs.HasComponent[*components.ClipComponent](em, id) {
			t.Errorf("entity %d should have a clip component", id)
		}
	}
	if clip, _ := ecs.GetComponent[*components.ClipComponent](em, rig.Keeper); clip.Unit != UnitKeeper {
		t.Errorf("keeper clip unit = %q", clip.Unit)
	}
	if !ecs.HasComponent[*components.KeeperMotionComponent](em, rig.Keeper) {
		t.Error("keeper should have motion component")
	}

	board, ok := ecs.GetComponent[*components.ScoreboardComponent](em, rig.HUD)
	if !ok || !board.Enabled || board.Teams[0] != "Modena" || board.PerTurn != 5 {
		t.Errorf("scoreboard = %+v", board)
	}
}

// TestRigWithoutLedger 非 classic 变体记分板关闭
func TestRigWithoutLedger(t *testing.T) {
	em := ecs.NewEntityManager()
	p := shootout.DefaultParams()
	p.Ledger.Enabled = false
	rig := NewRig(em, p)

	board, _ := ecs.GetComponent[*components.ScoreboardComponent](em, rig.HUD)
	if board.Enabled {
		t.Error("scoreboard should be disabled")
	}
}

// TestCursorPosition 光标位于门线
func TestCursorPosition(t *testing.T) {
	p := shootout.DefaultParams()
	pos := CursorPosition(p, 1.5)
	if pos.X() != 1.5 || pos.Z() != p.GoalLineZ || pos.Y() != p.GoalHeight/2 {
		t.Errorf("CursorPosition = %v", pos)
	}
}
