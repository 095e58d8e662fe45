package systems

import (
	"testing"

	"github.com/decker502/penalty/pkg/components"
	"github.com/decker502/penalty/pkg/ecs"
	"github.com/decker502/penalty/pkg/shootout"
)

func newBoardEntity(em *ecs.EntityManager, enabled bool) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.ScoreboardComponent{Enabled: enabled})
	return id
}

// TestScoreboardInitialRefresh 创建时从记分板复制队名
func TestScoreboardInitialRefresh(t *testing.T) {
	em := ecs.NewEntityManager()
	hud := newBoardEntity(em, true)
	ledger := shootout.NewLedger(shootout.DefaultParams().Ledger)

	NewScoreboardSystem(em, hud, ledger)

	board, _ := ecs.GetComponent[*components.ScoreboardComponent](em, hud)
	if board.Teams != [2]string{"Modena", "Juventus"} {
		t.Errorf("teams = %v", board.Teams)
	}
	if board.PerTurn != 5 || board.Active != shootout.TeamHome {
		t.Errorf("board = %+v", board)
	}
	if len(board.Dots[shootout.TeamHome]) != 5 {
		t.Errorf("dots = %v", board.Dots[shootout.TeamHome])
	}
}

// TestScoreboardEvents 只有结算事件计数
func TestScoreboardEvents(t *testing.T) {
	tests := []struct {
		name     string
		kinds    []shootout.EventKind
		attempts int
		scored   int
	}{
		{"no result events", []shootout.EventKind{shootout.EventKick, shootout.EventLaunch, shootout.EventReset}, 0, 0},
		{"one goal", []shootout.EventKind{shootout.EventGoal}, 1, 1},
		{"save and miss", []shootout.EventKind{shootout.EventSave, shootout.EventMiss}, 2, 0},
		{"mixed", []shootout.EventKind{shootout.EventGoal, shootout.EventDeflect, shootout.EventSave, shootout.EventGoal}, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			hud := newBoardEntity(em, false)
			s := NewScoreboardSystem(em, hud, nil)

			for _, k := range tt.kinds {
				s.OnEvent(shootout.Event{Kind: k})
			}

			board, _ := ecs.GetComponent[*components.ScoreboardComponent](em, hud)
			if board.Attempts != tt.attempts || board.Scored != tt.scored {
				t.Errorf("tally = %d/%d, want %d/%d", board.Scored, board.Attempts, tt.scored, tt.attempts)
			}
		})
	}
}

// TestScoreboardFollowsLedger 换队后 Active 跟随记分板
func TestScoreboardFollowsLedger(t *testing.T) {
	em := ecs.NewEntityManager()
	hud := newBoardEntity(em, true)
	lp := shootout.DefaultParams().Ledger
	lp.AttemptsPerTurn = 2
	ledger := shootout.NewLedger(lp)
	s := NewScoreboardSystem(em, hud, ledger)

	// 主队两次射门：一进一失
	for _, success := range []bool{true, false} {
		ledger.Record(success)
		kind := shootout.EventMiss
		if success {
			kind = shootout.EventGoal
		}
		s.OnEvent(shootout.Event{Kind: kind, Ledger: true})
	}

	board, _ := ecs.GetComponent[*components.ScoreboardComponent](em, hud)
	if board.Goals[shootout.TeamHome] != 1 {
		t.Errorf("home goals = %d", board.Goals[shootout.TeamHome])
	}
	want := []shootout.DotResult{shootout.DotScored, shootout.DotMissed}
	for i, d := range want {
		if board.Dots[shootout.TeamHome][i] != d {
			t.Errorf("dot %d = %v, want %v", i, board.Dots[shootout.TeamHome][i], d)
		}
	}
	if board.Active != shootout.TeamAway {
		t.Errorf("active = %v, want away", board.Active)
	}
}

// TestScoreboardMissingComponent 没有记分板组件时忽略事件
func TestScoreboardMissingComponent(t *testing.T) {
	em := ecs.NewEntityManager()
	id := em.CreateEntity()
	s := NewScoreboardSystem(em, id, nil)
	s.OnEvent(shootout.Event{Kind: shootout.EventGoal})
}
