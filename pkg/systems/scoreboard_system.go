package systems

import (
	"github.com/decker502/penalty/pkg/components"
	"github.com/decker502/penalty/pkg/ecs"
	"github.com/decker502/penalty/pkg/shootout"
)

// ScoreboardSystem 记分板协作者
// 订阅状态机的结算事件，把记分板数据写入 ScoreboardComponent
type ScoreboardSystem struct {
	entityManager *ecs.EntityManager
	hud           ecs.EntityID
	ledger        *shootout.Ledger
}

// NewScoreboardSystem 创建记分板系统
// ledger 为 nil 时只统计射门和进球次数
func NewScoreboardSystem(em *ecs.EntityManager, hud ecs.EntityID, ledger *shootout.Ledger) *ScoreboardSystem {
	s := &ScoreboardSystem{
		entityManager: em,
		hud:           hud,
		ledger:        ledger,
	}
	s.refresh()
	return s
}

// OnEvent 实现 shootout.Listener
func (s *ScoreboardSystem) OnEvent(e shootout.Event) {
	board, ok := ecs.GetComponent[*components.ScoreboardComponent](s.entityManager, s.hud)
	if !ok {
		return
	}

	switch e.Kind {
	case shootout.EventGoal:
		board.Attempts++
		board.Scored++
	case shootout.EventSave, shootout.EventMiss:
		board.Attempts++
	default:
		return
	}
	s.refresh()
}

// refresh 从记分板复制圆点和比分
func (s *ScoreboardSystem) refresh() {
	board, ok := ecs.GetComponent[*components.ScoreboardComponent](s.entityManager, s.hud)
	if !ok || s.ledger == nil {
		return
	}

	for _, team := range []shootout.TeamIndex{shootout.TeamHome, shootout.TeamAway} {
		rec := s.ledger.Team(team)
		board.Teams[team] = rec.Name
		board.Goals[team] = rec.Goals
		board.Dots[team] = s.ledger.Dots(team)
	}
	board.Active = s.ledger.Current()
	board.PerTurn = s.ledger.PerTurn()
}
