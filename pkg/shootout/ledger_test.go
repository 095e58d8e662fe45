package shootout

import "testing"

func testLedger() *Ledger {
	return NewLedger(LedgerParams{
		Enabled:         true,
		Teams:           [2]string{"Modena", "Juventus"},
		AttemptsPerTurn: 5,
	})
}

// TestLedgerRotatesEveryFive 每 5 次换队，10 次后两队各 5 个结果
func TestLedgerRotatesEveryFive(t *testing.T) {
	l := testLedger()

	for i := 0; i < 10; i++ {
		wantTeam := TeamHome
		if i >= 5 {
			wantTeam = TeamAway
		}
		team, dot := l.Record(i%2 == 0)
		if team != wantTeam {
			t.Errorf("attempt %d: team %d, want %d", i, team, wantTeam)
		}
		if dot != i%5 {
			t.Errorf("attempt %d: dot %d, want %d", i, dot, i%5)
		}
		if i == 4 && l.Current() != TeamAway {
			t.Error("team should switch after exactly 5 attempts")
		}
	}

	if l.Attempts() != 10 {
		t.Errorf("attempts: got %d, want 10", l.Attempts())
	}
	home, away := l.Team(TeamHome), l.Team(TeamAway)
	if len(home.Results) != 5 || len(away.Results) != 5 {
		t.Errorf("results: home=%d away=%d, want 5 each", len(home.Results), len(away.Results))
	}
	if home.Goals != 3 || away.Goals != 2 {
		t.Errorf("goals: home=%d away=%d, want 3 and 2", home.Goals, away.Goals)
	}
	if home.Name != "Modena" || away.Name != "Juventus" {
		t.Errorf("names: %q %q", home.Name, away.Name)
	}
	if l.Current() != TeamHome {
		t.Error("team should switch back after 10 attempts")
	}
}

// TestLedgerDots 测试圆点状态
func TestLedgerDots(t *testing.T) {
	l := testLedger()

	dots := l.Dots(TeamHome)
	for i, d := range dots {
		if d != DotPending {
			t.Errorf("dot %d: got %d, want pending", i, d)
		}
	}

	l.Record(true)
	l.Record(false)
	dots = l.Dots(TeamHome)
	want := []DotResult{DotScored, DotMissed, DotPending, DotPending, DotPending}
	for i := range want {
		if dots[i] != want[i] {
			t.Errorf("dot %d: got %d, want %d", i, dots[i], want[i])
		}
	}
}

// TestLedgerDotsStartNewRound 第二轮开始后圆点重新计数
func TestLedgerDotsStartNewRound(t *testing.T) {
	l := testLedger()
	for i := 0; i < 10; i++ {
		l.Record(true)
	}
	l.Record(false)

	dots := l.Dots(TeamHome)
	if dots[0] != DotMissed {
		t.Errorf("first dot of the new round: got %d, want missed", dots[0])
	}
	for i := 1; i < len(dots); i++ {
		if dots[i] != DotPending {
			t.Errorf("dot %d: got %d, want pending", i, dots[i])
		}
	}
}

// TestLedgerDefaultPerTurn 测试非法的每轮次数
func TestLedgerDefaultPerTurn(t *testing.T) {
	l := NewLedger(LedgerParams{Enabled: true})
	if l.PerTurn() != 5 {
		t.Errorf("PerTurn: got %d, want 5", l.PerTurn())
	}
}

// TestLedgerTeamIsCopy 测试 Team 返回副本
func TestLedgerTeamIsCopy(t *testing.T) {
	l := testLedger()
	l.Record(true)

	rec := l.Team(TeamHome)
	rec.Results[0] = false
	if !l.Team(TeamHome).Results[0] {
		t.Error("Team() must not expose internal slices")
	}
}
