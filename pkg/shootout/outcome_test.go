package shootout

import "testing"

// TestEvaluate 测试门线结算
func TestEvaluate(t *testing.T) {
	p := DefaultParams()
	strict := DefaultParams()
	strict.RequireOnTarget = true

	tests := []struct {
		name     string
		params   *Params
		crossX   float64
		crossY   float64
		keeperX  float64
		blocked  bool
		onTarget bool
		scored   bool
	}{
		{"center vs center keeper", &p, 0, 1, 0, true, true, false},
		{"corner vs center keeper", &p, 3, 1, 0, false, true, true},
		{"just outside block radius", &p, 1, 1, 0, false, true, true},
		{"wide but lenient", &p, 5, 1, 0, false, false, true},
		{"wide and strict", &strict, 5, 1, 0, false, false, false},
		{"over the bar and strict", &strict, 1.5, 3.5, -2, false, false, false},
		{"dive covers corner", &strict, -2.2, 1, -2, true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := Evaluate(tt.crossX, tt.crossY, tt.keeperX, tt.params)
			if o.Blocked != tt.blocked {
				t.Errorf("Blocked: got %v, want %v", o.Blocked, tt.blocked)
			}
			if o.OnTarget != tt.onTarget {
				t.Errorf("OnTarget: got %v, want %v", o.OnTarget, tt.onTarget)
			}
			if o.Scored != tt.scored {
				t.Errorf("Scored: got %v, want %v", o.Scored, tt.scored)
			}
		})
	}
}

// TestOutcomeLabel 测试 HUD 文本
func TestOutcomeLabel(t *testing.T) {
	if (Outcome{Scored: true}).Label() != "GOAL!" {
		t.Error("scored label")
	}
	if (Outcome{Blocked: true}).Label() != "SAVED" {
		t.Error("blocked label")
	}
	if (Outcome{Short: true}).Label() != "TOO WEAK" {
		t.Error("short label")
	}
	if (Outcome{}).Label() != "MISSED" {
		t.Error("miss label")
	}
}
