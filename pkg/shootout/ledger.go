package shootout

// TeamIndex 记分板上的队伍索引
type TeamIndex int

const (
	TeamHome TeamIndex = iota
	TeamAway
)

// Other 返回对方队伍
func (t TeamIndex) Other() TeamIndex {
	if t == TeamHome {
		return TeamAway
	}
	return TeamHome
}

// DotResult 记分板上一个圆点的状态
type DotResult int

const (
	DotPending DotResult = iota
	DotScored
	DotMissed
)

// TeamRecord 单支队伍的记录
type TeamRecord struct {
	Name    string
	Goals   int
	Results []bool // 每次射门是否成功，按时间顺序
}

// Ledger 轮换射门的记分板
//
// 每 AttemptsPerTurn 次射门后换队，圆点下标为 attempts % AttemptsPerTurn。
type Ledger struct {
	teams    [2]TeamRecord
	current  TeamIndex
	attempts int
	perTurn  int
}

// NewLedger 创建记分板
// perTurn <= 0 时按 5 处理
func NewLedger(p LedgerParams) *Ledger {
	perTurn := p.AttemptsPerTurn
	if perTurn <= 0 {
		perTurn = 5
	}
	return &Ledger{
		teams: [2]TeamRecord{
			{Name: p.Teams[TeamHome]},
			{Name: p.Teams[TeamAway]},
		},
		current: TeamHome,
		perTurn: perTurn,
	}
}

// Record 记录当前队伍的一次射门结果
//
// 参数:
//   - success: 是否进球
//
// 返回:
//   - TeamIndex: 本次射门所属的队伍
//   - int: 本次射门在该队圆点中的下标
func (l *Ledger) Record(success bool) (TeamIndex, int) {
	team := l.current
	dot := l.attempts % l.perTurn

	rec := &l.teams[team]
	rec.Results = append(rec.Results, success)
	if success {
		rec.Goals++
	}

	if (l.attempts+1)%l.perTurn == 0 {
		l.current = l.current.Other()
	}
	l.attempts++
	return team, dot
}

// Current 返回当前射门的队伍
func (l *Ledger) Current() TeamIndex {
	return l.current
}

// Attempts 返回总射门次数
func (l *Ledger) Attempts() int {
	return l.attempts
}

// PerTurn 返回每轮射门次数
func (l *Ledger) PerTurn() int {
	return l.perTurn
}

// Team 返回队伍记录的副本
func (l *Ledger) Team(t TeamIndex) TeamRecord {
	rec := l.teams[t]
	rec.Results = append([]bool(nil), rec.Results...)
	return rec
}

// Dots 返回某队当前一轮的圆点状态（长度为 perTurn）
// 一轮结束后下一次射门开始新的一组圆点
func (l *Ledger) Dots(t TeamIndex) []DotResult {
	dots := make([]DotResult, l.perTurn)
	results := l.teams[t].Results
	if len(results) == 0 {
		return dots
	}
	start := ((len(results) - 1) / l.perTurn) * l.perTurn
	for i, ok := range results[start:] {
		if ok {
			dots[i] = DotScored
		} else {
			dots[i] = DotMissed
		}
	}
	return dots
}
