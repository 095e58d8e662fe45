package shootout

import "math"

// Outcome 一次射门的结算结果
type Outcome struct {
	Blocked   bool    // 被守门员扑住
	OnTarget  bool    // 穿过门线时在门框范围内
	Scored    bool    // 计为进球
	Short     bool    // 未到门线就停下
	Deflected bool    // 扑住后发生了反弹
	CrossX    float64 // 穿过门线时的横向位置
	CrossY    float64 // 穿过门线时的高度
	KeeperX   float64 // 守门员有效横向位置
}

// Evaluate 计算球穿过门线时的结果
//
// 参数:
//   - crossX, crossY: 穿线点
//   - keeperX: 守门员有效位置
//   - p: 变体参数（BlockRadius、门框尺寸、是否要求射正）
//
// 返回:
//   - Outcome: Blocked / OnTarget / Scored 已填好
func Evaluate(crossX, crossY, keeperX float64, p *Params) Outcome {
	o := Outcome{
		CrossX:  crossX,
		CrossY:  crossY,
		KeeperX: keeperX,
	}
	o.Blocked = math.Abs(crossX-keeperX) < p.BlockRadius
	o.OnTarget = math.Abs(crossX) <= p.GoalHalfWidth && crossY >= 0 && crossY <= p.GoalHeight
	o.Scored = !o.Blocked
	if p.RequireOnTarget {
		o.Scored = o.Scored && o.OnTarget
	}
	return o
}

// Missed 构造没有到达门线（出界或停下）的结果
func Missed(x, y, keeperX float64, short bool) Outcome {
	return Outcome{
		CrossX:  x,
		CrossY:  y,
		KeeperX: keeperX,
		Short:   short,
	}
}

// Label 返回用于 HUD 的简短描述
func (o Outcome) Label() string {
	switch {
	case o.Scored:
		return "GOAL!"
	case o.Blocked:
		return "SAVED"
	case o.Short:
		return "TOO WEAK"
	default:
		return "MISSED"
	}
}
