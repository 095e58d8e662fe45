package shootout

import "math/rand"

// Dive 守门员扑救方向
type Dive int

const (
	DiveLeft Dive = iota
	DiveCenter
	DiveRight
)

// AllDives 三个扑救方向，顺序即随机选择时的索引顺序
var AllDives = [3]Dive{DiveLeft, DiveCenter, DiveRight}

// String 返回方向名称
func (d Dive) String() string {
	switch d {
	case DiveLeft:
		return "left"
	case DiveCenter:
		return "center"
	case DiveRight:
		return "right"
	default:
		return "unknown"
	}
}

// Sign 返回方向的横向符号：左 -1，中 0，右 +1
func (d Dive) Sign() float64 {
	switch d {
	case DiveLeft:
		return -1
	case DiveRight:
		return 1
	default:
		return 0
	}
}

// Clip 返回该方向对应的守门员动画名称
// 居中不扑救，返回 idle
func (d Dive) Clip() string {
	switch d {
	case DiveLeft:
		return ClipDiveLeft
	case DiveRight:
		return ClipDiveRight
	default:
		return ClipIdle
	}
}

// DiveChooser 扑救方向选择函数
// 每次射门触发时调用一次
type DiveChooser func() Dive

// RandomDiveChooser 基于给定随机源的均匀三选一
//
// 参数:
//   - r: 随机源，相同种子产生相同序列
//
// 返回:
//   - DiveChooser: 每次调用返回 left/center/right 之一，概率各 1/3
func RandomDiveChooser(r *rand.Rand) DiveChooser {
	return func() Dive {
		return AllDives[r.Intn(len(AllDives))]
	}
}

// FixedDive 始终返回同一方向（测试和调试用）
func FixedDive(d Dive) DiveChooser {
	return func() Dive {
		return d
	}
}

// SequenceDives 按顺序循环返回给定的方向序列
// 序列为空时始终返回 DiveCenter
func SequenceDives(dives ...Dive) DiveChooser {
	i := 0
	return func() Dive {
		if len(dives) == 0 {
			return DiveCenter
		}
		d := dives[i%len(dives)]
		i++
		return d
	}
}
