package components

import (
	"image/color"

	"github.com/decker502/penalty/pkg/shootout"
)

// ScoreboardComponent 记分板显示数据（纯数据）
//
// 由记分板监听器在每次结算时刷新，ScoreboardRenderSystem 只读。
// Enabled=false 时不绘制（非 classic 变体）。
type ScoreboardComponent struct {
	Enabled bool

	Teams  [2]string
	Goals  [2]int
	Dots   [2][]shootout.DotResult
	Active shootout.TeamIndex

	// PerTurn 每轮圆点数量
	PerTurn int

	// Attempts 累计射门次数（包括无记分板的变体）
	Attempts int
	// Scored 累计进球次数（包括无记分板的变体）
	Scored int
}

// StatusTextComponent 屏幕中央的结果文字（纯数据）
type StatusTextComponent struct {
	Text  string
	Color color.RGBA

	// Hint 底部的操作提示
	Hint string
}
