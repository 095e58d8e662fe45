package components

import "image/color"

// FigureKind 渲染形状类型
type FigureKind int

const (
	// FigurePitch 草地和罚球点
	FigurePitch FigureKind = iota
	// FigureGoal 球门框和球网
	FigureGoal
	// FigureStriker 射手
	FigureStriker
	// FigureKeeper 守门员
	FigureKeeper
	// FigureBall 足球
	FigureBall
	// FigureCursor 瞄准光标（门线上的目标点）
	FigureCursor
)

// FigureComponent 描述实体如何被绘制（纯数据）
//
// 尺寸单位为世界单位，RenderSystem 负责透视投影到屏幕。
// Layer 决定绘制顺序（小的先画），相同 Layer 时远处的先画。
type FigureComponent struct {
	Kind  FigureKind
	Color color.RGBA

	// Width / Height 人物或球门的宽高
	Width  float64
	Height float64

	// Radius 球或光标的半径
	Radius float64

	Layer int
}
