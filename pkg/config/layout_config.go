package config

// 布局配置常量
// 本文件定义了窗口尺寸和 HUD 元素的位置，所有坐标为屏幕像素

// Window Configuration (窗口配置)
const (
	// WindowWidth 逻辑屏幕宽度
	WindowWidth = 960

	// WindowHeight 逻辑屏幕高度
	WindowHeight = 540

	// WindowTitle 窗口标题
	WindowTitle = "Penalty Shootout"

	// TicksPerSecond 逻辑帧率，球的积分按帧计算
	TicksPerSecond = 60
)

// HUD Configuration (HUD 配置)
const (
	// StatusTextY 结果文字（GOAL! / SAVED / MISSED）的基线Y坐标
	StatusTextY = 80.0

	// HintBottomMargin 底部操作提示距屏幕底边的距离
	HintBottomMargin = 32.0

	// ScoreboardX 记分板左上角X坐标
	ScoreboardX = 16.0

	// ScoreboardY 记分板左上角Y坐标
	ScoreboardY = 16.0

	// ScoreboardRowHeight 记分板每行高度（每队一行）
	ScoreboardRowHeight = 22.0

	// ScoreboardNameWidth 队名区域宽度
	ScoreboardNameWidth = 90.0

	// ScoreboardDotSpacing 相邻两个结果圆点的间距
	ScoreboardDotSpacing = 18.0

	// ScoreboardDotRadius 结果圆点半径
	ScoreboardDotRadius = 6.0
)

// Menu Configuration (菜单配置)
const (
	// MenuTitleY 菜单标题Y坐标
	MenuTitleY = 120.0

	// MenuFirstItemY 第一个菜单项Y坐标
	MenuFirstItemY = 200.0

	// MenuItemSpacing 菜单项间距
	MenuItemSpacing = 48.0
)

// KeeperEaseDuration 守门员从中间移动到扑救位置的视觉过渡时长（秒）
const KeeperEaseDuration = 0.45
