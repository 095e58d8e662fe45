package components

// KeeperMotionComponent 守门员横向移动的视觉过渡（纯数据）
//
// 状态机里守门员的位置是离散的（扑救瞬间即到位），
// 渲染时用缓动曲线从 FromX 过渡到 TargetX。
type KeeperMotionComponent struct {
	FromX   float64
	TargetX float64

	// Elapsed / Duration 过渡进度（秒）
	Elapsed  float64
	Duration float64
}
