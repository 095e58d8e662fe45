package components

// ClipComponent 当前播放的动画片段（纯数据）
//
// 生命周期:
//  1. EntityAnimator.Play() 写入片段参数并重置进度
//  2. ClipSystem.Update() 推进 Elapsed，非循环片段到时长后置 Finished
//  3. EntityAnimator.Stop() 清除 Playing
//
// 渲染系统读取 Name 和 Frame 决定姿态。
type ClipComponent struct {
	// Unit 片段库中的单位名（"striker" / "keeper"）
	Unit string

	// Name 片段名（"idle"、"kick"、"dive_left" ...）
	Name string

	// Elapsed 已播放时间（秒）
	Elapsed float64

	// Duration 片段时长（秒）
	Duration float64

	Loop bool

	// Frames 关键帧数量，0 表示连续姿态
	Frames int

	// Frame 当前关键帧序号，由 ClipSystem 维护
	Frame int

	// Playing 是否正在播放
	Playing bool

	// Finished 非循环片段是否已播完
	Finished bool

	// PlayCount 本实体累计开始播放片段的次数（调试用）
	PlayCount int
}

// Progress 返回 [0, 1] 的播放进度
func (c *ClipComponent) Progress() float64 {
	if c.Duration <= 0 {
		return 0
	}
	p := c.Elapsed / c.Duration
	if p > 1 {
		return 1
	}
	return p
}
