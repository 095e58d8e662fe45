package shootout

// 动画名称（符号名，由渲染端映射到具体资源）
const (
	ClipIdle      = "idle"
	ClipKick      = "kick"
	ClipCelebrate = "celebrate"
	ClipDiveLeft  = "dive_left"
	ClipDiveRight = "dive_right"
)

// Animator 动画播放能力接口
//
// 状态机只按名称请求动画，不关心动画库的具体对象。
// 资源尚未加载或不存在时，Play 返回 false，调用方直接跳过。
type Animator interface {
	// Play 从头播放指定动画，返回是否真正开始播放
	Play(name string) bool
	// Stop 停止当前所有动画
	Stop()
	// IsPlaying 检查指定动画是否正在播放
	IsPlaying(name string) bool
}

// NopAnimator 空实现，用于没有渲染端的场景（测试、无头模式）
type NopAnimator struct{}

func (NopAnimator) Play(string) bool      { return false }
func (NopAnimator) Stop()                 {}
func (NopAnimator) IsPlaying(string) bool { return false }
