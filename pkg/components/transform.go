package components

import "github.com/go-gl/mathgl/mgl64"

// TransformComponent 实体在三维世界中的位置和朝向（纯数据）
//
// 坐标系:
//   - X 向右为正
//   - Y 向上为正
//   - Z 指向摄像机为正，球门位于 -Z 方向
type TransformComponent struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat

	// Visible 是否绘制（瞄准光标在射门期间隐藏）
	Visible bool
}
