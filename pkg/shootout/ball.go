package shootout

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Up 世界坐标系的竖直方向
var Up = mgl64.Vec3{0, 1, 0}

// Ball 球的运动状态
//
// 位置和速度都以"每帧"为单位：每帧位置加上速度，然后速度乘以阻尼系数。
// 这是显式欧拉积分加几何衰减，与帧率相关（帧率越高，单位时间内衰减越多）。
type Ball struct {
	Position    mgl64.Vec3
	Velocity    mgl64.Vec3
	Orientation mgl64.Quat // 仅用于渲染的自转姿态
	Radius      float64
}

// NewBall 在出生点创建静止的球
func NewBall(spawn mgl64.Vec3, radius float64) Ball {
	return Ball{
		Position:    spawn,
		Orientation: mgl64.QuatIdent(),
		Radius:      radius,
	}
}

// Speed 返回速度大小
func (b *Ball) Speed() float64 {
	return b.Velocity.Len()
}

// Moving 检查速度平方是否超过阈值
func (b *Ball) Moving(epsilon float64) bool {
	return b.Velocity.LenSqr() > epsilon
}

// Spin 由速度推导自转角速度
// 旋转轴 = Up × v，每帧转角 = |v| / 半径（纯滚动近似）
func (b *Ball) Spin() mgl64.Vec3 {
	axis := Up.Cross(b.Velocity)
	if b.Radius <= 0 || axis.LenSqr() == 0 {
		return mgl64.Vec3{}
	}
	return axis.Normalize().Mul(b.Velocity.Len() / b.Radius)
}

// Step 推进一帧
//
// 参数:
//   - damping: 每帧速度衰减系数（如 0.98）
func (b *Ball) Step(damping float64) {
	b.Position = b.Position.Add(b.Velocity)

	if spin := b.Spin(); spin.LenSqr() > 0 {
		rot := mgl64.QuatRotate(spin.Len(), spin.Normalize())
		b.Orientation = rot.Mul(b.Orientation).Normalize()
	}

	b.Velocity = b.Velocity.Mul(damping)
}

// Reset 回到出生点并清零速度和姿态
func (b *Ball) Reset(spawn mgl64.Vec3) {
	b.Position = spawn
	b.Velocity = mgl64.Vec3{}
	b.Orientation = mgl64.QuatIdent()
}
