package shootout

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// ResolvePolicy 球到达门线且被扑住时的处理策略
type ResolvePolicy int

const (
	// PolicyImmediate 到达门线立即结算
	PolicyImmediate ResolvePolicy = iota
	// PolicyRebound 被扑住时反弹，飞出边界或停止后才结算
	PolicyRebound
)

// String 返回策略名称（与配置文件中的写法一致）
func (p ResolvePolicy) String() string {
	switch p {
	case PolicyImmediate:
		return "immediate"
	case PolicyRebound:
		return "rebound"
	default:
		return "unknown"
	}
}

// ParsePolicy 解析策略名称
func ParsePolicy(s string) (ResolvePolicy, bool) {
	switch s {
	case "immediate", "":
		return PolicyImmediate, true
	case "rebound":
		return PolicyRebound, true
	default:
		return PolicyImmediate, false
	}
}

// Params 一个难度变体的全部玩法参数
// 单位为任意世界单位，速度以"每帧"计
type Params struct {
	// 瞄准
	AimStep  float64 // 每次左右输入的瞄准偏移步长
	AimLimit float64 // 瞄准偏移的对称上限

	// 时序
	KickDelay  time.Duration // 踢球动作开始到球离脚的延迟
	ResetDelay time.Duration // 结算后自动复位的延迟（WaitForTrigger=false 时）

	// 出球速度
	LateralGain  float64 // 横向速度 = (aim - ballX) * LateralGain
	VerticalGain float64 // 竖直速度
	ForwardSpeed float64 // 向球门方向的速度大小（沿 -Z）

	// 积分
	Damping float64 // 每帧速度衰减系数
	Epsilon float64 // 速度平方低于此值视为停止

	// 场地
	Spawn         mgl64.Vec3 // 球的出生点
	BallRadius    float64
	GoalLineZ     float64 // 门线平面 Z（球门在 -Z 方向）
	GoalHalfWidth float64 // 球门半宽
	GoalHeight    float64 // 球门高度
	LateralBound  float64 // |x| 超出即出界
	HeightBound   float64 // y 超出即出界
	BackBound     float64 // 反弹后 z 超出即出界

	// 守门员
	DiveReach   float64 // 扑救后的有效横向位置 = Dive.Sign() * DiveReach
	BlockRadius float64 // |crossX - keeperX| < BlockRadius 视为扑住

	// 结算规则
	RequireOnTarget bool          // 进球是否要求射正
	Policy          ResolvePolicy // 扑住后的处理策略
	Restitution     float64       // 反弹时前向速度的保留比例
	BounceJitter    float64       // 反弹时随机扰动的最大幅度
	WaitForTrigger  bool          // 结算后进入 ready 状态，等待按键复位
	Celebrate       bool          // 进球时播放庆祝动画

	// 记分板（仅简单变体）
	Ledger LedgerParams
}

// LedgerParams 记分板参数
type LedgerParams struct {
	Enabled         bool
	Teams           [2]string
	AttemptsPerTurn int
}

// DefaultParams 返回最简单变体的参数
//
// 参数经过标定，保证笔直射门能够越过门线，
// 且横向落点约等于瞄准偏移。
func DefaultParams() Params {
	return Params{
		AimStep:         0.5,
		AimLimit:        3,
		KickDelay:       700 * time.Millisecond,
		ResetDelay:      1500 * time.Millisecond,
		LateralGain:     0.0225,
		VerticalGain:    0.025,
		ForwardSpeed:    0.55,
		Damping:         0.98,
		Epsilon:         0.0001,
		Spawn:           mgl64.Vec3{0, 0.2, 5},
		BallRadius:      0.3,
		GoalLineZ:       -19.5,
		GoalHalfWidth:   4,
		GoalHeight:      3,
		LateralBound:    12,
		HeightBound:     8,
		BackBound:       8,
		DiveReach:       2,
		BlockRadius:     1,
		RequireOnTarget: false,
		Policy:          PolicyImmediate,
		Restitution:     0.5,
		BounceJitter:    0.02,
		WaitForTrigger:  false,
		Celebrate:       false,
		Ledger: LedgerParams{
			Enabled:         true,
			Teams:           [2]string{"Modena", "Juventus"},
			AttemptsPerTurn: 5,
		},
	}
}
