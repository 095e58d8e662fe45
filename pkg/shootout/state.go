package shootout

// State 点球状态机的离散状态
//
// 状态流转: aiming → shooting → {resolving | ready} → aiming
// 没有终止状态，每次射门结束后都会回到 aiming。
type State int

const (
	// StateAiming 瞄准阶段，接受左右调整和射门输入
	StateAiming State = iota
	// StateShooting 射门阶段，球在飞行中
	StateShooting
	// StateResolving 结算阶段，等待定时复位（简单变体）
	StateResolving
	// StateReady 结算完成，等待玩家再次按键复位（复杂变体）
	StateReady
)

// String 返回状态名称（用于日志和 HUD）
func (s State) String() string {
	switch s {
	case StateAiming:
		return "aiming"
	case StateShooting:
		return "shooting"
	case StateResolving:
		return "resolving"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Input 玩家输入意图
// 具体按键到意图的映射由前端负责（ebiten / tcell）
type Input int

const (
	InputNone Input = iota
	InputLeft
	InputRight
	InputTrigger
)

// String 返回输入名称
func (i Input) String() string {
	switch i {
	case InputLeft:
		return "left"
	case InputRight:
		return "right"
	case InputTrigger:
		return "trigger"
	default:
		return "none"
	}
}
