// Package utils 提供通用工具函数
package utils

import (
	"github.com/decker502/penalty/pkg/shootout"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Intent 与具体按键无关的玩家意图
type Intent int

const (
	IntentNone Intent = iota
	IntentAimLeft
	IntentAimRight
	IntentShoot
	IntentBack
	IntentMute
	IntentFullscreen
	IntentSelect1
	IntentSelect2
	IntentSelect3
	IntentSelect4
	IntentMenuUp
	IntentMenuDown
)

// keyIntents 键盘映射
var keyIntents = map[ebiten.Key]Intent{
	ebiten.KeyArrowLeft:  IntentAimLeft,
	ebiten.KeyA:          IntentAimLeft,
	ebiten.KeyArrowRight: IntentAimRight,
	ebiten.KeyD:          IntentAimRight,
	ebiten.KeySpace:      IntentShoot,
	ebiten.KeyEnter:      IntentShoot,
	ebiten.KeyEscape:     IntentBack,
	ebiten.KeyM:          IntentMute,
	ebiten.KeyF11:        IntentFullscreen,
	ebiten.KeyDigit1:     IntentSelect1,
	ebiten.KeyDigit2:     IntentSelect2,
	ebiten.KeyDigit3:     IntentSelect3,
	ebiten.KeyDigit4:     IntentSelect4,
	ebiten.KeyArrowUp:    IntentMenuUp,
	ebiten.KeyW:          IntentMenuUp,
	ebiten.KeyArrowDown:  IntentMenuDown,
	ebiten.KeyS:          IntentMenuDown,
}

// IntentForKey 返回按键对应的意图，未映射的按键返回 IntentNone
func IntentForKey(key ebiten.Key) Intent {
	if intent, ok := keyIntents[key]; ok {
		return intent
	}
	return IntentNone
}

// SelectIndex 数字选择意图对应的序号（从 0 开始），非选择意图返回 -1
func (i Intent) SelectIndex() int {
	switch i {
	case IntentSelect1:
		return 0
	case IntentSelect2:
		return 1
	case IntentSelect3:
		return 2
	case IntentSelect4:
		return 3
	default:
		return -1
	}
}

// ToInput 转换为状态机输入，与状态机无关的意图返回 InputNone
func (i Intent) ToInput() shootout.Input {
	switch i {
	case IntentAimLeft:
		return shootout.InputLeft
	case IntentAimRight:
		return shootout.InputRight
	case IntentShoot:
		return shootout.InputTrigger
	default:
		return shootout.InputNone
	}
}

// PointerIntent 把点击/触摸位置转换为意图
// 屏幕左三分之一瞄左，右三分之一瞄右，中间射门
func PointerIntent(x, screenWidth int) Intent {
	if screenWidth <= 0 {
		return IntentNone
	}
	switch {
	case x < screenWidth/3:
		return IntentAimLeft
	case x >= screenWidth*2/3:
		return IntentAimRight
	default:
		return IntentShoot
	}
}

// JustPressedIntents 收集本帧新产生的意图（键盘 + 鼠标 + 触摸），按发生顺序返回
func JustPressedIntents(screenWidth int) []Intent {
	var intents []Intent

	for _, key := range inpututil.AppendJustPressedKeys(nil) {
		if intent := IntentForKey(key); intent != IntentNone {
			intents = append(intents, intent)
		}
	}

	// 首先检查触摸输入（移动设备）
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		x, _ := ebiten.TouchPosition(id)
		intents = append(intents, PointerIntent(x, screenWidth))
	}

	// 其次检查鼠标输入（桌面设备）
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, _ := ebiten.CursorPosition()
		intents = append(intents, PointerIntent(x, screenWidth))
	}

	return intents
}
