package main

import (
	"github.com/decker502/penalty/pkg/shootout"
	"github.com/gdamore/tcell/v2"
)

// action 终端按键对应的动作
type action int

const (
	actNone action = iota
	actLeft
	actRight
	actTrigger
	actMute
	actQuit
)

// actionForKey 把按键映射为动作
// 方向键 / A D / H L 瞄准，空格或回车射门，M 静音，ESC / q / Ctrl+C 退出
func actionForKey(ev *tcell.EventKey) action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return actLeft
	case tcell.KeyRight:
		return actRight
	case tcell.KeyEnter:
		return actTrigger
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A', 'h', 'H':
			return actLeft
		case 'd', 'D', 'l', 'L':
			return actRight
		case ' ':
			return actTrigger
		case 'm', 'M':
			return actMute
		case 'q', 'Q':
			return actQuit
		}
	}
	return actNone
}

// input 转换为状态机输入
func (a action) input() shootout.Input {
	switch a {
	case actLeft:
		return shootout.InputLeft
	case actRight:
		return shootout.InputRight
	case actTrigger:
		return shootout.InputTrigger
	default:
		return shootout.InputNone
	}
}
