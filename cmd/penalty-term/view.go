package main

import (
	"fmt"
	"math"

	"github.com/decker502/penalty/pkg/components"
	"github.com/decker502/penalty/pkg/ecs"
	"github.com/decker502/penalty/pkg/entities"
	"github.com/decker502/penalty/pkg/shootout"
	"github.com/gdamore/tcell/v2"
)

var (
	stylePitch   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleLine    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleGoal    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	styleKeeper  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStriker = tcell.StyleDefault.Foreground(tcell.ColorBlue).Bold(true)
	styleBall    = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleCursor  = tcell.StyleDefault.Foreground(tcell.ColorYellow).Reverse(true)
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleScored  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleMissed  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// 顶部状态栏和底部提示占用的行数
const (
	headerRows = 3
	footerRows = 2
)

// cell 一个字符格
type cell struct {
	r     rune
	style tcell.Style
}

// grid 离屏字符缓冲，绘制完成后一次性刷到屏幕
type grid struct {
	w, h  int
	cells []cell
}

func newGrid(w, h int) *grid {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	g := &grid{w: w, h: h, cells: make([]cell, w*h)}
	for i := range g.cells {
		g.cells[i] = cell{r: ' ', style: tcell.StyleDefault}
	}
	return g
}

func (g *grid) set(x, y int, r rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.cells[y*g.w+x] = cell{r: r, style: style}
}

func (g *grid) at(x, y int) rune {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return 0
	}
	return g.cells[y*g.w+x].r
}

func (g *grid) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		g.set(x, y, r, style)
		x++
	}
}

func (g *grid) centered(y int, s string, style tcell.Style) {
	g.text((g.w-len([]rune(s)))/2, y, s, style)
}

// flush 写入 tcell 屏幕
func (g *grid) flush(screen tcell.Screen) {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			c := g.cells[y*g.w+x]
			screen.SetContent(x, y, c.r, nil, c.style)
		}
	}
}

// viewport 俯视图投影：X 横向映射到列，Z 纵深映射到行（球门在上方）
type viewport struct {
	left, top     int
	width, height int
	minX, maxX    float64
	nearZ, farZ   float64
}

// newViewport 根据变体参数和终端尺寸计算投影
func newViewport(p shootout.Params, w, h int) viewport {
	return viewport{
		left:   0,
		top:    headerRows,
		width:  w,
		height: h - headerRows - footerRows,
		minX:   -p.LateralBound,
		maxX:   p.LateralBound,
		nearZ:  p.Spawn.Z() + 2,
		farZ:   p.GoalLineZ - 1,
	}
}

// project 世界坐标 (x, z) 到字符格
func (v viewport) project(x, z float64) (col, row int) {
	if v.width <= 1 || v.height <= 1 {
		return v.left, v.top
	}
	fx := (x - v.minX) / (v.maxX - v.minX)
	fz := (z - v.farZ) / (v.nearZ - v.farZ)
	col = v.left + int(math.Round(fx*float64(v.width-1)))
	row = v.top + int(math.Round(fz*float64(v.height-1)))
	return col, row
}

// contains 字符格是否在投影区域内
func (v viewport) contains(col, row int) bool {
	return col >= v.left && col < v.left+v.width && row >= v.top && row < v.top+v.height
}

// frame 一帧需要的全部数据
type frame struct {
	title   string
	params  shootout.Params
	state   shootout.State
	muted   bool
	em      *ecs.EntityManager
	rig     entities.Rig
	attempt int
}

// render 把一帧画到字符缓冲
func render(f frame, w, h int) *grid {
	g := newGrid(w, h)
	vp := newViewport(f.params, w, h)

	drawPitch(g, vp, f.params)
	drawFigures(g, vp, f)
	drawHeader(g, f)
	drawFooter(g, f)
	return g
}

// drawPitch 草地、罚球点和球门
func drawPitch(g *grid, vp viewport, p shootout.Params) {
	for row := vp.top; row < vp.top+vp.height; row++ {
		for col := vp.left; col < vp.left+vp.width; col++ {
			g.set(col, row, '.', stylePitch)
		}
	}

	// 门线
	_, lineRow := vp.project(0, p.GoalLineZ)
	for col := vp.left; col < vp.left+vp.width; col++ {
		g.set(col, lineRow, '-', styleLine)
	}

	// 球门：两根门柱之间用 = 表示
	leftCol, _ := vp.project(-p.GoalHalfWidth, p.GoalLineZ)
	rightCol, _ := vp.project(p.GoalHalfWidth, p.GoalLineZ)
	for col := leftCol; col <= rightCol; col++ {
		g.set(col, lineRow-1, '=', styleGoal)
	}
	g.set(leftCol, lineRow, '|', styleGoal)
	g.set(rightCol, lineRow, '|', styleGoal)
	g.set(leftCol, lineRow-1, '+', styleGoal)
	g.set(rightCol, lineRow-1, '+', styleGoal)

	// 罚球点
	spotCol, spotRow := vp.project(p.Spawn.X(), p.Spawn.Z())
	g.set(spotCol, spotRow, ':', styleLine)
}

// drawFigures 守门员、射手、瞄准光标和球
func drawFigures(g *grid, vp viewport, f frame) {
	if tr, ok := ecs.GetComponent[*components.TransformComponent](f.em, f.rig.Keeper); ok {
		col, row := vp.project(tr.Position.X(), tr.Position.Z())
		glyph := keeperGlyph(clipName(f.em, f.rig.Keeper))
		for dx := -1; dx <= 1; dx++ {
			g.set(col+dx, row, glyph[dx+1], styleKeeper)
		}
	}

	if tr, ok := ecs.GetComponent[*components.TransformComponent](f.em, f.rig.Striker); ok {
		col, row := vp.project(tr.Position.X(), tr.Position.Z())
		g.set(col, row, strikerGlyph(clipName(f.em, f.rig.Striker)), styleStriker)
	}

	if tr, ok := ecs.GetComponent[*components.TransformComponent](f.em, f.rig.Cursor); ok && tr.Visible {
		col, row := vp.project(tr.Position.X(), tr.Position.Z())
		g.set(col, row-1, 'v', styleCursor)
	}

	if tr, ok := ecs.GetComponent[*components.TransformComponent](f.em, f.rig.Ball); ok {
		col, row := vp.project(tr.Position.X(), tr.Position.Z())
		if vp.contains(col, row) {
			g.set(col, row, ballGlyph(tr.Position.Y(), f.params.GoalHeight), styleBall)
		}
	}
}

// drawHeader 变体名称、记分板和结果文字
func drawHeader(g *grid, f frame) {
	mute := ""
	if f.muted {
		mute = "  [MUTED]"
	}
	g.text(0, 0, fmt.Sprintf("%s  #%d  %s%s", f.title, f.attempt, f.state, mute), styleText)

	board, hasBoard := ecs.GetComponent[*components.ScoreboardComponent](f.em, f.rig.HUD)
	if hasBoard && board.Enabled {
		x := 0
		for team := range board.Teams {
			label := fmt.Sprintf("%s %d ", board.Teams[team], board.Goals[team])
			style := styleDim
			if shootout.TeamIndex(team) == board.Active {
				style = styleText
			}
			g.text(x, 1, label, style)
			x += len([]rune(label))
			for _, d := range board.Dots[team] {
				r, s := dotGlyph(d)
				g.set(x, 1, r, s)
				x++
			}
			x += 3
		}
	} else if hasBoard {
		g.text(0, 1, fmt.Sprintf("Shots %d   Goals %d", board.Attempts, board.Scored), styleText)
	}

	if status, ok := ecs.GetComponent[*components.StatusTextComponent](f.em, f.rig.HUD); ok && status.Text != "" {
		g.centered(2, status.Text, styleGoal)
	}
}

// drawFooter 操作提示
func drawFooter(g *grid, f frame) {
	hint := "LEFT/RIGHT aim   SPACE shoot   M mute   q quit"
	if f.state == shootout.StateReady {
		hint = "SPACE to reset   q quit"
	}
	g.centered(g.h-1, hint, styleDim)
}

// clipName 返回实体当前片段名
func clipName(em *ecs.EntityManager, id ecs.EntityID) string {
	if clip, ok := ecs.GetComponent[*components.ClipComponent](em, id); ok {
		return clip.Name
	}
	return ""
}

// keeperGlyph 守门员三格字形
func keeperGlyph(clip string) [3]rune {
	switch clip {
	case shootout.ClipDiveLeft:
		return [3]rune{'<', 'K', '\\'}
	case shootout.ClipDiveRight:
		return [3]rune{'/', 'K', '>'}
	default:
		return [3]rune{'\\', 'K', '/'}
	}
}

// strikerGlyph 射手字形
func strikerGlyph(clip string) rune {
	switch clip {
	case shootout.ClipKick:
		return '$'
	case shootout.ClipCelebrate:
		return '!'
	default:
		return 'S'
	}
}

// ballGlyph 按高度区分的球字形
func ballGlyph(y, goalHeight float64) rune {
	switch {
	case y > goalHeight:
		return '°'
	case y > goalHeight/2:
		return 'O'
	default:
		return 'o'
	}
}

// dotGlyph 记分板圆点
func dotGlyph(d shootout.DotResult) (rune, tcell.Style) {
	switch d {
	case shootout.DotScored:
		return '●', styleScored
	case shootout.DotMissed:
		return '●', styleMissed
	default:
		return '○', styleDim
	}
}
