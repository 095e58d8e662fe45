package systems

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/penalty/pkg/components"
	"github.com/decker502/penalty/pkg/config"
	"github.com/decker502/penalty/pkg/ecs"
	"github.com/decker502/penalty/pkg/shootout"
	"github.com/decker502/penalty/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorHUDText    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorHUDDim     = color.RGBA{R: 200, G: 200, B: 200, A: 220}
	colorHUDPanel   = color.RGBA{R: 0, G: 0, B: 0, A: 140}
	colorDotScored  = color.RGBA{R: 60, G: 200, B: 90, A: 255}
	colorDotMissed  = color.RGBA{R: 220, G: 50, B: 50, A: 255}
	colorDotPending = color.RGBA{R: 230, G: 230, B: 230, A: 200}
)

// HUDRenderSystem 绘制记分板、结果文字和操作提示
type HUDRenderSystem struct {
	entityManager *ecs.EntityManager
	hud           ecs.EntityID

	smallFace *text.GoTextFace
	largeFace *text.GoTextFace

	// Muted 是否显示静音标记
	Muted bool
	// Title 左下角显示的变体名称
	Title string
}

// NewHUDRenderSystem 创建 HUD 渲染系统
// 字体加载失败时只绘制图形部分
func NewHUDRenderSystem(em *ecs.EntityManager, hud ecs.EntityID) *HUDRenderSystem {
	s := &HUDRenderSystem{entityManager: em, hud: hud}

	var err error
	if s.smallFace, err = utils.LoadFace(16); err != nil {
		log.Printf("[HUDRenderSystem] Warning: %v", err)
	}
	if s.largeFace, err = utils.LoadFace(48); err != nil {
		log.Printf("[HUDRenderSystem] Warning: %v", err)
	}
	return s
}

// Draw 绘制 HUD
func (s *HUDRenderSystem) Draw(screen *ebiten.Image) {
	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())

	if board, ok := ecs.GetComponent[*components.ScoreboardComponent](s.entityManager, s.hud); ok {
		if board.Enabled {
			s.drawScoreboard(screen, board)
		} else {
			s.drawTally(screen, board, w)
		}
	}

	if status, ok := ecs.GetComponent[*components.StatusTextComponent](s.entityManager, s.hud); ok {
		utils.DrawText(screen, status.Text, s.largeFace, w/2, config.StatusTextY, utils.AlignCenter, status.Color)
		utils.DrawText(screen, status.Hint, s.smallFace, w/2, h-config.HintBottomMargin, utils.AlignCenter, colorHUDDim)
	}

	if s.Title != "" {
		utils.DrawText(screen, s.Title, s.smallFace, 12, h-config.HintBottomMargin, utils.AlignLeft, colorHUDDim)
	}
	if s.Muted {
		utils.DrawText(screen, "MUTED", s.smallFace, w-12, h-config.HintBottomMargin, utils.AlignRight, colorHUDDim)
	}
}

// drawScoreboard 两队的圆点记分板
func (s *HUDRenderSystem) drawScoreboard(screen *ebiten.Image, board *components.ScoreboardComponent) {
	x := float32(config.ScoreboardX)
	y := float32(config.ScoreboardY)
	perTurn := board.PerTurn
	if perTurn <= 0 {
		perTurn = 5
	}

	panelW := float32(config.ScoreboardNameWidth+float64(perTurn)*config.ScoreboardDotSpacing) + 50
	panelH := float32(2*config.ScoreboardRowHeight) + 12
	vector.DrawFilledRect(screen, x-6, y-6, panelW, panelH, colorHUDPanel, false)

	for _, team := range []shootout.TeamIndex{shootout.TeamHome, shootout.TeamAway} {
		rowY := float64(y) + float64(team)*config.ScoreboardRowHeight
		name := board.Teams[team]
		if team == board.Active {
			name = "> " + name
		}
		utils.DrawText(screen, name, s.smallFace, float64(x), rowY, utils.AlignLeft, colorHUDText)

		dots := board.Dots[team]
		for i := 0; i < perTurn; i++ {
			cx := float32(float64(x) + config.ScoreboardNameWidth + float64(i)*config.ScoreboardDotSpacing)
			cy := float32(rowY + config.ScoreboardRowHeight/2 - 2)
			result := shootout.DotPending
			if i < len(dots) {
				result = dots[i]
			}
			drawDot(screen, cx, cy, result)
		}

		goalsX := float64(x) + config.ScoreboardNameWidth + float64(perTurn)*config.ScoreboardDotSpacing + 10
		utils.DrawText(screen, fmt.Sprintf("%d", board.Goals[team]), s.smallFace, goalsX, rowY, utils.AlignLeft, colorHUDText)
	}
}

// drawTally 无记分板变体显示射门/进球次数
func (s *HUDRenderSystem) drawTally(screen *ebiten.Image, board *components.ScoreboardComponent, w float64) {
	line := fmt.Sprintf("Shots %d   Goals %d", board.Attempts, board.Scored)
	utils.DrawText(screen, line, s.smallFace, w-config.ScoreboardX, config.ScoreboardY, utils.AlignRight, colorHUDText)
}

func drawDot(screen *ebiten.Image, cx, cy float32, result shootout.DotResult) {
	r := float32(config.ScoreboardDotRadius)
	switch result {
	case shootout.DotScored:
		vector.DrawFilledCircle(screen, cx, cy, r, colorDotScored, true)
	case shootout.DotMissed:
		vector.DrawFilledCircle(screen, cx, cy, r, colorDotMissed, true)
	default:
		vector.StrokeCircle(screen, cx, cy, r, 1.5, colorDotPending, true)
	}
}
