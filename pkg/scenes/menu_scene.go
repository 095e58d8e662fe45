package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/decker502/penalty/pkg/config"
	"github.com/decker502/penalty/pkg/game"
	"github.com/decker502/penalty/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorMenuBackground = color.RGBA{R: 20, G: 60, B: 35, A: 255}
	colorMenuText       = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	colorMenuDim        = color.RGBA{R: 170, G: 190, B: 175, A: 255}
	colorMenuHighlight  = color.RGBA{R: 255, G: 255, B: 255, A: 40}
	colorMenuSelected   = color.RGBA{R: 255, G: 230, B: 60, A: 255}
)

// MenuScene 变体选择菜单
// 数字键直接选择，上下键移动光标，空格或回车确认
type MenuScene struct {
	sceneManager *game.SceneManager
	variants     []*config.VariantConfig
	selected     int

	titleFace *text.GoTextFace
	itemFace  *text.GoTextFace
	descFace  *text.GoTextFace
}

// NewMenuScene 创建菜单场景
//
// 参数:
//   - res: 共享资源（只使用其中的变体列表）
//   - sm: 场景管理器，选择变体后调用 LoadVariant
//
// 返回:
//   - *MenuScene: 光标位于第一个变体的菜单
func NewMenuScene(res *Resources, sm *game.SceneManager) *MenuScene {
	scene := &MenuScene{
		sceneManager: sm,
		variants:     res.Variants,
	}

	var err error
	if scene.titleFace, err = utils.LoadFace(40); err != nil {
		log.Printf("[MenuScene] Warning: %v", err)
	}
	scene.itemFace, _ = utils.LoadFace(24)
	scene.descFace, _ = utils.LoadFace(15)

	log.Printf("[MenuScene] %d variants available", len(scene.variants))
	return scene
}

// Selected 返回当前光标位置
func (m *MenuScene) Selected() int {
	return m.selected
}

// Update 处理菜单输入
func (m *MenuScene) Update(deltaTime float64) {
	for _, intent := range utils.JustPressedIntents(config.WindowWidth) {
		if m.HandleIntent(intent) {
			return
		}
	}
}

// HandleIntent 处理一个意图，返回是否已经离开菜单
func (m *MenuScene) HandleIntent(intent utils.Intent) bool {
	if len(m.variants) == 0 {
		return false
	}

	if idx := intent.SelectIndex(); idx >= 0 {
		if idx < len(m.variants) {
			m.selected = idx
			return m.choose()
		}
		return false
	}

	switch intent {
	case utils.IntentMenuUp, utils.IntentAimLeft:
		m.selected = (m.selected - 1 + len(m.variants)) % len(m.variants)
	case utils.IntentMenuDown, utils.IntentAimRight:
		m.selected = (m.selected + 1) % len(m.variants)
	case utils.IntentShoot:
		return m.choose()
	}
	return false
}

// choose 加载光标所在的变体
func (m *MenuScene) choose() bool {
	id := m.variants[m.selected].ID
	if !m.sceneManager.LoadVariant(id) {
		log.Printf("[MenuScene] Failed to load variant %s", id)
		return false
	}
	return true
}

// Draw 绘制菜单
func (m *MenuScene) Draw(screen *ebiten.Image) {
	screen.Fill(colorMenuBackground)
	w := float64(screen.Bounds().Dx())

	utils.DrawText(screen, config.WindowTitle, m.titleFace, w/2, config.MenuTitleY, utils.AlignCenter, colorMenuText)

	for i, v := range m.variants {
		y := config.MenuFirstItemY + float64(i)*config.MenuItemSpacing
		clr := color.Color(colorMenuText)
		if i == m.selected {
			vector.DrawFilledRect(screen, float32(w/2-260), float32(y-8), 520, float32(config.MenuItemSpacing-4), colorMenuHighlight, false)
			clr = colorMenuSelected
		}
		utils.DrawText(screen, fmt.Sprintf("%d  %s", i+1, v.Name), m.itemFace, w/2-240, y, utils.AlignLeft, clr)
		utils.DrawText(screen, v.Description, m.descFace, w/2+240, y+6, utils.AlignRight, colorMenuDim)
	}

	hint := "1-4 / UP DOWN select   SPACE start"
	utils.DrawText(screen, hint, m.descFace, w/2, float64(screen.Bounds().Dy())-config.HintBottomMargin, utils.AlignCenter, colorMenuDim)
}
