package scenes

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/penalty/pkg/config"
	"github.com/decker502/penalty/pkg/ecs"
	"github.com/decker502/penalty/pkg/entities"
	"github.com/decker502/penalty/pkg/game"
	"github.com/decker502/penalty/pkg/shootout"
	"github.com/decker502/penalty/pkg/systems"
	"github.com/decker502/penalty/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// PenaltyScene 一个变体的射门场景
//
// 每帧的顺序:
//  1. 收集输入意图，交给状态机
//  2. 推进时钟，状态机处理到期定时器并积分一步
//  3. 推进动画片段
//  4. 把状态机同步到 ECS 组件
//
// Draw 只读组件，不修改任何状态。
type PenaltyScene struct {
	variant      *config.VariantConfig
	sceneManager *game.SceneManager
	audio        *game.AudioManager

	entityManager *ecs.EntityManager
	rig           entities.Rig
	session       *shootout.Session

	clipSystem   *systems.ClipSystem
	syncSystem   *systems.SessionSyncSystem
	renderSystem *systems.RenderSystem
	hudSystem    *systems.HUDRenderSystem

	clock  time.Duration // 场景内单调时钟，由帧间隔累加
	closed bool
}

// NewPenaltyScene 创建射门场景
//
// 参数:
//   - res: 共享资源（变体列表、音频、片段库、随机种子）
//   - sm: 场景管理器，ESC 时返回菜单
//   - variantID: 变体ID，如 "classic"
//
// 返回:
//   - *PenaltyScene: 处于瞄准状态的场景
//   - error: 变体不存在
func NewPenaltyScene(res *Resources, sm *game.SceneManager, variantID string) (*PenaltyScene, error) {
	variant, ok := config.FindVariant(res.Variants, variantID)
	if !ok {
		return nil, fmt.Errorf("unknown variant %q", variantID)
	}

	params := variant.ToParams()
	scene := &PenaltyScene{
		variant:       variant,
		sceneManager:  sm,
		audio:         res.Audio,
		entityManager: ecs.NewEntityManager(),
	}
	scene.rig = entities.NewRig(scene.entityManager, params)

	clips := res.Clips
	if clips == nil {
		clips = game.NewClipLibrary()
	}

	seed := res.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	scene.session = shootout.NewSession(params,
		shootout.WithRand(rand.New(rand.NewSource(seed))),
		shootout.WithAnimators(
			systems.NewEntityAnimator(scene.entityManager, scene.rig.Striker, clips),
			systems.NewEntityAnimator(scene.entityManager, scene.rig.Keeper, clips),
		),
	)
	scene.session.AddListener(systems.NewScoreboardSystem(scene.entityManager, scene.rig.HUD, scene.session.Ledger()))
	if scene.audio != nil {
		scene.session.AddListener(scene.audio)
	}

	sky, err := config.ParseHexColor(variant.Scene.Sky)
	if err != nil {
		sky = color.RGBA{R: 135, G: 206, B: 235, A: 255}
	}
	grass, err := config.ParseHexColor(variant.Scene.Grass)
	if err != nil {
		grass = color.RGBA{R: 46, G: 139, B: 87, A: 255}
	}
	camera := systems.NewCamera(variant.CameraEye(), variant.CameraTarget(), variant.Scene.Camera.FOV, config.WindowWidth, config.WindowHeight)

	scene.clipSystem = systems.NewClipSystem(scene.entityManager)
	scene.syncSystem = systems.NewSessionSyncSystem(scene.entityManager, scene.session, scene.rig)
	scene.renderSystem = systems.NewRenderSystem(scene.entityManager, camera, sky, grass)
	scene.hudSystem = systems.NewHUDRenderSystem(scene.entityManager, scene.rig.HUD)
	scene.hudSystem.Title = variant.Name

	// 第一帧之前同步一次，保证 Draw 看到的是初始布局
	scene.syncSystem.Update(0)

	log.Printf("[PenaltyScene] Variant %s ready (policy=%s, seed=%d)", variant.ID, params.Policy, seed)
	return scene, nil
}

// Session 返回状态机（测试和调试用）
func (s *PenaltyScene) Session() *shootout.Session {
	return s.session
}

// EntityManager 返回实体管理器
func (s *PenaltyScene) EntityManager() *ecs.EntityManager {
	return s.entityManager
}

// Rig 返回场景实体
func (s *PenaltyScene) Rig() entities.Rig {
	return s.rig
}

// Update 推进一帧
func (s *PenaltyScene) Update(deltaTime float64) {
	for _, intent := range utils.JustPressedIntents(config.WindowWidth) {
		s.HandleIntent(intent)
		if s.closed {
			return
		}
	}
	s.Advance(deltaTime)
}

// HandleIntent 处理一个玩家意图
func (s *PenaltyScene) HandleIntent(intent utils.Intent) {
	if s.closed {
		return
	}

	switch intent {
	case utils.IntentBack:
		if !s.sceneManager.ShowMenu() {
			log.Printf("[PenaltyScene] Warning: menu unavailable")
		}
	case utils.IntentMute:
		if s.audio != nil {
			enabled := s.audio.ToggleMute()
			log.Printf("[PenaltyScene] Sound enabled: %v", enabled)
		}
	default:
		if in := intent.ToInput(); in != shootout.InputNone {
			s.session.HandleInput(in)
		}
	}
}

// Advance 推进时钟并运行各系统
func (s *PenaltyScene) Advance(deltaTime float64) {
	if s.closed {
		return
	}
	s.clock += time.Duration(deltaTime * float64(time.Second))
	s.session.Update(s.clock)
	s.clipSystem.Update(deltaTime)
	s.syncSystem.Update(deltaTime)
	s.hudSystem.Muted = s.audio != nil && s.audio.Muted()
}

// Draw 绘制场景
func (s *PenaltyScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
	s.hudSystem.Draw(screen)
}

// Close 实现 game.Closer，离开场景时停止音效
func (s *PenaltyScene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	if s.audio != nil {
		s.audio.StopAll()
	}
	log.Printf("[PenaltyScene] Variant %s closed after %d attempts", s.variant.ID, s.session.Attempts())
}
