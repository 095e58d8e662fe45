package systems

import (
	"log"

	"github.com/decker502/penalty/pkg/components"
	"github.com/decker502/penalty/pkg/config"
	"github.com/decker502/penalty/pkg/ecs"
)

// ClipSource 片段定义查询接口（game.ClipLibrary 实现）
type ClipSource interface {
	Lookup(unit, name string) (config.ClipDef, bool)
}

// EntityAnimator 把某个实体的 ClipComponent 暴露为 shootout.Animator
//
// 片段库尚未加载或片段不存在时 Play 返回 false，
// 状态机据此跳过动画，逻辑照常进行。
type EntityAnimator struct {
	entityManager *ecs.EntityManager
	entity        ecs.EntityID
	clips         ClipSource
}

// NewEntityAnimator 创建实体动画器
func NewEntityAnimator(em *ecs.EntityManager, entity ecs.EntityID, clips ClipSource) *EntityAnimator {
	return &EntityAnimator{
		entityManager: em,
		entity:        entity,
		clips:         clips,
	}
}

// Play 从头播放指定片段
func (a *EntityAnimator) Play(name string) bool {
	clip, ok := ecs.GetComponent[*components.ClipComponent](a.entityManager, a.entity)
	if !ok {
		return false
	}

	def, ok := a.clips.Lookup(clip.Unit, name)
	if !ok {
		log.Printf("[EntityAnimator] Clip %s/%s not available, skipping", clip.Unit, name)
		return false
	}

	clip.Name = def.Name
	clip.Duration = def.Duration().Seconds()
	clip.Loop = def.Loop
	clip.Frames = def.Frames
	clip.Elapsed = 0
	clip.Frame = 0
	clip.Playing = true
	clip.Finished = false
	clip.PlayCount++
	return true
}

// Stop 停止当前片段（保留最后的姿态）
func (a *EntityAnimator) Stop() {
	if clip, ok := ecs.GetComponent[*components.ClipComponent](a.entityManager, a.entity); ok {
		clip.Playing = false
	}
}

// IsPlaying 指定片段是否正在播放
func (a *EntityAnimator) IsPlaying(name string) bool {
	clip, ok := ecs.GetComponent[*components.ClipComponent](a.entityManager, a.entity)
	return ok && clip.Playing && clip.Name == name
}
