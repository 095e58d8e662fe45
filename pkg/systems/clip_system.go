package systems

import (
	"math"

	"github.com/decker502/penalty/pkg/components"
	"github.com/decker502/penalty/pkg/ecs"
)

// ClipSystem 推进所有实体的动画片段播放进度
type ClipSystem struct {
	entityManager *ecs.EntityManager
}

// NewClipSystem 创建片段播放系统
func NewClipSystem(em *ecs.EntityManager) *ClipSystem {
	return &ClipSystem{entityManager: em}
}

// Update 推进播放进度
// 循环片段回绕，非循环片段到达时长后停止并标记 Finished
func (s *ClipSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.ClipComponent](s.entityManager) {
		clip, ok := ecs.GetComponent[*components.ClipComponent](s.entityManager, id)
		if !ok || !clip.Playing {
			continue
		}

		clip.Elapsed += deltaTime
		if clip.Duration > 0 {
			if clip.Loop {
				clip.Elapsed = math.Mod(clip.Elapsed, clip.Duration)
			} else if clip.Elapsed >= clip.Duration {
				clip.Elapsed = clip.Duration
				clip.Playing = false
				clip.Finished = true
			}
		}

		clip.Frame = frameIndex(clip)
	}
}

// frameIndex 根据进度计算关键帧序号
func frameIndex(clip *components.ClipComponent) int {
	if clip.Frames <= 0 {
		return 0
	}
	frame := int(clip.Progress() * float64(clip.Frames))
	if frame >= clip.Frames {
		frame = clip.Frames - 1
	}
	return frame
}
