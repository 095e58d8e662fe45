package systems

import (
	"image/color"
	"math"
	"sort"

	"github.com/decker502/penalty/pkg/components"
	"github.com/decker502/penalty/pkg/ecs"
	"github.com/decker502/penalty/pkg/shootout"
	"github.com/decker502/penalty/pkg/utils"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorNet     = color.RGBA{R: 255, G: 255, B: 255, A: 90}
	colorShadow  = color.RGBA{R: 0, G: 0, B: 0, A: 70}
	colorOutline = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	colorSkin    = color.RGBA{R: 240, G: 200, B: 160, A: 255}
)

// pose 人物姿态参数
type pose struct {
	lean     float64 // 身体绕 Z 轴倾斜（弧度，正值向 +X）
	lift     float64 // 整体抬高（世界单位）
	legSwing float64 // 踢球腿前摆角度（弧度）
	armsUp   bool
}

// RenderSystem 透视渲染场地、球门、人物、球和瞄准光标
type RenderSystem struct {
	entityManager *ecs.EntityManager
	camera        *Camera
	sky           color.RGBA
	grass         color.RGBA
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, camera *Camera, sky, grass color.RGBA) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		camera:        camera,
		sky:           sky,
		grass:         grass,
	}
}

// drawItem 一个待绘制实体
type drawItem struct {
	id        ecs.EntityID
	transform *components.TransformComponent
	figure    *components.FigureComponent
	depth     float64
}

// Draw 绘制所有可见实体
// 按 Layer 升序、同层按距离从远到近绘制
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	s.camera.Resize(w, h)
	s.drawBackground(screen)

	items := s.collect()
	for _, item := range items {
		if !item.transform.Visible {
			continue
		}
		switch item.figure.Kind {
		case components.FigurePitch:
			s.drawPitch(screen, item.transform, item.figure)
		case components.FigureGoal:
			s.drawGoal(screen, item.transform, item.figure)
		case components.FigureStriker, components.FigureKeeper:
			clip, _ := ecs.GetComponent[*components.ClipComponent](s.entityManager, item.id)
			s.drawPerson(screen, item.transform, item.figure, poseFor(item.figure.Kind, clip))
		case components.FigureBall:
			s.drawBall(screen, item.transform, item.figure)
		case components.FigureCursor:
			s.drawCursor(screen, item.transform, item.figure)
		}
	}
}

func (s *RenderSystem) collect() []drawItem {
	ids := ecs.GetEntitiesWith2[*components.TransformComponent, *components.FigureComponent](s.entityManager)
	items := make([]drawItem, 0, len(ids))
	for _, id := range ids {
		tr, _ := ecs.GetComponent[*components.TransformComponent](s.entityManager, id)
		fig, _ := ecs.GetComponent[*components.FigureComponent](s.entityManager, id)
		items = append(items, drawItem{id: id, transform: tr, figure: fig, depth: s.camera.Depth(tr.Position)})
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].figure.Layer != items[j].figure.Layer {
			return items[i].figure.Layer < items[j].figure.Layer
		}
		return items[i].depth > items[j].depth
	})
	return items
}

// drawBackground 天空和草地，地平线由远处地面点的投影确定
func (s *RenderSystem) drawBackground(screen *ebiten.Image) {
	screen.Fill(s.sky)

	far := mgl64.Vec3{s.camera.Eye.X(), 0, s.camera.Eye.Z() - cameraFar*0.9}
	_, horizon, ok := s.camera.Project(far)
	if !ok {
		horizon = 0
	}
	h := float64(s.camera.Height)
	if horizon < h {
		vector.DrawFilledRect(screen, 0, float32(horizon), float32(s.camera.Width), float32(h-horizon), s.grass, false)
	}
}

// drawPitch 门线、边线、禁区和罚球点
func (s *RenderSystem) drawPitch(screen *ebiten.Image, tr *components.TransformComponent, fig *components.FigureComponent) {
	spotZ := tr.Position.Z()
	goalZ := spotZ - fig.Height
	half := fig.Width / 2
	box := fig.Width / 4
	c := fig.Color

	s.line(screen, mgl64.Vec3{-half, 0, goalZ}, mgl64.Vec3{half, 0, goalZ}, 2, c)
	s.line(screen, mgl64.Vec3{-half, 0, goalZ}, mgl64.Vec3{-half, 0, spotZ + 6}, 2, c)
	s.line(screen, mgl64.Vec3{half, 0, goalZ}, mgl64.Vec3{half, 0, spotZ + 6}, 2, c)

	// 禁区
	boxZ := goalZ + fig.Height*0.7
	s.line(screen, mgl64.Vec3{-box, 0, goalZ}, mgl64.Vec3{-box, 0, boxZ}, 2, c)
	s.line(screen, mgl64.Vec3{box, 0, goalZ}, mgl64.Vec3{box, 0, boxZ}, 2, c)
	s.line(screen, mgl64.Vec3{-box, 0, boxZ}, mgl64.Vec3{box, 0, boxZ}, 2, c)

	// 罚球点
	if x, y, ok := s.camera.Project(mgl64.Vec3{0, 0, spotZ}); ok {
		r := 0.15 * s.camera.Scale(mgl64.Vec3{0, 0, spotZ})
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(math.Max(r, 1.5)), c, true)
	}
}

// drawGoal 门柱、横梁和球网
func (s *RenderSystem) drawGoal(screen *ebiten.Image, tr *components.TransformComponent, fig *components.FigureComponent) {
	const netDepth = 1.5
	z := tr.Position.Z()
	half := fig.Width / 2
	top := fig.Height
	back := z - netDepth

	// 球网
	for i := 0; i <= 8; i++ {
		x := -half + fig.Width*float64(i)/8
		s.line(screen, mgl64.Vec3{x, top, z}, mgl64.Vec3{x, 0, back}, 1, colorNet)
	}
	for i := 0; i <= 4; i++ {
		y := top * float64(i) / 4
		s.line(screen, mgl64.Vec3{-half, y, back}, mgl64.Vec3{half, y, back}, 1, colorNet)
	}
	s.line(screen, mgl64.Vec3{-half, top, z}, mgl64.Vec3{-half, 0, back}, 1, colorNet)
	s.line(screen, mgl64.Vec3{half, top, z}, mgl64.Vec3{half, 0, back}, 1, colorNet)

	// 门框
	width := float32(math.Max(0.12*s.camera.Scale(tr.Position), 2))
	s.line(screen, mgl64.Vec3{-half, 0, z}, mgl64.Vec3{-half, top, z}, width, fig.Color)
	s.line(screen, mgl64.Vec3{half, 0, z}, mgl64.Vec3{half, top, z}, width, fig.Color)
	s.line(screen, mgl64.Vec3{-half, top, z}, mgl64.Vec3{half, top, z}, width, fig.Color)
}

// drawPerson 火柴人：躯干、头、四肢
func (s *RenderSystem) drawPerson(screen *ebiten.Image, tr *components.TransformComponent, fig *components.FigureComponent, p pose) {
	base := tr.Position.Add(mgl64.Vec3{0, p.lift, 0})
	scale := s.camera.Scale(base)
	if scale <= 0 {
		return
	}

	h := fig.Height
	up := mgl64.Vec3{math.Sin(p.lean), math.Cos(p.lean), 0}
	side := mgl64.Vec3{math.Cos(p.lean), -math.Sin(p.lean), 0}
	hip := base.Add(up.Mul(0.48 * h))
	shoulder := base.Add(up.Mul(0.8 * h))
	head := base.Add(up.Mul(0.9 * h))

	limb := float32(math.Max(fig.Width*0.3*scale, 1))
	body := float32(math.Max(fig.Width*scale, 2))

	// 影子
	if x, y, ok := s.camera.Project(mgl64.Vec3{base.X(), 0, base.Z()}); ok {
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(fig.Width*0.8*scale), colorShadow, true)
	}

	// 腿
	legLen := 0.5 * h
	s.line(screen, hip, hip.Add(up.Mul(-legLen)).Add(side.Mul(-fig.Width/3)), limb, fig.Color)
	kickFoot := hip.Add(mgl64.Vec3{0, -legLen * math.Cos(p.legSwing), -legLen * math.Sin(p.legSwing)}).Add(side.Mul(fig.Width / 3))
	s.line(screen, hip, kickFoot, limb, fig.Color)

	// 躯干
	s.line(screen, hip, shoulder, body, fig.Color)

	// 手臂
	armLen := 0.35 * h
	for _, dir := range []float64{-1, 1} {
		var hand mgl64.Vec3
		if p.armsUp {
			hand = shoulder.Add(up.Mul(armLen)).Add(side.Mul(dir * fig.Width * 0.8))
		} else {
			hand = shoulder.Add(up.Mul(-armLen)).Add(side.Mul(dir * fig.Width * 1.1))
		}
		s.line(screen, shoulder, hand, limb, fig.Color)
	}

	// 头
	if x, y, ok := s.camera.Project(head); ok {
		r := float32(0.1 * h * scale)
		vector.DrawFilledCircle(screen, float32(x), float32(y), r, colorSkin, true)
		vector.StrokeCircle(screen, float32(x), float32(y), r, 1, colorOutline, true)
	}
}

// drawBall 球、影子和旋转标记
func (s *RenderSystem) drawBall(screen *ebiten.Image, tr *components.TransformComponent, fig *components.FigureComponent) {
	center := tr.Position
	x, y, ok := s.camera.Project(center)
	if !ok {
		return
	}
	r := fig.Radius * s.camera.Scale(center)

	if sx, sy, ok := s.camera.Project(mgl64.Vec3{center.X(), 0, center.Z()}); ok {
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(r*0.9), colorShadow, true)
	}

	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), fig.Color, true)
	vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 1, colorOutline, true)

	// 旋转标记：球面上随朝向转动的两个黑块，只画朝向摄像机的一面
	toEye := s.camera.Eye.Sub(center)
	for _, local := range []mgl64.Vec3{{0, 0, fig.Radius}, {0, fig.Radius, 0}} {
		offset := tr.Orientation.Rotate(local)
		if offset.Dot(toEye) <= 0 {
			continue
		}
		if mx, my, ok := s.camera.Project(center.Add(offset.Mul(0.8))); ok {
			vector.DrawFilledCircle(screen, float32(mx), float32(my), float32(math.Max(r*0.3, 1)), colorOutline, true)
		}
	}
}

// drawCursor 门线上的瞄准圈
func (s *RenderSystem) drawCursor(screen *ebiten.Image, tr *components.TransformComponent, fig *components.FigureComponent) {
	x, y, ok := s.camera.Project(tr.Position)
	if !ok {
		return
	}
	r := float32(fig.Radius * s.camera.Scale(tr.Position))
	vector.StrokeCircle(screen, float32(x), float32(y), r, 2, fig.Color, true)
	vector.StrokeLine(screen, float32(x)-r*1.4, float32(y), float32(x)+r*1.4, float32(y), 1, fig.Color, true)
	vector.StrokeLine(screen, float32(x), float32(y)-r*1.4, float32(x), float32(y)+r*1.4, 1, fig.Color, true)
}

// line 绘制一条三维线段，任一端点不可见时跳过
func (s *RenderSystem) line(screen *ebiten.Image, a, b mgl64.Vec3, width float32, clr color.Color) {
	ax, ay, okA := s.camera.Project(a)
	bx, by, okB := s.camera.Project(b)
	if !okA || !okB {
		return
	}
	vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by), width, clr, true)
}

// poseFor 根据当前片段计算人物姿态
func poseFor(kind components.FigureKind, clip *components.ClipComponent) pose {
	if clip == nil || clip.Name == "" {
		return pose{}
	}
	t := clip.Progress()

	switch clip.Name {
	case shootout.ClipIdle:
		if kind == components.FigureKeeper {
			return pose{lean: 0.05 * math.Sin(2*math.Pi*t), armsUp: false}
		}
		return pose{lift: 0.03 * utils.EaseSine(t)}
	case shootout.ClipKick:
		return pose{lean: -0.12, legSwing: 1.2 * utils.EaseOutBack(t)}
	case shootout.ClipCelebrate:
		return pose{lift: 0.5 * utils.EaseSine(t), armsUp: true}
	case shootout.ClipDiveLeft:
		e := utils.EaseOutCubic(t)
		return pose{lean: -1.2 * e, lift: 0.4 * utils.EaseSine(t), armsUp: true}
	case shootout.ClipDiveRight:
		e := utils.EaseOutCubic(t)
		return pose{lean: 1.2 * e, lift: 0.4 * utils.EaseSine(t), armsUp: true}
	default:
		return pose{}
	}
}
