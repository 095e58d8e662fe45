package systems

import (
	"github.com/go-gl/mathgl/mgl64"
)

const (
	cameraNear = 0.1
	cameraFar  = 200.0
)

// Camera 透视摄像机，把世界坐标投影到屏幕像素
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	FOV    float64 // 垂直视角（度）
	Width  int
	Height int

	view       mgl64.Mat4
	projection mgl64.Mat4
}

// NewCamera 创建摄像机
func NewCamera(eye, target mgl64.Vec3, fovDeg float64, width, height int) *Camera {
	c := &Camera{
		Eye:    eye,
		Target: target,
		FOV:    fovDeg,
		Width:  width,
		Height: height,
	}
	c.rebuild()
	return c
}

func (c *Camera) rebuild() {
	aspect := float64(c.Width) / float64(c.Height)
	c.view = mgl64.LookAtV(c.Eye, c.Target, mgl64.Vec3{0, 1, 0})
	c.projection = mgl64.Perspective(mgl64.DegToRad(c.FOV), aspect, cameraNear, cameraFar)
}

// Resize 窗口尺寸变化时更新投影
func (c *Camera) Resize(width, height int) {
	if width == c.Width && height == c.Height {
		return
	}
	c.Width, c.Height = width, height
	c.rebuild()
}

// Project 把世界坐标投影到屏幕（左上角为原点，Y 向下）
// 点在摄像机后方或近平面之内时 ok 为 false
func (c *Camera) Project(p mgl64.Vec3) (x, y float64, ok bool) {
	viewPos := c.view.Mul4x1(p.Vec4(1))
	if viewPos.Z() > -cameraNear {
		return 0, 0, false
	}

	win := mgl64.Project(p, c.view, c.projection, 0, 0, c.Width, c.Height)
	return win.X(), float64(c.Height) - win.Y(), true
}

// Depth 点到摄像机的距离，用于远近排序
func (c *Camera) Depth(p mgl64.Vec3) float64 {
	return p.Sub(c.Eye).Len()
}

// Scale 点 p 处一个世界单位对应的屏幕像素数（竖直方向）
func (c *Camera) Scale(p mgl64.Vec3) float64 {
	_, y0, ok0 := c.Project(p)
	_, y1, ok1 := c.Project(p.Add(mgl64.Vec3{0, 1, 0}))
	if !ok0 || !ok1 {
		return 0
	}
	if y0 > y1 {
		return y0 - y1
	}
	return y1 - y0
}
