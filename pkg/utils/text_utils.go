package utils

import (
	"bytes"
	"fmt"
	"image/color"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// TextAlign 文本水平对齐方式
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

var (
	faceSourceOnce sync.Once
	faceSource     *text.GoTextFaceSource
	faceSourceErr  error
)

// LoadFace 返回指定字号的 HUD 字体（Go Regular，随 golang.org/x/image 分发）
// 字体源只解析一次
func LoadFace(size float64) (*text.GoTextFace, error) {
	faceSourceOnce.Do(func() {
		faceSource, faceSourceErr = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if faceSourceErr != nil {
			faceSourceErr = fmt.Errorf("failed to parse HUD font: %w", faceSourceErr)
		}
	})
	if faceSourceErr != nil {
		return nil, faceSourceErr
	}
	return &text.GoTextFace{Source: faceSource, Size: size}, nil
}

// DrawText 绘制单行文本
// (x, y) 为文本左上角（AlignLeft）、顶边中点（AlignCenter）或右上角（AlignRight）
func DrawText(screen *ebiten.Image, str string, face *text.GoTextFace, x, y float64, align TextAlign, clr color.Color) {
	if face == nil || str == "" {
		return
	}

	switch align {
	case AlignCenter:
		x -= measureTextWidth(str, face) / 2
	case AlignRight:
		x -= measureTextWidth(str, face)
	}

	opts := &text.DrawOptions{}
	opts.GeoM.Translate(x, y)
	opts.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, opts)
}

// WrapText 将文本按指定宽度在空格处换行
// 参数:
//   - textStr: 要换行的文本
//   - font: 字体
//   - maxWidth: 最大宽度（像素）
//
// 返回:
//   - []string: 换行后的文本数组（每个元素为一行）
//
// 单个单词超过最大宽度时独占一行，不在单词内断开
func WrapText(textStr string, font *text.GoTextFace, maxWidth float64) []string {
	if textStr == "" || font == nil || maxWidth <= 0 {
		return []string{textStr}
	}
	return wrapWords(textStr, maxWidth, func(s string) float64 {
		return measureTextWidth(s, font)
	})
}

// wrapWords 按单词贪心换行
func wrapWords(textStr string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(textStr)
	if len(words) == 0 {
		return []string{textStr}
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if measure(candidate) > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}

// measureTextWidth 测量文本宽度
func measureTextWidth(textStr string, font *text.GoTextFace) float64 {
	if textStr == "" || font == nil {
		return 0
	}

	width, _ := text.Measure(textStr, font, 0)
	return width
}
