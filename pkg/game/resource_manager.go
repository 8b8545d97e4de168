package game

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomonobold"
)

// FontKind 字体类型
type FontKind int

const (
	// FontDisplay 标题字体（粗体无衬线）
	FontDisplay FontKind = iota
	// FontMono 等宽字体（正文、标签）
	FontMono
)

// ResourceManager 管理字体和运行时生成的图片
// 字体数据随 golang.org/x/image 一起编译进程序，无需外部资源文件
type ResourceManager struct {
	sources       map[FontKind]*text.GoTextFaceSource
	fontFaceCache map[string]*text.GoTextFace
	imageCache    map[string]*ebiten.Image
}

// NewResourceManager 创建资源管理器
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		sources:       make(map[FontKind]*text.GoTextFaceSource),
		fontFaceCache: make(map[string]*text.GoTextFace),
		imageCache:    make(map[string]*ebiten.Image),
	}
}

func fontData(kind FontKind) []byte {
	if kind == FontMono {
		return gomonobold.TTF
	}
	return gobold.TTF
}

// LoadFont 加载指定类型和字号的字体（带缓存）
func (rm *ResourceManager) LoadFont(kind FontKind, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%d:%.1f", kind, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	source, ok := rm.sources[kind]
	if !ok {
		var err error
		source, err = text.NewGoTextFaceSource(bytes.NewReader(fontData(kind)))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source (kind %d): %w", kind, err)
		}
		rm.sources[kind] = source
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// Font 与 LoadFont 相同，失败时记录日志并返回 nil 接口
// 绘制函数遇到 nil 字体会跳过文字
func (rm *ResourceManager) Font(kind FontKind, size float64) text.Face {
	face, err := rm.LoadFont(kind, size)
	if err != nil {
		log.Printf("[ResourceManager] Failed to load font: %v", err)
		return nil
	}
	return face
}

// SolidImage 返回一张纯色图片（带缓存），用于图片占位和矩形绘制
func (rm *ResourceManager) SolidImage(w, h int, c color.Color) *ebiten.Image {
	r, g, b, a := c.RGBA()
	key := fmt.Sprintf("%dx%d:%x%x%x%x", w, h, r, g, b, a)
	if img, ok := rm.imageCache[key]; ok {
		return img
	}
	img := ebiten.NewImage(w, h)
	img.Fill(c)
	rm.imageCache[key] = img
	return img
}
