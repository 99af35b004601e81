package tessellum

import (
	"sync"

	"github.com/JorgeCarriles-Uniovi/Tessellum/internal/span"
)

// 导出类型别名
type ClassSet = span.ClassSet
type RenderConfig = span.RenderConfig

var (
	defaultConfig     *RenderConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default render configuration (singleton).
func DefaultConfig() *RenderConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = span.DefaultRenderConfig()
	})
	return defaultConfig
}
