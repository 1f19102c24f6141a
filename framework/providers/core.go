package providers

import (
	"github.com/weld-framework/weld/framework/config"
	"github.com/weld-framework/weld/framework/routing"
)

// ConfigProvider loads the application configuration from .env and
// contributes *config.Config to the instance pool.
type ConfigProvider struct {
	BaseProvider
	EnvFiles []string
}

func (p *ConfigProvider) Register(b *Builder) {
	b.Instance(config.Load(p.EnvFiles...))
}

// RouterProvider contributes the HTTP router to the instance pool.
type RouterProvider struct {
	BaseProvider
}

func (p *RouterProvider) Register(b *Builder) {
	b.Instance(routing.New())
}

var _ Provider = (*ConfigProvider)(nil)
var _ Provider = (*RouterProvider)(nil)
