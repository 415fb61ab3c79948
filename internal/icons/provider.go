package icons

import (
	"sync"

	"fyne.io/fyne/v2"
	"gocv.io/x/gocv"

	"office97/internal/logger"
)

const (
	sidebarResource = "sidebar.png"
	headerResource  = "header.png"
)

// Provider renders icons on first use and hands out cached Fyne resources.
type Provider struct {
	mu     sync.Mutex
	cache  map[string]fyne.Resource
	logger logger.Logger
}

func NewProvider(log logger.Logger) *Provider {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Provider{
		cache:  make(map[string]fyne.Resource),
		logger: log,
	}
}

// Icon returns the named window icon, or nil when it cannot be rendered.
func (p *Provider) Icon(name string) fyne.Resource {
	return p.load(name+".png", func() ([]byte, error) {
		return IconPNG(name, IconSize)
	})
}

// Sidebar returns the installer sidebar artwork as a PNG resource.
func (p *Provider) Sidebar() fyne.Resource {
	return p.load(sidebarResource, func() ([]byte, error) {
		return SidebarImage(gocv.PNGFileExt)
	})
}

// Header returns the installer header artwork as a PNG resource.
func (p *Provider) Header() fyne.Resource {
	return p.load(headerResource, func() ([]byte, error) {
		return HeaderImage(gocv.PNGFileExt)
	})
}

func (p *Provider) load(key string, render func() ([]byte, error)) fyne.Resource {
	p.mu.Lock()
	defer p.mu.Unlock()

	if res, ok := p.cache[key]; ok {
		return res
	}

	data, err := render()
	if err != nil {
		p.logger.Warning("Icons", "resource not rendered", map[string]interface{}{
			"resource": key,
			"error":    err.Error(),
		})
		return nil
	}

	res := fyne.NewStaticResource(key, data)
	p.cache[key] = res
	return res
}
