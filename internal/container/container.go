package container

import (
	"net/http"

	"github.com/saulo-duarte/kiku/internal/config"
	"github.com/saulo-duarte/kiku/internal/draft"
	"github.com/saulo-duarte/kiku/internal/router"
)

type Container struct {
	Config         *config.Config
	DraftContainer *draft.DraftContainer
}

func New() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if err := config.InitLogger(cfg.Log); err != nil {
		return nil, err
	}
	return NewWithConfig(cfg), nil
}

func NewWithConfig(cfg *config.Config) *Container {
	return &Container{
		Config:         cfg,
		DraftContainer: draft.NewDraftContainer(cfg.Draft),
	}
}

func (c *Container) Router() http.Handler {
	return router.New(router.RouterConfig{
		DraftHandler:   c.DraftContainer.Handler,
		AllowedOrigins: c.Config.CORS.AllowedOrigins,
	})
}
