package draft

import "github.com/saulo-duarte/kiku/internal/config"

type DraftContainer struct {
	Service Service
	Handler *Handler
}

func NewDraftContainer(cfg config.DraftConfig) *DraftContainer {
	generator := NewGenerator(cfg.LoweredWording)
	service := NewService(generator)
	handler := NewHandler(service)

	return &DraftContainer{
		Service: service,
		Handler: handler,
	}
}
