package resource

import (
	"time"

	"github.com/saransh1220/artist-console/internal/modules/resource/application"
	"github.com/saransh1220/artist-console/internal/shared/infrastructure/cache"
	"go.uber.org/zap"
)

// Module represents the Resource module
type Module struct {
	cache   *application.Cache
	service *application.Service
}

// NewModule wires the query layer over the backend gateway and a cache store
func NewModule(backend application.Backend, store cache.Store, ttl time.Duration, logger *zap.Logger) *Module {
	c := application.NewCache(store, ttl, logger)
	return &Module{
		cache:   c,
		service: application.NewService(backend, c, logger),
	}
}

// Service returns the role-aware resource service
func (m *Module) Service() *application.Service {
	return m.service
}

// Cache returns the shared resource cache
func (m *Module) Cache() *application.Cache {
	return m.cache
}
