package dashboard

import (
	dashboard_http "github.com/saransh1220/artist-console/internal/modules/dashboard/interfaces/http"
	resourceApp "github.com/saransh1220/artist-console/internal/modules/resource/application"
	"github.com/saransh1220/artist-console/internal/shared/web"
	"go.uber.org/zap"
)

// Module represents the Dashboard module
type Module struct {
	handler *dashboard_http.DashboardHandler
}

// NewModule creates the dashboard pages over the resource service
func NewModule(service *resourceApp.Service, render *web.Renderer, logger *zap.Logger) *Module {
	return &Module{handler: dashboard_http.NewDashboardHandler(service, render, logger)}
}

// HTTPHandler returns the HTTP handler for the dashboard module
func (m *Module) HTTPHandler() *dashboard_http.DashboardHandler {
	return m.handler
}
