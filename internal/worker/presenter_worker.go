package worker

import (
	"github.com/camilovegag/procesos-de-negocio/internal/service"
)

// StartPresenterWorker registers the submission display handlers.
func StartPresenterWorker(presenter *service.PresenterService) {
	if presenter == nil {
		return
	}
	presenter.RegisterHandlers()
}
