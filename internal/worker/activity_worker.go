package worker

import (
	"github.com/spec-kit/ticketapp/internal/service"
)

// StartActivityWorker registers the activity log subscribers.
func StartActivityWorker(activityService *service.ActivityService) {
	if activityService == nil {
		return
	}
	activityService.RegisterHandlers()
}
