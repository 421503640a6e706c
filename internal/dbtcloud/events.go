package dbtcloud

import (
	"time"

	"github.com/dbtbridge/dbtbridge/internal/utils"
	"github.com/dbtbridge/dbtbridge/models"
)

var eventIDs = utils.NewUUIDGenerator()

func newRunEvent(kind models.RunEventKind, run models.Run) models.RunEvent {
	message := run.StatusMessage
	if message == "" {
		message = run.Status.String()
	}

	return models.RunEvent{
		EventID:   eventIDs.Generate(),
		Kind:      kind,
		RunID:     run.ID,
		Status:    run.Status,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// terminalEventKind maps a terminal run status to its event kind.
func terminalEventKind(status models.RunStatus) models.RunEventKind {
	if status == models.RunSuccess {
		return models.RunEventCompleted
	}
	return models.RunEventFailed
}
