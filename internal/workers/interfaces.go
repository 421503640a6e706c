// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// starting and stopping multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/dbtbridge/dbtbridge/models"
)

// Worker is the interface that must be implemented by any background worker.
//
// Start launches the worker's execution; implementations are expected to
// spawn their goroutines internally and return immediately. Stop blocks
// until the worker has fully exited and is safe to call when the worker is
// not running.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// EventHandler consumes the events produced by one sensor pass.
type EventHandler func(ctx context.Context, events []models.RunEvent)
