package async

import "context"

// Worker is a background loop started by main. Run calls done once the
// loop has returned.
type Worker interface {
	Run(ctx context.Context, done func())
	Shutdown()
}
