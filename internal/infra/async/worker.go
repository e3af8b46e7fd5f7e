package async

import "context"

// Worker is a long running background process. Run calls done once it has
// fully stopped.
type Worker interface {
	Run(ctx context.Context, done func())
	Shutdown()
}
