package ports

import "context"

// Broadcaster abstracts the notification fan-out channel (Redis pub/sub).
type Broadcaster interface {
	// Publish sends a message and returns the number of subscribers that
	// received it.
	Publish(ctx context.Context, message string) (int64, error)
	// Recent returns the most recently broadcast messages, newest first.
	Recent(ctx context.Context, limit int) ([]string, error)
}

// BroadcastResult reports the outcome of a broadcast.
type BroadcastResult struct {
	Message   string
	Receivers int64
}

// NotificationService is a broadcast stub; there is no delivery pipeline.
type NotificationService interface {
	Broadcast(ctx context.Context, message string) (*BroadcastResult, error)
	Recent(ctx context.Context, limit int) ([]string, error)
}
