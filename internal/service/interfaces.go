package service

import (
	"context"
	"time"
)

// ConfigService is the business layer over the configuration repository:
// it validates incoming documents and hides the empty-store case.
type ConfigService interface {
	Get(ctx context.Context) ([]byte, error)
	Put(ctx context.Context, document []byte) error
}

// RefreshJob periodically reloads the effective configuration in the
// background. Idle until Start is called.
type RefreshJob interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
