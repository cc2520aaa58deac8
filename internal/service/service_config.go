package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/siteforge-io/siteforge/internal/logger"
	"github.com/siteforge-io/siteforge/internal/siteconfig"
	"github.com/siteforge-io/siteforge/internal/store"
)

// DefaultConfigKey is the key the store server keeps its single site
// document under.
const DefaultConfigKey = "siteConfig"

type configService struct {
	repo   store.ConfigRepository
	key    string
	logger *logger.Logger
}

// NewConfigService constructs the [ConfigService] used by the store
// server's HTTP handlers.
func NewConfigService(repo store.ConfigRepository, logger *logger.Logger) ConfigService {
	logger.Debug().Msg("creating config service")
	return &configService{
		repo:   repo,
		key:    DefaultConfigKey,
		logger: logger,
	}
}

// Get returns the stored document. An empty store yields an empty JSON
// object, never an error, so readers always get a mergeable document.
func (s *configService) Get(ctx context.Context) ([]byte, error) {
	value, err := s.repo.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return []byte("{}"), nil
		}
		return nil, fmt.Errorf("get config: %w", err)
	}

	return value, nil
}

// Put validates that document is a JSON object and stores it wholesale.
// Partial documents are fine: merging with the base happens on the reader
// side, not here. Valid JSON with a non-object root (an array, a string) is
// rejected too, since no loader could ever merge it.
func (s *configService) Put(ctx context.Context, document []byte) error {
	doc, err := siteconfig.NewDocument(document)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	if err = s.repo.Put(ctx, s.key, doc); err != nil {
		return fmt.Errorf("put config: %w", err)
	}

	return nil
}
