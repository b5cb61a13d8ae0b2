package core

import (
	"context"
	"fmt"

	"github.com/dcoder4/backpack/idcard"
	"github.com/dcoder4/backpack/internal/contract"
	"github.com/dcoder4/backpack/internal/outwriter"
)

// ExecuteIdentity resolves the identity of the running application
// instance from the fleet service and prints it.
func ExecuteIdentity(ctx context.Context, cfg *contract.Config) error {
	if cfg.Endpoint == "" {
		return fmt.Errorf("no fleet service endpoint configured")
	}

	logger := contract.NewLogger(cfg.Verbose)
	defer func() { _ = logger.Sync() }()

	resolver, err := idcard.NewResolver(cfg.Endpoint, idcard.WithLogger(logger))
	if err != nil {
		return err
	}

	identity, err := resolver.Resolve(ctx)
	if err != nil {
		return fmt.Errorf("cannot resolve identity: %w", err)
	}

	return outwriter.WriteIdentity(identity, cfg)
}
