// Package app provides application-level wiring for the pipeline jobs.
package app

import (
	"context"
	"fmt"
	"log/slog"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"

	"facility-pipeline/internal/config"
	"facility-pipeline/internal/query"
	"facility-pipeline/internal/service/aggregate"
	"facility-pipeline/internal/service/transform"
	"facility-pipeline/internal/storage"
)

// Deps holds the external dependencies that main() must provide.
type Deps struct {
	Cfg    *config.Config
	Logger *slog.Logger
}

// App holds the fully-wired pipeline services.
type App struct {
	Transform *transform.Service
	Aggregate *aggregate.Service
}

// New wires the AWS clients and services from the provided deps. Static
// credentials from config take precedence; otherwise the default credential
// chain applies.
func New(ctx context.Context, deps Deps) (*App, error) {
	cfg := deps.Cfg
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	optFns := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.HasStaticCredentials() {
		optFns = append(optFns, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(*cfg.KeyID, *cfg.Secret, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}

	store := storage.NewS3Store(awsCfg, cfg)
	runner := query.NewAthenaRunner(awsCfg)

	return &App{
		Transform: transform.NewService(store, cfg, deps.Logger.With("component", "transform")),
		Aggregate: aggregate.NewService(runner, store, cfg, deps.Logger.With("component", "aggregate")),
	}, nil
}
