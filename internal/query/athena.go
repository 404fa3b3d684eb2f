// Package query implements the query-execution adapter on AWS Athena.
package query

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/athena"
	"github.com/aws/aws-sdk-go-v2/service/athena/types"

	"facility-pipeline/internal/domain"
)

// Compile-time check: AthenaRunner implements the query runner port.
var _ domain.QueryRunner = (*AthenaRunner)(nil)

// AthenaRunner is a QueryRunner backed by AWS Athena.
type AthenaRunner struct {
	client *athena.Client
}

// NewAthenaRunner creates a runner from a resolved AWS config.
func NewAthenaRunner(awsCfg aws.Config) *AthenaRunner {
	return &AthenaRunner{client: athena.NewFromConfig(awsCfg)}
}

// Submit starts a query execution and returns its id without blocking.
func (r *AthenaRunner) Submit(ctx context.Context, sqlText, database, outputLocation string) (string, error) {
	out, err := r.client.StartQueryExecution(ctx, &athena.StartQueryExecutionInput{
		QueryString: aws.String(sqlText),
		QueryExecutionContext: &types.QueryExecutionContext{
			Database: aws.String(database),
		},
		ResultConfiguration: &types.ResultConfiguration{
			OutputLocation: aws.String(outputLocation),
		},
	})
	if err != nil {
		return "", fmt.Errorf("start query execution: %w", err)
	}
	return aws.ToString(out.QueryExecutionId), nil
}

// State fetches the current lifecycle state of an execution.
func (r *AthenaRunner) State(ctx context.Context, executionID string) (domain.QueryState, error) {
	out, err := r.client.GetQueryExecution(ctx, &athena.GetQueryExecutionInput{
		QueryExecutionId: aws.String(executionID),
	})
	if err != nil {
		return "", fmt.Errorf("get query execution %s: %w", executionID, err)
	}
	if out.QueryExecution == nil || out.QueryExecution.Status == nil {
		return "", fmt.Errorf("query execution %s has no status", executionID)
	}
	return stateFromAthena(out.QueryExecution.Status.State), nil
}

// OutputLocation resolves the s3:// URI of the execution's result artifact.
func (r *AthenaRunner) OutputLocation(ctx context.Context, executionID string) (string, error) {
	out, err := r.client.GetQueryExecution(ctx, &athena.GetQueryExecutionInput{
		QueryExecutionId: aws.String(executionID),
	})
	if err != nil {
		return "", fmt.Errorf("get query execution %s: %w", executionID, err)
	}
	if out.QueryExecution == nil || out.QueryExecution.ResultConfiguration == nil ||
		out.QueryExecution.ResultConfiguration.OutputLocation == nil {
		return "", fmt.Errorf("query execution %s has no output location", executionID)
	}
	return *out.QueryExecution.ResultConfiguration.OutputLocation, nil
}

func stateFromAthena(s types.QueryExecutionState) domain.QueryState {
	switch s {
	case types.QueryExecutionStateQueued:
		return domain.QueryStateQueued
	case types.QueryExecutionStateRunning:
		return domain.QueryStateRunning
	case types.QueryExecutionStateSucceeded:
		return domain.QueryStateSucceeded
	case types.QueryExecutionStateFailed:
		return domain.QueryStateFailed
	case types.QueryExecutionStateCancelled:
		return domain.QueryStateCancelled
	default:
		return domain.QueryState(s)
	}
}
