package domain

import "context"

// ObjectStore abstracts the object storage service.
// Implemented by storage.S3Store.
type ObjectStore interface {
	Get(ctx context.Context, bucket, key string) ([]byte, error)
	Put(ctx context.Context, bucket, key string, body []byte, contentType string) error
	Copy(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string) error
}

// QueryRunner abstracts the asynchronous query-execution service.
// Implemented by query.AthenaRunner.
type QueryRunner interface {
	// Submit starts a query execution and returns its handle without
	// waiting for completion.
	Submit(ctx context.Context, sqlText, database, outputLocation string) (string, error)
	// State fetches the current lifecycle state of an execution.
	State(ctx context.Context, executionID string) (QueryState, error)
	// OutputLocation resolves the s3:// URI of the execution's result
	// artifact.
	OutputLocation(ctx context.Context, executionID string) (string, error)
}
