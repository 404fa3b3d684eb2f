// Package testutil provides shared mock implementations of domain interfaces
// for use in tests across the codebase.
package testutil

import (
	"context"

	"facility-pipeline/internal/domain"
)

// === Object Store Mock ===

// PutCall records one Put invocation for assertions.
type PutCall struct {
	Bucket      string
	Key         string
	Body        []byte
	ContentType string
}

// CopyCall records one Copy invocation for assertions.
type CopyCall struct {
	SrcBucket, SrcKey string
	DstBucket, DstKey string
}

// MockObjectStore implements domain.ObjectStore for testing.
type MockObjectStore struct {
	GetFn  func(ctx context.Context, bucket, key string) ([]byte, error)
	PutFn  func(ctx context.Context, bucket, key string, body []byte, contentType string) error
	CopyFn func(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string) error

	Puts   []PutCall  // collected Put calls
	Copies []CopyCall // collected Copy calls
}

// Get implements the interface method for testing.
func (m *MockObjectStore) Get(ctx context.Context, bucket, key string) ([]byte, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, bucket, key)
	}
	panic("unexpected call to MockObjectStore.Get")
}

// Put implements the interface method for testing.
func (m *MockObjectStore) Put(ctx context.Context, bucket, key string, body []byte, contentType string) error {
	call := PutCall{Bucket: bucket, Key: key, Body: body, ContentType: contentType}
	if m.PutFn != nil {
		if err := m.PutFn(ctx, bucket, key, body, contentType); err != nil {
			return err
		}
	}
	m.Puts = append(m.Puts, call)
	return nil
}

// Copy implements the interface method for testing.
func (m *MockObjectStore) Copy(ctx context.Context, srcBucket, srcKey, dstBucket, dstKey string) error {
	call := CopyCall{SrcBucket: srcBucket, SrcKey: srcKey, DstBucket: dstBucket, DstKey: dstKey}
	if m.CopyFn != nil {
		if err := m.CopyFn(ctx, srcBucket, srcKey, dstBucket, dstKey); err != nil {
			return err
		}
	}
	m.Copies = append(m.Copies, call)
	return nil
}

// LastPut returns the last collected Put call, or nil if none.
func (m *MockObjectStore) LastPut() *PutCall {
	if len(m.Puts) == 0 {
		return nil
	}
	return &m.Puts[len(m.Puts)-1]
}

var _ domain.ObjectStore = (*MockObjectStore)(nil)

// === Query Runner Mock ===

// MockQueryRunner implements domain.QueryRunner for testing.
type MockQueryRunner struct {
	SubmitFn         func(ctx context.Context, sqlText, database, outputLocation string) (string, error)
	StateFn          func(ctx context.Context, executionID string) (domain.QueryState, error)
	OutputLocationFn func(ctx context.Context, executionID string) (string, error)

	StateCalls int // number of State invocations
}

// Submit implements the interface method for testing.
func (m *MockQueryRunner) Submit(ctx context.Context, sqlText, database, outputLocation string) (string, error) {
	if m.SubmitFn != nil {
		return m.SubmitFn(ctx, sqlText, database, outputLocation)
	}
	panic("unexpected call to MockQueryRunner.Submit")
}

// State implements the interface method for testing.
func (m *MockQueryRunner) State(ctx context.Context, executionID string) (domain.QueryState, error) {
	m.StateCalls++
	if m.StateFn != nil {
		return m.StateFn(ctx, executionID)
	}
	panic("unexpected call to MockQueryRunner.State")
}

// OutputLocation implements the interface method for testing.
func (m *MockQueryRunner) OutputLocation(ctx context.Context, executionID string) (string, error) {
	if m.OutputLocationFn != nil {
		return m.OutputLocationFn(ctx, executionID)
	}
	panic("unexpected call to MockQueryRunner.OutputLocation")
}

var _ domain.QueryRunner = (*MockQueryRunner)(nil)
