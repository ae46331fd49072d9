package testsCommon

import "context"

// FetcherStub -
type FetcherStub struct {
	FetchHandler func(ctx context.Context, repositoryName string) ([]byte, error)
}

// Fetch -
func (stub *FetcherStub) Fetch(ctx context.Context, repositoryName string) ([]byte, error) {
	if stub.FetchHandler != nil {
		return stub.FetchHandler(ctx, repositoryName)
	}

	return []byte(`{}`), nil
}

// IsInterfaceNil -
func (stub *FetcherStub) IsInterfaceNil() bool {
	return stub == nil
}
