package history

import "errors"

// ErrSnapshotNotFound signals that no snapshot is recorded under the requested filename
var ErrSnapshotNotFound = errors.New("snapshot not found")
