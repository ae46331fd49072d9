package engine

import "errors"

// ErrEmptyRepositoryName signals a query without a repository name
var ErrEmptyRepositoryName = errors.New("empty repository name")

var errNilFetcher = errors.New("nil fetcher")
var errNilWriter = errors.New("nil writer")
var errNilHistory = errors.New("nil history")
var errNilOutput = errors.New("nil output writer")
var errNilClock = errors.New("nil clock")
