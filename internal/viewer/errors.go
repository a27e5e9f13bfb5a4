package viewer

import "errors"

// Sentinel errors for the load failure taxonomy. Wrapped values carry path
// context; match with errors.Is.
var (
	// ErrNotFound means the path did not exist at classification time.
	ErrNotFound = errors.New("path does not exist")

	// ErrDirectoryRead means listing a directory's entries failed.
	ErrDirectoryRead = errors.New("cannot read directory")

	// ErrIO means a file open or read failed during a synchronous or
	// background load.
	ErrIO = errors.New("read failure")

	// ErrLoadCancelled means the session was closed while its background
	// load was still running.
	ErrLoadCancelled = errors.New("load cancelled")
)
