package cvibes

import (
	"errors"
	"fmt"
)

// ErrEmptyResult marks a successful analysis call that produced no usable
// candidates. It is not a transport failure: the caller is expected to show
// a softer message and leave the store untouched.
var ErrEmptyResult = errors.New("no valid CVs were found in the analysis results")

// FileReadError reports a local file that could not be converted to its
// transport form. It is raised before any network call is made.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("reading file %q: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// TransportError reports a non-success outcome of the remote analysis call.
// StatusCode is zero when the request never reached the server.
type TransportError struct {
	StatusCode int
	Message    string
}

func (e *TransportError) Error() string {
	return e.Message
}
