package video

import "errors"

var (
	ErrVideoNotFound = errors.New("video: not found")

	// Upload preconditions, checked before any network call.
	ErrNotReadyForUpload  = errors.New("video: not in scheduled status")
	ErrFileMissing        = errors.New("video: rendered file not found")
	ErrCredentialsMissing = errors.New("video: instagram credentials not configured")
)
