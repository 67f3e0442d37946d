package domain

import "errors"

var (
	ErrNotFound         = errors.New("project not found")
	ErrCorruptStore     = errors.New("stored project list is corrupt")
	ErrQuotaExceeded    = errors.New("storage quota exceeded")
	ErrTitleRequired    = errors.New("title is required")
	ErrNoImages         = errors.New("at least one image is required")
	ErrTooManyImages    = errors.New("a project can hold at most 5 images")
	ErrNotImage         = errors.New("file is not an image")
	ErrImageTooLarge    = errors.New("image exceeds the 5MB limit")
	ErrBadCredentials   = errors.New("invalid username or password")
	ErrNotAuthenticated = errors.New("not authenticated")
)
