package service

import "errors"

// Domain errors. Handlers map these to HTTP statuses: not-found to
// 404, conflicts to 409, preconditions to 422, upstream to 502.
var (
	ErrVideoNotFound      = errors.New("video not found")
	ErrVideoYtIDNotUnique = errors.New("video with this yt_id already exists")
	ErrVideoSlugNotUnique = errors.New("video slug already exists after expansion")
	ErrVideoDateInFuture  = errors.New("video date cannot be in the future")

	ErrPostNotFound            = errors.New("post not found")
	ErrPostSlugNotUnique       = errors.New("post with this slug already exists")
	ErrPostTitleNotUnique      = errors.New("post with this title already exists")
	ErrPostPublishedInPast     = errors.New("published_at cannot be in the past")
	ErrHistoryDescriptionEmpty = errors.New("history description is required when saving history")

	ErrLiveStreamNotFound      = errors.New("livestream not found")
	ErrLiveStreamAlreadyExists = errors.New("livestream with this slug already scheduled in the window")
	ErrLiveStreamInvalidTime   = errors.New("end_time must be after start_time")

	ErrAlreadyLiked = errors.New("video already liked")
	ErrNotLiked     = errors.New("video not liked")

	ErrUserTokenNotFound = errors.New("token not found")

	ErrInvalidSlug = errors.New("invalid slug format")

	// ErrUpstream wraps full-text index or permission-service
	// failures. When it surfaces after a primary commit the caller
	// sees 502 and operators reconcile.
	ErrUpstream = errors.New("upstream service unavailable")
)
