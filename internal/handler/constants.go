package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// Messages shown to API clients.
const (
	msgInvalidBody        = "Invalid request body."
	msgInvalidRequest     = "Invalid request."
	msgDuplicateEmail     = "Email already in use."
	msgInvalidCredentials = "Invalid credentials."
	msgUnauthorized       = "Authentication required."
	msgForbidden          = "You are not allowed to modify this resource."
	msgStoreUnavailable   = "Database unavailable, please retry."
	msgInternal           = "Internal server error."

	msgSignedUp       = "User registered successfully."
	msgLoggedOut      = "Logged out successfully."
	msgArticleDeleted = "Article deleted successfully."
	msgCommentDeleted = "Comment deleted successfully."
	msgRunning        = "blog API is running"
)
