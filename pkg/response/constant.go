package response

const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	ValidationErrorCode     = 1
	InternalServerErrorCode = 500

	// DateTimeFormat is the human-readable layout used on HTML pages.
	DateTimeFormat = "2006-01-02 15:04:05"
)
