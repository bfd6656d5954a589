package models

// ErrorResponse is the wire shape of every failed API call. StatusCode
// mirrors the HTTP status, ErrorCode is one of the fixed apperr codes.
type ErrorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	ErrorCode  string `json:"errorCode"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
}
