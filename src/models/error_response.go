package models

// ErrorResponse - standard error payload for every endpoint
type ErrorResponse struct {
	Status  int    `json:"status"`  // HTTP status code
	Message string `json:"message"` // error detail
}
