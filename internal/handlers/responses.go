package handlers

// ErrorResponse is the JSON body of a failed non-HTML request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}
