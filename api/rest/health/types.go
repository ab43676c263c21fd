package health

// health check response payload
type HealthResponse struct {
	Status string `json:"status"`
}
