package dto

// HealthResponse is the liveness body
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}

// ReadinessResponse is the readiness body
type ReadinessResponse struct {
	Status  string         `json:"status" example:"ready"`
	Records map[string]int `json:"records"`
}
