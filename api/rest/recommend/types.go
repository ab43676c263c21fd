package recommend

// response payload for job recommendations
type RecommendationsResponse struct {
	JobIDs []string `json:"job_ids"`
}
