package dto

type HealthStatus struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthReport struct {
	HealthStatus
	Language string `json:"language"`
	Database string `json:"database"`
}
