package response

type StatsResponse struct {
	TotalPatients     int64   `json:"total_patients"`
	PendingPatients   int64   `json:"pending_patients"`
	CompletedPatients int64   `json:"completed_patients"`
	TotalCosts        float64 `json:"total_costs"`
	AvgCostPerPatient float64 `json:"avg_cost_per_patient"`
}
