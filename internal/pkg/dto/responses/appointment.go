package responses

type Appointment struct {
	ID           string `json:"id"`
	ProviderID   string `json:"providerId"`
	CustomerID   string `json:"customerId,omitempty"`
	CustomerName string `json:"customerName"`
	ServiceType  string `json:"serviceType"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Status       string `json:"status"`
	Notes        string `json:"notes,omitempty"`
}
