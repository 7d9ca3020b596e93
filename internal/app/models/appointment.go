package models

import "time"

type Appointment struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	ProviderID   string    `json:"providerId" bson:"providerId"`
	CustomerID   string    `json:"customerId" bson:"customerId"`
	CustomerName string    `json:"customerName" bson:"customerName"`
	ServiceType  string    `json:"serviceType" bson:"serviceType"`
	Start        time.Time `json:"start" bson:"start"`
	End          time.Time `json:"end" bson:"end"`
	Status       string    `json:"status" bson:"status"`
	Notes        string    `json:"notes,omitempty" bson:"notes,omitempty"`
	TimeModel    `bson:",inline"`
}
