package models

type Availability struct {
	ID         string `json:"id" bson:"_id,omitempty"`
	ProviderID string `json:"providerId" bson:"providerId"`
	DayOfWeek  string `json:"dayOfWeek" bson:"dayOfWeek"`
	Available  *bool  `json:"available" bson:"available"`
	StartTime  string `json:"startTime" bson:"startTime"`
	EndTime    string `json:"endTime" bson:"endTime"`
	TimeModel  `bson:",inline"`
}
