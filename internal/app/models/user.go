package models

type User struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Email     string `json:"email" bson:"email"`
	Password  string `json:"-" bson:"password"`
	FullName  string `json:"fullName" bson:"fullName"`
	Role      string `json:"role" bson:"role"`
	TimeModel `bson:",inline"`
}

const (
	RoleProvider = "provider"
	RoleCustomer = "customer"
)
