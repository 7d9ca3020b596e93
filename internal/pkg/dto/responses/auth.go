package responses

type Register struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type Login struct {
	Token string `json:"token"`
}
