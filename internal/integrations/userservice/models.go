package userservice

// User is the user directory's projection of an account
type User struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"` // owner | staff | admin
}

// ErrorResponse is the user directory error payload
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
