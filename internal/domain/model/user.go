package model

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the synthetic account returned on login. There is no user store;
// a fresh record is fabricated on every successful login.
type User struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	TotalPoints int    `json:"totalPoints"`
	Rank        int    `json:"rank"`
	Level       int    `json:"level"`
}
