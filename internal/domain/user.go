package domain

// User is the profile served by GET /api/user/.
type User struct {
	ID         int64  `json:"id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name"`
	Contact    string `json:"contact"`
	Address    string `json:"address"`
	Gender     string `json:"gender"`
	Image      string `json:"image"`
}

// Signup carries the full registration field set expected by the user service.
type Signup struct {
	FirstName       string `json:"first_name"`
	MiddleName      string `json:"middle_name,omitempty"`
	LastName        string `json:"last_name"`
	Username        string `json:"username"`
	Contact         string `json:"contact"`
	Address         string `json:"address"`
	Gender          string `json:"gender"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}
