package identity

// SignupRequest carries the customer registration form
type SignupRequest struct {
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	Password  string `validate:"required"`
}

// LoginRequest carries the customer login form
type LoginRequest struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// ChangeAdminPasswordRequest carries the admin settings password form
type ChangeAdminPasswordRequest struct {
	Current string `validate:"required"`
	New     string `validate:"required"`
	Confirm string `validate:"required,eqfield=New"`
}
