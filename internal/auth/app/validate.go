package app

// ValidationError carries the exact message shown to the user. Validation
// failures short-circuit before any network call.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

const minCredentialLength = 6

// ValidateRegistration checks the registration form. Rules and messages
// match the storefront: both fields required, at least six characters, and
// the confirmation must match.
func ValidateRegistration(username, password, confirm string) error {
	if username == "" {
		return &ValidationError{Message: "Username is a required field"}
	}
	if password == "" {
		return &ValidationError{Message: "Password is a required field"}
	}
	if len(username) < minCredentialLength {
		return &ValidationError{Message: "Username must be at least 6 characters"}
	}
	if len(password) < minCredentialLength {
		return &ValidationError{Message: "Password must be at least 6 characters"}
	}
	if confirm != password {
		return &ValidationError{Message: "Passwords do not match"}
	}
	return nil
}

// ValidateLogin checks the login form: both fields required.
func ValidateLogin(username, password string) error {
	if username == "" {
		return &ValidationError{Message: "Username is a required field"}
	}
	if password == "" {
		return &ValidationError{Message: "Password is a required field"}
	}
	return nil
}
