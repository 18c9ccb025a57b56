package login

// Form holds the validity flags mirrored from the two inputs.
// Both start false, so the login action starts disabled.
type Form struct {
	usernameValid bool
	passwordValid bool
}

// SetUsernameValid records the username input's latest validity.
func (f *Form) SetUsernameValid(valid bool) {
	f.usernameValid = valid
}

// SetPasswordValid records the password input's latest validity.
func (f *Form) SetPasswordValid(valid bool) {
	f.passwordValid = valid
}

// UsernameValid returns the mirrored username validity.
func (f Form) UsernameValid() bool {
	return f.usernameValid
}

// PasswordValid returns the mirrored password validity.
func (f Form) PasswordValid() bool {
	return f.passwordValid
}

// LoginEnabled reports whether the primary action may be used.
func (f Form) LoginEnabled() bool {
	return f.usernameValid && f.passwordValid
}
