package models

// SafeCredentials addresses one safe and carries the master password that
// opens it. Password never leaves the process.
type SafeCredentials struct {
	Name     string
	Password string
}

// WithPassword returns a copy of c with the password replaced.
func (c SafeCredentials) WithPassword(password string) SafeCredentials {
	c.Password = password
	return c
}
