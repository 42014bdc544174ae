package session

import "crypto/subtle"

// Credentials is the single principal this demo accepts. A real deployment
// would swap this for an identity-store lookup.
type Credentials struct {
	Username string
	Password string
}

// Validate reports whether the submitted pair matches. Both fields are
// compared in constant time and combined at the end, so a wrong username
// and a wrong password are indistinguishable to the caller.
func (c Credentials) Validate(username, password string) bool {
	u := subtle.ConstantTimeCompare([]byte(c.Username), []byte(username))
	p := subtle.ConstantTimeCompare([]byte(c.Password), []byte(password))
	return u&p == 1
}
