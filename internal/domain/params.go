package domain

// AuthenticationParams holds the credentials submitted to the login endpoint.
// It is serialized as the request body unchanged.
type AuthenticationParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// String masks the password so params can be printed safely.
func (p AuthenticationParams) String() string {
	return "{email:" + p.Email + " password:*****}"
}
