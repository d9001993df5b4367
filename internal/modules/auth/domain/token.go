package domain

import "time"

// DecodedToken is the payload of the access token. It is never verified and
// is only good for display and routing decisions in the console.
type DecodedToken struct {
	Role     string
	UserID   int
	Email    string
	Name     string
	IssuedAt time.Time
	Expiry   time.Time
}

// AuthState is what pages know about the caller
type AuthState struct {
	IsAuthenticated bool
	Role            *Role
	Name            *string
	Email           *string
}

// DeriveAuthState is a pure function of the decoded token
func DeriveAuthState(token *DecodedToken) AuthState {
	if token == nil {
		return AuthState{}
	}

	state := AuthState{IsAuthenticated: true}
	if role, err := ParseRole(token.Role); err == nil {
		state.Role = &role
	}
	if token.Name != "" {
		name := token.Name
		state.Name = &name
	}
	if token.Email != "" {
		email := token.Email
		state.Email = &email
	}
	return state
}

// HasRole reports whether the state carries one of roles
func (s AuthState) HasRole(roles ...Role) bool {
	return s.Role != nil && s.Role.In(roles...)
}

// DisplayName prefers the name claim and falls back to the email
func (s AuthState) DisplayName() string {
	if s.Name != nil {
		return *s.Name
	}
	if s.Email != nil {
		return *s.Email
	}
	return ""
}
