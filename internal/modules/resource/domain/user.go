package domain

// User is a console account
type User struct {
	ID       int    `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

func (u User) ItemID() int { return u.ID }

func (u User) Fields() map[string]any {
	return map[string]any{
		"id":        u.ID,
		"email":     u.Email,
		"role":      u.Role,
		"is_active": u.IsActive,
	}
}

// UserCreate is the payload for a new account
type UserCreate struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

// UserUpdate never carries the role; it is fixed at creation
type UserUpdate struct {
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
}
