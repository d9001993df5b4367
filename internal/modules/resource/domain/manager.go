package domain

// ManagerProfile belongs to a user with the artist_manager role
type ManagerProfile struct {
	ID           int     `json:"id"`
	UserID       int     `json:"user_id"`
	Name         string  `json:"name"`
	CompanyName  string  `json:"company_name"`
	CompanyEmail string  `json:"company_email"`
	CompanyPhone string  `json:"company_phone"`
	Gender       *string `json:"gender"`
	Address      *string `json:"address"`
	DateOfBirth  *string `json:"date_of_birth"`
}

func (m ManagerProfile) ItemID() int { return m.ID }

func (m ManagerProfile) Fields() map[string]any {
	return map[string]any{
		"id":            m.ID,
		"user_id":       m.UserID,
		"name":          m.Name,
		"company_name":  m.CompanyName,
		"company_email": m.CompanyEmail,
		"company_phone": m.CompanyPhone,
		"gender":        deref(m.Gender),
		"address":       deref(m.Address),
		"date_of_birth": deref(m.DateOfBirth),
	}
}

// ManagerInput is the create/update payload
type ManagerInput struct {
	UserID       int     `json:"user_id,omitempty"`
	Name         string  `json:"name"`
	CompanyName  string  `json:"company_name"`
	CompanyEmail string  `json:"company_email"`
	CompanyPhone string  `json:"company_phone"`
	Gender       *string `json:"gender"`
	Address      *string `json:"address"`
	DateOfBirth  *string `json:"date_of_birth"`
}
