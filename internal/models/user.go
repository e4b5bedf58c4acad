package models

const (
	RoleStaff = "staff"
	RoleAdmin = "admin"
)

// Staff représente l'utilisateur extrait du token du fournisseur d'identité
type Staff struct {
	ID    string `json:"user_id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (s Staff) IsStaff() bool {
	return s.Role == RoleStaff || s.Role == RoleAdmin
}

func (s Staff) IsAdmin() bool {
	return s.Role == RoleAdmin
}
