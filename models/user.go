package models

// User adalah identitas yang sedang login. Satu-satunya peran bermakna di
// platform ini adalah admin.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type AdminLoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}
