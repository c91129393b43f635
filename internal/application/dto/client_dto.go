package dto

// ClientInput datos para crear o actualizar un cliente.
type ClientInput struct {
	Name     string  `json:"name" validate:"required"`
	Lastname string  `json:"lastname" validate:"required"`
	Company  string  `json:"company" validate:"required"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    *string `json:"phone"`
}
