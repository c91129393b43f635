package entity

import "time"

// User vendedor de la plataforma. El email es único; el password se guarda hasheado con bcrypt.
// No se actualiza ni se elimina desde la API: solo registro y lectura durante la autenticación.
type User struct {
	ID           string
	Name         string
	Lastname     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
