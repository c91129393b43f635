package entity

import "time"

// Client cliente de un vendedor. Cada cliente tiene exactamente un vendedor dueño
// (SellerID) y solo ese vendedor puede leerlo, actualizarlo o eliminarlo.
type Client struct {
	ID        string
	Name      string
	Lastname  string
	Company   string
	Email     string
	Phone     *string // opcional
	SellerID  string
	CreatedAt time.Time
}
