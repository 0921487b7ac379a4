package entity

import "time"

// Order es una línea de pedido asociada a un ticket de fila.
type Order struct {
	ID                  string
	TicketID            string
	MenuItemID          string
	Quantity            int
	SpecialInstructions string
	CreatedAt           time.Time
}
