package dto

import "time"

// OrderLineRequest línea de pedido al crear un ticket.
type OrderLineRequest struct {
	MenuItemID          string `json:"menu_item_id" validate:"required,uuid"`
	Quantity            int    `json:"quantity" validate:"required,min=1"`
	SpecialInstructions string `json:"special_instructions" validate:"omitempty,max=500"`
}

// CreateTicketRequest entrada para dar un turno a un cliente.
type CreateTicketRequest struct {
	CustomerName  string             `json:"customer_name" validate:"omitempty,max=200"`
	CustomerPhone string             `json:"customer_phone" validate:"omitempty,max=30"`
	Orders        []OrderLineRequest `json:"orders" validate:"omitempty,dive"`
}

// AdvanceTicketRequest entrada para mover un ticket de estado.
type AdvanceTicketRequest struct {
	Status string `json:"status" validate:"required,oneof=ordering preparing ready completed abandoned"`
}

// OrderLineResponse línea de pedido de un ticket.
type OrderLineResponse struct {
	ID                  string    `json:"id"`
	MenuItemID          string    `json:"menu_item_id"`
	Quantity            int       `json:"quantity"`
	SpecialInstructions string    `json:"special_instructions,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

// TicketResponse salida de un ticket de fila.
type TicketResponse struct {
	ID                   string              `json:"id"`
	VendorID             string              `json:"vendor_id"`
	TicketNumber         int                 `json:"ticket_number"`
	TicketCode           string              `json:"ticket_code"`
	CustomerName         string              `json:"customer_name,omitempty"`
	CustomerPhone        string              `json:"customer_phone,omitempty"`
	Status               string              `json:"status"`
	EstimatedWaitMinutes int                 `json:"estimated_wait_minutes"`
	ActualWaitMinutes    int                 `json:"actual_wait_minutes,omitempty"`
	OrderStartTime       *time.Time          `json:"order_start_time,omitempty"`
	PrepStartTime        *time.Time          `json:"prep_start_time,omitempty"`
	ReadyTime            *time.Time          `json:"ready_time,omitempty"`
	CompletedTime        *time.Time          `json:"completed_time,omitempty"`
	AbandonedTime        *time.Time          `json:"abandoned_time,omitempty"`
	Orders               []OrderLineResponse `json:"orders,omitempty"`
	CreatedAt            time.Time           `json:"created_at"`
	UpdatedAt            time.Time           `json:"updated_at"`
}

// TicketListResponse listado paginado de tickets.
type TicketListResponse struct {
	Items []TicketResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
