package entity

import "time"

// Estados del ciclo de vida de un ticket de fila.
const (
	StatusWaiting   = "waiting"
	StatusOrdering  = "ordering"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
	StatusAbandoned = "abandoned"
)

// QueueTicket es el turno de un cliente en la fila virtual de un Vendor.
//
// Progresión normal: waiting → ordering → preparing → ready → completed.
// abandoned es alcanzable desde cualquier estado no terminal.
type QueueTicket struct {
	ID                   string
	VendorID             string
	TicketNumber         int
	TicketCode           string // código corto que ve el cliente (ej. "A-042")
	CustomerName         string
	CustomerPhone        string
	Status               string
	EstimatedWaitMinutes int
	ActualWaitMinutes    int // se calcula al completar
	OrderStartTime       *time.Time
	PrepStartTime        *time.Time
	ReadyTime            *time.Time
	CompletedTime        *time.Time
	AbandonedTime        *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Terminal indica si el ticket ya no admite transiciones.
func (t *QueueTicket) Terminal() bool {
	return t.Status == StatusCompleted || t.Status == StatusAbandoned
}

// nextStatus define la progresión normal de la fila.
var nextStatus = map[string]string{
	StatusWaiting:   StatusOrdering,
	StatusOrdering:  StatusPreparing,
	StatusPreparing: StatusReady,
	StatusReady:     StatusCompleted,
}

// CanTransition valida si el ticket puede pasar al estado destino.
func (t *QueueTicket) CanTransition(to string) bool {
	if t.Terminal() {
		return false
	}
	if to == StatusAbandoned {
		return true
	}
	return nextStatus[t.Status] == to
}
