package domain

import "time"

type TicketStatus string

const (
	TicketStatusOpen      TicketStatus = "OPEN"
	TicketStatusResponded TicketStatus = "RESPONDED"
	TicketStatusClosed    TicketStatus = "CLOSED"
)

type ContactMessage struct {
	ID        uint64
	UserEmail string
	Name      string
	Subject   string
	Message   string
	Status    TicketStatus
	CreatedAt time.Time
	UpdatedAt time.Time
	Replies   []*ContactReply
}

type ContactReply struct {
	ID             uint64
	MessageID      uint64
	Body           string
	ResponderEmail string
	CreatedAt      time.Time
}
