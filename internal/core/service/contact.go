package service

import (
	"context"

	"github.com/shopease/backend/internal/core/domain"
	"go.uber.org/zap"
)

// CreateTicket opens a support ticket. The authenticated email, when present,
// wins over the form-supplied one.
func (s *Service) CreateTicket(ctx context.Context, name, email, subject, body, authEmail string) (*domain.ContactMessage, error) {
	userEmail := email
	if authEmail != "" {
		userEmail = authEmail
	}

	ticket := &domain.ContactMessage{
		UserEmail: userEmail,
		Name:      name,
		Subject:   subject,
		Message:   body,
		Status:    domain.TicketStatusOpen,
	}

	newTicket, err := s.repo.CreateTicket(ctx, ticket)
	if err != nil {
		s.logger.Error("Create ticket", zap.Error(err))
		return nil, err
	}
	return newTicket, nil
}

func (s *Service) ListMyTickets(ctx context.Context, userEmail string) ([]*domain.ContactMessage, error) {
	return s.repo.ListTicketsByUser(ctx, userEmail)
}

func (s *Service) GetTicketForUser(ctx context.Context, ticketID uint64, userEmail string) (*domain.ContactMessage, error) {
	ticket, err := s.repo.ReadTicket(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.UserEmail != userEmail {
		return nil, domain.ErrForbidden
	}
	return ticket, nil
}

func (s *Service) ListTicketsAdmin(ctx context.Context, status domain.TicketStatus) ([]*domain.ContactMessage, error) {
	return s.repo.ListTickets(ctx, status)
}

func (s *Service) GetTicketAdmin(ctx context.Context, ticketID uint64) (*domain.ContactMessage, error) {
	return s.repo.ReadTicket(ctx, ticketID)
}

// ReplyTicketAdmin appends the reply and flips the ticket to RESPONDED in the
// same transaction.
func (s *Service) ReplyTicketAdmin(ctx context.Context, ticketID uint64, body, adminEmail string) error {
	reply := &domain.ContactReply{
		MessageID:      ticketID,
		Body:           body,
		ResponderEmail: adminEmail,
	}
	err := s.repo.AddTicketReply(ctx, reply)
	if err != nil {
		s.logger.Error("Reply ticket", zap.Uint64("ticket", ticketID), zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) DeleteTicketAdmin(ctx context.Context, ticketID uint64) error {
	return s.repo.DeleteTicket(ctx, ticketID)
}

func (s *Service) GetAdminStats(ctx context.Context) (*domain.AdminStats, error) {
	stats, err := s.repo.ReadAdminStats(ctx)
	if err != nil {
		s.logger.Error("Read admin stats", zap.Error(err))
		return nil, err
	}
	return stats, nil
}
