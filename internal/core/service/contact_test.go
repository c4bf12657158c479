package service_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopease/backend/internal/core/domain"
	"github.com/shopease/backend/internal/core/port/mock"
	"github.com/stretchr/testify/assert"
)

func TestService_CreateTicket(t *testing.T) {
	tests := []struct {
		name      string
		formEmail string
		authEmail string
		expEmail  string
	}{
		{"anonymous uses form email", "guest@example.com", "", "guest@example.com"},
		{"authenticated email wins", "spoofed@example.com", "buyer@example.com", "buyer@example.com"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newTestService(t, func(repo *mock.MockRepository) {
				repo.EXPECT().CreateTicket(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, m *domain.ContactMessage) (*domain.ContactMessage, error) {
						assert.Equal(t, test.expEmail, m.UserEmail)
						assert.Equal(t, domain.TicketStatusOpen, m.Status)
						m.ID = 1
						return m, nil
					})
			})

			ticket, err := s.CreateTicket(context.Background(), "Guest", test.formEmail, "Help", "My order", test.authEmail)
			assert.NoError(t, err)
			assert.Equal(t, test.expEmail, ticket.UserEmail)
		})
	}
}

func TestService_GetTicketForUser(t *testing.T) {
	ticket := domain.ContactMessage{ID: 1, UserEmail: "buyer@example.com", Status: domain.TicketStatusOpen}

	tests := []struct {
		name     string
		email    string
		expError error
	}{
		{"own ticket", "buyer@example.com", nil},
		{"foreign ticket", "other@example.com", domain.ErrForbidden},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := newTestService(t, func(repo *mock.MockRepository) {
				repo.EXPECT().ReadTicket(gomock.Any(), uint64(1)).Return(&ticket, nil)
			})

			result, err := s.GetTicketForUser(context.Background(), 1, test.email)
			assert.ErrorIs(t, err, test.expError)
			if test.expError == nil {
				assert.Equal(t, &ticket, result)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestService_ReplyTicketAdmin(t *testing.T) {
	s := newTestService(t, func(repo *mock.MockRepository) {
		repo.EXPECT().AddTicketReply(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *domain.ContactReply) error {
				assert.Equal(t, uint64(1), r.MessageID)
				assert.Equal(t, "admin@example.com", r.ResponderEmail)
				assert.Equal(t, "On its way", r.Body)
				return nil
			})
	})

	err := s.ReplyTicketAdmin(context.Background(), 1, "On its way", "admin@example.com")
	assert.NoError(t, err)
}
