package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopease/backend/internal/core/domain"
	"github.com/shopease/backend/internal/core/port"
	"go.uber.org/zap"
)

type ContactHandler struct {
	Handler
	service port.Service
}

func NewContactHandler(service port.Service, logger *zap.Logger) (*ContactHandler, error) {
	return &ContactHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

func (ch *ContactHandler) CreateTicket(ctx *gin.Context) {
	authEmail := getAuthPayload(ctx).Email

	var req contactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ch.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	ticket, err := ch.service.CreateTicket(ctx, req.Name, req.Email, req.Subject, req.Message, authEmail)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}
	ch.handleSuccessWithStatus(ctx, gin.H{"id": ticket.ID}, http.StatusCreated)
}

func (ch *ContactHandler) ListMyTickets(ctx *gin.Context) {
	userEmail := getAuthPayload(ctx).Email

	list, err := ch.service.ListMyTickets(ctx, userEmail)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	result := make([]ContactMessageResponse, 0, len(list))
	for _, ticket := range list {
		result = append(result, newContactMessageResponse(ticket))
	}
	ch.handleSuccess(ctx, result)
}

func (ch *ContactHandler) GetMyTicket(ctx *gin.Context) {
	userEmail := getAuthPayload(ctx).Email

	ticketID, err := parseIDParam(ctx, "id")
	if err != nil {
		ch.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	ticket, err := ch.service.GetTicketForUser(ctx, ticketID, userEmail)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}
	ch.handleSuccess(ctx, newContactMessageResponse(ticket))
}

func (ch *ContactHandler) ListTicketsAdmin(ctx *gin.Context) {
	list, err := ch.service.ListTicketsAdmin(ctx, domain.TicketStatus(ctx.Query("status")))
	if err != nil {
		ch.handleError(ctx, err)
		return
	}

	result := make([]ContactMessageResponse, 0, len(list))
	for _, ticket := range list {
		result = append(result, newContactMessageResponse(ticket))
	}
	ch.handleSuccess(ctx, result)
}

func (ch *ContactHandler) GetTicketAdmin(ctx *gin.Context) {
	ticketID, err := parseIDParam(ctx, "id")
	if err != nil {
		ch.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	ticket, err := ch.service.GetTicketAdmin(ctx, ticketID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}
	ch.handleSuccess(ctx, newContactMessageResponse(ticket))
}

type replyRequest struct {
	Body string `json:"body" binding:"required"`
}

func (ch *ContactHandler) ReplyTicketAdmin(ctx *gin.Context) {
	adminEmail := getAuthPayload(ctx).Email

	ticketID, err := parseIDParam(ctx, "id")
	if err != nil {
		ch.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	var req replyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ch.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	err = ch.service.ReplyTicketAdmin(ctx, ticketID, req.Body, adminEmail)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}
	ch.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

func (ch *ContactHandler) DeleteTicketAdmin(ctx *gin.Context) {
	ticketID, err := parseIDParam(ctx, "id")
	if err != nil {
		ch.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	err = ch.service.DeleteTicketAdmin(ctx, ticketID)
	if err != nil {
		ch.handleError(ctx, err)
		return
	}
	ch.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
