package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopease/backend/internal/core/domain"
)

var ticketColumns = []string{"id", "user_email", "name", "subject", "message", "status", "created_at", "updated_at"}

func scanTicket(row pgx.Row) (*domain.ContactMessage, error) {
	ticket := domain.ContactMessage{}
	err := row.Scan(
		&ticket.ID,
		&ticket.UserEmail,
		&ticket.Name,
		&ticket.Subject,
		&ticket.Message,
		&ticket.Status,
		&ticket.CreatedAt,
		&ticket.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &ticket, nil
}

func (r *Repository) CreateTicket(ctx context.Context, message *domain.ContactMessage) (*domain.ContactMessage, error) {
	statement := r.db.QueryBuilder.
		Insert("contact_messages").
		Columns("user_email", "name", "subject", "message", "status").
		Values(message.UserEmail, message.Name, message.Subject, message.Message, message.Status).
		Suffix("returning id, created_at, updated_at")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&message.ID, &message.CreatedAt, &message.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return message, nil
}

// ReadTicket loads the ticket with its reply thread.
func (r *Repository) ReadTicket(ctx context.Context, ticketID uint64) (*domain.ContactMessage, error) {
	statement := r.db.QueryBuilder.
		Select(ticketColumns...).
		From("contact_messages").
		Where(sq.Eq{"id": ticketID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	ticket, err := scanTicket(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, err
	}

	replySt := r.db.QueryBuilder.
		Select("id", "message_id", "body", "responder_email", "created_at").
		From("contact_replies").
		Where(sq.Eq{"message_id": ticketID}).
		OrderBy("id")

	sql, args, err = replySt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		reply := domain.ContactReply{}
		err := rows.Scan(&reply.ID, &reply.MessageID, &reply.Body, &reply.ResponderEmail, &reply.CreatedAt)
		if err != nil {
			return nil, err
		}
		ticket.Replies = append(ticket.Replies, &reply)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return ticket, nil
}

func (r *Repository) listTickets(ctx context.Context, statement sq.SelectBuilder) ([]*domain.ContactMessage, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.ContactMessage, 0)
	for rows.Next() {
		ticket, err := scanTicket(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return list, nil
}

func (r *Repository) ListTicketsByUser(ctx context.Context, userEmail string) ([]*domain.ContactMessage, error) {
	statement := r.db.QueryBuilder.
		Select(ticketColumns...).
		From("contact_messages").
		Where(sq.Eq{"user_email": userEmail}).
		OrderBy("updated_at DESC")
	return r.listTickets(ctx, statement)
}

func (r *Repository) ListTickets(ctx context.Context, status domain.TicketStatus) ([]*domain.ContactMessage, error) {
	statement := r.db.QueryBuilder.
		Select(ticketColumns...).
		From("contact_messages").
		OrderBy("updated_at DESC")
	if status != "" {
		statement = statement.Where(sq.Eq{"status": status})
	}
	return r.listTickets(ctx, statement)
}

// AddTicketReply inserts the reply and moves the ticket to RESPONDED as one
// transaction.
func (r *Repository) AddTicketReply(ctx context.Context, reply *domain.ContactReply) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		insertSt := r.db.QueryBuilder.
			Insert("contact_replies").
			Columns("message_id", "body", "responder_email").
			Values(reply.MessageID, reply.Body, reply.ResponderEmail).
			Suffix("returning id, created_at")

		sql, args, err := insertSt.ToSql()
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx, sql, args...).Scan(&reply.ID, &reply.CreatedAt)
		if err != nil {
			return err
		}

		updateSt := r.db.QueryBuilder.
			Update("contact_messages").
			Set("status", domain.TicketStatusResponded).
			Set("updated_at", sq.Expr("now()")).
			Where(sq.Eq{"id": reply.MessageID})

		sql, args, err = updateSt.ToSql()
		if err != nil {
			return err
		}

		ct, err := tx.Exec(ctx, sql, args...)
		if err != nil {
			return err
		}
		if ct.RowsAffected() == 0 {
			return domain.ErrDataNotFound
		}
		return nil
	})
}

func (r *Repository) DeleteTicket(ctx context.Context, ticketID uint64) error {
	statement := r.db.QueryBuilder.
		Delete("contact_messages").
		Where(sq.Eq{"id": ticketID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	ct, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if ct.RowsAffected() == 0 {
		return domain.ErrDataNotFound
	}
	return nil
}

func (r *Repository) ReadAdminStats(ctx context.Context) (*domain.AdminStats, error) {
	stats := domain.AdminStats{}

	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM users),
			(SELECT count(*) FROM products),
			(SELECT count(*) FROM orders WHERE status IN ('PLACED', 'CONFIRMED')),
			(SELECT count(*) FROM contact_messages WHERE status = 'OPEN')
	`).Scan(&stats.Users, &stats.Products, &stats.OrdersPending, &stats.TicketsOpen)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}
