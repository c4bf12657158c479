package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopease/backend/internal/core/domain"
	"github.com/shopease/backend/internal/core/port"
)

var orderColumns = []string{"id", "buyer_email", "seller_email", "quantity", "status", "order_date", "product_id"}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	order := domain.Order{}
	err := row.Scan(
		&order.ID,
		&order.BuyerEmail,
		&order.SellerEmail,
		&order.Quantity,
		&order.Status,
		&order.OrderDate,
		&order.ProductID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &order, nil
}

// CreateOrder persists the order together with the stock mutation made by the
// reserve closure. The product row is locked first, so concurrent placements
// against the same product serialize and cannot both pass a stale stock check.
func (r *Repository) CreateOrder(ctx context.Context, order *domain.Order, reserve port.ReserveStockFn) (*domain.Order, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		product, err := r.readProductForUpdate(ctx, tx, order.ProductID)
		if err != nil {
			return err
		}

		if err := reserve(product); err != nil {
			return err
		}

		if err := r.updateProductTx(ctx, tx, product); err != nil {
			return err
		}

		statement := r.db.QueryBuilder.
			Insert("orders").
			Columns("buyer_email", "seller_email", "quantity", "status", "order_date", "product_id").
			Values(order.BuyerEmail, order.SellerEmail, order.Quantity,
				order.Status, order.OrderDate, order.ProductID).
			Suffix("returning id")

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		return tx.QueryRow(ctx, sql, args...).Scan(&order.ID)
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *Repository) ReadOrder(ctx context.Context, orderID uint64) (*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"id": orderID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	order, err := scanOrder(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, err
	}

	product, err := r.ReadProduct(ctx, order.ProductID)
	if err != nil && err != domain.ErrDataNotFound {
		return nil, err
	}
	order.Product = product

	return order, nil
}

// UpdateOrderWithProduct is the single-writer path for status changes. Both
// rows are locked (order first, then product) before fn sees them, so the
// status fn reads is the committed one and two concurrent transitions on the
// same order cannot both apply.
func (r *Repository) UpdateOrderWithProduct(ctx context.Context, orderID uint64, fn port.UpdateOrderFn) (*domain.Order, error) {
	var order *domain.Order

	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		statement := r.db.QueryBuilder.
			Select(orderColumns...).
			From("orders").
			Where(sq.Eq{"id": orderID}).
			Suffix("FOR UPDATE")

		sql, args, err := statement.ToSql()
		if err != nil {
			return err
		}

		order, err = scanOrder(tx.QueryRow(ctx, sql, args...))
		if err != nil {
			return err
		}

		product, err := r.readProductForUpdate(ctx, tx, order.ProductID)
		if err != nil {
			return err
		}

		if err := fn(order, product); err != nil {
			return err
		}

		if err := r.updateProductTx(ctx, tx, product); err != nil {
			return err
		}
		order.Product = product

		update := r.db.QueryBuilder.
			Update("orders").
			Set("status", order.Status).
			Where(sq.Eq{"id": order.ID})

		sql, args, err = update.ToSql()
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, sql, args...)
		return err
	})
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *Repository) listOrders(ctx context.Context, statement sq.SelectBuilder) ([]*domain.Order, error) {
	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, order)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	for _, order := range list {
		product, err := r.ReadProduct(ctx, order.ProductID)
		if err != nil {
			if err == domain.ErrDataNotFound {
				continue
			}
			return nil, err
		}
		order.Product = product
	}

	return list, nil
}

func (r *Repository) ListOrdersByBuyer(ctx context.Context, buyerEmail string) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"buyer_email": buyerEmail}).
		OrderBy("id DESC")
	return r.listOrders(ctx, statement)
}

func (r *Repository) ListOrdersBySeller(ctx context.Context, sellerEmail string, statuses []domain.OrderStatus) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		Where(sq.Eq{"seller_email": sellerEmail}).
		OrderBy("id DESC")
	if len(statuses) > 0 {
		statement = statement.Where(sq.Eq{"status": statuses})
	}
	return r.listOrders(ctx, statement)
}

func (r *Repository) ListOrders(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	statement := r.db.QueryBuilder.
		Select(orderColumns...).
		From("orders").
		OrderBy("id DESC")
	if status != "" {
		statement = statement.Where(sq.Eq{"status": status})
	}
	return r.listOrders(ctx, statement)
}

func (r *Repository) DeleteOrder(ctx context.Context, orderID uint64) error {
	statement := r.db.QueryBuilder.
		Delete("orders").
		Where(sq.Eq{"id": orderID})

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
