package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopease/backend/internal/core/domain"
)

func (r *Repository) ListCartByBuyer(ctx context.Context, buyerEmail string) ([]*domain.CartItem, error) {
	statement := r.db.QueryBuilder.
		Select("id", "buyer_email", "product_id", "quantity").
		From("cart_items").
		Where(sq.Eq{"buyer_email": buyerEmail}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.CartItem, 0)
	for rows.Next() {
		item := domain.CartItem{}
		err := rows.Scan(&item.ID, &item.BuyerEmail, &item.ProductID, &item.Quantity)
		if err != nil {
			return nil, err
		}
		list = append(list, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, item := range list {
		product, err := r.ReadProduct(ctx, item.ProductID)
		if err != nil {
			if err == domain.ErrDataNotFound {
				continue
			}
			return nil, err
		}
		item.Product = product
	}

	return list, nil
}

func (r *Repository) AddCartItem(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	statement := r.db.QueryBuilder.
		Insert("cart_items").
		Columns("buyer_email", "product_id", "quantity").
		Values(item.BuyerEmail, item.ProductID, item.Quantity).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&item.ID)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return item, nil
}

func (r *Repository) RemoveCartItem(ctx context.Context, buyerEmail string, productID uint64) error {
	statement := r.db.QueryBuilder.
		Delete("cart_items").
		Where(sq.Eq{"buyer_email": buyerEmail, "product_id": productID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *Repository) ListWishlistByBuyer(ctx context.Context, buyerEmail string) ([]*domain.WishlistItem, error) {
	statement := r.db.QueryBuilder.
		Select("id", "buyer_email", "product_id").
		From("wishlist_items").
		Where(sq.Eq{"buyer_email": buyerEmail}).
		OrderBy("id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.WishlistItem, 0)
	for rows.Next() {
		item := domain.WishlistItem{}
		err := rows.Scan(&item.ID, &item.BuyerEmail, &item.ProductID)
		if err != nil {
			return nil, err
		}
		list = append(list, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, item := range list {
		product, err := r.ReadProduct(ctx, item.ProductID)
		if err != nil {
			if err == domain.ErrDataNotFound {
				continue
			}
			return nil, err
		}
		item.Product = product
	}

	return list, nil
}

func (r *Repository) AddWishlistItem(ctx context.Context, item *domain.WishlistItem) (*domain.WishlistItem, error) {
	statement := r.db.QueryBuilder.
		Insert("wishlist_items").
		Columns("buyer_email", "product_id").
		Values(item.BuyerEmail, item.ProductID).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&item.ID)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflictingData
		}
		return nil, err
	}
	return item, nil
}

func (r *Repository) RemoveWishlistItem(ctx context.Context, buyerEmail string, productID uint64) error {
	statement := r.db.QueryBuilder.
		Delete("wishlist_items").
		Where(sq.Eq{"buyer_email": buyerEmail, "product_id": productID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}
