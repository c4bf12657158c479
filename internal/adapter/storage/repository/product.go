package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/shopease/backend/internal/core/domain"
	"github.com/shopease/backend/internal/core/port"
)

var productColumns = []string{"id", "name", "description", "price", "stock", "category", "image_url", "seller_email", "active"}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	product := domain.Product{}
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
		&product.Category,
		&product.ImageURL,
		&product.SellerEmail,
		&product.Active,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrDataNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *Repository) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Insert("products").
		Columns("name", "description", "price", "stock", "category", "image_url", "seller_email", "active").
		Values(product.Name, product.Description, product.Price, product.Stock,
			product.Category, product.ImageURL, product.SellerEmail, product.Active).
		Suffix("returning id")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	err = r.db.QueryRow(ctx, sql, args...).Scan(&product.ID)
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *Repository) ReadProduct(ctx context.Context, productID uint64) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": productID})

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanProduct(r.db.QueryRow(ctx, sql, args...))
}

// readProductForUpdate locks the product row for the rest of the transaction,
// serializing concurrent stock mutations on the same product.
func (r *Repository) readProductForUpdate(ctx context.Context, tx pgx.Tx, productID uint64) (*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": productID}).
		Suffix("FOR UPDATE")

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	return scanProduct(tx.QueryRow(ctx, sql, args...))
}

func (r *Repository) updateProductTx(ctx context.Context, tx pgx.Tx, product *domain.Product) error {
	statement := r.db.QueryBuilder.
		Update("products").
		Set("name", product.Name).
		Set("description", product.Description).
		Set("price", product.Price).
		Set("stock", product.Stock).
		Set("category", product.Category).
		Set("image_url", product.ImageURL).
		Set("active", product.Active).
		Where(sq.Eq{"id": product.ID})

	sql, args, err := statement.ToSql()
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
}

func (r *Repository) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return r.updateProductTx(ctx, tx, product)
	})
	if err != nil {
		return nil, err
	}
	return product, nil
}

func (r *Repository) DeleteProduct(ctx context.Context, productID uint64) error {
	statement := r.db.QueryBuilder.
		Delete("products").
		Where(sq.Eq{"id": productID})

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

func (r *Repository) ListProducts(ctx context.Context, filter port.ProductFilter) ([]*domain.Product, error) {
	statement := r.db.QueryBuilder.
		Select(productColumns...).
		From("products")

	if filter.ActiveOnly {
		statement = statement.Where(sq.Eq{"active": true})
	}
	if filter.SellerEmail != "" {
		statement = statement.Where("lower(seller_email) = lower(?)", filter.SellerEmail)
	}
	if filter.Query != "" {
		statement = statement.Where(sq.ILike{"name": "%" + filter.Query + "%"})
	}
	if filter.Category != "" {
		statement = statement.Where("lower(category) = lower(?)", filter.Category)
	}

	orderBy := "name"
	switch filter.SortBy {
	case "price", "stock", "category":
		orderBy = filter.SortBy
	}
	if filter.SortDesc {
		orderBy += " DESC"
	}
	statement = statement.OrderBy(orderBy)

	sql, args, err := statement.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, product)
	}

	err = rows.Err()
	if err != nil {
		return nil, err
	}

	return list, nil
}
