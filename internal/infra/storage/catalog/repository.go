package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	"github.com/m04kA/SMC-StorefrontService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-StorefrontService/pkg/txmanager"
)

// DBExecutor соединение с БД, через которое репозиторий выполняет запросы
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Repository каталог товаров поверх postgres
type Repository struct {
	db DBExecutor
}

// NewRepository создает репозиторий каталога над db
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var productColumns = []string{
	"id",
	"name",
	"slug",
	"description",
	"category",
	"image_urls",
	"base_price",
	"is_customizable",
	"min_lead_time_hours",
	"option_key",
	"option_label",
}

// GetBySlug загружает товар вместе с его группами кастомизации или
// стандартными вариантами
// Возвращает ErrProductNotFound, когда slug ничему не соответствует
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(productColumns...).
		From("products").
		Where(squirrel.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	product, err := scanProduct(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := r.loadDetails(ctx, executor, product); err != nil {
		return nil, err
	}
	return product, nil
}

// List загружает весь каталог в порядке добавления, вместе с деталями
func (r *Repository) List(ctx context.Context) ([]*domain.Product, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(productColumns...).
		From("products").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	for _, product := range products {
		if err := r.loadDetails(ctx, executor, product); err != nil {
			return nil, err
		}
	}
	return products, nil
}

// DecrementStock атомарно уменьшает остаток варианта на quantity, не позволяя
// уйти в минус. Возвращает ErrInsufficientStock, когда остатка не хватает,
// и ErrVariantNotFound, когда вариант не существует
func (r *Repository) DecrementStock(ctx context.Context, productID, variantID string, quantity int) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("product_variants").
		Set("stock", squirrel.Expr("stock - ?", quantity)).
		Where(squirrel.Eq{"product_id": productID, "variant_id": variantID}).
		Where(squirrel.Expr("stock >= ?", quantity)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DecrementStock - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DecrementStock - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DecrementStock - rows affected: %v", ErrExecQuery, err)
	}
	if affected > 0 {
		return nil
	}

	existsQuery, existsArgs, err := psqlbuilder.Select("1").
		From("product_variants").
		Where(squirrel.Eq{"product_id": productID, "variant_id": variantID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DecrementStock - build exists query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, existsQuery, existsArgs...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrVariantNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: DecrementStock - scan exists: %v", ErrScanRow, err)
	}
	return ErrInsufficientStock
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var product domain.Product
	var imageURLs pq.StringArray
	var optionKey, optionLabel sql.NullString

	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Slug,
		&product.Description,
		&product.Category,
		&imageURLs,
		&product.BasePrice,
		&product.IsCustomizable,
		&product.MinLeadTimeHours,
		&optionKey,
		&optionLabel,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan product: %v", ErrScanRow, err)
	}

	product.ImageURLs = imageURLs
	if !product.IsCustomizable && optionKey.Valid {
		product.StandardOptions = &domain.StandardOption{
			OptionKey:   optionKey.String,
			OptionLabel: optionLabel.String,
		}
	}
	return &product, nil
}

func (r *Repository) loadDetails(ctx context.Context, executor DBExecutor, product *domain.Product) error {
	if product.IsCustomizable {
		groups, err := r.getGroups(ctx, executor, product.ID)
		if err != nil {
			return err
		}
		product.CustomizationGroups = groups
		return nil
	}

	variants, err := r.getVariants(ctx, executor, product.ID)
	if err != nil {
		return err
	}
	if product.StandardOptions != nil {
		product.StandardOptions.Variants = variants
	}
	return nil
}

func (r *Repository) getGroups(ctx context.Context, executor DBExecutor, productID string) ([]domain.OptionGroup, error) {
	query, args, err := psqlbuilder.Select(
		"group_key",
		"group_label",
		"group_type",
		"is_mandatory",
		"max_length",
		"price_adjustment",
	).
		From("option_groups").
		Where(squirrel.Eq{"product_id": productID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getGroups - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getGroups - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	groups := make([]domain.OptionGroup, 0)
	for rows.Next() {
		var group domain.OptionGroup
		if err := rows.Scan(
			&group.GroupKey,
			&group.GroupLabel,
			&group.Type,
			&group.IsMandatory,
			&group.MaxLength,
			&group.PriceAdjustment,
		); err != nil {
			return nil, fmt.Errorf("%w: getGroups - scan row: %v", ErrScanRow, err)
		}
		groups = append(groups, group)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getGroups - rows error: %v", ErrScanRow, err)
	}

	for i := range groups {
		if groups[i].Type == domain.GroupTextInput {
			continue
		}
		choices, err := r.getChoices(ctx, executor, productID, groups[i].GroupKey)
		if err != nil {
			return nil, err
		}
		groups[i].Choices = choices
	}
	return groups, nil
}

func (r *Repository) getChoices(ctx context.Context, executor DBExecutor, productID, groupKey string) ([]domain.Choice, error) {
	query, args, err := psqlbuilder.Select(
		"choice_id",
		"label",
		"price_adjustment",
	).
		From("option_choices").
		Where(squirrel.Eq{"product_id": productID, "group_key": groupKey}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getChoices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getChoices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	choices := make([]domain.Choice, 0)
	for rows.Next() {
		var choice domain.Choice
		if err := rows.Scan(&choice.ChoiceID, &choice.Label, &choice.PriceAdjustment); err != nil {
			return nil, fmt.Errorf("%w: getChoices - scan row: %v", ErrScanRow, err)
		}
		choices = append(choices, choice)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getChoices - rows error: %v", ErrScanRow, err)
	}
	return choices, nil
}

func (r *Repository) getVariants(ctx context.Context, executor DBExecutor, productID string) ([]domain.Variant, error) {
	query, args, err := psqlbuilder.Select(
		"variant_id",
		"label",
		"price",
		"stock",
	).
		From("product_variants").
		Where(squirrel.Eq{"product_id": productID}).
		OrderBy("position ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getVariants - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getVariants - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	variants := make([]domain.Variant, 0)
	for rows.Next() {
		var variant domain.Variant
		if err := rows.Scan(&variant.VariantID, &variant.Label, &variant.Price, &variant.Stock); err != nil {
			return nil, fmt.Errorf("%w: getVariants - scan row: %v", ErrScanRow, err)
		}
		variants = append(variants, variant)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getVariants - rows error: %v", ErrScanRow, err)
	}
	return variants, nil
}
