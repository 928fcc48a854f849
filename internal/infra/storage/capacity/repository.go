package capacity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	"github.com/m04kA/SMC-StorefrontService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-StorefrontService/pkg/txmanager"
	"github.com/m04kA/SMC-StorefrontService/pkg/types"
)

// Repository журнал загрузки поверх postgres
type Repository struct {
	db DBExecutor
}

// NewRepository создает репозиторий журнала загрузки над db
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDate загружает запись журнала для ISO даты вместе с лимитами по
// слотам, упорядоченными по времени слота по возрастанию
// Возвращает ErrCapacityNotFound, когда у даты нет записи; вызывающая сторона
// трактует отсутствие записи как дату без ограничений и без блокировки
func (r *Repository) GetByDate(ctx context.Context, dateISO string) (*domain.CapacityLimit, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"capacity_date",
		"max_orders",
		"is_blackout_day",
	).
		From("capacity_days").
		Where(squirrel.Eq{"capacity_date": dateISO}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	var limit domain.CapacityLimit
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&limit.Date,
		&limit.MaxOrders,
		&limit.IsBlackoutDay,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrCapacityNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan day: %v", ErrScanRow, err)
	}

	slots, err := r.getSlots(ctx, executor, dateISO)
	if err != nil {
		return nil, err
	}
	limit.TimeSlotCapacity = slots

	return &limit, nil
}

func (r *Repository) getSlots(ctx context.Context, executor DBExecutor, dateISO string) ([]domain.TimeSlotCapacity, error) {
	query, args, err := psqlbuilder.Select(
		"time_slot",
		"slot_limit",
		"booked_count",
	).
		From("capacity_slots").
		Where(squirrel.Eq{"capacity_date": dateISO}).
		OrderBy("time_slot ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getSlots - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]domain.TimeSlotCapacity, 0)
	for rows.Next() {
		var slot domain.TimeSlotCapacity
		var timeSlot string
		if err := rows.Scan(&timeSlot, &slot.Limit, &slot.BookedCount); err != nil {
			return nil, fmt.Errorf("%w: getSlots - scan row: %v", ErrScanRow, err)
		}
		slot.TimeSlot = types.TimeString(timeSlot)
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

// ReserveSlot занимает одно место в слоте одним атомарным
// compare-and-increment: счетчик бронирований увеличивается только пока он
// ниже лимита, поэтому конкурентные резервы не могут переполнить слот
// Слот без строки в журнале не ограничен, и резерв для него - no-op
func (r *Repository) ReserveSlot(ctx context.Context, dateISO string, slot types.TimeString) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("capacity_slots").
		Set("booked_count", squirrel.Expr("booked_count + 1")).
		Where(squirrel.Eq{"capacity_date": dateISO, "time_slot": slot.String()}).
		Where(squirrel.Expr("booked_count < slot_limit")).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReserveSlot - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ReserveSlot - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ReserveSlot - rows affected: %v", ErrExecQuery, err)
	}
	if affected > 0 {
		return nil
	}

	// Счетчик не сдвинулся: либо слот не ограничен (нет строки), либо он
	// полностью занят. Различаем эти случаи
	existsQuery, existsArgs, err := psqlbuilder.Select("1").
		From("capacity_slots").
		Where(squirrel.Eq{"capacity_date": dateISO, "time_slot": slot.String()}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReserveSlot - build exists query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, existsQuery, existsArgs...).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: ReserveSlot - scan exists: %v", ErrScanRow, err)
	}
	return ErrSlotExhausted
}

// UpsertDay создает или обновляет запись уровня дня для даты
func (r *Repository) UpsertDay(ctx context.Context, limit *domain.CapacityLimit) error {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("capacity_days").
		Columns("capacity_date", "max_orders", "is_blackout_day").
		Values(limit.Date, limit.MaxOrders, limit.IsBlackoutDay).
		Suffix("ON CONFLICT (capacity_date) DO UPDATE SET max_orders = EXCLUDED.max_orders, is_blackout_day = EXCLUDED.is_blackout_day").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertDay - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertDay - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}
