package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	"github.com/m04kA/SMC-StorefrontService/internal/infra/session"
	capacityRepo "github.com/m04kA/SMC-StorefrontService/internal/infra/storage/capacity"
	catalogRepo "github.com/m04kA/SMC-StorefrontService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-StorefrontService/internal/slots"
	"github.com/m04kA/SMC-StorefrontService/pkg/types"
)

// UseCase use case оформления заказа из корзины сессии
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// резервы слотов и списания остатков либо применяются все, либо ни одного
type UseCase struct {
	cfg          *domain.ScheduleConfig
	ledger       CapacitySource
	reserver     CapacityReserver
	catalog      CatalogReader
	stock        StockDecrementer
	sessions     SessionStore
	txManager    TransactionManager
	timeProvider TimeProvider
	deliveryFee  decimal.Decimal
	horizonDays  int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	cfg *domain.ScheduleConfig,
	ledger CapacitySource,
	reserver CapacityReserver,
	catalog CatalogReader,
	stock StockDecrementer,
	sessions SessionStore,
	txManager TransactionManager,
	deliveryFee decimal.Decimal,
	horizonDays int,
	logger Logger,
) *UseCase {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultHorizonDays
	}
	return &UseCase{
		cfg:          cfg,
		ledger:       ledger,
		reserver:     reserver,
		catalog:      catalog,
		stock:        stock,
		sessions:     sessions,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		deliveryFee:  deliveryFee,
		horizonDays:  horizonDays,
		logger:       logger,
	}
}

// Execute выполняет use case оформления заказа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("Checkout: session=%s delivery=%s payment=%s",
		req.SessionID, req.Delivery.Method, req.PaymentMethod)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("Checkout: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сессию покупателя
	sess, err := uc.sessions.Get(req.SessionID)
	if err != nil {
		uc.logger.Warn("Checkout: session %s not found", req.SessionID)
		return nil, ErrSessionNotFound
	}

	var resp *Response
	err = sess.Do(func(sess *session.Session) error {
		items := sess.Cart.Items()
		if len(items) == 0 {
			uc.logger.Warn("Checkout: session=%s cart is empty", req.SessionID)
			return ErrEmptyCart
		}

		// 3. Отказоустойчивая перепроверка: каждая метка времени исполнения
		// должна все еще предлагаться на момент оформления
		if err := uc.revalidateFulfillment(ctx, items); err != nil {
			return err
		}

		// 4. Резервы слотов и списания остатков в сериализуемой транзакции
		err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
			if err := uc.reserveSlots(txCtx, items); err != nil {
				return err
			}
			return uc.decrementStock(txCtx, items)
		})
		if err != nil {
			return err
		}

		// 5. Считаем суммы заказа
		subtotal := sess.Cart.MonetaryTotal()
		fee := decimal.Zero
		if req.Delivery.Method == domain.DeliveryCourier {
			fee = uc.deliveryFee
		}

		resp = &Response{
			OrderNumber:   uuid.NewString(),
			Items:         orderLines(items),
			Subtotal:      subtotal,
			DeliveryFee:   fee,
			GrandTotal:    subtotal.Add(fee),
			PaymentMethod: req.PaymentMethod,
			PlacedAt:      uc.timeProvider.Now(),
		}

		// 6. Заказ размещен - очищаем состояние сессии
		sess.Cart.Clear()
		sess.Selection.Reset()
		return nil
	})
	if err != nil {
		return nil, err
	}

	// 7. Сессия отработала свое
	uc.sessions.Delete(req.SessionID)

	uc.logger.Info("Checkout: session=%s order=%s items=%d total=%s",
		req.SessionID, resp.OrderNumber, len(resp.Items), resp.GrandTotal)
	return resp, nil
}

// revalidateFulfillment проверяет, что дата и слот каждой позиции с меткой
// времени все еще предлагаются. Предлагаемые наборы считаются один раз на
// каждую уникальную дату
func (uc *UseCase) revalidateFulfillment(ctx context.Context, items []domain.CartItem) error {
	dates, err := slots.OfferableDates(ctx, uc.cfg, uc.ledger, uc.timeProvider.Now(), uc.horizonDays)
	if err != nil {
		uc.logger.Error("Checkout: failed to compute offerable dates: %v", err)
		return fmt.Errorf("%w: offerable dates: %v", ErrInternal, err)
	}

	slotsByDate := make(map[string][]types.TimeString)
	for _, item := range items {
		if item.FulfillmentAt == nil {
			continue
		}

		dateISO := item.FulfillmentAt.Format(domain.DateFormat)
		if !slots.ContainsDate(dates, dateISO) {
			uc.logger.Warn("Checkout: item=%s date %s is no longer offerable", item.ID, dateISO)
			return ErrScheduleNotOfferable
		}

		offered, ok := slotsByDate[dateISO]
		if !ok {
			offered, err = slots.OfferableSlots(ctx, uc.cfg, uc.ledger, slots.StartOfDay(*item.FulfillmentAt))
			if err != nil {
				uc.logger.Error("Checkout: failed to compute offerable slots for %s: %v", dateISO, err)
				return fmt.Errorf("%w: offerable slots: %v", ErrInternal, err)
			}
			slotsByDate[dateISO] = offered
		}

		slot := types.NewTimeString(*item.FulfillmentAt)
		if !slots.ContainsSlot(offered, slot) {
			uc.logger.Warn("Checkout: item=%s slot %s %s is no longer offerable", item.ID, dateISO, slot)
			return ErrScheduleNotOfferable
		}
	}
	return nil
}

// reserveSlots занимает по одному месту в каждом уникальном слоте заказа
// Позиции с общей меткой времени делят один резерв
func (uc *UseCase) reserveSlots(ctx context.Context, items []domain.CartItem) error {
	type slotKey struct {
		dateISO string
		slot    types.TimeString
	}

	reserved := make(map[slotKey]struct{})
	for _, item := range items {
		if item.FulfillmentAt == nil {
			continue
		}

		key := slotKey{
			dateISO: item.FulfillmentAt.Format(domain.DateFormat),
			slot:    types.NewTimeString(*item.FulfillmentAt),
		}
		if _, done := reserved[key]; done {
			continue
		}

		if err := uc.reserver.ReserveSlot(ctx, key.dateISO, key.slot); err != nil {
			if errors.Is(err, capacityRepo.ErrSlotExhausted) {
				uc.logger.Warn("Checkout: slot %s %s exhausted", key.dateISO, key.slot)
				return ErrSlotExhausted
			}
			uc.logger.Error("Checkout: failed to reserve slot %s %s: %v", key.dateISO, key.slot, err)
			return fmt.Errorf("%w: reserve slot: %v", ErrInternal, err)
		}
		reserved[key] = struct{}{}
	}
	return nil
}

// decrementStock списывает остатки по стандартным позициям
func (uc *UseCase) decrementStock(ctx context.Context, items []domain.CartItem) error {
	for _, item := range items {
		if item.IsCustom || item.VariantID == "" {
			continue
		}

		product, err := uc.catalog.GetBySlug(ctx, item.ProductSlug)
		if err != nil {
			if errors.Is(err, catalogRepo.ErrProductNotFound) {
				uc.logger.Warn("Checkout: product %s no longer in catalog", item.ProductSlug)
				return ErrProductNotFound
			}
			uc.logger.Error("Checkout: failed to load product %s: %v", item.ProductSlug, err)
			return fmt.Errorf("%w: load product: %v", ErrInternal, err)
		}

		err = uc.stock.DecrementStock(ctx, product.ID, item.VariantID, item.Quantity)
		if err != nil {
			switch {
			case errors.Is(err, catalogRepo.ErrInsufficientStock):
				uc.logger.Warn("Checkout: insufficient stock for %s/%s x%d",
					item.ProductSlug, item.VariantID, item.Quantity)
				return ErrInsufficientStock
			case errors.Is(err, catalogRepo.ErrVariantNotFound):
				uc.logger.Warn("Checkout: variant %s/%s no longer exists", item.ProductSlug, item.VariantID)
				return ErrProductNotFound
			default:
				uc.logger.Error("Checkout: failed to decrement stock for %s/%s: %v",
					item.ProductSlug, item.VariantID, err)
				return fmt.Errorf("%w: decrement stock: %v", ErrInternal, err)
			}
		}
	}
	return nil
}

func orderLines(items []domain.CartItem) []OrderLine {
	lines := make([]OrderLine, len(items))
	for i, item := range items {
		lines[i] = OrderLine{
			ProductSlug:   item.ProductSlug,
			ProductName:   item.ProductName,
			VariantID:     item.VariantID,
			Quantity:      item.Quantity,
			FinalPrice:    item.FinalPrice,
			LineTotal:     item.LineTotal(),
			FulfillmentAt: item.FulfillmentAt,
		}
	}
	return lines
}
