package add_cart_item

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	"github.com/m04kA/SMC-StorefrontService/internal/infra/session"
	catalogRepo "github.com/m04kA/SMC-StorefrontService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-StorefrontService/internal/pricing"
	"github.com/m04kA/SMC-StorefrontService/internal/slots"
)

// UseCase use case для добавления товара в корзину
// Добавление проходит через цепочку проверок: валидация выбора,
// полнота кастомизации, полнота расписания и остаток на складе
type UseCase struct {
	cfg          *domain.ScheduleConfig
	catalog      CatalogReader
	ledger       CapacitySource
	sessions     SessionStore
	timeProvider TimeProvider
	horizonDays  int
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	cfg *domain.ScheduleConfig,
	catalog CatalogReader,
	ledger CapacitySource,
	sessions SessionStore,
	horizonDays int,
	logger Logger,
) *UseCase {
	if horizonDays <= 0 {
		horizonDays = domain.DefaultHorizonDays
	}
	return &UseCase{
		cfg:          cfg,
		catalog:      catalog,
		ledger:       ledger,
		sessions:     sessions,
		timeProvider: &RealTimeProvider{},
		horizonDays:  horizonDays,
		logger:       logger,
	}
}

// Execute выполняет use case добавления товара в корзину
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AddCartItem: session=%s product=%s variant=%s quantity=%d",
		req.SessionID, req.ProductSlug, req.VariantID, req.Quantity)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AddCartItem: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем сессию покупателя
	sess, err := uc.sessions.Get(req.SessionID)
	if err != nil {
		uc.logger.Warn("AddCartItem: session %s not found", req.SessionID)
		return nil, ErrSessionNotFound
	}

	// 3. Получаем товар из каталога
	product, err := uc.catalog.GetBySlug(ctx, req.ProductSlug)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrProductNotFound) {
			uc.logger.Warn("AddCartItem: product %s not found", req.ProductSlug)
			return nil, ErrProductNotFound
		}
		uc.logger.Error("AddCartItem: failed to load product %s: %v", req.ProductSlug, err)
		return nil, fmt.Errorf("%w: load product: %v", ErrInternal, err)
	}

	// 4. Добавляем в корзину под блокировкой сессии
	var resp *Response
	err = sess.Do(func(sess *session.Session) error {
		var doErr error
		if product.IsCustomizable {
			resp, doErr = uc.addCustomizable(ctx, sess, product, req)
		} else {
			resp, doErr = uc.addStandard(ctx, sess, product, req)
		}
		return doErr
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("AddCartItem: session=%s item=%s final=%s cart_total=%s",
		req.SessionID, resp.ItemID, resp.FinalPrice, resp.MonetaryTotal)
	return resp, nil
}

// addCustomizable добавляет кастомизируемый товар
// Кастомизация должна быть полной (все обязательные группы заполнены),
// а выбор расписания - составлять действующую метку времени исполнения
func (uc *UseCase) addCustomizable(ctx context.Context, sess *session.Session, product *domain.Product, req *Request) (*Response, error) {
	if err := validateSelections(product, req.Selections); err != nil {
		uc.logger.Warn("AddCartItem: selection validation failed: %v", err)
		return nil, err
	}

	// Проверяем полноту кастомизации
	if missing := pricing.MissingMandatoryGroups(product.CustomizationGroups, req.Selections); len(missing) > 0 {
		uc.logger.Warn("AddCartItem: session=%s missing mandatory groups %v", req.SessionID, missing)
		return nil, fmt.Errorf("%w: %v", ErrCustomizationIncomplete, missing)
	}

	// Проверяем полноту расписания
	fulfillmentAt, err := uc.composedFulfillment(ctx, sess, product.MinLeadTimeHours)
	if err != nil {
		return nil, err
	}
	if fulfillmentAt == nil {
		uc.logger.Warn("AddCartItem: session=%s has no composed fulfillment timestamp", req.SessionID)
		return nil, ErrScheduleRequired
	}

	// Рассчитываем итоговую цену по выбранным опциям
	finalPrice := pricing.FinalPrice(product.BasePrice, product.CustomizationGroups, req.Selections)

	item := sess.Cart.AddItem(domain.CartItem{
		ProductSlug:   product.Slug,
		ProductName:   product.Name,
		Quantity:      req.Quantity,
		UnitPrice:     product.BasePrice,
		FinalPrice:    finalPrice,
		IsCustom:      true,
		Selections:    req.Selections,
		FulfillmentAt: fulfillmentAt,
	})

	return uc.buildResponse(sess, item), nil
}

// addStandard добавляет стандартный товар
// Добавление ограничено остатком на складе; метка времени исполнения
// прикрепляется, если сессия уже составила её
func (uc *UseCase) addStandard(ctx context.Context, sess *session.Session, product *domain.Product, req *Request) (*Response, error) {
	if req.VariantID == "" {
		return nil, fmt.Errorf("%w: variantID is required for standard products", ErrInvalidInput)
	}
	if product.StandardOptions == nil {
		return nil, ErrVariantNotFound
	}

	variant, ok := product.StandardOptions.VariantByID(req.VariantID)
	if !ok {
		uc.logger.Warn("AddCartItem: variant %s/%s not found", req.ProductSlug, req.VariantID)
		return nil, ErrVariantNotFound
	}
	if req.Quantity > variant.Stock {
		uc.logger.Warn("AddCartItem: variant %s/%s stock %d below requested %d",
			req.ProductSlug, req.VariantID, variant.Stock, req.Quantity)
		return nil, ErrOutOfStock
	}

	fulfillmentAt, err := uc.composedFulfillment(ctx, sess, 0)
	if err != nil {
		return nil, err
	}

	item := sess.Cart.AddItem(domain.CartItem{
		ProductSlug:   product.Slug,
		ProductName:   product.Name,
		VariantID:     variant.VariantID,
		Quantity:      req.Quantity,
		UnitPrice:     variant.Price,
		FinalPrice:    variant.Price,
		IsCustom:      false,
		FulfillmentAt: fulfillmentAt,
	})

	return uc.buildResponse(sess, item), nil
}

// composedFulfillment перепроверяет выбор расписания сессии против свежего
// снимка загрузки, прежде чем доверять его метке времени
// Товар может нести собственный минимальный срок изготовления,
// который ужесточает общий минимальный срок магазина
func (uc *UseCase) composedFulfillment(ctx context.Context, sess *session.Session, productLeadHours int) (*time.Time, error) {
	effective := *uc.cfg
	if productLeadHours > effective.MinLeadTimeHours {
		effective.MinLeadTimeHours = productLeadHours
	}

	dates, err := slots.OfferableDates(ctx, &effective, uc.ledger, uc.timeProvider.Now(), uc.horizonDays)
	if err != nil {
		uc.logger.Error("AddCartItem: failed to compute offerable dates: %v", err)
		return nil, fmt.Errorf("%w: offerable dates: %v", ErrInternal, err)
	}

	if date, ok := sess.Selection.SelectedDate(); ok {
		offeredForDate, err := slots.OfferableSlots(ctx, &effective, uc.ledger, date)
		if err != nil {
			uc.logger.Error("AddCartItem: failed to compute offerable slots: %v", err)
			return nil, fmt.Errorf("%w: offerable slots: %v", ErrInternal, err)
		}
		sess.Selection.Revalidate(dates, offeredForDate)
	} else {
		sess.Selection.Revalidate(dates, nil)
	}

	if ts, ok := sess.Selection.ComposedTimestamp(); ok {
		return &ts, nil
	}
	return nil, nil
}

func (uc *UseCase) buildResponse(sess *session.Session, item domain.CartItem) *Response {
	return &Response{
		ItemID:         item.ID,
		ProductName:    item.ProductName,
		UnitPrice:      item.UnitPrice,
		FinalPrice:     item.FinalPrice,
		FulfillmentAt:  item.FulfillmentAt,
		TotalItemCount: sess.Cart.TotalItemCount(),
		MonetaryTotal:  sess.Cart.MonetaryTotal(),
	}
}
