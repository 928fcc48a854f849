package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	capacityRepo "github.com/m04kA/SMC-StorefrontService/internal/infra/storage/capacity"
	catalogRepo "github.com/m04kA/SMC-StorefrontService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-StorefrontService/internal/infra/session"
	"github.com/m04kA/SMC-StorefrontService/pkg/types"
)

type stubLedger struct {
	entries map[string]*domain.CapacityLimit
}

func (s *stubLedger) GetCapacityForDate(_ context.Context, dateISO string) (*domain.CapacityLimit, error) {
	return s.entries[dateISO], nil
}

type stubReserver struct {
	reserved  []string
	exhausted bool
}

func (s *stubReserver) ReserveSlot(_ context.Context, dateISO string, slot types.TimeString) error {
	if s.exhausted {
		return capacityRepo.ErrSlotExhausted
	}
	s.reserved = append(s.reserved, dateISO+" "+slot.String())
	return nil
}

type stubCatalog struct {
	products map[string]*domain.Product
}

func (s *stubCatalog) GetBySlug(_ context.Context, slug string) (*domain.Product, error) {
	if p, ok := s.products[slug]; ok {
		return p, nil
	}
	return nil, catalogRepo.ErrProductNotFound
}

type stubStock struct {
	decrements   []string
	insufficient bool
}

func (s *stubStock) DecrementStock(_ context.Context, productID, variantID string, quantity int) error {
	if s.insufficient {
		return catalogRepo.ErrInsufficientStock
	}
	s.decrements = append(s.decrements, productID+"/"+variantID)
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func scheduleConfig() *domain.ScheduleConfig {
	return &domain.ScheduleConfig{
		DefaultWindow: domain.TimeWindow{
			StartTime: types.TimeString("09:00"),
			EndTime:   types.TimeString("17:00"),
		},
		SlotDurationMinutes: 60,
		MinLeadTimeHours:    48,
		DayExceptions:       map[time.Weekday]domain.DayException{},
	}
}

type testEnv struct {
	uc       *UseCase
	store    *session.Store
	sess     *session.Session
	ledger   *stubLedger
	reserver *stubReserver
	stock    *stubStock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := session.NewStore()
	sess := store.Create()
	ledger := &stubLedger{entries: map[string]*domain.CapacityLimit{}}
	reserver := &stubReserver{}
	stock := &stubStock{}

	catalog := &stubCatalog{products: map[string]*domain.Product{
		"cupcakes": {ID: "p2", Name: "Капкейки", Slug: "cupcakes"},
	}}

	uc := NewUseCase(
		scheduleConfig(),
		ledger,
		reserver,
		catalog,
		stock,
		store,
		passthroughTxManager{},
		decimal.NewFromFloat(5.00),
		7,
		nopLogger{},
	)
	uc.timeProvider = &fixedClock{now: time.Date(2025, 11, 13, 10, 0, 0, 0, time.UTC)}

	return &testEnv{uc: uc, store: store, sess: sess, ledger: ledger, reserver: reserver, stock: stock}
}

func fulfillmentAt(day, hour int) *time.Time {
	ts := time.Date(2025, 11, day, hour, 0, 0, 0, time.UTC)
	return &ts
}

func (e *testEnv) addCustomItem(quantity int, at *time.Time) {
	price := decimal.NewFromFloat(40.00)
	e.sess.Cart.AddItem(domain.CartItem{
		ProductSlug:   "custom-cake",
		ProductName:   "Торт на заказ",
		Quantity:      quantity,
		UnitPrice:     decimal.NewFromFloat(25.00),
		FinalPrice:    price,
		IsCustom:      true,
		FulfillmentAt: at,
	})
}

func (e *testEnv) addStandardItem(quantity int) {
	price := decimal.NewFromFloat(12.00)
	e.sess.Cart.AddItem(domain.CartItem{
		ProductSlug: "cupcakes",
		ProductName: "Капкейки",
		VariantID:   "box6",
		Quantity:    quantity,
		UnitPrice:   price,
		FinalPrice:  price,
	})
}

func validRequest(sessionID string, method domain.DeliveryMethod) *Request {
	return &Request{
		SessionID: sessionID,
		Delivery: domain.DeliveryData{
			Method:    method,
			FirstName: "Анна",
			LastName:  "Иванова",
			Email:     "anna@example.com",
			Phone:     "+79991234567",
			Address:   "ул. Ленина, 1",
			City:      "Москва",
			ZipCode:   "101000",
		},
		PaymentMethod: domain.PaymentCard,
	}
}

func TestExecute_PlacesOrderAndTearsDownSession(t *testing.T) {
	env := newTestEnv(t)
	env.addCustomItem(1, fulfillmentAt(15, 10))
	env.addStandardItem(2)

	resp, err := env.uc.Execute(context.Background(), validRequest(env.sess.ID, domain.DeliveryCourier))
	require.NoError(t, err)

	assert.NotEmpty(t, resp.OrderNumber)
	assert.Len(t, resp.Items, 2)
	assert.True(t, decimal.NewFromFloat(64.00).Equal(resp.Subtotal), "got %s", resp.Subtotal)
	assert.True(t, decimal.NewFromFloat(5.00).Equal(resp.DeliveryFee))
	assert.True(t, decimal.NewFromFloat(69.00).Equal(resp.GrandTotal), "got %s", resp.GrandTotal)

	assert.Equal(t, []string{"2025-11-15 10:00"}, env.reserver.reserved)
	assert.Equal(t, []string{"p2/box6"}, env.stock.decrements)

	// Сессия снесена после успешного оформления
	_, err = env.store.Get(env.sess.ID)
	assert.Error(t, err)
}

func TestExecute_PickupHasNoDeliveryFee(t *testing.T) {
	env := newTestEnv(t)
	env.addStandardItem(1)

	resp, err := env.uc.Execute(context.Background(), validRequest(env.sess.ID, domain.DeliveryPickup))
	require.NoError(t, err)

	assert.True(t, resp.DeliveryFee.IsZero())
	assert.True(t, resp.Subtotal.Equal(resp.GrandTotal))
}

func TestExecute_EmptyCartFails(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.Execute(context.Background(), validRequest(env.sess.ID, domain.DeliveryPickup))

	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestExecute_SharedSlotReservedOnce(t *testing.T) {
	env := newTestEnv(t)
	env.addCustomItem(1, fulfillmentAt(15, 10))
	env.addCustomItem(1, fulfillmentAt(15, 10))

	_, err := env.uc.Execute(context.Background(), validRequest(env.sess.ID, domain.DeliveryPickup))
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-11-15 10:00"}, env.reserver.reserved)
}

func TestExecute_VanishedSlotFailsWithoutSideEffects(t *testing.T) {
	env := newTestEnv(t)
	env.addCustomItem(1, fulfillmentAt(15, 10))
	env.addStandardItem(1)

	// Слот 10:00 исчерпан конкурентно после выбора
	env.ledger.entries["2025-11-15"] = &domain.CapacityLimit{
		Date: "2025-11-15",
		TimeSlotCapacity: []domain.TimeSlotCapacity{
			{TimeSlot: "10:00", Limit: 1, BookedCount: 1},
		},
	}

	_, err := env.uc.Execute(context.Background(), validRequest(env.sess.ID, domain.DeliveryPickup))

	assert.ErrorIs(t, err, ErrScheduleNotOfferable)
	assert.Empty(t, env.reserver.reserved)
	assert.Empty(t, env.stock.decrements)
	assert.Equal(t, 2, env.sess.Cart.Len())
}

func TestExecute_BlackoutDateFails(t *testing.T) {
	env := newTestEnv(t)
	env.addCustomItem(1, fulfillmentAt(15, 10))

	env.ledger.entries["2025-11-15"] = &domain.CapacityLimit{
		Date:          "2025-11-15",
		IsBlackoutDay: true,
	}

	_, err := env.uc.Execute(context.Background(), validRequest(env.sess.ID, domain.DeliveryPickup))

	assert.ErrorIs(t, err, ErrScheduleNotOfferable)
}

func TestExecute_SlotExhaustedAtReservation(t *testing.T) {
	env := newTestEnv(t)
	env.addCustomItem(1, fulfillmentAt(15, 10))
	env.reserver.exhausted = true

	_, err := env.uc.Execute(context.Background(), validRequest(env.sess.ID, domain.DeliveryPickup))

	assert.ErrorIs(t, err, ErrSlotExhausted)
	assert.Equal(t, 1, env.sess.Cart.Len())
}

func TestExecute_InsufficientStockFails(t *testing.T) {
	env := newTestEnv(t)
	env.addStandardItem(3)
	env.stock.insufficient = true

	_, err := env.uc.Execute(context.Background(), validRequest(env.sess.ID, domain.DeliveryPickup))

	assert.ErrorIs(t, err, ErrInsufficientStock)
}

func TestExecute_CourierRequiresAddress(t *testing.T) {
	env := newTestEnv(t)
	env.addStandardItem(1)

	req := validRequest(env.sess.ID, domain.DeliveryCourier)
	req.Delivery.Address = ""

	_, err := env.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_UnknownPaymentMethodFails(t *testing.T) {
	env := newTestEnv(t)
	env.addStandardItem(1)

	req := validRequest(env.sess.ID, domain.DeliveryPickup)
	req.PaymentMethod = domain.PaymentMethod("cash")

	_, err := env.uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SessionNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.Execute(context.Background(), validRequest("missing", domain.DeliveryPickup))

	assert.ErrorIs(t, err, ErrSessionNotFound)
}
