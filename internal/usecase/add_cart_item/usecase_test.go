package add_cart_item

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
	catalogRepo "github.com/m04kA/SMC-StorefrontService/internal/infra/storage/catalog"
	"github.com/m04kA/SMC-StorefrontService/internal/infra/session"
	"github.com/m04kA/SMC-StorefrontService/internal/slots"
	"github.com/m04kA/SMC-StorefrontService/pkg/types"
)

type stubCatalog struct {
	products map[string]*domain.Product
}

func (s *stubCatalog) GetBySlug(_ context.Context, slug string) (*domain.Product, error) {
	if p, ok := s.products[slug]; ok {
		return p, nil
	}
	return nil, catalogRepo.ErrProductNotFound
}

type stubLedger struct {
	entries map[string]*domain.CapacityLimit
}

func (s *stubLedger) GetCapacityForDate(_ context.Context, dateISO string) (*domain.CapacityLimit, error) {
	return s.entries[dateISO], nil
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

func customCake(leadHours int) *domain.Product {
	return &domain.Product{
		ID:               "p1",
		Name:             "Торт на заказ",
		Slug:             "custom-cake",
		IsCustomizable:   true,
		BasePrice:        decimal.NewFromFloat(25.00),
		MinLeadTimeHours: leadHours,
		CustomizationGroups: []domain.OptionGroup{
			{
				GroupKey:    "size",
				Type:        domain.GroupSingleSelect,
				IsMandatory: true,
				Choices: []domain.Choice{
					{ChoiceID: "large", PriceAdjustment: decimal.NewFromFloat(15.00)},
				},
			},
		},
	}
}

func standardCupcakes() *domain.Product {
	return &domain.Product{
		ID:   "p2",
		Name: "Капкейки",
		Slug: "cupcakes",
		StandardOptions: &domain.StandardOption{
			OptionKey: "box-size",
			Variants: []domain.Variant{
				{VariantID: "box6", Price: decimal.NewFromFloat(12.00), Stock: 5},
			},
		},
	}
}

// testEnv собирает use case с фиксированными часами: 13.11 10:00,
// срок изготовления 48 часов, ближайшая дата исполнения - 15.11
type testEnv struct {
	uc    *UseCase
	store *session.Store
	sess  *session.Session
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := session.NewStore()
	sess := store.Create()

	uc := NewUseCase(
		scheduleConfig(),
		&stubCatalog{products: map[string]*domain.Product{
			"custom-cake": customCake(0),
			"cupcakes":    standardCupcakes(),
		}},
		&stubLedger{entries: map[string]*domain.CapacityLimit{}},
		store,
		7,
		nopLogger{},
	)
	uc.timeProvider = &fixedClock{now: time.Date(2025, 11, 13, 10, 0, 0, 0, time.UTC)}

	return &testEnv{uc: uc, store: store, sess: sess}
}

// completeSchedule доводит выбор расписания сессии до Complete: 15.11, 10:00
func (e *testEnv) completeSchedule(t *testing.T) {
	t.Helper()

	date := time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC)
	offered := []slots.OfferableDate{{
		Date:         date,
		DateISO:      "2025-11-15",
		Weekday:      date.Weekday(),
		IsSelectable: true,
	}}
	require.NoError(t, e.sess.Selection.SelectDate(offered, "2025-11-15"))
	require.NoError(t, e.sess.Selection.SelectTime([]types.TimeString{"10:00"}, "10:00"))
}

func TestExecute_CustomizableRequiresCompleteSchedule(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.Execute(context.Background(), &Request{
		SessionID:   env.sess.ID,
		ProductSlug: "custom-cake",
		Quantity:    1,
		Selections:  domain.Selections{"size": {ChoiceID: "large"}},
	})

	assert.ErrorIs(t, err, ErrScheduleRequired)
	assert.Equal(t, 0, env.sess.Cart.Len())
}

func TestExecute_CustomizableAddedWithComposedTimestamp(t *testing.T) {
	env := newTestEnv(t)
	env.completeSchedule(t)

	resp, err := env.uc.Execute(context.Background(), &Request{
		SessionID:   env.sess.ID,
		ProductSlug: "custom-cake",
		Quantity:    1,
		Selections:  domain.Selections{"size": {ChoiceID: "large"}},
	})
	require.NoError(t, err)

	assert.True(t, decimal.NewFromFloat(40.00).Equal(resp.FinalPrice), "got %s", resp.FinalPrice)
	require.NotNil(t, resp.FulfillmentAt)
	assert.Equal(t, time.Date(2025, 11, 15, 10, 0, 0, 0, time.UTC), *resp.FulfillmentAt)
	assert.Equal(t, 1, resp.TotalItemCount)
}

func TestExecute_CustomizationIncompleteFails(t *testing.T) {
	env := newTestEnv(t)
	env.completeSchedule(t)

	_, err := env.uc.Execute(context.Background(), &Request{
		SessionID:   env.sess.ID,
		ProductSlug: "custom-cake",
		Quantity:    1,
		Selections:  domain.Selections{},
	})

	assert.ErrorIs(t, err, ErrCustomizationIncomplete)
	assert.Equal(t, 0, env.sess.Cart.Len())
}

func TestExecute_UnknownSelectionGroupFails(t *testing.T) {
	env := newTestEnv(t)
	env.completeSchedule(t)

	_, err := env.uc.Execute(context.Background(), &Request{
		SessionID:   env.sess.ID,
		ProductSlug: "custom-cake",
		Quantity:    1,
		Selections: domain.Selections{
			"size":  {ChoiceID: "large"},
			"ghost": {ChoiceID: "x"},
		},
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_ProductLeadTimeInvalidatesEarlySelection(t *testing.T) {
	env := newTestEnv(t)
	env.completeSchedule(t)

	// Товару нужно 96 часов: выбранная дата 15.11 оказывается раньше
	// границы срока изготовления и выбор сбрасывается
	env.uc.catalog.(*stubCatalog).products["custom-cake"] = customCake(96)

	_, err := env.uc.Execute(context.Background(), &Request{
		SessionID:   env.sess.ID,
		ProductSlug: "custom-cake",
		Quantity:    1,
		Selections:  domain.Selections{"size": {ChoiceID: "large"}},
	})

	assert.ErrorIs(t, err, ErrScheduleRequired)
	assert.Equal(t, "empty", string(env.sess.Selection.State()))
}

func TestExecute_StandardProductWithoutScheduleIsAllowed(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.uc.Execute(context.Background(), &Request{
		SessionID:   env.sess.ID,
		ProductSlug: "cupcakes",
		VariantID:   "box6",
		Quantity:    2,
	})
	require.NoError(t, err)

	assert.Nil(t, resp.FulfillmentAt)
	assert.Equal(t, 2, resp.TotalItemCount)
	assert.True(t, decimal.NewFromFloat(24.00).Equal(resp.MonetaryTotal), "got %s", resp.MonetaryTotal)
}

func TestExecute_StandardProductOutOfStock(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.Execute(context.Background(), &Request{
		SessionID:   env.sess.ID,
		ProductSlug: "cupcakes",
		VariantID:   "box6",
		Quantity:    6,
	})

	assert.ErrorIs(t, err, ErrOutOfStock)
}

func TestExecute_StandardProductRequiresVariant(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.Execute(context.Background(), &Request{
		SessionID:   env.sess.ID,
		ProductSlug: "cupcakes",
		Quantity:    1,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_SessionNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.Execute(context.Background(), &Request{
		SessionID:   "missing",
		ProductSlug: "cupcakes",
		VariantID:   "box6",
		Quantity:    1,
	})

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestExecute_QuantityAboveLimitFails(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.Execute(context.Background(), &Request{
		SessionID:   env.sess.ID,
		ProductSlug: "cupcakes",
		VariantID:   "box6",
		Quantity:    domain.MaxQuantityPerLine + 1,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
