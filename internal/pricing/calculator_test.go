package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-StorefrontService/internal/domain"
)

func cakeGroups() []domain.OptionGroup {
	return []domain.OptionGroup{
		{
			GroupKey:    "size",
			Type:        domain.GroupSingleSelect,
			IsMandatory: true,
			Choices: []domain.Choice{
				{ChoiceID: "small", PriceAdjustment: decimal.Zero},
				{ChoiceID: "large", PriceAdjustment: decimal.NewFromFloat(15.00)},
			},
		},
		{
			GroupKey:        "inscription",
			Type:            domain.GroupTextInput,
			PriceAdjustment: decimal.NewFromFloat(2.00),
		},
		{
			GroupKey: "toppings",
			Type:     domain.GroupMultiSelect,
			Choices: []domain.Choice{
				{ChoiceID: "berries", PriceAdjustment: decimal.NewFromFloat(3.00)},
			},
		},
	}
}

func TestFinalPrice_AddsSingleSelectAndTextAdjustments(t *testing.T) {
	base := decimal.NewFromFloat(25.00)
	selections := domain.Selections{
		"size":        {ChoiceID: "large"},
		"inscription": {Text: "С днем рождения"},
	}

	price := FinalPrice(base, cakeGroups(), selections)

	assert.True(t, decimal.NewFromFloat(42.00).Equal(price), "got %s", price)
}

func TestFinalPrice_BlankTextDoesNotCharge(t *testing.T) {
	base := decimal.NewFromFloat(25.00)
	selections := domain.Selections{
		"inscription": {Text: "   "},
	}

	price := FinalPrice(base, cakeGroups(), selections)

	assert.True(t, base.Equal(price), "got %s", price)
}

func TestFinalPrice_UnmatchedChoiceContributesZero(t *testing.T) {
	base := decimal.NewFromFloat(25.00)
	selections := domain.Selections{
		"size": {ChoiceID: "nonexistent"},
	}

	price := FinalPrice(base, cakeGroups(), selections)

	assert.True(t, base.Equal(price), "got %s", price)
}

func TestFinalPrice_MultiSelectContributesZero(t *testing.T) {
	base := decimal.NewFromFloat(25.00)
	selections := domain.Selections{
		"toppings": {ChoiceIDs: []string{"berries"}},
	}

	price := FinalPrice(base, cakeGroups(), selections)

	assert.True(t, base.Equal(price), "got %s", price)
}

func TestFinalPrice_ClampedAtZero(t *testing.T) {
	base := decimal.NewFromFloat(1.00)
	groups := []domain.OptionGroup{
		{
			GroupKey: "discounted",
			Type:     domain.GroupSingleSelect,
			Choices: []domain.Choice{
				{ChoiceID: "neg", PriceAdjustment: decimal.NewFromFloat(-5.00)},
			},
		},
	}
	selections := domain.Selections{
		"discounted": {ChoiceID: "neg"},
	}

	price := FinalPrice(base, groups, selections)

	assert.True(t, price.IsZero(), "got %s", price)
}

func TestMissingMandatoryGroups_ReportsUnansweredInOrder(t *testing.T) {
	groups := []domain.OptionGroup{
		{GroupKey: "size", Type: domain.GroupSingleSelect, IsMandatory: true},
		{GroupKey: "flavor", Type: domain.GroupSingleSelect, IsMandatory: true},
		{GroupKey: "inscription", Type: domain.GroupTextInput},
	}

	missing := MissingMandatoryGroups(groups, domain.Selections{
		"flavor": {ChoiceID: "vanilla"},
	})

	assert.Equal(t, []string{"size"}, missing)
}

func TestMissingMandatoryGroups_EmptyValueCountsAsMissing(t *testing.T) {
	groups := []domain.OptionGroup{
		{GroupKey: "size", Type: domain.GroupSingleSelect, IsMandatory: true},
	}

	missing := MissingMandatoryGroups(groups, domain.Selections{
		"size": {},
	})

	assert.Equal(t, []string{"size"}, missing)
}

func TestIsComplete_RequiresSelectionsAndTimestamp(t *testing.T) {
	groups := []domain.OptionGroup{
		{GroupKey: "size", Type: domain.GroupSingleSelect, IsMandatory: true},
	}
	selections := domain.Selections{"size": {ChoiceID: "small"}}
	ts := time.Date(2025, 11, 15, 10, 0, 0, 0, time.UTC)

	assert.True(t, IsComplete(groups, selections, &ts))
	assert.False(t, IsComplete(groups, selections, nil))
	assert.False(t, IsComplete(groups, domain.Selections{}, &ts))
}
