package reservation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selectDates(t *testing.T, store *SelectionStore, counts map[DateKey]int) {
	t.Helper()
	for date, count := range counts {
		require.True(t, store.ToggleDate(date), date)
		_, err := store.SetParticipantCount(date, count)
		require.NoError(t, err)
	}
}

func TestComputePricing_EmptySelection(t *testing.T) {
	offering := wholeDayOffering()
	offering.Discount = &Discount{Kind: DiscountFixed, Value: 40}

	b, err := ComputePricing(nil, offering, nil)
	require.NoError(t, err)
	assert.Equal(t, Money(0), b.GrandTotal)
	assert.False(t, b.DiscountApplied())
	assert.False(t, b.Clamped)
}

func TestComputePricing_NoDiscount(t *testing.T) {
	offering := wholeDayOffering()
	store := NewSelectionStore(buildWholeDayIndex(t))
	selectDates(t, store, map[DateKey]int{"2024-06-10": 2, "2024-06-11": 3})

	b, err := ComputePricing(store.Entries(), offering, nil)
	require.NoError(t, err)
	assert.Equal(t, 5, b.TotalParticipantDays)
	assert.Equal(t, MoneyFromFloat(125), b.BaseSubtotal)
	assert.Equal(t, MoneyFromFloat(125), b.GrandTotal)
	assert.Equal(t, Money(0), b.DiscountAmount)
}

func TestComputePricing_PercentageDiscount(t *testing.T) {
	offering := wholeDayOffering()
	offering.Discount = &Discount{Kind: DiscountPercentage, Value: 10, MinimumDaysSelected: 2, Label: "Multi-day 10% off"}

	t.Run("threshold met", func(t *testing.T) {
		store := NewSelectionStore(buildWholeDayIndex(t))
		selectDates(t, store, map[DateKey]int{"2024-06-10": 2, "2024-06-11": 3})

		b, err := ComputePricing(store.Entries(), offering, nil)
		require.NoError(t, err)
		assert.Equal(t, MoneyFromFloat(12.5), b.DiscountAmount)
		assert.Equal(t, MoneyFromFloat(112.5), b.GrandTotal)
		assert.Equal(t, "Multi-day 10% off", b.DiscountLabel)
	})

	t.Run("one date short", func(t *testing.T) {
		store := NewSelectionStore(buildWholeDayIndex(t))
		selectDates(t, store, map[DateKey]int{"2024-06-10": 3})

		b, err := ComputePricing(store.Entries(), offering, nil)
		require.NoError(t, err)
		assert.Equal(t, Money(0), b.DiscountAmount)
		assert.Equal(t, MoneyFromFloat(75), b.GrandTotal)
		assert.Empty(t, b.DiscountLabel)
	})
}

func TestComputePricing_ThresholdCountsDatesNotParticipants(t *testing.T) {
	offering := wholeDayOffering()
	offering.Discount = &Discount{Kind: DiscountPercentage, Value: 50, MinimumDaysSelected: 2}

	entries := []Entry{{Date: "2024-06-10", ParticipantCount: 8}}
	b, err := ComputePricing(entries, offering, nil)
	require.NoError(t, err)
	assert.Equal(t, 8, b.TotalParticipantDays)
	assert.Equal(t, Money(0), b.DiscountAmount)
}

func TestComputePricing_FixedDiscountTakenOnce(t *testing.T) {
	offering := wholeDayOffering()
	offering.Discount = &Discount{Kind: DiscountFixed, Value: 15, MinimumDaysSelected: 2}

	entries := []Entry{
		{Date: "2024-06-10", ParticipantCount: 4},
		{Date: "2024-06-11", ParticipantCount: 4},
		{Date: "2024-06-12", ParticipantCount: 4},
	}
	b, err := ComputePricing(entries, offering, nil)
	require.NoError(t, err)
	assert.Equal(t, MoneyFromFloat(15), b.DiscountAmount)
	assert.Equal(t, MoneyFromFloat(300-15), b.GrandTotal)
}

func TestComputePricing_NeverNegative(t *testing.T) {
	offering := wholeDayOffering()
	offering.Discount = &Discount{Kind: DiscountFixed, Value: 500, MinimumDaysSelected: 1}

	b, err := ComputePricing([]Entry{{Date: "2024-06-10", ParticipantCount: 1}}, offering, nil)
	require.NoError(t, err)
	assert.Equal(t, Money(0), b.GrandTotal)
	assert.True(t, b.Clamped)

	offering.Discount = &Discount{Kind: DiscountPercentage, Value: 150, MinimumDaysSelected: 1}
	b, err = ComputePricing([]Entry{{Date: "2024-06-10", ParticipantCount: 2}}, offering, nil)
	require.NoError(t, err)
	assert.Equal(t, Money(0), b.GrandTotal)
}

func TestComputePricing_AddOns(t *testing.T) {
	offering := wholeDayOffering()
	offering.Discount = &Discount{Kind: DiscountPercentage, Value: 10, MinimumDaysSelected: 1}
	offering.AddOnCategories = []AddOnCategory{{
		Name: "Materials",
		Choices: []AddOnChoice{
			{Name: "Basic kit", Price: MoneyFromFloat(12)},
			{Name: "Premium kit", Price: MoneyFromFloat(30)},
		},
	}}

	entries := []Entry{{Date: "2024-06-10", ParticipantCount: 2}}
	b, err := ComputePricing(entries, offering, []SelectedAddOn{{CategoryName: "Materials", ChoiceName: "Premium kit"}})
	require.NoError(t, err)
	assert.Equal(t, MoneyFromFloat(30), b.AddOnSubtotal)
	assert.Equal(t, MoneyFromFloat(5), b.DiscountAmount, "discount applies to the base subtotal only")
	assert.Equal(t, MoneyFromFloat(50+30-5), b.GrandTotal)

	_, err = ComputePricing(entries, offering, []SelectedAddOn{{CategoryName: "Materials", ChoiceName: "Gold leaf"}})
	assert.ErrorIs(t, err, ErrUnknownAddOn)
}
