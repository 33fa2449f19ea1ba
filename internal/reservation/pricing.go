package reservation

import "fmt"

// PricingBreakdown is derived from a selection; it is never stored.
type PricingBreakdown struct {
	TotalParticipantDays int
	BaseSubtotal         Money
	AddOnSubtotal        Money
	DiscountAmount       Money
	DiscountLabel        string
	GrandTotal           Money

	// Clamped is set when the discount would have made the total negative,
	// which points at a misconfigured discount.
	Clamped bool
}

// DiscountApplied reports whether the discount threshold was met.
func (b PricingBreakdown) DiscountApplied() bool {
	return b.DiscountAmount > 0
}

// ComputePricing prices a selection. The discount threshold counts distinct
// selected dates, not participant-days, and the discount is taken once.
func ComputePricing(entries []Entry, offering *Offering, addOns []SelectedAddOn) (PricingBreakdown, error) {
	var b PricingBreakdown

	for _, e := range entries {
		b.TotalParticipantDays += e.ParticipantCount
	}
	b.BaseSubtotal = offering.PricePerDayPerParticipant.Times(b.TotalParticipantDays)

	for _, sel := range addOns {
		choice, ok := offering.FindAddOn(sel)
		if !ok {
			return PricingBreakdown{}, fmt.Errorf("%w: %s / %s", ErrUnknownAddOn, sel.CategoryName, sel.ChoiceName)
		}
		b.AddOnSubtotal += choice.Price
	}

	if d := offering.Discount; d != nil && len(entries) > 0 && len(entries) >= d.MinimumDaysSelected {
		switch d.Kind {
		case DiscountPercentage:
			b.DiscountAmount = b.BaseSubtotal.Percent(d.Value)
		case DiscountFixed:
			b.DiscountAmount = MoneyFromFloat(d.Value)
		}
		if b.DiscountAmount > 0 {
			b.DiscountLabel = d.Label
		}
	}

	b.GrandTotal = b.BaseSubtotal + b.AddOnSubtotal - b.DiscountAmount
	if b.GrandTotal < 0 {
		b.GrandTotal = 0
		b.Clamped = true
	}
	return b, nil
}
