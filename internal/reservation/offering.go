package reservation

// DiscountKind selects how a discount value is applied.
type DiscountKind string

const (
	DiscountPercentage DiscountKind = "percentage"
	DiscountFixed      DiscountKind = "fixed"
)

// Discount rewards bookings spanning at least MinimumDaysSelected distinct dates.
// Value is a percent for DiscountPercentage and a currency amount for DiscountFixed.
type Discount struct {
	Kind                DiscountKind
	Value               float64
	MinimumDaysSelected int
	Label               string
}

type AddOnChoice struct {
	Name  string
	Price Money
}

type AddOnCategory struct {
	Name        string
	Description string
	Choices     []AddOnChoice
}

// SelectedAddOn identifies one chosen add-on by category and choice name.
type SelectedAddOn struct {
	CategoryName string
	ChoiceName   string
}

// Offering is the bookable reservation product as seen by the booking flow.
type Offering struct {
	ID                        string
	Name                      string
	Description               string
	PricePerDayPerParticipant Money
	DateRange                 DateRange
	ExcludeDates              []DateKey
	TimeSlotsEnabled          bool
	Discount                  *Discount
	AddOnCategories           []AddOnCategory
}

// FindAddOn returns the priced choice for a selection.
func (o *Offering) FindAddOn(sel SelectedAddOn) (AddOnChoice, bool) {
	for _, category := range o.AddOnCategories {
		if category.Name != sel.CategoryName {
			continue
		}
		for _, choice := range category.Choices {
			if choice.Name == sel.ChoiceName {
				return choice, true
			}
		}
	}
	return AddOnChoice{}, false
}
