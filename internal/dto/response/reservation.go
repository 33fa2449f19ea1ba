package response

type DateRangeResponse struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type DiscountResponse struct {
	Kind                string  `json:"kind"`
	Value               float64 `json:"value"`
	MinimumDaysSelected int     `json:"minimumDaysSelected"`
	Label               string  `json:"label,omitempty"`
}

type AddOnChoiceResponse struct {
	ChoiceName string  `json:"choiceName"`
	Price      float64 `json:"price"`
}

type AddOnCategoryResponse struct {
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Choices     []AddOnChoiceResponse `json:"choices"`
}

type ReservationResponse struct {
	ID                        string                  `json:"id"`
	Name                      string                  `json:"name"`
	Description               string                  `json:"description"`
	PricePerDayPerParticipant float64                 `json:"pricePerDayPerParticipant"`
	DateRange                 DateRangeResponse       `json:"dateRange"`
	ExcludeDates              []string                `json:"excludeDates"`
	TimeSlotsEnabled          bool                    `json:"timeSlotsEnabled"`
	Discount                  *DiscountResponse       `json:"discount,omitempty"`
	AddOnCategories           []AddOnCategoryResponse `json:"addOnCategories,omitempty"`
}

type TimeSlotResponse struct {
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
	Available   int    `json:"available"`
	Max         int    `json:"max"`
}

type DayAvailabilityResponse struct {
	Date        string             `json:"date"`
	IsAvailable bool               `json:"isAvailable"`
	Selectable  bool               `json:"selectable"`
	Available   int                `json:"available"`
	Max         int                `json:"max"`
	StartTime   string             `json:"startTime,omitempty"`
	EndTime     string             `json:"endTime,omitempty"`
	TimeSlots   []TimeSlotResponse `json:"timeSlots,omitempty"`
}

type AvailabilityResponse struct {
	ReservationID    string                    `json:"reservationId"`
	Timezone         string                    `json:"timezone"`
	TimeSlotsEnabled bool                      `json:"timeSlotsEnabled"`
	ExcludeDates     []string                  `json:"excludeDates"`
	Dates            []DayAvailabilityResponse `json:"dates"`
}

type PricingResponse struct {
	TotalParticipantDays int     `json:"totalParticipantDays"`
	BaseSubtotal         float64 `json:"baseSubtotal"`
	AddOnSubtotal        float64 `json:"addOnSubtotal"`
	DiscountAmount       float64 `json:"discountAmount"`
	DiscountLabel        string  `json:"discountLabel,omitempty"`
	DiscountApplied      bool    `json:"discountApplied"`
	GrandTotal           float64 `json:"grandTotal"`
}

type SelectedSlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type SelectedDateResponse struct {
	Date                 string                `json:"date"`
	Label                string                `json:"label"`
	NumberOfParticipants int                   `json:"numberOfParticipants"`
	TimeSlot             *SelectedSlotResponse `json:"timeSlot,omitempty"`
}

// AdjustmentResponse explains a change forced by current availability.
type AdjustmentResponse struct {
	Date     string `json:"date"`
	Kind     string `json:"kind"`
	Previous int    `json:"previous"`
	Current  int    `json:"current"`
	Message  string `json:"message"`
}

type QuoteResponse struct {
	SelectedDates    []SelectedDateResponse `json:"selectedDates"`
	Pricing          PricingResponse        `json:"pricing"`
	IsComplete       bool                   `json:"isComplete"`
	IncompleteReason string                 `json:"incompleteReason,omitempty"`
	Adjustments      []AdjustmentResponse   `json:"adjustments"`
}

type CheckoutResponse struct {
	BookingID        string          `json:"bookingId"`
	CustomerID       string          `json:"customerId"`
	ConfirmationCode string          `json:"confirmationCode,omitempty"`
	Pricing          PricingResponse `json:"pricing"`
}
