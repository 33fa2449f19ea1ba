package request

type TimeSlotRequest struct {
	StartTime string `json:"startTime" validate:"required,datetime=15:04"`
	EndTime   string `json:"endTime" validate:"required,datetime=15:04"`
}

type SelectedDateRequest struct {
	Date                 string           `json:"date" validate:"required"`
	NumberOfParticipants int              `json:"numberOfParticipants" validate:"min=1"`
	TimeSlot             *TimeSlotRequest `json:"timeSlot,omitempty" validate:"omitempty"`
}

type SelectedOptionRequest struct {
	CategoryName string `json:"categoryName" validate:"required"`
	ChoiceName   string `json:"choiceName" validate:"required"`
}

// QuoteRequest prices a selection. An empty selection is allowed and quotes zero.
type QuoteRequest struct {
	SelectedDates   []SelectedDateRequest   `json:"selectedDates" validate:"dive"`
	SelectedOptions []SelectedOptionRequest `json:"selectedOptions" validate:"dive"`
}
