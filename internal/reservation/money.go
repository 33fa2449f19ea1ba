package reservation

import (
	"fmt"
	"math"
)

// Money is an amount in minor currency units (cents).
type Money int64

// MoneyFromFloat converts a decimal currency amount (e.g. 12.5) into cents.
func MoneyFromFloat(amount float64) Money {
	return Money(math.Round(amount * 100))
}

// Float returns the amount in decimal currency units.
func (m Money) Float() float64 {
	return float64(m) / 100
}

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Times multiplies the amount by a whole quantity.
func (m Money) Times(n int) Money {
	return m * Money(n)
}

// Percent returns value percent of m, rounded half away from zero to the cent.
func (m Money) Percent(value float64) Money {
	return Money(math.Round(float64(m) * value / 100))
}
