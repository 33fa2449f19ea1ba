package entity

// Customer is the billing contact behind bookings. Either Email or Phone is
// always set.
type Customer struct {
	Base
	FirstName    string  `db:"first_name"`
	LastName     string  `db:"last_name"`
	Email        *string `db:"email"`
	Phone        *string `db:"phone"`
	AddressLine1 string  `db:"address_line1"`
	AddressLine2 string  `db:"address_line2"`
	City         string  `db:"city"`
	State        string  `db:"state"`
	ZipCode      string  `db:"zip_code"`
}
