package domain

import "time"

type Booking struct {
	ID        uint       `json:"id"`
	UserID    uint       `json:"user_id"`
	PackID    uint       `json:"pack_id"`
	Pack      *Pack      `json:"pack,omitempty"`
	Date      time.Time  `json:"date"`
	Payed     bool       `json:"payed"`
	DatePayed *time.Time `json:"date_payed"`
}

// MarkPaid moves the booking from unpaid to paid. Paying twice is rejected.
func (b *Booking) MarkPaid(at time.Time) error {
	if b.Payed {
		return ErrBookingAlreadyPaid
	}

	b.Payed = true
	b.DatePayed = &at

	return nil
}
