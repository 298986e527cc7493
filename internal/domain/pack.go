package domain

import "time"

type Pack struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Price       Money      `json:"price"`
	Events      []Event    `json:"events"`
	Discounts   []Discount `json:"discounts"`
	CreatedAt   time.Time  `json:"-"`
}

// StartingDate is the earliest date among the pack's events.
func (p Pack) StartingDate() (Date, error) {
	if len(p.Events) == 0 {
		return Date{}, ErrPackHasNoEvents
	}

	start := p.Events[0].Date
	for _, e := range p.Events[1:] {
		if e.Date.Before(start) {
			start = e.Date
		}
	}

	return start, nil
}

// PackView is the nested read shape of a pack: events with their artists and
// location, discounts and the derived starting date.
type PackView struct {
	Pack
	StartingDate Date `json:"starting_date"`
}

func NewPackView(p Pack) (PackView, error) {
	start, err := p.StartingDate()
	if err != nil {
		return PackView{}, err
	}

	return PackView{Pack: p, StartingDate: start}, nil
}
