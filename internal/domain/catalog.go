package domain

import "time"

type Location struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Room    string `json:"room"`
}

type Artist struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Style       string `json:"style"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Country     string `json:"country"`
}

type Event struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Date        Date      `json:"date"`
	Time        TimeOfDay `json:"time"`
	Price       Money     `json:"price"`
	LocationID  uint      `json:"location_id"`
	Location    *Location `json:"location,omitempty"`
	Artists     []Artist  `json:"artists"`
	CreatedAt   time.Time `json:"-"`
}

type Discount struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Percentage Money  `json:"discount"`
}
