package entities

import "time"

type Book struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"index;size:100;not null" json:"title"`
	Author   string `gorm:"index;size:100" json:"author"`
	Genre    string `gorm:"index;size:50" json:"genre"`
	Language string `gorm:"index;size:50" json:"language"`
	Age      string `gorm:"index;size:50" json:"age"`
	Year     int    `json:"year"`
	ImageURL string `gorm:"size:255" json:"imageUrl"`

	// Ratings is the mean review rating, computed on every read and never stored.
	Ratings float64 `gorm:"-" json:"ratings"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
