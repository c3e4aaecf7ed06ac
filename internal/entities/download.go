package entities

import "time"

// Download records a user obtaining a book, at most once per (book, user) pair.
type Download struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	BookID       uint      `gorm:"uniqueIndex:idx_downloads_book_user;not null" json:"bookId"`
	UserID       uint      `gorm:"uniqueIndex:idx_downloads_book_user;index;not null" json:"userId"`
	DownloadDate time.Time `gorm:"not null" json:"downloadDate"`
}
