package entities

// Favorite bookmarks a book for a user. A user can favorite a book at most once.
type Favorite struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex:idx_favorites_user_book;not null" json:"userId"`
	BookID uint `gorm:"uniqueIndex:idx_favorites_user_book;not null" json:"bookId"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Book Book `gorm:"foreignKey:BookID" json:"book"`
}
