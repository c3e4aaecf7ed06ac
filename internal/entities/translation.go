package entities

// Translation is one UI string for one language.
type Translation struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Key      string `gorm:"uniqueIndex:idx_translations_language_key;size:191;not null" json:"key"`
	Language string `gorm:"uniqueIndex:idx_translations_language_key;index;size:16;not null" json:"language"`
	Value    string `gorm:"type:text" json:"value"`
}
