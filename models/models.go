package models

import (
	"time"
)

// Book represents a book on the shelf
type Book struct {
	ID       int64      `json:"id" gorm:"primaryKey"`
	Title    string     `json:"title"`
	Author   string     `json:"author"`
	CoverID  string     `json:"cover_id"`
	Review   string     `json:"review"`
	Rating   float64    `json:"rating" gorm:"type:numeric(3,1)"`
	ReadDate *time.Time `json:"read_date" gorm:"type:date"`
	CoverURL string     `json:"cover_url" gorm:"-"`
}

// ReadDateValue formats the read date for an <input type="date"> field.
func (b Book) ReadDateValue() string {
	if b.ReadDate == nil {
		return ""
	}
	return b.ReadDate.Format("2006-01-02")
}

// Note represents a reading note. A note belongs to exactly one book; the
// foreign key has no cascade, so deleting a book leaves its notes alone.
type Note struct {
	ID      int64  `json:"id" gorm:"primaryKey"`
	BookID  int64  `json:"book_id" gorm:"not null;index"`
	Book    *Book  `json:"-" gorm:"foreignKey:BookID"`
	Content string `json:"content" gorm:"type:text"`
}
