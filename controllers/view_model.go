package controllers

import (
	"html/template"

	"github.com/Govind-619/Shelfnotes/models"
	"github.com/Govind-619/Shelfnotes/utils"
	"github.com/spf13/cast"
)

// NoteView is a note ready for the notes page
type NoteView struct {
	models.Note
	ContentHTML template.HTML
}

// bookFromRow maps a books row onto a Book and fills in its cover URL.
func bookFromRow(row utils.Row) models.Book {
	book := models.Book{
		ID:      cast.ToInt64(row["id"]),
		Title:   cast.ToString(row["title"]),
		Author:  cast.ToString(row["author"]),
		CoverID: cast.ToString(row["cover_id"]),
		Review:  cast.ToString(row["review"]),
		Rating:  cast.ToFloat64(row["rating"]),
	}
	if v := row["read_date"]; v != nil {
		if t, err := cast.ToTimeE(v); err == nil {
			book.ReadDate = &t
		}
	}
	book.CoverURL = utils.CoverURL(book.CoverID)
	return book
}

// noteFromRow maps a notes row onto a NoteView. The stored content is left
// as is; only the rendered copy is split into paragraphs.
func noteFromRow(row utils.Row) NoteView {
	note := models.Note{
		ID:      cast.ToInt64(row["id"]),
		BookID:  cast.ToInt64(row["book_id"]),
		Content: cast.ToString(row["content"]),
	}
	return NoteView{
		Note:        note,
		ContentHTML: template.HTML(utils.Paragraphs(note.Content)),
	}
}
