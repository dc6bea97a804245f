package controllers

import (
	"fmt"
	"net/http"

	"github.com/Govind-619/Shelfnotes/utils"
	"github.com/Govind-619/Shelfnotes/views"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cast"
)

func notesPath(bookID int64) string {
	return fmt.Sprintf("/notes/%d", bookID)
}

// ListNotes renders a book's notes. The book is looked up first so a missing
// book is a 404 without ever querying notes.
func (ctl *Controller) ListNotes(c *gin.Context) {
	id, err := pathID(c, "id", utils.ErrBookNotFound)
	if err != nil {
		utils.RespondWithError(c, "ListNotes", err)
		return
	}

	ctx := c.Request.Context()
	bookResult, err := ctl.db.Execute(ctx, "SELECT title FROM books WHERE id = ?", id)
	if err != nil {
		utils.RespondWithError(c, "ListNotes", utils.DataAccessError(utils.ErrFetchNotes, err))
		return
	}
	if len(bookResult.Rows) == 0 {
		utils.NotFound(c, utils.ErrBookNotFound)
		return
	}
	bookTitle := cast.ToString(bookResult.Rows[0]["title"])

	noteResult, err := ctl.db.Execute(ctx, "SELECT * FROM notes WHERE book_id = ? ORDER BY id", id)
	if err != nil {
		utils.RespondWithError(c, "ListNotes", utils.DataAccessError(utils.ErrFetchNotes, err))
		return
	}

	notes := make([]NoteView, 0, len(noteResult.Rows))
	for _, row := range noteResult.Rows {
		notes = append(notes, noteFromRow(row))
	}

	c.HTML(http.StatusOK, views.NoteList, gin.H{
		"bookId":    id,
		"bookTitle": bookTitle,
		"notes":     notes,
	})
}

// CreateNote adds a note to a book
func (ctl *Controller) CreateNote(c *gin.Context) {
	utils.LogInfo("CreateNote called")

	bookID, err := pathID(c, "id", utils.ErrBookNotFound)
	if err != nil {
		utils.RespondWithError(c, "CreateNote", err)
		return
	}

	values, err := bodyValues(c, "content")
	if err != nil {
		utils.RespondWithError(c, "CreateNote", utils.DataAccessError(utils.ErrAddNote, err))
		return
	}

	_, err = ctl.db.Execute(c.Request.Context(),
		"INSERT INTO notes (content, book_id) VALUES (?, ?)",
		values[0], bookID)
	if err != nil {
		utils.RespondWithError(c, "CreateNote", utils.DataAccessError(utils.ErrAddNote, err))
		return
	}

	utils.Redirect(c, notesPath(bookID))
}

// AppendNote adds a new line of text to the end of a note. The owning book is
// read back after the update in a separate round trip.
func (ctl *Controller) AppendNote(c *gin.Context) {
	utils.LogInfo("AppendNote called")

	noteID, err := pathID(c, "noteId", utils.ErrNoteNotFound)
	if err != nil {
		utils.RespondWithError(c, "AppendNote", err)
		return
	}

	values, err := bodyValues(c, "additional_content")
	if err != nil {
		utils.RespondWithError(c, "AppendNote", utils.DataAccessError(utils.ErrUpdateNote, err))
		return
	}

	ctx := c.Request.Context()
	result, err := ctl.db.Execute(ctx,
		"UPDATE notes SET content = content || ? || ? WHERE id = ?",
		"\n", values[0], noteID)
	if err != nil {
		utils.RespondWithError(c, "AppendNote", utils.DataAccessError(utils.ErrUpdateNote, err))
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, utils.ErrNoteNotFound)
		return
	}

	owner, err := ctl.db.Execute(ctx, "SELECT book_id FROM notes WHERE id = ?", noteID)
	if err != nil {
		utils.RespondWithError(c, "AppendNote", utils.DataAccessError(utils.ErrUpdateNote, err))
		return
	}
	// Deleted between the two statements.
	if len(owner.Rows) == 0 {
		utils.NotFound(c, utils.ErrNoteNotFound)
		return
	}

	utils.Redirect(c, notesPath(cast.ToInt64(owner.Rows[0]["book_id"])))
}

// DeleteNote removes a note, but only from the book named in the path
func (ctl *Controller) DeleteNote(c *gin.Context) {
	utils.LogInfo("DeleteNote called")

	bookID, err := pathID(c, "bookId", utils.ErrNoteNotFound)
	if err != nil {
		utils.RespondWithError(c, "DeleteNote", err)
		return
	}
	noteID, err := pathID(c, "noteId", utils.ErrNoteNotFound)
	if err != nil {
		utils.RespondWithError(c, "DeleteNote", err)
		return
	}

	result, err := ctl.db.Execute(c.Request.Context(),
		"DELETE FROM notes WHERE id = ? AND book_id = ?", noteID, bookID)
	if err != nil {
		utils.RespondWithError(c, "DeleteNote", utils.DataAccessError(utils.ErrDeleteNote, err))
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, utils.ErrNoteNotFound)
		return
	}

	utils.Redirect(c, notesPath(bookID))
}
