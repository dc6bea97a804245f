package controllers

import (
	"net/http"

	"github.com/Govind-619/Shelfnotes/models"
	"github.com/Govind-619/Shelfnotes/utils"
	"github.com/Govind-619/Shelfnotes/views"
	"github.com/gin-gonic/gin"
)

var bookFields = []string{"title", "author", "cover_id", "review", "rating", "read_date"}

// ListBooks renders every book, highest rated first
func (ctl *Controller) ListBooks(c *gin.Context) {
	utils.LogDebug("ListBooks called")

	result, err := ctl.db.Execute(c.Request.Context(), "SELECT * FROM books ORDER BY rating DESC")
	if err != nil {
		utils.RespondWithError(c, "ListBooks", utils.DataAccessError(utils.ErrFetchBooks, err))
		return
	}

	books := make([]models.Book, 0, len(result.Rows))
	for _, row := range result.Rows {
		books = append(books, bookFromRow(row))
	}

	c.HTML(http.StatusOK, views.BookList, gin.H{"books": books})
}

// ShowAddBook renders an empty book form
func (ctl *Controller) ShowAddBook(c *gin.Context) {
	c.HTML(http.StatusOK, views.AddBook, gin.H{"book": models.Book{}})
}

// CreateBook inserts a book from the submitted form
func (ctl *Controller) CreateBook(c *gin.Context) {
	utils.LogInfo("CreateBook called")

	values, err := bodyValues(c, bookFields...)
	if err != nil {
		utils.RespondWithError(c, "CreateBook", utils.DataAccessError(utils.ErrAddBook, err))
		return
	}

	_, err = ctl.db.Execute(c.Request.Context(),
		"INSERT INTO books (title, author, cover_id, review, rating, read_date) VALUES (?, ?, ?, ?, ?, ?)",
		values...)
	if err != nil {
		utils.RespondWithError(c, "CreateBook", utils.DataAccessError(utils.ErrAddBook, err))
		return
	}

	utils.LogInfo("Book added: %v", values[0])
	utils.Redirect(c, "/")
}

// ShowEditBook renders the form pre-filled with a stored book
func (ctl *Controller) ShowEditBook(c *gin.Context) {
	id, err := pathID(c, "id", utils.ErrBookNotFound)
	if err != nil {
		utils.RespondWithError(c, "ShowEditBook", err)
		return
	}

	result, err := ctl.db.Execute(c.Request.Context(), "SELECT * FROM books WHERE id = ?", id)
	if err != nil {
		utils.RespondWithError(c, "ShowEditBook", utils.DataAccessError(utils.ErrFetchBookDetails, err))
		return
	}
	if len(result.Rows) == 0 {
		utils.NotFound(c, utils.ErrBookNotFound)
		return
	}

	c.HTML(http.StatusOK, views.EditBook, gin.H{"book": bookFromRow(result.Rows[0])})
}

// UpdateBook overwrites every field of a stored book
func (ctl *Controller) UpdateBook(c *gin.Context) {
	utils.LogInfo("UpdateBook called")

	id, err := pathID(c, "id", utils.ErrBookNotFound)
	if err != nil {
		utils.RespondWithError(c, "UpdateBook", err)
		return
	}

	values, err := bodyValues(c, bookFields...)
	if err != nil {
		utils.RespondWithError(c, "UpdateBook", utils.DataAccessError(utils.ErrUpdateBook, err))
		return
	}

	result, err := ctl.db.Execute(c.Request.Context(),
		"UPDATE books SET title = ?, author = ?, cover_id = ?, review = ?, rating = ?, read_date = ? WHERE id = ?",
		append(values, id)...)
	if err != nil {
		utils.RespondWithError(c, "UpdateBook", utils.DataAccessError(utils.ErrUpdateBook, err))
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, utils.ErrBookNotFound)
		return
	}

	utils.LogInfo("Book %d updated", id)
	utils.Redirect(c, "/")
}

// DeleteBook removes a book. Its notes are not touched.
func (ctl *Controller) DeleteBook(c *gin.Context) {
	utils.LogInfo("DeleteBook called")

	id, err := pathID(c, "id", utils.ErrBookNotFound)
	if err != nil {
		utils.RespondWithError(c, "DeleteBook", err)
		return
	}

	result, err := ctl.db.Execute(c.Request.Context(), "DELETE FROM books WHERE id = ?", id)
	if err != nil {
		utils.RespondWithError(c, "DeleteBook", utils.DataAccessError(utils.ErrDeleteBook, err))
		return
	}
	if result.RowsAffected == 0 {
		utils.NotFound(c, utils.ErrBookNotFound)
		return
	}

	utils.LogInfo("Book %d deleted", id)
	utils.Redirect(c, "/")
}
