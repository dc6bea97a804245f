package utils

// Application constants
const (
	// Application name
	AppName = "Shelfnotes"

	// Default port
	DefaultPort = "3000"

	// Default database host
	DefaultDBHost = "localhost"

	// Default database port
	DefaultDBPort = "5432"

	// Default database name
	DefaultDBName = "shelfnotes"

	// Default database user
	DefaultDBUser = "postgres"

	// Default database password
	DefaultDBPassword = "postgres"

	// Default sslmode for the postgres DSN
	DefaultDBSSLMode = "disable"

	// Default directory for the daily log files
	DefaultLogDir = "logs"

	// Default zerolog level
	DefaultLogLevel = "info"

	// Default directory for stylesheets and images
	DefaultStaticDir = "public"

	// Open Library medium-size cover, keyed by cover id
	CoverURLTemplate = "https://covers.openlibrary.org/b/id/%s-M.jpg"

	// Origin allowed to serve cover images
	CoverImageOrigin = "https://covers.openlibrary.org"
)

// Error messages
const (
	ErrBookNotFound = "Book not found"
	ErrNoteNotFound = "Note not found"

	ErrFetchBooks       = "Failed to fetch books"
	ErrAddBook          = "Failed to add book"
	ErrFetchBookDetails = "Failed to fetch book details"
	ErrUpdateBook       = "Failed to update book"
	ErrDeleteBook       = "Failed to delete book"
	ErrFetchNotes       = "Failed to fetch notes"
	ErrAddNote          = "Failed to add note"
	ErrUpdateNote       = "Failed to update note"
	ErrDeleteNote       = "Failed to delete note"

	ErrInternalServer = "Internal server error"
	ErrDBUnavailable  = "Database unavailable"
)
