package library

import (
	"time"

	"github.com/sirupsen/logrus"
)

// Library is a thin façade over the Store, keeping CLI code simple.
type Library struct {
	store *Store
}

// NewLibrary opens (or creates) the SQLite database at dbPath.
func NewLibrary(dbPath string, log *logrus.Logger) (*Library, error) {
	store, err := Open(dbPath, log)
	if err != nil {
		return nil, err
	}
	return &Library{store: store}, nil
}

// Close closes the underlying store.
func (l *Library) Close() error { return l.store.Close() }

// Store exposes the underlying store for callers that need the full gateway
// surface.
func (l *Library) Store() *Store { return l.store }

// ------------------ User helpers ------------------

func (l *Library) CreateUser(u *User) (*User, error) { return l.store.CreateUser(u) }
func (l *Library) UserByID(id UserID) (*User, error) { return l.store.UserByID(id) }
func (l *Library) AllUsers() ([]User, error)         { return l.store.AllUsers() }
func (l *Library) UpdateUser(u *User) (*User, error) { return l.store.UpdateUser(u) }
func (l *Library) DeleteUser(id UserID) error        { return l.store.DeleteUser(id) }

// ------------------ Publisher helpers ------------------

func (l *Library) CreatePublisher(p *Publisher) (*Publisher, error) {
	return l.store.CreatePublisher(p)
}

func (l *Library) PublisherByID(id PublisherID) (*Publisher, error) {
	return l.store.PublisherByID(id)
}

func (l *Library) AllPublishers() ([]Publisher, error) { return l.store.AllPublishers() }

func (l *Library) UpdatePublisher(p *Publisher) (*Publisher, error) {
	return l.store.UpdatePublisher(p)
}

func (l *Library) DeletePublisher(id PublisherID) error { return l.store.DeletePublisher(id) }

// ------------------ Book helpers ------------------

func (l *Library) CreateBook(b *Book) (*Book, error)      { return l.store.CreateBook(b) }
func (l *Library) BookByID(id BookID) (*Book, error)      { return l.store.BookByID(id) }
func (l *Library) AllBooks() ([]Book, error)              { return l.store.AllBooks() }
func (l *Library) UpdateBook(b *Book) (*Book, error)      { return l.store.UpdateBook(b) }
func (l *Library) DeleteBook(id BookID) error             { return l.store.DeleteBook(id) }
func (l *Library) AvailableCopies(id BookID) (int, error) { return l.store.AvailableCopies(id) }
func (l *Library) AvailableTitles() ([]Book, error)       { return l.store.AvailableTitles() }
func (l *Library) AllTitlesWithCopies() ([]Book, error)   { return l.store.AllTitlesWithCopies() }

// ------------------ Copy helpers ------------------

func (l *Library) CreateCopy(c *Copy) (*Copy, error)      { return l.store.CreateCopy(c) }
func (l *Library) CopyByID(id CopyID) (*Copy, error)      { return l.store.CopyByID(id) }
func (l *Library) AllCopies() ([]Copy, error)             { return l.store.AllCopies() }
func (l *Library) CopiesByBook(id BookID) ([]Copy, error) { return l.store.CopiesByBook(id) }
func (l *Library) DeleteCopy(id CopyID) error             { return l.store.DeleteCopy(id) }

// ------------------ Librarian helpers ------------------

func (l *Library) CreateLibrarian(lb *Librarian) (*Librarian, error) {
	return l.store.CreateLibrarian(lb)
}

func (l *Library) LibrarianByID(id LibrarianID) (*Librarian, error) {
	return l.store.LibrarianByID(id)
}

func (l *Library) AllLibrarians() ([]Librarian, error)  { return l.store.AllLibrarians() }
func (l *Library) DeleteLibrarian(id LibrarianID) error { return l.store.DeleteLibrarian(id) }

// ------------------ Circulation ------------------

func (l *Library) BeginBorrowing(userID UserID, bookID BookID, borrowDate time.Time) (*Borrowing, error) {
	return l.store.BeginBorrowing(userID, bookID, borrowDate)
}

func (l *Library) SettleBorrowing(id BorrowingID, returnDate time.Time) (*Borrowing, error) {
	return l.store.SettleBorrowing(id, returnDate)
}

func (l *Library) ReturnBorrowing(id BorrowingID) (*Borrowing, error) {
	return l.store.ReturnBorrowing(id)
}

func (l *Library) BorrowingByID(id BorrowingID) (*Borrowing, error) {
	return l.store.BorrowingByID(id)
}

func (l *Library) AllBorrowings() ([]Borrowing, error) { return l.store.AllBorrowings() }

func (l *Library) BorrowingsByUser(id UserID) ([]Borrowing, error) {
	return l.store.BorrowingsByUser(id)
}

func (l *Library) DeleteBorrowing(id BorrowingID) error { return l.store.DeleteBorrowing(id) }
