package library

import "time"

// Each entity kind has its own identifier type so a BookID can never be
// passed where a UserID is expected.
type (
	UserID      int64
	PublisherID int64
	BookID      int64
	CopyID      int64
	BorrowingID int64
	LibrarianID int64
)

// User is a library patron. Email is unique across all users.
type User struct {
	ID      UserID `db:"id"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	Phone   string `db:"phone_number"`
	Address string `db:"address"`
}

// Publisher owns zero or more books.
type Publisher struct {
	ID      PublisherID `db:"id"`
	Name    string      `db:"name"`
	Address string      `db:"address"`
	Phone   string      `db:"phone_number"`
}

// Book is a title in the catalog. ISBN is unique. The publisher reference is
// optional; PublisherName is kept denormalized so a title survives losing its
// publisher row. Copies is only populated by AllTitlesWithCopies.
type Book struct {
	ID              BookID       `db:"id"`
	Title           string       `db:"title"`
	Author          string       `db:"author"`
	PublisherID     *PublisherID `db:"publisher_id"`
	PublisherName   string       `db:"publisher_name"`
	PublicationYear int          `db:"publication_year"`
	ISBN            string       `db:"isbn"`

	Copies []Copy `db:"-"`
}

// SetPublisher points the book at a publisher and denormalizes its name.
func (b *Book) SetPublisher(p *Publisher) {
	if p == nil {
		b.PublisherID = nil
		return
	}
	id := p.ID
	b.PublisherID = &id
	b.PublisherName = p.Name
}

// CopyStatus is the circulation state of a single physical copy.
type CopyStatus string

const (
	StatusAvailable CopyStatus = "Available"
	StatusBorrowed  CopyStatus = "Borrowed"
)

// Copy is one physical instance of a book. Status only changes through the
// borrowing workflow.
type Copy struct {
	ID     CopyID     `db:"id"`
	BookID BookID     `db:"book_id"`
	Status CopyStatus `db:"status"`
}

// Borrowing records one borrowed interval of a copy. ReturnDate nil means the
// copy is still out; once set the borrowing is historical.
type Borrowing struct {
	ID         BorrowingID `db:"id"`
	UserID     UserID      `db:"user_id"`
	CopyID     CopyID      `db:"copy_id"`
	BorrowDate time.Time   `db:"borrow_date"`
	ReturnDate *time.Time  `db:"return_date"`
}

// Open reports whether the borrowing has not been returned yet.
func (b *Borrowing) Open() bool { return b.ReturnDate == nil }

// Librarian is a staff record linked one-to-one to a user.
type Librarian struct {
	ID             LibrarianID `db:"id"`
	UserID         UserID      `db:"user_id"`
	EmploymentDate time.Time   `db:"employment_date"`
	Position       string      `db:"position"`
}
