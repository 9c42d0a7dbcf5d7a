package library

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// CreateBook persists a new book and backfills the generated id.
func (s *Store) CreateBook(b *Book) (*Book, error) {
	if b == nil {
		return nil, validationf("book cannot be nil")
	}
	if strings.TrimSpace(b.Title) == "" {
		return nil, validationf("book title is required")
	}
	if strings.TrimSpace(b.ISBN) == "" {
		return nil, validationf("book isbn is required")
	}
	if b.PublicationYear == 0 {
		return nil, validationf("book publication year is required")
	}

	res, err := s.db.Exec(
		`INSERT INTO books(title,author,publisher_id,publisher_name,publication_year,isbn)
         VALUES(?,?,?,?,?,?)`,
		b.Title, b.Author, b.PublisherID, b.PublisherName, b.PublicationYear, b.ISBN)
	if err != nil {
		return nil, mapConstraintErr(err, fmt.Sprintf("a book with isbn %q already exists", b.ISBN))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	b.ID = BookID(id)
	return b, nil
}

// BookByID returns the book with the given id, or nil if no row matches.
func (s *Store) BookByID(id BookID) (*Book, error) {
	if id == 0 {
		return nil, validationf("book id is required")
	}
	var b Book
	found, err := getOne(s.db, &b,
		`SELECT id,title,author,publisher_id,publisher_name,publication_year,isbn
         FROM books WHERE id=?`, id)
	if err != nil || !found {
		return nil, err
	}
	return &b, nil
}

// AllBooks returns every book in id order, without copies attached.
func (s *Store) AllBooks() ([]Book, error) {
	var books []Book
	err := s.db.Select(&books,
		`SELECT id,title,author,publisher_id,publisher_name,publication_year,isbn
         FROM books ORDER BY id`)
	return books, err
}

// UpdateBook merges all fields of an existing book.
func (s *Store) UpdateBook(b *Book) (*Book, error) {
	if b == nil || b.ID == 0 {
		return nil, validationf("book or book id cannot be nil")
	}

	res, err := s.db.Exec(
		`UPDATE books SET title=?, author=?, publisher_id=?, publisher_name=?,
         publication_year=?, isbn=? WHERE id=?`,
		b.Title, b.Author, b.PublisherID, b.PublisherName, b.PublicationYear, b.ISBN, b.ID)
	if err != nil {
		return nil, mapConstraintErr(err, fmt.Sprintf("a book with isbn %q already exists", b.ISBN))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, notFoundf("book %d not found", b.ID)
	}
	return b, nil
}

// DeleteBook removes a book. A book that still has copies, or borrowings
// against any of its copies, cannot be deleted. The borrowing check is
// redundant while the copy FK holds (a borrowing implies a copy) but is kept
// so the guard stays complete on its own. Deleting an absent id is a no-op.
func (s *Store) DeleteBook(id BookID) error {
	if id == 0 {
		return validationf("book id is required")
	}
	return s.inTx(func(tx *sqlx.Tx) error {
		copies, err := countCopiesByBook(tx, id)
		if err != nil {
			return err
		}
		borrowings, err := countBorrowingsByBook(tx, id)
		if err != nil {
			return err
		}
		if copies > 0 || borrowings > 0 {
			return conflictf("cannot delete book that still has copies or borrowings")
		}
		_, err = tx.Exec(`DELETE FROM books WHERE id=?`, id)
		return err
	})
}

// AvailableCopies counts the book's copies whose status is Available.
func (s *Store) AvailableCopies(id BookID) (int, error) {
	if id == 0 {
		return 0, validationf("book id is required")
	}
	n, err := countAvailableCopies(s.db, id)
	return int(n), err
}
