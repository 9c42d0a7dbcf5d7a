package library

import (
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

// The borrowing workflow drives copy status through
// Available -> Borrowed -> Available, leaving borrowing rows as the audit
// trail of each borrowed interval.

// BeginBorrowing lends one copy of a book to a user: it claims the first
// Available copy in id order, marks it Borrowed and records an open
// borrowing. The whole sequence runs in one transaction, so two concurrent
// calls can never claim the same copy.
func (s *Store) BeginBorrowing(userID UserID, bookID BookID, borrowDate time.Time) (*Borrowing, error) {
	if userID == 0 {
		return nil, validationf("user id is required")
	}
	if bookID == 0 {
		return nil, validationf("book id is required")
	}
	if borrowDate.IsZero() {
		borrowDate = time.Now()
	}

	b := &Borrowing{UserID: userID}
	err := s.inTx(func(tx *sqlx.Tx) error {
		var one int
		found, err := getOne(tx, &one, `SELECT 1 FROM users WHERE id=?`, userID)
		if err != nil {
			return err
		}
		if !found {
			return notFoundf("user %d not found", userID)
		}

		var title string
		found, err = getOne(tx, &title, `SELECT title FROM books WHERE id=?`, bookID)
		if err != nil {
			return err
		}
		if !found {
			return notFoundf("book %d not found", bookID)
		}

		// Claim the first available copy, deterministically.
		var copyID CopyID
		found, err = getOne(tx, &copyID,
			`SELECT id FROM copies WHERE book_id=? AND status=? ORDER BY id LIMIT 1`,
			bookID, StatusAvailable)
		if err != nil {
			return err
		}
		if !found {
			return conflictf("no available copies of %q", title)
		}

		if _, err := tx.Exec(`UPDATE copies SET status=? WHERE id=?`, StatusBorrowed, copyID); err != nil {
			return err
		}

		res, err := tx.Exec(
			`INSERT INTO borrowings(user_id,copy_id,borrow_date,return_date) VALUES(?,?,?,NULL)`,
			userID, copyID, borrowDate)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		b.ID = BorrowingID(id)
		b.CopyID = copyID
		b.BorrowDate = borrowDate
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"borrowing": b.ID, "user": userID, "book": bookID, "copy": b.CopyID,
	}).Debug("borrowing begun")
	return b, nil
}

// SettleBorrowing sets the borrowing's return date and flips its copy back to
// Available. The date overwrites any previous one, and the copy flip is
// idempotent, so settling an already-settled borrowing only rewrites history.
func (s *Store) SettleBorrowing(id BorrowingID, returnDate time.Time) (*Borrowing, error) {
	if id == 0 {
		return nil, validationf("borrowing id is required")
	}
	if returnDate.IsZero() {
		return nil, validationf("return date is required")
	}

	var b Borrowing
	err := s.inTx(func(tx *sqlx.Tx) error {
		found, err := getOne(tx, &b,
			`SELECT id,user_id,copy_id,borrow_date,return_date FROM borrowings WHERE id=?`, id)
		if err != nil {
			return err
		}
		if !found {
			return notFoundf("borrowing %d not found", id)
		}

		if _, err := tx.Exec(`UPDATE borrowings SET return_date=? WHERE id=?`, returnDate, id); err != nil {
			return err
		}
		if _, err := tx.Exec(`UPDATE copies SET status=? WHERE id=?`, StatusAvailable, b.CopyID); err != nil {
			return err
		}
		b.ReturnDate = &returnDate
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"borrowing": b.ID, "copy": b.CopyID}).Debug("borrowing settled")
	return &b, nil
}

// ReturnBorrowing settles a borrowing with today's date.
func (s *Store) ReturnBorrowing(id BorrowingID) (*Borrowing, error) {
	return s.SettleBorrowing(id, time.Now())
}
