package library

import "github.com/jmoiron/sqlx"

// CreateCopy persists a new copy for an existing book. An empty status
// defaults to Available.
func (s *Store) CreateCopy(c *Copy) (*Copy, error) {
	if c == nil {
		return nil, validationf("copy cannot be nil")
	}
	if c.BookID == 0 {
		return nil, validationf("copy book id is required")
	}
	if c.Status == "" {
		c.Status = StatusAvailable
	}
	if c.Status != StatusAvailable && c.Status != StatusBorrowed {
		return nil, validationf("copy status must be %q or %q", StatusAvailable, StatusBorrowed)
	}

	err := s.inTx(func(tx *sqlx.Tx) error {
		var one int
		found, err := getOne(tx, &one, `SELECT 1 FROM books WHERE id=?`, c.BookID)
		if err != nil {
			return err
		}
		if !found {
			return notFoundf("book %d not found", c.BookID)
		}
		res, err := tx.Exec(`INSERT INTO copies(book_id,status) VALUES(?,?)`, c.BookID, c.Status)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		c.ID = CopyID(id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// CopyByID returns the copy with the given id, or nil if no row matches.
func (s *Store) CopyByID(id CopyID) (*Copy, error) {
	if id == 0 {
		return nil, validationf("copy id is required")
	}
	var c Copy
	found, err := getOne(s.db, &c, `SELECT id,book_id,status FROM copies WHERE id=?`, id)
	if err != nil || !found {
		return nil, err
	}
	return &c, nil
}

// AllCopies returns every copy in id order.
func (s *Store) AllCopies() ([]Copy, error) {
	var copies []Copy
	err := s.db.Select(&copies, `SELECT id,book_id,status FROM copies ORDER BY id`)
	return copies, err
}

// CopiesByBook returns a book's copies in id order.
func (s *Store) CopiesByBook(id BookID) ([]Copy, error) {
	if id == 0 {
		return nil, validationf("book id is required")
	}
	var copies []Copy
	err := s.db.Select(&copies,
		`SELECT id,book_id,status FROM copies WHERE book_id=? ORDER BY id`, id)
	return copies, err
}

// UpdateCopy merges all fields of an existing copy. Status transitions should
// normally go through the borrowing workflow.
func (s *Store) UpdateCopy(c *Copy) (*Copy, error) {
	if c == nil || c.ID == 0 {
		return nil, validationf("copy or copy id cannot be nil")
	}
	if c.Status != StatusAvailable && c.Status != StatusBorrowed {
		return nil, validationf("copy status must be %q or %q", StatusAvailable, StatusBorrowed)
	}

	res, err := s.db.Exec(`UPDATE copies SET book_id=?, status=? WHERE id=?`, c.BookID, c.Status, c.ID)
	if err != nil {
		return nil, mapConstraintErr(err, "copy must reference an existing book")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, notFoundf("copy %d not found", c.ID)
	}
	return c, nil
}

// DeleteCopy removes a copy from its book. There is no standalone guard, but
// the borrowings FK still rejects deleting a copy with borrowing rows; callers
// must clear those first. Deleting an absent id is a no-op.
func (s *Store) DeleteCopy(id CopyID) error {
	if id == 0 {
		return validationf("copy id is required")
	}
	_, err := s.db.Exec(`DELETE FROM copies WHERE id=?`, id)
	return mapConstraintErr(err, "cannot delete copy that is still referenced by borrowings")
}
