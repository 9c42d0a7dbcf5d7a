package library

import "github.com/jmoiron/sqlx"

// CreateBorrowing persists a borrowing row as-is. The borrowing workflow in
// workflow.go is the normal entry point; this gateway exists for the uniform
// CRUD contract and leaves copy status untouched.
func (s *Store) CreateBorrowing(b *Borrowing) (*Borrowing, error) {
	if b == nil {
		return nil, validationf("borrowing cannot be nil")
	}
	if b.UserID == 0 {
		return nil, validationf("borrowing user id is required")
	}
	if b.CopyID == 0 {
		return nil, validationf("borrowing copy id is required")
	}
	if b.BorrowDate.IsZero() {
		return nil, validationf("borrowing borrow date is required")
	}

	res, err := s.db.Exec(
		`INSERT INTO borrowings(user_id,copy_id,borrow_date,return_date) VALUES(?,?,?,?)`,
		b.UserID, b.CopyID, b.BorrowDate, b.ReturnDate)
	if err != nil {
		return nil, mapConstraintErr(err, "borrowing must reference an existing user and copy")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	b.ID = BorrowingID(id)
	return b, nil
}

// BorrowingByID returns the borrowing with the given id, or nil if no row matches.
func (s *Store) BorrowingByID(id BorrowingID) (*Borrowing, error) {
	if id == 0 {
		return nil, validationf("borrowing id is required")
	}
	var b Borrowing
	found, err := getOne(s.db, &b,
		`SELECT id,user_id,copy_id,borrow_date,return_date FROM borrowings WHERE id=?`, id)
	if err != nil || !found {
		return nil, err
	}
	return &b, nil
}

// AllBorrowings returns every borrowing in id order.
func (s *Store) AllBorrowings() ([]Borrowing, error) {
	var borrowings []Borrowing
	err := s.db.Select(&borrowings,
		`SELECT id,user_id,copy_id,borrow_date,return_date FROM borrowings ORDER BY id`)
	return borrowings, err
}

// BorrowingsByUser returns one user's borrowings, open and historical, in id order.
func (s *Store) BorrowingsByUser(id UserID) ([]Borrowing, error) {
	if id == 0 {
		return nil, validationf("user id is required")
	}
	var borrowings []Borrowing
	err := s.db.Select(&borrowings,
		`SELECT id,user_id,copy_id,borrow_date,return_date FROM borrowings WHERE user_id=? ORDER BY id`, id)
	return borrowings, err
}

// UpdateBorrowing merges all fields of an existing borrowing. Copy status is
// not adjusted; use SettleBorrowing for the return path.
func (s *Store) UpdateBorrowing(b *Borrowing) (*Borrowing, error) {
	if b == nil || b.ID == 0 {
		return nil, validationf("borrowing or borrowing id cannot be nil")
	}

	res, err := s.db.Exec(
		`UPDATE borrowings SET user_id=?, copy_id=?, borrow_date=?, return_date=? WHERE id=?`,
		b.UserID, b.CopyID, b.BorrowDate, b.ReturnDate, b.ID)
	if err != nil {
		return nil, mapConstraintErr(err, "borrowing must reference an existing user and copy")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, notFoundf("borrowing %d not found", b.ID)
	}
	return b, nil
}

// DeleteBorrowing removes a borrowing row and, as a compensating action,
// resets its copy to Available. The reset is unconditional: if the copy has
// since been re-borrowed under a different borrowing, that copy is freed
// anyway. Deleting an absent id is a no-op.
func (s *Store) DeleteBorrowing(id BorrowingID) error {
	if id == 0 {
		return validationf("borrowing id is required")
	}
	return s.inTx(func(tx *sqlx.Tx) error {
		var b Borrowing
		found, err := getOne(tx, &b,
			`SELECT id,user_id,copy_id,borrow_date,return_date FROM borrowings WHERE id=?`, id)
		if err != nil {
			return err
		}
		if !found {
			return nil
		}
		if _, err := tx.Exec(`UPDATE copies SET status=? WHERE id=?`, StatusAvailable, b.CopyID); err != nil {
			return err
		}
		_, err = tx.Exec(`DELETE FROM borrowings WHERE id=?`, id)
		return err
	})
}
