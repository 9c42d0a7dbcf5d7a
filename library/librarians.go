package library

import "github.com/jmoiron/sqlx"

// CreateLibrarian persists a staff record for an existing user. A user can
// hold at most one librarian record.
func (s *Store) CreateLibrarian(l *Librarian) (*Librarian, error) {
	if l == nil {
		return nil, validationf("librarian cannot be nil")
	}
	if l.UserID == 0 {
		return nil, validationf("librarian user id is required")
	}
	if l.EmploymentDate.IsZero() {
		return nil, validationf("librarian employment date is required")
	}

	err := s.inTx(func(tx *sqlx.Tx) error {
		var one int
		found, err := getOne(tx, &one, `SELECT 1 FROM users WHERE id=?`, l.UserID)
		if err != nil {
			return err
		}
		if !found {
			return notFoundf("user %d not found", l.UserID)
		}
		res, err := tx.Exec(
			`INSERT INTO librarians(user_id,employment_date,position) VALUES(?,?,?)`,
			l.UserID, l.EmploymentDate, l.Position)
		if err != nil {
			return mapConstraintErr(err, "user already has a librarian record")
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		l.ID = LibrarianID(id)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

// LibrarianByID returns the librarian with the given id, or nil if no row matches.
func (s *Store) LibrarianByID(id LibrarianID) (*Librarian, error) {
	if id == 0 {
		return nil, validationf("librarian id is required")
	}
	var l Librarian
	found, err := getOne(s.db, &l,
		`SELECT id,user_id,employment_date,position FROM librarians WHERE id=?`, id)
	if err != nil || !found {
		return nil, err
	}
	return &l, nil
}

// AllLibrarians returns every librarian in id order.
func (s *Store) AllLibrarians() ([]Librarian, error) {
	var librarians []Librarian
	err := s.db.Select(&librarians,
		`SELECT id,user_id,employment_date,position FROM librarians ORDER BY id`)
	return librarians, err
}

// UpdateLibrarian merges all fields of an existing librarian.
func (s *Store) UpdateLibrarian(l *Librarian) (*Librarian, error) {
	if l == nil || l.ID == 0 {
		return nil, validationf("librarian or librarian id cannot be nil")
	}

	res, err := s.db.Exec(
		`UPDATE librarians SET user_id=?, employment_date=?, position=? WHERE id=?`,
		l.UserID, l.EmploymentDate, l.Position, l.ID)
	if err != nil {
		return nil, mapConstraintErr(err, "user already has a librarian record")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, notFoundf("librarian %d not found", l.ID)
	}
	return l, nil
}

// DeleteLibrarian removes a staff record. The linked user is left untouched.
// Deleting an absent id is a no-op.
func (s *Store) DeleteLibrarian(id LibrarianID) error {
	if id == 0 {
		return validationf("librarian id is required")
	}
	_, err := s.db.Exec(`DELETE FROM librarians WHERE id=?`, id)
	return err
}
