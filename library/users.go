package library

import (
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// CreateUser persists a new user and backfills the generated id.
func (s *Store) CreateUser(u *User) (*User, error) {
	if u == nil {
		return nil, validationf("user cannot be nil")
	}
	if strings.TrimSpace(u.Name) == "" {
		return nil, validationf("user name is required")
	}
	if strings.TrimSpace(u.Email) == "" {
		return nil, validationf("user email is required")
	}

	res, err := s.db.Exec(
		`INSERT INTO users(name,email,phone_number,address) VALUES(?,?,?,?)`,
		u.Name, u.Email, u.Phone, u.Address)
	if err != nil {
		return nil, mapConstraintErr(err, fmt.Sprintf("a user with email %q already exists", u.Email))
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	u.ID = UserID(id)
	return u, nil
}

// UserByID returns the user with the given id, or nil if no row matches.
func (s *Store) UserByID(id UserID) (*User, error) {
	if id == 0 {
		return nil, validationf("user id is required")
	}
	var u User
	found, err := getOne(s.db, &u,
		`SELECT id,name,email,phone_number,address FROM users WHERE id=?`, id)
	if err != nil || !found {
		return nil, err
	}
	return &u, nil
}

// AllUsers returns every user in id order.
func (s *Store) AllUsers() ([]User, error) {
	var users []User
	err := s.db.Select(&users,
		`SELECT id,name,email,phone_number,address FROM users ORDER BY id`)
	return users, err
}

// UpdateUser merges all fields of an existing user.
func (s *Store) UpdateUser(u *User) (*User, error) {
	if u == nil || u.ID == 0 {
		return nil, validationf("user or user id cannot be nil")
	}

	res, err := s.db.Exec(
		`UPDATE users SET name=?, email=?, phone_number=?, address=? WHERE id=?`,
		u.Name, u.Email, u.Phone, u.Address, u.ID)
	if err != nil {
		return nil, mapConstraintErr(err, fmt.Sprintf("a user with email %q already exists", u.Email))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, notFoundf("user %d not found", u.ID)
	}
	return u, nil
}

// DeleteUser removes a user. A user with any borrowings, open or historical,
// cannot be deleted. Deleting an absent id is a no-op.
func (s *Store) DeleteUser(id UserID) error {
	if id == 0 {
		return validationf("user id is required")
	}
	return s.inTx(func(tx *sqlx.Tx) error {
		n, err := countBorrowingsByUser(tx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return conflictf("cannot delete user with existing borrowings")
		}
		_, err = tx.Exec(`DELETE FROM users WHERE id=?`, id)
		return err
	})
}
