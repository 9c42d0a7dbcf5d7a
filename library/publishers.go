package library

import (
	"strings"

	"github.com/jmoiron/sqlx"
)

// CreatePublisher persists a new publisher and backfills the generated id.
func (s *Store) CreatePublisher(p *Publisher) (*Publisher, error) {
	if p == nil {
		return nil, validationf("publisher cannot be nil")
	}
	if strings.TrimSpace(p.Name) == "" {
		return nil, validationf("publisher name is required")
	}

	res, err := s.db.Exec(
		`INSERT INTO publishers(name,address,phone_number) VALUES(?,?,?)`,
		p.Name, p.Address, p.Phone)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	p.ID = PublisherID(id)
	return p, nil
}

// PublisherByID returns the publisher with the given id, or nil if no row matches.
func (s *Store) PublisherByID(id PublisherID) (*Publisher, error) {
	if id == 0 {
		return nil, validationf("publisher id is required")
	}
	var p Publisher
	found, err := getOne(s.db, &p,
		`SELECT id,name,address,phone_number FROM publishers WHERE id=?`, id)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

// AllPublishers returns every publisher in id order.
func (s *Store) AllPublishers() ([]Publisher, error) {
	var publishers []Publisher
	err := s.db.Select(&publishers,
		`SELECT id,name,address,phone_number FROM publishers ORDER BY id`)
	return publishers, err
}

// UpdatePublisher merges all fields of an existing publisher.
func (s *Store) UpdatePublisher(p *Publisher) (*Publisher, error) {
	if p == nil || p.ID == 0 {
		return nil, validationf("publisher or publisher id cannot be nil")
	}

	res, err := s.db.Exec(
		`UPDATE publishers SET name=?, address=?, phone_number=? WHERE id=?`,
		p.Name, p.Address, p.Phone, p.ID)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, notFoundf("publisher %d not found", p.ID)
	}
	return p, nil
}

// DeletePublisher removes a publisher. A publisher still referenced by any
// book cannot be deleted. Deleting an absent id is a no-op.
func (s *Store) DeletePublisher(id PublisherID) error {
	if id == 0 {
		return validationf("publisher id is required")
	}
	return s.inTx(func(tx *sqlx.Tx) error {
		n, err := countBooksByPublisher(tx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return conflictf("cannot delete publisher with existing books")
		}
		_, err = tx.Exec(`DELETE FROM publishers WHERE id=?`, id)
		return err
	})
}
