package library

import (
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3" // dialect registration
	"github.com/jmoiron/sqlx"
)

var dialect = goqu.Dialect("sqlite3")

// countQuery builds and runs a goqu count statement on the given handle
// (store connection or open transaction).
func countQuery(q sqlx.Queryer, ds *goqu.SelectDataset) (int64, error) {
	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return 0, fmt.Errorf("build count query: %w", err)
	}
	var n int64
	if err := sqlx.Get(q, &n, query, args...); err != nil {
		return 0, err
	}
	return n, nil
}

func countCopiesByBook(q sqlx.Queryer, id BookID) (int64, error) {
	return countQuery(q, dialect.From("copies").
		Select(goqu.COUNT(goqu.Star())).
		Where(goqu.Ex{"book_id": int64(id)}))
}

func countAvailableCopies(q sqlx.Queryer, id BookID) (int64, error) {
	return countQuery(q, dialect.From("copies").
		Select(goqu.COUNT(goqu.Star())).
		Where(goqu.Ex{"book_id": int64(id), "status": string(StatusAvailable)}))
}

// countBorrowingsByBook counts borrowings, open or historical, against any of
// the book's copies.
func countBorrowingsByBook(q sqlx.Queryer, id BookID) (int64, error) {
	return countQuery(q, dialect.From(goqu.T("borrowings").As("br")).
		Select(goqu.COUNT(goqu.Star())).
		Join(goqu.T("copies").As("c"), goqu.On(goqu.I("c.id").Eq(goqu.I("br.copy_id")))).
		Where(goqu.I("c.book_id").Eq(int64(id))))
}

func countBorrowingsByUser(q sqlx.Queryer, id UserID) (int64, error) {
	return countQuery(q, dialect.From("borrowings").
		Select(goqu.COUNT(goqu.Star())).
		Where(goqu.Ex{"user_id": int64(id)}))
}

func countBooksByPublisher(q sqlx.Queryer, id PublisherID) (int64, error) {
	return countQuery(q, dialect.From("books").
		Select(goqu.COUNT(goqu.Star())).
		Where(goqu.Ex{"publisher_id": int64(id)}))
}

// AvailableTitles returns the books that have at least one Available copy,
// in id order.
func (s *Store) AvailableTitles() ([]Book, error) {
	query, args, err := dialect.From(goqu.T("books").As("b")).
		SelectDistinct(
			goqu.I("b.id"), goqu.I("b.title"), goqu.I("b.author"),
			goqu.I("b.publisher_id"), goqu.I("b.publisher_name"),
			goqu.I("b.publication_year"), goqu.I("b.isbn")).
		Join(goqu.T("copies").As("c"), goqu.On(goqu.I("c.book_id").Eq(goqu.I("b.id")))).
		Where(goqu.I("c.status").Eq(string(StatusAvailable))).
		Order(goqu.I("b.id").Asc()).
		Prepared(true).ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build available titles query: %w", err)
	}

	var books []Book
	if err := s.db.Select(&books, query, args...); err != nil {
		return nil, err
	}
	return books, nil
}

// AllTitlesWithCopies returns every book with its copies eagerly attached,
// both in id order.
func (s *Store) AllTitlesWithCopies() ([]Book, error) {
	books, err := s.AllBooks()
	if err != nil {
		return nil, err
	}

	var copies []Copy
	if err := s.db.Select(&copies, `SELECT id,book_id,status FROM copies ORDER BY book_id, id`); err != nil {
		return nil, err
	}

	byBook := make(map[BookID][]Copy, len(books))
	for _, c := range copies {
		byBook[c.BookID] = append(byBook[c.BookID], c)
	}
	for i := range books {
		books[i].Copies = byBook[books[i].ID]
	}
	return books, nil
}
