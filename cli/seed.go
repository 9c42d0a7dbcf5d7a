package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"library-catalog/library"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate an empty database with demo data",
	RunE: func(*cobra.Command, []string) error {
		users, err := lib.AllUsers()
		if err != nil {
			return err
		}
		books, err := lib.AllBooks()
		if err != nil {
			return err
		}
		if len(users) > 0 || len(books) > 0 {
			fmt.Println("Database is not empty, skipping seed.")
			return nil
		}

		log.Info("seeding demo data")

		for _, p := range []*library.Publisher{
			{Name: "Penguin Books", Address: "375 Hudson Street, New York, NY", Phone: "(212) 366-2000"},
			{Name: "HarperCollins", Address: "195 Broadway, New York, NY", Phone: "(212) 207-7000"},
		} {
			if _, err := lib.CreatePublisher(p); err != nil {
				return err
			}
		}

		alice, err := lib.CreateUser(&library.User{
			Name: "Alice", Email: "alice@example.com", Phone: "123-456", Address: "123 Main St"})
		if err != nil {
			return err
		}
		bob, err := lib.CreateUser(&library.User{
			Name: "Bob", Email: "bob@example.com", Phone: "789-012", Address: "456 Elm St"})
		if err != nil {
			return err
		}

		book1, err := lib.CreateBook(&library.Book{
			Title: "1984", Author: "George Orwell",
			PublisherName: "Secker & Warburg", PublicationYear: 1949, ISBN: "123456789"})
		if err != nil {
			return err
		}
		book2, err := lib.CreateBook(&library.Book{
			Title: "Brave New World", Author: "Aldous Huxley",
			PublisherName: "Chatto & Windus", PublicationYear: 1932, ISBN: "987654321"})
		if err != nil {
			return err
		}

		for _, bookID := range []library.BookID{book1.ID, book1.ID, book2.ID, book2.ID} {
			if _, err := lib.CreateCopy(&library.Copy{BookID: bookID}); err != nil {
				return err
			}
		}

		if _, err := lib.BeginBorrowing(alice.ID, book1.ID, time.Now().AddDate(0, 0, -5)); err != nil {
			return err
		}
		if _, err := lib.BeginBorrowing(bob.ID, book2.ID, time.Now().AddDate(0, 0, -3)); err != nil {
			return err
		}

		fmt.Println("Seeded 2 publishers, 2 users, 2 books, 4 copies and 2 open borrowings.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
