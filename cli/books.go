package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"library-catalog/library"
)

var booksCmd = &cobra.Command{
	Use:   "books",
	Short: "Manage the catalog",
}

var booksAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a new title to the catalog",
	RunE: func(cmd *cobra.Command, _ []string) error {
		title, _ := cmd.Flags().GetString("title")
		author, _ := cmd.Flags().GetString("author")
		year, _ := cmd.Flags().GetInt("year")
		isbn, _ := cmd.Flags().GetString("isbn")
		publisherName, _ := cmd.Flags().GetString("publisher-name")

		b := &library.Book{
			Title:           title,
			Author:          author,
			PublisherName:   publisherName,
			PublicationYear: year,
			ISBN:            isbn,
		}

		if cmd.Flags().Changed("publisher") {
			pid, _ := cmd.Flags().GetInt64("publisher")
			p, err := lib.PublisherByID(library.PublisherID(pid))
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("publisher %d not found", pid)
			}
			b.SetPublisher(p)
		}

		if _, err := lib.CreateBook(b); err != nil {
			return err
		}
		fmt.Printf("Created book %d (%s)\n", b.ID, b.Title)
		return nil
	},
}

var booksListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all titles with copy availability",
	RunE: func(*cobra.Command, []string) error {
		books, err := lib.AllTitlesWithCopies()
		if err != nil {
			return err
		}
		w := newTabWriter()
		fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tPUBLISHER\tYEAR\tISBN\tAVAILABLE")
		for _, b := range books {
			available := 0
			for _, c := range b.Copies {
				if c.Status == library.StatusAvailable {
					available++
				}
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\t%d/%d\n",
				b.ID, b.Title, b.Author, b.PublisherName, b.PublicationYear, b.ISBN,
				available, len(b.Copies))
		}
		return w.Flush()
	},
}

var booksUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a title's details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "book")
		if err != nil {
			return err
		}
		b, err := lib.BookByID(library.BookID(id))
		if err != nil {
			return err
		}
		if b == nil {
			return fmt.Errorf("book %d not found", id)
		}

		if cmd.Flags().Changed("title") {
			b.Title, _ = cmd.Flags().GetString("title")
		}
		if cmd.Flags().Changed("author") {
			b.Author, _ = cmd.Flags().GetString("author")
		}
		if cmd.Flags().Changed("year") {
			b.PublicationYear, _ = cmd.Flags().GetInt("year")
		}
		if cmd.Flags().Changed("isbn") {
			b.ISBN, _ = cmd.Flags().GetString("isbn")
		}
		if cmd.Flags().Changed("publisher-name") {
			b.PublisherName, _ = cmd.Flags().GetString("publisher-name")
		}
		if cmd.Flags().Changed("publisher") {
			pid, _ := cmd.Flags().GetInt64("publisher")
			p, err := lib.PublisherByID(library.PublisherID(pid))
			if err != nil {
				return err
			}
			if p == nil {
				return fmt.Errorf("publisher %d not found", pid)
			}
			b.SetPublisher(p)
		}

		if _, err := lib.UpdateBook(b); err != nil {
			return err
		}
		fmt.Printf("Updated book %d\n", b.ID)
		return nil
	},
}

var booksDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a title (blocked while it has copies or borrowings)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := parseID(args[0], "book")
		if err != nil {
			return err
		}
		if err := lib.DeleteBook(library.BookID(id)); err != nil {
			return err
		}
		fmt.Printf("Deleted book %d\n", id)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{booksAddCmd, booksUpdateCmd} {
		c.Flags().String("title", "", "book title")
		c.Flags().String("author", "", "book author")
		c.Flags().Int("year", 0, "publication year")
		c.Flags().String("isbn", "", "ISBN (unique)")
		c.Flags().Int64("publisher", 0, "publisher id (optional reference)")
		c.Flags().String("publisher-name", "", "publisher name as printed on the title page")
	}
	_ = booksAddCmd.MarkFlagRequired("title")
	_ = booksAddCmd.MarkFlagRequired("year")
	_ = booksAddCmd.MarkFlagRequired("isbn")

	booksCmd.AddCommand(booksAddCmd, booksListCmd, booksUpdateCmd, booksDeleteCmd)
	rootCmd.AddCommand(booksCmd)
}
