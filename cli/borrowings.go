package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"library-catalog/library"
)

var borrowingsCmd = &cobra.Command{
	Use:   "borrowings",
	Short: "Manage the borrow/return lifecycle",
}

var borrowingsBeginCmd = &cobra.Command{
	Use:   "begin",
	Short: "Lend the first available copy of a book to a patron",
	RunE: func(cmd *cobra.Command, _ []string) error {
		userID, _ := cmd.Flags().GetInt64("user")
		bookID, _ := cmd.Flags().GetInt64("book")

		borrowDate := time.Now()
		if cmd.Flags().Changed("date") {
			s, _ := cmd.Flags().GetString("date")
			var err error
			if borrowDate, err = parseDate(s); err != nil {
				return err
			}
		}

		b, err := lib.BeginBorrowing(library.UserID(userID), library.BookID(bookID), borrowDate)
		if err != nil {
			return err
		}
		fmt.Printf("Created borrowing %d: copy %d lent to user %d on %s\n",
			b.ID, b.CopyID, b.UserID, dateStr(b.BorrowDate))
		return nil
	},
}

var borrowingsReturnCmd = &cobra.Command{
	Use:   "return <id>",
	Short: "Settle a borrowing with today's date",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := parseID(args[0], "borrowing")
		if err != nil {
			return err
		}
		b, err := lib.ReturnBorrowing(library.BorrowingID(id))
		if err != nil {
			return err
		}
		fmt.Printf("Borrowing %d settled, copy %d is available again\n", b.ID, b.CopyID)
		return nil
	},
}

var borrowingsSettleCmd = &cobra.Command{
	Use:   "settle <id>",
	Short: "Settle a borrowing with an explicit return date",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "borrowing")
		if err != nil {
			return err
		}
		s, _ := cmd.Flags().GetString("date")
		returnDate, err := parseDate(s)
		if err != nil {
			return err
		}
		b, err := lib.SettleBorrowing(library.BorrowingID(id), returnDate)
		if err != nil {
			return err
		}
		fmt.Printf("Borrowing %d settled on %s, copy %d is available again\n",
			b.ID, dateStr(*b.ReturnDate), b.CopyID)
		return nil
	},
}

var borrowingsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Erase a borrowing record and free its copy",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := parseID(args[0], "borrowing")
		if err != nil {
			return err
		}
		if err := lib.DeleteBorrowing(library.BorrowingID(id)); err != nil {
			return err
		}
		fmt.Printf("Deleted borrowing %d\n", id)
		return nil
	},
}

var borrowingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all borrowings with patron and title",
	RunE: func(*cobra.Command, []string) error {
		borrowings, err := lib.AllBorrowings()
		if err != nil {
			return err
		}
		return printBorrowings(borrowings)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show one patron's borrowing history",
	RunE: func(cmd *cobra.Command, _ []string) error {
		userID, _ := cmd.Flags().GetInt64("user")
		borrowings, err := lib.BorrowingsByUser(library.UserID(userID))
		if err != nil {
			return err
		}
		return printBorrowings(borrowings)
	},
}

// printBorrowings renders borrowings the way the management screen did:
// patron name and book title resolved per row through the gateways.
func printBorrowings(borrowings []library.Borrowing) error {
	w := newTabWriter()
	fmt.Fprintln(w, "ID\tUSER\tTITLE\tBORROWED\tRETURNED")
	for _, b := range borrowings {
		userName := "?"
		if u, err := lib.UserByID(b.UserID); err == nil && u != nil {
			userName = u.Name
		}
		title := "?"
		if c, err := lib.CopyByID(b.CopyID); err == nil && c != nil {
			if bk, err := lib.BookByID(c.BookID); err == nil && bk != nil {
				title = bk.Title
			}
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			b.ID, userName, title, dateStr(b.BorrowDate), maybeDateStr(b.ReturnDate))
	}
	return w.Flush()
}

func init() {
	borrowingsBeginCmd.Flags().Int64("user", 0, "borrowing patron's user id")
	borrowingsBeginCmd.Flags().Int64("book", 0, "book id to lend a copy of")
	borrowingsBeginCmd.Flags().String("date", "", "borrow date (defaults to today)")
	_ = borrowingsBeginCmd.MarkFlagRequired("user")
	_ = borrowingsBeginCmd.MarkFlagRequired("book")

	borrowingsSettleCmd.Flags().String("date", "", "return date")
	_ = borrowingsSettleCmd.MarkFlagRequired("date")

	historyCmd.Flags().Int64("user", 0, "user id")
	_ = historyCmd.MarkFlagRequired("user")

	borrowingsCmd.AddCommand(borrowingsBeginCmd, borrowingsReturnCmd, borrowingsSettleCmd,
		borrowingsDeleteCmd, borrowingsListCmd)
	rootCmd.AddCommand(borrowingsCmd, historyCmd)
}
