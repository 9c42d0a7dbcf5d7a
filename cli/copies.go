package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"library-catalog/library"
)

var copiesCmd = &cobra.Command{
	Use:   "copies",
	Short: "Manage physical copies",
}

var copiesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add copies of a title",
	RunE: func(cmd *cobra.Command, _ []string) error {
		bookID, _ := cmd.Flags().GetInt64("book")
		count, _ := cmd.Flags().GetInt("count")
		if count < 1 {
			return fmt.Errorf("count must be at least 1")
		}

		for i := 0; i < count; i++ {
			c, err := lib.CreateCopy(&library.Copy{BookID: library.BookID(bookID)})
			if err != nil {
				return err
			}
			fmt.Printf("Created copy %d of book %d\n", c.ID, c.BookID)
		}
		return nil
	},
}

var copiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List copies, optionally for one title",
	RunE: func(cmd *cobra.Command, _ []string) error {
		var (
			copies []library.Copy
			err    error
		)
		if cmd.Flags().Changed("book") {
			bookID, _ := cmd.Flags().GetInt64("book")
			copies, err = lib.CopiesByBook(library.BookID(bookID))
		} else {
			copies, err = lib.AllCopies()
		}
		if err != nil {
			return err
		}

		w := newTabWriter()
		fmt.Fprintln(w, "ID\tBOOK\tSTATUS")
		for _, c := range copies {
			fmt.Fprintf(w, "%d\t%d\t%s\n", c.ID, c.BookID, c.Status)
		}
		return w.Flush()
	},
}

var copiesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a copy (its borrowing history must be cleared first)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := parseID(args[0], "copy")
		if err != nil {
			return err
		}
		if err := lib.DeleteCopy(library.CopyID(id)); err != nil {
			return err
		}
		fmt.Printf("Deleted copy %d\n", id)
		return nil
	},
}

func init() {
	copiesAddCmd.Flags().Int64("book", 0, "book id the copies belong to")
	copiesAddCmd.Flags().Int("count", 1, "number of copies to add")
	_ = copiesAddCmd.MarkFlagRequired("book")

	copiesListCmd.Flags().Int64("book", 0, "only list copies of this book")

	copiesCmd.AddCommand(copiesAddCmd, copiesListCmd, copiesDeleteCmd)
	rootCmd.AddCommand(copiesCmd)
}
