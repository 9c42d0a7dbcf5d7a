package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"library-catalog/library"
)

var librariansCmd = &cobra.Command{
	Use:   "librarians",
	Short: "Manage staff records",
}

var librariansAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a staff record for an existing patron",
	RunE: func(cmd *cobra.Command, _ []string) error {
		userID, _ := cmd.Flags().GetInt64("user")
		position, _ := cmd.Flags().GetString("position")

		employed := time.Now()
		if cmd.Flags().Changed("date") {
			s, _ := cmd.Flags().GetString("date")
			var err error
			if employed, err = parseDate(s); err != nil {
				return err
			}
		}

		l, err := lib.CreateLibrarian(&library.Librarian{
			UserID:         library.UserID(userID),
			EmploymentDate: employed,
			Position:       position,
		})
		if err != nil {
			return err
		}
		fmt.Printf("Created librarian %d for user %d\n", l.ID, l.UserID)
		return nil
	},
}

var librariansListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all staff records",
	RunE: func(*cobra.Command, []string) error {
		librarians, err := lib.AllLibrarians()
		if err != nil {
			return err
		}
		w := newTabWriter()
		fmt.Fprintln(w, "ID\tUSER\tEMPLOYED\tPOSITION")
		for _, l := range librarians {
			fmt.Fprintf(w, "%d\t%d\t%s\t%s\n", l.ID, l.UserID, dateStr(l.EmploymentDate), l.Position)
		}
		return w.Flush()
	},
}

var librariansDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a staff record (the linked patron is kept)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := parseID(args[0], "librarian")
		if err != nil {
			return err
		}
		if err := lib.DeleteLibrarian(library.LibrarianID(id)); err != nil {
			return err
		}
		fmt.Printf("Deleted librarian %d\n", id)
		return nil
	},
}

func init() {
	librariansAddCmd.Flags().Int64("user", 0, "user id the staff record belongs to")
	librariansAddCmd.Flags().String("position", "", "job title")
	librariansAddCmd.Flags().String("date", "", "employment date (defaults to today)")
	_ = librariansAddCmd.MarkFlagRequired("user")

	librariansCmd.AddCommand(librariansAddCmd, librariansListCmd, librariansDeleteCmd)
	rootCmd.AddCommand(librariansCmd)
}
