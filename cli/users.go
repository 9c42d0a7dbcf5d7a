package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"library-catalog/library"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage patrons",
}

var usersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new patron",
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		phone, _ := cmd.Flags().GetString("phone")
		address, _ := cmd.Flags().GetString("address")

		u, err := lib.CreateUser(&library.User{Name: name, Email: email, Phone: phone, Address: address})
		if err != nil {
			return err
		}
		fmt.Printf("Created user %d (%s)\n", u.ID, u.Name)
		return nil
	},
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all patrons",
	RunE: func(*cobra.Command, []string) error {
		users, err := lib.AllUsers()
		if err != nil {
			return err
		}
		w := newTabWriter()
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tADDRESS")
		for _, u := range users {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Phone, u.Address)
		}
		return w.Flush()
	},
}

var usersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a patron's details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "user")
		if err != nil {
			return err
		}
		u, err := lib.UserByID(library.UserID(id))
		if err != nil {
			return err
		}
		if u == nil {
			return fmt.Errorf("user %d not found", id)
		}

		if cmd.Flags().Changed("name") {
			u.Name, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("email") {
			u.Email, _ = cmd.Flags().GetString("email")
		}
		if cmd.Flags().Changed("phone") {
			u.Phone, _ = cmd.Flags().GetString("phone")
		}
		if cmd.Flags().Changed("address") {
			u.Address, _ = cmd.Flags().GetString("address")
		}

		if _, err := lib.UpdateUser(u); err != nil {
			return err
		}
		fmt.Printf("Updated user %d\n", u.ID)
		return nil
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a patron (blocked while they have borrowings)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := parseID(args[0], "user")
		if err != nil {
			return err
		}
		if err := lib.DeleteUser(library.UserID(id)); err != nil {
			return err
		}
		fmt.Printf("Deleted user %d\n", id)
		return nil
	},
}

func init() {
	usersAddCmd.Flags().String("name", "", "patron name")
	usersAddCmd.Flags().String("email", "", "patron email (unique)")
	usersAddCmd.Flags().String("phone", "", "phone number")
	usersAddCmd.Flags().String("address", "", "postal address")
	_ = usersAddCmd.MarkFlagRequired("name")
	_ = usersAddCmd.MarkFlagRequired("email")

	usersUpdateCmd.Flags().String("name", "", "patron name")
	usersUpdateCmd.Flags().String("email", "", "patron email (unique)")
	usersUpdateCmd.Flags().String("phone", "", "phone number")
	usersUpdateCmd.Flags().String("address", "", "postal address")

	usersCmd.AddCommand(usersAddCmd, usersListCmd, usersUpdateCmd, usersDeleteCmd)
	rootCmd.AddCommand(usersCmd)
}
