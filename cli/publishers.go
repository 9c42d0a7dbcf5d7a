package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"library-catalog/library"
)

var publishersCmd = &cobra.Command{
	Use:   "publishers",
	Short: "Manage publishers",
}

var publishersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Register a new publisher",
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, _ := cmd.Flags().GetString("name")
		address, _ := cmd.Flags().GetString("address")
		phone, _ := cmd.Flags().GetString("phone")

		p, err := lib.CreatePublisher(&library.Publisher{Name: name, Address: address, Phone: phone})
		if err != nil {
			return err
		}
		fmt.Printf("Created publisher %d (%s)\n", p.ID, p.Name)
		return nil
	},
}

var publishersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all publishers",
	RunE: func(*cobra.Command, []string) error {
		publishers, err := lib.AllPublishers()
		if err != nil {
			return err
		}
		w := newTabWriter()
		fmt.Fprintln(w, "ID\tNAME\tADDRESS\tPHONE")
		for _, p := range publishers {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Name, p.Address, p.Phone)
		}
		return w.Flush()
	},
}

var publishersUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a publisher's details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "publisher")
		if err != nil {
			return err
		}
		p, err := lib.PublisherByID(library.PublisherID(id))
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("publisher %d not found", id)
		}

		if cmd.Flags().Changed("name") {
			p.Name, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("address") {
			p.Address, _ = cmd.Flags().GetString("address")
		}
		if cmd.Flags().Changed("phone") {
			p.Phone, _ = cmd.Flags().GetString("phone")
		}

		if _, err := lib.UpdatePublisher(p); err != nil {
			return err
		}
		fmt.Printf("Updated publisher %d\n", p.ID)
		return nil
	},
}

var publishersDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a publisher (blocked while books reference it)",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id, err := parseID(args[0], "publisher")
		if err != nil {
			return err
		}
		if err := lib.DeletePublisher(library.PublisherID(id)); err != nil {
			return err
		}
		fmt.Printf("Deleted publisher %d\n", id)
		return nil
	},
}

func init() {
	publishersAddCmd.Flags().String("name", "", "publisher name")
	publishersAddCmd.Flags().String("address", "", "postal address")
	publishersAddCmd.Flags().String("phone", "", "phone number")
	_ = publishersAddCmd.MarkFlagRequired("name")

	publishersUpdateCmd.Flags().String("name", "", "publisher name")
	publishersUpdateCmd.Flags().String("address", "", "postal address")
	publishersUpdateCmd.Flags().String("phone", "", "phone number")

	publishersCmd.AddCommand(publishersAddCmd, publishersListCmd, publishersUpdateCmd, publishersDeleteCmd)
	rootCmd.AddCommand(publishersCmd)
}
