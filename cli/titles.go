package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var titlesCmd = &cobra.Command{
	Use:   "titles",
	Short: "Read-only catalog views",
}

var titlesAvailableCmd = &cobra.Command{
	Use:   "available",
	Short: "List titles with at least one available copy",
	RunE: func(*cobra.Command, []string) error {
		books, err := lib.AvailableTitles()
		if err != nil {
			return err
		}
		w := newTabWriter()
		fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tAVAILABLE")
		for _, b := range books {
			n, err := lib.AvailableCopies(b.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", b.ID, b.Title, b.Author, n)
		}
		return w.Flush()
	},
}

var titlesAllCmd = &cobra.Command{
	Use:   "all",
	Short: "List every title with the status of each copy",
	RunE: func(*cobra.Command, []string) error {
		books, err := lib.AllTitlesWithCopies()
		if err != nil {
			return err
		}
		w := newTabWriter()
		fmt.Fprintln(w, "ID\tTITLE\tAUTHOR\tCOPY\tSTATUS")
		for _, b := range books {
			if len(b.Copies) == 0 {
				fmt.Fprintf(w, "%d\t%s\t%s\t-\t-\n", b.ID, b.Title, b.Author)
				continue
			}
			for _, c := range b.Copies {
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", b.ID, b.Title, b.Author, c.ID, c.Status)
			}
		}
		return w.Flush()
	},
}

func init() {
	titlesCmd.AddCommand(titlesAvailableCmd, titlesAllCmd)
	rootCmd.AddCommand(titlesCmd)
}
