// Package cli is the presentation layer: a command tree over the library
// core. It renders entities as tables and core errors as messages; all rules
// live in the library package.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"library-catalog/library"
)

const dateLayout = "2006-01-02"

var (
	dbPath string
	log    *logrus.Logger
	lib    *library.Library
)

var rootCmd = &cobra.Command{
	Use:          "librarian",
	Short:        "Manage a lending library's catalog, patrons and circulation",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		_ = godotenv.Load()
		log = newLogger()

		if !cmd.Flags().Changed("db") {
			if env := os.Getenv("LIBRARY_DB"); env != "" {
				dbPath = env
			}
		}

		var err error
		lib, err = library.NewLibrary(dbPath, log)
		if err != nil {
			return fmt.Errorf("open library database: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(*cobra.Command, []string) error {
		if lib == nil {
			return nil
		}
		return lib.Close()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "library.db", "path to the SQLite database")
}

// Execute runs the command tree and exits non-zero on any error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	level := logrus.WarnLevel
	if env := os.Getenv("LIBRARY_LOG_LEVEL"); env != "" {
		if parsed, err := logrus.ParseLevel(env); err == nil {
			level = parsed
		}
	}
	l.SetLevel(level)
	return l
}

func newTabWriter() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

func parseID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%s id must be a positive number, got %q", what, arg)
	}
	return id, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date must look like %s, got %q", dateLayout, s)
	}
	return t, nil
}

func dateStr(t time.Time) string { return t.Format(dateLayout) }

func maybeDateStr(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return dateStr(*t)
}
