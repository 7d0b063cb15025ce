package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rustyeddy/tradeplan/config"
	"github.com/rustyeddy/tradeplan/journal"
	"github.com/rustyeddy/tradeplan/session"
)

var rootCmd = &cobra.Command{
	Use:   "tradeplan",
	Short: "A day-trading journal and risk-sizing planner",
	Long: `Tradeplan sizes your trades and keeps score.

It provides tools for:
  - Risk-based position sizing (risk budget / risk per contract)
  - Tracking a trading day slot by slot, with a trade cap or a stop-loss budget
  - Journaling win/loss/break-even outcomes to SQLite
  - Summary statistics, org-mode reports and CSV export`,
}

var (
	dbPath   string
	cfgPath  string
	dateFlag string
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// A .env next to the binary can supply TRADEPLAN_DB / TRADEPLAN_CONFIG;
	// flags still win.
	_ = godotenv.Load()

	rootCmd.PersistentFlags().StringVar(&dbPath, "db",
		envOr("TRADEPLAN_DB", "./tradeplan.db"), "path to the SQLite trade log")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config",
		envOr("TRADEPLAN_CONFIG", "./tradeplan.yaml"), "path to the risk settings file")
	rootCmd.PersistentFlags().StringVar(&dateFlag, "date", "",
		"session date (YYYY-MM-DD; default: stored session date, else today)")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func openJournal() (*journal.SQLite, error) {
	j, err := journal.NewSQLite(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open journal %s: %w", dbPath, err)
	}
	return j, nil
}

func loadSettings() (*config.Config, error) {
	cfg, err := config.LoadFromFile(cfgPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("no risk settings at %s (run `tradeplan config init` first)", cfgPath)
		}
		return nil, err
	}
	return cfg, nil
}

const sessionDateKey = "session_date"

// sessionDate resolves the active trading date: the --date flag, then the
// stored session date, then today.
func sessionDate(j *journal.SQLite) (time.Time, error) {
	if dateFlag != "" {
		d, err := time.Parse(journal.DateLayout, dateFlag)
		if err != nil {
			return time.Time{}, fmt.Errorf("bad --date %q: %w", dateFlag, err)
		}
		return d, nil
	}

	v, ok, err := j.GetState(sessionDateKey)
	if err != nil {
		return time.Time{}, fmt.Errorf("read session date: %w", err)
	}
	if ok {
		d, err := time.Parse(journal.DateLayout, v)
		if err == nil {
			return d, nil
		}
	}
	return time.Now(), nil
}

func loadSession(j *journal.SQLite) (*session.Session, error) {
	cfg, err := loadSettings()
	if err != nil {
		return nil, err
	}
	date, err := sessionDate(j)
	if err != nil {
		return nil, err
	}
	return session.New(cfg, j, date)
}
