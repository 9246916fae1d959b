// Package cmd implements the hl command line application.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/hledger"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	journalFile = flag.String("f", "", "Path to the journal file (defaults to $HL_LEDGER_FILE)")
	Verbose     = flag.Bool("v", false, "Enable debug logging")
)

var (
	config = defaultConfig()
	logger = zerolog.Nop()
)

// Commands lists the hl subcommands.
var Commands = []subcommands.Command{
	&amountCmd{},
	&tagCmd{},
	&fmtCmd{},
	&pricesCmd{},
	&topicCmd{},
}

// Register registers the subcommands, with the standard help commands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
	c.Register(c.HelpCommand(), "help")
	c.Register(c.FlagsCommand(), "help")
	c.Register(c.CommandsCommand(), "help")
}

// Setup loads the configuration from the environment, applies the global
// flags on top of it, and builds the logger. It must be called after the
// flags are parsed.
func Setup() error {
	cfg, err := LoadConfig()
	if err != nil {
		return err
	}
	if *journalFile != "" {
		cfg.LedgerFile = *journalFile
	}
	if *Verbose {
		cfg.LogLevel = "debug"
	}
	config = cfg
	logger = NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	logger.Debug().Str("journal", cfg.LedgerFile).Str("style", cfg.Style).Msg("configuration loaded")
	return nil
}

// journalPath returns the journal to work on: the first argument if any,
// the configured journal file otherwise.
func journalPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return config.LedgerFile
}

// decodeJournalFile opens and decodes a journal file.
func decodeJournalFile(path string) (*hledger.Journal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open journal: %w", err)
	}
	defer f.Close()

	j, err := hledger.DecodeJournal(path, f)
	if err != nil {
		return nil, err
	}
	logger.Debug().Str("journal", path).Int("entries", j.Len()).Msg("journal decoded")
	return j, nil
}
