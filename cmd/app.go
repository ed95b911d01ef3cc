// Package cmd implements the CLI application to track personal debts.
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/hnpage/ghino/contacts"
	"github.com/hnpage/ghino/store"
)

// Commands lists all subcommands. A main package registers each of them on a
// commander and executes the user-selected one.
var Commands = []subcommands.Command{
	&entryCmd{txType: "debit"},
	&entryCmd{txType: "credit"},
	&payCmd{},
	&editCmd{},
	&rmCmd{},
	&payEditCmd{},
	&payRmCmd{},

	&overviewCmd{},
	&balanceCmd{},
	&contactsCmd{},
	&contactCmd{},
	&historyCmd{},

	&exportCmd{},
	&syncCmd{},
	&remindCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to
// use global variables for the app configuration.

// config is resolved lazily so a .env file loaded by the main package is
// already in the environment.
var config = sync.OnceValue(loadConfig)

// loadConfig wires the global configuration from GHINO_* environment
// variables.
func loadConfig() *appConfig {
	cfg := &appConfig{
		DBFile:     envOr("GHINO_DB", "ghino.db"),
		Currency:   envOr("GHINO_CURRENCY", "VND"),
		Contacts:   envOr("GHINO_CONTACTS", ""),
		SheetURL:   envOr("GHINO_SHEET_URL", ""),
		SheetToken: envOr("GHINO_SHEET_TOKEN", ""),
	}
	if envOr("GHINO_VERBOSE", "") == "" {
		log.SetOutput(io.Discard)
	}
	return cfg
}

type appConfig struct {
	DBFile     string
	Currency   string
	Contacts   string
	SheetURL   string
	SheetToken string
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// OpenStore opens the app database, creating it on first use.
func OpenStore() (*store.Store, error) {
	return store.Open(config().DBFile, config().Currency)
}

// LoadContacts returns the configured contact directory, or an empty one if
// none is configured.
func LoadContacts() *contacts.Directory {
	if config().Contacts == "" {
		return contacts.Empty()
	}
	dir, err := contacts.Load(config().Contacts)
	if err != nil {
		log.Printf("warning, cannot read contacts file %q: %v", config().Contacts, err)
		return contacts.Empty()
	}
	return dir
}

// printMarkdown renders markdown to the terminal, falling back to the raw
// text if the renderer is unavailable.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// confirm asks the user for a yes/no confirmation on stdin.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
