// Package cli implements the llm-secrets CLI commands.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MushroomFleet/LLM-Secrets-prototype/internal/agent"
	"github.com/MushroomFleet/LLM-Secrets-prototype/internal/crypto"
	"github.com/MushroomFleet/LLM-Secrets-prototype/internal/logging"
	"github.com/MushroomFleet/LLM-Secrets-prototype/internal/store"
)

var (
	keyPath     string
	privateDir  string
	verboseFlag bool
)

var log logging.Logger

// respond generates model output for a prompt. Swapped for a live model
// call in real deployments.
var respond agent.Responder = agent.Simulate

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "llm-secrets",
	Short: "Private thought encryption for LLM output",
	Long: "llm-secrets splits generated text into public and private segments, " +
		"encrypts the private ones with AES-256-CBC and archives them on disk.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log = logging.Logger{Verbose: verboseFlag}
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&keyPath, "key", "k", "", "Key file path (default: $LLM_SECRETS_KEY_FILE or key.txt)")
	RootCmd.PersistentFlags().StringVarP(&privateDir, "dir", "d", "", "Private directory (default: $LLM_SECRETS_DIR or private)")
	RootCmd.PersistentFlags().String("db", "", "Journal database path (default: $LLM_SECRETS_DB or <dir>/journal.db)")
	RootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output")
}

func getKeyPath() string {
	if keyPath != "" {
		return keyPath
	}
	if env := os.Getenv("LLM_SECRETS_KEY_FILE"); env != "" {
		return env
	}
	return "key.txt"
}

func getPrivateDir() string {
	if privateDir != "" {
		return privateDir
	}
	if env := os.Getenv("LLM_SECRETS_DIR"); env != "" {
		return env
	}
	return "private"
}

func getJournalPath(cmd *cobra.Command) string {
	if db, _ := cmd.Flags().GetString("db"); db != "" {
		return db
	}
	if env := os.Getenv("LLM_SECRETS_DB"); env != "" {
		return env
	}
	return filepath.Join(getPrivateDir(), "journal.db")
}

// openAgent wires an agent from the resolved paths. Callers must Close the
// returned journal.
func openAgent(cmd *cobra.Command) (*agent.Agent, *store.Journal, error) {
	keys := crypto.NewProvider(getKeyPath())

	files, err := store.NewFileStore(getPrivateDir())
	if err != nil {
		return nil, nil, err
	}

	journal, err := store.NewJournal(getJournalPath(cmd))
	if err != nil {
		return nil, nil, err
	}

	return agent.New(keys, files, journal), journal, nil
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
