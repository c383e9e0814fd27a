package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MushroomFleet/LLM-Secrets-prototype/internal/crypto"
)

func init() {
	cmd := &cobra.Command{
		Use:   "decrypt <file>",
		Short: "Decrypt a stored private thought for audit",
		Long:  "Decrypt a stored .enc file with the key from the key file and print the plaintext. The key file must already exist.",
		Args:  cobra.ExactArgs(1),
		Run:   runDecrypt,
	}

	RootCmd.AddCommand(cmd)
}

func runDecrypt(cmd *cobra.Command, args []string) {
	blob, err := os.ReadFile(args[0])
	if err != nil {
		exitErr("read blob", err)
	}

	// Audit must never mint a fresh key; require the file up front.
	keyPath := getKeyPath()
	if _, err := os.Stat(keyPath); err != nil {
		exitErr("load key", err)
	}
	key, err := crypto.NewProvider(keyPath).Key()
	if err != nil {
		exitErr("load key", err)
	}

	plain, err := crypto.Decrypt(key, blob)
	if err != nil {
		exitErr("decrypt", err)
	}

	fmt.Println(string(plain))
}
