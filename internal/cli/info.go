package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/MushroomFleet/LLM-Secrets-prototype/internal/crypto"
)

func init() {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show encryption configuration",
		Run:   runInfo,
	}

	RootCmd.AddCommand(cmd)
}

func runInfo(cmd *cobra.Command, args []string) {
	keys := crypto.NewProvider(getKeyPath())
	info := keys.Info()

	out := struct {
		Algorithm   string `json:"algorithm"`
		KeySizeBits int    `json:"key_size_bits"`
		KeyFile     string `json:"key_file"`
		KeyExists   bool   `json:"key_exists"`
		PrivateDir  string `json:"private_dir"`
	}{
		Algorithm:   info.Algorithm,
		KeySizeBits: info.KeySizeBits,
		KeyFile:     info.KeyFile,
		PrivateDir:  getPrivateDir(),
	}
	if _, err := os.Stat(info.KeyFile); err == nil {
		out.KeyExists = true
	}

	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))
}
