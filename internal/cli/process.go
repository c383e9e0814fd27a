package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MushroomFleet/LLM-Secrets-prototype/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "process [text]",
		Short: "Redact and archive a block of text",
		Long:  "Split text into segments, encrypt the private ones and print the redacted output. Text can be a positional arg or piped via stdin.",
		Run:   runProcess,
	}

	RootCmd.AddCommand(cmd)
}

type processResult struct {
	PublicText string          `json:"public_text"`
	Thoughts   []model.Thought `json:"thoughts"`
}

func runProcess(cmd *cobra.Command, args []string) {
	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			b, err := io.ReadAll(os.Stdin)
			if err != nil {
				exitErr("read stdin", err)
			}
			text = string(b)
		}
	}

	if strings.TrimSpace(text) == "" {
		exitErr("process", fmt.Errorf("text is required (positional arg or stdin)"))
	}

	a, journal, err := openAgent(cmd)
	if err != nil {
		exitErr("open agent", err)
	}
	defer journal.Close()

	public, thoughts, err := a.Process(cmd.Context(), text)
	if err != nil {
		exitErr("process", err)
	}
	log.Infof("stored %d private thought(s)", len(thoughts))

	if thoughts == nil {
		thoughts = []model.Thought{}
	}
	b, _ := json.MarshalIndent(processResult{PublicText: public, Thoughts: thoughts}, "", "  ")
	fmt.Println(string(b))
}
