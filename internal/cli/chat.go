package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MushroomFleet/LLM-Secrets-prototype/internal/agent"
)

func init() {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Interactive session against the simulated model",
		Long:  "Read prompts from the terminal, send each to the simulated model and archive any private thoughts in its responses. Type exit or quit to leave.",
		Run:   runChat,
	}

	RootCmd.AddCommand(cmd)
}

func runChat(cmd *cobra.Command, args []string) {
	a, journal, err := openAgent(cmd)
	if err != nil {
		exitErr("open agent", err)
	}
	defer journal.Close()

	printBanner()
	printKeyStatus(a)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\nprompt> ")
		if !scanner.Scan() {
			break
		}
		prompt := strings.TrimSpace(scanner.Text())
		if prompt == "" {
			continue
		}
		if prompt == "exit" || prompt == "quit" {
			break
		}

		response := respond(prompt)
		public, thoughts, err := a.Process(cmd.Context(), response)
		if err != nil {
			log.Errorf("process: %v", err)
			continue
		}

		fmt.Println()
		fmt.Println(public)

		if len(thoughts) > 0 {
			color.Yellow("\n%d private thought(s) encrypted and stored:", len(thoughts))
			for _, t := range thoughts {
				fmt.Printf(" - #%d  %s  (%d bytes)\n", t.ID, t.Filepath, t.SizeBytes)
			}
		}
	}

	fmt.Println("\nSession ended.")
}

func printBanner() {
	color.New(color.Bold, color.FgGreen).Println("llm-secrets — private thought encryption")
	fmt.Println("Responses are redacted; private segments are encrypted into the private directory.")
}

func printKeyStatus(a *agent.Agent) {
	info := a.KeyInfo()
	fmt.Printf("Cipher: %s (%d-bit key, %s)\n", info.Algorithm, info.KeySizeBits, info.KeyFile)
}
