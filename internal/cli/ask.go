package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "ask <prompt>",
		Short: "Send a prompt to the simulated model and archive its private thoughts",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAsk,
	}

	cmd.Flags().Bool("raw", false, "Also print the unredacted model response")

	RootCmd.AddCommand(cmd)
}

func runAsk(cmd *cobra.Command, args []string) {
	prompt := strings.Join(args, " ")
	raw, _ := cmd.Flags().GetBool("raw")

	a, journal, err := openAgent(cmd)
	if err != nil {
		exitErr("open agent", err)
	}
	defer journal.Close()

	response := respond(prompt)
	if raw {
		color.New(color.Bold).Println("Raw response:")
		fmt.Println(response)
		fmt.Println()
	}

	public, thoughts, err := a.Process(cmd.Context(), response)
	if err != nil {
		exitErr("process response", err)
	}

	color.New(color.Bold).Println("Public output:")
	fmt.Println(public)

	if len(thoughts) == 0 {
		fmt.Println("\nNo private thoughts identified.")
		return
	}

	fmt.Printf("\nIdentified %d private thought(s):\n", len(thoughts))
	for _, t := range thoughts {
		fmt.Printf(" - #%d  %s  (%d bytes)\n", t.ID, t.Filepath, t.SizeBytes)
	}
}
