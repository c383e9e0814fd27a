package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored private thought files",
		Run:   runList,
	}

	cmd.Flags().IntP("limit", "l", 20, "Max journal entries")
	cmd.Flags().Bool("files-only", false, "Only output file paths")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	limit, _ := cmd.Flags().GetInt("limit")
	filesOnly, _ := cmd.Flags().GetBool("files-only")

	a, journal, err := openAgent(cmd)
	if err != nil {
		exitErr("open agent", err)
	}
	defer journal.Close()

	paths, err := a.StoredFiles()
	if err != nil {
		exitErr("list files", err)
	}

	if filesOnly {
		for _, p := range paths {
			fmt.Println(p)
		}
		return
	}

	for _, p := range paths {
		size := int64(0)
		if info, err := os.Stat(p); err == nil {
			size = info.Size()
		}
		fmt.Printf("%s  (%d bytes)\n", p, size)
	}
	if len(paths) == 0 {
		fmt.Println("No encrypted private thoughts stored yet.")
	}

	entries, err := journal.Recent(cmd.Context(), limit)
	if err != nil {
		exitErr("read journal", err)
	}
	if len(entries) > 0 {
		fmt.Println("\nRecent journal entries:")
		b, _ := json.MarshalIndent(entries, "", "  ")
		fmt.Println(string(b))
	}
}
