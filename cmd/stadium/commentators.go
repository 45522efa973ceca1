package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stadium/internal/commentary"
)

var commentatorsCmd = &cobra.Command{
	Use:   "commentators",
	Short: "List commentary providers",
	Long:  `Shows every commentary provider registered in the stadium.`,
	Run:   runCommentators,
}

func runCommentators(_ *cobra.Command, _ []string) {
	providers := commentary.List()

	if len(providers) == 0 {
		fmt.Println("No commentators available.")
		return
	}

	fmt.Println("Available commentators:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, p := range providers {
		if len(p.Name) > maxNameLen {
			maxNameLen = len(p.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, p := range providers {
		fmt.Printf("  %-*s  %s\n", maxNameLen, p.Name, p.Description)
	}

	fmt.Println()
	fmt.Println("Pick one with 'stadium run --commentator <name>'.")
}
