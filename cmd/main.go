package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lexforge/textlab/cmd/analyze"
)

func main() {
	root := &cobra.Command{
		Use:   "textlab",
		Short: "textlab",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("empty command")
		},
	}

	root.AddCommand(analyze.NewCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
