package cmd

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display detailed version information including commit hash and build date.`,
	Run: func(cmd *cobra.Command, args []string) {
		titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
		labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

		fmt.Println(titleStyle.Render("lisp interpreter"))
		fmt.Printf("  %s %s\n", labelStyle.Render("Version:"), Version)
		fmt.Printf("  %s %s\n", labelStyle.Render("Go Version:"), runtime.Version())
		fmt.Printf("  %s %s/%s\n", labelStyle.Render("OS/Arch:"), runtime.GOOS, runtime.GOARCH)
		fmt.Printf("  %s %s\n", labelStyle.Render("Commit:"), GitCommit)
		fmt.Printf("  %s %s\n", labelStyle.Render("Built:"), BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
