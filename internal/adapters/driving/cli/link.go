package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var linkOpenYes bool

var linkCmd = &cobra.Command{
	Use:   "link",
	Short: "Open or copy a driver link",
}

var linkOpenCmd = &cobra.Command{
	Use:   "open <url>",
	Short: "Open a driver link in the default browser",
	Long: `Open an http or https driver link in the default browser.

You are asked to confirm first unless --yes is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runLinkOpen,
}

var linkCopyCmd = &cobra.Command{
	Use:   "copy <url>",
	Short: "Copy a driver link to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE:  runLinkCopy,
}

func init() {
	linkOpenCmd.Flags().BoolVarP(&linkOpenYes, "yes", "y", false, "Open without asking")
	linkCmd.AddCommand(linkOpenCmd)
	linkCmd.AddCommand(linkCopyCmd)
	rootCmd.AddCommand(linkCmd)
}

func runLinkOpen(cmd *cobra.Command, args []string) error {
	if linkActions == nil {
		return errors.New("link actions not configured")
	}

	url := strings.TrimSpace(args[0])
	if !linkActions.IsOpenable(url) {
		return fmt.Errorf("only http and https links can be opened: %s", url)
	}

	if !linkOpenYes {
		cmd.Println(manufacturerWarning)
		cmd.Printf("Open %s? [y/N]: ", url)
		answer := strings.ToLower(readLine(bufio.NewReader(cmd.InOrStdin())))
		if answer != "y" && answer != "yes" {
			cmd.Println("Cancelled")
			return nil
		}
	}

	if err := linkActions.OpenLink(cmd.Context(), url); err != nil {
		return fmt.Errorf("failed to open link: %w", err)
	}
	cmd.Println("Opened in browser")
	return nil
}

func runLinkCopy(cmd *cobra.Command, args []string) error {
	if linkActions == nil {
		return errors.New("link actions not configured")
	}

	if err := linkActions.CopyLink(cmd.Context(), strings.TrimSpace(args[0])); err != nil {
		return fmt.Errorf("failed to copy link: %w", err)
	}
	cmd.Println("Copied to clipboard")
	return nil
}

// manufacturerWarning is shown before a link is opened.
const manufacturerWarning = "Links are suggested by an AI model and may be wrong.\n" +
	"Only install drivers from the manufacturer's or your computer maker's\n" +
	"official website. Check the address before downloading anything."
