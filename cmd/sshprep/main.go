package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"sshprep/internal/config"
	"sshprep/internal/instructions"
	"sshprep/internal/ui"
)

// rootCmd launches the interactive TUI when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "sshprep",
	Short: "Manage SSH connection profiles and generate enablement commands",
	Long: `sshprep keeps a local set of named SSH connection profiles
(IP, user, port, key path) and renders the shell commands for enabling
SSH on a target machine: print the public key, enable the daemon and
install an authorized key, and clear stale known-hosts fingerprints.

Run without arguments to start the interactive interface.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

// listCmd prints the saved profiles.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.NewStore()
		if err != nil {
			return err
		}
		store.Load()

		for _, p := range store.ListProfiles() {
			fmt.Printf("%s\t%s@%s:%s\n", p.Name, p.User, p.IP, p.Port)
		}
		return nil
	},
}

// genCmd prints the instruction blocks for a saved profile.
var genCmd = &cobra.Command{
	Use:   "gen [profile]",
	Short: "Print the SSH enablement commands for a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := config.NewStore()
		if err != nil {
			return err
		}
		store.Load()

		p, ok := store.GetProfile(args[0])
		if !ok {
			return fmt.Errorf("no profile named %q", args[0])
		}

		blocks, ok := instructions.Generate(p)
		if !ok {
			return fmt.Errorf("profile %q is missing one or more of ip, user, port, key path", args[0])
		}

		fmt.Print(blocks.Render())
		return nil
	},
}

func runTUI() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("stdout is not a terminal; use 'sshprep list' or 'sshprep gen'")
	}

	logfilePath := os.Getenv("SSHPREP_LOG")
	if logfilePath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("unable to get user home directory: %w", err)
		}
		configDir := filepath.Join(homeDir, ".config", "sshprep")
		if err := os.MkdirAll(configDir, 0700); err != nil {
			return fmt.Errorf("unable to create config directory: %w", err)
		}
		logfilePath = filepath.Join(configDir, "sshprep.log")
	}

	logCloser, err := tea.LogToFile(logfilePath, "")
	if err != nil {
		return fmt.Errorf("unable to set log file: %w", err)
	}
	defer logCloser.Close()

	store, err := config.NewStore()
	if err != nil {
		return fmt.Errorf("error initializing config store: %w", err)
	}
	store.Load()

	model := ui.NewModel(store)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v\n", err)
		return err
	}
	return nil
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(genCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
