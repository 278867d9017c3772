package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/nqcccccc/GQLify/internal/browser"
	"github.com/nqcccccc/GQLify/internal/doctor"
	"github.com/nqcccccc/GQLify/internal/installer"
	"github.com/nqcccccc/GQLify/internal/skills"
)

var (
	version  = "0.3.1"
	buildNum = "0"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)

	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	nameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

func main() {
	browser.Version = version
	browser.BuildNum = buildNum

	rootCmd := &cobra.Command{
		Use:          "gqlify",
		Short:        "Bootstrap a .claude workspace for NestJS/GraphQL projects",
		Version:      version,
		SilenceUsage: true,
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Install the bundled .claude workspace into the current directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit()
		},
	}

	var listMatch string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the skills bundled with this release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(listMatch)
		},
	}
	listCmd.Flags().StringVarP(&listMatch, "match", "m", "", "Filter skills by glob (name or skills/**/SKILL.md path)")

	showCmd := &cobra.Command{
		Use:   "show [skill]",
		Short: "Render a bundled skill to the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(args[0])
		},
	}

	skillsCmd := &cobra.Command{
		Use:   "skills",
		Short: "Browse bundled skills interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser()
		},
	}

	doctorCmd := &cobra.Command{
		Use:   "doctor",
		Short: "Compare an installed .claude workspace against the bundled template",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor()
		},
	}

	rootCmd.AddCommand(initCmd, listCmd, showCmd, skillsCmd, doctorCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runInit() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	report, err := installer.Install(cwd, func(path, status string) {
		fmt.Printf("  %s %s\n", okStyle.Render("+"), path)
	})
	if errors.Is(err, installer.ErrAlreadyInitialized) {
		fmt.Println(warnStyle.Render("[!] .claude already exists — nothing written."))
		fmt.Println(dimStyle.Render("    Existing installs are never updated. Run `gqlify doctor` to see drift."))
		return nil
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, failStyle.Render("Install failed."))
		fmt.Fprintln(os.Stderr, "  - check write permissions for the current directory")
		fmt.Fprintln(os.Stderr, "  - verify the gqlify installation (`gqlify list` should print skills)")
		fmt.Fprintln(os.Stderr, "  - a partial .claude directory may remain; delete it and retry")
		return err
	}

	fmt.Println()
	fmt.Println(headerStyle.Render(" gqlify init "))
	fmt.Printf("  %s %-14s %d files\n", okStyle.Render("[+]"), "Skills", report.Skills)
	fmt.Printf("  %s %-14s %d files\n", okStyle.Render("[+]"), "Docs", report.Docs)
	fmt.Printf("  %s %-14s %d files\n", okStyle.Render("[+]"), "Workspace", report.Other)
	fmt.Printf("\nInstalled %d files into %s\n\n", report.Total(), report.Dest)
	fmt.Println("Next steps:")
	fmt.Println("  - point your AI assistant at .claude/")
	fmt.Println("  - browse skills with `gqlify skills`")
	fmt.Println("  - edit anything under .claude/ to match your team's conventions")
	return nil
}

func runList(match string) error {
	all, err := skills.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("load skills: %w", err)
	}
	if match != "" {
		all, err = skills.Match(all, match)
		if err != nil {
			return err
		}
	}
	if len(all) == 0 {
		fmt.Println("No skills matched")
		return nil
	}
	for _, s := range all {
		fmt.Printf("%s  %s\n", nameStyle.Render(fmt.Sprintf("%-20s", s.Name)), dimStyle.Render(s.Description))
	}
	return nil
}

func runShow(name string) error {
	all, err := skills.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("load skills: %w", err)
	}
	s, ok := skills.Find(all, name)
	if !ok {
		return fmt.Errorf("unknown skill %q — run `gqlify list`", name)
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Println(s.Content)
		return nil
	}
	out, err := r.Render(s.Content)
	if err != nil {
		fmt.Println(s.Content)
		return nil
	}
	fmt.Print(out)
	return nil
}

func runBrowser() error {
	all, err := skills.LoadEmbedded()
	if err != nil {
		return fmt.Errorf("load skills: %w", err)
	}
	p := tea.NewProgram(browser.NewModel(all), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func runDoctor() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	result, err := doctor.Check(cwd)
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(" gqlify doctor "))
	if result.Clean() {
		fmt.Println(okStyle.Render("  [+] install matches the bundled template"))
	}
	for _, p := range result.Missing {
		fmt.Printf("  %s missing   %s\n", failStyle.Render("[-]"), p)
	}
	for _, p := range result.Modified {
		fmt.Printf("  %s modified  %s\n", warnStyle.Render("[~]"), p)
	}
	for _, p := range result.Extra {
		fmt.Printf("  %s extra     %s\n", dimStyle.Render("[?]"), p)
	}
	if len(result.Extra) > 0 {
		fmt.Println(dimStyle.Render("\nExtra and modified files are yours; gqlify never rewrites them."))
	}
	return nil
}
