package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/compsmart/bug-fixer/internal/config"
	"github.com/compsmart/bug-fixer/internal/helpers"
	"github.com/compsmart/bug-fixer/internal/server"
	"github.com/compsmart/bug-fixer/internal/services"

	"github.com/spf13/cobra"
)

var (
	configFile string
	bugsFile   string
	dryRun     bool
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "bug-fixer",
		Short: "Bug Fixer - convert a local bug list into tracker formats",
		Long: `Bug Fixer reads bugs from a local JSON file and re-presents them as
Azure DevOps style work items or GitHub issues, serves the project's
static site, and verifies that the bug list loads.`,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config.yaml", "Configuration file path")
	rootCmd.PersistentFlags().StringVarP(&bugsFile, "bugs", "b", "bugs.json", "Path to the bug list file")

	// Work item command
	var workitemCmd = &cobra.Command{
		Use:   "workitem [bug-id]",
		Short: "Show a bug in Azure DevOps work item format",
		Long:  "Convert one bug to work item format, or list all available bugs",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWorkItem,
	}
	workitemCmd.Flags().StringP("organization", "o", "", "Azure DevOps organization name (for URL construction)")
	workitemCmd.Flags().StringP("project", "p", "", "Azure DevOps project name (for URL construction)")
	workitemCmd.Flags().String("format", "json", "Output format (json or summary)")
	workitemCmd.Flags().String("output", "", "Write the JSON work item to a file instead of stdout")
	workitemCmd.Flags().Bool("list", false, "List all available bugs")
	rootCmd.AddCommand(workitemCmd)

	// Issues command
	var issuesCmd = &cobra.Command{
		Use:   "issues",
		Short: "Convert bugs to GitHub issues and submit them",
		Long:  "Convert bugs from the bug list to GitHub issues and create them in a repository",
		RunE:  runIssues,
	}
	issuesCmd.Flags().String("repo", "", "GitHub repository in owner/repo format (overrides config)")
	issuesCmd.Flags().String("token", "", "GitHub personal access token (overrides config)")
	issuesCmd.Flags().StringSlice("ids", nil, "Specific bug IDs to convert (default: all bugs)")
	issuesCmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "Show issues that would be created without creating them")
	rootCmd.AddCommand(issuesCmd)

	// Verify command
	var verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify that the bug list file loads",
		RunE:  runVerify,
	}
	rootCmd.AddCommand(verifyCmd)

	// Serve command
	var serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the static bug-fixer site",
		RunE:  runServe,
	}
	serveCmd.Flags().Int("port", 0, "Port to listen on")
	serveCmd.Flags().String("dir", "", "Directory to serve")
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		helpers.PrintError("Error: %v", err)
		os.Exit(1)
	}
}

func runWorkItem(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	organization, _ := cmd.Flags().GetString("organization")
	if organization == "" {
		organization = cfg.DevOps.Organization
	}
	project, _ := cmd.Flags().GetString("project")
	if project == "" {
		project = cfg.DevOps.Project
	}

	set, err := services.LoadBugs(bugsFile)
	if err != nil {
		helpers.PrintWarning("%v", err)
	}

	if list, _ := cmd.Flags().GetBool("list"); list {
		services.DisplayBugList(set)
		return nil
	}

	if len(args) == 0 {
		return fmt.Errorf("bug-id is required unless --list is specified")
	}

	item := services.WorkItemForID(set, args[0], organization, project)

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "summary":
		services.DisplayWorkItemSummary(item)
	case "json":
		if output, _ := cmd.Flags().GetString("output"); output != "" {
			if err := helpers.SaveJSON(item, output); err != nil {
				return fmt.Errorf("failed to write work item: %w", err)
			}
			helpers.PrintSuccess("Work item written to %s", output)
			return nil
		}

		data, err := json.MarshalIndent(item, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal work item: %w", err)
		}
		fmt.Println(string(data))
	default:
		return fmt.Errorf("unknown format %q (expected json or summary)", format)
	}

	return nil
}

func runIssues(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if token, _ := cmd.Flags().GetString("token"); token != "" {
		cfg.GitHub.Token = token
	}
	if repo, _ := cmd.Flags().GetString("repo"); repo != "" {
		normalized, err := config.ParseRepo(repo)
		if err != nil {
			return fmt.Errorf("invalid --repo value: %w", err)
		}
		cfg.GitHub.Repo = normalized
	}

	if err := cfg.ValidateGitHub(); err != nil {
		return err
	}

	set, err := services.LoadBugs(bugsFile)
	if err != nil {
		return err
	}
	if set.Len() == 0 {
		helpers.PrintWarning("No bugs found in %s", bugsFile)
		return nil
	}

	if ids, _ := cmd.Flags().GetStringSlice("ids"); len(ids) > 0 {
		set = set.Filter(ids)
		if set.Len() == 0 {
			return fmt.Errorf("no bugs found with the specified IDs: %s", strings.Join(ids, ", "))
		}
	}

	githubService := services.NewGitHubService(&cfg.GitHub)

	if !dryRun {
		helpers.PrintInfo("Creating labels in %s...", cfg.GitHub.Repo)
		if err := githubService.EnsureLabels(set); err != nil {
			return err
		}
	}

	return githubService.SubmitBugs(set, dryRun)
}

func runVerify(cmd *cobra.Command, args []string) error {
	set, err := services.LoadBugs(bugsFile)
	if err != nil {
		return err
	}

	if set.Len() == 0 {
		helpers.PrintWarning("No bugs found in %s", bugsFile)
		return nil
	}

	helpers.PrintSuccess("Successfully loaded %d bugs from %s", set.Len(), bugsFile)
	for _, bug := range set.All() {
		fmt.Printf("- %s: %s (%s)\n", bug.ID, bug.Title, bug.Severity)
	}

	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	port, _ := cmd.Flags().GetInt("port")
	if port == 0 {
		port = cfg.Server.Port
	}
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = cfg.Server.Dir
	}

	return server.Start(port, dir)
}
