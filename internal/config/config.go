package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config represents the application configuration
type Config struct {
	DevOps DevOpsConfig `yaml:"devops"`
	GitHub GitHubConfig `yaml:"github"`
	Server ServerConfig `yaml:"server"`
}

// DevOpsConfig holds the organization context used to build work item URLs
type DevOpsConfig struct {
	Organization string `yaml:"organization"`
	Project      string `yaml:"project"`
}

// GitHubConfig represents GitHub API configuration
type GitHubConfig struct {
	Token      string `yaml:"token"`
	Repo       string `yaml:"repo"`
	APIBaseURL string `yaml:"api_base_url"`
	Timeout    int    `yaml:"timeout_seconds"`
}

// ServerConfig represents file server configuration
type ServerConfig struct {
	Port int    `yaml:"port"`
	Dir  string `yaml:"dir"`
}

// LoadConfig loads configuration from a YAML file, then applies overrides
// from the environment (a .env file is honored if present). A missing config
// file is not an error: defaults apply and only the GitHub section requires
// explicit values.
func LoadConfig(configPath string) (*Config, error) {
	_ = godotenv.Load()

	config := defaultConfig()

	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		config.GitHub.Token = token
	}
	if repoURL := os.Getenv("GITHUB_REPO"); repoURL != "" {
		repo, err := ParseRepo(repoURL)
		if err != nil {
			return nil, fmt.Errorf("invalid GITHUB_REPO: %w", err)
		}
		config.GitHub.Repo = repo
	}

	config.applyDefaults()
	return config, nil
}

func defaultConfig() *Config {
	return &Config{
		DevOps: DevOpsConfig{
			Organization: "organization",
			Project:      "project",
		},
		GitHub: GitHubConfig{
			APIBaseURL: "https://api.github.com",
			Timeout:    30,
		},
		Server: ServerConfig{
			Port: 8000,
			Dir:  ".",
		},
	}
}

func (c *Config) applyDefaults() {
	defaults := defaultConfig()

	if c.DevOps.Organization == "" {
		c.DevOps.Organization = defaults.DevOps.Organization
	}
	if c.DevOps.Project == "" {
		c.DevOps.Project = defaults.DevOps.Project
	}
	if c.GitHub.APIBaseURL == "" {
		c.GitHub.APIBaseURL = defaults.GitHub.APIBaseURL
	}
	if c.GitHub.Timeout <= 0 {
		c.GitHub.Timeout = defaults.GitHub.Timeout
	}
	if c.Server.Port <= 0 {
		c.Server.Port = defaults.Server.Port
	}
	if c.Server.Dir == "" {
		c.Server.Dir = defaults.Server.Dir
	}
}

// ValidateGitHub validates the fields required for issue submission
func (c *Config) ValidateGitHub() error {
	if c.GitHub.Token == "" {
		return fmt.Errorf("GitHub token is required (set github.token or GITHUB_TOKEN)")
	}

	if c.GitHub.Repo == "" {
		return fmt.Errorf("GitHub repository is required (set github.repo or GITHUB_REPO)")
	}

	if _, err := ParseRepo(c.GitHub.Repo); err != nil {
		return fmt.Errorf("invalid GitHub repository: %w", err)
	}

	return nil
}

// ParseRepo normalizes a repository reference to "owner/repo" form. It
// accepts either that form directly or a full clone URL such as
// https://github.com/owner/repo.git.
func ParseRepo(ref string) (string, error) {
	path := ref
	if strings.Contains(ref, "://") {
		parsed, err := url.Parse(ref)
		if err != nil {
			return "", fmt.Errorf("failed to parse repository URL: %w", err)
		}
		path = parsed.Path
	}

	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return "", fmt.Errorf("expected owner/repo or a GitHub URL, got %q", ref)
	}

	repo := strings.TrimSuffix(parts[1], ".git")
	return parts[0] + "/" + repo, nil
}
