package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/deploy"
	"github.com/jonathan/resume-studio/internal/rendering"
)

var (
	deployFlags     inputFlags
	deployTarget    string
	deployToken     string
	deployGitHubAPI string
	deployRepo      string
)

// newS3Putter is replaced in tests
var newS3Putter = func(ctx context.Context, cfg deploy.S3Config) (deploy.ObjectPutter, error) {
	return deploy.NewS3Client(ctx, cfg)
}

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Publish the static portfolio to GitHub Pages or S3",
	Long: "Renders the static portfolio and publishes it as index.html. The github target pushes to a " +
		"my-portfolio repository of the token's owner and enables Pages; the s3 target uploads to the bucket " +
		"configured by the S3_* environment variables.",
	RunE: runDeploy,
}

func init() {
	addInputFlags(deployCmd, &deployFlags)
	deployCmd.Flags().StringVar(&deployTarget, "target", "github", "Hosting target: github or s3")
	deployCmd.Flags().StringVar(&deployToken, "github-token", "", "GitHub token (default $GITHUB_TOKEN)")
	deployCmd.Flags().StringVar(&deployGitHubAPI, "github-api", deploy.DefaultGitHubAPI, "GitHub REST API base URL")
	deployCmd.Flags().StringVar(&deployRepo, "repo", deploy.DefaultRepoName, "GitHub repository name")
	rootCmd.AddCommand(deployCmd)
}

func newPublisher(ctx context.Context, logger *zap.Logger) (deploy.Publisher, error) {
	switch deployTarget {
	case "github":
		token := pick(deployToken, os.Getenv("GITHUB_TOKEN"))
		if token == "" {
			return nil, fmt.Errorf("GitHub token is required: pass --github-token or set GITHUB_TOKEN")
		}
		g := deploy.NewGitHubPages(token, logger)
		g.BaseURL = deployGitHubAPI
		g.RepoName = deployRepo
		return g, nil
	case "s3":
		s3cfg := deploy.S3Config(config.LoadServerConfig().S3)
		if err := s3cfg.Validate(); err != nil {
			return nil, err
		}
		client, err := newS3Putter(ctx, s3cfg)
		if err != nil {
			return nil, err
		}
		return deploy.NewS3Bucket(client, s3cfg, logger), nil
	default:
		return nil, fmt.Errorf("unknown deploy target %q: use github or s3", deployTarget)
	}
}

func runDeploy(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(&deployFlags)
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	publisher, err := newPublisher(cmd.Context(), logger)
	if err != nil {
		return err
	}

	model, cleanup, err := loadResume(cmd.Context(), cfg, deployFlags.userID, logger)
	defer cleanup()
	if err != nil {
		return err
	}
	if !model.HasName() {
		return fmt.Errorf("resume needs a full name before it can be published")
	}

	html, err := rendering.NewStatic(rendering.SystemClock{}).Render(model, pick(deployFlags.template, cfg.Template))
	if err != nil {
		return err
	}
	result, err := publisher.Publish(cmd.Context(), deploy.Site{HTML: html, OwnerName: model.PersonalInfo.FullName})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Published: %s\n", result.URL)
	if result.RepoURL != "" {
		_, _ = fmt.Fprintf(out, "Repository: %s\n", result.RepoURL)
	}
	return nil
}
