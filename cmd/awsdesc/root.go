package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/grimm26/awsdesc/internal/aws"
	"github.com/grimm26/awsdesc/internal/config"
	"github.com/grimm26/awsdesc/internal/render"
	"github.com/grimm26/awsdesc/pkg/resource"
)

// Exit statuses. Credential and describe failures share the generic
// status; classification failures get their own so scripts can tell "you
// gave me garbage" from "AWS said no".
const (
	exitFailure      = 1
	exitUnclassified = 2
)

var (
	version = "0.1.0"

	flagIdentifier string
	flagRegion     string
	flagProfile    string
	flagFull       bool
	flagVerbose    bool
	flagDryRun     bool

	rootCmd = &cobra.Command{
		Use:   "awsdesc",
		Short: "Describe a given AWS resource",
		Long: `awsdesc figures out what kind of AWS resource an identifier names
(a bare ID like i-abc123, an ARN, an s3:// URL, or a DNS name handled
by Route 53) and prints a normalized JSON description of it on stdout.`,
		Example: `  awsdesc --identifier i-0123456789abcdef0
  awsdesc --identifier arn:aws:s3:::mk-flacs
  awsdesc --identifier s3://my-bucket/path/to/key
  awsdesc --identifier www.example.com --verbose
  awsdesc --identifier vpc-1a2b3c4d --region us-west-2 --dry-run`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runDescribe,
	}
)

// Execute runs the root command and maps error families to exit codes.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var credErr *aws.CredentialError
		if errors.As(err, &credErr) {
			fmt.Fprintln(os.Stderr, "Set up AWS credentials or a profile in your environment.")
		}
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var cerr *resource.ClassificationError
	if errors.As(err, &cerr) {
		return exitUnclassified
	}
	return exitFailure
}

func init() {
	rootCmd.Flags().StringVarP(&flagIdentifier, "identifier", "i", "", "identifier for the resource: a name, ID, ARN, or s3 URL")
	_ = rootCmd.MarkFlagRequired("identifier")
	rootCmd.Flags().StringVar(&flagRegion, "region", "", "region the resource is in (defaults to your environment, profile, or default region)")
	rootCmd.Flags().StringVar(&flagProfile, "profile", "", "awscli profile to use for this query")
	rootCmd.Flags().BoolVar(&flagFull, "full", false, "return all info about the resource (affects ec2 instances only)")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "print classification progress on stderr")
	rootCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "classify the identifier and exit without describing it")
}

func runDescribe(cmd *cobra.Command, _ []string) error {
	setupLogging(flagVerbose)
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	profile, region, full := cfg.Merge(flagProfile, flagRegion, flagFull)

	inspector, err := aws.New(ctx, aws.Config{Region: region, Profile: profile})
	if err != nil {
		return err
	}

	identity, err := inspector.Preflight(ctx)
	if err != nil {
		return err
	}
	zlog.Debug().Str("account", identity.Account).Str("caller", identity.ARN).Msg("credentials ok")

	desc, err := inspector.Classify(ctx, flagIdentifier)
	if err != nil {
		return err
	}
	zlog.Debug().
		Str("type", string(desc.Kind)).
		Str("sub_type", string(desc.Sub)).
		Str("name", desc.DisplayName()).
		Msg("classified resource")

	if flagDryRun {
		fmt.Printf("Resource: type = %s, sub type = %s, name = %s\n", desc.Kind, desc.Sub, desc.DisplayName())
		return nil
	}

	data, err := inspector.Describe(ctx, desc, full)
	if err != nil {
		return err
	}
	return render.JSON(os.Stdout, data)
}

// setupLogging keeps stdout clean for the JSON document: all diagnostics
// go through zerolog on stderr, debug level only when verbose.
func setupLogging(verbose bool) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
