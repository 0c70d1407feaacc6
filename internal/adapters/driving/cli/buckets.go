package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "List S3 buckets for a profile",
	Long: `List the S3 buckets visible to an AWS profile.

Uses the selected profile unless --profile is given.`,
	Args: cobra.NoArgs,
	RunE: runBuckets,
}

func init() {
	bucketsCmd.Flags().StringP("profile", "p", "", "AWS profile (default: selected profile)")
	rootCmd.AddCommand(bucketsCmd)
}

func runBuckets(cmd *cobra.Command, _ []string) error {
	if awsService == nil {
		return errors.New("aws service not configured")
	}

	profile, err := cmd.Flags().GetString("profile")
	if err != nil {
		return err
	}

	buckets, err := awsService.ListBuckets(cmd.Context(), profile)
	if err != nil {
		return err
	}

	if len(buckets) == 0 {
		cmd.Println("No buckets found.")
		return nil
	}

	for _, b := range buckets {
		if b.CreatedAt.IsZero() {
			cmd.Println(b.Name)
			continue
		}
		cmd.Printf("%s  %s\n", b.CreatedAt.Format("2006-01-02 15:04:05"), b.Name)
	}
	return nil
}
