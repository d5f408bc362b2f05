package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"tasnim.dev/aws-key-rotator/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "key-rotator",
		Short: "Delete IAM access keys older than a rotation threshold",
	}

	rootCmd.AddCommand(cmd.NewRunCmd())
	rootCmd.AddCommand(cmd.NewReportCmd())
	rootCmd.AddCommand(cmd.NewLambdaCmd())

	// The Lambda runtime starts the bootstrap binary without arguments.
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" && len(os.Args) == 1 {
		rootCmd.SetArgs([]string{"lambda"})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
