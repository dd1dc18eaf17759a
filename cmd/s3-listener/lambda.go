package main

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newLambdaCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "lambda",
		Short: "Serve as the AWS Lambda function handler",
		Long: `Start the application once per execution environment and handle every invocation
with the built-in object logger. Telemetry is flushed after each invocation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLambda(cmd.Context(), flags)
		},
	}
}

func runLambda(ctx context.Context, flags *rootFlags) error {
	if ctx == nil {
		ctx = context.Background()
	}

	svc, err := startService(ctx, flags)
	if err != nil {
		return err
	}

	lambda.StartWithOptions(
		lambdaHandler(svc),
		lambda.WithEnableSIGTERM(func() {
			if err := svc.stop(context.Background()); err != nil {
				svc.log.Error("shutdown failed", zap.Error(err))
			}
		}),
	)
	return nil
}

func lambdaHandler(svc *service) func(ctx context.Context, raw json.RawMessage) error {
	return func(ctx context.Context, raw json.RawMessage) error {
		return svc.handle(ctx, raw)
	}
}
