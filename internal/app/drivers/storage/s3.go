package storage

import (
	"context"
	"halo-service/internal/app/config"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

func NewS3(ctx context.Context, driverConfig *config.DriverConfig) *s3.Client {
	options := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(driverConfig.S3.Region),
	}
	if driverConfig.S3.AccessKeyID != "" {
		options = append(options, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(driverConfig.S3.AccessKeyID, driverConfig.S3.SecretAccessKey, ""),
		))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, options...)
	if err != nil {
		log.Fatalf("Failed to load AWS config: %s", err.Error())
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if driverConfig.S3.Endpoint != "" {
			o.BaseEndpoint = aws.String(driverConfig.S3.Endpoint)
			o.UsePathStyle = true
		}
	})

	log.Println("Successfully initialized S3 client")
	return client
}
