package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	"gstbill-backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// R2Archive copies rendered invoice PDFs to an S3-compatible bucket so
// they survive host loss. A nil archive disables archival.
type R2Archive struct {
	client *s3.Client
	bucket string
}

// NewR2Archive builds the archive client from config. Returns nil when
// no endpoint is configured; callers treat that as archival disabled.
func NewR2Archive(cfg *config.Config) *R2Archive {
	if cfg.R2.Endpoint == "" || cfg.R2.AccessKey == "" {
		log.Printf("[Storage] R2 not configured, PDF archival disabled")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.R2.AccessKey,
			cfg.R2.SecretKey,
			"",
		)),
		awsconfig.WithRegion(cfg.R2.Region),
	)
	if err != nil {
		log.Printf("[Storage] Failed to configure R2 client: %v", err)
		return nil
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.R2.Endpoint)
	})

	return &R2Archive{client: client, bucket: cfg.R2.Bucket}
}

// ArchiveInvoicePDF uploads a rendered PDF under invoices/<number>.pdf.
func (a *R2Archive) ArchiveInvoicePDF(ctx context.Context, invoiceNumber string, pdf []byte) error {
	if a == nil {
		return nil
	}

	key := fmt.Sprintf("invoices/%s.pdf", invoiceNumber)
	_, err := a.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(pdf),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return fmt.Errorf("failed to archive %s: %w", key, err)
	}
	return nil
}
