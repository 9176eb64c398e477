package s3source

import (
	"context"
	"errors"
	"fmt"
	"io"

	"fishing-finder/internal/domain/fish"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// el documento del catálogo es chico; cualquier cosa más grande es un error de configuración
const maxObjectSize = 4 << 20

// Config del origen S3 (AWS o MinIO).
type Config struct {
	Bucket    string
	Key       string
	Region    string
	Endpoint  string // opcional; habilita endpoint propio (MinIO, tests)
	PathStyle bool

	// Opcionales: si faltan se usa la cadena de credenciales por defecto.
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// Source lee el documento del catálogo desde un objeto S3.
type Source struct {
	client *s3.Client
	bucket string
	key    string
}

func New(ctx context.Context, cfg Config) (*Source, error) {
	if cfg.Bucket == "" || cfg.Key == "" {
		return nil, errors.New("s3 bucket and key required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if cfg.AccessKeyID != "" && cfg.SecretAccessKey != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, cfg.SessionToken),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.PathStyle {
			o.UsePathStyle = true
		}
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	return &Source{client: client, bucket: cfg.Bucket, key: cfg.Key}, nil
}

func (s *Source) Name() string { return "s3://" + s.bucket + "/" + s.key }

func (s *Source) Load(ctx context.Context) ([]fish.Fish, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key),
	})
	if err != nil {
		return nil, fmt.Errorf("get object: %w", err)
	}
	defer func() { _ = out.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(out.Body, maxObjectSize+1))
	if err != nil {
		return nil, fmt.Errorf("read object: %w", err)
	}
	if len(raw) > maxObjectSize {
		return nil, fmt.Errorf("object %s larger than %d bytes", s.key, maxObjectSize)
	}
	return fish.DecodeDocument(raw)
}
