// Package objectstore lê a tabela de vendas de um bucket S3 compatível (MinIO)
package objectstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/infrastructure/tabular"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/config"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectClient é o subconjunto do cliente MinIO usado pela fonte
type ObjectClient interface {
	StatObject(ctx context.Context, bucket, object string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	GetObject(ctx context.Context, bucket, object string, opts minio.GetObjectOptions) (*minio.Object, error)
}

type Source struct {
	client ObjectClient
	bucket string
	object string
	format string
	sheet  string
}

// NewClient valida a configuração e cria o cliente MinIO
func NewClient(cfg config.ObjectStorage) (*minio.Client, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("object storage endpoint must be provided")
	}
	if cfg.AccessKey == "" || cfg.SecretKey == "" {
		return nil, fmt.Errorf("object storage credentials must be provided")
	}

	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")

	return minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
}

func NewSource(client ObjectClient, cfg config.ObjectStorage, sheet string) (*Source, error) {
	if cfg.Bucket == "" || cfg.Object == "" {
		return nil, fmt.Errorf("object storage bucket and object must be provided")
	}

	format, err := tabular.FormatFromName(cfg.Object)
	if err != nil {
		return nil, err
	}

	return &Source{
		client: client,
		bucket: cfg.Bucket,
		object: cfg.Object,
		format: format,
		sheet:  sheet,
	}, nil
}

func (s *Source) Identity() string {
	return fmt.Sprintf("s3://%s/%s", s.bucket, s.object)
}

// Fingerprint usa o ETag e a data de modificação do objeto
func (s *Source) Fingerprint(ctx context.Context) (string, error) {
	info, err := s.client.StatObject(ctx, s.bucket, s.object, minio.StatObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("object storage stat failed: %w", err)
	}
	return fmt.Sprintf("%s-%d", info.ETag, info.LastModified.UnixNano()), nil
}

func (s *Source) Read(ctx context.Context) (domain.RawTable, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, s.object, minio.GetObjectOptions{})
	if err != nil {
		return domain.RawTable{}, fmt.Errorf("object storage get failed: %w", err)
	}
	defer obj.Close()

	return tabular.ReadTable(obj, s.format, s.sheet)
}
