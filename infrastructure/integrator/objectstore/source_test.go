package objectstore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/config"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	info minio.ObjectInfo
	err  error
}

func (f *fakeClient) StatObject(_ context.Context, _, _ string, _ minio.StatObjectOptions) (minio.ObjectInfo, error) {
	return f.info, f.err
}

func (f *fakeClient) GetObject(_ context.Context, _, _ string, _ minio.GetObjectOptions) (*minio.Object, error) {
	return nil, errors.New("not used")
}

func TestNewSource(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.ObjectStorage
		wantErr bool
	}{
		{name: "CSV", cfg: config.ObjectStorage{Bucket: "b", Object: "vendas.csv"}},
		{name: "Planilha", cfg: config.ObjectStorage{Bucket: "b", Object: "dados/vendas.xlsx"}},
		{name: "Sem bucket", cfg: config.ObjectStorage{Object: "vendas.csv"}, wantErr: true},
		{name: "Extensão desconhecida", cfg: config.ObjectStorage{Bucket: "b", Object: "vendas.json"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSource(&fakeClient{}, tt.cfg, "")
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSource_Fingerprint(t *testing.T) {
	modified := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	client := &fakeClient{info: minio.ObjectInfo{ETag: "abc123", LastModified: modified}}

	source, err := NewSource(client, config.ObjectStorage{Bucket: "vendas", Object: "2024/vendas.csv"}, "")
	require.NoError(t, err)

	fp, err := source.Fingerprint(context.Background())
	require.NoError(t, err)
	assert.Contains(t, fp, "abc123")
	assert.Equal(t, "s3://vendas/2024/vendas.csv", source.Identity())

	client.err = errors.New("access denied")
	_, err = source.Fingerprint(context.Background())
	assert.Error(t, err)
}

func TestNewClient_Validation(t *testing.T) {
	_, err := NewClient(config.ObjectStorage{Endpoint: "localhost:9000"})
	assert.Error(t, err)

	client, err := NewClient(config.ObjectStorage{Endpoint: "http://localhost:9000", AccessKey: "k", SecretKey: "s"})
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", client.EndpointURL().Host)
}
