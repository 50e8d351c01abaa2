package recordstore

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/recordstore/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func sampleTable(revenue string) domain.RawTable {
	return domain.RawTable{
		Header: header,
		Rows:   [][]string{{"2024-01-15", "1", revenue, "0", "A", "T", "C", "SP", "S", "K"}},
	}
}

func TestStore_Snapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := mocks.NewMockSource(ctrl)
	source.EXPECT().Identity().Return("vendas.csv").AnyTimes()

	// A origem é lida uma única vez mesmo com leitores concorrentes
	source.EXPECT().Fingerprint(gomock.Any()).Return("v1", nil).Times(1)
	source.EXPECT().Read(gomock.Any()).Return(sampleTable("100"), nil).Times(1)

	store := NewStore(source)

	var wg sync.WaitGroup
	results := make([]*domain.RecordSet, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rs, err := store.Snapshot(context.Background())
			assert.NoError(t, err)
			results[i] = rs
		}(i)
	}
	wg.Wait()

	for _, rs := range results {
		assert.Same(t, results[0], rs)
	}
	assert.Equal(t, "v1", results[0].Fingerprint())
}

func TestStore_Reload(t *testing.T) {
	tests := []struct {
		name         string
		setup        func(source *mocks.MockSource)
		expectChange bool
		expectErr    error
		expectTotal  float64
	}{
		{
			name: "Impressão digital igual - snapshot mantido",
			setup: func(source *mocks.MockSource) {
				source.EXPECT().Fingerprint(gomock.Any()).Return("v1", nil)
			},
			expectChange: false,
			expectTotal:  100,
		},
		{
			name: "Impressão digital nova - snapshot trocado",
			setup: func(source *mocks.MockSource) {
				source.EXPECT().Fingerprint(gomock.Any()).Return("v2", nil)
				source.EXPECT().Read(gomock.Any()).Return(sampleTable("250"), nil)
			},
			expectChange: true,
			expectTotal:  250,
		},
		{
			name: "Tabela nova inválida - snapshot anterior preservado",
			setup: func(source *mocks.MockSource) {
				source.EXPECT().Fingerprint(gomock.Any()).Return("v2", nil)
				source.EXPECT().Read(gomock.Any()).Return(sampleTable("abc"), nil)
			},
			expectErr:   domain.ErrDataFormat,
			expectTotal: 100,
		},
		{
			name: "Falha na origem",
			setup: func(source *mocks.MockSource) {
				source.EXPECT().Fingerprint(gomock.Any()).Return("", errors.New("conexão recusada"))
			},
			expectErr:   ErrSourceRead,
			expectTotal: 100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			source := mocks.NewMockSource(ctrl)
			source.EXPECT().Identity().Return("vendas.csv").AnyTimes()
			source.EXPECT().Fingerprint(gomock.Any()).Return("v1", nil)
			source.EXPECT().Read(gomock.Any()).Return(sampleTable("100"), nil)

			store := NewStore(source)
			first, err := store.Snapshot(context.Background())
			require.NoError(t, err)

			tt.setup(source)

			changed, err := store.Reload(context.Background())
			if tt.expectErr != nil {
				assert.ErrorIs(t, err, tt.expectErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.expectChange, changed)

			current, err := store.Snapshot(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.expectTotal, domain.Aggregate(current.Records()).TotalRevenue)

			// O snapshot anterior nunca é alterado
			assert.Equal(t, 100.0, domain.Aggregate(first.Records()).TotalRevenue)
		})
	}
}
