package recordstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/domain"
	"github.com/sirupsen/logrus"
)

// Source é uma origem da tabela de vendas (arquivo, banco ou objeto)
type Source interface {
	// Identity identifica a origem de forma estável (ex: caminho do arquivo)
	Identity() string
	// Fingerprint muda sempre que o conteúdo da origem muda
	Fingerprint(ctx context.Context) (string, error)
	// Read lê a tabela bruta
	Read(ctx context.Context) (domain.RawTable, error)
}

// SnapshotProvider entrega o snapshot atual das vendas
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*domain.RecordSet, error)
}

// Reloader recarrega o snapshot quando a origem muda
type Reloader interface {
	Reload(ctx context.Context) (bool, error)
}

// Store mantém o snapshot imutável da origem. Trocas são atômicas; leitores nunca veem um snapshot parcial.
type Store struct {
	source Source

	mu      sync.RWMutex
	current *domain.RecordSet

	loadMu sync.Mutex
}

func NewStore(source Source) *Store {
	return &Store{source: source}
}

// Snapshot retorna o snapshot memorizado, carregando a origem na primeira chamada
func (s *Store) Snapshot(ctx context.Context) (*domain.RecordSet, error) {
	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()
	if current != nil {
		return current, nil
	}

	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	// Outra goroutine pode ter carregado enquanto esperávamos
	s.mu.RLock()
	current = s.current
	s.mu.RUnlock()
	if current != nil {
		return current, nil
	}

	fingerprint, err := s.source.Fingerprint(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceRead, s.source.Identity(), err)
	}

	rs, err := s.load(ctx, fingerprint)
	if err != nil {
		return nil, err
	}

	s.swap(rs)
	return rs, nil
}

// Reload troca o snapshot somente quando a impressão digital da origem mudou
func (s *Store) Reload(ctx context.Context) (bool, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()

	fingerprint, err := s.source.Fingerprint(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %v", ErrSourceRead, s.source.Identity(), err)
	}

	s.mu.RLock()
	current := s.current
	s.mu.RUnlock()

	if current != nil && current.Fingerprint() == fingerprint {
		logrus.WithFields(logrus.Fields{
			"snapshot_id": current.ID(),
			"source":      s.source.Identity(),
		}).Debug("Origem sem alterações, snapshot mantido")
		return false, nil
	}

	rs, err := s.load(ctx, fingerprint)
	if err != nil {
		return false, err
	}

	s.swap(rs)
	return true, nil
}

func (s *Store) load(ctx context.Context, fingerprint string) (*domain.RecordSet, error) {
	raw, err := s.source.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrSourceRead, s.source.Identity(), err)
	}

	rs, err := Load(raw, s.source.Identity())
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", s.source.Identity(), err)
	}

	rs = rs.WithFingerprint(fingerprint)

	logrus.WithFields(logrus.Fields{
		"snapshot_id": rs.ID(),
		"source":      rs.Source(),
		"rows":        rs.Len(),
		"months":      len(rs.Months()),
	}).Info("Snapshot de vendas carregado")

	return rs, nil
}

func (s *Store) swap(rs *domain.RecordSet) {
	s.mu.Lock()
	s.current = rs
	s.mu.Unlock()
}
