package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/config"
	"github.com/guilhermesouzzaa/Dashboard-Vendas/internal/usecases/recordstore"
	"github.com/sirupsen/logrus"
)

// ErrRefreshRunning indica que já existe uma atualização do snapshot em andamento
var ErrRefreshRunning = errors.New("snapshot refresh already running")

// SnapshotRefreshConfig representa a configuração do agendador de atualização do snapshot
type SnapshotRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// SnapshotRefreshService relê a tabela de vendas periodicamente e troca o snapshot quando a origem muda
type SnapshotRefreshService struct {
	scheduler *gocron.Scheduler
	config    SnapshotRefreshConfig
	reloader  recordstore.Reloader
	timeout   time.Duration

	mutex               sync.Mutex
	running             bool
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastChanged         bool
	lastError           string
	runs                int
}

// NewSnapshotRefreshService cria uma nova instância do serviço de atualização do snapshot
func NewSnapshotRefreshService(reloader recordstore.Reloader, appConfig *config.Config) *SnapshotRefreshService {
	refreshConfig := SnapshotRefreshConfig{
		CronSchedule: appConfig.SnapshotRefresh.CronSchedule,
		Enabled:      appConfig.SnapshotRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"job_cron":    refreshConfig.CronSchedule,
		"job_enabled": refreshConfig.Enabled,
	}).Info("Configuração do agendador de atualização do snapshot carregada")

	return &SnapshotRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		reloader:  reloader,
		timeout:   5 * time.Minute,
	}
}

// Start inicia o agendador
func (s *SnapshotRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Atualização agendada do snapshot desabilitada por configuração")
		return nil
	}

	logrus.WithField("job_cron", s.config.CronSchedule).Info("Iniciando agendador de atualização do snapshot")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if _, err := s.Refresh(ctx); err != nil && !errors.Is(err, ErrRefreshRunning) {
			logrus.WithError(err).Error("Erro na atualização agendada do snapshot")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do snapshot: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do snapshot")
		s.scheduler.Stop()
	}()

	return nil
}

// Refresh executa uma atualização e informa se o snapshot foi trocado.
// Chamadas concorrentes são descartadas com ErrRefreshRunning.
func (s *SnapshotRefreshService) Refresh(ctx context.Context) (bool, error) {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Atualização do snapshot já em andamento, ignorando")
		return false, ErrRefreshRunning
	}
	s.running = true
	s.lastSyncStartedAt = time.Now()
	s.mutex.Unlock()

	startTime := time.Now()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	changed, err := s.reloader.Reload(ctx)

	s.mutex.Lock()
	s.running = false
	s.runs++
	s.lastChanged = changed
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastSyncCompletedAt = time.Now()
	}
	s.mutex.Unlock()

	fields := logrus.Fields{
		"job_duration": time.Since(startTime).String(),
		"job_changed":  changed,
	}
	if err != nil {
		logrus.WithFields(fields).WithError(err).Error("Falha ao atualizar o snapshot, snapshot anterior mantido")
		return false, err
	}
	logrus.WithFields(fields).Info("Atualização do snapshot concluída")

	return changed, nil
}

// TriggerManualSync inicia manualmente uma atualização em segundo plano.
// Retorna ErrRefreshRunning quando já existe uma em andamento.
func (s *SnapshotRefreshService) TriggerManualSync() error {
	s.mutex.Lock()
	running := s.running
	s.mutex.Unlock()
	if running {
		logrus.Info("Atualização do snapshot já em andamento, ignorando solicitação manual")
		return ErrRefreshRunning
	}

	logrus.Info("Iniciando atualização manual do snapshot")
	go func() {
		if _, err := s.Refresh(context.Background()); err != nil && !errors.Is(err, ErrRefreshRunning) {
			logrus.WithError(err).Error("Erro na atualização manual do snapshot")
		}
	}()
	return nil
}

// GetStatus retorna o status atual do agendador
func (s *SnapshotRefreshService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"running":                s.running,
		"runs":                   s.runs,
		"last_changed":           s.lastChanged,
		"last_error":             s.lastError,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
