// Package worker удаляет истекшие кулдауны из хранилища.
// Сайт сам снимает истекший срок при следующем чтении, пул лишь не дает
// накапливаться записям субъектов, которые больше не вернулись.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/avc/tscoins-wallet/internal/domain"
	"go.uber.org/zap"
)

const (
	DefaultWorkers      = 2
	DefaultQueueSize    = 100
	DefaultScanInterval = time.Minute
)

// Recorder учитывает удаленные записи
type Recorder interface {
	AddCooldownsSwept(n int)
}

// PoolConfig задает параметры пула
type PoolConfig struct {
	Workers      int
	QueueSize    int
	ScanInterval time.Duration
}

// Pool представляет пул воркеров очистки кулдаунов
type Pool struct {
	workers      int
	queue        chan *domain.Cooldown
	repo         domain.CooldownRepository
	metrics      Recorder
	logger       *zap.Logger
	wg           sync.WaitGroup
	scanInterval time.Duration
	now          func() time.Time
}

// NewPool создает новый worker pool
func NewPool(cfg PoolConfig, repo domain.CooldownRepository, metrics Recorder, logger *zap.Logger) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = DefaultWorkers
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = DefaultQueueSize
	}
	if cfg.ScanInterval <= 0 {
		cfg.ScanInterval = DefaultScanInterval
	}

	return &Pool{
		workers:      cfg.Workers,
		queue:        make(chan *domain.Cooldown, cfg.QueueSize),
		repo:         repo,
		metrics:      metrics,
		logger:       logger,
		scanInterval: cfg.ScanInterval,
		now:          time.Now,
	}
}

// Run запускает пул и блокируется до отмены контекста
func (p *Pool) Run(ctx context.Context) error {
	p.Start(ctx)
	<-ctx.Done()
	p.wg.Wait()
	return nil
}

// Start запускает worker pool
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	p.wg.Add(1)
	go p.scanner(ctx)
}

// Stop дожидается завершения воркеров после отмены контекста
func (p *Pool) Stop() {
	p.wg.Wait()
}

func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Debug("sweeper worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug("sweeper worker stopping", zap.Int("worker_id", id))
			return
		case cd := <-p.queue:
			p.sweep(ctx, cd)
		}
	}
}

// scanner периодически ищет истекшие кулдауны
func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Debug("sweeper scanner stopping")
			return
		case <-ticker.C:
			p.scanExpired(ctx)
		}
	}
}

// scanExpired отправляет в очередь не больше записей, чем она вмещает
func (p *Pool) scanExpired(ctx context.Context) {
	expired, err := p.repo.ListExpiredCooldowns(ctx, p.now(), cap(p.queue))
	if err != nil {
		p.logger.Error("failed to list expired cooldowns", zap.Error(err))
		return
	}

	for _, cd := range expired {
		select {
		case p.queue <- cd:
		case <-ctx.Done():
			return
		default:
			// Запись останется до следующего прохода
			p.logger.Warn("sweeper queue is full, skipping cooldown",
				zap.String("subject", cd.Subject),
				zap.String("action", cd.ActionID),
			)
		}
	}
}

// sweep удаляет запись, только если она все еще истекла:
// субъект мог успеть запустить новый кулдаун после сканирования
func (p *Pool) sweep(ctx context.Context, cd *domain.Cooldown) {
	deleted, err := p.repo.DeleteExpiredCooldown(ctx, cd.Subject, cd.ActionID, p.now())
	if err != nil {
		p.logger.Error("failed to delete expired cooldown",
			zap.String("subject", cd.Subject),
			zap.String("action", cd.ActionID),
			zap.Error(err),
		)
		return
	}
	if !deleted {
		return
	}

	if p.metrics != nil {
		p.metrics.AddCooldownsSwept(1)
	}
	p.logger.Debug("expired cooldown removed",
		zap.String("subject", cd.Subject),
		zap.String("action", cd.ActionID),
	)
}
