package main

import (
	"context"
	"sync"

	"pdfshrink/internal/domain/entities"
	"pdfshrink/internal/domain/repositories"
	usecases "pdfshrink/internal/usecase"
)

// ApplicationProcessor обрабатывает команды приложения
type ApplicationProcessor struct {
	processUseCase *usecases.ProcessPDFsUseCase
	logger         repositories.Logger

	mu      sync.Mutex
	config  *entities.Config
	running bool

	// Graceful shutdown
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewApplicationProcessor создает новый процессор приложения
func NewApplicationProcessor(
	processUseCase *usecases.ProcessPDFsUseCase,
	config *entities.Config,
	logger repositories.Logger,
) *ApplicationProcessor {
	ctx, cancel := context.WithCancel(context.Background())

	return &ApplicationProcessor{
		processUseCase: processUseCase,
		config:         config,
		logger:         logger,
		ctx:            ctx,
		cancel:         cancel,
	}
}

// SetConfig обновляет конфигурацию для следующего запуска
func (p *ApplicationProcessor) SetConfig(config *entities.Config) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.config = config
}

// Scan добавляет в очередь файлы исходной директории
func (p *ApplicationProcessor) Scan() (int, error) {
	p.mu.Lock()
	config := p.config
	p.mu.Unlock()

	return p.processUseCase.Scan(config)
}

// StartProcessing запускает обработку очереди. Повторный запуск
// во время обработки игнорируется.
func (p *ApplicationProcessor) StartProcessing() {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return
	}
	p.running = true
	config := p.config
	p.wg.Add(1)
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		p.running = false
		p.mu.Unlock()
		p.wg.Done()
	}()

	if _, err := p.processUseCase.Execute(p.ctx, config); err != nil {
		if p.logger != nil {
			p.logger.Error("Ошибка обработки: %v", err)
		}
		return
	}

	if p.logger != nil {
		p.logger.Success("Обработка файлов завершена успешно")
	}
}

// Shutdown корректно завершает работу процессора: текущий документ
// дорабатывается, следующие не начинаются
func (p *ApplicationProcessor) Shutdown() {
	p.cancel()
	p.wg.Wait()
}
