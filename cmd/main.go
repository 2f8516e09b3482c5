package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"pdfshrink/internal/domain/entities"
	"pdfshrink/internal/domain/repositories"
	"pdfshrink/internal/infrastructure/archivers"
	"pdfshrink/internal/infrastructure/compressors"
	"pdfshrink/internal/infrastructure/config"
	"pdfshrink/internal/infrastructure/logging"
	"pdfshrink/internal/infrastructure/rasterizers"
	infraRepos "pdfshrink/internal/infrastructure/repositories"
	"pdfshrink/internal/interface/controllers"
	"pdfshrink/internal/presentation/tui"
	usecases "pdfshrink/internal/usecase"
)

func main() {
	headless := flag.Bool("headless", false, "обработать исходную директорию без TUI и выйти")
	inputFile := flag.String("file", "", "сжать один PDF файл без TUI")
	outputFile := flag.String("output", "", "путь к сжатому файлу для -file")
	configPath := flag.String("config", "config.yaml", "путь к файлу конфигурации")
	flag.Parse()

	// Переменные окружения из .env (например, UNIDOC_LICENSE_API_KEY)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Предупреждение: не удалось загрузить .env: %v", err)
	}

	// Загрузка конфигурации
	configRepo := config.NewRepository()
	appConfig, err := configRepo.Load(*configPath)
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация базового логгера (в файл)
	fileLogger, err := logging.NewFileLogger(
		appConfig.Output.LogFileName,
		appConfig.Output.LogLevel,
		appConfig.Output.LogMaxSizeMB,
		appConfig.Output.LogToFile,
	)
	if err != nil {
		log.Printf("Предупреждение: не удалось инициализировать логгер: %v", err)
	}
	var baseLogger repositories.Logger
	if fileLogger != nil {
		baseLogger = fileLogger
	}

	if *headless || *inputFile != "" {
		err := runHeadless(appConfig, baseLogger, *inputFile, *outputFile)
		fileLogger.Close()
		if err != nil {
			log.Fatalf("Ошибка: %v", err)
		}
		return
	}
	defer fileLogger.Close()

	// Инициализация TUI
	tuiManager := tui.NewManager(configRepo, *configPath)
	tuiManager.Initialize()

	// Оборачиваем логгер адаптером, чтобы видеть логи в TUI
	logger := tui.NewUILogger(baseLogger, tuiManager)

	processUseCase, _ := newUseCases(appConfig, logger)
	tuiManager.SetQueue(processUseCase.Queue())

	// Подключаем репортер прогресса к TUI
	processUseCase.SetProgressReporter(tuiManager.SendStatusUpdate)

	// Создание процессора для обработки команд
	processor := NewApplicationProcessor(processUseCase, appConfig, logger)
	defer processor.Shutdown()

	// Привязываем запуск обработки к TUI с актуальной конфигурацией
	tuiManager.SetOnStartProcessing(func() {
		processor.SetConfig(tuiManager.GetConfig())
		processor.StartProcessing()
	})
	tuiManager.SetOnScan(func() (int, error) {
		processor.SetConfig(tuiManager.GetConfig())
		return processor.Scan()
	})

	// Автозапуск, если включен в конфигурации
	if appConfig.Compression.AutoStart {
		tuiManager.StartProcessing()
	}

	// Запуск TUI
	if err := tuiManager.Run(); err != nil {
		log.Fatalf("Ошибка запуска TUI: %v", err)
	}

	// Cleanup при выходе
	tuiManager.Cleanup()
}

// runHeadless выполняет одну обработку без TUI. Ctrl+C прерывает пакет
// перед следующим документом.
func runHeadless(appConfig *entities.Config, baseLogger repositories.Logger, inputFile, outputFile string) error {
	logger := tui.NewUILogger(baseLogger, controllers.NewConsoleLog(os.Stdout))
	processUseCase, compressUseCase := newUseCases(appConfig, logger)
	controller := controllers.NewCLIController(processUseCase, compressUseCase, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if inputFile != "" {
		return controller.HandleSingleFile(ctx, inputFile, outputFile)
	}
	return controller.HandleDirectory(ctx, appConfig)
}

// newUseCases собирает конвейер сжатия по конфигурации
func newUseCases(appConfig *entities.Config, logger repositories.Logger) (*usecases.ProcessPDFsUseCase, *usecases.CompressPDFUseCase) {
	transcoder := usecases.NewTranscodeDocumentUseCase(
		rasterizers.NewFitzRasterizer(),
		compressors.NewJPEGEncoder(appConfig.Compression.MaxRasterDimension),
		newAssembler(appConfig.Compression, logger),
		logger,
	)
	batch := usecases.NewCompressBatchUseCase(transcoder, entities.DefaultCompressionPolicy(), logger)
	fileRepo := infraRepos.NewFileSystemRepository()

	return usecases.NewProcessPDFsUseCase(batch, archivers.NewZipArchiver(), fileRepo, logger),
		usecases.NewCompressPDFUseCase(batch, fileRepo)
}

// newAssembler выбирает сборщик PDF. Если UniPDF не удалось активировать,
// используется pdfcpu.
func newAssembler(cfg entities.AppCompressionConfig, logger repositories.Logger) repositories.DocumentAssembler {
	if strings.EqualFold(cfg.Assembler, entities.AssemblerUniPDF) {
		assembler := compressors.NewUniPDFAssembler(cfg.UniPDFLicenseKey)
		if err := assembler.Activate(); err != nil {
			logger.Warning("UniPDF недоступен: %v. Используется pdfcpu", err)
			return compressors.NewPDFCPUAssembler()
		}
		return assembler
	}
	return compressors.NewPDFCPUAssembler()
}
