package tui

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"pdfshrink/internal/domain/entities"
	"pdfshrink/internal/domain/repositories"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// UI Configuration constants
const (
	MaxLogBufferSize     = 1000
	LogFlushInterval     = 50 * time.Millisecond
	ProgressBarWidth     = 40
	MaxFileNameLength    = 60
	MaxFileNameDisplay   = 57
	ProgressViewHeight   = 16
	FormItemLicenseIndex = 5
)

// Manager управляет TUI интерфейсом
type Manager struct {
	app           *tview.Application
	pages         *tview.Pages
	currentScreen entities.UIScreen

	// UI компоненты
	mainMenu     *tview.List
	configForm   *tview.Form
	queueList    *tview.List
	progressView *tview.TextView
	logView      *tview.TextView

	// Callbacks
	onStartProcessing func()
	onScan            func() (int, error)

	// Состояние
	configRepo   repositories.AppConfigRepository
	configPath   string
	config       *entities.Config
	queue        *entities.InputQueue
	logBuffer    []string
	statusMutex  sync.RWMutex
	isProcessing bool

	// Оптимизированный батчинг логов через канал
	logChan  chan string
	logDone  chan struct{}
	logMutex sync.Mutex
}

// NewManager создает новый менеджер TUI
func NewManager(configRepo repositories.AppConfigRepository, configPath string) *Manager {
	m := &Manager{
		app:        tview.NewApplication(),
		pages:      tview.NewPages(),
		configRepo: configRepo,
		configPath: configPath,
		config:     &entities.Config{},
		logBuffer:  make([]string, 0, MaxLogBufferSize),
		logChan:    make(chan string, 100), // Buffered channel для батчинга
		logDone:    make(chan struct{}),
	}
	// Запускаем горутину обработки логов
	go m.logProcessor()
	return m
}

// Initialize инициализирует TUI
func (m *Manager) Initialize() {
	m.loadConfig()
	m.createUI()
	m.setupKeyBindings()
}

// Run запускает TUI
func (m *Manager) Run() error {
	return m.app.SetRoot(m.pages, true).EnableMouse(true).Run()
}

// SetOnStartProcessing устанавливает callback для начала обработки
func (m *Manager) SetOnStartProcessing(callback func()) {
	m.onStartProcessing = callback
}

// SetOnScan устанавливает callback добавления файлов исходной директории в очередь
func (m *Manager) SetOnScan(callback func() (int, error)) {
	m.onScan = callback
}

// SetQueue подключает очередь документов для экрана очереди
func (m *Manager) SetQueue(queue *entities.InputQueue) {
	m.queue = queue
}

// SendStatusUpdate отправляет обновление статуса
func (m *Manager) SendStatusUpdate(status entities.ProcessingStatus) {
	m.updateProgress(status)
}

// loadConfig загружает конфигурацию
func (m *Manager) loadConfig() {
	if _, err := os.Stat(m.configPath); os.IsNotExist(err) {
		// Создаем конфигурацию по умолчанию
		if cfg, err := m.configRepo.Load(m.configPath); err == nil {
			m.config = cfg
			m.saveConfig()
		}
		return
	}

	cfg, err := m.configRepo.Load(m.configPath)
	if err != nil {
		m.AddLog("ERROR", fmt.Sprintf("Ошибка загрузки конфигурации: %v", err))
		return
	}
	m.config = cfg
}

// saveConfig сохраняет конфигурацию
func (m *Manager) saveConfig() {
	if err := m.config.Compression.Validate(); err != nil {
		m.AddLog("ERROR", fmt.Sprintf("Конфигурация не сохранена: %v", err))
		return
	}
	if err := m.configRepo.Save(m.configPath, m.config); err != nil {
		m.AddLog("ERROR", fmt.Sprintf("Ошибка сохранения конфигурации: %v", err))
	}
}

// createUI создает пользовательский интерфейс
func (m *Manager) createUI() {
	m.createMainMenu()
	m.createConfigScreen()
	m.createQueueScreen()
	m.createProcessingScreen()

	m.pages.AddPage("menu", m.mainMenu, true, true)
	m.pages.AddPage("config", m.configForm, true, false)
	m.pages.AddPage("queue", m.createQueueLayout(), true, false)
	m.pages.AddPage("processing", m.createProcessingLayout(), true, false)

	m.currentScreen = entities.UIScreenMenu
}

// createMainMenu создает главное меню
func (m *Manager) createMainMenu() {
	m.mainMenu = tview.NewList().
		AddItem("🚀 Запуск сжатия", "Сжать документы очереди (или исходной директории) и создать архив", '1', func() {
			m.StartProcessing()
		}).
		AddItem("📄 Очередь документов", "Просмотреть, добавить и удалить документы", '2', func() {
			m.switchToScreen(entities.UIScreenQueue)
		}).
		AddItem("⚙️ Конфигурация", "Настроить директории, архив и сборщик PDF", '3', func() {
			m.switchToScreen(entities.UIScreenConfig)
		}).
		AddItem("❌ Выход", "Закрыть приложение", 'q', func() {
			m.Cleanup()
			m.app.Stop()
		})

	m.mainMenu.SetBorder(true).
		SetTitle("🔥 PDF Shrink - Главное меню").
		SetTitleAlign(tview.AlignCenter)

	// Настраиваем стиль
	m.mainMenu.SetSelectedBackgroundColor(tcell.ColorDarkBlue).
		SetSelectedTextColor(tcell.ColorWhite).
		SetMainTextColor(tcell.ColorWhite).
		SetSecondaryTextColor(tcell.ColorGray)
}

// createConfigScreen создает экран конфигурации
func (m *Manager) createConfigScreen() {
	m.configForm = tview.NewForm().
		AddInputField("Исходная директория", m.config.Scanner.SourceDirectory, 60, nil, func(text string) {
			m.config.Scanner.SourceDirectory = text
		}).
		AddInputField("Целевая директория", m.config.Scanner.TargetDirectory, 60, nil, func(text string) {
			m.config.Scanner.TargetDirectory = text
		}).
		AddInputField("Префикс архива", m.config.Scanner.ArchivePrefix, 30, nil, func(text string) {
			m.config.Scanner.ArchivePrefix = text
		}).
		AddCheckbox("Очищать очередь после архивации", m.config.Scanner.ClearAfterArchive, func(checked bool) {
			m.config.Scanner.ClearAfterArchive = checked
		}).
		AddDropDown("Сборщик PDF", []string{entities.AssemblerPDFCPU, entities.AssemblerUniPDF}, assemblerOption(m.config.Compression.Assembler), func(option string, optionIndex int) {
			m.config.Compression.Assembler = option
			m.updateLicenseFieldVisibility()
		}).
		AddInputField("Лицензия UniPDF (UNIDOC_LICENSE_API_KEY)", m.config.Compression.UniPDFLicenseKey, 60, nil, func(text string) {
			m.config.Compression.UniPDFLicenseKey = text
		}).
		AddCheckbox("Автостарт", m.config.Compression.AutoStart, func(checked bool) {
			m.config.Compression.AutoStart = checked
		}).
		AddInputField("Макс. размер растра (px, 0 - без ограничения)", strconv.Itoa(m.config.Compression.MaxRasterDimension), 10, tview.InputFieldInteger, func(text string) {
			if value, err := strconv.Atoi(text); err == nil && value >= 0 {
				m.config.Compression.MaxRasterDimension = value
			}
		}).
		AddButton("Сохранить", func() {
			m.saveConfig()
			m.switchToScreen(entities.UIScreenMenu)
			// Позиционируемся на пункте "Конфигурация" (индекс 2)
			m.mainMenu.SetCurrentItem(2)
		})

	m.updateLicenseFieldVisibility()

	m.configForm.SetBorder(true).
		SetTitle("🔥 PDF Shrink - Конфигурация (ESC - выйти без сохранения)").
		SetTitleAlign(tview.AlignCenter)

	// Обработка ESC для выхода без сохранения
	m.configForm.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape {
			// Перезагружаем конфигурацию из файла (отменяем изменения)
			m.loadConfig()
			m.switchToScreen(entities.UIScreenMenu)
			return nil
		}
		return event
	})
}

// assemblerOption индекс сборщика в выпадающем списке
func assemblerOption(assembler string) int {
	if strings.EqualFold(assembler, entities.AssemblerUniPDF) {
		return 1
	}
	return 0
}

// createQueueScreen создает экран очереди документов
func (m *Manager) createQueueScreen() {
	m.queueList = tview.NewList().ShowSecondaryText(false)

	m.queueList.SetBorder(true).
		SetTitle("📄 Очередь документов").
		SetTitleAlign(tview.AlignCenter)

	m.queueList.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch {
		case event.Key() == tcell.KeyDelete || event.Rune() == 'd':
			m.removeSelected()
			return nil
		case event.Rune() == 'a':
			m.scanSource()
			return nil
		case event.Rune() == 'c':
			m.clearQueue()
			return nil
		}
		return event
	})
}

// createQueueLayout создает layout для экрана очереди
func (m *Manager) createQueueLayout() *tview.Flex {
	help := tview.NewTextView().
		SetDynamicColors(true).
		SetText("[yellow]a[white] - добавить файлы исходной директории   " +
			"[yellow]d/Del[white] - удалить   [yellow]c[white] - очистить   [yellow]ESC[white] - меню")

	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(m.queueList, 0, 1, true).
		AddItem(help, 1, 0, false)
}

// refreshQueueList перерисовывает список документов очереди
func (m *Manager) refreshQueueList() {
	if m.queueList == nil {
		return
	}

	current := m.queueList.GetCurrentItem()
	m.queueList.Clear()

	if m.queue == nil || m.queue.Len() == 0 {
		m.queueList.AddItem("Очередь пуста", "", 0, nil)
		m.queueList.SetTitle("📄 Очередь документов")
		return
	}

	for i, doc := range m.queue.Documents() {
		name := truncateFileName(doc.Name, MaxFileNameLength, MaxFileNameDisplay)
		m.queueList.AddItem(fmt.Sprintf("%3d. %s (%s)", i+1, name, entities.FormatSize(doc.Size)), "", 0, nil)
	}

	m.queueList.SetTitle(fmt.Sprintf("📄 Очередь документов: %d, %s",
		m.queue.Len(), entities.FormatSize(m.queue.TotalSize())))

	if current >= m.queueList.GetItemCount() {
		current = m.queueList.GetItemCount() - 1
	}
	m.queueList.SetCurrentItem(current)
}

// queueEditable возвращает false во время обработки
func (m *Manager) queueEditable() bool {
	m.statusMutex.RLock()
	defer m.statusMutex.RUnlock()

	if m.isProcessing {
		m.AddLog("WARNING", "Очередь нельзя изменять во время обработки")
		return false
	}
	return m.queue != nil
}

// removeSelected удаляет выбранный документ из очереди
func (m *Manager) removeSelected() {
	if !m.queueEditable() {
		return
	}
	if m.queue.Remove(m.queueList.GetCurrentItem()) {
		m.refreshQueueList()
	}
}

// clearQueue очищает очередь
func (m *Manager) clearQueue() {
	if !m.queueEditable() {
		return
	}
	m.queue.Clear()
	m.refreshQueueList()
}

// scanSource добавляет в очередь файлы исходной директории
func (m *Manager) scanSource() {
	if !m.queueEditable() || m.onScan == nil {
		return
	}
	if _, err := m.onScan(); err != nil {
		m.AddLog("ERROR", fmt.Sprintf("Ошибка сканирования: %v", err))
	}
	m.refreshQueueList()
}

// createProcessingScreen создает экран обработки
func (m *Manager) createProcessingScreen() {
	m.progressView = tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true).
		SetScrollable(true)

	m.progressView.SetBorder(true).
		SetTitle("📊 Прогресс обработки").
		SetTitleAlign(tview.AlignCenter)

	m.logView = tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true).
		SetMaxLines(MaxLogBufferSize)

	m.logView.SetBorder(true).
		SetTitle("📋 Журнал событий").
		SetTitleAlign(tview.AlignCenter)
}

// createProcessingLayout создает layout для экрана обработки
func (m *Manager) createProcessingLayout() *tview.Flex {
	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(m.logView, 0, 1, false).
		AddItem(m.progressView, ProgressViewHeight, 0, false)
}

// setupKeyBindings настраивает горячие клавиши
func (m *Manager) setupKeyBindings() {
	m.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyF1:
			m.switchToScreen(entities.UIScreenMenu)
			return nil
		case tcell.KeyF2:
			m.switchToScreen(entities.UIScreenConfig)
			return nil
		case tcell.KeyF3:
			if m.processing() {
				m.switchToScreen(entities.UIScreenProcessing)
			}
			return nil
		case tcell.KeyEscape:
			// ESC работает по-разному в зависимости от экрана
			if m.currentScreen == entities.UIScreenConfig {
				// В конфигурации ESC обрабатывается локально формой
				return event
			} else if m.currentScreen != entities.UIScreenMenu {
				m.switchToScreen(entities.UIScreenMenu)
				return nil
			}
		}

		// Обработка числовых клавиш для меню
		if m.currentScreen == entities.UIScreenMenu {
			switch event.Rune() {
			case '1':
				m.StartProcessing()
				return nil
			case '2':
				m.switchToScreen(entities.UIScreenQueue)
				return nil
			case '3':
				m.switchToScreen(entities.UIScreenConfig)
				return nil
			case 'q', 'Q':
				m.Cleanup()
				m.app.Stop()
				return nil
			}
		}

		return event
	})
}

// switchToScreen переключает на указанный экран
func (m *Manager) switchToScreen(screen entities.UIScreen) {
	m.statusMutex.Lock()
	defer m.statusMutex.Unlock()

	m.currentScreen = screen

	switch screen {
	case entities.UIScreenMenu:
		m.pages.SwitchToPage("menu")
	case entities.UIScreenConfig:
		// При входе в конфигурацию обновляем данные из файла и синхронизируем форму
		m.loadConfig()
		m.refreshConfigForm()
		m.pages.SwitchToPage("config")
	case entities.UIScreenQueue:
		m.refreshQueueList()
		m.pages.SwitchToPage("queue")
	case entities.UIScreenProcessing:
		m.pages.SwitchToPage("processing")
	}
}

// processing сообщает, идет ли обработка
func (m *Manager) processing() bool {
	m.statusMutex.RLock()
	defer m.statusMutex.RUnlock()
	return m.isProcessing
}

// StartProcessing начинает обработку и открывает экран прогресса
func (m *Manager) StartProcessing() {
	m.statusMutex.Lock()
	if m.isProcessing {
		m.statusMutex.Unlock()
		m.switchToScreen(entities.UIScreenProcessing)
		return
	}
	m.isProcessing = true
	m.statusMutex.Unlock()

	m.saveConfig()
	m.switchToScreen(entities.UIScreenProcessing)

	if m.onStartProcessing != nil {
		go m.onStartProcessing()
	}
}

// updateProgress обновляет прогресс
func (m *Manager) updateProgress(status entities.ProcessingStatus) {
	if m.progressView == nil {
		return
	}

	if status.IsComplete {
		m.statusMutex.Lock()
		m.isProcessing = false
		m.statusMutex.Unlock()
	}

	progressText := formatStatus(status)

	// Обновляем UI потокобезопасно через QueueUpdateDraw
	m.app.QueueUpdateDraw(func() {
		m.progressView.SetText(progressText)
	})
}

// formatStatus формирует текст панели прогресса
func formatStatus(status entities.ProcessingStatus) string {
	progressBar := createProgressBar(status.Progress, ProgressBarWidth)

	// Корректное усечение имени файла с учетом UTF-8
	displayFile := truncateFileName(status.CurrentFile, MaxFileNameLength, MaxFileNameDisplay)

	// Фаза обработки
	phaseText := status.Phase.String()
	if status.Message != "" {
		phaseText = status.Message
	}

	var b strings.Builder

	fmt.Fprintf(&b,
		"[yellow]⚙️  Фаза:[white] %s\n\n"+
			"[yellow]📁 Текущий файл:[white] %s\n",
		phaseText,
		filepath.Base(displayFile),
	)

	// Размер текущего файла
	if status.CurrentFileSize > 0 {
		fmt.Fprintf(&b, "[dim]   Размер: %s[white]\n", entities.FormatSize(status.CurrentFileSize))
	}

	// Прогресс-бар
	fmt.Fprintf(&b,
		"\n[cyan]📊 Прогресс:[white] %s [cyan]%.1f%%[white]\n\n",
		progressBar,
		status.Progress,
	)

	// Статистика файлов
	fmt.Fprintf(&b,
		"[green]📈 Статистика файлов:[white]\n"+
			"  • Всего: [cyan]%d[white]\n"+
			"  • Обработано: [cyan]%d[white]",
		status.TotalFiles,
		status.ProcessedFiles,
	)

	if status.FallbackFiles > 0 {
		fmt.Fprintf(&b, "\n  • Повторно сжато: [yellow]%d[white]", status.FallbackFiles)
	}

	if status.SkippedFiles > 0 {
		fmt.Fprintf(&b, "\n  • Пропущено: [yellow]%d[white]", status.SkippedFiles)
	}

	// Статистика сжатия
	if status.TotalOriginalSize > 0 {
		fmt.Fprintf(&b,
			"\n\n[green]💾 Статистика сжатия:[white]\n"+
				"  • Исходный размер: [cyan]%s[white]\n"+
				"  • Сжатый размер: [cyan]%s[white]\n"+
				"  • Среднее сжатие: [green]%.1f%%[white]\n"+
				"  • Сэкономлено: [green]%s[white]",
			entities.FormatSize(status.TotalOriginalSize),
			entities.FormatSize(status.TotalCompressedSize),
			status.AverageCompression(),
			entities.FormatSize(status.SavedSpace()),
		)
	}

	// Время выполнения
	fmt.Fprintf(&b,
		"\n\n[yellow]⏱️  Время:[white]\n"+
			"  • Прошло: [cyan]%s[white]",
		status.FormatElapsedTime(),
	)

	b.WriteString("\n\n")

	if status.IsComplete {
		if status.Error != nil {
			b.WriteString("[red]❌ Обработка завершена с ошибкой![white]\n")
			fmt.Fprintf(&b, "[red]Ошибка: %v[white]\n", status.Error)
			b.WriteString("[dim]Очередь сохранена, обработку можно повторить[white]\n")
		} else {
			b.WriteString("[green]✅ Обработка успешно завершена![white]\n")
			if status.ArchivePath != "" {
				fmt.Fprintf(&b, "[green]📦 Архив:[white] %s\n", status.ArchivePath)
			}
			writeResults(&b, status.Summary)
		}
	}

	b.WriteString("\n[yellow]F1[white] - Главное меню\n")
	b.WriteString("[yellow]ESC[white] - Главное меню\n")

	return b.String()
}

// writeResults выводит результаты по каждому документу
func writeResults(b *strings.Builder, summary *entities.BatchSummary) {
	if summary == nil || len(summary.Results) == 0 {
		return
	}

	b.WriteString("\n[green]📋 Результаты:[white]\n")
	for i, result := range summary.Results {
		marker := ""
		if result.UsedFallback {
			marker = " [yellow](повторно)[white]"
		}
		fmt.Fprintf(b, "  %d. %s: %s → %s (%.1f%%)%s\n",
			i+1,
			truncateFileName(result.Name, MaxFileNameLength, MaxFileNameDisplay),
			entities.FormatSize(result.OriginalSize),
			entities.FormatSize(result.CompressedSize),
			result.CompressionRatio(),
			marker,
		)
	}
}

// truncateFileName корректно усекает имя файла с учетом UTF-8
func truncateFileName(fileName string, maxLength, truncateAt int) string {
	runes := []rune(fileName)
	if len(runes) <= maxLength {
		return fileName
	}
	return string(runes[:truncateAt]) + "..."
}

// createProgressBar создает красивый цветной прогресс-бар
func createProgressBar(progress float64, width int) string {
	// Нормализуем значения
	if progress < 0 {
		progress = 0
	} else if progress > 100 {
		progress = 100
	}

	filled := int(math.Round(progress * float64(width) / 100))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	// Разные символы для заполненной и пустой части
	const filledChar = "█"
	const emptyChar = "░"

	// Цвет зависит от прогресса
	var color string
	switch {
	case progress < 25:
		color = "red"
	case progress < 50:
		color = "yellow"
	case progress < 75:
		color = "blue"
	default:
		color = "green"
	}

	filledPart := strings.Repeat(filledChar, filled)
	emptyPart := strings.Repeat(emptyChar, width-filled)

	return fmt.Sprintf("[%s]%s[gray]%s", color, filledPart, emptyPart)
}

// AddLog добавляет запись в лог через канал (неблокирующе)
func (m *Manager) AddLog(level, message string) {
	var color string
	switch strings.ToLower(level) {
	case "error":
		color = "red"
	case "warning":
		color = "yellow"
	case "success":
		color = "green"
	case "debug":
		color = "gray"
	default:
		color = "white"
	}

	logLine := fmt.Sprintf("[%s]%s:[white] %s", color, strings.ToUpper(level), tview.Escape(message))

	// Неблокирующая отправка в канал
	select {
	case m.logChan <- logLine:
	default:
		// Если канал переполнен, пропускаем лог (лучше чем блокировка)
	}
}

// logProcessor обрабатывает логи в отдельной горутине с батчингом
func (m *Manager) logProcessor() {
	ticker := time.NewTicker(LogFlushInterval)
	defer ticker.Stop()

	batch := make([]string, 0, 50)

	for {
		select {
		case logLine := <-m.logChan:
			batch = append(batch, logLine)

			// Если накопился достаточный батч, сбрасываем
			if len(batch) >= 20 {
				m.flushLogBatch(batch)
				batch = make([]string, 0, 50)
			}

		case <-ticker.C:
			// Периодический сброс
			if len(batch) > 0 {
				m.flushLogBatch(batch)
				batch = make([]string, 0, 50)
			}

		case <-m.logDone:
			// Финальный сброс при завершении
			if len(batch) > 0 {
				m.flushLogBatch(batch)
			}
			return
		}
	}
}

// flushLogBatch сбрасывает батч логов в UI
func (m *Manager) flushLogBatch(batch []string) {
	m.logMutex.Lock()
	m.logBuffer = append(m.logBuffer, batch...)

	// Ограничиваем размер буфера
	if len(m.logBuffer) > MaxLogBufferSize {
		m.logBuffer = m.logBuffer[len(m.logBuffer)-MaxLogBufferSize:]
	}

	// Создаем копию буфера для UI
	logText := strings.Join(m.logBuffer, "\n")
	m.logMutex.Unlock()

	// Обновляем UI потокобезопасно
	if m.logView != nil {
		m.app.QueueUpdateDraw(func() {
			if m.logView != nil { // Двойная проверка
				m.logView.SetText(logText)
				m.logView.ScrollToEnd()
			}
		})
	}
}

// Cleanup освобождает ресурсы менеджера (идемпотентный)
func (m *Manager) Cleanup() {
	m.logMutex.Lock()
	defer m.logMutex.Unlock()

	// Проверяем, что канал еще открыт
	select {
	case <-m.logDone:
		// Канал уже закрыт
		return
	default:
		// Закрываем канал
		close(m.logDone)
	}
}

// updateLicenseFieldVisibility обновляет видимость поля лицензии в зависимости от выбранного сборщика
func (m *Manager) updateLicenseFieldVisibility() {
	if m.configForm == nil || m.configForm.GetFormItemCount() <= FormItemLicenseIndex {
		return
	}

	licenseField, ok := m.configForm.GetFormItem(FormItemLicenseIndex).(*tview.InputField)
	if !ok {
		return
	}

	if assemblerOption(m.config.Compression.Assembler) == 1 {
		// Показываем поле лицензии для UniPDF
		licenseField.SetLabel("🔑 Лицензия UniPDF (UNIDOC_LICENSE_API_KEY) - ОБЯЗАТЕЛЬНО")
		licenseField.SetFieldBackgroundColor(tcell.ColorDarkBlue)
	} else {
		// Скрываем поле лицензии для PDFCPU
		licenseField.SetLabel("Лицензия UniPDF (не требуется для pdfcpu)")
		licenseField.SetFieldBackgroundColor(tcell.ColorDarkGray)
	}
}

// refreshConfigForm синхронизирует значения формы с текущими данными конфигурации
func (m *Manager) refreshConfigForm() {
	if m.configForm == nil {
		return
	}

	// 0: Исходная директория (Input)
	if item, ok := m.configForm.GetFormItem(0).(*tview.InputField); ok {
		item.SetText(m.config.Scanner.SourceDirectory)
	}
	// 1: Целевая директория (Input)
	if item, ok := m.configForm.GetFormItem(1).(*tview.InputField); ok {
		item.SetText(m.config.Scanner.TargetDirectory)
	}
	// 2: Префикс архива (Input)
	if item, ok := m.configForm.GetFormItem(2).(*tview.InputField); ok {
		item.SetText(m.config.Scanner.ArchivePrefix)
	}
	// 3: Очищать очередь (Checkbox)
	if item, ok := m.configForm.GetFormItem(3).(*tview.Checkbox); ok {
		item.SetChecked(m.config.Scanner.ClearAfterArchive)
	}
	// 4: Сборщик (DropDown)
	if item, ok := m.configForm.GetFormItem(4).(*tview.DropDown); ok {
		item.SetCurrentOption(assemblerOption(m.config.Compression.Assembler))
	}
	// 5: Лицензия UniPDF (Input)
	if item, ok := m.configForm.GetFormItem(5).(*tview.InputField); ok {
		item.SetText(m.config.Compression.UniPDFLicenseKey)
	}
	// 6: Автостарт (Checkbox)
	if item, ok := m.configForm.GetFormItem(6).(*tview.Checkbox); ok {
		item.SetChecked(m.config.Compression.AutoStart)
	}
	// 7: Макс. размер растра (Input)
	if item, ok := m.configForm.GetFormItem(7).(*tview.InputField); ok {
		item.SetText(strconv.Itoa(m.config.Compression.MaxRasterDimension))
	}

	m.updateLicenseFieldVisibility()
}

// GetConfig возвращает копию текущей конфигурации
func (m *Manager) GetConfig() *entities.Config {
	cfg := *m.config
	return &cfg
}
