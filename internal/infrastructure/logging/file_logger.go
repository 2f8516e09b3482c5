package logging

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"
)

// FileLogger реализация логгера в файл
type FileLogger struct {
	mu       sync.Mutex
	filename string
	file     *os.File
	logger   *log.Logger
	logLevel string
	maxSize  int64
	written  int64
}

// NewFileLogger создает новый файловый логгер.
// При превышении maxSizeMB текущий файл переименовывается в <filename>.1.
func NewFileLogger(filename, logLevel string, maxSizeMB int, logToFile bool) (*FileLogger, error) {
	if !logToFile {
		return nil, nil
	}

	l := &FileLogger{
		filename: filename,
		logLevel: strings.ToLower(logLevel),
		maxSize:  int64(maxSizeMB) * 1024 * 1024,
	}
	if err := l.open(); err != nil {
		return nil, err
	}
	return l, nil
}

// Debug логирует отладочное сообщение
func (l *FileLogger) Debug(format string, args ...interface{}) {
	if l.shouldLog("debug") {
		l.writeLog("DEBUG", format, args...)
	}
}

// Info логирует информационное сообщение
func (l *FileLogger) Info(format string, args ...interface{}) {
	if l.shouldLog("info") {
		l.writeLog("INFO", format, args...)
	}
}

// Warning логирует предупреждение
func (l *FileLogger) Warning(format string, args ...interface{}) {
	if l.shouldLog("warning") {
		l.writeLog("WARNING", format, args...)
	}
}

// Error логирует ошибку
func (l *FileLogger) Error(format string, args ...interface{}) {
	if l.shouldLog("error") {
		l.writeLog("ERROR", format, args...)
	}
}

// Success логирует успешное выполнение
func (l *FileLogger) Success(format string, args ...interface{}) {
	if l.shouldLog("info") {
		l.writeLog("SUCCESS", format, args...)
	}
}

// Close закрывает логгер
func (l *FileLogger) Close() error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		l.logger = nil
		return err
	}
	return nil
}

func (l *FileLogger) open() error {
	file, err := os.OpenFile(l.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return err
	}

	l.file = file
	l.written = info.Size()
	l.logger = log.New(file, "", log.LstdFlags)
	return nil
}

// rotate переносит текущий файл в <filename>.1 и открывает новый
func (l *FileLogger) rotate() error {
	if l.file != nil {
		l.file.Close()
	}
	if err := os.Rename(l.filename, l.filename+".1"); err != nil && !os.IsNotExist(err) {
		return err
	}
	return l.open()
}

// writeLog записывает лог
func (l *FileLogger) writeLog(level, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.logger == nil {
		return
	}

	message := fmt.Sprintf("[%s] %s", level, fmt.Sprintf(format, args...))
	// Префикс с датой и перевод строки
	size := int64(len(message)) + int64(len("2006/01/02 15:04:05 \n"))
	if l.maxSize > 0 && l.written+size > l.maxSize {
		if err := l.rotate(); err != nil {
			return
		}
	}

	l.logger.Println(message)
	l.written += size
}

// shouldLog проверяет, нужно ли логировать на данном уровне
func (l *FileLogger) shouldLog(level string) bool {
	if l == nil {
		return false
	}

	levels := map[string]int{
		"debug":   0,
		"info":    1,
		"warning": 2,
		"error":   3,
	}

	currentLevel, ok := levels[l.logLevel]
	if !ok {
		currentLevel = 1 // default to info
	}

	messageLevel, ok := levels[level]
	if !ok {
		return false
	}

	return messageLevel >= currentLevel
}
