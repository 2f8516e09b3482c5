package tui

import (
	"fmt"

	"pdfshrink/internal/domain/repositories"
)

// LogSink получатель строк журнала для отображения пользователю
type LogSink interface {
	AddLog(level, message string)
}

// UILogger адаптер логгера: пишет в файловый логгер и показывает
// сообщения в интерфейсе
type UILogger struct {
	fileLogger repositories.Logger
	sink       LogSink
}

// NewUILogger создает новый UI логгер
func NewUILogger(fileLogger repositories.Logger, sink LogSink) *UILogger {
	return &UILogger{
		fileLogger: fileLogger,
		sink:       sink,
	}
}

// Debug логирует отладочное сообщение
func (l *UILogger) Debug(format string, args ...interface{}) {
	if l.fileLogger != nil {
		l.fileLogger.Debug(format, args...)
	}
	l.show("DEBUG", format, args)
}

// Info логирует информационное сообщение
func (l *UILogger) Info(format string, args ...interface{}) {
	if l.fileLogger != nil {
		l.fileLogger.Info(format, args...)
	}
	l.show("INFO", format, args)
}

// Warning логирует предупреждение
func (l *UILogger) Warning(format string, args ...interface{}) {
	if l.fileLogger != nil {
		l.fileLogger.Warning(format, args...)
	}
	l.show("WARNING", format, args)
}

// Error логирует ошибку
func (l *UILogger) Error(format string, args ...interface{}) {
	if l.fileLogger != nil {
		l.fileLogger.Error(format, args...)
	}
	l.show("ERROR", format, args)
}

// Success логирует успешное выполнение
func (l *UILogger) Success(format string, args ...interface{}) {
	if l.fileLogger != nil {
		l.fileLogger.Success(format, args...)
	}
	l.show("SUCCESS", format, args)
}

// Close закрывает логгер
func (l *UILogger) Close() error {
	if l.fileLogger != nil {
		return l.fileLogger.Close()
	}
	return nil
}

func (l *UILogger) show(level, format string, args []interface{}) {
	if l.sink != nil {
		l.sink.AddLog(level, fmt.Sprintf(format, args...))
	}
}
