package internal

import (
	"fmt"
	"log"
	"payco/entity"
	"payco/services"
	"time"
)

// Logger writes operator-visible messages to stdout and, when a database is
// attached, mirrors them as log records. Debug messages are emitted only
// when the debug flag is set.
type Logger struct {
	category string
	debug    bool
	database services.Database
}

func NewLogger(category string, debug bool, database services.Database) *Logger {
	return &Logger{
		category: category,
		debug:    debug,
		database: database,
	}
}

func (l *Logger) Debug(message string) {
	if !l.debug {
		return
	}
	l.write("DEBUG", message)
}

func (l *Logger) Info(message string) {
	l.write("INFO", message)
}

func (l *Logger) Warn(message string) {
	l.write("WARN", message)
}

func (l *Logger) Error(message string, err error) {
	if err != nil {
		message = fmt.Sprintf("%s; %v", message, err)
	}
	l.write("ERROR", message)
}

func (l *Logger) write(level, message string) {
	log.Printf("%s\t%s: %s", level, l.category, message)
	if l.database == nil {
		return
	}
	record := entity.LogMessage{
		Time:     time.Now(),
		Level:    level,
		Category: l.category,
		Text:     message,
	}
	if err := l.database.WriteLogMessage(&record); err != nil {
		log.Printf("ERROR\t%s: write log record; %v", l.category, err)
	}
}
