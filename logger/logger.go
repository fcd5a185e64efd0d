// Package logger provides centralized logging for the application.
// File: logger/logger.go
package logger

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// ------------------- global loggers -------------------

// four logger levels accessible throughout the application
var (
	Info  *log.Logger
	Warn  *log.Logger
	Error *log.Logger
	Debug *log.Logger
)

// ------------------- logger initialization -------------------

// InitLogger creates or reinitializes the logging system. It ensures
// `./logs` exists, creates a timestamped log file there, and configures
// the four leveled loggers to write to both the file and stdout.
func InitLogger() error {
	if err := os.MkdirAll("./logs", 0700); err != nil {
		return err
	}

	logFileName := filepath.Join("logs", time.Now().Format("2006-01-02_15-04-05")+".log")
	file, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600) // #nosec
	if err != nil {
		return err
	}

	multiWriter := io.MultiWriter(os.Stdout, file)

	Info = log.New(multiWriter, "INFO: ", log.Ldate|log.Ltime|log.Lshortfile)
	Warn = log.New(multiWriter, "WARN: ", log.Ldate|log.Ltime|log.Lshortfile)
	Error = log.New(multiWriter, "ERROR: ", log.Ldate|log.Ltime|log.Lshortfile)
	Debug = log.New(multiWriter, "DEBUG: ", log.Ldate|log.Ltime|log.Lshortfile)
	return nil
}

// SetLogLevel silences the Debug logger outside development. Info,
// Warn and Error always stay on.
func SetLogLevel(env string) {
	if env == "production" {
		Debug.SetOutput(io.Discard)
	}
}

// init wires the loggers at package load time so every other package
// can log without an explicit setup call. A failure here is fatal
// because nothing else can report errors yet.
func init() {
	if err := InitLogger(); err != nil {
		log.Fatalf("Failed to initialise custom logger: %v", err)
	}
}
