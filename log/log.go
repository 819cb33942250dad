package log

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	WarningLog *log.Logger
	InfoLog    *log.Logger
	ErrorLog   *log.Logger
)

// LogConfig holds logging configuration
type LogConfig struct {
	LogsEnabled bool
	LogsDir     string
	LogMaxSize  int
	LogMaxFiles int
	LogMaxAge   int
	LogCompress bool
}

// DefaultLogConfig returns the default logging configuration
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		LogsEnabled: true,
		LogsDir:     "",
		LogMaxSize:  10, // 10MB
		LogMaxFiles: 5,  // 5 backups
		LogMaxAge:   30, // 30 days
		LogCompress: true,
	}
}

const logBaseName = "starmutt.log"

// Default log file, used when the log directory cannot be created
var logFileName = filepath.Join(os.TempDir(), logBaseName)

// GetConfigDir returns the path to the application's configuration directory
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".starmutt"), nil
}

// GetLogDir returns the directory where logs should be stored
func GetLogDir(cfg *LogConfig) (string, error) {
	if cfg != nil && !cfg.LogsEnabled {
		return os.TempDir(), nil
	}

	if cfg != nil && cfg.LogsDir != "" {
		return cfg.LogsDir, nil
	}

	// Otherwise use ~/.starmutt/logs/
	configDir, err := GetConfigDir()
	if err != nil {
		return os.TempDir(), fmt.Errorf("failed to get config directory: %w", err)
	}

	logDir := filepath.Join(configDir, "logs")
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return os.TempDir(), fmt.Errorf("failed to create log directory: %w", err)
	}

	return logDir, nil
}

// GetLogFilePath returns the full path to the log file
func GetLogFilePath(cfg *LogConfig) (string, error) {
	logDir, err := GetLogDir(cfg)
	if err != nil {
		return logFileName, err
	}

	return filepath.Join(logDir, logBaseName), nil
}

var globalLogFile io.Closer

func init() {
	// Default loggers so that log calls never panic in tests or before Initialize.
	InfoLog = log.New(os.Stderr, "INFO: ", log.Ldate|log.Ltime)
	WarningLog = log.New(os.Stderr, "WARNING: ", log.Ldate|log.Ltime)
	ErrorLog = log.New(os.Stderr, "ERROR: ", log.Ldate|log.Ltime)
}

// createRotatingWriter creates a writer that handles log rotation based on config
func createRotatingWriter(logFilePath string, cfg *LogConfig) (io.Writer, error) {
	if cfg == nil || cfg.LogMaxSize <= 0 {
		if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err != nil {
			return nil, fmt.Errorf("could not create log directory: %w", err)
		}

		// No rotation, use standard file
		f, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return nil, fmt.Errorf("could not open log file: %w", err)
		}
		return f, nil
	}

	return &lumberjack.Logger{
		Filename:   logFilePath,
		MaxSize:    cfg.LogMaxSize,  // megabytes
		MaxBackups: cfg.LogMaxFiles, // number of backups
		MaxAge:     cfg.LogMaxAge,   // days
		Compress:   cfg.LogCompress,
		LocalTime:  true,
	}, nil
}

// Initialize should be called once at the beginning of the program to set up
// logging. defer Close() after calling it. While the TUI owns the terminal,
// every logger writes to the configured file (default: ~/.starmutt/logs/).
// A nil cfg uses DefaultLogConfig.
func Initialize(cfg *LogConfig) error {
	if cfg == nil {
		cfg = DefaultLogConfig()
	}
	if !cfg.LogsEnabled {
		InfoLog = log.New(io.Discard, "", 0)
		WarningLog = log.New(io.Discard, "", 0)
		ErrorLog = log.New(io.Discard, "", 0)
		return nil
	}

	logFilePath, err := GetLogFilePath(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Using default log file location due to error: %v\n", err)
	}

	writer, err := createRotatingWriter(logFilePath, cfg)
	if err != nil {
		return err
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	InfoLog = log.New(writer, "INFO:", log.Ldate|log.Ltime|log.Lshortfile)
	WarningLog = log.New(writer, "WARNING:", log.Ldate|log.Ltime|log.Lshortfile)
	ErrorLog = log.New(writer, "ERROR:", log.Ldate|log.Ltime|log.Lshortfile)

	if closer, ok := writer.(io.Closer); ok {
		globalLogFile = closer
	}
	logFileName = logFilePath
	return nil
}

// LogFilePath returns the file the loggers write to.
func LogFilePath() string {
	return logFileName
}

func Close() {
	if globalLogFile != nil {
		_ = globalLogFile.Close()
		globalLogFile = nil
	}
}

// Every is used to log at most once every timeout duration.
type Every struct {
	timeout time.Duration
	timer   *time.Timer
}

func NewEvery(timeout time.Duration) *Every {
	return &Every{timeout: timeout}
}

// ShouldLog returns true if the timeout has passed since the last log.
func (e *Every) ShouldLog() bool {
	if e.timer == nil {
		e.timer = time.NewTimer(e.timeout)
		return true
	}

	select {
	case <-e.timer.C:
		e.timer.Reset(e.timeout)
		return true
	default:
		return false
	}
}
