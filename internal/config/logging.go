package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
)

// SetupLogging installs a JSON slog logger writing to out and, when
// withFile is set, to a log file truncated on every start. The returned
// closer is nil when no file was opened.
func SetupLogging(out io.Writer, debug, withFile bool) io.Closer {
	writers := []io.Writer{out}
	var logFile *os.File

	if withFile {
		if logPath, err := LogFilePath(); err == nil {
			f, err := os.OpenFile(logPath, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, FilePermUserRW)
			if err == nil {
				writers = append(writers, f)
				logFile = f
			} else {
				fmt.Fprintf(os.Stderr, MsgLogWarning, ErrLogFile, logPath, err)
			}
		}
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(io.MultiWriter(writers...), &slog.HandlerOptions{
		Level:     level,
		AddSource: debug,
	}))
	slog.SetDefault(logger)

	if logFile == nil {
		return nil
	}
	return logFile
}

// LogFilePath returns the log location in the user cache dir, creating
// the app directory with owner-only permissions.
func LogFilePath() (string, error) {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrCacheDir, err)
	}

	appDir := filepath.Join(cacheDir, AppID)
	if err := os.MkdirAll(appDir, DirPermUserRWX); err != nil {
		return "", fmt.Errorf("%s: %w", ErrCreateDir, err)
	}
	return filepath.Join(appDir, LogFileName), nil
}

// LogStartupInfo records build and environment details.
func LogStartupInfo(component string) {
	slog.Info(MsgAppStarting,
		LogKeyComponent, component,
		slog.Group(LogKeyBuild,
			slog.String(LogKeyApp, AppName),
			slog.String(LogKeyVersion, Version),
			slog.String(LogKeyGoVer, runtime.Version()),
		),
		slog.Group(LogKeyEnv,
			slog.String(LogKeyOS, runtime.GOOS),
			slog.String(LogKeyArch, runtime.GOARCH),
			slog.Int(LogKeyPID, os.Getpid()),
		),
	)
}

// VersionString is the -version output.
func VersionString() string {
	return fmt.Sprintf(MsgVersionOutput, AppName, Version, runtime.GOOS, runtime.GOARCH)
}
