package services

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"text-editor/internal/debug"
)

// FileReadError is returned when a document cannot be loaded.
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error { return e.Err }

// FileWriteError is returned when a document cannot be saved.
type FileWriteError struct {
	Path string
	Err  error
}

func (e *FileWriteError) Error() string {
	return fmt.Sprintf("cannot write %s: %v", e.Path, e.Err)
}

func (e *FileWriteError) Unwrap() error { return e.Err }

// FileService reads and writes plain-text documents verbatim.
type FileService struct {
	debugCoord debug.Coordinator
	logger     debug.Logger
}

func NewFileService(debugCoord debug.Coordinator) *FileService {
	return &FileService{
		debugCoord: debugCoord,
		logger:     debugCoord.Logger(),
	}
}

// Read loads the whole file. Nothing is returned on failure, so callers
// never see a partial document.
func (fs *FileService) Read(ctx context.Context, path string) (string, error) {
	select {
	case <-ctx.Done():
		return "", &FileReadError{Path: path, Err: ctx.Err()}
	default:
	}

	timer := fs.debugCoord.TimingTracker()
	timingCtx := timer.StartTiming("file_read")
	defer timer.EndTiming(timingCtx)

	f, err := os.Open(path)
	if err != nil {
		return "", &FileReadError{Path: path, Err: err}
	}
	tracker := fs.debugCoord.FileTracker()
	fd := f.Fd()
	tracker.TrackOpen(path, fd)
	defer func() {
		tracker.TrackClose(path, fd)
		f.Close()
	}()

	data, err := io.ReadAll(bufio.NewReader(f))
	if err != nil {
		return "", &FileReadError{Path: path, Err: err}
	}

	fs.debugCoord.EventPublisher().Publish(debug.Event{
		Type: debug.EventFileOpened,
		Data: map[string]interface{}{"path": path, "bytes": len(data)},
	})
	fs.logger.Debug("FileService", "file read", map[string]interface{}{
		"path":  path,
		"bytes": len(data),
	})

	return string(data), nil
}

// Write stores text at path. The content goes to a temporary file in the
// same directory first and is renamed over the target, so a failed write
// leaves the previous file intact.
func (fs *FileService) Write(ctx context.Context, path, text string) error {
	select {
	case <-ctx.Done():
		return &FileWriteError{Path: path, Err: ctx.Err()}
	default:
	}

	timer := fs.debugCoord.TimingTracker()
	timingCtx := timer.StartTiming("file_write")
	defer timer.EndTiming(timingCtx)

	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return &FileWriteError{Path: path, Err: errors.New("is a directory")}
		}
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return &FileWriteError{Path: path, Err: err}
	}
	tmpPath := tmp.Name()

	tracker := fs.debugCoord.FileTracker()
	fd := tmp.Fd()
	tracker.TrackOpen(tmpPath, fd)

	err = writeAndClose(tmp, text)
	tracker.TrackClose(tmpPath, fd)
	if err != nil {
		os.Remove(tmpPath)
		return &FileWriteError{Path: path, Err: err}
	}

	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return &FileWriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return &FileWriteError{Path: path, Err: err}
	}

	fs.debugCoord.EventPublisher().Publish(debug.Event{
		Type: debug.EventFileSaved,
		Data: map[string]interface{}{"path": path, "bytes": len(text)},
	})
	fs.logger.Debug("FileService", "file written", map[string]interface{}{
		"path":  path,
		"bytes": len(text),
	})
	return nil
}

func writeAndClose(f *os.File, text string) error {
	w := bufio.NewWriter(f)
	if _, err := w.WriteString(text); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
