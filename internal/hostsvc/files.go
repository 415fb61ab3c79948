// Package hostsvc implements the host operations window content may reach
// through its capability bridge: native dialogs, whole-file reads and
// writes, and the document export placeholder.
package hostsvc

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"office97/internal/logger"
)

// Result is the tagged outcome of a host operation. Failures are values,
// never panics.
type Result struct {
	Success bool   `json:"success"`
	Data    string `json:"data,omitempty"`
	Path    string `json:"path,omitempty"`
	Error   string `json:"error,omitempty"`
}

func failure(err error) Result {
	return Result{Success: false, Error: err.Error()}
}

// Service performs the file operations. Paths are used as given.
type Service struct {
	logger logger.Logger
}

func NewService(log logger.Logger) *Service {
	if log == nil {
		log = logger.NoOpLogger{}
	}
	return &Service{logger: log}
}

// ReadFileBinary returns the whole file base64 encoded.
func (s *Service) ReadFileBinary(path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		s.logFailure("read", path, err)
		return failure(err)
	}
	return Result{Success: true, Data: base64.StdEncoding.EncodeToString(data), Path: path}
}

// WriteFileBinary decodes data and overwrites path with it.
func (s *Service) WriteFileBinary(path, data string) Result {
	buf, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		err = fmt.Errorf("decode payload: %w", err)
		s.logFailure("write", path, err)
		return failure(err)
	}
	if err := os.WriteFile(path, buf, 0o644); err != nil {
		s.logFailure("write", path, err)
		return failure(err)
	}
	return Result{Success: true}
}

func (s *Service) ReadFileText(path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		s.logFailure("read text", path, err)
		return failure(err)
	}
	// Invalid sequences become U+FFFD so Data is always valid UTF-8.
	return Result{Success: true, Data: strings.ToValidUTF8(string(data), "\uFFFD"), Path: path}
}

func (s *Service) WriteFileText(path, text string) Result {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		s.logFailure("write text", path, err)
		return failure(err)
	}
	return Result{Success: true}
}

// ExportDocument is a placeholder; it accepts any payload and reports success.
func (s *Service) ExportDocument(payload interface{}) Result {
	s.logger.Debug("HostServices", "export requested", map[string]interface{}{
		"payload_type": fmt.Sprintf("%T", payload),
	})
	return Result{Success: true}
}

func (s *Service) logFailure(op, path string, err error) {
	s.logger.Warning("HostServices", op+" failed", map[string]interface{}{
		"path":  path,
		"error": err.Error(),
	})
}
