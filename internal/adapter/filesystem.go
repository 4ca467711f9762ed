package adapter

import (
	"os"
)

// FileSystem reads the world definition
//
//go:generate mockgen -source=filesystem.go -destination=../mocks/filesystem.go -package=mocks -mock_names=FileSystem=MockFileSystem
type FileSystem interface {
	// ReadFile reads the named file
	ReadFile(name string) ([]byte, error)
}

type osFileSystem struct{}

// NewFileSystem returns a FileSystem over the local disk
func NewFileSystem() FileSystem {
	return osFileSystem{}
}

func (osFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) //nolint:gosec,G304
}
