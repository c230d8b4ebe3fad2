// Package fsutil provides the filesystem seam used by the point-set loader
// and writers, so they can run against the real disk or an in-memory tree.
package fsutil

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// FileSystem is the subset of filesystem operations the loader and the
// result writers need.
type FileSystem interface {
	// Open opens the named file for reading.
	Open(name string) (fs.File, error)

	// Create creates or truncates the named file.
	Create(name string) (io.WriteCloser, error)

	// Stat returns a FileInfo describing the named file.
	Stat(name string) (fs.FileInfo, error)
}

// OSFileSystem implements FileSystem using the os package.
type OSFileSystem struct{}

// Open opens the named file.
func (OSFileSystem) Open(name string) (fs.File, error) {
	return os.Open(name)
}

// Create creates the named file, truncating it if it already exists.
func (OSFileSystem) Create(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// Stat returns file info for the named file.
func (OSFileSystem) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// MemoryFileSystem is an in-memory FileSystem for tests. Paths registered
// with Deny fail every operation with fs.ErrPermission, which stands in for
// unreadable inputs and unwritable output locations.
type MemoryFileSystem struct {
	mu     sync.RWMutex
	files  map[string][]byte
	denied map[string]bool
}

// NewMemoryFileSystem creates an empty in-memory filesystem.
func NewMemoryFileSystem() *MemoryFileSystem {
	return &MemoryFileSystem{
		files:  make(map[string][]byte),
		denied: make(map[string]bool),
	}
}

// WriteFile stores data under name, replacing any previous content.
func (m *MemoryFileSystem) WriteFile(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	buf := make([]byte, len(data))
	copy(buf, data)
	m.files[filepath.Clean(name)] = buf
}

// ReadFile returns a copy of the named file's contents.
func (m *MemoryFileSystem) ReadFile(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = filepath.Clean(name)
	data, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrNotExist}
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Deny makes every operation on name, or anything below it, fail with
// fs.ErrPermission.
func (m *MemoryFileSystem) Deny(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.denied[filepath.Clean(name)] = true
}

func (m *MemoryFileSystem) isDenied(name string) bool {
	for p := range m.denied {
		if name == p || strings.HasPrefix(name, p+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// Open opens a file for reading.
func (m *MemoryFileSystem) Open(name string) (fs.File, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = filepath.Clean(name)
	if m.isDenied(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	data, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return &memFileReader{name: name, data: data}, nil
}

// Create creates or truncates a file. The content becomes visible on Close.
func (m *MemoryFileSystem) Create(name string) (io.WriteCloser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	name = filepath.Clean(name)
	if m.isDenied(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
	}
	m.files[name] = []byte{}
	return &memFileWriter{fs: m, name: name}, nil
}

// Stat returns file info.
func (m *MemoryFileSystem) Stat(name string) (fs.FileInfo, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	name = filepath.Clean(name)
	if m.isDenied(name) {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrPermission}
	}
	data, ok := m.files[name]
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return &memFileInfo{name: filepath.Base(name), size: int64(len(data))}, nil
}

// Exists reports whether a file has been stored under name.
func (m *MemoryFileSystem) Exists(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.files[filepath.Clean(name)]
	return ok
}

// memFileReader implements fs.File for reading.
type memFileReader struct {
	name   string
	data   []byte
	offset int
}

func (f *memFileReader) Read(p []byte) (int, error) {
	if f.offset >= len(f.data) {
		return 0, io.EOF
	}
	n := copy(p, f.data[f.offset:])
	f.offset += n
	return n, nil
}

func (f *memFileReader) Close() error { return nil }

func (f *memFileReader) Stat() (fs.FileInfo, error) {
	return &memFileInfo{name: filepath.Base(f.name), size: int64(len(f.data))}, nil
}

// memFileWriter buffers writes until Close.
type memFileWriter struct {
	fs   *MemoryFileSystem
	name string
	buf  []byte
}

func (f *memFileWriter) Write(p []byte) (int, error) {
	f.buf = append(f.buf, p...)
	return len(p), nil
}

func (f *memFileWriter) Close() error {
	f.fs.mu.Lock()
	defer f.fs.mu.Unlock()
	f.fs.files[f.name] = f.buf
	return nil
}

// memFileInfo implements fs.FileInfo.
type memFileInfo struct {
	name string
	size int64
}

func (i *memFileInfo) Name() string       { return i.name }
func (i *memFileInfo) Size() int64        { return i.size }
func (i *memFileInfo) Mode() os.FileMode  { return 0644 }
func (i *memFileInfo) ModTime() time.Time { return time.Time{} }
func (i *memFileInfo) IsDir() bool        { return false }
func (i *memFileInfo) Sys() any           { return nil }
