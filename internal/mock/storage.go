package mock

import (
	"bytes"
	"context"
	"io"

	"github.com/chatrelay/media-gateway-go/internal/port"
	media "github.com/chatrelay/media-gateway-go/internal/usecase/media"
)

type noopRSC struct{ io.ReadSeeker }

func (noopRSC) Close() error { return nil }

// Storage implements the storage interface for tests.
type Storage struct {
	// stored values
	StatInfoOut port.FileInfo
	GetOut      []byte
	ListOut     []port.FileInfo
	PublicOut   string
	// Exists controls whether StatFile reports the object as present.
	Exists bool

	// captured inputs
	ObjectKey  string
	SavedKey   string
	SavedBytes []byte
	SavedOpts  map[string]string
	RemovedKey string
	ListPrefix string
	PublicKey  string

	// errors
	InitBucketErr error
	StatErr       error
	GetErr        error
	SaveErr       error
	RemoveErr     error
	ListErr       error

	// call flags
	InitBucketCalled bool
	StatCalled       bool
	GetCalled        bool
	SaveCalled       bool
	RemoveCalled     bool
	ListCalled       bool
}

var _ port.Storage = (*Storage)(nil)

func (m *Storage) InitBucket() error {
	m.InitBucketCalled = true
	return m.InitBucketErr
}

func (m *Storage) StatFile(ctx context.Context, fileKey string) (port.FileInfo, error) {
	m.StatCalled = true
	m.ObjectKey = fileKey
	if m.StatErr != nil {
		return port.FileInfo{}, m.StatErr
	}
	if !m.Exists {
		return port.FileInfo{}, media.ErrObjectNotFound
	}
	return m.StatInfoOut, nil
}

func (m *Storage) GetFile(ctx context.Context, fileKey string) (io.ReadSeekCloser, error) {
	m.GetCalled = true
	m.ObjectKey = fileKey
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if m.GetOut != nil {
		return noopRSC{bytes.NewReader(m.GetOut)}, nil
	}
	return noopRSC{bytes.NewReader([]byte("dummy"))}, nil
}

func (m *Storage) SaveFile(ctx context.Context, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	m.SaveCalled = true
	m.SavedKey = fileKey
	m.SavedOpts = opts
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	m.SavedBytes = data
	return m.SaveErr
}

func (m *Storage) RemoveFile(ctx context.Context, fileKey string) error {
	m.RemoveCalled = true
	m.RemovedKey = fileKey
	return m.RemoveErr
}

func (m *Storage) ListFiles(ctx context.Context, prefix string) ([]port.FileInfo, error) {
	m.ListCalled = true
	m.ListPrefix = prefix
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return m.ListOut, nil
}

func (m *Storage) PublicURL(fileKey string) string {
	m.PublicKey = fileKey
	if m.PublicOut != "" {
		return m.PublicOut
	}
	return "https://store.example.com/" + fileKey
}
