package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/url"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"

	media "github.com/chatrelay/media-gateway-go/internal/usecase/media"
)

type fakeMinioClient struct {
	bucketExists    bool
	bucketExistsErr error
	makeBucketErr   error
	statInfo        minio.ObjectInfo
	statErr         error
	getErr          error
	putErr          error
	removeErr       error
	listObjects     []minio.ObjectInfo

	madeBucket   bool
	statKey      string
	putKey       string
	putSize      int64
	putOpts      minio.PutObjectOptions
	removedKey   string
	listedPrefix string
}

func (f *fakeMinioClient) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	return f.bucketExists, f.bucketExistsErr
}

func (f *fakeMinioClient) MakeBucket(ctx context.Context, bucketName string, opts minio.MakeBucketOptions) error {
	f.madeBucket = true
	return f.makeBucketErr
}

func (f *fakeMinioClient) StatObject(ctx context.Context, bucketName, fileKey string, opts minio.StatObjectOptions) (minio.ObjectInfo, error) {
	f.statKey = fileKey
	return f.statInfo, f.statErr
}

func (f *fakeMinioClient) GetObject(ctx context.Context, bucketName, objectName string, opts minio.GetObjectOptions) (*minio.Object, error) {
	return nil, f.getErr
}

func (f *fakeMinioClient) PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	f.putKey = objectName
	f.putSize = objectSize
	f.putOpts = opts
	return minio.UploadInfo{Key: objectName, Size: objectSize}, f.putErr
}

func (f *fakeMinioClient) RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error {
	f.removedKey = objectName
	return f.removeErr
}

func (f *fakeMinioClient) ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	f.listedPrefix = opts.Prefix
	ch := make(chan minio.ObjectInfo, len(f.listObjects))
	for _, obj := range f.listObjects {
		ch <- obj
	}
	close(ch)
	return ch
}

func (f *fakeMinioClient) EndpointURL() *url.URL {
	return &url.URL{Scheme: "http", Host: "store.example.com:9000"}
}

func newTestStorage(client minioClient, useSSL bool) *MinioStorage {
	return &MinioStorage{client: client, bucketName: "medias", useSSL: useSSL}
}

func TestInitBucket_CreatesWhenMissing(t *testing.T) {
	client := &fakeMinioClient{bucketExists: false}
	s := newTestStorage(client, false)

	if err := s.InitBucket(); err != nil {
		t.Fatalf("InitBucket() returned unexpected error: %v", err)
	}
	if !client.madeBucket {
		t.Error("a missing bucket should be created")
	}
}

func TestInitBucket_SkipsWhenPresent(t *testing.T) {
	client := &fakeMinioClient{bucketExists: true}
	s := newTestStorage(client, false)

	if err := s.InitBucket(); err != nil {
		t.Fatalf("InitBucket() returned unexpected error: %v", err)
	}
	if client.madeBucket {
		t.Error("an existing bucket must not be recreated")
	}
}

func TestStatFile_Success(t *testing.T) {
	modified := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	client := &fakeMinioClient{statInfo: minio.ObjectInfo{Size: 1234, ContentType: "image/jpeg", LastModified: modified}}
	s := newTestStorage(client, false)

	info, err := s.StatFile(context.Background(), "client-1/images/a.jpg")
	if err != nil {
		t.Fatalf("StatFile() returned unexpected error: %v", err)
	}

	if info.Key != "client-1/images/a.jpg" || info.SizeBytes != 1234 {
		t.Errorf("unexpected info %+v", info)
	}
	if info.ContentType != "image/jpeg" || !info.LastModified.Equal(modified) {
		t.Errorf("unexpected info %+v", info)
	}
}

func TestStatFile_MapsNoSuchKey(t *testing.T) {
	client := &fakeMinioClient{statErr: minio.ErrorResponse{Code: "NoSuchKey"}}
	s := newTestStorage(client, false)

	_, err := s.StatFile(context.Background(), "ghost")
	if !errors.Is(err, media.ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
}

func TestSaveFile_SetsContentType(t *testing.T) {
	client := &fakeMinioClient{}
	s := newTestStorage(client, false)

	body := []byte("jpeg bytes")
	err := s.SaveFile(context.Background(), "client-1/images/a.jpg", bytes.NewReader(body), int64(len(body)), map[string]string{"Content-Type": "image/jpeg"})
	if err != nil {
		t.Fatalf("SaveFile() returned unexpected error: %v", err)
	}

	if client.putKey != "client-1/images/a.jpg" || client.putSize != int64(len(body)) {
		t.Errorf("unexpected put call %q %d", client.putKey, client.putSize)
	}
	if client.putOpts.ContentType != "image/jpeg" {
		t.Errorf("unexpected content type %q", client.putOpts.ContentType)
	}
}

func TestRemoveFile_MapsErrors(t *testing.T) {
	client := &fakeMinioClient{removeErr: minio.ErrorResponse{Code: "NoSuchKey"}}
	s := newTestStorage(client, false)

	if err := s.RemoveFile(context.Background(), "ghost"); !errors.Is(err, media.ErrObjectNotFound) {
		t.Fatalf("expected ErrObjectNotFound, got %v", err)
	}
	if client.removedKey != "ghost" {
		t.Errorf("unexpected remove key %q", client.removedKey)
	}
}

func TestListFiles(t *testing.T) {
	client := &fakeMinioClient{listObjects: []minio.ObjectInfo{
		{Key: "uploads/client-1/image/a.png", Size: 100},
		{Key: "uploads/client-1/document/b.pdf", Size: 2048},
	}}
	s := newTestStorage(client, false)

	out, err := s.ListFiles(context.Background(), "uploads/client-1/")
	if err != nil {
		t.Fatalf("ListFiles() returned unexpected error: %v", err)
	}

	if client.listedPrefix != "uploads/client-1/" {
		t.Errorf("listed with prefix %q", client.listedPrefix)
	}
	if len(out) != 2 || out[0].Key != "uploads/client-1/image/a.png" || out[1].SizeBytes != 2048 {
		t.Errorf("unexpected listing %+v", out)
	}
}

func TestListFiles_ObjectError(t *testing.T) {
	client := &fakeMinioClient{listObjects: []minio.ObjectInfo{
		{Err: minio.ErrorResponse{Code: "AccessDenied"}},
	}}
	s := newTestStorage(client, false)

	if _, err := s.ListFiles(context.Background(), "x/"); !errors.Is(err, media.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestPublicURL(t *testing.T) {
	plain := newTestStorage(&fakeMinioClient{}, false)
	if got := plain.PublicURL("uploads/client-1/image/a.png"); got != "http://store.example.com:9000/medias/uploads/client-1/image/a.png" {
		t.Errorf("unexpected url %q", got)
	}

	secure := newTestStorage(&fakeMinioClient{}, true)
	if got := secure.PublicURL("a"); got != "https://store.example.com:9000/medias/a" {
		t.Errorf("unexpected url %q", got)
	}
}

func TestMapMinioErr(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{"NoSuchKey", media.ErrObjectNotFound},
		{"NoSuchBucket", media.ErrBucketNotFound},
		{"AccessDenied", media.ErrUnauthorized},
		{"InvalidAccessKeyId", media.ErrUnauthorized},
		{"SignatureDoesNotMatch", media.ErrUnauthorized},
		{"SlowDown", media.ErrInternal},
	}
	for _, tc := range tests {
		if got := mapMinioErr(minio.ErrorResponse{Code: tc.code}); !errors.Is(got, tc.want) {
			t.Errorf("code %q mapped to %v, want %v", tc.code, got, tc.want)
		}
	}
	if mapMinioErr(nil) != nil {
		t.Error("nil must map to nil")
	}
}

