package upload

import (
	"bytes"
	"context"
	"testing"

	"pluggedin/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

var (
	pngBytes  = []byte("\x89PNG\r\n\x1a\n0000000000")
	jpegBytes = []byte("\xff\xd8\xff\xe00000000000")
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Save(bucket, key string, data []byte) (string, error) {
	args := m.Called(bucket, key, data)
	return args.String(0), args.Error(1)
}

type MockUploadRepo struct {
	mock.Mock
}

func (m *MockUploadRepo) Upsert(ctx context.Context, u *domain.Upload) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil {
		u.ID = 1
	}
	return args.Error(0)
}

type MockBusinessGate struct {
	mock.Mock
}

func (m *MockBusinessGate) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Business), args.Error(1)
}

func (m *MockBusinessGate) SetProfileImage(ctx context.Context, id int64, url string) error {
	args := m.Called(ctx, id, url)
	return args.Error(0)
}

type MockPostGate struct {
	mock.Mock
}

func (m *MockPostGate) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *MockPostGate) SetImage(ctx context.Context, id int64, url string) error {
	args := m.Called(ctx, id, url)
	return args.Error(0)
}

func TestService_UploadBusinessImage_Success(t *testing.T) {
	store := new(MockStore)
	store.On("Save", BucketBusinessImages, "3.png", pngBytes).Return("/static/uploads/business-images/3.png", nil)

	uploads := new(MockUploadRepo)
	uploads.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Upload")).Return(nil)

	businesses := new(MockBusinessGate)
	businesses.On("GetByID", mock.Anything, int64(3)).Return(&domain.Business{ID: 3, UserID: 1}, nil)
	businesses.On("SetProfileImage", mock.Anything, int64(3), "/static/uploads/business-images/3.png").Return(nil)

	svc := NewService(store, uploads, businesses, new(MockPostGate))
	up, err := svc.UploadBusinessImage(context.Background(), 1, 3, pngBytes)

	assert.NoError(t, err)
	assert.Equal(t, BucketBusinessImages, up.Bucket)
	assert.Equal(t, "3.png", up.Key)
	assert.Equal(t, "image/png", up.MimeType)
	businesses.AssertCalled(t, "SetProfileImage", mock.Anything, int64(3), "/static/uploads/business-images/3.png")
}

func TestService_UploadBusinessImage_NotOwner(t *testing.T) {
	businesses := new(MockBusinessGate)
	businesses.On("GetByID", mock.Anything, int64(3)).Return(&domain.Business{ID: 3, UserID: 2}, nil)

	svc := NewService(new(MockStore), new(MockUploadRepo), businesses, new(MockPostGate))
	_, err := svc.UploadBusinessImage(context.Background(), 1, 3, pngBytes)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_UploadBusinessImage_NotFound(t *testing.T) {
	businesses := new(MockBusinessGate)
	businesses.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(new(MockStore), new(MockUploadRepo), businesses, new(MockPostGate))
	_, err := svc.UploadBusinessImage(context.Background(), 1, 99, pngBytes)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_UploadBusinessImage_RejectsNonImage(t *testing.T) {
	businesses := new(MockBusinessGate)
	businesses.On("GetByID", mock.Anything, int64(3)).Return(&domain.Business{ID: 3, UserID: 1}, nil)

	svc := NewService(new(MockStore), new(MockUploadRepo), businesses, new(MockPostGate))
	_, err := svc.UploadBusinessImage(context.Background(), 1, 3, []byte("plain text, not an image"))

	assert.ErrorIs(t, err, ErrNotAnImage)
}

func TestService_UploadBusinessImage_RejectsOversize(t *testing.T) {
	businesses := new(MockBusinessGate)
	businesses.On("GetByID", mock.Anything, int64(3)).Return(&domain.Business{ID: 3, UserID: 1}, nil)

	big := append([]byte(nil), pngBytes...)
	big = append(big, bytes.Repeat([]byte{0}, maxUploadSize)...)

	svc := NewService(new(MockStore), new(MockUploadRepo), businesses, new(MockPostGate))
	_, err := svc.UploadBusinessImage(context.Background(), 1, 3, big)

	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestService_UploadPostImage_Success(t *testing.T) {
	store := new(MockStore)
	store.On("Save", BucketPostImages, "7.jpg", jpegBytes).Return("/static/uploads/post-images/7.jpg", nil)

	uploads := new(MockUploadRepo)
	uploads.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Upload")).Return(nil)

	posts := new(MockPostGate)
	posts.On("GetByID", mock.Anything, int64(7)).Return(&domain.Post{ID: 7, UserID: 1}, nil)
	posts.On("SetImage", mock.Anything, int64(7), "/static/uploads/post-images/7.jpg").Return(nil)

	svc := NewService(store, uploads, new(MockBusinessGate), posts)
	up, err := svc.UploadPostImage(context.Background(), 1, 7, jpegBytes)

	assert.NoError(t, err)
	assert.Equal(t, "7.jpg", up.Key)
	assert.Equal(t, "image/jpeg", up.MimeType)
}

func TestService_UploadPostImage_NotCreator(t *testing.T) {
	posts := new(MockPostGate)
	posts.On("GetByID", mock.Anything, int64(7)).Return(&domain.Post{ID: 7, UserID: 5}, nil)

	svc := NewService(new(MockStore), new(MockUploadRepo), new(MockBusinessGate), posts)
	_, err := svc.UploadPostImage(context.Background(), 1, 7, jpegBytes)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_KeyIsStableAcrossReuploads(t *testing.T) {
	store := new(MockStore)
	store.On("Save", BucketBusinessImages, "3.png", pngBytes).Return("/static/uploads/business-images/3.png", nil).Twice()

	uploads := new(MockUploadRepo)
	uploads.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Upload")).Return(nil)

	businesses := new(MockBusinessGate)
	businesses.On("GetByID", mock.Anything, int64(3)).Return(&domain.Business{ID: 3, UserID: 1}, nil)
	businesses.On("SetProfileImage", mock.Anything, int64(3), mock.Anything).Return(nil)

	svc := NewService(store, uploads, businesses, new(MockPostGate))

	first, err := svc.UploadBusinessImage(context.Background(), 1, 3, pngBytes)
	assert.NoError(t, err)
	second, err := svc.UploadBusinessImage(context.Background(), 1, 3, pngBytes)
	assert.NoError(t, err)

	assert.Equal(t, first.Key, second.Key)
	uploads.AssertNumberOfCalls(t, "Upsert", 2)
}
