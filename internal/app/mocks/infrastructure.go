package mocks

import (
	"context"
	"halo-service/internal/app/models"
	"halo-service/internal/pkg/dto/requests"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
	"googlemaps.github.io/maps"
)

// MockRedisRepository is a mock implementation of contracts.RedisRepository
type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Increment(ctx context.Context, key string) (int64, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRedisRepository) IncrementWithTTL(ctx context.Context, key string, ttl time.Duration) (int, error) {
	args := m.Called(ctx, key, ttl)
	return args.Int(0), args.Error(1)
}

func (m *MockRedisRepository) TTL(ctx context.Context, key string) (time.Duration, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(time.Duration), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

// MockLockerService is a mock implementation of contracts.LockerService
type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

// MockStorage is a mock implementation of contracts.Storage
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadObject(ctx context.Context, reader io.Reader, size int64, objectName, contentType string) (string, error) {
	args := m.Called(ctx, reader, size, objectName, contentType)
	return args.String(0), args.Error(1)
}

func (m *MockStorage) DriverName() string {
	args := m.Called()
	return args.String(0)
}

// MockMailerService is a mock implementation of contracts.MailerService
type MockMailerService struct {
	mock.Mock
}

func (m *MockMailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	args := m.Called(ctx, request)
	return args.Error(0)
}

func (m *MockMailerService) Ping() error {
	args := m.Called()
	return args.Error(0)
}

// MockSessionService is a mock implementation of contracts.SessionService
type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) Create(ctx context.Context, user *models.User) (*models.Session, string, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*models.Session), args.String(1), args.Error(2)
}

func (m *MockSessionService) Get(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

func (m *MockSessionService) Delete(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func (m *MockSessionService) ParseToken(ctx context.Context, token string) (*models.Session, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Session), args.Error(1)
}

// MockDiagnosisProvider is a mock implementation of contracts.DiagnosisProvider
type MockDiagnosisProvider struct {
	mock.Mock
}

func (m *MockDiagnosisProvider) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockDiagnosisProvider) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockDiagnosisProvider) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockMapsClient is a mock implementation of contracts.MapsClient
type MockMapsClient struct {
	mock.Mock
}

func (m *MockMapsClient) Geocode(ctx context.Context, r *maps.GeocodingRequest) ([]maps.GeocodingResult, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]maps.GeocodingResult), args.Error(1)
}

func (m *MockMapsClient) NearbySearch(ctx context.Context, r *maps.NearbySearchRequest) (maps.PlacesSearchResponse, error) {
	args := m.Called(ctx, r)
	return args.Get(0).(maps.PlacesSearchResponse), args.Error(1)
}

// MockHealthChecker is a mock implementation of contracts.HealthChecker
type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockHealthChecker) Check(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
