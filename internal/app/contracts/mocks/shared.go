package mocks

import (
	"context"
	"invrent-service/internal/app/models"
	"time"

	"github.com/stretchr/testify/mock"
)

type RedisRepository struct {
	mock.Mock
}

func (m *RedisRepository) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *RedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	return m.Called(ctx, key, value, exp).Error(0)
}

func (m *RedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

type Storage struct {
	mock.Mock
}

func (m *Storage) UploadObject(ctx context.Context, bucketName, objectName, contentType string, data []byte) (string, error) {
	args := m.Called(ctx, bucketName, objectName, contentType, data)
	return args.String(0), args.Error(1)
}

func (m *Storage) GetObjectUrlWithExpiryTime(ctx context.Context, bucketName, objectName string, expiryTime time.Duration) (string, error) {
	args := m.Called(ctx, bucketName, objectName, expiryTime)
	return args.String(0), args.Error(1)
}

type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) Publish(ctx context.Context, event *models.Event) error {
	return m.Called(ctx, event).Error(0)
}

type AuditRepository struct {
	mock.Mock
}

func (m *AuditRepository) Insert(ctx context.Context, record *models.AuditRecord) error {
	return m.Called(ctx, record).Error(0)
}
