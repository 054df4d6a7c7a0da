package storage

import (
	"context"
	"testing"

	"catalog-importer/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNewClient(t *testing.T) {
	t.Run("Strips Scheme From Endpoint", func(t *testing.T) {
		cfg := Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "key",
			SecretKey: "secret",
		}

		client, err := NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("Invalid Endpoint", func(t *testing.T) {
		cfg := Config{
			Endpoint:  "not a valid endpoint",
			AccessKey: "key",
			SecretKey: "secret",
		}

		client, err := NewClient(cfg)
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}

func TestEnsureBucket(t *testing.T) {
	t.Run("Existing Bucket Is Left Alone", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "media").Return(true, nil)

		err := EnsureBucket(context.Background(), client, "media")
		assert.NoError(t, err)
		client.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing Bucket Is Created", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "media").Return(false, nil)
		client.On("MakeBucket", mock.Anything, "media", minio.MakeBucketOptions{}).Return(nil)

		err := EnsureBucket(context.Background(), client, "media")
		assert.NoError(t, err)
		client.AssertExpectations(t)
	})
}
