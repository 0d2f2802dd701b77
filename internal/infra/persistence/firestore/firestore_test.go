package firestore

import (
	"testing"

	"souk/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFirestoreClient_MissingFirebaseConfig(t *testing.T) {
	client, err := NewFirestoreClient(nil, &config.Config{})

	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "firebase configuration is required")
}
