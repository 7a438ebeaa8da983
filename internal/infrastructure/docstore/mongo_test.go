package docstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMongoDB_Uninitialized(t *testing.T) {
	m := NewMongoDB(&Config{URI: "mongodb://localhost:27017", Database: "bookly", Timeout: time.Second})

	assert.Error(t, m.Ping(context.Background()))
	assert.NoError(t, m.Close(context.Background()))
}

func TestMongoDB_ConnectRejectsMalformedURI(t *testing.T) {
	m := NewMongoDB(&Config{URI: "not-a-mongo-uri", Database: "bookly", Timeout: time.Second})

	err := m.Connect(context.Background())

	assert.Error(t, err)
	assert.Nil(t, m.Client)
}
