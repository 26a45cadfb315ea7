package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithSSLMode(t *testing.T) {
	got := withSSLMode("postgres://user:pw@db.example.com:5432/postgres")
	assert.Contains(t, got, "sslmode=require")

	kept := withSSLMode("postgres://user:pw@localhost:5432/postgres?sslmode=disable")
	assert.Contains(t, kept, "sslmode=disable")
	assert.NotContains(t, kept, "sslmode=require")
}
