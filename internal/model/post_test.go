package model

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestPost_UpdatedAtIsNotAutoTracked(t *testing.T) {
	// updated_at must stay null until an explicit update writes it;
	// gorm's UpdatedAt convention would stamp it on Create.
	s, err := schema.Parse(&Post{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	field := s.LookUpField("updated_at")
	require.NotNil(t, field)

	assert.Zero(t, field.AutoUpdateTime)
	assert.Zero(t, field.AutoCreateTime)
}
