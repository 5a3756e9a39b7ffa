package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResetCode_IsExpired(t *testing.T) {
	now := time.Now()
	code := ResetPasswordCodeModel{CreatedAt: now}

	assert.False(t, code.IsExpired(now))
	assert.False(t, code.IsExpired(now.Add(ResetCodeTTL-time.Second)))
	assert.True(t, code.IsExpired(now.Add(ResetCodeTTL+time.Second)))
}
