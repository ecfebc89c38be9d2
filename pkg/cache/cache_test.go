package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetESet(t *testing.T) {
	service := NewService(time.Minute)

	_, found := service.Get("resumo")
	assert.False(t, found)

	service.Set("resumo", 42)

	value, found := service.Get("resumo")
	assert.True(t, found)
	assert.Equal(t, 42, value)
}

func TestExpiracao(t *testing.T) {
	service := NewService(20 * time.Millisecond)

	service.Set("resumo", "valor")

	time.Sleep(50 * time.Millisecond)

	_, found := service.Get("resumo")
	assert.False(t, found)
}

func TestFlush(t *testing.T) {
	service := NewService(time.Minute)

	service.Set("a", 1)
	service.Set("b", 2)

	service.Flush()

	_, found := service.Get("a")
	assert.False(t, found)
}

func TestPeriodKey(t *testing.T) {
	assert.Equal(t, "summary_2025_2", PeriodKey("summary", 2025, "2"))
	assert.Equal(t, "drivers_2024_4", PeriodKey("drivers", 2024, "4"))
}

func TestTopicKey(t *testing.T) {
	assert.Equal(t, "trend", TopicKey("trend"))
}
