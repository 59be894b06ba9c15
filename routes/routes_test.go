package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCorsOriginsDefault(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "")
	assert.Equal(t, defaultOrigins, parseCorsOrigins())
}

func TestParseCorsOriginsFromEnv(t *testing.T) {
	t.Setenv("CORS_ORIGINS", " https://desk.example.com , https://ops.example.com ")
	assert.Equal(t,
		[]string{"https://desk.example.com", "https://ops.example.com"},
		parseCorsOrigins())
}

func TestParseCorsOriginsBlankEntries(t *testing.T) {
	t.Setenv("CORS_ORIGINS", " , ,")
	assert.Equal(t, defaultOrigins, parseCorsOrigins())
}
