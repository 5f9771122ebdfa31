package employee

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFullName(t *testing.T) {
	e := Employee{FirstNames: "Juan Carlos", LastNames: "Quispe Mamani"}
	assert.Equal(t, "Juan Carlos Quispe Mamani", e.FullName())
}

func TestWorksOn(t *testing.T) {
	e := Employee{RestDay: RestSunday}

	monday := time.Date(2025, 7, 28, 0, 0, 0, 0, time.Local)
	sunday := time.Date(2025, 7, 27, 0, 0, 0, 0, time.Local)

	assert.True(t, e.WorksOn(monday))
	assert.False(t, e.WorksOn(sunday))
}
