package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextKind(t *testing.T) {
	now := time.Now()

	t.Run("no record yet yields entry", func(t *testing.T) {
		assert.Equal(t, KindEntry, NextKind(nil))
	})

	t.Run("day ending on exit yields entry", func(t *testing.T) {
		last := &Record{Kind: KindExit, RecordedAt: now}
		assert.Equal(t, KindEntry, NextKind(last))
	})

	t.Run("day ending on entry yields exit", func(t *testing.T) {
		last := &Record{Kind: KindEntry, RecordedAt: now}
		assert.Equal(t, KindExit, NextKind(last))
	})
}

func TestKindLabel(t *testing.T) {
	assert.Equal(t, "Entry", KindLabel(KindEntry))
	assert.Equal(t, "Exit", KindLabel(KindExit))
	assert.Equal(t, "unknown", KindLabel(Kind("unknown")))
}

func TestMethodLabel(t *testing.T) {
	assert.Equal(t, "Mobile QR scan", MethodLabel(MethodQRMobile))
	assert.Equal(t, "Manual entry by security", MethodLabel(MethodManualSecurity))
	assert.Equal(t, "Web admin", MethodLabel(MethodWebAdmin))
}
