package holiday

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppliesTo(t *testing.T) {
	t.Run("global applies to every company", func(t *testing.T) {
		h := Holiday{Global: true, Active: true}
		assert.True(t, h.AppliesTo("any-company"))
	})

	t.Run("scoped applies only to linked companies", func(t *testing.T) {
		h := Holiday{Active: true, CompanyIDs: []string{"c1", "c2"}}
		assert.True(t, h.AppliesTo("c1"))
		assert.False(t, h.AppliesTo("c3"))
	})

	t.Run("inactive never applies", func(t *testing.T) {
		h := Holiday{Global: true, Active: false}
		assert.False(t, h.AppliesTo("c1"))
	})
}

func TestKindLabel(t *testing.T) {
	assert.Equal(t, "National holiday", KindLabel(KindNational))
	assert.Equal(t, "Company day", KindLabel(KindCompany))
	assert.Equal(t, "other", KindLabel(Kind("other")))
}
