package mapping

import (
	"testing"

	"listing-service/internal/core/domain"

	"github.com/stretchr/testify/require"
)

func TestTable_CoversEveryKind(t *testing.T) {
	for _, kind := range domain.AllKinds {
		m, ok := For(kind)
		require.True(t, ok, "kind %q has no mapping", kind)
		require.NotEmpty(t, m.IDField, "kind %q has no id field", kind)
		require.NotEmpty(t, m.LocationRefField, "kind %q has no location ref field", kind)
		require.LessOrEqual(t, len(m.MediaSlots), domain.MaxMediaSlots)
	}
}

func TestTable_LandFamilyNeedsNoUsageField(t *testing.T) {
	for kind, m := range Table {
		if m.LandFamily {
			require.Empty(t, m.UsageField, "land kind %q must not derive type from usage", kind)
		} else {
			require.NotEmpty(t, m.UsageField, "non-land kind %q must carry a usage field", kind)
		}
	}
}

func TestFor_UnknownKind(t *testing.T) {
	_, ok := For(domain.Kind("warehouse"))
	require.False(t, ok)
}
