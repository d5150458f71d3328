package animal

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitalcoban/coban/internal/domain/billing"
	"github.com/digitalcoban/coban/internal/shared/id"
)

func newTestAnimal(t *testing.T) *Animal {
	t.Helper()
	a, err := NewAnimal(1, "Sarikiz", billing.AnimalTypeLarge, "QR-0001")
	require.NoError(t, err)
	require.NotNil(t, a)
	return a
}

func TestNewAnimal(t *testing.T) {
	a := newTestAnimal(t)

	assert.Equal(t, uint(0), a.ID())
	assert.Equal(t, uint(1), a.UserID())
	assert.Equal(t, "Sarikiz", a.Name())
	assert.Equal(t, billing.AnimalTypeLarge, a.Type())
	assert.Equal(t, "QR-0001", a.QRCode())
	assert.Nil(t, a.AreaID())
	assert.True(t, strings.HasPrefix(a.SID(), id.PrefixAnimal+"_"))
	assert.False(t, a.CreatedAt().IsZero())
}

func TestNewAnimal_Validation(t *testing.T) {
	tests := []struct {
		name       string
		userID     uint
		animalName string
		animalType billing.AnimalType
		qrCode     string
	}{
		{"zero user ID", 0, "Sarikiz", billing.AnimalTypeLarge, "QR-0001"},
		{"empty name", 1, "", billing.AnimalTypeLarge, "QR-0001"},
		{"invalid type", 1, "Sarikiz", billing.AnimalType("camel"), "QR-0001"},
		{"empty QR code", 1, "Sarikiz", billing.AnimalTypeSmall, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAnimal(tt.userID, tt.animalName, tt.animalType, tt.qrCode)
			assert.Error(t, err)
			assert.Nil(t, a)
		})
	}
}

func TestReconstructAnimal(t *testing.T) {
	areaID := uint(7)
	now := time.Now().UTC()

	a, err := ReconstructAnimal(42, "anm_abc123", 1, "Karabas", billing.AnimalTypeSmall, "QR-0002", &areaID, now, now)
	require.NoError(t, err)
	assert.Equal(t, uint(42), a.ID())
	require.NotNil(t, a.AreaID())
	assert.Equal(t, areaID, *a.AreaID())

	_, err = ReconstructAnimal(0, "anm_abc123", 1, "Karabas", billing.AnimalTypeSmall, "QR-0002", nil, now, now)
	assert.Error(t, err)

	_, err = ReconstructAnimal(42, "anm_abc123", 0, "Karabas", billing.AnimalTypeSmall, "QR-0002", nil, now, now)
	assert.Error(t, err)
}

func TestAnimal_SetID(t *testing.T) {
	a := newTestAnimal(t)

	require.NoError(t, a.SetID(10))
	assert.Equal(t, uint(10), a.ID())

	assert.Error(t, a.SetID(11), "ID must not be reassignable")
	assert.Error(t, newTestAnimal(t).SetID(0))
}

func TestAnimal_Rename(t *testing.T) {
	a := newTestAnimal(t)

	require.NoError(t, a.Rename("Pamuk"))
	assert.Equal(t, "Pamuk", a.Name())

	assert.Error(t, a.Rename(""))
	assert.Equal(t, "Pamuk", a.Name())
}

func TestAnimal_AreaAssignment(t *testing.T) {
	a := newTestAnimal(t)

	require.NoError(t, a.AssignArea(3))
	require.NotNil(t, a.AreaID())
	assert.Equal(t, uint(3), *a.AreaID())

	assert.Error(t, a.AssignArea(0))

	a.ClearArea()
	assert.Nil(t, a.AreaID())
}
