// Package permissions holds the per-object ownership predicates consulted
// before any detail read or mutation.
package permissions

import (
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-hydroponics/internal/models"
)

// Authorizer decides whether subject owns obj.
type Authorizer[T any] interface {
	IsOwner(subject uuid.UUID, obj T) bool
}

// SystemOwner grants access to the user who owns the system.
type SystemOwner struct{}

// IsOwner reports obj.owner == subject.
func (SystemOwner) IsOwner(subject uuid.UUID, obj *models.SystemDB) bool {
	return obj != nil && subject != uuid.Nil && obj.OwnerID == subject
}

// MeasurementOwner grants access to the owner of the measurement's system.
type MeasurementOwner struct{}

// IsOwner reports obj.system.owner == subject.
func (MeasurementOwner) IsOwner(subject uuid.UUID, obj *models.MeasurementDB) bool {
	return obj != nil && subject != uuid.Nil && obj.SystemOwnerID == subject
}

var (
	_ Authorizer[*models.SystemDB]      = SystemOwner{}
	_ Authorizer[*models.MeasurementDB] = MeasurementOwner{}
)
