package shared

import (
	"time"

	"github.com/google/uuid"
)

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() uuid.UUID
	GetCreatedAt() time.Time
}

// BaseEntity provides common fields for all entities
type BaseEntity struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() uuid.UUID {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// NewBaseEntity creates a new base entity with generated ID
func NewBaseEntity() BaseEntity {
	now := time.Now()
	return BaseEntity{
		ID:        uuid.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// UserOwnedEntity extends BaseEntity with per-user ownership.
// Every user-owned row belongs to exactly one user and is never
// visible to another user.
type UserOwnedEntity struct {
	BaseEntity
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// NewUserOwnedEntity creates a new entity owned by the given user
func NewUserOwnedEntity(userID uuid.UUID) UserOwnedEntity {
	return UserOwnedEntity{
		BaseEntity: NewBaseEntity(),
		UserID:     userID,
	}
}

// GetUserID returns the owning user ID
func (e *UserOwnedEntity) GetUserID() uuid.UUID {
	return e.UserID
}
