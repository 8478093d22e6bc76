package repositories

import (
	"context"

	"github.com/google/uuid"
	"growcore.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *entities.User) error
}

// UserProfileRepository defines profile data operations. Save performs an
// insert-or-update so the completion flag is persisted in the same unit of
// work that mutated the fields it derives from.
type UserProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.UserProfile, error)
	Save(ctx context.Context, profile *entities.UserProfile) error
}
