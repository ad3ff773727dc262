package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"

	"github.com/festpass/festpass/internal/domain"
	"github.com/festpass/festpass/internal/telemetry"
)

var userFields = []string{
	"id",
	"name",
	"email",
	"phone",
	"credits",
	"created_at",
}

// UserRepository is a PostgreSQL implementation of domain.UserRepository.
type UserRepository struct {
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(br squirrel.BaseRunner) UserRepository {
	return UserRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// GetUser retrieves a user by ID.
func (r UserRepository) GetUser(ctx context.Context, id uuid.UUID) (domain.User, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var user domain.User
	err := r.sb.
		Select(userFields...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		QueryRowContext(spanCtx).
		Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Phone,
			&user.Credits,
			&user.CreatedAt,
		)
	if telemetry.RecordErrorAndStatus(span, err) {
		if err == sql.ErrNoRows {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, err
	}

	return user, true, nil
}

// FindUserByPhone retrieves a user by phone number.
func (r UserRepository) FindUserByPhone(ctx context.Context, phone string) (domain.User, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var user domain.User
	err := r.sb.
		Select(userFields...).
		From("users").
		Where(squirrel.Eq{"phone": phone}).
		Limit(1).
		QueryRowContext(spanCtx).
		Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Phone,
			&user.Credits,
			&user.CreatedAt,
		)
	if telemetry.RecordErrorAndStatus(span, err) {
		if err == sql.ErrNoRows {
			return domain.User{}, false, nil
		}
		return domain.User{}, false, err
	}

	return user, true, nil
}

// InitUserRepository is a Symbiont initializer for UserRepository.
type InitUserRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the UserRepository in the dependency container.
func (i InitUserRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.UserRepository](NewUserRepository(i.DB))
	return ctx, nil
}
