package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-user-lists/internal/logger"
	"github.com/MKhiriev/go-user-lists/models"
)

// IDGenerator produces identifiers for new records.
type IDGenerator interface {
	Generate() string
}

// userRepository is the database/sql implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
type userRepository struct {
	db     *DB
	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by db. New users get
// their id from ids.
func NewUserRepository(db *DB, ids IDGenerator, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		ids:    ids,
		now:    time.Now,
		logger: logger,
	}
}

// CreateUser assigns UserID and CreatedAt and inserts the record.
//
// Error handling:
//   - unique violation on username → [ErrUsernameAlreadyExists].
//   - timeout / connection loss → [ErrStoreTimeout] / [ErrStoreUnavailable].
//   - anything else → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.UserID = r.ids.Generate()
	user.CreatedAt = r.now().UTC().Truncate(time.Microsecond)

	query, args, err := r.db.insertUserQuery(user).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.isUniqueViolation(err) {
			log.Debug().Str("username", user.Username).Msg("username is already taken")
			return models.User{}, ErrUsernameAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		if mapped := r.db.mapError(ctx, err); mapped != err {
			return models.User{}, mapped
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	return r.findUser(ctx, "username", username)
}

func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	return r.findUser(ctx, "user_id", userID)
}

func (r *userRepository) findUser(ctx context.Context, column, value string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectUserQuery(map[string]any{column: value}).ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var user models.User
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&user.UserID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUser").Str("by", column).Msg("error selecting user")
		if mapped := r.db.mapError(ctx, err); mapped != err {
			return models.User{}, mapped
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}
