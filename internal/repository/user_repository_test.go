package repository_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog-api/internal/domain"
	"blog-api/internal/repository"
)

func TestPostgresUserRepository(t *testing.T) {
	testDB := SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresUserRepository(testDB.Pool)
	ctx := context.Background()

	newUser := func(email string) *domain.User {
		return &domain.User{
			ID:           uuid.New().String(),
			Email:        email,
			Username:     "alice",
			PasswordHash: "$2a$04$hash",
		}
	}

	t.Run("create and fetch by email", func(t *testing.T) {
		testDB.Reset(t)

		u := newUser("alice@example.com")
		require.NoError(t, repo.Create(ctx, u))
		assert.False(t, u.CreatedAt.IsZero())

		byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, u.ID, byEmail.ID)
		assert.Equal(t, "$2a$04$hash", byEmail.PasswordHash)
		assert.Equal(t, "alice", byEmail.Username)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		testDB.Reset(t)

		require.NoError(t, repo.Create(ctx, newUser("dup@example.com")))
		err := repo.Create(ctx, newUser("dup@example.com"))
		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
		assert.Equal(t, 1, testDB.CountRows(t, "users", ""))
	})

	t.Run("email match is case sensitive", func(t *testing.T) {
		testDB.Reset(t)

		require.NoError(t, repo.Create(ctx, newUser("Case@example.com")))
		got, err := repo.GetByEmail(ctx, "case@example.com")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("concurrent signups with one email produce one user", func(t *testing.T) {
		testDB.Reset(t)

		const n = 8
		var wg sync.WaitGroup
		errs := make([]error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs[i] = repo.Create(ctx, newUser("race@example.com"))
			}(i)
		}
		wg.Wait()

		ok := 0
		for _, err := range errs {
			if err == nil {
				ok++
				continue
			}
			assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
		}
		assert.Equal(t, 1, ok)
		assert.Equal(t, 1, testDB.CountRows(t, "users", ""))
	})

	t.Run("unknown email returns nil", func(t *testing.T) {
		got, err := repo.GetByEmail(ctx, "nobody@example.com")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}
