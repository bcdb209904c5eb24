package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"blog-api/internal/domain"
)

func TestPasswordHasher_HashAndCompare(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	ok, err := h.Compare(hash, "s3cret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Compare(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHasher_SaltsEachHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	first, err := h.Hash("same")
	require.NoError(t, err)
	second, err := h.Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestPasswordHasher_CompareMalformedHash(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	ok, err := h.Compare("not-a-hash", "whatever")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestPasswordHasher_DefaultCost(t *testing.T) {
	h := NewPasswordHasher(0)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
	h.CompareDummy("anything")
}

type fixedClock struct{ t time.Time }

func (c *fixedClock) Now() time.Time { return c.t }

func newTestTokens(t *testing.T, clock *fixedClock) *TokenService {
	t.Helper()
	svc, err := NewTokenService("test-secret", WithClock(clock.Now))
	require.NoError(t, err)
	return svc
}

func TestNewTokenService_RequiresSecret(t *testing.T) {
	_, err := NewTokenService("")
	assert.Error(t, err)
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	clock := &fixedClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	svc := newTestTokens(t, clock)

	token, err := svc.Issue("user-1", "alice")
	require.NoError(t, err)
	assert.Len(t, strings.Split(token, "."), 3)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, clock.t.Add(time.Hour), claims.ExpiresAt.Time.UTC())
}

func TestTokenService_ExpiryBoundary(t *testing.T) {
	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := &fixedClock{t: issued}
	svc := newTestTokens(t, clock)

	token, err := svc.Issue("user-1", "alice")
	require.NoError(t, err)

	tests := []struct {
		name    string
		at      time.Time
		wantErr bool
	}{
		{name: "just issued", at: issued},
		{name: "one second before expiry", at: issued.Add(time.Hour - time.Second)},
		{name: "exactly at expiry", at: issued.Add(time.Hour), wantErr: true},
		{name: "after expiry", at: issued.Add(2 * time.Hour), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock.t = tt.at
			_, err := svc.Verify(token)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrUnauthorized)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTokenService_WholeSecondTimestamps(t *testing.T) {
	issued := time.Date(2024, 5, 1, 12, 0, 0, 900_000_000, time.UTC)
	clock := &fixedClock{t: issued}
	svc := newTestTokens(t, clock)

	token, err := svc.Issue("user-1", "alice")
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	floor := issued.Truncate(time.Second)
	assert.True(t, floor.Equal(claims.IssuedAt.Time))
	assert.True(t, floor.Add(time.Hour).Equal(claims.ExpiresAt.Time))

	// the fraction is lost, so the token dies at the floored second
	clock.t = floor.Add(time.Hour - time.Millisecond)
	_, err = svc.Verify(token)
	assert.NoError(t, err)

	clock.t = floor.Add(time.Hour)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenService_RejectsTampering(t *testing.T) {
	clock := &fixedClock{t: time.Now()}
	svc := newTestTokens(t, clock)

	token, err := svc.Issue("user-1", "alice")
	require.NoError(t, err)

	other, err := NewTokenService("another-secret", WithClock(clock.Now))
	require.NoError(t, err)
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	parts := strings.Split(token, ".")
	forgedPayload, err := svc.Issue("user-2", "mallory")
	require.NoError(t, err)
	forged := parts[0] + "." + strings.Split(forgedPayload, ".")[1] + "." + parts[2]
	_, err = svc.Verify(forged)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenService_RejectsMalformed(t *testing.T) {
	svc := newTestTokens(t, &fixedClock{t: time.Now()})

	for _, token := range []string{"", "abc", "a.b.c", "Bearer x"} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, domain.ErrUnauthorized, token)
	}
}

func TestTokenService_RejectsOtherAlgorithms(t *testing.T) {
	clock := &fixedClock{t: time.Now()}
	svc := newTestTokens(t, clock)

	claims := Claims{
		UserID: "user-1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(clock.t.Add(time.Hour)),
		},
	}
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.Verify(unsigned)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestTokenService_RequiresExpiryAndUser(t *testing.T) {
	clock := &fixedClock{t: time.Now()}
	svc := newTestTokens(t, clock)

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: "user-1"}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = svc.Verify(noExp)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	noUser, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(clock.t.Add(time.Hour))},
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	_, err = svc.Verify(noUser)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestWithTTL(t *testing.T) {
	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := &fixedClock{t: issued}
	svc, err := NewTokenService("test-secret", WithClock(clock.Now), WithTTL(time.Minute))
	require.NoError(t, err)

	token, err := svc.Issue("user-1", "alice")
	require.NoError(t, err)

	clock.t = issued.Add(time.Minute)
	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
