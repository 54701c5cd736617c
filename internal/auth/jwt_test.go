package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/food-reels/domain"
)

func TestIssueAndVerify(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	p := domain.Principal{ID: "u-1", Kind: domain.PrincipalPartner}

	token, err := m.Issue(p)
	require.NoError(t, err)

	got, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestIssueRejectsEmptyPrincipal(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)

	_, err := m.Issue(domain.Principal{Kind: domain.PrincipalUser})
	assert.ErrorIs(t, err, domain.ErrBadParamInput)

	_, err = m.Issue(domain.Principal{ID: "u-1", Kind: "admin"})
	assert.ErrorIs(t, err, domain.ErrBadParamInput)
}

func TestVerifyFailures(t *testing.T) {
	m := NewJWTManager("secret", time.Hour)
	token, err := m.Issue(domain.Principal{ID: "u-1", Kind: domain.PrincipalUser})
	require.NoError(t, err)

	t.Run("empty", func(t *testing.T) {
		_, err := m.Verify("")
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Verify("not-a-token")
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("other secret", func(t *testing.T) {
		_, err := NewJWTManager("other", time.Hour).Verify(token)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("expired", func(t *testing.T) {
		late := NewJWTManager("secret", time.Hour)
		late.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := late.Verify(token)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})

	t.Run("unsigned", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{
			Kind:             domain.PrincipalUser,
			RegisteredClaims: jwt.RegisteredClaims{Subject: "u-1", Issuer: issuer},
		})
		unsigned, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = m.Verify(unsigned)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
}
