package jwt

import (
	"testing"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/common/clock/mocks"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestManager_IssueAndParse(t *testing.T) {
	ctrl := gomock.NewController(t)
	clk := mocks.NewMockClock(ctrl)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	clk.EXPECT().Now().Return(now).AnyTimes()

	m, err := NewManager("test-secret", time.Hour, clk)
	require.NoError(t, err)

	token, expiresAt, err := m.Issue("op-1", "ops@example.com", "operator")
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "op-1", claims.Subject)
	assert.Equal(t, "ops@example.com", claims.Email)
	assert.Equal(t, "operator", claims.Role)
}

func TestManager_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	clk := mocks.NewMockClock(ctrl)
	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	gomock.InOrder(
		clk.EXPECT().Now().Return(issued),
		clk.EXPECT().Now().Return(issued.Add(2*time.Hour)).AnyTimes(),
	)

	m, err := NewManager("test-secret", time.Hour, clk)
	require.NoError(t, err)

	token, _, err := m.Issue("op-1", "ops@example.com", "operator")
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestManager_RejectsForeignTokens(t *testing.T) {
	m, err := NewManager("test-secret", time.Hour, nil)
	require.NoError(t, err)
	other, err := NewManager("other-secret", time.Hour, nil)
	require.NoError(t, err)

	token, _, err := other.Issue("op-1", "ops@example.com", "operator")
	require.NoError(t, err)
	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	unsigned := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, jwtlib.MapClaims{"sub": "op-1"})
	raw, err := unsigned.SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = m.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewManager_Validation(t *testing.T) {
	_, err := NewManager("", time.Hour, nil)
	assert.Error(t, err)
	_, err = NewManager("secret", 0, nil)
	assert.Error(t, err)
}
