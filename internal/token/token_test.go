package token

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKeyPair(t *testing.T) (privPEM, pubPEM []byte) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	privPEM = pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})

	pubDER, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	pubPEM = pem.EncodeToMemory(&pem.Block{
		Type:  "PUBLIC KEY",
		Bytes: pubDER,
	})

	return privPEM, pubPEM
}

func TestIssueVerifyRoundTrip(t *testing.T) {
	privPEM, pubPEM := generateKeyPair(t)
	svc, err := New(privPEM, pubPEM, time.Hour)
	require.NoError(t, err)

	subject := uuid.New()
	tokenStr, err := svc.Issue(subject)
	require.NoError(t, err)

	claims, err := svc.Verify(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, subject, claims.Subject)
	assert.NotEmpty(t, claims.TokenID)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.Expiry, time.Minute)
}

func TestUniqueTokenIDs(t *testing.T) {
	privPEM, pubPEM := generateKeyPair(t)
	svc, err := New(privPEM, pubPEM, time.Hour)
	require.NoError(t, err)

	subject := uuid.New()
	first, err := svc.Issue(subject)
	require.NoError(t, err)
	second, err := svc.Issue(subject)
	require.NoError(t, err)

	firstClaims, err := svc.Verify(first)
	require.NoError(t, err)
	secondClaims, err := svc.Verify(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.TokenID, secondClaims.TokenID)
}

func TestVerifyExpired(t *testing.T) {
	privPEM, pubPEM := generateKeyPair(t)
	svc, err := New(privPEM, pubPEM, -time.Minute)
	require.NoError(t, err)

	tokenStr, err := svc.Issue(uuid.New())
	require.NoError(t, err)

	_, err = svc.Verify(tokenStr)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongKey(t *testing.T) {
	privPEM, pubPEM := generateKeyPair(t)
	otherPrivPEM, _ := generateKeyPair(t)

	signer, err := New(otherPrivPEM, pubPEM, time.Hour)
	require.NoError(t, err)
	verifier, err := New(privPEM, pubPEM, time.Hour)
	require.NoError(t, err)

	tokenStr, err := signer.Issue(uuid.New())
	require.NoError(t, err)

	_, err = verifier.Verify(tokenStr)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRejectsWrongAlgorithm(t *testing.T) {
	privPEM, pubPEM := generateKeyPair(t)
	svc, err := New(privPEM, pubPEM, time.Hour)
	require.NoError(t, err)

	// HMAC-signed token, even with plausible claims, must not verify.
	claims := jwt.RegisteredClaims{
		Subject:   uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	hmacToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = svc.Verify(hmacToken)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyMalformed(t *testing.T) {
	privPEM, pubPEM := generateKeyPair(t)
	svc, err := New(privPEM, pubPEM, time.Hour)
	require.NoError(t, err)

	_, err = svc.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestNewRejectsBadKeys(t *testing.T) {
	_, err := New([]byte("garbage"), []byte("garbage"), time.Hour)
	assert.Error(t, err)
}
