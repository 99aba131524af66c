package services

import (
	"errors"
	"testing"
	"time"

	"page_builder/core/common"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
)

func newAuthServiceForTest(secret string, ttl time.Duration) *TenantAccountService {
	return &TenantAccountService{jwtSecret: []byte(secret), tokenTTL: ttl}
}

func TestSignVaVerifyToken(t *testing.T) {
	s := newAuthServiceForTest("test-secret", time.Hour)

	token, err := s.signToken("507f1f77bcf86cd799439011")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := s.VerifyToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", claims.AccountID)
	assert.Greater(t, claims.ExpiresAt, time.Now().Unix())
}

func TestVerifyToken_SaiSecret(t *testing.T) {
	s := newAuthServiceForTest("secret-a", time.Hour)
	token, err := s.signToken("507f1f77bcf86cd799439011")
	assert.NoError(t, err)

	other := newAuthServiceForTest("secret-b", time.Hour)
	_, err = other.VerifyToken(token)
	assert.True(t, errors.Is(err, common.ErrTokenInvalid), "Token ký sai secret phải bị từ chối")
}

func TestVerifyToken_HetHan(t *testing.T) {
	s := newAuthServiceForTest("test-secret", -time.Minute)
	token, err := s.signToken("507f1f77bcf86cd799439011")
	assert.NoError(t, err)

	_, err = s.VerifyToken(token)
	assert.True(t, errors.Is(err, common.ErrTokenExpired), "Token hết hạn phải trả ErrTokenExpired")
}

func TestVerifyToken_ChuoiRac(t *testing.T) {
	s := newAuthServiceForTest("test-secret", time.Hour)
	_, err := s.VerifyToken("khong.phai.jwt")
	assert.True(t, errors.Is(err, common.ErrTokenInvalid))
}

func TestVerifyToken_TuChoiPhuongThucKyKhac(t *testing.T) {
	// Token ký alg=none không được chấp nhận dù payload hợp lệ
	s := newAuthServiceForTest("test-secret", time.Hour)

	claims := TokenClaims{
		AccountID: "507f1f77bcf86cd799439011",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)

	_, err = s.VerifyToken(tokenString)
	assert.True(t, errors.Is(err, common.ErrTokenInvalid))
}
