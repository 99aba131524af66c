package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"page_builder/core/api/dto"
	models "page_builder/core/api/models/mongodb"
	"page_builder/core/common"
	"page_builder/core/global"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"
)

// TokenClaims là claims trong JWT cấp cho tài khoản tenant
type TokenClaims struct {
	AccountID string `json:"accountId"` // ID tài khoản
	jwt.StandardClaims
}

// TenantAccountService xử lý đăng ký, đăng nhập và xác thực token.
// TenantToken scope dữ liệu được cấp một lần khi đăng ký và giữ nguyên
// qua các lần đăng nhập; JWT chỉ dùng làm credential.
type TenantAccountService struct {
	*BaseServiceMongo[models.TenantAccount]
	jwtSecret []byte
	tokenTTL  time.Duration
}

// NewTenantAccountService tạo service trên collection tenant_accounts đã đăng ký
func NewTenantAccountService(jwtSecret string) (*TenantAccountService, error) {
	col := global.GetCollection(global.MongoDB_ColNames.TenantAccounts)
	if col == nil {
		return nil, fmt.Errorf("collection %s chưa được khởi tạo", global.MongoDB_ColNames.TenantAccounts)
	}
	return &TenantAccountService{
		BaseServiceMongo: NewBaseServiceMongo[models.TenantAccount](col),
		jwtSecret:        []byte(jwtSecret),
		tokenTTL:         30 * 24 * time.Hour,
	}, nil
}

// signToken tạo JWT cho một tài khoản
func (s *TenantAccountService) signToken(accountID string) (string, error) {
	claims := TokenClaims{
		AccountID: accountID,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(s.tokenTTL).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", common.NewError(common.ErrCodeAuthToken, common.MsgInternalError, common.StatusInternalServerError, err)
	}
	return signed, nil
}

// VerifyToken kiểm tra chữ ký và hạn của JWT, trả về claims nếu hợp lệ.
// Token luôn được verify phía server, không tin scope do client tự khai.
func (s *TenantAccountService) VerifyToken(tokenString string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("phương thức ký không hợp lệ: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}

// Register tạo tài khoản tenant mới và cấp token đăng nhập
func (s *TenantAccountService) Register(ctx context.Context, input *dto.RegisterInput) (*dto.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := s.DocumentExists(ctx, bson.M{"email": email})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeAuth, common.MsgInternalError, common.StatusInternalServerError, err)
	}

	account := models.TenantAccount{
		Email:        email,
		PasswordHash: string(hash),
		Name:         input.Name,
		TenantToken:  uuid.NewString(),
	}

	created, err := s.InsertOne(ctx, account)
	if err != nil {
		if errors.Is(err, common.ErrDuplicate) {
			return nil, common.ErrEmailExists
		}
		return nil, err
	}

	return s.issueToken(ctx, &created)
}

// Login xác thực email và mật khẩu rồi cấp token mới
func (s *TenantAccountService) Login(ctx context.Context, input *dto.LoginInput) (*dto.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	account, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		// Không tiết lộ email có tồn tại hay không
		return nil, common.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(input.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	return s.issueToken(ctx, &account)
}

// issueToken ký JWT mới và lưu lại trên tài khoản làm credential hiện hành.
// TenantToken không đổi: đăng nhập lại không làm dữ liệu đã ghi lệch scope.
func (s *TenantAccountService) issueToken(ctx context.Context, account *models.TenantAccount) (*dto.AuthOutput, error) {
	token, err := s.signToken(account.ID.Hex())
	if err != nil {
		return nil, err
	}

	if _, err := s.UpdateById(ctx, account.ID, &UpdateData{
		Set: map[string]interface{}{"token": token},
	}); err != nil {
		return nil, err
	}

	return &dto.AuthOutput{
		ID:          account.ID.Hex(),
		Name:        account.Name,
		Email:       account.Email,
		Token:       token,
		TenantToken: account.TenantToken,
	}, nil
}

// FindByToken tra tài khoản theo JWT đăng nhập hiện hành
func (s *TenantAccountService) FindByToken(ctx context.Context, token string) (models.TenantAccount, error) {
	return s.FindOne(ctx, bson.M{"token": token}, nil)
}

// FindByTenantToken tra tài khoản theo định danh scope dữ liệu
func (s *TenantAccountService) FindByTenantToken(ctx context.Context, tenantToken string) (models.TenantAccount, error) {
	return s.FindOne(ctx, bson.M{"tenantToken": tenantToken}, nil)
}
