package utils

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// channelNamespace 频道 ID 的 UUIDv5 命名空间
var channelNamespace = uuid.MustParse("6f1c3b8e-2a4d-5e7f-9a0b-1c2d3e4f5a6b")

// IdentityClaims 身份提供方签发的 token 中我们关心的字段
type IdentityClaims struct {
	Email       string `json:"email"`
	Username    string `json:"preferred_username"`
	AccountType string `json:"account_type"`
	jwt.RegisteredClaims
}

// ParseIdentityToken 校验身份提供方签发的 HS256 token。issuer 为空时不校验签发方
func ParseIdentityToken(tokenString, secret, issuer string) (*IdentityClaims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &IdentityClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	}, opts...)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*IdentityClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ChannelIDForUser 由用户 ID 确定性派生频道 ID
func ChannelIDForUser(userID string) string {
	return uuid.NewSHA1(channelNamespace, []byte(userID)).String()
}
