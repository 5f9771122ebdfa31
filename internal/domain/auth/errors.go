package auth

import "errors"

var (
	ErrInvalidCredentials  = errors.New("unable to log in with the provided credentials")
	ErrInvalidToken        = errors.New("invalid or missing token")
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenRevoked = errors.New("refresh token revoked")
	ErrWrongTokenType      = errors.New("wrong token type")
)
