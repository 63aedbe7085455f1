package utils

import (
	"context"
	"crypto/sha256"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/SongYerim/todak-BE-refactoring/config"
	"github.com/SongYerim/todak-BE-refactoring/internal/infra/cache"

	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// RedisClient backs the logout blacklist. May be nil when redis is down;
// blacklisting then degrades to a no-op.
var RedisClient *cache.RedisCache

func GenerateToken(cfg *config.Config, userID uint, username string) (string, error) {
	// Unique id so individual tokens can be blacklisted on logout.
	jti := time.Now().UnixNano() + rand.Int63()

	claims := jwt.MapClaims{
		"user_id":  strconv.FormatUint(uint64(userID), 10),
		"username": username,
		"jti":      jti,
		"exp":      time.Now().Add(cfg.JWTExpirationTime).Unix(),
		"iat":      time.Now().Unix(),
		"iss":      cfg.JWTIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecretKey))
}

// IsTokenBlacklisted checks the logout blacklist. The token is parsed
// without signature verification here; the middleware validates it
// separately.
func IsTokenBlacklisted(tokenString string) (bool, error) {
	if RedisClient == nil {
		return false, nil
	}

	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return false, nil
	}

	claims := jwt.MapClaims{}
	_, _, _ = jwt.NewParser().ParseUnverified(tokenString, claims)

	var jtiStr string
	if jti, ok := claims["jti"].(string); ok {
		jtiStr = jti
	} else if jti, ok := claims["jti"].(float64); ok {
		jtiStr = strconv.FormatInt(int64(jti), 10)
	} else {
		return false, nil
	}

	key := "blacklist:" + jtiStr
	_, err := RedisClient.Get(context.Background(), key)

	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis error checking blacklist: %w", err)
	}
	return true, nil
}

func AddTokenToBlacklist(tokenString string, expiration time.Duration) error {
	if RedisClient == nil {
		return nil
	}

	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(tokenString, claims)
	if err != nil {
		return fmt.Errorf("failed to parse token: %w", err)
	}

	if jti, ok := claims["jti"].(float64); ok {
		key := "blacklist:" + strconv.FormatInt(int64(jti), 10)
		return RedisClient.Set(context.Background(), key, "1", expiration)
	}
	return nil
}

func ValidateToken(cfg *config.Config, tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.JWTSecretKey), nil
	})
}

func ExtractClaims(token *jwt.Token) (jwt.MapClaims, error) {
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// GetTokenHash returns a short fingerprint safe to log.
func GetTokenHash(token string) string {
	if token == "" {
		return "empty"
	}
	hash := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", hash[:8])
}
