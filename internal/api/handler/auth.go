package handler

import (
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"swipenight/backend/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	jwt "github.com/golang-jwt/jwt/v5"
)

func jwtSecret() []byte {
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		return []byte(secret)
	}
	return []byte("YOUR_ULTRA_SECRET_KEY_HERE")
}

// generateJWT генерує JWT з ідентифікатором користувача
func generateJWT(userID string) (string, error) {
	// Встановлюємо claims, включаючи user_id та термін дії
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(config.TokenTTL).Unix(),
		"iss":     config.TokenIssuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// validateAndGetUserID перевіряє підпис токена та повертає user_id з claims.
func validateAndGetUserID(tokenString string) (string, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !parsed.Valid {
		return "", errors.New("invalid token")
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	userID, _ := claims["user_id"].(string)
	if userID == "" {
		return "", errors.New("token has no user id")
	}
	return userID, nil
}

// GetAnonID створює анонімний ідентифікатор та повертає JWT
func (h *Handler) GetAnonID(c *gin.Context) {
	userUUID, _ := uuid.NewRandom()
	userID := userUUID.String()

	token, err := generateJWT(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "TOKEN_CREATE_FAILED"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user_id": userID})
}

// RequireAuth — middleware: перевіряє Bearer-токен і кладе user_id у контекст.
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := bearerUserID(c)
		if err != nil {
			code := "INVALID_AUTH"
			if errors.Is(err, errMissingAuth) {
				code = "MISSING_AUTH"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": code})
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}

var errMissingAuth = errors.New("missing authorization header")

// bearerUserID дістає та валідує токен із заголовка Authorization.
func bearerUserID(c *gin.Context) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", errMissingAuth
	}
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if tokenString == "" {
		return "", errMissingAuth
	}
	return validateAndGetUserID(tokenString)
}
