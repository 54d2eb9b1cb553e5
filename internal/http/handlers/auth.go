package handlers

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"medsales/internal/domain"
	"medsales/internal/http/middleware"
	"medsales/internal/repositories"
	"medsales/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

var (
	jwtMu     sync.RWMutex
	jwtSecret = []byte("super-secret-key-change-me")
)

// SetJWTSecret installs the signing secret from config at startup.
func SetJWTSecret(secret []byte) {
	jwtMu.Lock()
	defer jwtMu.Unlock()
	if len(secret) > 0 {
		jwtSecret = secret
	}
}

func signingSecret() []byte {
	jwtMu.RLock()
	defer jwtMu.RUnlock()
	return jwtSecret
}

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func issueToken(userID int64, username, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(signingSecret())
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var payload loginPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	username := strings.TrimSpace(payload.Username)
	if username == "" || payload.Password == "" {
		respondFail(c, http.StatusBadRequest, "username and password are required")
		return
	}

	repo := repositories.UserRepository{}
	user, err := repo.GetByUsername(username)
	if err != nil {
		if domain.IsNotFound(err) {
			respondFail(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		RespondDomainError(c, err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)) != nil {
		respondFail(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	token, err := issueToken(user.ID, user.Username, user.Role)
	if err != nil {
		RespondDomainError(c, domain.StoreError{Op: "auth", Err: err})
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "user="+user.Username)
	RespondOK(c, http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
			"role":     user.Role,
		},
	})
}

// POST /api/auth/verify
func VerifyToken(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		respondFail(c, http.StatusUnauthorized, "invalid or expired token")
		return
	}
	RespondOK(c, http.StatusOK, gin.H{
		"valid":    true,
		"username": claims["username"],
		"role":     claims["role"],
	})
}

// POST /api/auth/refresh — reissues a token for the already-verified caller.
func RefreshToken(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		respondFail(c, http.StatusUnauthorized, "invalid or expired token")
		return
	}

	userID := int64(0)
	if v, ok := claims["user_id"].(float64); ok {
		userID = int64(v)
	}
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	token, err := issueToken(userID, username, role)
	if err != nil {
		RespondDomainError(c, domain.StoreError{Op: "auth", Err: err})
		return
	}
	RespondOK(c, http.StatusOK, gin.H{"token": token})
}
