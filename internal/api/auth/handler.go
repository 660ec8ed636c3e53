package auth

import (
	"net/http"
	"time"

	"portfolio-app/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 24 * time.Hour

// Login gates the editing UI behind a single shared password. The public
// content endpoints stay open; the token only unlocks the backoffice views.
func Login(c *gin.Context) {
	var input struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(config.ADMIN_PASSWORD_HASH), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.JWT_SECRET))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sign token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": signed})
}

// Verify answers whether the presented token is still good; the middleware in
// front of it has already done the checking.
func Verify(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
