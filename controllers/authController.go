package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/dripitout/dripitout-api/middlewares"
	"github.com/dripitout/dripitout-api/models"
	"github.com/dripitout/dripitout-api/storage"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// Default cost for bcrypt password hashing
	bcryptCost = 10

	// Session lifetime for the auth cookie
	sessionDuration = 24 * time.Hour

	// Standard response messages
	msgInvalidInput          = "invalid input"
	msgUsernameExists        = "Username already exists"
	msgEmailExists           = "Email already exists"
	msgFailedToHashPassword  = "failed to hash password"
	msgInvalidCredentials    = "invalid username or password"
	msgFailedToGenerateToken = "failed to generate token"
	msgInternalServerError   = "Internal server error"
	msgProfileUpdateFailed   = "Profile update failed"
	msgRegistrationFailed    = "Registration failed"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func comparePasswords(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

func generateJWT(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"username": user.Username,
		"role":     user.Role,
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(sessionDuration).Unix(),
	})

	jwtSecret := os.Getenv("JWT_SECRET")
	return token.SignedString([]byte(jwtSecret))
}

func setSessionCookie(ctx *gin.Context, token string) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middlewares.SessionCookie, token, int(sessionDuration.Seconds()), "/", "", false, true)
}

func clearSessionCookie(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(middlewares.SessionCookie, "", -1, "/", "", false, true)
}

// beginSession mints a token for the user and attaches it as the session
// cookie.
func beginSession(ctx *gin.Context, user *models.User) error {
	token, err := generateJWT(user)
	if err != nil {
		return err
	}
	setSessionCookie(ctx, token)
	return nil
}

// Register creates an account and logs the new user straight in.
func Register(store storage.Storage) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var signUpData models.SignupData
		if err := ctx.ShouldBindJSON(&signUpData); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		if _, err := store.GetUserByUsername(signUpData.Username); err == nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgUsernameExists)
			return
		} else if !errors.Is(err, storage.ErrNotFound) {
			log.Println("Database error during username check:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		if _, err := store.GetUserByEmail(signUpData.Email); err == nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgEmailExists)
			return
		} else if !errors.Is(err, storage.ErrNotFound) {
			log.Println("Database error during email check:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgInternalServerError)
			return
		}

		hashedPassword, err := hashPassword(signUpData.Password)
		if err != nil {
			log.Println("Password hashing error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToHashPassword)
			return
		}

		user := models.User{
			Username: signUpData.Username,
			Password: hashedPassword,
			FullName: signUpData.FullName,
			Email:    signUpData.Email,
			Phone:    signUpData.Phone,
			Address:  signUpData.Address,
			Role:     "user",
		}

		if err := store.CreateUser(&user); err != nil {
			log.Println("User creation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgRegistrationFailed)
			return
		}

		if err := beginSession(ctx, &user); err != nil {
			log.Println("JWT generation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
			return
		}

		sendJSONResponse(ctx, http.StatusCreated, gin.H{"user": user})
	}
}

// Login authenticates username/password and starts a session.
func Login(store storage.Storage) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var loginData models.LoginData
		if err := ctx.ShouldBindJSON(&loginData); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		user, err := store.GetUserByUsername(loginData.Username)
		if err != nil {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}

		if err := comparePasswords(user.Password, loginData.Password); err != nil {
			sendErrorResponse(ctx, http.StatusUnauthorized, msgInvalidCredentials)
			return
		}

		if err := beginSession(ctx, user); err != nil {
			log.Println("JWT generation error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgFailedToGenerateToken)
			return
		}

		sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
	}
}

// Logout drops the session cookie.
func Logout() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		clearSessionCookie(ctx)
		sendJSONResponse(ctx, http.StatusOK, gin.H{"success": true})
	}
}

// CurrentUser reports the signed-in user, or {"user": null} when
// anonymous.
func CurrentUser(store storage.Storage) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID := ctx.GetInt("userId")
		if userID == 0 {
			sendJSONResponse(ctx, http.StatusOK, gin.H{"user": nil})
			return
		}

		user, err := store.GetUser(userID)
		if err != nil {
			sendJSONResponse(ctx, http.StatusOK, gin.H{"user": nil})
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
	}
}

// UpdateProfile edits the signed-in user's profile fields. Passwords are
// not updatable through this endpoint.
func UpdateProfile(store storage.Storage) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID := ctx.GetInt("userId")

		var update models.ProfileUpdate
		if err := ctx.ShouldBindJSON(&update); err != nil {
			sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
			return
		}

		user, err := store.UpdateUserProfile(userID, update)
		if err != nil {
			log.Println("Profile update error:", err)
			sendErrorResponse(ctx, http.StatusInternalServerError, msgProfileUpdateFailed)
			return
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{"user": user})
	}
}
