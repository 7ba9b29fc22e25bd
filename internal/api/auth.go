package api

import (
	"net/http" // HTTP status codes
	"regexp"   // Regular expressions
	"strings"  // String manipulation

	"metronest/internal/domain" // Importing domain models
	"metronest/internal/store"  // Store backends
	"metronest/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
)

// Request struct for registration
type RegisterRequest struct {
	Name            string `json:"name" binding:"required"`            // Display name must be provided
	Email           string `json:"email" binding:"required"`           // Email must be provided
	Phone           string `json:"phone" binding:"required"`           // Phone must be provided
	Password        string `json:"password" binding:"required"`        // Password must be provided
	ConfirmPassword string `json:"confirmPassword" binding:"required"` // Confirmation must be provided
}

// Request struct for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`    // Email must be provided
	Password string `json:"password" binding:"required"` // Password must be provided
}

// Response struct for authentication
type AuthResponse struct {
	User  *domain.User `json:"user"`  // The authenticated user, password omitted
	Token string       `json:"token"` // JWT token
}

var emailRe = regexp.MustCompile(`^\S+@\S+\.\S+$`) // Loose email shape check

// isValidEmail checks the email shape
func isValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// isValidPhone checks the phone has 10-15 digits once punctuation is stripped
func isValidPhone(phone string) bool {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	return len(digits) >= 10 && len(digits) <= 15
}

// RegisterHandler creates a new user account
func RegisterHandler(sel *store.Selector, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate each field the way the store's schema does
		v := &domain.ValidationError{}
		if len(strings.TrimSpace(req.Name)) < 2 {
			v.Add("name", "Name must be at least 2 characters")
		}
		if !isValidEmail(req.Email) {
			v.Add("email", "Invalid email address")
		}
		if !isValidPhone(req.Phone) {
			v.Add("phone", "Phone number must be at least 10 digits")
		}
		if len(req.Password) < 6 {
			v.Add("password", "Password must be at least 6 characters")
		}
		if req.Password != req.ConfirmPassword {
			v.Add("confirmPassword", "Passwords don't match")
		}
		if err := v.Err(); err != nil {
			writeError(c, err)
			return
		}
		src := sel.Active(c.Request.Context()) // Pick the reachable store for this request
		email := strings.ToLower(strings.TrimSpace(req.Email))
		// Uniqueness check across email and phone
		if existing, err := src.UserByEmailOrPhone(c.Request.Context(), email, req.Phone); err == nil {
			field := "phone number" // Report which field collided
			if existing.Email == email {
				field = "email"
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "User with this " + field + " already exists"})
			return
		}
		// Hash the password and create the user
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user := &domain.User{
			Name:     strings.TrimSpace(req.Name), // Display name
			Email:    email,                       // Lowercased email
			Phone:    req.Phone,                   // Phone as given
			Password: string(hash),                // Bcrypt hash
			Verified: false,                       // New accounts start unverified
		}
		// Attempt to create the user in the active store
		if err := src.CreateUser(c.Request.Context(), user); err != nil {
			// Unique index race: someone registered the same email/phone in between
			c.JSON(http.StatusBadRequest, gin.H{"error": "User with this email already exists"})
			return
		}
		// Log the registration
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,    // New user ID
			"email":   user.Email, // Registered email
		}).Info("User registered") // Log user registration
		// Issue a session token right away
		token, err := utils.GenerateJWT(user.ID, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the user and token
		c.JSON(http.StatusCreated, AuthResponse{User: user, Token: token})
	}
}

// LoginHandler authenticates a user and returns a JWT token
func LoginHandler(sel *store.Selector, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		src := sel.Active(c.Request.Context()) // Pick the reachable store for this request
		user, err := src.UserByEmail(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Email)))
		if err != nil {
			// If user not found, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(user.ID, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the user and token
		c.JSON(http.StatusOK, AuthResponse{User: user, Token: token})
	}
}

// ProfileHandler returns the authenticated user's account
func ProfileHandler(sel *store.Selector) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		user, err := sel.Active(c.Request.Context()).UserByID(c.Request.Context(), userID.(uint))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": user}) // Password never serializes
	}
}

// ListUsersHandler returns every user without passwords (debugging aid)
func ListUsersHandler(sel *store.Selector) gin.HandlerFunc {
	return func(c *gin.Context) {
		users, err := sel.Active(c.Request.Context()).Users(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": users, "total": len(users)})
	}
}
