package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"securecam-backend/auth"
	"securecam-backend/catalog"
	"securecam-backend/models"
)

const tokenCookieMaxAge = 24 * 60 * 60 // seconds, matches the token TTL

// Login handles admin login. Credentials must match a stored admin document
// and the username must be a configured principal; both failures answer the
// same way.
func (ctrl *Controller) Login(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var admin models.Admin
	collection := ctrl.DB.Collection(catalog.CollAdmins)
	err := collection.FindOne(ctx, bson.M{"username": req.Username}).Decode(&admin)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if !ctrl.Cfg.IsAdminPrincipal(admin.Username) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.IssueToken(ctrl.Cfg.PasetoSecretKey, admin.ID.Hex(), admin.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	secure := ctrl.Cfg.Env == "production"
	c.SetCookie(auth.CookieName, token, tokenCookieMaxAge, "/", "", secure, true)

	admin.Password = ""
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "admin": admin, "token": token})
}

// Register handles admin registration. Only usernames in the configured
// principal set may register; everyone else gets the uniform rejection.
func (ctrl *Controller) Register(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !ctrl.Cfg.IsAdminPrincipal(req.Username) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	collection := ctrl.DB.Collection(catalog.CollAdmins)
	var existing models.Admin
	if err := collection.FindOne(ctx, bson.M{"username": req.Username}).Decode(&existing); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	admin := models.Admin{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
	}

	result, err := collection.InsertOne(ctx, admin)
	if err != nil {
		// The existence check above races with concurrent registrations;
		// the unique username index is the authority.
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	admin.ID = result.InsertedID.(primitive.ObjectID)
	admin.Password = ""
	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful", "admin": admin})
}

// Logout clears the admin token cookie.
func (ctrl *Controller) Logout(c *gin.Context) {
	secure := ctrl.Cfg.Env == "production"
	c.SetCookie(auth.CookieName, "", -1, "/", "", secure, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
