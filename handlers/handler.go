package handlers

import (
	"net/http"

	"bandhan/config"
	"bandhan/database"
	"bandhan/middleware"
	"bandhan/store"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Handler carries the collaborators every endpoint needs: the stores, the
// token manager and the startup config. No handler reads the environment.
type Handler struct {
	Users    *store.UserStore
	Messages *store.MessageStore
	Tokens   *middleware.TokenManager
	Cfg      config.Config
}

func New(db *database.Mongo, tokens *middleware.TokenManager, cfg config.Config) *Handler {
	return &Handler{
		Users:    store.NewUserStore(db.Users),
		Messages: store.NewMessageStore(db.Messages),
		Tokens:   tokens,
		Cfg:      cfg,
	}
}

// currentUserID resolves the authenticated caller's id from the context. It
// writes the 401 response itself when the id is missing or malformed.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.GetString(middleware.ContextUserID))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid user ID"})
		return primitive.NilObjectID, false
	}
	return id, true
}
