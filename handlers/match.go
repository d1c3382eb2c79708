package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"bandhan/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// FindMatches runs the match query for the authenticated requester. All
// filter criteria come from the requester's stored record; the only caller
// input is the optional mode:
//
//	GET /api/match/find                 widest predicate, password excluded
//	GET /api/match/find?mode=suggested  gender + religion filters, capped at
//	                                    50, display fields only
//
// Zero candidates is a successful, empty response.
func (h *Handler) FindMatches(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	opts := store.MatchOptions{}
	switch c.Query("mode") {
	case "", "open":
	case "suggested":
		opts = store.SuggestedMatchOptions()
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown match mode"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	requester, err := h.Users.GetByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found or token invalid."})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("match: requester lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error, please try again."})
		return
	}

	matches, err := h.Users.FindMatches(ctx, requester, opts)
	if err != nil {
		log.Error().Err(err).Str("user", userID.Hex()).Msg("match: query failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error, please try again."})
		return
	}

	c.JSON(http.StatusOK, matches)
}
