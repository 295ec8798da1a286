package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"rammo-backend/internal/models"
	"rammo-backend/internal/store"
)

// GetSettings serves the site settings to both the public contact block and
// the admin settings screen.
func GetSettings(settings store.SettingsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /settings"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		current, err := settings.Get(ctx)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "settings could not be fetched")
			return
		}

		c.JSON(http.StatusOK, current)
	}
}

type updateSettingsRequest struct {
	SiteName        string `json:"siteName" binding:"required"`
	SiteDescription string `json:"siteDescription"`
	PhoneNumber     string `json:"phoneNumber"`
	WhatsApp        string `json:"whatsapp"`
	Instagram       string `json:"instagram"`
	TikTok          string `json:"tiktok"`
	Address         string `json:"address"`
}

func UpdateSettings(settings store.SettingsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/settings"
		defer handlePanic(c, route)

		var req updateSettingsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		err := settings.Update(ctx, models.SiteSettings{
			SiteName:        strings.TrimSpace(req.SiteName),
			SiteDescription: strings.TrimSpace(req.SiteDescription),
			PhoneNumber:     strings.TrimSpace(req.PhoneNumber),
			WhatsApp:        strings.TrimSpace(req.WhatsApp),
			Instagram:       strings.TrimSpace(req.Instagram),
			TikTok:          strings.TrimSpace(req.TikTok),
			Address:         strings.TrimSpace(req.Address),
		})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "settings could not be saved")
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "settings updated"})
	}
}
