package api

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"classbook/internal/pkg/config"
	"classbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type CronHandler struct {
	reminderCommands commands.ReminderCommands
	cfg              config.ReminderConfig
}

func NewCronHandler(reminderCommands commands.ReminderCommands, cfg config.ReminderConfig) *CronHandler {
	return &CronHandler{
		reminderCommands: reminderCommands,
		cfg:              cfg,
	}
}

// @Summary Dispatch due reminders
// @Description Intended for platform cron schedulers. Guarded by a bearer secret; open when no secret is configured.
// @Tags cron
// @Produce json
// @Param dryRun query boolean false "Classify and report without sending"
// @Success 200 {object} commands.DispatchResult
// @Failure 401 {object} map[string]string
// @Router /cron/reminders [get]
func (h *CronHandler) DispatchReminders(c *gin.Context) {
	if !h.authorized(c) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid cron secret"})
		return
	}

	// Platform schedulers send ?dryRun=1; dry_run is kept as an alias.
	dryRun := isTruthy(c.Query("dryRun")) || isTruthy(c.Query("dry_run"))

	result, err := h.reminderCommands.Dispatch(c.Request.Context(), dryRun)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func isTruthy(v string) bool {
	return v == "1" || v == "true"
}

func (h *CronHandler) authorized(c *gin.Context) bool {
	if h.cfg.CronSecret == "" {
		return true
	}

	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return false
	}
	token := strings.TrimSpace(header[len("Bearer "):])
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.cfg.CronSecret)) == 1
}
