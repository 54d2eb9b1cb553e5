package handlers

import (
	"net/http"
	"strings"

	"medsales/internal/http/middleware"
	"medsales/internal/repositories"
	"medsales/internal/services"

	"github.com/gin-gonic/gin"
)

func settingService(c *gin.Context) services.SettingService {
	return services.SettingService{
		Repo:      repositories.SettingRepository{},
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/settings?keys=a,b,c — map of all (or the named) settings.
func GetSettings(c *gin.Context) {
	var keys []string
	if raw := strings.TrimSpace(c.Query("keys")); raw != "" {
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
	}

	settings, err := settingService(c).GetAll(keys)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, settings)
}

// GET /api/settings/:key
func GetSetting(c *gin.Context) {
	setting, err := settingService(c).Get(strings.TrimSpace(c.Param("key")))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, setting)
}

type settingPayload struct {
	Value       *string `json:"value"`
	Description *string `json:"description"`
}

// PUT /api/settings/:key
func PutSetting(c *gin.Context) {
	key := strings.TrimSpace(c.Param("key"))
	var payload settingPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	setting, err := settingService(c).Set(key, payload.Value, payload.Description)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, setting)
}

type settingsBatchPayload struct {
	Settings map[string]string `json:"settings"`
}

// PUT /api/settings — batch upsert.
func PutSettings(c *gin.Context) {
	var payload settingsBatchPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	updated, err := settingService(c).SetMany(payload.Settings)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, http.StatusOK, gin.H{"updated": len(updated)})
}
