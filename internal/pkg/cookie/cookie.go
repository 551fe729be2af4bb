package cookie

import (
	"net/http"
	"time"

	"barberflow/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName   = "access_token"
	WizardSessionCookieName = "wizard_session"
)

// SetWizardSession remembers the wizard session so a reload can resume the draft.
func SetWizardSession(c *gin.Context, cfg config.CookieConfig, sessionID string, ttl time.Duration) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		WizardSessionCookieName,
		sessionID,
		int(ttl.Seconds()),
		"/",
		cfg.Domain,
		cfg.Secure,
		true, // HttpOnly
	)
}

func ClearWizardSession(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(getSameSite(cfg.SameSite))
	c.SetCookie(
		WizardSessionCookieName,
		"",
		-1,
		"/",
		cfg.Domain,
		cfg.Secure,
		true,
	)
}

func GetWizardSession(c *gin.Context) string {
	id, _ := c.Cookie(WizardSessionCookieName)
	return id
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func getSameSite(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "Lax":
		return http.SameSiteLaxMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
