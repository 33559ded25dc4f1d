package handler

import (
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
)

const flashCookieName = "philologic_flash"

// setFlash stores a one-shot message shown on the next rendered page.
func setFlash(c echo.Context, message string) {
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash returns the pending message, if any, and clears it.
func popFlash(c echo.Context) string {
	cookie, err := c.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return message
}

func redirectWithFlash(c echo.Context, location, message string) error {
	setFlash(c, message)
	return c.Redirect(http.StatusFound, location)
}
