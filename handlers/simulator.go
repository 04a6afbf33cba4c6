package handlers

import (
	"errors"
	"net/http"

	"legalscholer_app_go/config"
	"legalscholer_app_go/services"
	"legalscholer_app_go/services/i18n"
	"legalscholer_app_go/services/simulator"
	"legalscholer_app_go/services/telemetry"
	"legalscholer_app_go/templates/partials"

	"github.com/labstack/echo/v4"
)

// withSession advances the session named by the :id route param to wall
// time, applies fn and answers with the out-of-band session fragment.
// A session that no longer exists answers 410 and asks htmx to reload.
func withSession(c echo.Context, fn func(*simulator.Session)) error {
	id := c.Param("id")

	update, err := services.Sessions.With(id, fn)
	if err != nil {
		if errors.Is(err, simulator.ErrSessionNotFound) {
			c.Response().Header().Set("HX-Refresh", "true")
			return c.NoContent(http.StatusGone)
		}
		c.Logger().Errorf("Session %s update failed: %v", id, err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update session")
	}

	recordTransitions(c, id, update.Transitions)
	noStore(c)

	ctx := i18n.WithLocale(c.Request().Context(), update.Lang)
	c.SetRequest(c.Request().WithContext(ctx))
	return render(c, http.StatusOK, partials.SessionUpdate(partials.SessionProps{ID: id, View: update.View}))
}

func recordTransitions(c echo.Context, id string, transitions []simulator.Transition) {
	if len(transitions) == 0 {
		return
	}
	telemetry.RecordTransitions(c.Request().Context(), id, transitions)
	if cfg, ok := c.Get("config").(*config.Config); ok && !cfg.IsProduction() {
		services.LogTransitions(id, transitions)
	}
}

// SessionPollHandler returns the current snapshot
func SessionPollHandler(c echo.Context) error {
	return withSession(c, nil)
}

// SessionInputHandler stores what the user typed
func SessionInputHandler(c echo.Context) error {
	q := services.PlainText(c.FormValue("q"), services.MaxQueryLength)
	return withSession(c, func(s *simulator.Session) {
		s.SetInput(q)
	})
}

// SessionFocusHandler marks the search input as focused
func SessionFocusHandler(c echo.Context) error {
	return withSession(c, (*simulator.Session).Focus)
}

// SessionBlurHandler marks the search input as blurred
func SessionBlurHandler(c echo.Context) error {
	return withSession(c, (*simulator.Session).Blur)
}

// SessionSubmitHandler starts the mocked query
func SessionSubmitHandler(c echo.Context) error {
	q := services.PlainText(c.FormValue("q"), services.MaxQueryLength)
	return withSession(c, func(s *simulator.Session) {
		s.SubmitQuery(q)
	})
}

// SessionVoiceHandler starts the mocked voice capture
func SessionVoiceHandler(c echo.Context) error {
	return withSession(c, func(s *simulator.Session) {
		s.StartVoiceCapture()
	})
}

// SessionUploadHandler starts the mocked document analysis. Only the file
// name and size are used; a missing file leaves the session unchanged.
func SessionUploadHandler(c echo.Context) error {
	ref, err := fileRefFromRequest(c)
	switch {
	case errors.Is(err, services.ErrNoFile):
		return withSession(c, nil)
	case err != nil:
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return withSession(c, func(s *simulator.Session) {
		s.StartFileUpload(ref)
	})
}

func fileRefFromRequest(c echo.Context) (simulator.FileRef, error) {
	if fh, err := c.FormFile("file"); err == nil {
		return services.FileRefFromHeader(fh)
	}
	return services.FileRefFromFields(c.FormValue("name"), c.FormValue("size"))
}

// SessionUploadCloseHandler dismisses the upload modal
func SessionUploadCloseHandler(c echo.Context) error {
	return withSession(c, func(s *simulator.Session) {
		s.CloseUploadModal()
	})
}

// SessionDragEnterHandler shows the drop overlay
func SessionDragEnterHandler(c echo.Context) error {
	return withSession(c, (*simulator.Session).DragEnter)
}

// SessionDragLeaveHandler hides the drop overlay
func SessionDragLeaveHandler(c echo.Context) error {
	return withSession(c, (*simulator.Session).DragLeave)
}

// SessionSuggestionHandler copies a suggestion into the search input
func SessionSuggestionHandler(c echo.Context) error {
	suggestion := c.FormValue("s")
	return withSession(c, func(s *simulator.Session) {
		s.SelectSuggestion(suggestion)
	})
}

// SessionCloseHandler unmounts the session when the page goes away
func SessionCloseHandler(c echo.Context) error {
	services.Sessions.Remove(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
