package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Konete326/elitedev/internal/domain"
	"github.com/Konete326/elitedev/internal/session"
	"github.com/Konete326/elitedev/internal/usecase"
)

const (
	sessionCookieName = "portfolio_session"
	adminCookieName   = "admin_token"

	adminTokenValidity = time.Hour
)

// Handler is the HTTP route layer. Every handler converts errors at its own
// boundary into a JSON {message, ...} body; there is no error middleware
// beyond Echo's recover.
type Handler struct {
	users    *usecase.UserUsecase
	contacts *usecase.ContactUsecase
	admin    *usecase.AdminUsecase
	sessions *session.Manager
	logger   *slog.Logger
}

func New(users *usecase.UserUsecase, contacts *usecase.ContactUsecase, admin *usecase.AdminUsecase, sessions *session.Manager, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		users:    users,
		contacts: contacts,
		admin:    admin,
		sessions: sessions,
		logger:   logger,
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.POST("/signup", h.Signup)
	e.POST("/login", h.Login)
	e.POST("/logout", h.Logout)
	e.POST("/contact", h.Contact)
	e.POST("/admin/login", h.AdminLogin)
	e.GET("/admin", h.AdminData)
	e.GET("/check-login", h.CheckLogin)
}

type signupRequest struct {
	Firstname string `json:"firstname"`
	Username  string `json:"username"`
	Password  string `json:"password"`
}

func (h *Handler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error creating user", "error": err.Error()})
	}

	if err := h.users.Signup(c.Request().Context(), req.Firstname, req.Username, req.Password); err != nil {
		// the error message string goes to the client; a disclosure
		// concern for a public deployment
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error creating user", "error": err.Error()})
	}

	return c.JSON(http.StatusCreated, echo.Map{"message": "User created successfully"})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
	}

	ctx := c.Request().Context()
	user, err := h.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error logging in", "error": err.Error()})
	}

	token, err := h.sessions.Login(ctx, user.ID.Hex(), user.Firstname)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error logging in", "error": err.Error()})
	}

	h.setSessionCookie(c, token)
	return c.JSON(http.StatusOK, echo.Map{"message": "Login successful"})
}

func (h *Handler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Destroy(c.Request().Context(), cookie.Value); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error logging out"})
		}
	}

	h.clearSessionCookie(c)
	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out successfully"})
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (h *Handler) Contact(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error sending message", "error": err.Error()})
	}

	if err := h.contacts.Submit(c.Request().Context(), req.Name, req.Email, req.Subject, req.Message); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Error sending message", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Message sent successfully!"})
}

type adminLoginRequest struct {
	Password string `json:"password"`
}

func (h *Handler) AdminLogin(c echo.Context) error {
	var req adminLoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Invalid password"})
	}

	token, err := h.admin.Authenticate(req.Password)
	if err != nil {
		return c.JSON(http.StatusForbidden, echo.Map{"message": "Invalid password"})
	}

	h.setAdminCookie(c, token)
	return c.JSON(http.StatusOK, echo.Map{"message": "Password is correct"})
}

func (h *Handler) AdminData(c echo.Context) error {
	cookie, err := c.Cookie(adminCookieName)
	if err != nil || h.admin.Authorize(cookie.Value) != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Admin authentication required"})
	}

	data, err := h.admin.FetchData(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "Error fetching data", "error": err.Error()})
	}

	return c.JSON(http.StatusOK, data)
}

func (h *Handler) CheckLogin(c echo.Context) error {
	loggedIn := false
	initial := ""
	if cookie, err := c.Cookie(sessionCookieName); err == nil {
		loggedIn, initial = h.sessions.Check(c.Request().Context(), cookie.Value)
	}

	if loggedIn {
		return c.JSON(http.StatusOK, echo.Map{"loggedIn": true, "firstname": initial})
	}
	return c.JSON(http.StatusOK, echo.Map{"loggedIn": false})
}

func (h *Handler) setSessionCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(h.sessions.TTL()),
	})
}

func (h *Handler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func (h *Handler) setAdminCookie(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     adminCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(adminTokenValidity),
	})
}
