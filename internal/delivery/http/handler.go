package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/internmatch/backend/internal/domain"
	"github.com/internmatch/backend/internal/usecase"
)

// maxResumeSize caps resume uploads at 10 MiB.
const maxResumeSize = 10 << 20

// Handler holds dependencies for HTTP handlers
type Handler struct {
	auth    *usecase.AuthService
	catalog *usecase.CatalogService
	matches *usecase.MatchService
	store   domain.Pinger
}

// NewHandler creates a new HTTP handler
func NewHandler(
	auth *usecase.AuthService,
	catalog *usecase.CatalogService,
	matches *usecase.MatchService,
	store domain.Pinger,
) *Handler {
	return &Handler{
		auth:    auth,
		catalog: catalog,
		matches: matches,
		store:   store,
	}
}

// Root returns the service banner
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "InternMatch Backend Running",
	})
}

// HealthCheck returns the health status of the API and the store
func (h *Handler) HealthCheck(c *gin.Context) {
	storeStatus := "connected"
	if h.store != nil {
		if err := h.store.Ping(c.Request.Context()); err != nil {
			storeStatus = "unreachable"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "internmatch-backend",
		"version": "1.0.0",
		"store":   storeStatus,
	})
}

// signinForm is the multipart form accepted by SignIn. Preferences are
// comma-separated; the resume file is read separately.
type signinForm struct {
	Email       string `form:"email" binding:"required,email"`
	Password    string `form:"password" binding:"required"`
	Name        string `form:"name"`
	Preferences string `form:"preferences"`
}

// SignIn registers a new student or authenticates an existing one, applying
// any profile updates (name, preferences, resume) carried on the request.
func (h *Handler) SignIn(c *gin.Context) {
	var form signinForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	input := usecase.SignInInput{
		Email:       form.Email,
		Password:    form.Password,
		Name:        form.Name,
		Preferences: usecase.ParsePreferences(form.Preferences),
	}

	if file, err := c.FormFile("resume"); err == nil {
		if file.Size > maxResumeSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "resume too large"})
			return
		}
		data, err := readUpload(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read resume upload"})
			return
		}
		input.ResumeName = file.Filename
		input.ResumeData = data
	}

	profile, err := h.auth.SignIn(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Me returns the authenticated student's profile
func (h *Handler) Me(c *gin.Context) {
	studentID, err := AuthenticatedStudentID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, err := h.auth.FindProfileByID(c.Request.Context(), studentID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// SeedInternships inserts the demo catalog if it is empty
func (h *Handler) SeedInternships(c *gin.Context) {
	seeded, err := h.catalog.Seed(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Internships already seeded"
	if seeded {
		message = "Seeded internships"
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": message})
}

// matchRequest is the JSON body for MatchTop. Limit defaults to the
// configured value when omitted or non-positive.
type matchRequest struct {
	Email string `json:"email" binding:"required,email"`
	Limit int    `json:"limit"`
}

// MatchTop ranks the catalog against the student's stored preferences
func (h *Handler) MatchTop(c *gin.Context) {
	var req matchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "a valid email is required"})
		return
	}

	results, err := h.matches.TopMatches(c.Request.Context(), req.Email, req.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	if results == nil {
		results = []domain.MatchResult{}
	}
	c.JSON(http.StatusOK, results)
}

// respondError maps domain errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrStudentNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, domain.ErrNameRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required for new users"})
	case errors.Is(err, domain.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request parameters"})
	case errors.Is(err, domain.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Store unavailable"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func readUpload(file *multipart.FileHeader) ([]byte, error) {
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, maxResumeSize))
}
