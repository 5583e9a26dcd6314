package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"artileaf-backend-go/internal/core"
	"artileaf-backend-go/internal/db"
	"artileaf-backend-go/internal/middleware"
	"artileaf-backend-go/internal/models"
)

// ArtifactHandler handles artifact related API endpoints.
type ArtifactHandler struct {
	artifactService core.ArtifactService
}

// NewArtifactHandler creates a new ArtifactHandler.
func NewArtifactHandler(as core.ArtifactService) *ArtifactHandler {
	return &ArtifactHandler{artifactService: as}
}

// requireEmailMatch checks the path email against the verified identity's
// email claim. A mismatch is an authorization failure: the caller is
// authenticated but asking for another identity's resources. The check runs
// before any database access.
func requireEmailMatch(c *gin.Context) (string, bool) {
	email := c.Param("email")
	if email != c.GetString(middleware.ContextUserEmail) {
		c.JSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
		return "", false
	}
	return email, true
}

// SearchArtifacts handles GET /artifacts. Without searchParams it returns
// every artifact; with it, artifacts whose name contains the query,
// case-insensitively.
func (h *ArtifactHandler) SearchArtifacts(c *gin.Context) {
	nameQuery := c.Query("searchParams")

	artifacts, err := h.artifactService.Search(c.Request.Context(), nameQuery)
	if err != nil {
		log.Printf("SearchArtifacts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, artifacts)
}

// TopLikedArtifacts handles GET /artifacts/top-liked. Each response
// document carries the derived likeCount it was sorted by, so clients can
// display the count without recomputing it.
func (h *ArtifactHandler) TopLikedArtifacts(c *gin.Context) {
	artifacts, err := h.artifactService.TopLiked(c.Request.Context())
	if err != nil {
		log.Printf("TopLikedArtifacts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to fetch top liked artifacts",
			"error":   err.Error(),
		})
		return
	}

	docs := make([]map[string]interface{}, 0, len(artifacts))
	for _, a := range artifacts {
		doc := a.Document()
		doc["likeCount"] = a.LikeCount()
		docs = append(docs, doc)
	}
	c.JSON(http.StatusOK, docs)
}

// GetArtifact handles GET /artifacts/:id. A missing document answers with a
// JSON null body, not a 404; a malformed id surfaces as a 500, both matching
// the established contract.
func (h *ArtifactHandler) GetArtifact(c *gin.Context) {
	artifact, err := h.artifactService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		log.Printf("GetArtifact: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, artifact)
}

// LikedArtifacts handles GET /likedArtifacts/:email.
func (h *ArtifactHandler) LikedArtifacts(c *gin.Context) {
	email, ok := requireEmailMatch(c)
	if !ok {
		return
	}

	artifacts, err := h.artifactService.LikedBy(c.Request.Context(), email)
	if err != nil {
		log.Printf("LikedArtifacts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
		return
	}
	c.JSON(http.StatusOK, artifacts)
}

// MyArtifacts handles GET /myArtifacts/:email.
func (h *ArtifactHandler) MyArtifacts(c *gin.Context) {
	email, ok := requireEmailMatch(c)
	if !ok {
		return
	}

	artifacts, err := h.artifactService.OwnedBy(c.Request.Context(), email)
	if err != nil {
		log.Printf("MyArtifacts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong!"})
		return
	}
	c.JSON(http.StatusOK, artifacts)
}

// CreateArtifact handles POST /artifacts. The body is stored as submitted;
// adderEmail is taken from the body without a cross-check against the
// verified identity.
func (h *ArtifactHandler) CreateArtifact(c *gin.Context) {
	var artifact models.Artifact
	if err := c.ShouldBindJSON(&artifact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.artifactService.Create(c.Request.Context(), &artifact)
	if err != nil {
		log.Printf("CreateArtifact: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, newInsertResult(result))
}

// UpdateArtifact handles PUT /updateMyArtifacts/:id. The supplied fields are
// merged into the document with upsert enabled, so a missing id creates a
// new document from the body. No ownership check is performed.
func (h *ArtifactHandler) UpdateArtifact(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.artifactService.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		log.Printf("UpdateArtifact: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, newUpdateResult(result))
}

// DeleteArtifact handles DELETE /artifacts/:id. Any authenticated caller may
// delete any artifact; the response reports the deleted count (0 or 1).
func (h *ArtifactHandler) DeleteArtifact(c *gin.Context) {
	result, err := h.artifactService.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		log.Printf("DeleteArtifact: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}
	c.JSON(http.StatusOK, newDeleteResult(result))
}

// LikeArtifact handles PATCH /like/:id. It toggles the body email's
// membership in the artifact's likedBy set and reports the new state.
func (h *ArtifactHandler) LikeArtifact(c *gin.Context) {
	var req models.LikeArtifactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	liked, err := h.artifactService.ToggleLike(c.Request.Context(), c.Param("id"), req.Email)
	if err != nil {
		log.Printf("LikeArtifact: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	message := "Dislike Successful"
	if liked {
		message = "Like Successful"
	}
	c.JSON(http.StatusOK, LikeToggleResponse{Message: message, Liked: liked})
}
