package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"artileaf-backend-go/internal/core"
	"artileaf-backend-go/internal/middleware"
)

// SetupRoutes configures all application routes with their handlers and
// middleware. Global middleware (logging, recovery, CORS) is expected to be
// applied to the router before this is called, in cmd/server/main.go.
//
// Auth posture per route follows the established contract: browsing
// (search, top-liked, user list) and the like toggle are public; fetch by
// id, create/update/delete and the email-scoped listings require a verified
// bearer token, with the email-scoped listings additionally checking the
// path email against the token's email claim.
func SetupRoutes(
	router *gin.Engine,
	logger *zap.Logger,
	verifier middleware.TokenVerifier,
	artifactService core.ArtifactService,
	userService core.UserService,
) {
	authMW := middleware.NewAuthMiddleware(verifier)

	artifactHandler := NewArtifactHandler(artifactService)
	userHandler := NewUserHandler(userService)

	// Liveness probe.
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "ArtiLeaf is cooking...")
	})

	router.GET("/artifacts", artifactHandler.SearchArtifacts)
	router.GET("/artifacts/top-liked", artifactHandler.TopLikedArtifacts)
	router.GET("/artifacts/:id", authMW.VerifyToken(), artifactHandler.GetArtifact)
	router.POST("/artifacts", authMW.VerifyToken(), artifactHandler.CreateArtifact)
	router.DELETE("/artifacts/:id", authMW.VerifyToken(), artifactHandler.DeleteArtifact)
	router.PUT("/updateMyArtifacts/:id", authMW.VerifyToken(), artifactHandler.UpdateArtifact)

	router.GET("/likedArtifacts/:email", authMW.VerifyToken(), artifactHandler.LikedArtifacts)
	router.GET("/myArtifacts/:email", authMW.VerifyToken(), artifactHandler.MyArtifacts)

	router.PATCH("/like/:id", artifactHandler.LikeArtifact)

	router.GET("/users", userHandler.ListUsers)
	router.POST("/users", userHandler.CreateUser)

	logger.Info("API routes configured successfully.")
}
