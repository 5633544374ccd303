package router

import (
	"beatstream-go/internal/api/handler"
	"beatstream-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Setup registers all business routes.
func Setup(
	r *gin.Engine,
	videoHandler *handler.VideoHandler,
	postHandler *handler.PostHandler,
	streamHandler *handler.LiveStreamHandler,
	commentHandler *handler.CommentHandler,
	likeHandler *handler.LikeHandler,
	tokenHandler *handler.TokenHandler,
	uploadHandler *handler.UploadHandler,
) {
	v1 := r.Group("/api/v1")

	// --- video catalog ---
	videos := v1.Group("/videos")
	{
		videos.GET("", videoHandler.GetAll)
		videos.GET("/search", videoHandler.Search)
		videos.GET("/:slug", videoHandler.GetBySlug)
		videos.GET("/:slug/comments", commentHandler.GetForVideo)

		authRequired := videos.Group("", middleware.AuthRequired())
		{
			authRequired.POST("", videoHandler.Create)
			authRequired.PATCH("/:slug", videoHandler.Update)
			authRequired.DELETE("/:slug", videoHandler.Delete)
			authRequired.POST("/:slug/comments", commentHandler.Create)
			authRequired.POST("/:slug/like", likeHandler.Like)
			authRequired.DELETE("/:slug/like", likeHandler.Unlike)
		}
	}

	// --- posts ---
	posts := v1.Group("/posts")
	{
		posts.GET("", postHandler.GetAll)
		posts.GET("/:slug", postHandler.GetBySlug)
		posts.GET("/:slug/history", postHandler.GetHistory)

		authRequired := posts.Group("", middleware.AuthRequired())
		{
			authRequired.POST("", postHandler.Create)
			authRequired.PUT("/:slug", postHandler.Update)
			authRequired.DELETE("/:slug", postHandler.Delete)
		}
	}

	// --- livestream schedule ---
	livestreams := v1.Group("/livestreams")
	{
		livestreams.GET("", streamHandler.GetAll)
		livestreams.GET("/:id", streamHandler.GetByID)

		authRequired := livestreams.Group("", middleware.AuthRequired())
		{
			authRequired.POST("", streamHandler.Create)
			authRequired.PUT("/:id", streamHandler.Update)
			authRequired.DELETE("/:id", streamHandler.Delete)
		}
	}

	// --- comments across videos ---
	v1.GET("/comments", commentHandler.GetAll)

	// --- current principal's liked videos ---
	v1.GET("/user/videos", middleware.AuthRequired(), likeHandler.GetLikedVideos)

	// --- admin API tokens ---
	tokens := v1.Group("/users/tokens", middleware.AuthRequired())
	{
		tokens.POST("", tokenHandler.Create)
		tokens.GET("", tokenHandler.GetAll)
		tokens.DELETE("/:id", tokenHandler.Revoke)
	}

	// --- pre-signed uploads ---
	v1.GET("/upload/pre_signed", middleware.AuthRequired(), uploadHandler.PreSigned)
}
