package api

import (
	"log"
	stdhttp "net/http"

	intconfig "medsales/internal/config"
	h "medsales/internal/http/handlers"
	"medsales/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	h.SetJWTSecret([]byte(env.JWTSecret))
	admin := middleware.AuthRequired([]byte(env.JWTSecret))

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"success": false,
			"error":   "route not found",
			"path":    c.Request.URL.Path,
			"method":  c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/verify", admin, h.VerifyToken)
		auth.POST("/refresh", admin, h.RefreshToken)

		// Products: public reads, admin writes
		products := api.Group("/products")
		products.GET("", h.GetProducts)
		products.GET("/:id", h.GetProduct)
		products.POST("", admin, h.CreateProduct)
		products.PUT("/:id", admin, h.UpdateProduct)
		products.DELETE("/:id", admin, h.DeleteProduct)

		// Posts
		posts := api.Group("/posts")
		posts.GET("", h.GetPosts)
		posts.GET("/:id", h.GetPost)
		posts.POST("", admin, h.CreatePost)
		posts.PUT("/:id", admin, h.UpdatePost)
		posts.DELETE("/:id", admin, h.DeletePost)

		// Site settings
		settings := api.Group("/settings")
		settings.GET("", h.GetSettings)
		settings.GET("/:key", h.GetSetting)
		settings.PUT("", admin, h.PutSettings)
		settings.PUT("/:key", admin, h.PutSetting)

		// Reports
		reports := api.Group("/reports")
		reports.GET("/catalog", admin, h.ExportCatalog)

		// Uploads
		upload := api.Group("/upload", admin)
		upload.POST("", h.DirectUpload)
		upload.POST("/url", h.CreateUploadURL)
		upload.GET("/uploads", h.ListUploads)
		upload.DELETE("/uploads/:id", h.DeleteUpload)
	}

	h.SetRouter(r)
	return r
}
