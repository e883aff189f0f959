package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yogeshwar16/realestatehousing/internal/interfaces/http/handlers"
)

type routeDeps struct {
	authHandler     *handlers.AuthHandler
	propertyHandler *handlers.PropertyHandler
	inquiryHandler  *handlers.InquiryHandler
	authMiddleware  gin.HandlerFunc
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

func registerRoutes(r *gin.Engine, d routeDeps) {
	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/signup", d.authHandler.Signup)
		auth.POST("/send-otp", d.authHandler.SendOTP)
		auth.POST("/login", d.authHandler.Login)
		auth.GET("/user/:mobile", d.authHandler.GetUser)
		auth.PUT("/user/:mobile", d.authHandler.UpdateUser)
	}

	// Property routes (public)
	r.GET("/api/properties", d.propertyHandler.List)
	properties := r.Group("/properties")
	{
		properties.GET("/:id", d.propertyHandler.Get)
		properties.POST("/create/:sellerId", d.propertyHandler.Create)
	}

	// Inquiry routes (protected)
	inquiries := r.Group("/api/inquiries")
	inquiries.Use(d.authMiddleware)
	{
		inquiries.POST("", d.inquiryHandler.Create)
		inquiries.GET("", d.inquiryHandler.ListMine)
	}
}
