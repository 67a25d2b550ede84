package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nisargamalap/gridle/internal/adapter/http/handlers"
	"github.com/nisargamalap/gridle/internal/adapter/http/middleware"
	"github.com/nisargamalap/gridle/pkg/session"
)

// Handlers bundles every route handler the server mounts.
type Handlers struct {
	Health    *handlers.HealthHandler
	Auth      *handlers.AuthHandler
	User      *handlers.UserHandler
	Group     *handlers.GroupHandler
	Task      *handlers.TaskHandler
	Note      *handlers.NoteHandler
	Project   *handlers.ProjectHandler
	Assistant *handlers.AssistantHandler

	AdminUser      *handlers.AdminUserHandler
	AdminGroup     *handlers.AdminGroupHandler
	AdminTask      *handlers.AdminTaskHandler
	AdminNote      *handlers.AdminNoteHandler
	AdminAnalytics *handlers.AdminAnalyticsHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers, sessions *session.Manager, limiter *middleware.RateLimiter) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		// Credential endpoints are rate limited per client; everything else
		// is behind a session.
		auth := api.Group("/auth")
		auth.Use(limiter.Middleware())
		{
			auth.POST("/register", h.Auth.Register)
			auth.POST("/login", h.Auth.Login)
			auth.POST("/password-reset", h.Auth.RequestPasswordReset)
			auth.POST("/password-reset/confirm", h.Auth.ResetPassword)
		}

		authed := api.Group("")
		authed.Use(middleware.RequireAuth(sessions))
		{
			user := authed.Group("/user")
			{
				user.GET("/profile", h.User.GetProfile)
				user.PUT("/profile", h.User.UpdateProfile)
				user.PUT("/preferences", h.User.UpdatePreferences)
				user.PUT("/password", h.User.ChangePassword)
			}

			groups := authed.Group("/groups")
			{
				groups.POST("", h.Group.CreateGroup)
				groups.GET("", h.Group.ListGroups)
				groups.POST("/join", h.Group.JoinGroup)
				groups.GET("/:id", h.Group.GetGroup)
				groups.PUT("/:id", h.Group.UpdateGroup)
				groups.DELETE("/:id", h.Group.DeleteGroup)
				groups.GET("/:id/members", h.Group.ListMembers)
				groups.GET("/:id/tasks", h.Group.ListGroupTasks)
			}

			tasks := authed.Group("/tasks")
			{
				tasks.POST("", h.Task.CreateTask)
				tasks.GET("", h.Task.ListTasks)
				tasks.GET("/:id", h.Task.GetTask)
				tasks.PUT("/:id", h.Task.UpdateTask)
				tasks.DELETE("/:id", h.Task.DeleteTask)
			}

			notes := authed.Group("/notes")
			{
				notes.POST("", h.Note.CreateNote)
				notes.GET("", h.Note.ListNotes)
				notes.GET("/:id", h.Note.GetNote)
				notes.PUT("/:id", h.Note.UpdateNote)
				notes.DELETE("/:id", h.Note.DeleteNote)
			}

			projects := authed.Group("/projects")
			{
				projects.POST("", h.Project.CreateProject)
				projects.GET("", h.Project.ListProjects)
				projects.PUT("/:id", h.Project.UpdateProject)
				projects.DELETE("/:id", h.Project.DeleteProject)
			}

			assistant := authed.Group("/assistant")
			assistant.Use(limiter.Middleware())
			{
				assistant.POST("/chat", h.Assistant.Chat)
				assistant.POST("/summarize", h.Assistant.SummarizeNote)
				assistant.POST("/translate", h.Assistant.Translate)
				assistant.POST("/spellcheck", h.Assistant.Spellcheck)
			}

			admin := authed.Group("/admin")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/users", h.AdminUser.ListUsers)
				admin.GET("/users/:id", h.AdminUser.GetUser)
				admin.PUT("/users/:id", h.AdminUser.UpdateUser)
				admin.DELETE("/users/:id", h.AdminUser.DeleteUser)
				admin.POST("/users/:id/reset-password", h.AdminUser.ResetUserPassword)
				admin.GET("/users/:id/activity", h.AdminUser.GetUserActivity)

				admin.GET("/groups", h.AdminGroup.ListGroups)
				admin.PUT("/groups/:id", h.AdminGroup.UpdateGroup)
				admin.DELETE("/groups/:id", h.AdminGroup.DeleteGroup)
				admin.POST("/groups/:id/members", h.AdminGroup.AddMember)
				admin.DELETE("/groups/:id/members/:userId", h.AdminGroup.RemoveMember)
				admin.PUT("/groups/:id/owner", h.AdminGroup.TransferOwnership)

				admin.GET("/tasks", h.AdminTask.ListTasks)
				admin.PUT("/tasks/:id", h.AdminTask.UpdateTask)
				admin.DELETE("/tasks/:id", h.AdminTask.DeleteTask)
				admin.POST("/tasks/bulk", h.AdminTask.BulkTasks)

				admin.GET("/notes", h.AdminNote.ListNotes)
				admin.DELETE("/notes/:id", h.AdminNote.DeleteNote)

				admin.GET("/analytics", h.AdminAnalytics.Overview)
			}
		}
	}
}
