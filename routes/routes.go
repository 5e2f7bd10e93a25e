package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vnkhanh/creator-studio-backend/controllers"
	"github.com/vnkhanh/creator-studio-backend/services"
	"github.com/vnkhanh/creator-studio-backend/store"
	"github.com/vnkhanh/creator-studio-backend/ws"
)

// Deps gom các dependency được khởi tạo một lần ở main
type Deps struct {
	Store        *store.Store
	Orchestrator *services.Orchestrator
	Scripts      services.ScriptGenerator
	TTS          services.TextToSpeech
	Images       services.ImageGenerator
	Video        services.VideoCompiler
}

func SetupRouter(r *gin.Engine, deps Deps) *gin.Engine {
	system := controllers.SystemController{Store: deps.Store}
	platforms := controllers.PlatformController{Store: deps.Store}
	accounts := controllers.AccountController{Store: deps.Store}
	contents := controllers.ContentController{Store: deps.Store}
	schedules := controllers.ScheduleController{Store: deps.Store}
	topics := controllers.TopicController{Store: deps.Store}
	users := controllers.UserController{Store: deps.Store}
	scripts := controllers.ScriptController{Store: deps.Store, TTS: deps.TTS}
	automation := controllers.AutomationController{Store: deps.Store, Orchestrator: deps.Orchestrator}
	aiTools := controllers.AiToolsController{Store: deps.Store}
	ai := controllers.AiController{Store: deps.Store, Scripts: deps.Scripts, Images: deps.Images, Video: deps.Video}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", system.HealthCheck)

	api := r.Group("/api")

	api.GET("/platforms", platforms.List)
	api.POST("/platforms", platforms.Create)
	api.GET("/platforms/:id", platforms.Get)
	api.PUT("/platforms/:id", platforms.Update)
	api.DELETE("/platforms/:id", platforms.Delete)
	api.GET("/platforms/:id/accounts", platforms.Accounts)

	api.GET("/platform-accounts", accounts.List)
	api.POST("/platform-accounts", accounts.Create)
	api.GET("/platform-accounts/:id", accounts.Get)
	api.PUT("/platform-accounts/:id", accounts.Update)
	api.DELETE("/platform-accounts/:id", accounts.Delete)

	api.GET("/content", contents.List)
	api.POST("/content", contents.Create)
	api.GET("/content/recent", contents.Recent)
	api.GET("/content/:id", contents.Get)
	api.PUT("/content/:id", contents.Update)
	api.DELETE("/content/:id", contents.Delete)

	api.GET("/scheduled-posts", schedules.List)
	api.POST("/scheduled-posts", schedules.Create)
	api.GET("/scheduled-posts/upcoming", schedules.Upcoming)
	api.GET("/scheduled-posts/:id", schedules.Get)
	api.PUT("/scheduled-posts/:id", schedules.Update)
	api.DELETE("/scheduled-posts/:id", schedules.Delete)

	api.GET("/trending-topics", topics.List)
	api.POST("/trending-topics", topics.Create)
	api.GET("/trending-topics/top", topics.Top)
	api.GET("/trending-topics/:id", topics.Get)
	api.PUT("/trending-topics/:id", topics.Update)
	api.DELETE("/trending-topics/:id", topics.Delete)

	api.GET("/scripts", scripts.List)
	api.POST("/scripts", scripts.Create)
	api.GET("/scripts/:id", scripts.Get)
	api.PUT("/scripts/:id", scripts.Update)
	api.DELETE("/scripts/:id", scripts.Delete)
	api.POST("/scripts/:id/audio", scripts.ToAudio)

	api.GET("/users", users.List)
	api.POST("/users", users.Create)
	api.GET("/users/:id", users.Get)
	api.PUT("/users/:id", users.Update)
	api.DELETE("/users/:id", users.Delete)

	api.GET("/system-status", system.Status)

	auto := api.Group("/automation")
	{
		auto.POST("/create-content", automation.CreateContent)
		auto.POST("/schedule", automation.Schedule)
		auto.GET("/queue", automation.Queue)
		auto.GET("/settings", automation.GetSettings)
		auto.POST("/settings", automation.SetSettings)
		auto.POST("/toggle", automation.Toggle)
		auto.GET("/analytics", automation.Analytics)
		auto.GET("/logs", automation.Logs)
		auto.POST("/batch-run", automation.BatchRun)
		auto.POST("/trigger-task", automation.TriggerTask)
	}

	tools := api.Group("/ai-tools")
	{
		tools.GET("/settings", aiTools.GetSettings)
		tools.POST("/settings", aiTools.CreateSetting)
		tools.PUT("/settings/:id", aiTools.UpdateSetting)
		tools.DELETE("/settings/:id", aiTools.DeleteSetting)
		tools.POST("/test-connection", aiTools.TestConnection)
		tools.GET("/available-models", aiTools.AvailableModels)
	}

	aiGroup := api.Group("/ai")
	{
		aiGroup.POST("/generate-script", ai.GenerateScript)
		aiGroup.POST("/generate-image", ai.GenerateImage)
		aiGroup.POST("/generate-video", ai.GenerateVideo)
	}

	r.GET("/ws/automation/:jobId", ws.HandleAutomationWebSocket)
	r.GET("/ws/status", ws.HandleGlobalWebSocket)

	return r
}
