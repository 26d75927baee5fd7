package main

import (
	"log"

	"github.com/Aarontamirat/voting-app/internal/config"
	"github.com/Aarontamirat/voting-app/internal/database"
	"github.com/Aarontamirat/voting-app/internal/handlers"
	"github.com/Aarontamirat/voting-app/internal/middleware"
	"github.com/Aarontamirat/voting-app/internal/services"
	"github.com/Aarontamirat/voting-app/internal/ws"

	_ "github.com/Aarontamirat/voting-app/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Shareholder Meeting API
// @version         1.0
// @description     API for shareholder meetings: registry, attendance, quorum and weighted voting
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	cfg := config.Load()

	db := database.Connect(cfg)
	database.AutoMigrate(db)

	hub := ws.NewHub()

	authService := services.NewAuthService(db, cfg.JWTSecret)
	shareholderService := services.NewShareholderService(db)
	meetingService := services.NewMeetingService(db, shareholderService)
	attendanceService := services.NewAttendanceService(db, meetingService)
	representativeService := services.NewRepresentativeService(db)
	nomineeService := services.NewNomineeService(db)
	votingService := services.NewVotingService(db)
	resultsService := services.NewResultsService(db)
	reportService := services.NewReportService(db, shareholderService)

	authHandler := handlers.NewAuthHandler(authService)
	shareholderHandler := handlers.NewShareholderHandler(shareholderService)
	meetingHandler := handlers.NewMeetingHandler(meetingService, hub)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService, hub)
	representativeHandler := handlers.NewRepresentativeHandler(representativeService)
	nomineeHandler := handlers.NewNomineeHandler(nomineeService)
	voteHandler := handlers.NewVoteHandler(votingService, resultsService, hub)
	reportHandler := handlers.NewReportHandler(reportService, attendanceService)
	wsHandler := handlers.NewWSHandler(hub)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/meeting/:id", wsHandler.HandleWebSocket)

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		shareholders := api.Group("/shareholders")
		shareholders.Use(middleware.JWTAuth(authService))
		{
			shareholders.GET("", shareholderHandler.ListShareholders)
			shareholders.POST("", shareholderHandler.CreateShareholder)
			shareholders.POST("/bulk", shareholderHandler.BulkCreateShareholders)
			shareholders.GET("/:id", shareholderHandler.GetShareholder)
			shareholders.PUT("/:id", shareholderHandler.UpdateShareholder)
			shareholders.DELETE("/:id", shareholderHandler.DeleteShareholder)
		}

		representatives := api.Group("/representatives")
		representatives.Use(middleware.JWTAuth(authService))
		{
			representatives.GET("", representativeHandler.ListRepresentatives)
			representatives.POST("", representativeHandler.CreateRepresentative)
		}

		meetings := api.Group("/meetings")
		meetings.Use(middleware.JWTAuth(authService))
		{
			meetings.GET("", meetingHandler.ListMeetings)
			meetings.POST("", meetingHandler.CreateMeeting)
			meetings.GET("/:id", meetingHandler.GetMeeting)
			meetings.PUT("/:id", meetingHandler.UpdateMeeting)
			meetings.DELETE("/:id", meetingHandler.DeleteMeeting)
			meetings.POST("/:id/open", meetingHandler.OpenMeeting)
			meetings.POST("/:id/votingopen", meetingHandler.OpenVoting)
			meetings.POST("/:id/close", meetingHandler.CloseMeeting)

			meetings.GET("/:id/attendance", attendanceHandler.ListAttendance)
			meetings.POST("/:id/attendance", attendanceHandler.RecordAttendance)
			meetings.DELETE("/:id/attendance/:attendanceId", attendanceHandler.DeleteAttendance)

			meetings.GET("/:id/nominees", nomineeHandler.ListNominees)
			meetings.POST("/:id/nominees", nomineeHandler.CreateNominee)
			meetings.PUT("/:id/nominees/:nomineeId", nomineeHandler.UpdateNominee)
			meetings.DELETE("/:id/nominees/:nomineeId", nomineeHandler.DeleteNominee)

			meetings.GET("/:id/votes", voteHandler.GetVotes)
			meetings.POST("/:id/votes", voteHandler.SubmitVotes)
			meetings.GET("/:id/results", voteHandler.GetResults)

			meetings.GET("/:id/voting-cards", reportHandler.GetVotingCards)
			meetings.GET("/:id/reports/attendance", reportHandler.GetAttendanceReport)
		}
	}

	log.Printf("server starting on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
