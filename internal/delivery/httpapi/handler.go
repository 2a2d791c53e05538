package httpapi

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/quizroom/quizroom/internal/service"
)

// Handler binds the game engine's services to the HTTP API.
type Handler struct {
	content   *service.ContentService
	sessions  *service.SessionService
	players   *service.PlayerService
	sequencer *service.SequencerService
	judge     *service.JudgeService
	results   *service.ResultsService
	log       *zap.Logger
}

func NewHandler(
	content *service.ContentService,
	sessions *service.SessionService,
	players *service.PlayerService,
	sequencer *service.SequencerService,
	judge *service.JudgeService,
	results *service.ResultsService,
	log *zap.Logger,
) *Handler {
	return &Handler{
		content:   content,
		sessions:  sessions,
		players:   players,
		sequencer: sequencer,
		judge:     judge,
		results:   results,
		log:       log,
	}
}

// Router builds the gin engine with every route registered.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/ping", func(c *gin.Context) {
		c.String(200, "pong")
	})

	r.POST("/create-pack", h.createPack)
	r.GET("/get-pack", h.getPack)
	r.GET("/get-all-packs", h.getAllPacks)

	r.POST("/create-question", h.createQuestion)
	r.GET("/get-question-by-id", h.getQuestionByID)
	r.GET("/get-questions-by-pack-id", h.getQuestionsByPackID)

	r.POST("/create-variant", h.createVariant)
	r.GET("/get-variant-by-id", h.getVariantByID)
	r.GET("/get-variants-by-question-id", h.getVariantsByQuestionID)

	game := r.Group("/game")
	{
		game.POST("/create-session", h.createSession)
		game.GET("/sessions", h.listSessions)
		game.POST("/add-player", h.addPlayer)
		game.GET("/players", h.getPlayers)
		game.POST("/start", h.startGame)
		game.POST("/end", h.endGame)
		game.GET("/current-question", h.currentQuestion)
		game.POST("/advance", h.advance)
		game.POST("/submit-answer", h.submitAnswer)
		game.GET("/player-answers", h.playerAnswers)
		game.GET("/results", h.gameResults)
		game.GET("/state", h.gameState)
	}

	return r
}
