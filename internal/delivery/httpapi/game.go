package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quizroom/quizroom/internal/domain/entities"
)

func (h *Handler) createSession(c *gin.Context) {
	var req struct {
		PackID string `json:"pack_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	gs, err := h.sessions.Create(c.Request.Context(), req.PackID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionDTO(gs))
}

func (h *Handler) listSessions(c *gin.Context) {
	sessions, err := h.sessions.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]sessionDTO, 0, len(sessions))
	for _, gs := range sessions {
		out = append(out, toSessionDTO(gs))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) addPlayer(c *gin.Context) {
	var req struct {
		GameSessionID string `json:"game_session_id"`
		PlayerName    string `json:"player_name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	player, err := h.players.Add(c.Request.Context(), req.GameSessionID, req.PlayerName)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPlayerDTO(player))
}

func (h *Handler) getPlayers(c *gin.Context) {
	gameSessionID := c.Query("game_session_id")
	if gameSessionID == "" {
		badRequest(c, "game_session_id is required")
		return
	}

	players, err := h.players.List(c.Request.Context(), gameSessionID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPlayerDTOs(players))
}

func (h *Handler) startGame(c *gin.Context) {
	var req struct {
		GameSessionID string `json:"game_session_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	gs, err := h.sessions.Start(c.Request.Context(), req.GameSessionID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionDTO(gs))
}

func (h *Handler) endGame(c *gin.Context) {
	var req struct {
		GameSessionID string `json:"game_session_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	gs, err := h.sessions.End(c.Request.Context(), req.GameSessionID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toSessionDTO(gs))
}

func (h *Handler) currentQuestion(c *gin.Context) {
	gameSessionID := c.Query("game_session_id")
	if gameSessionID == "" {
		badRequest(c, "game_session_id is required")
		return
	}

	cur, err := h.sequencer.Current(c.Request.Context(), gameSessionID)
	if errors.Is(err, entities.ErrQuestionsExhausted) {
		// Running out of questions is the end-of-game signal, not a failure.
		c.JSON(http.StatusOK, currentQuestionDTO{Exhausted: true})
		return
	}
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toCurrentQuestionDTO(cur))
}

func (h *Handler) advance(c *gin.Context) {
	var req struct {
		GameSessionID string `json:"game_session_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	hasMore, err := h.sequencer.Advance(c.Request.Context(), req.GameSessionID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"has_more_questions": hasMore})
}

func (h *Handler) submitAnswer(c *gin.Context) {
	var req struct {
		PlayerID   string `json:"player_id"`
		QuestionID string `json:"question_id"`
		VariantID  string `json:"variant_id"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	res, err := h.judge.Submit(c.Request.Context(), req.PlayerID, req.QuestionID, req.VariantID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"is_correct":    res.IsCorrect,
		"points":        res.Points,
		"game_finished": res.GameFinished,
	})
}

func (h *Handler) playerAnswers(c *gin.Context) {
	playerID := c.Query("player_id")
	if playerID == "" {
		badRequest(c, "player_id is required")
		return
	}

	answers, err := h.judge.PlayerAnswers(c.Request.Context(), playerID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]answerDTO, 0, len(answers))
	for _, a := range answers {
		out = append(out, toAnswerDTO(a))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) gameResults(c *gin.Context) {
	gameSessionID := c.Query("game_session_id")
	if gameSessionID == "" {
		badRequest(c, "game_session_id is required")
		return
	}

	players, err := h.results.Get(c.Request.Context(), gameSessionID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"players": toPlayerDTOs(players)})
}

func (h *Handler) gameState(c *gin.Context) {
	gameSessionID := c.Query("game_session_id")
	if gameSessionID == "" {
		badRequest(c, "game_session_id is required")
		return
	}

	state, err := h.sessions.GetState(c.Request.Context(), gameSessionID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"game_session":    toSessionDTO(state.Session),
		"players":         toPlayerDTOs(state.Players),
		"total_questions": state.TotalQuestions,
	})
}
