package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) createPack(c *gin.Context) {
	var req struct {
		Title string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	pack, err := h.content.CreatePack(c.Request.Context(), req.Title)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPackDTO(pack))
}

func (h *Handler) getPack(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		badRequest(c, "id is required")
		return
	}

	pack, err := h.content.GetPack(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toPackDTO(pack))
}

func (h *Handler) getAllPacks(c *gin.Context) {
	packs, err := h.content.GetAllPacks(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]packDTO, 0, len(packs))
	for _, p := range packs {
		out = append(out, toPackDTO(p))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) createQuestion(c *gin.Context) {
	var req struct {
		PackID   string `json:"pack_id"`
		Text     string `json:"text"`
		ImageURL string `json:"image_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	question, err := h.content.CreateQuestion(c.Request.Context(), req.PackID, req.Text, req.ImageURL)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuestionDTO(question))
}

func (h *Handler) getQuestionByID(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		badRequest(c, "id is required")
		return
	}

	question, err := h.content.GetQuestion(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toQuestionDTO(question))
}

func (h *Handler) getQuestionsByPackID(c *gin.Context) {
	packID := c.Query("pack_id")
	if packID == "" {
		badRequest(c, "pack_id is required")
		return
	}

	questions, err := h.content.GetQuestionsByPack(c.Request.Context(), packID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]questionDTO, 0, len(questions))
	for _, q := range questions {
		out = append(out, toQuestionDTO(q))
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handler) createVariant(c *gin.Context) {
	var req struct {
		QuestionID string `json:"question_id"`
		Text       string `json:"text"`
		IsCorrect  bool   `json:"is_correct"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	variant, err := h.content.CreateVariant(c.Request.Context(), req.QuestionID, req.Text, req.IsCorrect)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toVariantDTO(variant))
}

func (h *Handler) getVariantByID(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		badRequest(c, "id is required")
		return
	}

	variant, err := h.content.GetVariant(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toVariantDTO(variant))
}

func (h *Handler) getVariantsByQuestionID(c *gin.Context) {
	questionID := c.Query("question_id")
	if questionID == "" {
		badRequest(c, "question_id is required")
		return
	}

	variants, err := h.content.GetVariantsByQuestion(c.Request.Context(), questionID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	out := make([]variantDTO, 0, len(variants))
	for _, v := range variants {
		out = append(out, toVariantDTO(v))
	}
	c.JSON(http.StatusOK, out)
}
