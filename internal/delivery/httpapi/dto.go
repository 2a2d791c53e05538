package httpapi

import (
	"time"

	"github.com/quizroom/quizroom/internal/domain/entities"
	"github.com/quizroom/quizroom/internal/service"
)

type packDTO struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

func toPackDTO(p *entities.Pack) packDTO {
	return packDTO{ID: p.ID, Title: p.Title, CreatedAt: p.CreatedAt}
}

type questionDTO struct {
	ID       string `json:"id"`
	PackID   string `json:"pack_id"`
	Text     string `json:"text"`
	ImageURL string `json:"image_url,omitempty"`
}

func toQuestionDTO(q *entities.Question) questionDTO {
	return questionDTO{ID: q.ID, PackID: q.PackID, Text: q.Text, ImageURL: q.ImageURL}
}

// variantDTO is the admin-side view of a variant. Player-facing payloads
// use publicVariantDTO instead.
type variantDTO struct {
	ID         string `json:"id"`
	QuestionID string `json:"question_id"`
	Text       string `json:"text"`
	IsCorrect  bool   `json:"is_correct"`
}

func toVariantDTO(v *entities.Variant) variantDTO {
	return variantDTO{ID: v.ID, QuestionID: v.QuestionID, Text: v.Text, IsCorrect: v.IsCorrect}
}

// publicVariantDTO deliberately omits is_correct: the answer key never
// crosses the wire to players.
type publicVariantDTO struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type sessionDTO struct {
	ID                   string     `json:"id"`
	PackID               string     `json:"pack_id"`
	State                string     `json:"state"`
	CurrentQuestionIndex int        `json:"current_question_index"`
	CreatedAt            time.Time  `json:"created_at"`
	StartedAt            *time.Time `json:"started_at,omitempty"`
	FinishedAt           *time.Time `json:"finished_at,omitempty"`
}

func toSessionDTO(gs *entities.GameSession) sessionDTO {
	return sessionDTO{
		ID:                   gs.ID,
		PackID:               gs.PackID,
		State:                string(gs.State),
		CurrentQuestionIndex: gs.CurrentQuestionIndex,
		CreatedAt:            gs.CreatedAt,
		StartedAt:            gs.StartedAt,
		FinishedAt:           gs.FinishedAt,
	}
}

type playerDTO struct {
	ID            string    `json:"id"`
	GameSessionID string    `json:"game_session_id"`
	Name          string    `json:"name"`
	Score         int       `json:"score"`
	JoinedAt      time.Time `json:"joined_at"`
}

func toPlayerDTO(p *entities.Player) playerDTO {
	return playerDTO{
		ID:            p.ID,
		GameSessionID: p.GameSessionID,
		Name:          p.Name,
		Score:         p.Score,
		JoinedAt:      p.JoinedAt,
	}
}

func toPlayerDTOs(players []*entities.Player) []playerDTO {
	out := make([]playerDTO, 0, len(players))
	for _, p := range players {
		out = append(out, toPlayerDTO(p))
	}
	return out
}

type answerDTO struct {
	ID         string    `json:"id"`
	PlayerID   string    `json:"player_id"`
	QuestionID string    `json:"question_id"`
	VariantID  string    `json:"variant_id"`
	IsCorrect  bool      `json:"is_correct"`
	AnsweredAt time.Time `json:"answered_at"`
}

func toAnswerDTO(a *entities.Answer) answerDTO {
	return answerDTO{
		ID:         a.ID,
		PlayerID:   a.PlayerID,
		QuestionID: a.QuestionID,
		VariantID:  a.VariantID,
		IsCorrect:  a.IsCorrect,
		AnsweredAt: a.AnsweredAt,
	}
}

type currentQuestionDTO struct {
	Exhausted bool               `json:"exhausted"`
	Question  *questionDTO       `json:"question,omitempty"`
	Variants  []publicVariantDTO `json:"variants,omitempty"`
	Index     int                `json:"index"`
	Total     int                `json:"total"`
}

func toCurrentQuestionDTO(cur *service.CurrentQuestion) currentQuestionDTO {
	q := toQuestionDTO(cur.Question)
	variants := make([]publicVariantDTO, 0, len(cur.Variants))
	for _, v := range cur.Variants {
		variants = append(variants, publicVariantDTO{ID: v.ID, Text: v.Text})
	}
	return currentQuestionDTO{
		Question: &q,
		Variants: variants,
		Index:    cur.Index,
		Total:    cur.Total,
	}
}
