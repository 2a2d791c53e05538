package event

// Event is something that happened inside a game session. Observers
// receive events after the triggering operation has been persisted.
type Event interface {
	Name() string
}

// SessionCreated fires when a new game session is opened for a pack.
type SessionCreated struct {
	SessionID string `json:"session_id"`
	PackID    string `json:"pack_id"`
}

func (SessionCreated) Name() string { return "game.session_created" }

// PlayerJoined fires when a player enrolls in a session.
type PlayerJoined struct {
	SessionID  string `json:"session_id"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
}

func (PlayerJoined) Name() string { return "game.player_joined" }

// GameStarted fires when a session moves from waiting to active.
type GameStarted struct {
	SessionID     string `json:"session_id"`
	PlayerCount   int    `json:"player_count"`
	QuestionCount int    `json:"question_count"`
}

func (GameStarted) Name() string { return "game.started" }

// AnswerSubmitted fires for every recorded answer, correct or not.
type AnswerSubmitted struct {
	SessionID  string `json:"session_id"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	QuestionID string `json:"question_id"`
	VariantID  string `json:"variant_id"`
	IsCorrect  bool   `json:"is_correct"`
}

func (AnswerSubmitted) Name() string { return "game.answer_submitted" }

// ScoreUpdated fires when the judge credits points to a player.
type ScoreUpdated struct {
	SessionID  string `json:"session_id"`
	PlayerID   string `json:"player_id"`
	PlayerName string `json:"player_name"`
	OldScore   int    `json:"old_score"`
	NewScore   int    `json:"new_score"`
}

func (ScoreUpdated) Name() string { return "game.score_updated" }

// AllPlayersAnswered fires when the last enrolled player answers the
// current question.
type AllPlayersAnswered struct {
	SessionID     string `json:"session_id"`
	QuestionID    string `json:"question_id"`
	QuestionIndex int    `json:"question_index"`
	PlayerCount   int    `json:"player_count"`
}

func (AllPlayersAnswered) Name() string { return "game.all_players_answered" }

// QuestionAdvanced fires when the session cursor moves forward.
type QuestionAdvanced struct {
	SessionID string `json:"session_id"`
	OldIndex  int    `json:"old_index"`
	NewIndex  int    `json:"new_index"`
}

func (QuestionAdvanced) Name() string { return "game.question_advanced" }

// GameFinished fires when a session reaches its terminal state, whether
// by explicit end, advancing past the last question, or the last answer.
type GameFinished struct {
	SessionID     string `json:"session_id"`
	QuestionCount int    `json:"question_count"`
	PlayerCount   int    `json:"player_count"`
}

func (GameFinished) Name() string { return "game.finished" }
