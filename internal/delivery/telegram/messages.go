// messages.go contains message templates and formatting functions for Telegram.

package telegram

import (
	"fmt"
	"strings"

	"github.com/quizroom/quizroom/internal/domain/entities"
	"github.com/quizroom/quizroom/internal/service"
)

const (
	msgWelcome = "Привет! 👋\n\nЯ бот для игры в викторину! 🎮\n\n" +
		"Используй /newgame чтобы начать новую игру\n" +
		"Используй /help для получения справки"

	msgHelp = "🎮 <b>Команды бота:</b>\n\n" +
		"/start — начать работу с ботом\n" +
		"/newgame — создать новую игру\n" +
		"/join — присоединиться к игре\n" +
		"/results — показать результаты\n" +
		"/cancel — отменить текущую игру\n" +
		"/help — показать эту справку\n\n" +
		"<b>Как играть:</b>\n" +
		"1. Создайте новую игру командой /newgame\n" +
		"2. Выберите пак вопросов\n" +
		"3. Дождитесь других игроков или начните игру\n" +
		"4. Отвечайте на вопросы, выбирая правильные варианты\n" +
		"5. В конце игры увидите результаты!\n\nУдачи! 🍀"

	msgUnknownCommand = "Неизвестная команда. Используйте /help для списка команд."

	msgChoosePack       = "🎯 Выберите пак вопросов:"
	msgNoPacks          = "❌ Пока нет доступных паков. Попробуйте позже."
	msgNoActiveGame     = "❌ В этом чате нет активной игры. Используйте /newgame."
	msgGameCanceled     = "❌ Игра отменена.\n\nИспользуйте /newgame чтобы начать новую игру."
	msgGameInProgress   = "В этом чате уже идёт игра. Завершите её или используйте /cancel."
	msgJoinTooLate      = "❌ Игра уже завершена, присоединиться нельзя."
	msgNotInGame        = "❌ Вы не участвуете в этой игре!"
	msgAlreadyAnswered  = "Вы уже ответили на этот вопрос."
	msgQuestionClosed   = "Этот вопрос уже закрыт."
	msgAnswerCorrect    = "✅ Правильно!"
	msgAnswerIncorrect  = "❌ Неправильно!"
	msgGameStarted      = "🎮 Игра началась! Загружаю первый вопрос..."
	msgInternalError    = "Что-то пошло не так. Попробуйте позже."
	msgWaitingForOthers = "Ждём остальных игроков..."
)

func formatLobby(playerNames []string) string {
	var b strings.Builder
	b.WriteString("✅ Игра создана!\n\n<b>Игроки:</b>\n")
	for _, name := range playerNames {
		fmt.Fprintf(&b, "• %s\n", name)
	}
	b.WriteString("\nДругие игроки могут присоединиться командой /join\n")
	b.WriteString("Когда все будут готовы, нажмите «Начать игру»")
	return b.String()
}

func formatJoined(name string) string {
	return fmt.Sprintf("👤 %s присоединился к игре!", name)
}

func formatQuestion(cur *service.CurrentQuestion) string {
	var b strings.Builder
	fmt.Fprintf(&b, "❓ <b>Вопрос %d из %d:</b>\n\n%s", cur.Index+1, cur.Total, cur.Question.Text)
	if cur.Question.ImageURL != "" {
		fmt.Fprintf(&b, "\n\n🖼 %s", cur.Question.ImageURL)
	}
	return b.String()
}

func formatResults(players []*entities.Player) string {
	var b strings.Builder
	b.WriteString("🏆 <b>Результаты игры:</b>\n\n")

	medals := []string{"🥇", "🥈", "🥉"}
	for i, p := range players {
		medal := "👤"
		if i < len(medals) {
			medal = medals[i]
		}
		fmt.Fprintf(&b, "%s %s: %d очков\n", medal, p.Name, p.Score)
	}

	b.WriteString("\nСпасибо за игру! 🎉\n")
	b.WriteString("Используйте /newgame чтобы сыграть ещё раз!")
	return b.String()
}
