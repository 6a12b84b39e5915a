package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/health", handler.Health)

	api := app.Group("/api")

	studies := api.Group("/studies")
	studies.Get("", handler.ListStudies)
	studies.Post("", handler.CreateStudy)
	studies.Get("/:studyId", handler.GetStudyDetail)
	studies.Patch("/:studyId", handler.UpdateStudy)
	studies.Delete("/:studyId", handler.DeleteStudy)
	studies.Post("/:studyId/verify-password", handler.VerifyStudyPassword)

	studies.Get("/:studyId/focus-logs", handler.ListFocusLogs)
	studies.Post("/:studyId/focus-logs", handler.CreateFocusLog)

	studies.Get("/:studyId/habits", handler.ListHabits)
	studies.Post("/:studyId/habits", handler.CreateHabit)
	studies.Get("/:studyId/habits/today", handler.TodayHabits)
	studies.Patch("/:studyId/habits/:habitId", handler.RenameHabit)
	studies.Delete("/:studyId/habits/:habitId", handler.DeleteHabit)
	studies.Patch("/:studyId/habits/:habitId/check-today", handler.CheckHabitToday)

	studies.Get("/:studyId/emojis", handler.ListEmojis)
	studies.Post("/:studyId/emojis", handler.AddEmoji)
}
