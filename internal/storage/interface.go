package storage

import "github.com/julianstephens/lifetrack/internal/models"

type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Routines
	ListRoutines(enabledOnly bool) ([]models.Routine, error)
	GetRoutine(id int64) (models.Routine, error)
	FindRoutineByName(name string) (models.Routine, error)
	AddRoutine(r models.Routine) (int64, error)
	UpdateRoutine(id int64, update models.RoutineUpdate) error
	DeleteRoutine(id int64) error

	// Completions
	ToggleCompletion(routineID int64, date string) (bool, error)
	InsertCompletion(routineID int64, date string) (bool, error)
	CompletionsForDate(date string) ([]models.CompletionDetail, error)
	IsCompleted(routineID int64, date string) (bool, error)
	CompletionPercentage(date string) (int, error)
	CompletionStatsForRange(startDate, endDate string) ([]models.DateCount, error)

	// Daily entries
	GetDailyEntry(date string) (models.DailyEntry, bool, error)
	UpsertDailyEntry(date string, update models.DailyEntryUpdate) error
	ToggleExercise(date string) (bool, error)

	// Weight logs
	GetWeightLog(date string) (models.WeightLog, bool, error)
	UpsertWeightLog(date string, weight float64, unit string) error

	// User settings
	GetSetting(key string) (string, error)
	SetSetting(key, value string) error

	// Utils
	GetConfigPath() string
}
