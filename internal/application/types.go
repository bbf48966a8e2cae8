package application

import "recall/internal/domain"

// Re-export domain types for use by adapters
type (
	Note         = domain.Note
	NotePath     = domain.NotePath
	Materialized = domain.Materialized
	Task         = domain.Task
)

const (
	TaskRead   = domain.TaskRead
	TaskNew    = domain.TaskNew
	TaskEdit   = domain.TaskEdit
	TaskDelete = domain.TaskDelete
	TaskList   = domain.TaskList
	TaskHelp   = domain.TaskHelp
)

// ConfirmationWord is the exact input that authorizes a destructive delete
const ConfirmationWord = "YES"

// ConfirmationPrompt is printed after the delete preview
const ConfirmationPrompt = "Are you sure? YES/NO"
