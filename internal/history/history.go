// Package history turns guarded mutations into immutable audit entries.
// Unlike satellite writes, a failed history append aborts the enclosing
// transaction: the history log is the sole accountability record.
package history

import (
	"time"

	"github.com/google/uuid"

	"task-manager-service/internal/domain"
	"task-manager-service/internal/guard"
)

// EntriesForChanges renders one HistoryEntry per applied field change.
func EntriesForChanges(taskID, actorID string, changes []guard.FieldChange, now time.Time) []domain.HistoryEntry {
	entries := make([]domain.HistoryEntry, 0, len(changes))
	for _, ch := range changes {
		entries = append(entries, domain.HistoryEntry{
			EntryID:   uuid.NewString(),
			TaskID:    taskID,
			UserID:    actorID,
			Action:    domain.ActionFieldChanged,
			FieldName: ch.Field,
			OldValue:  ch.OldValue,
			NewValue:  ch.NewValue,
			CreatedAt: now,
		})
	}
	return entries
}

// CreationEntry marks the birth of a task in its history log.
func CreationEntry(taskID, actorID string, now time.Time) domain.HistoryEntry {
	return domain.HistoryEntry{
		EntryID:   uuid.NewString(),
		TaskID:    taskID,
		UserID:    actorID,
		Action:    domain.ActionCreated,
		CreatedAt: now,
	}
}
