// Package board holds the in-memory state of one session: the user's own
// todo board, friends' boards, the friend list and the notification inbox.
// Nothing here is persisted; a new process starts from the mock data again.
package board

import (
	"time"

	"github.com/idilsaglam/together/internal/model"
)

// FilterByDate returns the todos that fall on the same calendar day as day,
// in their original order. The result is never nil.
func FilterByDate(todos []model.Todo, day time.Time) []model.Todo {
	out := make([]model.Todo, 0, len(todos))
	for _, t := range todos {
		if model.SameDay(t.Date, day) {
			out = append(out, t)
		}
	}
	return out
}

// NextID is one past the largest id in todos, or 1 for an empty list.
func NextID(todos []model.Todo) int {
	top := 0
	for _, t := range todos {
		if t.ID > top {
			top = t.ID
		}
	}
	return top + 1
}

// ToggleComplete flips Completed on the todo with the given id, in place.
// It reports whether a todo was found.
func ToggleComplete(todos []model.Todo, id int) bool {
	for i := range todos {
		if todos[i].ID == id {
			todos[i].Completed = !todos[i].Completed
			return true
		}
	}
	return false
}

// stats counts done and pending todos.
func stats(todos []model.Todo) (done, pending int) {
	for _, t := range todos {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
