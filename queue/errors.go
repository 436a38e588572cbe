package queue

import (
	"errors"
	"fmt"
)

// Sentinel errors for the queue's failure taxonomy. Callers discriminate with
// errors.Is; every operation validates before mutating so a returned error
// implies the queue is unchanged.
var (
	ErrDuplicateKey    = errors.New("duplicate task id")
	ErrNotFound        = errors.New("task not found")
	ErrEmptyQueue      = errors.New("empty queue")
	ErrInvalidPriority = errors.New("invalid priority change")
)

func NewDuplicateKeyError(id string) error {
	return fmt.Errorf("task %v already present: %w", id, ErrDuplicateKey)
}

func NewNotFoundError(id string) error {
	return fmt.Errorf("task %v: %w", id, ErrNotFound)
}

func NewEmptyQueueError(op string) error {
	return fmt.Errorf("%v: %w", op, ErrEmptyQueue)
}

func NewInvalidPriorityError(op, id string, current, updated int) error {
	return fmt.Errorf("%v task %v: %d -> %d: %w", op, id, current, updated, ErrInvalidPriority)
}
