// Package usecase wires the application use cases together.
package usecase

import (
	"time"

	"github.com/rf-toolkit/linkbudget/internal/usecase/linkbudget"
	"github.com/rf-toolkit/linkbudget/internal/usecase/sessions"
	"github.com/rf-toolkit/linkbudget/pkg/logger"
)

// Usecases -.
type Usecases struct {
	LinkBudget linkbudget.Feature
	Sessions   sessions.Feature
}

// NewUseCases -.
func NewUseCases(store sessions.Store, sessionExpiry time.Duration, log logger.Interface) *Usecases {
	return &Usecases{
		LinkBudget: linkbudget.New(log),
		Sessions:   sessions.New(store, sessionExpiry, log),
	}
}
