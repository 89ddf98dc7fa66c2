package usecase

import (
	"github.com/sidebar-dev/sidebar/pkg/domain/interfaces"
)

// UseCases bundles the bot's business logic over the injected
// collaborators: the guild configuration store and the platform client
type UseCases struct {
	repo    interfaces.Repository
	discord interfaces.Discord
}

type Option func(*UseCases)

// New creates the use case layer
func New(repo interfaces.Repository, discord interfaces.Discord, opts ...Option) *UseCases {
	uc := &UseCases{
		repo:    repo,
		discord: discord,
	}

	for _, opt := range opts {
		opt(uc)
	}

	return uc
}
