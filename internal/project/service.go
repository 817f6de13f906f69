package project

//go:generate mockgen -destination=./service_mock_test.go -package=project -source=service.go Service

import (
	"context"
	"fmt"

	"portfolio-assistant/internal/domain" // Shared domain models

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Service defines the business logic of the project catalogue.
type Service interface {
	// ListProjects returns the catalogue in display order, each project with its categories.
	// A non-empty slug keeps only projects tagged with that category.
	ListProjects(ctx context.Context, categorySlug string) ([]domain.Project, error)
	// GetProject returns one project or ErrNotFound.
	GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
	// ListCategories returns all categories ordered by name.
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	repo   Repository // It depends on the repository
	logger *zap.Logger
}

// NewService is the constructor for the service injecting the repository.
func NewService(repo Repository, logger *zap.Logger) Service {
	return &service{
		repo:   repo,
		logger: logger,
	}
}

// ListProjects implements the Service interface.
// Projects and their category associations are read concurrently.
func (s *service) ListProjects(ctx context.Context, categorySlug string) ([]domain.Project, error) {
	var (
		projects  []domain.Project
		byProject map[uuid.UUID][]domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = s.repo.ListProjects(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		byProject, err = s.repo.ListProjectCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("service could not list projects: %w", err)
	}

	out := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		p.Categories = byProject[p.ProjectID]
		if p.Categories == nil {
			p.Categories = []domain.Category{}
		}
		if categorySlug != "" && !p.HasCategory(categorySlug) {
			continue
		}
		out = append(out, p)
	}

	s.logger.Debug("listed projects",
		zap.String("category", categorySlug),
		zap.Int("total", len(projects)),
		zap.Int("returned", len(out)))
	return out, nil
}

// GetProject is a simple pass through to the repository.
func (s *service) GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	return s.repo.GetProject(ctx, projectID)
}

// ListCategories is a simple pass through to the repository.
func (s *service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("service could not list categories: %w", err)
	}
	return categories, nil
}
