package project

//go:generate mockgen -destination=./repository_mock_test.go -package=project -source=repository.go Repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"portfolio-assistant/internal/domain" // Shared domain models

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib" // Registers the "pgx" driver for database/sql
)

// ErrNotFound is returned when a project id has no row.
var ErrNotFound = errors.New("project not found")

// Repository is the interface for all catalogue related database operations.
// The catalogue is read-only from this service.
type Repository interface {
	// ListProjects returns every project ordered by order_index, without categories.
	ListProjects(ctx context.Context) ([]domain.Project, error)
	// ListCategories returns every category ordered by name.
	ListCategories(ctx context.Context) ([]domain.Category, error)
	// ListProjectCategories returns each project's categories, name-ordered, keyed by project id.
	ListProjectCategories(ctx context.Context) (map[uuid.UUID][]domain.Category, error)
	// GetProject finds one project by its primary key, with its categories.
	GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error)
}

// postgresRepository is the concrete implementation of the Repository that uses a Postgres database
type postgresRepository struct {
	db *sql.DB // The database connection pool.
}

// NewPostgresRepository is the constructor for the repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{
		db: db,
	}
}

const projectColumns = `
	p.id, p.title, p.description, p.detailed_description, p.image_url,
	p.demo_url, p.github_url, p.order_index, p.created_at
`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanProject reads one row selected with projectColumns.
// demo_url and github_url are nullable and come back as empty strings.
func scanProject(row rowScanner) (*domain.Project, error) {
	p := &domain.Project{}
	var demoURL, githubURL sql.NullString

	err := row.Scan(
		&p.ProjectID,
		&p.Title,
		&p.Description,
		&p.DetailedDescription,
		&p.ImageURL,
		&demoURL,
		&githubURL,
		&p.OrderIndex,
		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.DemoURL = demoURL.String
	p.GithubURL = githubURL.String
	return p, nil
}

// ListProjects retrieves the whole catalogue in display order.
func (pr *postgresRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	query := `SELECT ` + projectColumns + `
		FROM projects p
		ORDER BY p.order_index ASC
	`

	rows, err := pr.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not list projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("could not scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not list projects: %w", err)
	}

	return projects, nil
}

// ListCategories retrieves all categories alphabetically.
func (pr *postgresRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT id, name, slug, created_at
		FROM categories
		ORDER BY name ASC
	`

	rows, err := pr.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not list categories: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.CategoryID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("could not scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not list categories: %w", err)
	}

	return categories, nil
}

// ListProjectCategories reads the association table joined with categories.
func (pr *postgresRepository) ListProjectCategories(ctx context.Context) (map[uuid.UUID][]domain.Category, error) {
	query := `
		SELECT pc.project_id, c.id, c.name, c.slug, c.created_at
		FROM project_categories pc
		JOIN categories c ON c.id = pc.category_id
		ORDER BY c.name ASC
	`

	rows, err := pr.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("could not list project categories: %w", err)
	}
	defer rows.Close()

	byProject := make(map[uuid.UUID][]domain.Category)
	for rows.Next() {
		var projectID uuid.UUID
		var c domain.Category
		if err := rows.Scan(&projectID, &c.CategoryID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("could not scan project category: %w", err)
		}
		byProject[projectID] = append(byProject[projectID], c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not list project categories: %w", err)
	}

	return byProject, nil
}

// GetProject retrieves a single project and its categories.
func (pr *postgresRepository) GetProject(ctx context.Context, projectID uuid.UUID) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + `
		FROM projects p
		WHERE p.id = $1
	`

	p, err := scanProject(pr.db.QueryRowContext(ctx, query, projectID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not get project: %w", err)
	}

	catQuery := `
		SELECT c.id, c.name, c.slug, c.created_at
		FROM project_categories pc
		JOIN categories c ON c.id = pc.category_id
		WHERE pc.project_id = $1
		ORDER BY c.name ASC
	`
	rows, err := pr.db.QueryContext(ctx, catQuery, projectID)
	if err != nil {
		return nil, fmt.Errorf("could not get project categories: %w", err)
	}
	defer rows.Close()

	p.Categories = []domain.Category{}
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.CategoryID, &c.Name, &c.Slug, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("could not scan project category: %w", err)
		}
		p.Categories = append(p.Categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("could not get project categories: %w", err)
	}

	return p, nil
}
