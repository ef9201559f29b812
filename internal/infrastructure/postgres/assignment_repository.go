package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spynet/spynet-api/internal/domain"
	"github.com/spynet/spynet-api/internal/domain/entity"
	"github.com/spynet/spynet-api/internal/domain/repository"
)

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

// AssignmentRepo implementación del puerto AssignmentRepository sobre PostgreSQL.
type AssignmentRepo struct {
	pool *pgxpool.Pool
}

// NewAssignmentRepository construye el adaptador de persistencia para delegaciones.
func NewAssignmentRepository(pool *pgxpool.Pool) *AssignmentRepo {
	return &AssignmentRepo{pool: pool}
}

// Create persiste una delegación detective→manager. ErrDuplicate si el par ya existe.
func (r *AssignmentRepo) Create(a *entity.ManagerAssignment) error {
	query := `
		INSERT INTO manager_assignments (detective_id, manager_id, created_at)
		VALUES ($1, $2, $3)`
	_, err := r.pool.Exec(context.Background(), query, a.DetectiveID, a.ManagerID, a.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

// Delete elimina la delegación. ErrNotFound si el par no existía.
func (r *AssignmentRepo) Delete(detectiveID, managerID string) error {
	tag, err := r.pool.Exec(context.Background(),
		`DELETE FROM manager_assignments WHERE detective_id = $1 AND manager_id = $2`,
		detectiveID, managerID,
	)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ManagerIDsForDetective managers delegados al detective.
func (r *AssignmentRepo) ManagerIDsForDetective(detectiveID string) ([]string, error) {
	return r.scanIDs(
		`SELECT manager_id FROM manager_assignments WHERE detective_id = $1`,
		detectiveID, "managers for detective",
	)
}

// DetectiveIDsForManager detectives delegados al manager.
func (r *AssignmentRepo) DetectiveIDsForManager(managerID string) ([]string, error) {
	return r.scanIDs(
		`SELECT detective_id FROM manager_assignments WHERE manager_id = $1`,
		managerID, "detectives for manager",
	)
}

func (r *AssignmentRepo) scanIDs(query, arg, op string) ([]string, error) {
	rows, err := r.pool.Query(context.Background(), query, arg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan assignment id: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
