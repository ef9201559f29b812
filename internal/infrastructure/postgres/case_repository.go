package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spynet/spynet-api/internal/domain"
	"github.com/spynet/spynet-api/internal/domain/entity"
	"github.com/spynet/spynet-api/internal/domain/repository"
)

var _ repository.CaseRepository = (*CaseRepo)(nil)

// CaseRepo implementación del puerto CaseRepository sobre PostgreSQL.
type CaseRepo struct {
	pool *pgxpool.Pool
}

// NewCaseRepository construye el adaptador de persistencia para casos.
func NewCaseRepository(pool *pgxpool.Pool) *CaseRepo {
	return &CaseRepo{pool: pool}
}

const caseColumns = `id, title, details, location, status, detective_id, manager_id, created_at, updated_at`

// Create persiste un nuevo caso.
func (r *CaseRepo) Create(c *entity.Case) error {
	query := `
		INSERT INTO cases (id, title, details, location, status, detective_id, manager_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.pool.Exec(context.Background(), query,
		c.ID, c.Title, c.Details, c.Location, c.Status, c.DetectiveID, c.ManagerID,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert case: %w", err)
	}
	return nil
}

// GetByID obtiene un caso por ID. Devuelve (nil, nil) si no existe.
func (r *CaseRepo) GetByID(id string) (*entity.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases WHERE id = $1`
	var c entity.Case
	err := r.pool.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Title, &c.Details, &c.Location, &c.Status, &c.DetectiveID, &c.ManagerID,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get case by id: %w", err)
	}
	return &c, nil
}

// List obtiene casos con filtros de igualdad opcionales.
func (r *CaseRepo) List(f repository.CaseFilter) ([]*entity.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases`
	var conds []string
	var args []any
	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.DetectiveID != "" {
		args = append(args, f.DetectiveID)
		conds = append(conds, fmt.Sprintf("detective_id = $%d", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	return r.scanMany(query, args, "list cases")
}

// ListByDetective casos asignados al detective, filtrados por status si no es vacío.
func (r *CaseRepo) ListByDetective(detectiveID, status string) ([]*entity.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases WHERE detective_id = $1`
	args := []any{detectiveID}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	return r.scanMany(query, args, "list cases by detective")
}

// ListUnassignedByManagers casos sin asignar cuyo manager_id está en managerIDs.
func (r *CaseRepo) ListUnassignedByManagers(managerIDs []string, status string) ([]*entity.Case, error) {
	query := `SELECT ` + caseColumns + ` FROM cases WHERE detective_id IS NULL AND manager_id = ANY($1)`
	args := []any{managerIDs}
	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	return r.scanMany(query, args, "list unassigned cases by managers")
}

// Update aplica una actualización parcial con SET dinámico. updated_at lo
// asigna el servidor (now()) en cada mutación. manager_id nunca se toca.
// En detective_id, cadena vacía se traduce a NULL (desasignar).
func (r *CaseRepo) Update(id string, upd entity.CaseUpdate) (*entity.Case, error) {
	sets := []string{"updated_at = now()"}
	args := []any{id}
	add := func(col string, val any) {
		args = append(args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if upd.Title != nil {
		add("title", *upd.Title)
	}
	if upd.Details != nil {
		add("details", *upd.Details)
	}
	if upd.Location != nil {
		add("location", *upd.Location)
	}
	if upd.Status != nil {
		add("status", *upd.Status)
	}
	if upd.DetectiveID != nil {
		if *upd.DetectiveID == "" {
			sets = append(sets, "detective_id = NULL")
		} else {
			add("detective_id", *upd.DetectiveID)
		}
	}
	query := fmt.Sprintf(
		`UPDATE cases SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(sets, ", "), caseColumns,
	)
	var c entity.Case
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&c.ID, &c.Title, &c.Details, &c.Location, &c.Status, &c.DetectiveID, &c.ManagerID,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCaseNotFound
		}
		return nil, fmt.Errorf("update case: %w", err)
	}
	return &c, nil
}

// Delete elimina un caso por ID.
func (r *CaseRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM cases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete case: %w", err)
	}
	return nil
}

func (r *CaseRepo) scanMany(query string, args []any, op string) ([]*entity.Case, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	var list []*entity.Case
	for rows.Next() {
		var c entity.Case
		if err := rows.Scan(&c.ID, &c.Title, &c.Details, &c.Location, &c.Status, &c.DetectiveID, &c.ManagerID, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
