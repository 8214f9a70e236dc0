package postgres

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
)

// recordingQuerier captura el SQL y los argumentos enviados, sin base de datos.
type recordingQuerier struct {
	lastSQL  string
	lastArgs []any
}

func (q *recordingQuerier) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	q.lastSQL, q.lastArgs = sql, args
	return pgconn.CommandTag{}, nil
}

func (q *recordingQuerier) Query(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.lastSQL, q.lastArgs = sql, args
	return nil, pgx.ErrNoRows
}

func (q *recordingQuerier) QueryRow(_ context.Context, sql string, args ...any) pgx.Row {
	q.lastSQL, q.lastArgs = sql, args
	return noRow{}
}

type noRow struct{}

func (noRow) Scan(...any) error { return pgx.ErrNoRows }

func TestProductRepo_SupplierVacioSeEscribeComoNull(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewProductRepository(q)

	err := repo.Create(context.Background(), &entity.Product{
		ID:         "p1",
		CompanyID:  "c1",
		CategoryID: "cat1",
		UnitID:     "u1",
		Name:       "Taladro",
	})
	require.NoError(t, err)

	// El proveedor es opcional: "" debe llegar a la columna uuid como NULL,
	// nunca como string vacío.
	assert.Contains(t, q.lastSQL, "NULLIF($5, '')::uuid")
	assert.Equal(t, "", q.lastArgs[4])

	err = repo.Update(context.Background(), &entity.Product{
		ID: "p1", CompanyID: "c1", CategoryID: "cat1", UnitID: "u1", Name: "Taladro",
	})
	require.NoError(t, err)
	assert.Contains(t, q.lastSQL, "supplier_id = NULLIF($5, '')::uuid")
}

func TestProductRepo_LecturaNormalizaSupplierNull(t *testing.T) {
	q := &recordingQuerier{}
	repo := NewProductRepository(q)

	p, err := repo.GetByID(context.Background(), "c1", "p1", false)
	require.NoError(t, err)
	assert.Nil(t, p)
	// La lectura vuelve por string: NULL se normaliza a "".
	assert.Contains(t, q.lastSQL, "COALESCE(p.supplier_id::text, '')")
}
