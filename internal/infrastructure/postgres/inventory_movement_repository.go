package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/domain/repository"
)

var _ repository.InventoryMovementRepository = (*InventoryMovementRepo)(nil)

// InventoryMovementRepo implementación del libro de movimientos sobre PostgreSQL
// (usable con pool o tx).
type InventoryMovementRepo struct {
	q Querier
}

// NewInventoryMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInventoryMovementRepository(q Querier) *InventoryMovementRepo {
	return &InventoryMovementRepo{q: q}
}

const movementColumns = `m.id, m.seq, m.company_id, m.product_id, m.warehouse_id, m.movement_type_id,
	m.quantity_movement, m.quantity_total, m.rental_id, m.sale_id, m.notes, m.status,
	m.created_by, m.created_at, m.updated_at, m.deleted_at`

// scanMovement escanea las columnas base de una fila del libro.
func scanMovement(row pgx.Row) (*entity.InventoryMovement, error) {
	var m entity.InventoryMovement
	err := row.Scan(
		&m.ID, &m.Seq, &m.CompanyID, &m.ProductID, &m.WarehouseID, &m.MovementTypeID,
		&m.QuantityMovement, &m.QuantityTotal, &m.RentalID, &m.SaleID, &m.Notes, &m.Status,
		&m.CreatedBy, &m.CreatedAt, &m.UpdatedAt, &m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create inserta una entrada y captura el seq asignado por la base.
func (r *InventoryMovementRepo) Create(ctx context.Context, movement *entity.InventoryMovement) error {
	query := `
		INSERT INTO inventory_movements (id, company_id, product_id, warehouse_id, movement_type_id,
			quantity_movement, quantity_total, rental_id, sale_id, notes, status, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING seq`
	err := r.q.QueryRow(ctx, query,
		movement.ID, movement.CompanyID, movement.ProductID, movement.WarehouseID, movement.MovementTypeID,
		movement.QuantityMovement, movement.QuantityTotal, movement.RentalID, movement.SaleID,
		movement.Notes, movement.Status, movement.CreatedBy, movement.CreatedAt, movement.UpdatedAt,
	).Scan(&movement.Seq)
	if err != nil {
		return fmt.Errorf("insert movement: %w", err)
	}
	return nil
}

// LockTuple toma un advisory lock transaccional sobre la tupla
// (empresa, producto, bodega). Se libera solo en Commit/Rollback.
func (r *InventoryMovementRepo) LockTuple(ctx context.Context, companyID, productID, warehouseID string) error {
	_, err := r.q.Exec(ctx,
		`SELECT pg_advisory_xact_lock(hashtextextended($1 || ':' || $2 || ':' || $3, 0))`,
		companyID, productID, warehouseID,
	)
	if err != nil {
		return fmt.Errorf("lock tuple: %w", err)
	}
	return nil
}

// FindLatest devuelve la entrada activa más reciente de la tupla por orden de
// inserción (seq), no por created_at: dos entradas del mismo instante no empatan.
func (r *InventoryMovementRepo) FindLatest(ctx context.Context, companyID, productID, warehouseID string) (*entity.InventoryMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM inventory_movements m
		WHERE m.company_id = $1 AND m.product_id = $2 AND m.warehouse_id = $3 AND m.deleted_at IS NULL
		ORDER BY m.seq DESC
		LIMIT 1`
	m, err := scanMovement(r.q.QueryRow(ctx, query, companyID, productID, warehouseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find latest movement: %w", err)
	}
	return m, nil
}

// GetByID obtiene una entrada con producto, bodega y tipo cargados.
func (r *InventoryMovementRepo) GetByID(ctx context.Context, companyID, id string, withDeleted bool) (*entity.InventoryMovement, error) {
	query := `
		SELECT ` + movementColumns + `,
			p.id, p.company_id, p.category_id, p.unit_id, COALESCE(p.supplier_id::text, ''), p.product_code, p.name, p.description,
			p.cost_price, p.sale_price, p.availability, p.status, p.created_at, p.updated_at, p.deleted_at,
			w.id, w.company_id, w.name, w.note, w.status, w.created_at, w.updated_at, w.deleted_at,
			mt.id, mt.company_id, mt.name, mt.description, mt.direction, mt.status, mt.created_at, mt.updated_at, mt.deleted_at
		FROM inventory_movements m
		JOIN products p ON p.id = m.product_id
		JOIN warehouses w ON w.id = m.warehouse_id
		JOIN movement_types mt ON mt.id = m.movement_type_id
		WHERE m.company_id = $1 AND m.id = $2`
	if !withDeleted {
		query += ` AND m.deleted_at IS NULL`
	}
	var (
		m  entity.InventoryMovement
		p  entity.Product
		w  entity.Warehouse
		mt entity.MovementType
	)
	err := r.q.QueryRow(ctx, query, companyID, id).Scan(
		&m.ID, &m.Seq, &m.CompanyID, &m.ProductID, &m.WarehouseID, &m.MovementTypeID,
		&m.QuantityMovement, &m.QuantityTotal, &m.RentalID, &m.SaleID, &m.Notes, &m.Status,
		&m.CreatedBy, &m.CreatedAt, &m.UpdatedAt, &m.DeletedAt,
		&p.ID, &p.CompanyID, &p.CategoryID, &p.UnitID, &p.SupplierID, &p.ProductCode, &p.Name, &p.Description,
		&p.CostPrice, &p.SalePrice, &p.Availability, &p.Status, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
		&w.ID, &w.CompanyID, &w.Name, &w.Note, &w.Status, &w.CreatedAt, &w.UpdatedAt, &w.DeletedAt,
		&mt.ID, &mt.CompanyID, &mt.Name, &mt.Description, &mt.Direction, &mt.Status, &mt.CreatedAt, &mt.UpdatedAt, &mt.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	m.Product = &p
	m.Warehouse = &w
	m.MovementType = &mt
	return &m, nil
}

// List lista entradas activas de la empresa con filtros y paginación, más recientes primero.
func (r *InventoryMovementRepo) List(ctx context.Context, companyID string, filter repository.MovementFilter, limit, offset int) ([]*entity.InventoryMovement, int, error) {
	where := ` WHERE m.company_id = $1 AND m.deleted_at IS NULL`
	args := []any{companyID}
	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		where += fmt.Sprintf(" AND m.product_id = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		where += fmt.Sprintf(" AND (%s LIKE $%d OR %s LIKE $%d)",
			unaccent("p.name"), len(args), unaccent("m.notes"), len(args))
	}
	if filter.Start != nil {
		args = append(args, *filter.Start)
		where += fmt.Sprintf(" AND m.created_at >= $%d", len(args))
	}
	if filter.End != nil {
		args = append(args, *filter.End)
		where += fmt.Sprintf(" AND m.created_at <= $%d", len(args))
	}

	countQuery := `SELECT COUNT(*) FROM inventory_movements m JOIN products p ON p.id = m.product_id` + where
	var total int
	if err := r.q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count movements: %w", err)
	}

	args = append(args, limit, offset)
	query := `
		SELECT ` + movementColumns + `,
			p.id, p.company_id, p.category_id, p.unit_id, COALESCE(p.supplier_id::text, ''), p.product_code, p.name, p.description,
			p.cost_price, p.sale_price, p.availability, p.status, p.created_at, p.updated_at, p.deleted_at,
			w.id, w.company_id, w.name, w.note, w.status, w.created_at, w.updated_at, w.deleted_at,
			mt.id, mt.company_id, mt.name, mt.description, mt.direction, mt.status, mt.created_at, mt.updated_at, mt.deleted_at
		FROM inventory_movements m
		JOIN products p ON p.id = m.product_id
		JOIN warehouses w ON w.id = m.warehouse_id
		JOIN movement_types mt ON mt.id = m.movement_type_id` + where +
		fmt.Sprintf(" ORDER BY m.seq DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	list, err := r.queryWithRelations(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// ListByProduct lista las entradas activas de un producto, más recientes primero.
func (r *InventoryMovementRepo) ListByProduct(ctx context.Context, companyID, productID string) ([]*entity.InventoryMovement, error) {
	query := `
		SELECT ` + movementColumns + `,
			p.id, p.company_id, p.category_id, p.unit_id, COALESCE(p.supplier_id::text, ''), p.product_code, p.name, p.description,
			p.cost_price, p.sale_price, p.availability, p.status, p.created_at, p.updated_at, p.deleted_at,
			w.id, w.company_id, w.name, w.note, w.status, w.created_at, w.updated_at, w.deleted_at,
			mt.id, mt.company_id, mt.name, mt.description, mt.direction, mt.status, mt.created_at, mt.updated_at, mt.deleted_at
		FROM inventory_movements m
		JOIN products p ON p.id = m.product_id
		JOIN warehouses w ON w.id = m.warehouse_id
		JOIN movement_types mt ON mt.id = m.movement_type_id
		WHERE m.company_id = $1 AND m.product_id = $2 AND m.deleted_at IS NULL
		ORDER BY m.seq DESC`
	return r.queryWithRelations(ctx, query, companyID, productID)
}

// ListByWarehouse lista las entradas activas de una bodega, más recientes primero.
func (r *InventoryMovementRepo) ListByWarehouse(ctx context.Context, companyID, warehouseID string) ([]*entity.InventoryMovement, error) {
	query := `
		SELECT ` + movementColumns + `,
			p.id, p.company_id, p.category_id, p.unit_id, COALESCE(p.supplier_id::text, ''), p.product_code, p.name, p.description,
			p.cost_price, p.sale_price, p.availability, p.status, p.created_at, p.updated_at, p.deleted_at,
			w.id, w.company_id, w.name, w.note, w.status, w.created_at, w.updated_at, w.deleted_at,
			mt.id, mt.company_id, mt.name, mt.description, mt.direction, mt.status, mt.created_at, mt.updated_at, mt.deleted_at
		FROM inventory_movements m
		JOIN products p ON p.id = m.product_id
		JOIN warehouses w ON w.id = m.warehouse_id
		JOIN movement_types mt ON mt.id = m.movement_type_id
		WHERE m.company_id = $1 AND m.warehouse_id = $2 AND m.deleted_at IS NULL
		ORDER BY m.seq DESC`
	return r.queryWithRelations(ctx, query, companyID, warehouseID)
}

// ListForStock devuelve todas las entradas activas de la empresa con las
// relaciones completas (producto con categoría y unidad), en orden de
// inserción: el agregador de stock agrupa en memoria preservando este orden.
func (r *InventoryMovementRepo) ListForStock(ctx context.Context, companyID string, filter repository.StockFilter) ([]*entity.InventoryMovement, error) {
	where := ` WHERE m.company_id = $1 AND m.deleted_at IS NULL`
	args := []any{companyID}
	if filter.ProductID != "" {
		args = append(args, filter.ProductID)
		where += fmt.Sprintf(" AND m.product_id = $%d", len(args))
	}
	if filter.Search != "" {
		args = append(args, likePattern(filter.Search))
		where += fmt.Sprintf(" AND (%s LIKE $%d OR %s LIKE $%d)",
			unaccent("p.name"), len(args), unaccent("p.description"), len(args))
	}
	query := `
		SELECT ` + movementColumns + `,
			p.id, p.company_id, p.category_id, p.unit_id, COALESCE(p.supplier_id::text, ''), p.product_code, p.name, p.description,
			p.cost_price, p.sale_price, p.availability, p.status, p.created_at, p.updated_at, p.deleted_at,
			w.id, w.company_id, w.name, w.note, w.status, w.created_at, w.updated_at, w.deleted_at,
			mt.id, mt.company_id, mt.name, mt.description, mt.direction, mt.status, mt.created_at, mt.updated_at, mt.deleted_at,
			c.id, c.company_id, c.name, c.description, c.status, c.created_at, c.updated_at, c.deleted_at,
			u.id, u.company_id, u.symbol, u.description, u.status, u.created_at, u.updated_at, u.deleted_at
		FROM inventory_movements m
		JOIN products p ON p.id = m.product_id
		JOIN warehouses w ON w.id = m.warehouse_id
		JOIN movement_types mt ON mt.id = m.movement_type_id
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN units u ON u.id = p.unit_id` + where + `
		ORDER BY m.product_id, m.seq`

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements for stock: %w", err)
	}
	defer rows.Close()

	var out []*entity.InventoryMovement
	for rows.Next() {
		var (
			m  entity.InventoryMovement
			p  entity.Product
			w  entity.Warehouse
			mt entity.MovementType

			catID, catCompany, catName, catDesc       *string
			catStatus                                 *bool
			catCreated, catUpdated, catDeleted        *time.Time
			unitID, unitCompany, unitSymbol, unitDesc *string
			unitStatus                                *bool
			unitCreated, unitUpdated, unitDeleted     *time.Time
		)
		err := rows.Scan(
			&m.ID, &m.Seq, &m.CompanyID, &m.ProductID, &m.WarehouseID, &m.MovementTypeID,
			&m.QuantityMovement, &m.QuantityTotal, &m.RentalID, &m.SaleID, &m.Notes, &m.Status,
			&m.CreatedBy, &m.CreatedAt, &m.UpdatedAt, &m.DeletedAt,
			&p.ID, &p.CompanyID, &p.CategoryID, &p.UnitID, &p.SupplierID, &p.ProductCode, &p.Name, &p.Description,
			&p.CostPrice, &p.SalePrice, &p.Availability, &p.Status, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
			&w.ID, &w.CompanyID, &w.Name, &w.Note, &w.Status, &w.CreatedAt, &w.UpdatedAt, &w.DeletedAt,
			&mt.ID, &mt.CompanyID, &mt.Name, &mt.Description, &mt.Direction, &mt.Status, &mt.CreatedAt, &mt.UpdatedAt, &mt.DeletedAt,
			&catID, &catCompany, &catName, &catDesc, &catStatus, &catCreated, &catUpdated, &catDeleted,
			&unitID, &unitCompany, &unitSymbol, &unitDesc, &unitStatus, &unitCreated, &unitUpdated, &unitDeleted,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movement for stock: %w", err)
		}
		if catID != nil {
			p.Category = &entity.Category{
				ID: *catID, CompanyID: *catCompany, Name: *catName,
				Status: *catStatus, CreatedAt: *catCreated, UpdatedAt: *catUpdated, DeletedAt: catDeleted,
			}
			if catDesc != nil {
				p.Category.Description = *catDesc
			}
		}
		if unitID != nil {
			p.Unit = &entity.Unit{
				ID: *unitID, CompanyID: *unitCompany, Symbol: *unitSymbol,
				Status: *unitStatus, CreatedAt: *unitCreated, UpdatedAt: *unitUpdated, DeletedAt: unitDeleted,
			}
			if unitDesc != nil {
				p.Unit.Description = *unitDesc
			}
		}
		m.Product = &p
		m.Warehouse = &w
		m.MovementType = &mt
		out = append(out, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movements for stock: %w", err)
	}
	return out, nil
}

// Update actualiza los campos mutables de una entrada. Las cantidades no se
// tocan: el libro no reescribe historia.
func (r *InventoryMovementRepo) Update(ctx context.Context, movement *entity.InventoryMovement) error {
	query := `
		UPDATE inventory_movements
		SET product_id = $3, warehouse_id = $4, notes = $5, rental_id = $6, sale_id = $7, status = $8, updated_at = $9
		WHERE company_id = $1 AND id = $2 AND deleted_at IS NULL`
	_, err := r.q.Exec(ctx, query,
		movement.CompanyID, movement.ID,
		movement.ProductID, movement.WarehouseID, movement.Notes,
		movement.RentalID, movement.SaleID, movement.Status, movement.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update movement: %w", err)
	}
	return nil
}

// SoftDelete marca la entrada como eliminada.
func (r *InventoryMovementRepo) SoftDelete(ctx context.Context, companyID, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE inventory_movements SET deleted_at = now(), updated_at = now() WHERE company_id = $1 AND id = $2 AND deleted_at IS NULL`,
		companyID, id,
	)
	if err != nil {
		return fmt.Errorf("soft delete movement: %w", err)
	}
	return nil
}

// Restore revierte el soft delete de la entrada.
func (r *InventoryMovementRepo) Restore(ctx context.Context, companyID, id string) error {
	_, err := r.q.Exec(ctx,
		`UPDATE inventory_movements SET deleted_at = NULL, updated_at = now() WHERE company_id = $1 AND id = $2 AND deleted_at IS NOT NULL`,
		companyID, id,
	)
	if err != nil {
		return fmt.Errorf("restore movement: %w", err)
	}
	return nil
}

// queryWithRelations ejecuta una consulta con los joins estándar
// (producto, bodega, tipo) y arma las entidades.
func (r *InventoryMovementRepo) queryWithRelations(ctx context.Context, query string, args ...any) ([]*entity.InventoryMovement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	defer rows.Close()

	var out []*entity.InventoryMovement
	for rows.Next() {
		var (
			m  entity.InventoryMovement
			p  entity.Product
			w  entity.Warehouse
			mt entity.MovementType
		)
		err := rows.Scan(
			&m.ID, &m.Seq, &m.CompanyID, &m.ProductID, &m.WarehouseID, &m.MovementTypeID,
			&m.QuantityMovement, &m.QuantityTotal, &m.RentalID, &m.SaleID, &m.Notes, &m.Status,
			&m.CreatedBy, &m.CreatedAt, &m.UpdatedAt, &m.DeletedAt,
			&p.ID, &p.CompanyID, &p.CategoryID, &p.UnitID, &p.SupplierID, &p.ProductCode, &p.Name, &p.Description,
			&p.CostPrice, &p.SalePrice, &p.Availability, &p.Status, &p.CreatedAt, &p.UpdatedAt, &p.DeletedAt,
			&w.ID, &w.CompanyID, &w.Name, &w.Note, &w.Status, &w.CreatedAt, &w.UpdatedAt, &w.DeletedAt,
			&mt.ID, &mt.CompanyID, &mt.Name, &mt.Description, &mt.Direction, &mt.Status, &mt.CreatedAt, &mt.UpdatedAt, &mt.DeletedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan movement: %w", err)
		}
		m.Product = &p
		m.Warehouse = &w
		m.MovementType = &mt
		out = append(out, &m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate movements: %w", err)
	}
	return out, nil
}
