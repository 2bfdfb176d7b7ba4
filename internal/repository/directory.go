package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/carelink/practice-api/internal/dto"
	"github.com/carelink/practice-api/internal/entity"
)

var (
	ErrPhysicianNotFound   = errors.New("physician not found")
	ErrAttorneyNotFound    = errors.New("attorney not found")
	ErrPayerNotFound       = errors.New("payer not found")
	ErrFacilityNotFound    = errors.New("facility not found")
	ErrStatusNotFound      = errors.New("status not found")
	ErrStatusNameDuplicate = errors.New("status name already exists")
)

// ---------------------------------------------------------------------------
// Physicians
// ---------------------------------------------------------------------------

const physicianColumns = "id, name, specialty, email, phone, npi, created_at, updated_at"

// PhysicianUpdate carries optional fields for a partial physician update.
type PhysicianUpdate struct {
	Name      *string
	Specialty *string
	Email     *string
	Phone     *string
	NPI       *string
}

// PhysiciansRepository declares persistence operations for physicians.
type PhysiciansRepository interface {
	Create(ctx context.Context, name string, specialty, email, phone, npi *string) (*entity.Physician, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Physician, error)
	List(ctx context.Context, filter dto.ListFilter) ([]entity.Physician, error)
	Update(ctx context.Context, id uuid.UUID, upd PhysicianUpdate) (*entity.Physician, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXPhysiciansRepository implements PhysiciansRepository with pgx.
type PGXPhysiciansRepository struct {
	pool pgxPool
}

// NewPGXPhysiciansRepository instantiates a physicians repository.
func NewPGXPhysiciansRepository(pool *pgxpool.Pool) *PGXPhysiciansRepository {
	return &PGXPhysiciansRepository{pool: pool}
}

func scanPhysician(row pgx.Row) (*entity.Physician, error) {
	var p entity.Physician
	if err := row.Scan(&p.ID, &p.Name, &p.Specialty, &p.Email, &p.Phone, &p.NPI, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PGXPhysiciansRepository) Create(ctx context.Context, name string, specialty, email, phone, npi *string) (*entity.Physician, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO physicians (name, specialty, email, phone, npi)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING `+physicianColumns+`
    `, name, specialty, email, phone, npi)

	physician, err := scanPhysician(row)
	if err != nil {
		return nil, fmt.Errorf("insert physician: %w", err)
	}
	return physician, nil
}

func (r *PGXPhysiciansRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Physician, error) {
	physician, err := scanPhysician(r.pool.QueryRow(ctx, `SELECT `+physicianColumns+` FROM physicians WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPhysicianNotFound
		}
		return nil, fmt.Errorf("query physician: %w", err)
	}
	return physician, nil
}

func (r *PGXPhysiciansRepository) List(ctx context.Context, filter dto.ListFilter) ([]entity.Physician, error) {
	filter.Normalize()
	rows, err := r.pool.Query(ctx, `
        SELECT `+physicianColumns+` FROM physicians
        WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR specialty ILIKE '%' || $1 || '%')
        ORDER BY name
        LIMIT $2 OFFSET $3
    `, filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("list physicians: %w", err)
	}
	defer rows.Close()

	var physicians []entity.Physician
	for rows.Next() {
		physician, err := scanPhysician(rows)
		if err != nil {
			return nil, fmt.Errorf("scan physician row: %w", err)
		}
		physicians = append(physicians, *physician)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate physicians: %w", err)
	}
	return physicians, nil
}

func (r *PGXPhysiciansRepository) Update(ctx context.Context, id uuid.UUID, upd PhysicianUpdate) (*entity.Physician, error) {
	b := &updateBuilder{}
	set(b, "name", upd.Name)
	set(b, "specialty", upd.Specialty)
	set(b, "email", upd.Email)
	set(b, "phone", upd.Phone)
	set(b, "npi", upd.NPI)

	if b.empty() {
		return r.FindByID(ctx, id)
	}

	query, args := b.statement("physicians", physicianColumns, id)
	physician, err := scanPhysician(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPhysicianNotFound
		}
		return nil, fmt.Errorf("update physician: %w", err)
	}
	return physician, nil
}

func (r *PGXPhysiciansRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM physicians WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete physician: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrPhysicianNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Attorneys
// ---------------------------------------------------------------------------

const attorneyColumns = "id, name, firm, email, phone, created_at, updated_at"

// AttorneyUpdate carries optional fields for a partial attorney update.
type AttorneyUpdate struct {
	Name  *string
	Firm  *string
	Email *string
	Phone *string
}

// AttorneysRepository declares persistence operations for attorneys.
type AttorneysRepository interface {
	Create(ctx context.Context, name string, firm, email, phone *string) (*entity.Attorney, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Attorney, error)
	List(ctx context.Context, filter dto.ListFilter) ([]entity.Attorney, error)
	Update(ctx context.Context, id uuid.UUID, upd AttorneyUpdate) (*entity.Attorney, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXAttorneysRepository implements AttorneysRepository with pgx.
type PGXAttorneysRepository struct {
	pool pgxPool
}

// NewPGXAttorneysRepository instantiates an attorneys repository.
func NewPGXAttorneysRepository(pool *pgxpool.Pool) *PGXAttorneysRepository {
	return &PGXAttorneysRepository{pool: pool}
}

func scanAttorney(row pgx.Row) (*entity.Attorney, error) {
	var a entity.Attorney
	if err := row.Scan(&a.ID, &a.Name, &a.Firm, &a.Email, &a.Phone, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PGXAttorneysRepository) Create(ctx context.Context, name string, firm, email, phone *string) (*entity.Attorney, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO attorneys (name, firm, email, phone)
        VALUES ($1, $2, $3, $4)
        RETURNING `+attorneyColumns+`
    `, name, firm, email, phone)

	attorney, err := scanAttorney(row)
	if err != nil {
		return nil, fmt.Errorf("insert attorney: %w", err)
	}
	return attorney, nil
}

func (r *PGXAttorneysRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Attorney, error) {
	attorney, err := scanAttorney(r.pool.QueryRow(ctx, `SELECT `+attorneyColumns+` FROM attorneys WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAttorneyNotFound
		}
		return nil, fmt.Errorf("query attorney: %w", err)
	}
	return attorney, nil
}

func (r *PGXAttorneysRepository) List(ctx context.Context, filter dto.ListFilter) ([]entity.Attorney, error) {
	filter.Normalize()
	rows, err := r.pool.Query(ctx, `
        SELECT `+attorneyColumns+` FROM attorneys
        WHERE ($1 = '' OR name ILIKE '%' || $1 || '%' OR firm ILIKE '%' || $1 || '%')
        ORDER BY name
        LIMIT $2 OFFSET $3
    `, filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("list attorneys: %w", err)
	}
	defer rows.Close()

	var attorneys []entity.Attorney
	for rows.Next() {
		attorney, err := scanAttorney(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attorney row: %w", err)
		}
		attorneys = append(attorneys, *attorney)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attorneys: %w", err)
	}
	return attorneys, nil
}

func (r *PGXAttorneysRepository) Update(ctx context.Context, id uuid.UUID, upd AttorneyUpdate) (*entity.Attorney, error) {
	b := &updateBuilder{}
	set(b, "name", upd.Name)
	set(b, "firm", upd.Firm)
	set(b, "email", upd.Email)
	set(b, "phone", upd.Phone)

	if b.empty() {
		return r.FindByID(ctx, id)
	}

	query, args := b.statement("attorneys", attorneyColumns, id)
	attorney, err := scanAttorney(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrAttorneyNotFound
		}
		return nil, fmt.Errorf("update attorney: %w", err)
	}
	return attorney, nil
}

func (r *PGXAttorneysRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM attorneys WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete attorney: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrAttorneyNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Payers
// ---------------------------------------------------------------------------

const payerColumns = "id, name, payer_type, phone, is_active, created_at, updated_at"

// PayerUpdate carries optional fields for a partial payer update.
type PayerUpdate struct {
	Name      *string
	PayerType *string
	Phone     *string
	IsActive  *bool
}

// PayersRepository declares persistence operations for payers.
type PayersRepository interface {
	Create(ctx context.Context, name, payerType string, phone *string, isActive bool) (*entity.Payer, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payer, error)
	List(ctx context.Context, filter dto.ListFilter) ([]entity.Payer, error)
	Update(ctx context.Context, id uuid.UUID, upd PayerUpdate) (*entity.Payer, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXPayersRepository implements PayersRepository with pgx.
type PGXPayersRepository struct {
	pool pgxPool
}

// NewPGXPayersRepository instantiates a payers repository.
func NewPGXPayersRepository(pool *pgxpool.Pool) *PGXPayersRepository {
	return &PGXPayersRepository{pool: pool}
}

func scanPayer(row pgx.Row) (*entity.Payer, error) {
	var p entity.Payer
	if err := row.Scan(&p.ID, &p.Name, &p.PayerType, &p.Phone, &p.IsActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PGXPayersRepository) Create(ctx context.Context, name, payerType string, phone *string, isActive bool) (*entity.Payer, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO payers (name, payer_type, phone, is_active)
        VALUES ($1, $2, $3, $4)
        RETURNING `+payerColumns+`
    `, name, payerType, phone, isActive)

	payer, err := scanPayer(row)
	if err != nil {
		return nil, fmt.Errorf("insert payer: %w", err)
	}
	return payer, nil
}

func (r *PGXPayersRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payer, error) {
	payer, err := scanPayer(r.pool.QueryRow(ctx, `SELECT `+payerColumns+` FROM payers WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPayerNotFound
		}
		return nil, fmt.Errorf("query payer: %w", err)
	}
	return payer, nil
}

func (r *PGXPayersRepository) List(ctx context.Context, filter dto.ListFilter) ([]entity.Payer, error) {
	filter.Normalize()
	rows, err := r.pool.Query(ctx, `
        SELECT `+payerColumns+` FROM payers
        WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
        ORDER BY name
        LIMIT $2 OFFSET $3
    `, filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("list payers: %w", err)
	}
	defer rows.Close()

	var payers []entity.Payer
	for rows.Next() {
		payer, err := scanPayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payer row: %w", err)
		}
		payers = append(payers, *payer)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payers: %w", err)
	}
	return payers, nil
}

func (r *PGXPayersRepository) Update(ctx context.Context, id uuid.UUID, upd PayerUpdate) (*entity.Payer, error) {
	b := &updateBuilder{}
	set(b, "name", upd.Name)
	set(b, "payer_type", upd.PayerType)
	set(b, "phone", upd.Phone)
	set(b, "is_active", upd.IsActive)

	if b.empty() {
		return r.FindByID(ctx, id)
	}

	query, args := b.statement("payers", payerColumns, id)
	payer, err := scanPayer(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPayerNotFound
		}
		return nil, fmt.Errorf("update payer: %w", err)
	}
	return payer, nil
}

func (r *PGXPayersRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM payers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete payer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrPayerNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Facilities
// ---------------------------------------------------------------------------

const facilityColumns = "id, name, address, phone, created_at, updated_at"

// FacilityUpdate carries optional fields for a partial facility update.
type FacilityUpdate struct {
	Name    *string
	Address *string
	Phone   *string
}

// FacilitiesRepository declares persistence operations for facilities.
type FacilitiesRepository interface {
	Create(ctx context.Context, name string, address, phone *string) (*entity.Facility, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Facility, error)
	List(ctx context.Context, filter dto.ListFilter) ([]entity.Facility, error)
	Update(ctx context.Context, id uuid.UUID, upd FacilityUpdate) (*entity.Facility, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXFacilitiesRepository implements FacilitiesRepository with pgx.
type PGXFacilitiesRepository struct {
	pool pgxPool
}

// NewPGXFacilitiesRepository instantiates a facilities repository.
func NewPGXFacilitiesRepository(pool *pgxpool.Pool) *PGXFacilitiesRepository {
	return &PGXFacilitiesRepository{pool: pool}
}

func scanFacility(row pgx.Row) (*entity.Facility, error) {
	var f entity.Facility
	if err := row.Scan(&f.ID, &f.Name, &f.Address, &f.Phone, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *PGXFacilitiesRepository) Create(ctx context.Context, name string, address, phone *string) (*entity.Facility, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO facilities (name, address, phone)
        VALUES ($1, $2, $3)
        RETURNING `+facilityColumns+`
    `, name, address, phone)

	facility, err := scanFacility(row)
	if err != nil {
		return nil, fmt.Errorf("insert facility: %w", err)
	}
	return facility, nil
}

func (r *PGXFacilitiesRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Facility, error) {
	facility, err := scanFacility(r.pool.QueryRow(ctx, `SELECT `+facilityColumns+` FROM facilities WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFacilityNotFound
		}
		return nil, fmt.Errorf("query facility: %w", err)
	}
	return facility, nil
}

func (r *PGXFacilitiesRepository) List(ctx context.Context, filter dto.ListFilter) ([]entity.Facility, error) {
	filter.Normalize()
	rows, err := r.pool.Query(ctx, `
        SELECT `+facilityColumns+` FROM facilities
        WHERE ($1 = '' OR name ILIKE '%' || $1 || '%')
        ORDER BY name
        LIMIT $2 OFFSET $3
    `, filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, fmt.Errorf("list facilities: %w", err)
	}
	defer rows.Close()

	var facilities []entity.Facility
	for rows.Next() {
		facility, err := scanFacility(rows)
		if err != nil {
			return nil, fmt.Errorf("scan facility row: %w", err)
		}
		facilities = append(facilities, *facility)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate facilities: %w", err)
	}
	return facilities, nil
}

func (r *PGXFacilitiesRepository) Update(ctx context.Context, id uuid.UUID, upd FacilityUpdate) (*entity.Facility, error) {
	b := &updateBuilder{}
	set(b, "name", upd.Name)
	set(b, "address", upd.Address)
	set(b, "phone", upd.Phone)

	if b.empty() {
		return r.FindByID(ctx, id)
	}

	query, args := b.statement("facilities", facilityColumns, id)
	facility, err := scanFacility(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrFacilityNotFound
		}
		return nil, fmt.Errorf("update facility: %w", err)
	}
	return facility, nil
}

func (r *PGXFacilitiesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM facilities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete facility: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrFacilityNotFound
	}
	return nil
}

// ---------------------------------------------------------------------------
// Statuses
// ---------------------------------------------------------------------------

const statusColumns = "id, name, color, sort_order, created_at, updated_at"

// StatusUpdate carries optional fields for a partial status update.
type StatusUpdate struct {
	Name      *string
	Color     *string
	SortOrder *int
}

// StatusesRepository declares persistence operations for case statuses.
type StatusesRepository interface {
	Create(ctx context.Context, name, color string, sortOrder int) (*entity.Status, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Status, error)
	List(ctx context.Context) ([]entity.Status, error)
	Update(ctx context.Context, id uuid.UUID, upd StatusUpdate) (*entity.Status, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// PGXStatusesRepository implements StatusesRepository with pgx.
type PGXStatusesRepository struct {
	pool pgxPool
}

// NewPGXStatusesRepository instantiates a statuses repository.
func NewPGXStatusesRepository(pool *pgxpool.Pool) *PGXStatusesRepository {
	return &PGXStatusesRepository{pool: pool}
}

func scanStatus(row pgx.Row) (*entity.Status, error) {
	var s entity.Status
	if err := row.Scan(&s.ID, &s.Name, &s.Color, &s.SortOrder, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *PGXStatusesRepository) Create(ctx context.Context, name, color string, sortOrder int) (*entity.Status, error) {
	row := r.pool.QueryRow(ctx, `
        INSERT INTO statuses (name, color, sort_order)
        VALUES ($1, $2, $3)
        RETURNING `+statusColumns+`
    `, name, color, sortOrder)

	status, err := scanStatus(row)
	if err != nil {
		if isUniqueViolation(err, "statuses_name_key") {
			return nil, fmt.Errorf("%w: %v", ErrStatusNameDuplicate, err)
		}
		return nil, fmt.Errorf("insert status: %w", err)
	}
	return status, nil
}

func (r *PGXStatusesRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Status, error) {
	status, err := scanStatus(r.pool.QueryRow(ctx, `SELECT `+statusColumns+` FROM statuses WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStatusNotFound
		}
		return nil, fmt.Errorf("query status: %w", err)
	}
	return status, nil
}

func (r *PGXStatusesRepository) List(ctx context.Context) ([]entity.Status, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+statusColumns+` FROM statuses ORDER BY sort_order, name`)
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	defer rows.Close()

	var statuses []entity.Status
	for rows.Next() {
		status, err := scanStatus(rows)
		if err != nil {
			return nil, fmt.Errorf("scan status row: %w", err)
		}
		statuses = append(statuses, *status)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate statuses: %w", err)
	}
	return statuses, nil
}

func (r *PGXStatusesRepository) Update(ctx context.Context, id uuid.UUID, upd StatusUpdate) (*entity.Status, error) {
	b := &updateBuilder{}
	set(b, "name", upd.Name)
	set(b, "color", upd.Color)
	set(b, "sort_order", upd.SortOrder)

	if b.empty() {
		return r.FindByID(ctx, id)
	}

	query, args := b.statement("statuses", statusColumns, id)
	status, err := scanStatus(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrStatusNotFound
		}
		if isUniqueViolation(err, "statuses_name_key") {
			return nil, fmt.Errorf("%w: %v", ErrStatusNameDuplicate, err)
		}
		return nil, fmt.Errorf("update status: %w", err)
	}
	return status, nil
}

func (r *PGXStatusesRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM statuses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrStatusNotFound
	}
	return nil
}
