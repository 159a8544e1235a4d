package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/ArowuTest/raffle-backend/internal/models"
	"github.com/ArowuTest/raffle-backend/internal/repositories"
)

// Entrants returns the pool repository
func (s *Store) Entrants() repositories.EntrantRepository { return &entrantRepository{s} }

// Winners returns the ledger repository
func (s *Store) Winners() repositories.WinnerRepository { return &winnerRepository{s} }

// Stats returns the counter repository
func (s *Store) Stats() repositories.StatsRepository { return &statsRepository{s} }

// AdminUsers returns the operator repository
func (s *Store) AdminUsers() repositories.AdminUserRepository { return &adminUserRepository{s} }

const entrantColumns = `seq, id, display_name, national_id, casino_account_id, payout_key_type, payout_key_value, created_at, schema_version`

type entrantRepository struct{ s *Store }

func (r *entrantRepository) Create(ctx context.Context, e *models.Entrant) error {
	q := r.s.rebind(`INSERT INTO entrants
		(id, display_name, national_id, casino_account_id, payout_key_type, payout_key_value, created_at, schema_version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING seq`)

	err := r.s.conn(ctx).QueryRowContext(ctx, q,
		e.ID, e.DisplayName, e.NationalID, e.CasinoAccountID,
		string(e.PayoutKeyType), e.PayoutKeyValue, toUnix(e.CreatedAt), e.SchemaVersion,
	).Scan(&e.Seq)
	if err != nil {
		if isUniqueViolation(err) {
			return repositories.ErrDuplicateNationalID
		}
		return err
	}
	return nil
}

func (r *entrantRepository) FindAll(ctx context.Context) ([]*models.Entrant, error) {
	rows, err := r.s.conn(ctx).QueryContext(ctx,
		`SELECT `+entrantColumns+` FROM entrants ORDER BY created_at DESC, seq DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entrants := []*models.Entrant{}
	for rows.Next() {
		e, err := scanEntrant(rows)
		if err != nil {
			return nil, err
		}
		entrants = append(entrants, e)
	}
	return entrants, rows.Err()
}

func (r *entrantRepository) FindByID(ctx context.Context, id string) (*models.Entrant, error) {
	row := r.s.conn(ctx).QueryRowContext(ctx,
		r.s.rebind(`SELECT `+entrantColumns+` FROM entrants WHERE id = ?`), id)
	e, err := scanEntrant(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	return e, err
}

func (r *entrantRepository) Delete(ctx context.Context, id string) error {
	res, err := r.s.conn(ctx).ExecContext(ctx, r.s.rebind(`DELETE FROM entrants WHERE id = ?`), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

func (r *entrantRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.s.conn(ctx).ExecContext(ctx, `DELETE FROM entrants`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *entrantRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.s.conn(ctx).QueryRowContext(ctx, `SELECT COUNT(*) FROM entrants`).Scan(&n)
	return n, err
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntrant(sc scanner) (*models.Entrant, error) {
	var (
		e         models.Entrant
		keyType   string
		createdAt int64
	)
	if err := sc.Scan(&e.Seq, &e.ID, &e.DisplayName, &e.NationalID, &e.CasinoAccountID,
		&keyType, &e.PayoutKeyValue, &createdAt, &e.SchemaVersion); err != nil {
		return nil, err
	}
	e.PayoutKeyType = models.PayoutKeyType(keyType)
	e.CreatedAt = fromUnix(createdAt)
	return &e, nil
}

const winnerColumns = `id, entrant_id, draw_id, display_name, national_id, casino_account_id,
	payout_key_type, payout_key_value, registered_at, won_at, status, updated_at, schema_version`

const winnerSelect = `SELECT seq, ` + winnerColumns + ` FROM winners`

type winnerRepository struct{ s *Store }

func (r *winnerRepository) Create(ctx context.Context, w *models.Winner) error {
	q := r.s.rebind(`INSERT INTO winners (` + winnerColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?) RETURNING seq`)

	err := r.s.conn(ctx).QueryRowContext(ctx, q,
		w.ID, w.EntrantID, w.DrawID, w.DisplayName, w.NationalID, w.CasinoAccountID,
		string(w.PayoutKeyType), w.PayoutKeyValue, toUnix(w.RegisteredAt), toUnix(w.WonAt),
		string(w.Status), toUnix(w.UpdatedAt), w.SchemaVersion,
	).Scan(&w.Seq)
	if err != nil {
		if isUniqueViolation(err) {
			return repositories.ErrDuplicateDraw
		}
		return err
	}
	return nil
}

func (r *winnerRepository) FindByID(ctx context.Context, id string) (*models.Winner, error) {
	row := r.s.conn(ctx).QueryRowContext(ctx,
		r.s.rebind(winnerSelect+` WHERE id = ?`), id)
	w, err := scanWinner(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	return w, err
}

func (r *winnerRepository) FindAll(ctx context.Context, limit int) ([]*models.Winner, error) {
	q := winnerSelect + ` ORDER BY won_at DESC, seq DESC`
	var args []any
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.s.conn(ctx).QueryContext(ctx, r.s.rebind(q), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	winners := []*models.Winner{}
	for rows.Next() {
		w, err := scanWinner(rows)
		if err != nil {
			return nil, err
		}
		winners = append(winners, w)
	}
	return winners, rows.Err()
}

func (r *winnerRepository) UpdateStatus(ctx context.Context, id string, status models.PayoutStatus, at time.Time) (*models.Winner, error) {
	res, err := r.s.conn(ctx).ExecContext(ctx,
		r.s.rebind(`UPDATE winners SET status = ?, updated_at = ? WHERE id = ?`),
		string(status), toUnix(at), id)
	if err != nil {
		return nil, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, repositories.ErrNotFound
	}
	return r.FindByID(ctx, id)
}

func (r *winnerRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.s.conn(ctx).QueryRowContext(ctx, `SELECT COUNT(*) FROM winners`).Scan(&n)
	return n, err
}

func scanWinner(sc scanner) (*models.Winner, error) {
	var (
		w                              models.Winner
		keyType, status                string
		registeredAt, wonAt, updatedAt int64
	)
	if err := sc.Scan(&w.Seq, &w.ID, &w.EntrantID, &w.DrawID, &w.DisplayName, &w.NationalID, &w.CasinoAccountID,
		&keyType, &w.PayoutKeyValue, &registeredAt, &wonAt, &status, &updatedAt, &w.SchemaVersion); err != nil {
		return nil, err
	}
	w.PayoutKeyType = models.PayoutKeyType(keyType)
	w.Status = models.PayoutStatus(status)
	w.RegisteredAt = fromUnix(registeredAt)
	w.WonAt = fromUnix(wonAt)
	w.UpdatedAt = fromUnix(updatedAt)
	return &w, nil
}

type statsRepository struct{ s *Store }

func (r *statsRepository) Get(ctx context.Context) (*models.RaffleStats, error) {
	var (
		total     int64
		updatedAt int64
	)
	err := r.s.conn(ctx).QueryRowContext(ctx,
		r.s.rebind(`SELECT total_raffles, updated_at FROM raffle_stats WHERE id = ?`),
		models.RaffleStatsID).Scan(&total, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return &models.RaffleStats{ID: models.RaffleStatsID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &models.RaffleStats{ID: models.RaffleStatsID, TotalRaffles: total, UpdatedAt: fromUnix(updatedAt)}, nil
}

// Increment is a single upsert statement, so concurrent draws cannot lose an update
func (r *statsRepository) Increment(ctx context.Context, at time.Time) (*models.RaffleStats, error) {
	q := r.s.rebind(`INSERT INTO raffle_stats (id, total_raffles, updated_at) VALUES (?, 1, ?)
		ON CONFLICT (id) DO UPDATE SET
			total_raffles = raffle_stats.total_raffles + 1,
			updated_at = excluded.updated_at
		RETURNING total_raffles, updated_at`)

	var total, updatedAt int64
	if err := r.s.conn(ctx).QueryRowContext(ctx, q, models.RaffleStatsID, toUnix(at)).Scan(&total, &updatedAt); err != nil {
		return nil, err
	}
	return &models.RaffleStats{ID: models.RaffleStatsID, TotalRaffles: total, UpdatedAt: fromUnix(updatedAt)}, nil
}

type adminUserRepository struct{ s *Store }

func (r *adminUserRepository) Upsert(ctx context.Context, u *models.AdminUser) error {
	q := r.s.rebind(`INSERT INTO admin_users (id, email, password_hash, role, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT (email) DO UPDATE SET
			password_hash = excluded.password_hash,
			role = excluded.role,
			updated_at = excluded.updated_at`)
	_, err := r.s.conn(ctx).ExecContext(ctx, q,
		u.ID, u.Email, u.PasswordHash, u.Role, toUnix(u.CreatedAt), toUnix(u.UpdatedAt))
	return err
}

func (r *adminUserRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var (
		u                    models.AdminUser
		createdAt, updatedAt int64
	)
	err := r.s.conn(ctx).QueryRowContext(ctx,
		r.s.rebind(`SELECT id, email, password_hash, role, created_at, updated_at FROM admin_users WHERE email = ?`),
		email).Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repositories.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	u.CreatedAt = fromUnix(createdAt)
	u.UpdatedAt = fromUnix(updatedAt)
	return &u, nil
}
