package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/npcgen/internal/game/culture"
	"github.com/cory-johannsen/npcgen/internal/game/npc"
)

// ErrProfileNotFound is returned when a profile lookup yields no results.
var ErrProfileNotFound = errors.New("profile not found")

// StoredProfile is a persisted profile with its row metadata.
type StoredProfile struct {
	Profile   npc.Profile
	CreatedAt time.Time
}

// ListFilter narrows List. Zero fields match everything.
type ListFilter struct {
	Zone  culture.Zone
	Era   culture.Era
	Limit int
}

// DefaultListLimit caps List when ListFilter.Limit is zero.
const DefaultListLimit = 100

// ProfileRepository provides profile persistence operations.
type ProfileRepository struct {
	db *pgxpool.Pool
}

// NewProfileRepository creates a ProfileRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool.
func NewProfileRepository(db *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Save stores p keyed by its ID. Profile IDs are derived from the request, so
// saving the same profile twice overwrites the body and keeps created_at.
//
// Precondition: p.ID must be non-empty.
// Postcondition: The profile is retrievable with Get(p.ID).
func (r *ProfileRepository) Save(ctx context.Context, p npc.Profile) error {
	if p.ID == "" {
		return errors.New("saving profile: id must not be empty")
	}
	body, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encoding profile %s: %w", p.ID, err)
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO profiles (id, seed, name, zone, era, degraded, body)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		ON CONFLICT (id) DO UPDATE
		SET seed = EXCLUDED.seed, name = EXCLUDED.name, zone = EXCLUDED.zone,
		    era = EXCLUDED.era, degraded = EXCLUDED.degraded, body = EXCLUDED.body`,
		p.ID, p.Seed, p.Name, string(p.Zone), string(p.Era), p.Degraded, body,
	)
	if err != nil {
		return fmt.Errorf("inserting profile %s: %w", p.ID, err)
	}
	return nil
}

// Get retrieves a profile by ID.
//
// Postcondition: Returns the StoredProfile or ErrProfileNotFound.
func (r *ProfileRepository) Get(ctx context.Context, id string) (StoredProfile, error) {
	var (
		body []byte
		out  StoredProfile
	)
	err := r.db.QueryRow(ctx,
		`SELECT body, created_at FROM profiles WHERE id = $1`, id,
	).Scan(&body, &out.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return StoredProfile{}, ErrProfileNotFound
		}
		return StoredProfile{}, fmt.Errorf("querying profile %s: %w", id, err)
	}
	if err := json.Unmarshal(body, &out.Profile); err != nil {
		return StoredProfile{}, fmt.Errorf("decoding profile %s: %w", id, err)
	}
	return out, nil
}

// List returns stored profiles matching f, oldest first.
//
// Postcondition: Returns a slice (may be empty) or a non-nil error.
func (r *ProfileRepository) List(ctx context.Context, f ListFilter) ([]StoredProfile, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := r.db.Query(ctx, `
		SELECT body, created_at FROM profiles
		WHERE ($1 = '' OR zone = $1) AND ($2 = '' OR era = $2)
		ORDER BY created_at ASC, id ASC
		LIMIT $3`,
		string(f.Zone), string(f.Era), limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	out := make([]StoredProfile, 0)
	for rows.Next() {
		var (
			body []byte
			sp   StoredProfile
		)
		if err := rows.Scan(&body, &sp.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning profile row: %w", err)
		}
		if err := json.Unmarshal(body, &sp.Profile); err != nil {
			return nil, fmt.Errorf("decoding profile row: %w", err)
		}
		out = append(out, sp)
	}
	return out, rows.Err()
}

// Delete removes a profile.
//
// Postcondition: Returns ErrProfileNotFound when no row was removed.
func (r *ProfileRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting profile %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}
