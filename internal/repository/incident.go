package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/emergensys/internal/ingest"
	"github.com/shenikar/emergensys/internal/models"
	"github.com/shenikar/emergensys/internal/service"
)

const (
	snapshotCacheKey = "incidents:snapshot"
	uniqueViolation  = "23505"
)

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

// NewIncidentRepository создает репозиторий. Без redisClient кэш снимков отключен.
func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

const incidentColumns = `
	key::text,
	report_id,
	type,
	description,
	location,
	location_updated_at,
	severity,
	status,
	victim_count,
	reporter_name,
	reporter_contact,
	media,
	assigned_team,
	assigned_team_name,
	response_time,
	created_at`

// Create сохраняет новую заявку; ключ и время создания назначает бд
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	location, err := json.Marshal(incident.Location)
	if err != nil {
		return fmt.Errorf("failed to marshal incident location: %w", err)
	}
	media := incident.Media
	if media == nil {
		media = []models.Media{}
	}
	mediaJSON, err := json.Marshal(media)
	if err != nil {
		return fmt.Errorf("failed to marshal incident media: %w", err)
	}

	query := `
		INSERT INTO incidents (report_id, type, description, location, severity, status, victim_count, reporter_name, reporter_contact, media)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING key::text, created_at;
	`
	err = r.db.QueryRow(ctx, query,
		incident.ID,
		incident.Type,
		incident.Description,
		location,
		string(incident.Severity),
		string(incident.Status),
		incident.VictimCount,
		incident.ReportedBy.Name,
		incident.ReportedBy.Contact,
		mediaJSON,
	).Scan(&incident.Key, &incident.Timestamp)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("report %s: %w", incident.ID, models.ErrDuplicateReportID)
		}
		return fmt.Errorf("failed to create incident: %w", err)
	}
	incident.Timestamp = incident.Timestamp.UTC()
	return nil
}

// GetByKey возвращает инцидент вместе с журналами по ключу хранилища
func (r *IncidentRepository) GetByKey(ctx context.Context, key string) (*models.Incident, error) {
	if _, err := uuid.Parse(key); err != nil {
		return nil, fmt.Errorf("incident with key %s: %w", key, models.ErrIncidentNotFound)
	}

	query := `SELECT ` + incidentColumns + ` FROM incidents WHERE key = $1;`
	rec, err := scanRecord(r.db.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with key %s: %w", key, models.ErrIncidentNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by key: %w", err)
	}

	events, err := r.listEvents(ctx, `WHERE incident_key = $1`, key)
	if err != nil {
		return nil, err
	}
	rec.Events = events[rec.Key]

	incident, _ := ingest.Normalize(rec)
	return incident, nil
}

// ListAll возвращает всю коллекцию; журналы подгружаются одним запросом
func (r *IncidentRepository) ListAll(ctx context.Context) ([]*models.Incident, error) {
	query := `SELECT ` + incidentColumns + ` FROM incidents ORDER BY created_at DESC;`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	records := make([]ingest.Record, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}

	events, err := r.listEvents(ctx, "")
	if err != nil {
		return nil, err
	}
	for i := range records {
		records[i].Events = events[records[i].Key]
	}

	return ingest.NormalizeAll(records), nil
}

// UpdateStatus пишет только status и одну запись журнала
func (r *IncidentRepository) UpdateStatus(ctx context.Context, key string, change models.StatusChange) error {
	return r.partialUpdate(ctx, key,
		`UPDATE incidents SET status = $1 WHERE key = $2;`,
		[]any{string(change.Status), key},
		models.OperationStatus, string(change.Status), "", change.At,
	)
}

// AssignTeam пишет только поля бригады и одну запись журнала
func (r *IncidentRepository) AssignTeam(ctx context.Context, key string, assignment models.TeamAssignment) error {
	return r.partialUpdate(ctx, key,
		`UPDATE incidents SET assigned_team = $1, assigned_team_name = $2 WHERE key = $3;`,
		[]any{assignment.TeamID, assignment.TeamName, key},
		models.OperationTeam, assignment.TeamID, assignment.TeamName, assignment.At,
	)
}

// AddNote добавляет заметку; сама строка инцидента не меняется
func (r *IncidentRepository) AddNote(ctx context.Context, key string, note models.Note) error {
	return r.partialUpdate(ctx, key,
		`SELECT 1 FROM incidents WHERE key = $1 FOR UPDATE;`,
		[]any{key},
		models.OperationNote, note.Text, note.Author, note.At,
	)
}

// UpdateLocation пишет только location и location_updated_at; журналы не меняются
func (r *IncidentRepository) UpdateLocation(ctx context.Context, key string, change models.LocationChange) error {
	location, err := json.Marshal(change.Location)
	if err != nil {
		return fmt.Errorf("failed to marshal incident location: %w", err)
	}
	return r.updateColumns(ctx, key,
		`UPDATE incidents SET location = $1, location_updated_at = $2 WHERE key = $3;`,
		location, change.At, key,
	)
}

// UpdateMedia записывает список вложений, загруженных после создания заявки
func (r *IncidentRepository) UpdateMedia(ctx context.Context, key string, media []models.Media) error {
	if media == nil {
		media = []models.Media{}
	}
	mediaJSON, err := json.Marshal(media)
	if err != nil {
		return fmt.Errorf("failed to marshal incident media: %w", err)
	}
	return r.updateColumns(ctx, key, `UPDATE incidents SET media = $1 WHERE key = $2;`, mediaJSON, key)
}

func (r *IncidentRepository) updateColumns(ctx context.Context, key, stmt string, args ...any) error {
	if _, err := uuid.Parse(key); err != nil {
		return fmt.Errorf("incident with key %s: %w", key, models.ErrIncidentNotFound)
	}
	cmdTag, err := r.db.Exec(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("failed to update incident: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with key %s: %w", key, models.ErrIncidentNotFound)
	}
	return nil
}

func (r *IncidentRepository) partialUpdate(ctx context.Context, key, stmt string, args []any, kind models.OperationKind, value, detail string, at time.Time) error {
	if _, err := uuid.Parse(key); err != nil {
		return fmt.Errorf("incident with key %s: %w", key, models.ErrIncidentNotFound)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	cmdTag, err := tx.Exec(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("failed to apply %s update: %w", kind, err)
	}
	// Проверка, была ли затронута строка; если RowsAffected() == 0, инцидента с таким ключом нет
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("incident with key %s: %w", key, models.ErrIncidentNotFound)
	}

	_, err = tx.Exec(ctx,
		`INSERT INTO incident_events (incident_key, kind, value, detail, at) VALUES ($1, $2, $3, $4, $5);`,
		key, string(kind), value, detail, at,
	)
	if err != nil {
		return fmt.Errorf("failed to append %s event: %w", kind, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit %s update: %w", kind, err)
	}
	return nil
}

func (r *IncidentRepository) listEvents(ctx context.Context, where string, args ...any) (map[string][]ingest.EventRecord, error) {
	query := `SELECT seq, incident_key::text, kind, value, detail, at FROM incident_events ` + where + ` ORDER BY seq;`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incident events: %w", err)
	}
	defer rows.Close()

	events := make(map[string][]ingest.EventRecord)
	for rows.Next() {
		var key string
		var e ingest.EventRecord
		if err := rows.Scan(&e.Seq, &key, &e.Kind, &e.Value, &e.Detail, &e.At); err != nil {
			return nil, fmt.Errorf("failed to scan incident event row: %w", err)
		}
		events[key] = append(events[key], e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error event iteration: %w", err)
	}
	return events, nil
}

func scanRecord(row pgx.Row) (ingest.Record, error) {
	var rec ingest.Record
	err := row.Scan(
		&rec.Key,
		&rec.ReportID,
		&rec.Type,
		&rec.Description,
		&rec.Location,
		&rec.LocationUpdatedAt,
		&rec.Severity,
		&rec.Status,
		&rec.VictimCount,
		&rec.ReporterName,
		&rec.ReporterContact,
		&rec.Media,
		&rec.AssignedTeam,
		&rec.AssignedTeamName,
		&rec.ResponseTime,
		&rec.CreatedAt,
	)
	return rec, err
}

// GetSnapshotFromCache пытается получить последнюю коллекцию из Redis; промах - nil, nil
func (r *IncidentRepository) GetSnapshotFromCache(ctx context.Context) ([]*models.Incident, error) {
	if r.redisClient == nil {
		return nil, nil
	}
	val, err := r.redisClient.Get(ctx, snapshotCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get snapshot from cache: %w", err)
	}

	var incidents []*models.Incident
	if err := json.Unmarshal(val, &incidents); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot from cache: %w", err)
	}
	return incidents, nil
}

// SetSnapshotCache сохраняет коллекцию в Redis на SNAPSHOT_CACHE_TTL
func (r *IncidentRepository) SetSnapshotCache(ctx context.Context, incidents []*models.Incident) error {
	if r.redisClient == nil {
		return nil
	}
	val, err := json.Marshal(incidents)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, snapshotCacheKey, val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set snapshot in cache: %w", err)
	}
	return nil
}

// InvalidateSnapshotCache удаляет коллекцию из Redis кэша
func (r *IncidentRepository) InvalidateSnapshotCache(ctx context.Context) error {
	if r.redisClient == nil {
		return nil
	}
	if err := r.redisClient.Del(ctx, snapshotCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate snapshot cache: %w", err)
	}
	return nil
}
