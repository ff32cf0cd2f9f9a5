package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/grknsolak/it-certification-app/internal/session"
)

// StoredResult is one persisted exam attempt.
type StoredResult struct {
	ID        int
	SessionID string
	Mode      session.Mode
	Result    session.Result
}

// Stats aggregates a user's history across all stored results.
type Stats struct {
	ExamsCompleted int
	AverageScore   int // rounded percent across attempts, 0 when empty
	TotalQuestions int
}

// QueryOpts configures result listing.
type QueryOpts struct {
	ExamID string // filter to one exam ("" = all)
	Limit  int    // max results (0 = unlimited)
}

// ResultRepo persists finished session results.
type ResultRepo interface {
	// Append stores a result. The per-question answers are serialized
	// alongside the aggregate numbers so review works across restarts.
	Append(ctx context.Context, sessionID string, mode session.Mode, r session.Result) error

	// List returns stored results, newest first.
	List(ctx context.Context, opts QueryOpts) ([]StoredResult, error)

	// Stats aggregates the whole history.
	Stats(ctx context.Context) (Stats, error)

	// Clear deletes every stored result.
	Clear(ctx context.Context) error
}

type resultRepo struct {
	db *sql.DB
}

func (r *resultRepo) Append(ctx context.Context, sessionID string, mode session.Mode, res session.Result) error {
	answers, err := json.Marshal(res.Answers)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO exam_results
			(session_id, exam_id, mode, score, total, correct, wrong, time_spent, completed_at, answers)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		sessionID, res.ExamID, string(mode),
		res.Score, res.TotalQuestions, res.CorrectAnswers, res.WrongAnswers,
		res.TimeSpent, res.CompletedAt.UTC(), string(answers),
	)
	if err != nil {
		return fmt.Errorf("insert result: %w", err)
	}
	return nil
}

func (r *resultRepo) List(ctx context.Context, opts QueryOpts) ([]StoredResult, error) {
	q := `
		SELECT id, session_id, exam_id, mode, score, total, correct, wrong, time_spent, completed_at, answers
		FROM exam_results`
	var args []any
	if opts.ExamID != "" {
		q += " WHERE exam_id = ?"
		args = append(args, opts.ExamID)
	}
	q += " ORDER BY completed_at DESC, id DESC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	var out []StoredResult
	for rows.Next() {
		var (
			sr          StoredResult
			mode        string
			completedAt time.Time
			answers     string
		)
		err := rows.Scan(
			&sr.ID, &sr.SessionID, &sr.Result.ExamID, &mode,
			&sr.Result.Score, &sr.Result.TotalQuestions,
			&sr.Result.CorrectAnswers, &sr.Result.WrongAnswers,
			&sr.Result.TimeSpent, &completedAt, &answers,
		)
		if err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		sr.Mode = session.Mode(mode)
		sr.Result.CompletedAt = completedAt
		if err := json.Unmarshal([]byte(answers), &sr.Result.Answers); err != nil {
			return nil, fmt.Errorf("decode answers for result %d: %w", sr.ID, err)
		}
		out = append(out, sr)
	}
	return out, rows.Err()
}

func (r *resultRepo) Stats(ctx context.Context) (Stats, error) {
	var (
		s   Stats
		avg sql.NullFloat64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*), AVG(score), COALESCE(SUM(total), 0)
		FROM exam_results`,
	).Scan(&s.ExamsCompleted, &avg, &s.TotalQuestions)
	if err != nil {
		return Stats{}, fmt.Errorf("query stats: %w", err)
	}
	if avg.Valid {
		s.AverageScore = int(avg.Float64 + 0.5)
	}
	return s, nil
}

func (r *resultRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM exam_results"); err != nil {
		return fmt.Errorf("clear results: %w", err)
	}
	return nil
}
