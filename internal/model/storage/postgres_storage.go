package storage

import (
	"context"
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"
	"max.ks1230/khqr-bot/internal/logger"

	// postgres driver
	_ "github.com/lib/pq"
	"github.com/pkg/errors"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type config interface {
	DSN() string
}

type PostgresStorage struct {
	db *sql.DB
}

func NewPostgresStorage(config config) (*PostgresStorage, error) {
	db, err := sql.Open("postgres", config.DSN())
	if err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = db.Ping(); err != nil {
		return nil, errors.Wrap(err, "cannot connect to database")
	}
	if err = Migrate(db); err != nil {
		return nil, err
	}
	return &PostgresStorage{db}, nil
}

func (s *PostgresStorage) Close() {
	if err := s.db.Close(); err != nil {
		logger.Error("failed to close database", zap.Error(err))
	}
}

func (s *PostgresStorage) Subscribe(ctx context.Context, chatID int64) error {
	return s.setSubscribed(ctx, chatID, true)
}

func (s *PostgresStorage) Unsubscribe(ctx context.Context, chatID int64) error {
	return s.setSubscribed(ctx, chatID, false)
}

func (s *PostgresStorage) setSubscribed(ctx context.Context, chatID int64, subscribed bool) error {
	now := time.Now()
	query := psql.Insert("chats").
		Columns("id", "subscribed", "updated_at").
		Values(chatID, subscribed, now).
		Suffix("ON CONFLICT(id) DO UPDATE SET subscribed = ?, updated_at = ?", subscribed, now)

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "set subscribed")
}

func (s *PostgresStorage) SubscribedChats(ctx context.Context) ([]int64, error) {
	query := psql.Select("id").
		From("chats").
		Where(sq.Eq{"subscribed": true}).
		OrderBy("id")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get subscribed chats")
	}
	defer func() {
		rowErr := rows.Close()
		if rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, errors.Wrap(err, "get subscribed chats")
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "get subscribed chats")
	}
	return ids, nil
}

func (s *PostgresStorage) RecordPopup(ctx context.Context, chatID int64, currency string, shownAt time.Time) error {
	query := psql.Insert("popup_events").
		Columns("chat_id", "currency", "shown_at").
		Values(chatID, currency, shownAt)

	_, err := query.RunWith(s.db).ExecContext(ctx)
	return errors.Wrap(err, "record popup")
}

func (s *PostgresStorage) CountPopups(ctx context.Context, chatID int64, since time.Time) (map[string]int64, error) {
	query := psql.Select("currency", "count(*)").
		From("popup_events").
		Where(sq.Eq{"chat_id": chatID}).
		Where(sq.GtOrEq{"shown_at": since}).
		GroupBy("currency")

	rows, err := query.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "count popups")
	}
	defer func() {
		rowErr := rows.Close()
		if rowErr != nil {
			logger.Error("error closing rows", zap.Error(rowErr))
		}
	}()

	res := make(map[string]int64)
	for rows.Next() {
		var (
			curr  string
			count int64
		)
		if err = rows.Scan(&curr, &count); err != nil {
			return nil, errors.Wrap(err, "count popups")
		}
		res[curr] = count
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "count popups")
	}
	return res, nil
}
