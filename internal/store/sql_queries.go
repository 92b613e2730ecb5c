package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const usersTable = "users"

// sqlite understands "?" placeholders only.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildCreateUserQuery builds the INSERT that registers a user and returns
// the assigned account id together with the creation timestamp.
func buildCreateUserQuery(username, verifier string) (string, []any, error) {
	query, args, err := psql.
		Insert(usersTable).
		Columns("username", "verifier").
		Values(username, verifier).
		Suffix("RETURNING account_id, created_at").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildLookupUserQuery(username string) (string, []any, error) {
	query, args, err := psql.
		Select("account_id", "username", "verifier", "created_at").
		From(usersTable).
		Where(sq.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildUserExistsQuery(username string) (string, []any, error) {
	query, args, err := psql.
		Select("COUNT(1)").
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
