// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"
)

// sb is the shared statement builder. SQLite uses bare question-mark
// placeholders.
var sb = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectRecordsQuery(table, userID string) (string, []any, error) {
	return sb.Select("data").
		From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
}

func buildSelectRecordQuery(table, userID, recordID string) (string, []any, error) {
	return sb.Select("data").
		From(table).
		Where(sq.Eq{"user_id": userID, "id": recordID}).
		ToSql()
}

func buildDeleteRecordQuery(table, userID, recordID string) (string, []any, error) {
	return sb.Delete(table).
		Where(sq.Eq{"user_id": userID, "id": recordID}).
		ToSql()
}

func buildDeleteUserRecordsQuery(table, userID string) (string, []any, error) {
	return sb.Delete(table).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildUpsertCipherQuery(userID, cipherID string, folderID, organizationID *string, revisionDate time.Time, data string) (string, []any, error) {
	return sb.Insert("ciphers").
		Columns("user_id", "id", "folder_id", "organization_id", "revision_date", "data").
		Values(userID, cipherID, folderID, organizationID, revisionDate, data).
		Suffix(`ON CONFLICT (user_id, id) DO UPDATE SET
			folder_id = excluded.folder_id,
			organization_id = excluded.organization_id,
			revision_date = excluded.revision_date,
			data = excluded.data`).
		ToSql()
}

func buildUpsertFolderQuery(userID, folderID string, revisionDate time.Time, data string) (string, []any, error) {
	return sb.Insert("folders").
		Columns("user_id", "id", "revision_date", "data").
		Values(userID, folderID, revisionDate, data).
		Suffix(`ON CONFLICT (user_id, id) DO UPDATE SET
			revision_date = excluded.revision_date,
			data = excluded.data`).
		ToSql()
}

func buildUpsertCollectionQuery(userID, collectionID, data string) (string, []any, error) {
	return sb.Insert("collections").
		Columns("user_id", "id", "data").
		Values(userID, collectionID, data).
		Suffix(`ON CONFLICT (user_id, id) DO UPDATE SET data = excluded.data`).
		ToSql()
}

func buildUpsertSendQuery(userID, sendID string, revisionDate time.Time, data string) (string, []any, error) {
	return sb.Insert("sends").
		Columns("user_id", "id", "revision_date", "data").
		Values(userID, sendID, revisionDate, data).
		Suffix(`ON CONFLICT (user_id, id) DO UPDATE SET
			revision_date = excluded.revision_date,
			data = excluded.data`).
		ToSql()
}

func buildUpsertPolicyQuery(userID, policyID, data string) (string, []any, error) {
	return sb.Insert("policies").
		Columns("user_id", "id", "data").
		Values(userID, policyID, data).
		Suffix(`ON CONFLICT (user_id, id) DO UPDATE SET data = excluded.data`).
		ToSql()
}

func buildUpsertDomainsQuery(userID, data string) (string, []any, error) {
	return sb.Insert("domains").
		Columns("user_id", "data").
		Values(userID, data).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET data = excluded.data`).
		ToSql()
}

func buildSelectDomainsQuery(userID string) (string, []any, error) {
	return sb.Select("data").
		From("domains").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildClearFolderFromCiphersQuery(userID, folderID string) (string, []any, error) {
	return sb.Update("ciphers").
		Set("folder_id", nil).
		Set("data", sq.Expr("json_set(data, '$.folderId', NULL)")).
		Where(sq.Eq{"user_id": userID, "folder_id": folderID}).
		ToSql()
}

func buildCipherCountQuery(userID string) (string, []any, error) {
	return sb.Select("COUNT(*)").
		From("ciphers").
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}
