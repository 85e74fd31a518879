// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// Keys of the local_kv table. They deliberately mirror the browser-storage
// keys of the original frontend so exported local databases stay readable.
const (
	kvKeySession = "currentUser"
	kvKeyToken   = "token"
	kvKeyDraft   = "learningPath_draft"
)

const (
	listLocalUsers = `
		SELECT
			id,
			name,
			email,
			password,
			created_at
		FROM local_users
		ORDER BY rowid;`

	deleteAllLocalUsers = `DELETE FROM local_users;`

	insertLocalUser = `
		INSERT INTO local_users (
			id,
			name,
			email,
			password,
			created_at
		) VALUES ($1, $2, $3, $4, $5);`

	upsertLocalKV = `
		INSERT INTO local_kv (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value;`

	getLocalKV = `
		SELECT value
		FROM local_kv
		WHERE key = $1;`

	deleteLocalKV = `DELETE FROM local_kv WHERE key = $1;`
)
