package db

const sqliteRoles = `
CREATE TABLE IF NOT EXISTS roles (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT UNIQUE NOT NULL
);
`

const sqliteUsers = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    username TEXT UNIQUE NOT NULL,
    email TEXT UNIQUE NOT NULL,
    password_hash TEXT,
    sign_up_method TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL
);
`

const sqliteUserRoles = `
CREATE TABLE IF NOT EXISTS user_roles (
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    role_id INTEGER NOT NULL REFERENCES roles(id),
    PRIMARY KEY (user_id, role_id)
);
`

const sqliteAuthorizationRequests = `
CREATE TABLE IF NOT EXISTS oauth2_authorization_requests (
    state TEXT PRIMARY KEY,
    registration_id TEXT NOT NULL,
    code_verifier TEXT NOT NULL,
    expires_at TIMESTAMP NOT NULL
);
`

const postgresRoles = `
CREATE TABLE IF NOT EXISTS roles (
    id SERIAL PRIMARY KEY,
    name VARCHAR(20) UNIQUE NOT NULL
);
`

const postgresUsers = `
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    username VARCHAR(64) UNIQUE NOT NULL,
    email VARCHAR(254) UNIQUE NOT NULL,
    password_hash VARCHAR(120),
    sign_up_method VARCHAR(20) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL
);
`

const postgresUserRoles = `
CREATE TABLE IF NOT EXISTS user_roles (
    user_id INTEGER NOT NULL REFERENCES users(id) ON DELETE CASCADE,
    role_id INTEGER NOT NULL REFERENCES roles(id),
    PRIMARY KEY (user_id, role_id)
);
`

const postgresAuthorizationRequests = `
CREATE TABLE IF NOT EXISTS oauth2_authorization_requests (
    state VARCHAR(64) PRIMARY KEY,
    registration_id VARCHAR(40) NOT NULL,
    code_verifier VARCHAR(128) NOT NULL,
    expires_at TIMESTAMPTZ NOT NULL
);
`

func schemaFor(d Dialect) []string {
	if d == Postgres {
		return []string{postgresRoles, postgresUsers, postgresUserRoles, postgresAuthorizationRequests}
	}
	return []string{sqliteRoles, sqliteUsers, sqliteUserRoles, sqliteAuthorizationRequests}
}
