package database

import (
	"fmt"
	"log"
)

const createAuditTable = `CREATE TABLE IF NOT EXISTS audit_logs (
	day text,
	id timeuuid,
	user_id text,
	user_email text,
	action text,
	resource text,
	resource_id text,
	ip_address text,
	user_agent text,
	success boolean,
	error_msg text,
	timestamp timestamp,
	PRIMARY KEY ((day), id)
) WITH CLUSTERING ORDER BY (id DESC)`

// InsertAuditLog : une partition par jour, les plus récents en tête
const InsertAuditLog = `INSERT INTO audit_logs
	(day, id, user_id, user_email, action, resource, resource_id, ip_address, user_agent, success, error_msg, timestamp)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

const SelectAuditLogsByDay = `SELECT id, user_id, user_email, action, resource, resource_id, ip_address, user_agent, success, error_msg, timestamp
	FROM audit_logs WHERE day = ? LIMIT ?`

// EnsureAuditTable crée la table d'audit si elle n'existe pas
func EnsureAuditTable() error {
	session, err := GetAuditSession()
	if err != nil {
		return err
	}
	if err := session.Query(createAuditTable).Exec(); err != nil {
		return fmt.Errorf("création table audit_logs: %w", err)
	}
	log.Println("✅ Table audit_logs prête")
	return nil
}
