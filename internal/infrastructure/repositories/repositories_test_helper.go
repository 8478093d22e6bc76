package repositories

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open sqlite")
	return db
}

func mustExec(t *testing.T, db *gorm.DB, q string, args ...interface{}) {
	t.Helper()
	require.NoError(t, db.Exec(q, args...).Error, "exec failed: query=%s", q)
}

func createUserTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE users (
		id TEXT PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		phone TEXT,
		is_active BOOLEAN NOT NULL DEFAULT 1,
		email_verified BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME,
		updated_at DATETIME,
		deleted_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE user_profiles (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL UNIQUE,
		aadhaar_number TEXT,
		education TEXT,
		skills TEXT,
		experience_years INTEGER,
		profile_completed BOOLEAN NOT NULL DEFAULT 0,
		verification_status TEXT NOT NULL DEFAULT 'PENDING',
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createProjectTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE projects (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		category TEXT,
		terms_conditions TEXT,
		scope_of_work TEXT,
		required_skills TEXT,
		minimum_score TEXT NOT NULL DEFAULT '70',
		status TEXT NOT NULL DEFAULT 'ACTIVE',
		client_crm_url TEXT,
		created_at DATETIME,
		updated_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE assessments (
		id TEXT PRIMARY KEY,
		project_id TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		questions TEXT,
		max_score TEXT NOT NULL DEFAULT '100',
		time_limit_minutes INTEGER NOT NULL DEFAULT 30,
		created_at DATETIME,
		updated_at DATETIME
	);`)
}

func createApplicationTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE project_applications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		project_id TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'APPLIED',
		assessment_score TEXT,
		applied_at DATETIME NOT NULL,
		agreement_signed BOOLEAN NOT NULL DEFAULT 0,
		agreement_signed_at DATETIME,
		updated_at DATETIME,
		UNIQUE(user_id, project_id)
	);`)
	mustExec(t, db, `CREATE TABLE user_assessments (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		assessment_id TEXT NOT NULL,
		score TEXT NOT NULL,
		answers TEXT,
		completed_at DATETIME NOT NULL,
		UNIQUE(user_id, assessment_id)
	);`)
	mustExec(t, db, `CREATE TABLE certifications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		skill_name TEXT NOT NULL,
		score TEXT NOT NULL,
		assessment_id TEXT NOT NULL,
		earned_at DATETIME NOT NULL
	);`)
}

func createActivityTables(t *testing.T, db *gorm.DB) {
	mustExec(t, db, `CREATE TABLE notifications (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT 'SYSTEM',
		is_read BOOLEAN NOT NULL DEFAULT 0,
		created_at DATETIME
	);`)
	mustExec(t, db, `CREATE TABLE work_sessions (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		project_id TEXT NOT NULL,
		start_time DATETIME NOT NULL,
		end_time DATETIME,
		hours_worked TEXT,
		description TEXT,
		created_at DATETIME
	);`)
}
