package repository

const (
	selectEmployee = `SELECT
		e.id,
		e.full_name,
		e.role,
		e.monthly_limit,
		e.face_descriptor,
		e.face_photo,
		e.telegram_chat_id,
		e.email
	FROM employees e`

	selectSession = `SELECT
		id,
		card_uid,
		employee_id,
		passed,
		frames_processed,
		created_at,
		expires_at
	FROM liveness_sessions`

	sessionColumns = `id, card_uid, employee_id, passed, frames_processed, created_at, expires_at`
)
