package database

import (
	"database/sql"
	"fmt"

	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/models"
)

func GetChatUserByUsername(db *sql.DB, username string) (*models.ChatUser, error) {
	u := &models.ChatUser{}
	err := db.QueryRow(`SELECT user_id, username, password, COALESCE(full_name,''), role, active
		FROM chat_users WHERE username = $1`, username).
		Scan(&u.UserID, &u.Username, &u.Password, &u.FullName, &u.Role, &u.Active)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func GetChatUserByID(db *sql.DB, id int) (*models.ChatUser, error) {
	u := &models.ChatUser{}
	err := db.QueryRow(`SELECT user_id, username, password, COALESCE(full_name,''), role, active
		FROM chat_users WHERE user_id = $1`, id).
		Scan(&u.UserID, &u.Username, &u.Password, &u.FullName, &u.Role, &u.Active)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func CreateChatUser(db *sql.DB, u *models.ChatUser) error {
	return db.QueryRow(`INSERT INTO chat_users (username, password, full_name, role, active)
		VALUES ($1, $2, $3, $4, $5) RETURNING user_id`,
		u.Username, u.Password, u.FullName, u.Role, u.Active).Scan(&u.UserID)
}

const requestCols = `r.id, r.requester_id, COALESCE(r.requester_name,''), r.amount,
	r.purpose, r.attachment, r.status, COALESCE(r.remarks,''), r.created_at,
	(SELECT COUNT(*) FROM finance_chat c WHERE c.request_id = r.id)`

func scanRequest(r rowScanner) (*models.FinanceRequest, error) {
	fr := &models.FinanceRequest{}
	err := r.Scan(&fr.ID, &fr.RequesterID, &fr.RequesterName, &fr.Amount,
		&fr.Purpose, &fr.Attachment, &fr.Status, &fr.Remarks, &fr.CreatedAt,
		&fr.MsgCount)
	if err != nil {
		return nil, err
	}
	return fr, nil
}

// GetFinanceRequests lists requests, newest first. An empty status returns
// all; a requester id above zero restricts to that accountant's own.
func GetFinanceRequests(db *sql.DB, status string, requesterID int) ([]*models.FinanceRequest, error) {
	query := `SELECT ` + requestCols + ` FROM finance_requests r WHERE 1=1`
	var args []interface{}

	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND r.status = $%d", len(args))
	}
	if requesterID > 0 {
		args = append(args, requesterID)
		query += fmt.Sprintf(" AND r.requester_id = $%d", len(args))
	}
	query += ` ORDER BY r.created_at DESC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []*models.FinanceRequest
	for rows.Next() {
		fr, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		reqs = append(reqs, fr)
	}
	return reqs, rows.Err()
}

func GetFinanceRequestByID(db *sql.DB, id int) (*models.FinanceRequest, error) {
	row := db.QueryRow(`SELECT `+requestCols+` FROM finance_requests r WHERE r.id = $1`, id)
	return scanRequest(row)
}

func CreateFinanceRequest(db *sql.DB, r *models.FinanceRequest) error {
	return db.QueryRow(`INSERT INTO finance_requests
		(requester_id, requester_name, amount, purpose, attachment, status)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`,
		r.RequesterID, r.RequesterName, r.Amount, r.Purpose, r.Attachment,
		models.RequestPending).Scan(&r.ID, &r.CreatedAt)
}

// SettleFinanceRequest moves a pending request to approved or rejected.
// Requests already settled are left untouched and reported via sql.ErrNoRows.
func SettleFinanceRequest(db *sql.DB, id int, status models.RequestStatus, remarks string) error {
	res, err := db.Exec(`UPDATE finance_requests SET status = $2, remarks = $3
		WHERE id = $1 AND status = $4`,
		id, status, remarks, models.RequestPending)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

func GetChatMessages(db *sql.DB, requestID int) ([]*models.ChatMessage, error) {
	rows, err := db.Query(`SELECT id, request_id, sender_id, COALESCE(sender_name,''),
		COALESCE(message,''), file_url, created_at
		FROM finance_chat WHERE request_id = $1 ORDER BY created_at ASC, id ASC`, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []*models.ChatMessage
	for rows.Next() {
		m := &models.ChatMessage{}
		if err := rows.Scan(&m.ID, &m.RequestID, &m.SenderID, &m.SenderName,
			&m.Message, &m.FileURL, &m.CreatedAt); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

func CreateChatMessage(db *sql.DB, m *models.ChatMessage) error {
	return db.QueryRow(`INSERT INTO finance_chat
		(request_id, sender_id, sender_name, message, file_url)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at`,
		m.RequestID, m.SenderID, m.SenderName, m.Message, m.FileURL).
		Scan(&m.ID, &m.CreatedAt)
}
