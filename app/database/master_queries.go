package database

import (
	"database/sql"
	"errors"

	"github.com/safetyharish2002-gif/tatwadarsha-erp/app/models"
)

// ErrDuplicateMasterItem is returned when an item name already exists in
// the target master list.
var ErrDuplicateMasterItem = errors.New("master item already exists")

// EnsureMaster resolves a master list by name, creating it on first use.
func EnsureMaster(db *sql.DB, name string) (*models.Master, error) {
	m := &models.Master{Name: name}
	err := db.QueryRow(`INSERT INTO masters (master_name) VALUES ($1)
		ON CONFLICT (master_name) DO UPDATE SET master_name = EXCLUDED.master_name
		RETURNING id`, name).Scan(&m.ID)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func GetMasters(db *sql.DB) ([]*models.Master, error) {
	rows, err := db.Query(`SELECT id, master_name FROM masters ORDER BY master_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var masters []*models.Master
	for rows.Next() {
		m := &models.Master{}
		if err := rows.Scan(&m.ID, &m.Name); err != nil {
			return nil, err
		}
		masters = append(masters, m)
	}
	return masters, rows.Err()
}

// GetMasterItems returns the entries of one master list by name. A master
// that does not exist yet simply has no items.
func GetMasterItems(db *sql.DB, masterName string) ([]*models.MasterItem, error) {
	rows, err := db.Query(`SELECT i.id, i.master_id, i.name
		FROM master_items i
		JOIN masters m ON m.id = i.master_id
		WHERE m.master_name = $1
		ORDER BY i.name ASC`, masterName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*models.MasterItem
	for rows.Next() {
		it := &models.MasterItem{}
		if err := rows.Scan(&it.ID, &it.MasterID, &it.Name); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// AddMasterItem appends an entry to a master list, creating the list first
// if needed. Duplicate names within one list are rejected by lookup.
func AddMasterItem(db *sql.DB, masterName, itemName string) (*models.MasterItem, error) {
	m, err := EnsureMaster(db, masterName)
	if err != nil {
		return nil, err
	}

	var exists bool
	err = db.QueryRow(`SELECT EXISTS (SELECT 1 FROM master_items WHERE master_id = $1 AND name = $2)`,
		m.ID, itemName).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateMasterItem
	}

	it := &models.MasterItem{MasterID: m.ID, Name: itemName}
	err = db.QueryRow(`INSERT INTO master_items (master_id, name) VALUES ($1, $2) RETURNING id`,
		m.ID, itemName).Scan(&it.ID)
	if err != nil {
		return nil, err
	}
	return it, nil
}

func UpdateMasterItem(db *sql.DB, id int, name string) error {
	res, err := db.Exec(`UPDATE master_items SET name = $2 WHERE id = $1`, id, name)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

func DeleteMasterItem(db *sql.DB, id int) error {
	res, err := db.Exec(`DELETE FROM master_items WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}
