package database

import (
	"database/sql"
	"log"
)

var migrationTables = []string{
	`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			phone VARCHAR(20),
			is_active BOOLEAN DEFAULT true,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
			deleted_at TIMESTAMP WITH TIME ZONE
		)`,
	`CREATE TABLE IF NOT EXISTS sessions (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			expires_at TIMESTAMP WITH TIME ZONE NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	`CREATE TABLE IF NOT EXISTS accounts (
			id SERIAL PRIMARY KEY,
			account_type VARCHAR(20) NOT NULL,
			account_name VARCHAR(100) NOT NULL,
			account_holder_name VARCHAR(100),
			account_number VARCHAR(30),
			ifsc_code VARCHAR(20),
			branch_name VARCHAR(100),
			opening_balance NUMERIC(12,2) DEFAULT 0,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	`CREATE TABLE IF NOT EXISTS finance_transactions (
			id UUID PRIMARY KEY,
			seq BIGSERIAL,
			account_id INTEGER NOT NULL REFERENCES accounts(id),
			transaction_mode VARCHAR(10) NOT NULL,
			transaction_type VARCHAR(15) NOT NULL,
			amount NUMERIC(12,2) NOT NULL CHECK (amount > 0),
			category VARCHAR(100),
			description TEXT,
			attachment_url VARCHAR(255),
			tx_date DATE NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	`CREATE TABLE IF NOT EXISTS income_categories (
			id SERIAL PRIMARY KEY,
			category_name VARCHAR(100) UNIQUE NOT NULL,
			is_active BOOLEAN DEFAULT true
		)`,
	`CREATE TABLE IF NOT EXISTS expense_categories (
			id SERIAL PRIMARY KEY,
			category_name VARCHAR(100) UNIQUE NOT NULL,
			is_active BOOLEAN DEFAULT true
		)`,
	`CREATE TABLE IF NOT EXISTS fee_heads (
			id SERIAL PRIMARY KEY,
			name VARCHAR(200) NOT NULL,
			description TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	`CREATE TABLE IF NOT EXISTS fee_types (
			id SERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL
		)`,
	`CREATE TABLE IF NOT EXISTS fee_master (
			id SERIAL PRIMARY KEY,
			head_id INTEGER NOT NULL REFERENCES fee_heads(id),
			type_id INTEGER NOT NULL REFERENCES fee_types(id),
			amount NUMERIC(10,2) NOT NULL,
			start_date DATE,
			end_date DATE,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	`CREATE TABLE IF NOT EXISTS students (
			id VARCHAR(100) PRIMARY KEY,
			admission_date DATE,
			batch VARCHAR(50),
			branch VARCHAR(100),
			course VARCHAR(100),
			department VARCHAR(100),
			enrollment_no VARCHAR(100),
			last_exam_passed VARCHAR(200),
			previous_school VARCHAR(200),
			register_number VARCHAR(100),
			registration_no VARCHAR(100),
			roll_no VARCHAR(100),
			session VARCHAR(50),
			tenth_board VARCHAR(100),
			tenth_percent VARCHAR(20),
			twelfth_board VARCHAR(100),
			twelfth_percent VARCHAR(20),
			name VARCHAR(200) NOT NULL,
			gender VARCHAR(20),
			dob DATE,
			blood_group VARCHAR(10),
			email VARCHAR(255),
			aadhaar VARCHAR(20),
			phone VARCHAR(20),
			address TEXT,
			caste VARCHAR(50),
			religion VARCHAR(50),
			father_name VARCHAR(200),
			father_mobile VARCHAR(20),
			father_occupation VARCHAR(100),
			mother_name VARCHAR(200),
			mother_mobile VARCHAR(20),
			guardian_name VARCHAR(200),
			guardian_mobile VARCHAR(20),
			guardian_email VARCHAR(255),
			annual_income VARCHAR(50),
			account_holder VARCHAR(200),
			account_number VARCHAR(30),
			bank_name VARCHAR(100),
			ifsc VARCHAR(20),
			aadhaar_url VARCHAR(255),
			marksheet_url VARCHAR(255),
			migration_url VARCHAR(255),
			photo_url VARCHAR(255),
			tc_url VARCHAR(255),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	`CREATE TABLE IF NOT EXISTS dropouts (
			id VARCHAR(100) PRIMARY KEY,
			dropout_date DATE NOT NULL,
			dropout_reason VARCHAR(200),
			dropout_remarks TEXT,
			student_id VARCHAR(100),
			admission_date DATE,
			batch VARCHAR(50),
			branch VARCHAR(100),
			course VARCHAR(100),
			department VARCHAR(100),
			enrollment_no VARCHAR(100),
			last_exam_passed VARCHAR(200),
			previous_school VARCHAR(200),
			register_number VARCHAR(100),
			registration_no VARCHAR(100),
			roll_no VARCHAR(100),
			session VARCHAR(50),
			tenth_board VARCHAR(100),
			tenth_percent VARCHAR(20),
			twelfth_board VARCHAR(100),
			twelfth_percent VARCHAR(20),
			name VARCHAR(200) NOT NULL,
			gender VARCHAR(20),
			dob DATE,
			blood_group VARCHAR(10),
			email VARCHAR(255),
			aadhaar VARCHAR(20),
			phone VARCHAR(20),
			address TEXT,
			caste VARCHAR(50),
			religion VARCHAR(50),
			father_name VARCHAR(200),
			father_mobile VARCHAR(20),
			father_occupation VARCHAR(100),
			mother_name VARCHAR(200),
			mother_mobile VARCHAR(20),
			guardian_name VARCHAR(200),
			guardian_mobile VARCHAR(20),
			guardian_email VARCHAR(255),
			annual_income VARCHAR(50),
			account_holder VARCHAR(200),
			account_number VARCHAR(30),
			bank_name VARCHAR(100),
			ifsc VARCHAR(20),
			aadhaar_url VARCHAR(255),
			marksheet_url VARCHAR(255),
			migration_url VARCHAR(255),
			photo_url VARCHAR(255),
			tc_url VARCHAR(255),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	// No foreign key on student_id: assigned fees and their payment history
	// must survive a student's move to the dropouts table.
	`CREATE TABLE IF NOT EXISTS assigned_fees (
			id SERIAL PRIMARY KEY,
			student_id VARCHAR(100) NOT NULL,
			fee_master_id INTEGER NOT NULL REFERENCES fee_master(id),
			assigned_on DATE DEFAULT CURRENT_DATE,
			due_date DATE,
			amount NUMERIC(10,2) NOT NULL,
			status VARCHAR(20) DEFAULT 'Not Paid'
		)`,
	`CREATE TABLE IF NOT EXISTS fee_payments (
			id SERIAL PRIMARY KEY,
			assigned_fee_id INTEGER NOT NULL REFERENCES assigned_fees(id),
			amount_paid NUMERIC(10,2) NOT NULL CHECK (amount_paid > 0),
			paid_on DATE DEFAULT CURRENT_DATE,
			payment_mode VARCHAR(100),
			account_id INTEGER REFERENCES accounts(id),
			notes TEXT,
			metadata TEXT,
			attachment_url VARCHAR(255),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	`CREATE TABLE IF NOT EXISTS fee_receipts (
			id SERIAL PRIMARY KEY,
			payment_id INTEGER UNIQUE NOT NULL REFERENCES fee_payments(id) ON DELETE CASCADE,
			receipt_no VARCHAR(50) UNIQUE NOT NULL,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	`CREATE TABLE IF NOT EXISTS masters (
			id SERIAL PRIMARY KEY,
			master_name VARCHAR(100) UNIQUE NOT NULL
		)`,
	`CREATE TABLE IF NOT EXISTS master_items (
			id SERIAL PRIMARY KEY,
			master_id INTEGER NOT NULL REFERENCES masters(id) ON DELETE CASCADE,
			name VARCHAR(200) NOT NULL
		)`,
	`CREATE TABLE IF NOT EXISTS chat_users (
			user_id SERIAL PRIMARY KEY,
			username VARCHAR(100) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			full_name VARCHAR(200),
			role VARCHAR(20) NOT NULL,
			active BOOLEAN DEFAULT true
		)`,
	`CREATE TABLE IF NOT EXISTS finance_requests (
			id SERIAL PRIMARY KEY,
			requester_id INTEGER NOT NULL REFERENCES chat_users(user_id),
			requester_name VARCHAR(200),
			amount NUMERIC(12,2) NOT NULL,
			purpose TEXT NOT NULL,
			attachment VARCHAR(255),
			status VARCHAR(20) DEFAULT 'pending',
			remarks TEXT,
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	`CREATE TABLE IF NOT EXISTS finance_chat (
			id SERIAL PRIMARY KEY,
			request_id INTEGER NOT NULL REFERENCES finance_requests(id) ON DELETE CASCADE,
			sender_id INTEGER NOT NULL,
			sender_name VARCHAR(200),
			message TEXT,
			file_url VARCHAR(255),
			created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
	`CREATE TABLE IF NOT EXISTS exam_papers (
			id SERIAL PRIMARY KEY,
			student_id VARCHAR(100) NOT NULL,
			subject VARCHAR(200),
			exam_name VARCHAR(200) NOT NULL,
			exam_date DATE,
			file_url VARCHAR(255) NOT NULL,
			uploaded_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
		)`,
}

var migrationIndexes = []string{
	`CREATE INDEX IF NOT EXISTS idx_ftx_account_date ON finance_transactions(account_id, tx_date)`,
	`CREATE INDEX IF NOT EXISTS idx_ftx_type ON finance_transactions(transaction_type)`,
	`CREATE INDEX IF NOT EXISTS idx_assigned_fees_student ON assigned_fees(student_id)`,
	`CREATE INDEX IF NOT EXISTS idx_fee_payments_assigned ON fee_payments(assigned_fee_id)`,
	`CREATE INDEX IF NOT EXISTS idx_fee_payments_paid_on ON fee_payments(paid_on)`,
	`CREATE INDEX IF NOT EXISTS idx_exam_papers_student ON exam_papers(student_id)`,
	`CREATE INDEX IF NOT EXISTS idx_finance_chat_request ON finance_chat(request_id)`,
}

// Incremental changes for databases created before the current schema.
var migrationAlters = []string{
	`ALTER TABLE assigned_fees DROP CONSTRAINT IF EXISTS assigned_fees_student_id_fkey`,
	`ALTER TABLE finance_transactions ADD COLUMN IF NOT EXISTS seq BIGSERIAL`,
}

// RunMigrations creates the schema if it does not exist and applies the
// incremental changes older databases need.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	for _, q := range migrationTables {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Failed to create table: %v", err)
			return err
		}
	}

	for _, q := range migrationIndexes {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Failed to create index: %v", err)
			return err
		}
	}

	for _, q := range migrationAlters {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Failed to apply schema change: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
