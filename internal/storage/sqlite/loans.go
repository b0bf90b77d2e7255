package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/chama/internal/models"
	"github.com/mmynk/chama/internal/storage"
)

const loanColumns = "id, member_id, chama_id, amount, requested_at, status, repaid_at"

func scanLoan(row interface{ Scan(...any) error }) (*models.Loan, error) {
	loan := &models.Loan{}
	var requestedAt int64
	var status string
	var repaidAt sql.NullInt64
	if err := row.Scan(&loan.ID, &loan.MemberID, &loan.ChamaID, &loan.Amount, &requestedAt, &status, &repaidAt); err != nil {
		return nil, err
	}
	loan.RequestDate = fromUnix(requestedAt)
	loan.Status = models.LoanStatus(status)
	if repaidAt.Valid {
		t := fromUnix(repaidAt.Int64)
		loan.RepaymentDate = &t
	}
	return loan, nil
}

// CreateLoan persists a new loan. New loans default to Pending.
func (s *SQLiteStore) CreateLoan(ctx context.Context, loan *models.Loan) error {
	if loan.ID == "" {
		loan.ID = uuid.New().String()
	}
	if loan.RequestDate.IsZero() {
		loan.RequestDate = today()
	}
	if loan.Status == "" {
		loan.Status = models.LoanPending
	}
	loan.RequestDate = storage.Truncate(loan.RequestDate)

	var repaidAt interface{} = nil
	if loan.RepaymentDate != nil {
		t := storage.Truncate(*loan.RepaymentDate)
		loan.RepaymentDate = &t
		repaidAt = t.Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO loans (`+loanColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		loan.ID, loan.MemberID, loan.ChamaID, loan.Amount, loan.RequestDate.Unix(), string(loan.Status), repaidAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert loan: %w", err)
	}
	return nil
}

// GetLoan retrieves a loan by ID.
func (s *SQLiteStore) GetLoan(ctx context.Context, loanID string) (*models.Loan, error) {
	loan, err := scanLoan(s.db.QueryRowContext(ctx,
		"SELECT "+loanColumns+" FROM loans WHERE id = ?", loanID))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("loan %s: %w", loanID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get loan: %w", err)
	}
	return loan, nil
}

// ListLoans retrieves the loans of a chama, or all loans when chamaID is empty.
func (s *SQLiteStore) ListLoans(ctx context.Context, chamaID string) ([]*models.Loan, error) {
	query := "SELECT " + loanColumns + " FROM loans"
	var args []any
	if chamaID != "" {
		query += " WHERE chama_id = ?"
		args = append(args, chamaID)
	}
	query += " ORDER BY rowid"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	var loans []*models.Loan
	for rows.Next() {
		loan, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, loan)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate loans: %w", err)
	}
	return loans, nil
}

// UpdateLoanStatus moves a loan from one status to another.
// The UPDATE is conditional on the current status, so two concurrent
// decisions on the same loan cannot both succeed.
func (s *SQLiteStore) UpdateLoanStatus(ctx context.Context, loanID string, from, to models.LoanStatus, repaidAt *time.Time) (*models.Loan, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var repaid interface{} = nil
	if repaidAt != nil {
		repaid = repaidAt.Unix()
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE loans SET status = ?, repaid_at = COALESCE(?, repaid_at)
		 WHERE id = ? AND status = ?`,
		string(to), repaid, loanID, string(from),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update loan status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read rows affected: %w", err)
	}

	if affected == 0 {
		var current string
		err := tx.QueryRowContext(ctx, "SELECT status FROM loans WHERE id = ?", loanID).Scan(&current)
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("loan %s: %w", loanID, storage.ErrNotFound)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to check loan existence: %w", err)
		}
		return nil, fmt.Errorf("loan %s is %s, expected %s: %w", loanID, current, from, storage.ErrStatusConflict)
	}

	loan, err := scanLoan(tx.QueryRowContext(ctx, "SELECT "+loanColumns+" FROM loans WHERE id = ?", loanID))
	if err != nil {
		return nil, fmt.Errorf("failed to reload loan: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return loan, nil
}
