package models

import "time"

// CompanyProfile is the single supplier record. Its GSTIN is the
// supplier side of every jurisdiction determination.
type CompanyProfile struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	GSTIN         string    `json:"gstin"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	Pincode       string    `json:"pincode"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	BankName      string    `json:"bank_name"`
	BankAccountNo string    `json:"bank_account_no"`
	BankIFSC      string    `json:"bank_ifsc"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// UpdateCompanyProfileRequest represents the request body for saving the profile
type UpdateCompanyProfileRequest struct {
	Name          string `json:"name"`
	GSTIN         string `json:"gstin"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Pincode       string `json:"pincode"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	BankName      string `json:"bank_name"`
	BankAccountNo string `json:"bank_account_no"`
	BankIFSC      string `json:"bank_ifsc"`
}
