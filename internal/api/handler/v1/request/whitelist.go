package request

import (
	"errors"
	"mime/multipart"
	"path/filepath"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
)

// MaxDocumentSize caps whitelist document uploads at 5 MB.
const MaxDocumentSize = 5 * 1024 * 1024

var (
	errDocumentRequired = errors.New("a supporting document is required")
	errDocumentTooLarge = errors.New("the document must not exceed 5 MB")
	errDocumentNotPDF   = errors.New("the document must be a PDF file")
)

type SubmitWhitelistRequest struct {
	OrganizationName string
	Document         *multipart.FileHeader
}

func (req *SubmitWhitelistRequest) Validate() error {
	err := validation.Validate(req.OrganizationName,
		validation.Required, validation.Length(2, 150))
	if err != nil {
		return err
	}

	if req.Document == nil {
		return errDocumentRequired
	}
	if req.Document.Size > MaxDocumentSize {
		return errDocumentTooLarge
	}
	if strings.ToLower(filepath.Ext(req.Document.Filename)) != ".pdf" {
		return errDocumentNotPDF
	}

	return nil
}

type ReviewWhitelistRequest struct {
	Approved   *bool  `json:"approved"`
	AdminNotes string `json:"admin_notes,omitempty"`
}

func (req *ReviewWhitelistRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Approved, validation.NotNil),
		validation.Field(&req.AdminNotes, validation.Length(0, 1000)),
	)
}
