package models

import (
	"fmt"
	"strings"

	"github.com/eduproject/catalog/errs"
)

// FileType is the kind of downloadable asset. Only two are supported.
type FileType string

const (
	FileTypeExcel FileType = "excel"
	FileTypeJSON  FileType = "json"
)

// Valid reports whether the file type is one of the supported kinds.
func (t FileType) Valid() bool {
	return t == FileTypeExcel || t == FileTypeJSON
}

// DownloadItem is a downloadable resource listed on the resources page.
type DownloadItem struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	FileURL     string   `json:"fileUrl"`
	FileType    FileType `json:"fileType"`
	Order       int      `json:"order"`
}

func (d DownloadItem) IsNew() bool {
	return d.ID == ""
}

// Validate enforces the required fields of a resource before any write.
func (d DownloadItem) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return errs.NewMissingRequiredFieldError("title")
	}
	if strings.TrimSpace(d.FileURL) == "" {
		return errs.NewMissingRequiredFieldError("fileUrl")
	}
	if !d.FileType.Valid() {
		return errs.NewInvalidFieldError("fileType", fmt.Sprintf("unsupported file type %q", d.FileType))
	}
	return nil
}

// NewDownloadItem returns an unsaved resource placed after count existing ones.
func NewDownloadItem(count int) DownloadItem {
	return DownloadItem{
		FileType: FileTypeExcel,
		Order:    count + 1,
	}
}
