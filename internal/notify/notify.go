// Package notify shapes errors into the transient-notification payloads the
// admin frontend renders as toasts: a title, a human-readable description
// and a severity.
package notify

import (
	"errors"
	"fmt"

	"github.com/bokyaa/portfolio-backend/internal/projects/domain"
)

// Severity of a notice. Mirrors the two toast variants the frontend knows.
const (
	SeverityInfo  = "default"
	SeverityError = "destructive"
)

// Notice is one transient notification.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"variant"`
}

// Info builds a success notice.
func Info(title, description string) Notice {
	return Notice{Title: title, Description: description, Severity: SeverityInfo}
}

// FromError maps a domain error onto the notice the admin should see.
// Unknown errors get a generic storage message rather than leaking detail.
func FromError(err error) Notice {
	switch {
	case errors.Is(err, domain.ErrBadCredentials):
		return Notice{Title: "Login Failed", Description: "Invalid username or password.", Severity: SeverityError}
	case errors.Is(err, domain.ErrTooManyImages):
		return Notice{Title: "Too Many Images", Description: "You can upload a maximum of 5 images per project.", Severity: SeverityError}
	case errors.Is(err, domain.ErrNoImages):
		return Notice{Title: "Images Required", Description: "Please upload at least one image for the project.", Severity: SeverityError}
	case errors.Is(err, domain.ErrTitleRequired):
		return Notice{Title: "Title Required", Description: "Please give the project a title.", Severity: SeverityError}
	case errors.Is(err, domain.ErrQuotaExceeded):
		return Notice{Title: "Storage Error", Description: "Unable to save projects. Please check the server storage.", Severity: SeverityError}
	case errors.Is(err, domain.ErrNotFound):
		return Notice{Title: "Not Found", Description: "Project not found.", Severity: SeverityError}
	default:
		return Notice{Title: "Error", Description: err.Error(), Severity: SeverityError}
	}
}

// FileRejection describes one file dropped from an upload batch.
func FileRejection(name string, err error) Notice {
	switch {
	case errors.Is(err, domain.ErrNotImage):
		return Notice{
			Title:       "Invalid File Type",
			Description: fmt.Sprintf("%s is not a valid image file. Please select PNG, JPG, JPEG, GIF, or WebP files.", name),
			Severity:    SeverityError,
		}
	case errors.Is(err, domain.ErrImageTooLarge):
		return Notice{
			Title:       "File Too Large",
			Description: fmt.Sprintf("%s is larger than 5MB. Please select a smaller image.", name),
			Severity:    SeverityError,
		}
	default:
		return Notice{
			Title:       "Upload Failed",
			Description: fmt.Sprintf("Failed to read %s. Please try again.", name),
			Severity:    SeverityError,
		}
	}
}
