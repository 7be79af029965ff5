package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "uatf-curricular/backend/pkg/errors"
)

// ── shared errors ──

var (
	ErrPermissionDenied = apperrors.New(apperrors.KindPermissionDenied, 10003, "you do not have permission to perform this action")
	ErrInvalidDate      = apperrors.New(apperrors.KindValidation, 10005, "dates must use the YYYY-MM-DD format")
	ErrStorageFailure   = apperrors.New(apperrors.KindStorageFailure, 10006, "file storage is unavailable")
)

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// parseDatePtr nil leaves the field alone (ok=false); "" clears it
func parseDatePtr(raw *string) (value *time.Time, ok bool, err error) {
	if raw == nil {
		return nil, false, nil
	}
	if *raw == "" {
		return nil, true, nil
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, true, ErrInvalidDate.Wrap(err)
	}
	return &t, true, nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
