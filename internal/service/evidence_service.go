package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"uatf-curricular/backend/internal/dto"
	"uatf-curricular/backend/internal/model"
	"uatf-curricular/backend/internal/repository"
	apperrors "uatf-curricular/backend/pkg/errors"
	"uatf-curricular/backend/pkg/storage"
)

// MaxEvidenceSize upload limit, inclusive
const MaxEvidenceSize int64 = 50 << 20

// DefaultMimeType recorded when the client declares none
const DefaultMimeType = "application/octet-stream"

// evidenceKeyPrefix storage namespace of academic commission attachments
const evidenceKeyPrefix = "comision_academica"

var allowedEvidenceExt = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true,
	".xls": true, ".xlsx": true,
	".ppt": true, ".pptx": true,
	".txt": true, ".zip": true, ".rar": true,
}

// ── evidence errors ──

var (
	ErrEvidenceNotFound    = apperrors.New(apperrors.KindNotFound, 15001, "evidence not found")
	ErrEvidenceNotAccepted = apperrors.New(apperrors.KindNotFound, 15002, "files can only be attached to the Academic Commission (CA) phase")
	ErrFileTooLarge        = apperrors.New(apperrors.KindValidation, 15003, "file too large: the limit is 50 MB")
	ErrUnsupportedFormat   = apperrors.New(apperrors.KindValidation, 15004, "unsupported format: accepted formats are PDF, Word, Excel, PowerPoint, TXT, ZIP, RAR")
	ErrEvidenceFileMissing = apperrors.New(apperrors.KindNotFound, 15005, "the stored file no longer exists")
)

// Upload incoming file
type Upload struct {
	Filename    string
	Size        int64
	ContentType string
	Description string
	Body        io.Reader
}

// Download stored file ready to stream; the caller closes Body
type Download struct {
	Body        io.ReadCloser
	Filename    string
	ContentType string
	Size        int64
}

// EvidenceService attachments of academic commission progress rows
type EvidenceService interface {
	Upload(ctx context.Context, actor Actor, progressID string, up *Upload) (*dto.EvidenceResponse, error)
	List(ctx context.Context, progressID string) ([]dto.EvidenceResponse, error)
	// Download performs no role check; any authenticated caller may fetch a file
	Download(ctx context.Context, evidenceID string) (*Download, error)
	Delete(ctx context.Context, actor Actor, evidenceID string) error
}

type evidenceService struct {
	repo   *repository.Repository
	store  storage.Storage
	clock  Clock
	logger *zap.Logger
}

// NewEvidenceService creates an EvidenceService
func NewEvidenceService(repo *repository.Repository, store storage.Storage, clock Clock, logger *zap.Logger) EvidenceService {
	return &evidenceService{repo: repo, store: store, clock: clock, logger: logger}
}

// ValidateEvidenceFile size and extension checks, in that order
func ValidateEvidenceFile(filename string, size int64) error {
	if size > MaxEvidenceSize {
		return ErrFileTooLarge
	}
	if !allowedEvidenceExt[strings.ToLower(filepath.Ext(filename))] {
		return ErrUnsupportedFormat
	}
	return nil
}

// ────────────────────── Upload ──────────────────────

func (s *evidenceService) Upload(ctx context.Context, actor Actor, progressID string, up *Upload) (*dto.EvidenceResponse, error) {
	progress, err := s.repo.Progress.GetByID(ctx, progressID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrProgressNotFound
		}
		s.logger.Error("get progress failed", zap.String("id", progressID), zap.Error(err))
		return nil, err
	}
	if !progress.AcceptsEvidence() {
		return nil, ErrEvidenceNotAccepted
	}
	if !actor.CanEdit() {
		return nil, ErrPermissionDenied
	}
	if err := ValidateEvidenceFile(up.Filename, up.Size); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	ext := strings.ToLower(filepath.Ext(up.Filename))
	key := fmt.Sprintf("%s/%04d/%02d/%s%s", evidenceKeyPrefix, now.Year(), int(now.Month()), uuid.NewString(), ext)

	// the declared size is checked above; the counter catches a body longer than declared
	body := &countingReader{r: io.LimitReader(up.Body, MaxEvidenceSize+1)}
	handle, err := s.store.Put(ctx, body, key)
	if err != nil {
		s.logger.Error("store evidence failed", zap.String("key", key), zap.Error(err))
		return nil, ErrStorageFailure.Wrap(err)
	}
	if body.n > MaxEvidenceSize {
		s.discard(ctx, handle)
		return nil, ErrFileTooLarge
	}

	mime := strings.TrimSpace(up.ContentType)
	if mime == "" {
		mime = DefaultMimeType
	}
	evidence := &model.Evidence{
		ProgressID:   progressID,
		StorageKey:   handle,
		OriginalName: filepath.Base(up.Filename),
		Description:  truncateRunes(up.Description, 500),
		SizeBytes:    body.n,
		MimeType:     mime,
		UploadedBy:   actor.userRef(),
		UploadedAt:   now,
	}
	if err := s.repo.Evidence.Create(ctx, evidence); err != nil {
		s.logger.Error("save evidence failed", zap.String("key", handle), zap.Error(err))
		s.discard(ctx, handle)
		return nil, err
	}

	s.logger.Info("evidence uploaded",
		zap.String("id", evidence.EvidenceID),
		zap.String("progress_id", progressID),
		zap.Int64("size", evidence.SizeBytes),
		zap.String("by", actor.UserID),
	)
	resp := toEvidenceResponse(evidence)
	return &resp, nil
}

func (s *evidenceService) discard(ctx context.Context, key string) {
	if err := s.store.Delete(ctx, key); err != nil {
		s.logger.Warn("discard stored evidence failed", zap.String("key", key), zap.Error(err))
	}
}

// ────────────────────── List ──────────────────────

func (s *evidenceService) List(ctx context.Context, progressID string) ([]dto.EvidenceResponse, error) {
	if _, err := s.repo.Progress.GetByID(ctx, progressID); err != nil {
		if isNotFound(err) {
			return nil, ErrProgressNotFound
		}
		return nil, err
	}

	items, err := s.repo.Evidence.ListByProgress(ctx, progressID)
	if err != nil {
		s.logger.Error("list evidence failed", zap.String("progress_id", progressID), zap.Error(err))
		return nil, err
	}
	result := make([]dto.EvidenceResponse, 0, len(items))
	for i := range items {
		result = append(result, toEvidenceResponse(&items[i]))
	}
	return result, nil
}

// ────────────────────── Download ──────────────────────

func (s *evidenceService) Download(ctx context.Context, evidenceID string) (*Download, error) {
	evidence, err := s.repo.Evidence.GetByID(ctx, evidenceID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrEvidenceNotFound
		}
		s.logger.Error("get evidence failed", zap.String("id", evidenceID), zap.Error(err))
		return nil, err
	}

	body, err := s.store.Get(ctx, evidence.StorageKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrEvidenceFileMissing
		}
		s.logger.Error("read stored evidence failed", zap.String("key", evidence.StorageKey), zap.Error(err))
		return nil, ErrStorageFailure.Wrap(err)
	}

	return &Download{
		Body:        body,
		Filename:    evidence.OriginalName,
		ContentType: evidence.MimeType,
		Size:        evidence.SizeBytes,
	}, nil
}

// ────────────────────── Delete ──────────────────────

// Delete removes the stored file first. A storage failure keeps the row;
// a row delete failure after that is reported with the file already gone.
func (s *evidenceService) Delete(ctx context.Context, actor Actor, evidenceID string) error {
	evidence, err := s.repo.Evidence.GetByID(ctx, evidenceID)
	if err != nil {
		if isNotFound(err) {
			return ErrEvidenceNotFound
		}
		s.logger.Error("get evidence failed", zap.String("id", evidenceID), zap.Error(err))
		return err
	}
	if !actor.CanEdit() {
		return ErrPermissionDenied
	}

	if err := s.store.Delete(ctx, evidence.StorageKey); err != nil {
		s.logger.Error("delete stored evidence failed", zap.String("key", evidence.StorageKey), zap.Error(err))
		return ErrStorageFailure.Wrap(err)
	}
	if err := s.repo.Evidence.Delete(ctx, evidenceID); err != nil {
		s.logger.Error("delete evidence row failed after its file was removed",
			zap.String("id", evidenceID), zap.String("key", evidence.StorageKey), zap.Error(err))
		return err
	}

	s.logger.Info("evidence deleted", zap.String("id", evidenceID), zap.String("by", actor.UserID))
	return nil
}

// ── helpers ──

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
