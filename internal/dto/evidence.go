package dto

// ── evidence ──

// EvidenceResponse attachment metadata
type EvidenceResponse struct {
	ID           string `json:"id"`
	ProgressID   string `json:"progress_id"`
	OriginalName string `json:"original_name"`
	Description  string `json:"description,omitempty"`
	SizeBytes    int64  `json:"size_bytes"`
	Size         string `json:"size"`
	MimeType     string `json:"mime_type"`
	UploadedBy   string `json:"uploaded_by,omitempty"`
	UploadedAt   string `json:"uploaded_at"`
}
