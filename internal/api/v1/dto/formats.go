package dto

// FormatsResponse lists the accepted declared types
type FormatsResponse struct {
	MIMETypes   []string `json:"mime_types"`
	Audio       []string `json:"audio"`
	Video       []string `json:"video"`
	MaxUploadMB int64    `json:"max_upload_mb"`
}
