package dto

// UploadResultDTO 单文件上传响应
type UploadResultDTO struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	MimeType string `json:"mimeType"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// UploadErrorDTO 批量上传中单个文件的失败信息
type UploadErrorDTO struct {
	Filename string `json:"filename"`
	Error    string `json:"error"`
}

// BatchUploadResultDTO 批量上传响应，允许部分成功
type BatchUploadResultDTO struct {
	Success []*UploadResultDTO `json:"success"`
	Errors  []*UploadErrorDTO  `json:"errors,omitempty"`
}
