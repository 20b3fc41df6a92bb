package util

const (
	DateFormat = "2006-01-02"
	TimeFormat = "2006-01-02 15:04:05"
)

// gin.Context 中保存会话信息的键
const ContextUserKey = "user"

// 模拟视频资源使用的占位地址
const (
	PlaceholderVideoURL     = "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	PlaceholderThumbnailURL = "https://img.youtube.com/vi/dQw4w9WgXcQ/mqdefault.jpg"
)
