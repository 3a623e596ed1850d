package handlers

import "github.com/preston-bernstein/election-gateway/internal/upstream"

// Client-facing messages. Operational endpoints (/health, /ready) stay in English.
const (
	msgUnexpected       = upstream.FallbackMessage
	msgSearchRequired   = "يرجى إدخال كلمة البحث"
	msgInvalidBody      = "بيانات الطلب غير صالحة"
	msgTownNameRequired = "اسم المدينة مطلوب"
	msgInvalidID        = "المعرف غير صالح"
	msgNotFound         = "المسار غير موجود"
	msgMethodNotAllowed = "الطريقة غير مسموح بها"
	msgShuttingDown     = "shutting down"
	msgNotReady         = "not ready"
)
