package handler

import "time"

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// maxUploadSize caps image uploads at 10 MiB.
const maxUploadSize = 10 << 20
