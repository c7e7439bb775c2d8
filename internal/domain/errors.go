package domain

import "errors"

// ErrNoResume 用户还没保存过主档（与“有主档但无子记录”严格区分）
var ErrNoResume = errors.New("resume not found")
